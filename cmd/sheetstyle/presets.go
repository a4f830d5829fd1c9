package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/drawing"
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/theme"
)

var (
	gradientAngle float64
	gradientPath  string
	shapeGeometry string
	fillColor     string
)

func newGradientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gradient [preset]",
		Short: "Print shape properties with a preset gradient fill",
		Long:  "Print shape properties with a preset gradient fill. Without a preset, list the presets.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listPresets(drawing.GradientPresets())
			}
			preset, ok := drawing.ParseGradientPreset(args[0])
			if !ok {
				return fmt.Errorf("unknown gradient preset: %s", args[0])
			}
			sp, err := newShape()
			if err != nil {
				return err
			}
			switch gradientPath {
			case "", "linear":
				sp.Fill.SetLinearGradient(preset, gradientAngle)
			case "radial":
				sp.Fill.SetRadialGradient(preset, drawing.DirectionCenter)
			case "rectangular":
				sp.Fill.SetRectangularGradient(preset, drawing.DirectionCenter)
			case "path":
				sp.Fill.SetPathGradient(preset)
			default:
				return fmt.Errorf("invalid path: %s (must be linear, radial, rectangular, or path)", gradientPath)
			}
			return writeXML(sp.ToShapeProperties(prefix))
		},
	}
	addShapeFlags(cmd)
	cmd.Flags().Float64Var(&gradientAngle, "angle", 90, "Linear shading angle in degrees")
	cmd.Flags().StringVar(&gradientPath, "path", "linear", "Shading: linear, radial, rectangular, path")
	return cmd
}

func newShadowCmd() *cobra.Command {
	var color string
	cmd := &cobra.Command{
		Use:   "shadow [preset]",
		Short: "Print shape properties with a gallery shadow",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listPresets(drawing.ShadowPresets())
			}
			preset, ok := drawing.ParseShadowPreset(args[0])
			if !ok {
				return fmt.Errorf("unknown shadow preset: %s", args[0])
			}
			sp, err := newShape()
			if err != nil {
				return err
			}
			sp.EffectList.Shadow.SetColor(color, 0)
			sp.EffectList.Shadow.SetPreset(preset)
			return writeXML(sp.ToShapeProperties(prefix))
		},
	}
	addShapeFlags(cmd)
	cmd.Flags().StringVar(&color, "color", "000000", "Shadow color (RRGGBB)")
	return cmd
}

func newReflectionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reflection [preset]",
		Short: "Print shape properties with a gallery reflection",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listPresets(drawing.ReflectionPresets())
			}
			preset, ok := drawing.ParseReflectionPreset(args[0])
			if !ok {
				return fmt.Errorf("unknown reflection preset: %s", args[0])
			}
			sp, err := newShape()
			if err != nil {
				return err
			}
			sp.EffectList.Reflection.SetPreset(preset)
			return writeXML(sp.ToShapeProperties(prefix))
		},
	}
	addShapeFlags(cmd)
	return cmd
}

func newCameraCmd() *cobra.Command {
	var perspective float64
	var bevel string
	cmd := &cobra.Command{
		Use:   "camera [preset]",
		Short: "Print shape properties with a 3-D camera preset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listPresets(drawing.CameraPresets())
			}
			preset, ok := drawing.ParseCameraPreset(args[0])
			if !ok {
				return fmt.Errorf("unknown camera preset: %s", args[0])
			}
			sp, err := newShape()
			if err != nil {
				return err
			}
			sp.Rotation3D.SetCameraPreset(preset)
			if cmd.Flags().Changed("perspective") {
				if !preset.IsPerspective() && verbose {
					logger.Printf("%s is not a perspective camera; --perspective ignored", preset)
				}
				sp.Rotation3D.SetPerspective(perspective)
			}
			if bevel != "" {
				sp.Format3D.SetBevelTop(drawing.BevelPreset(bevel), 6, 6)
			}
			return writeXML(sp.ToShapeProperties(prefix))
		},
	}
	addShapeFlags(cmd)
	cmd.Flags().Float64Var(&perspective, "perspective", 0, "Field of view in degrees (perspective cameras only)")
	cmd.Flags().StringVar(&bevel, "bevel", "", "Top bevel preset, e.g. circle, softRound")
	return cmd
}

// addShapeFlags adds the flags shared by the shape property commands.
func addShapeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&prefix, "prefix", "xdr", "Namespace prefix of the spPr element (empty for none)")
	cmd.Flags().StringVar(&shapeGeometry, "geometry", "rect", "Preset geometry (empty for none)")
	cmd.Flags().StringVar(&fillColor, "fill", "", "Solid fill color (RRGGBB) or theme slot, e.g. accent1")
}

// newShape returns shape properties carrying the shared flags.
func newShape() (*drawing.ShapeProperties, error) {
	p, err := loadPalette()
	if err != nil {
		return nil, err
	}
	sp := drawing.NewShapeProperties(p)
	sp.PresetGeometry = shapeGeometry
	if fillColor != "" {
		if slot, ok := theme.ParseSlot(fillColor); ok {
			sp.Fill.SetSolidThemeFill(slot, 0, 0)
		} else {
			sp.Fill.SetSolidFill(fillColor, 0)
		}
	}
	return &sp, nil
}

func listPresets[T fmt.Stringer](presets []T) error {
	var sb strings.Builder
	for _, p := range presets {
		sb.WriteString(p.String())
		sb.WriteByte('\n')
	}
	return write([]byte(strings.TrimSuffix(sb.String(), "\n")))
}
