package drawing

import (
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/schema/dml"
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/theme"
)

// FillType selects which branch of a Fill is written.
type FillType int

// Fill types.
const (
	FillAutomatic FillType = iota
	FillNone
	FillSolid
	FillGradient
	FillBlip
	FillPattern
)

// PatternPreset is a DrawingML preset pattern (ST_PresetPatternVal).
type PatternPreset string

// Pattern presets.
const (
	PatternPercent5               PatternPreset = "pct5"
	PatternPercent10              PatternPreset = "pct10"
	PatternPercent20              PatternPreset = "pct20"
	PatternPercent25              PatternPreset = "pct25"
	PatternPercent30              PatternPreset = "pct30"
	PatternPercent40              PatternPreset = "pct40"
	PatternPercent50              PatternPreset = "pct50"
	PatternPercent60              PatternPreset = "pct60"
	PatternPercent70              PatternPreset = "pct70"
	PatternPercent75              PatternPreset = "pct75"
	PatternPercent80              PatternPreset = "pct80"
	PatternPercent90              PatternPreset = "pct90"
	PatternHorizontal             PatternPreset = "horz"
	PatternVertical               PatternPreset = "vert"
	PatternLightHorizontal        PatternPreset = "ltHorz"
	PatternLightVertical          PatternPreset = "ltVert"
	PatternDarkHorizontal         PatternPreset = "dkHorz"
	PatternDarkVertical           PatternPreset = "dkVert"
	PatternNarrowHorizontal       PatternPreset = "narHorz"
	PatternNarrowVertical         PatternPreset = "narVert"
	PatternDashedHorizontal       PatternPreset = "dashHorz"
	PatternDashedVertical         PatternPreset = "dashVert"
	PatternCross                  PatternPreset = "cross"
	PatternDownwardDiagonal       PatternPreset = "dnDiag"
	PatternUpwardDiagonal         PatternPreset = "upDiag"
	PatternLightDownwardDiagonal  PatternPreset = "ltDnDiag"
	PatternLightUpwardDiagonal    PatternPreset = "ltUpDiag"
	PatternDarkDownwardDiagonal   PatternPreset = "dkDnDiag"
	PatternDarkUpwardDiagonal     PatternPreset = "dkUpDiag"
	PatternWideDownwardDiagonal   PatternPreset = "wdDnDiag"
	PatternWideUpwardDiagonal     PatternPreset = "wdUpDiag"
	PatternDashedDownwardDiagonal PatternPreset = "dashDnDiag"
	PatternDashedUpwardDiagonal   PatternPreset = "dashUpDiag"
	PatternDiagonalCross          PatternPreset = "diagCross"
	PatternSmallCheck             PatternPreset = "smCheck"
	PatternLargeCheck             PatternPreset = "lgCheck"
	PatternSmallGrid              PatternPreset = "smGrid"
	PatternLargeGrid              PatternPreset = "lgGrid"
	PatternDottedGrid             PatternPreset = "dotGrid"
	PatternSmallConfetti          PatternPreset = "smConfetti"
	PatternLargeConfetti          PatternPreset = "lgConfetti"
	PatternHorizontalBrick        PatternPreset = "horzBrick"
	PatternDiagonalBrick          PatternPreset = "diagBrick"
	PatternSolidDiamond           PatternPreset = "solidDmnd"
	PatternOpenDiamond            PatternPreset = "openDmnd"
	PatternDottedDiamond          PatternPreset = "dotDmnd"
	PatternPlaid                  PatternPreset = "plaid"
	PatternSphere                 PatternPreset = "sphere"
	PatternWeave                  PatternPreset = "weave"
	PatternDivot                  PatternPreset = "divot"
	PatternShingle                PatternPreset = "shingle"
	PatternWave                   PatternPreset = "wave"
	PatternTrellis                PatternPreset = "trellis"
	PatternZigZag                 PatternPreset = "zigZag"
)

// RectangleAlignment is a DrawingML rectangle alignment (ST_RectAlignment).
type RectangleAlignment string

// Rectangle alignments.
const (
	AlignTopLeft     RectangleAlignment = "tl"
	AlignTop         RectangleAlignment = "t"
	AlignTopRight    RectangleAlignment = "tr"
	AlignLeft        RectangleAlignment = "l"
	AlignCenter      RectangleAlignment = "ctr"
	AlignRight       RectangleAlignment = "r"
	AlignBottomLeft  RectangleAlignment = "bl"
	AlignBottom      RectangleAlignment = "b"
	AlignBottomRight RectangleAlignment = "br"
)

// TileFlip mirrors picture tiles (ST_TileFlipMode).
type TileFlip string

// Tile flip modes.
const (
	TileFlipNone       TileFlip = "none"
	TileFlipHorizontal TileFlip = "x"
	TileFlipVertical   TileFlip = "y"
	TileFlipBoth       TileFlip = "xy"
)

// BlipTile holds the tiling options of a picture fill.
type BlipTile struct {
	Flip      TileFlip
	Alignment RectangleAlignment

	offsetX, offsetY float64
	scaleX, scaleY   float64
}

// SetOffset sets the tile offsets in points, clamped to [-4000, 4000].
func (t *BlipTile) SetOffset(x, y float64) {
	t.offsetX = clamp(x, -4000, 4000)
	t.offsetY = clamp(y, -4000, 4000)
}

// SetScale sets the tile scale in percent, clamped to [0, 1000].
func (t *BlipTile) SetScale(x, y float64) {
	t.scaleX = clamp(x, 0, 1000)
	t.scaleY = clamp(y, 0, 1000)
}

// Offset returns the tile offsets in points.
func (t *BlipTile) Offset() (x, y float64) { return t.offsetX, t.offsetY }

// Scale returns the tile scale in percent.
func (t *BlipTile) Scale() (x, y float64) { return t.scaleX, t.scaleY }

// Fill is a shape fill. Each fill type keeps its own staged state; only the
// branch selected by Type is written, and switching Type back and forth
// does not discard what the other branches hold.
type Fill struct {
	Type FillType

	SolidColor ColorTransform
	Gradient   GradientFill

	PatternPreset     PatternPreset
	PatternForeground ColorTransform
	PatternBackground ColorTransform

	// BlipRelationshipID is the r:embed id of the picture part. Creating the
	// image part and relationship is the caller's job.
	BlipRelationshipID string
	BlipTiled          bool
	BlipTile           BlipTile
	blipTransparency   float64
}

// NewFill returns an automatic fill whose theme colors resolve against a
// copy of p.
func NewFill(p theme.Palette) Fill {
	f := Fill{
		Type:              FillAutomatic,
		SolidColor:        NewColorTransform(p),
		Gradient:          NewGradientFill(p),
		PatternPreset:     PatternPercent5,
		PatternForeground: NewColorTransform(p),
		PatternBackground: NewColorTransform(p),
		BlipTile:          BlipTile{Flip: TileFlipNone, Alignment: AlignTopLeft, scaleX: 100, scaleY: 100},
	}
	f.PatternForeground.SetColor("000000", 0)
	return f
}

// SetAutomaticFill lets the application choose the fill.
func (f *Fill) SetAutomaticFill() { f.Type = FillAutomatic }

// SetNoFill removes the fill.
func (f *Fill) SetNoFill() { f.Type = FillNone }

// SetSolidFill sets a solid RGB fill.
func (f *Fill) SetSolidFill(hex string, transparency float64) {
	f.Type = FillSolid
	f.SolidColor.SetColor(hex, transparency)
}

// SetSolidThemeFill sets a solid theme color fill.
func (f *Fill) SetSolidThemeFill(slot theme.Slot, tint, transparency float64) {
	f.Type = FillSolid
	f.SolidColor.SetThemeColor(slot, tint, transparency)
}

// SetLinearGradient sets a preset gradient with linear shading.
func (f *Fill) SetLinearGradient(preset GradientPreset, angle float64) {
	f.Type = FillGradient
	f.Gradient.SetPreset(preset)
	f.Gradient.SetLinear(angle)
}

// SetRadialGradient sets a preset gradient with circular path shading.
func (f *Fill) SetRadialGradient(preset GradientPreset, d GradientDirection) {
	f.Type = FillGradient
	f.Gradient.SetPreset(preset)
	f.Gradient.SetPath(PathCircle, d)
}

// SetRectangularGradient sets a preset gradient with rectangular path
// shading.
func (f *Fill) SetRectangularGradient(preset GradientPreset, d GradientDirection) {
	f.Type = FillGradient
	f.Gradient.SetPreset(preset)
	f.Gradient.SetPath(PathRectangle, d)
}

// SetPathGradient sets a preset gradient shaded along the shape outline.
func (f *Fill) SetPathGradient(preset GradientPreset) {
	f.Type = FillGradient
	f.Gradient.SetPreset(preset)
	f.Gradient.SetPath(PathShape, DirectionCenter)
}

// SetGradientFill replaces the gradient branch with a copy of g.
func (f *Fill) SetGradientFill(g GradientFill) {
	f.Type = FillGradient
	f.Gradient = g.Clone()
}

// SetPatternFill sets a pattern fill with RGB colors.
func (f *Fill) SetPatternFill(preset PatternPreset, foreground, background string) {
	f.Type = FillPattern
	f.PatternPreset = preset
	f.PatternForeground.SetColor(foreground, 0)
	f.PatternBackground.SetColor(background, 0)
}

// SetPatternThemeFill sets a pattern fill with theme colors.
func (f *Fill) SetPatternThemeFill(preset PatternPreset, foreground, background theme.Slot) {
	f.Type = FillPattern
	f.PatternPreset = preset
	f.PatternForeground.SetThemeColor(foreground, 0, 0)
	f.PatternBackground.SetThemeColor(background, 0, 0)
}

// SetBlipFill sets a picture fill referring to an image relationship. When
// tiled is false the picture is stretched over the shape.
func (f *Fill) SetBlipFill(relationshipID string, transparency float64, tiled bool) {
	f.Type = FillBlip
	f.BlipRelationshipID = relationshipID
	f.BlipTiled = tiled
	f.SetBlipTransparency(transparency)
}

// BlipTransparency returns the picture transparency in percent.
func (f *Fill) BlipTransparency() float64 { return f.blipTransparency }

// SetBlipTransparency sets the picture transparency, clamped to [0, 100].
func (f *Fill) SetBlipTransparency(v float64) { f.blipTransparency = clamp(v, 0, 100) }

// HasFill reports whether ToFill writes anything.
func (f *Fill) HasFill() bool {
	return f.Type != FillAutomatic
}

// ToFill emits the element of the active fill type. An automatic fill emits
// nothing.
func (f *Fill) ToFill() dml.FillChoice {
	switch f.Type {
	case FillNone:
		return dml.FillChoice{NoFill: &dml.Empty{}}
	case FillSolid:
		return dml.FillChoice{SolidFill: f.ToSolidFill()}
	case FillGradient:
		return dml.FillChoice{GradFill: f.Gradient.ToGradientFill()}
	case FillBlip:
		return dml.FillChoice{BlipFill: f.ToBlipFill()}
	case FillPattern:
		return dml.FillChoice{PattFill: f.ToPatternFill()}
	}
	return dml.FillChoice{}
}

// ToSolidFill emits the a:solidFill element regardless of Type.
func (f *Fill) ToSolidFill() *dml.SolidFill {
	return &dml.SolidFill{ColorChoice: f.SolidColor.ToColorChoice()}
}

// ToPatternFill emits the a:pattFill element regardless of Type.
func (f *Fill) ToPatternFill() *dml.PatternFill {
	return &dml.PatternFill{
		Prst:  string(f.PatternPreset),
		FgClr: &dml.ColorElement{ColorChoice: f.PatternForeground.ToColorChoice()},
		BgClr: &dml.ColorElement{ColorChoice: f.PatternBackground.ToColorChoice()},
	}
}

// ToBlipFill emits the a:blipFill element regardless of Type.
func (f *Fill) ToBlipFill() *dml.BlipFill {
	blip := &dml.Blip{XMLNSR: "http://schemas.openxmlformats.org/officeDocument/2006/relationships", Embed: f.BlipRelationshipID}
	if f.blipTransparency > 0 {
		blip.AlphaModFix = &dml.AttrAmount{Amt: PercentToFixed(100 - f.blipTransparency)}
	}
	bf := &dml.BlipFill{RotWithShape: true, Blip: blip}
	if f.BlipTiled {
		bf.Tile = &dml.Tile{
			Tx:   PointsToEMU(f.BlipTile.offsetX),
			Ty:   PointsToEMU(f.BlipTile.offsetY),
			Sx:   PercentToFixed(f.BlipTile.scaleX),
			Sy:   PercentToFixed(f.BlipTile.scaleY),
			Flip: string(f.BlipTile.Flip),
			Algn: string(f.BlipTile.Alignment),
		}
	} else {
		bf.Stretch = &dml.Stretch{FillRect: &dml.RelativeRect{}}
	}
	return bf
}

// Clone returns a deep copy.
func (f Fill) Clone() Fill {
	f.SolidColor = f.SolidColor.Clone()
	f.Gradient = f.Gradient.Clone()
	f.PatternForeground = f.PatternForeground.Clone()
	f.PatternBackground = f.PatternBackground.Clone()
	return f
}
