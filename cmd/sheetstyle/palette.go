package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/theme"
)

// swatchTints are the tint columns Office shows under each theme color.
var swatchTints = []float64{0, 0.8, 0.6, 0.4, -0.25, -0.5}

func newPaletteCmd() *cobra.Command {
	var tints bool
	cmd := &cobra.Command{
		Use:   "palette [input.xlsx]",
		Short: "Print the theme color palette as swatches",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				themePath = args[0]
			}
			p, err := loadPalette()
			if err != nil {
				return err
			}
			return write([]byte(renderPalette(p, tints)))
		},
	}
	cmd.Flags().BoolVar(&tints, "tints", false, "Show the tinted variants of each color")
	return cmd
}

func renderPalette(p theme.Palette, tints bool) string {
	label := lipgloss.NewStyle().Width(18)
	var lines []string
	for i := range theme.SlotCount {
		slot := theme.Slot(i)
		cells := []string{label.Render(slot.String())}
		columns := swatchTints[:1]
		if tints {
			columns = swatchTints
		}
		for _, tint := range columns {
			hex, ok := p.Resolve(slot, tint)
			if !ok {
				cells = append(cells, " ?????? ")
				continue
			}
			cells = append(cells, swatch(hex))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(lines, "\n")
}

// swatch renders hex on its own color with a readable foreground.
func swatch(hex string) string {
	fg := "#FFFFFF"
	if c, err := colorful.Hex("#" + hex); err == nil {
		if l, _, _ := c.Lab(); l > 0.6 {
			fg = "#000000"
		}
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color("#" + hex)).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 1).
		Render(fmt.Sprintf("%-6s", hex))
}
