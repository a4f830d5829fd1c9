package drawing

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/schema/dml"
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/theme"
)

// DefaultColor is substituted for colors that cannot be parsed.
const DefaultColor = "FFFFFF"

// ColorTransform is a color reference that is either an explicit RGB color
// or a theme slot with a tint. IsRgbColorModelHex tells which one is active;
// DisplayColor always holds the resolved RRGGBB value.
type ColorTransform struct {
	palette theme.Palette

	// IsRgbColorModelHex is true for explicit RGB colors and false for theme
	// colors.
	IsRgbColorModelHex bool
	// DisplayColor is the resolved RRGGBB color. For theme colors it is
	// computed when the color is set. It is left unchanged when the theme slot
	// does not resolve.
	DisplayColor string
	// ThemeColor is the slot of a theme color.
	ThemeColor theme.Slot

	tint         float64
	transparency float64
}

// NewColorTransform returns a white RGB color that resolves theme colors
// against a copy of p.
func NewColorTransform(p theme.Palette) ColorTransform {
	return ColorTransform{
		palette:            p.Clone(),
		IsRgbColorModelHex: true,
		DisplayColor:       DefaultColor,
	}
}

// Tint returns the luminance tint in [-1, 1].
func (c *ColorTransform) Tint() float64 { return c.tint }

// SetTint sets the luminance tint, clamped to [-1, 1].
func (c *ColorTransform) SetTint(v float64) { c.tint = clamp(v, -1, 1) }

// Transparency returns the transparency percentage in [0, 100].
func (c *ColorTransform) Transparency() float64 { return c.transparency }

// SetTransparency sets the transparency percentage, clamped to [0, 100].
func (c *ColorTransform) SetTransparency(v float64) { c.transparency = clamp(v, 0, 100) }

// Alpha returns the opacity in DrawingML percentage units [0, 100000].
func (c *ColorTransform) Alpha() int {
	return PercentToFixed(100 - c.transparency)
}

// SetColor switches to an explicit RGB color. hex may be RRGGBB, #RRGGBB or
// AARRGGBB; anything unparsable becomes white.
func (c *ColorTransform) SetColor(hex string, transparency float64) {
	c.IsRgbColorModelHex = true
	c.DisplayColor = ParseHexColor(hex)
	c.tint = 0
	c.SetTransparency(transparency)
}

// SetThemeColor switches to a theme color and resolves DisplayColor against
// the palette immediately. An invalid slot is ignored.
func (c *ColorTransform) SetThemeColor(slot theme.Slot, tint, transparency float64) {
	if !slot.Valid() {
		return
	}
	c.IsRgbColorModelHex = false
	c.ThemeColor = slot
	c.SetTint(tint)
	c.SetTransparency(transparency)
	if rgb, ok := c.palette.Resolve(slot, c.tint); ok {
		c.DisplayColor = rgb
	}
}

// ToRgbColorModelHex emits the a:srgbClr form.
func (c *ColorTransform) ToRgbColorModelHex() *dml.RGBColor {
	clr := &dml.RGBColor{Val: c.DisplayColor}
	clr.LumMod, clr.LumOff, clr.Alpha = c.transforms()
	return clr
}

// ToSchemeColor emits the a:schemeClr form.
func (c *ColorTransform) ToSchemeColor() *dml.SchemeColor {
	clr := &dml.SchemeColor{Val: c.ThemeColor.SchemeName()}
	clr.LumMod, clr.LumOff, clr.Alpha = c.transforms()
	return clr
}

// ToColorChoice emits whichever form is active.
func (c *ColorTransform) ToColorChoice() dml.ColorChoice {
	if c.IsRgbColorModelHex {
		return dml.ColorChoice{SrgbClr: c.ToRgbColorModelHex()}
	}
	return dml.ColorChoice{SchemeClr: c.ToSchemeColor()}
}

// transforms builds the luminance and alpha children. The scaled values are
// floored before conversion.
func (c *ColorTransform) transforms() (lumMod, lumOff, alpha *dml.AttrValInt) {
	switch {
	case c.tint < 0:
		lumMod = &dml.AttrValInt{Val: fixed((1 + c.tint) * 100000)}
	case c.tint > 0:
		lumMod = &dml.AttrValInt{Val: fixed((1 - c.tint) * 100000)}
		lumOff = &dml.AttrValInt{Val: fixed(c.tint * 100000)}
	}
	if a := c.Alpha(); a < 100000 {
		alpha = &dml.AttrValInt{Val: a}
	}
	return
}

// Clone returns a deep copy.
func (c ColorTransform) Clone() ColorTransform {
	c.palette = c.palette.Clone()
	return c
}

// ParseHexColor normalizes a color string to RRGGBB, returning DefaultColor
// when it cannot be parsed.
func ParseHexColor(s string) string {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 8 {
		s = s[2:]
	}
	clr, err := colorful.Hex("#" + s)
	if err != nil {
		return DefaultColor
	}
	return strings.ToUpper(strings.TrimPrefix(clr.Hex(), "#"))
}
