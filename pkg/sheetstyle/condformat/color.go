// Package condformat provides the Excel 2010 conditional formatting
// extensions: data bars with negative and axis colors, and icon sets with
// custom icons. Each type writes its x14 element with ToXxx and reads it back
// from a token stream with FromXxx.
package condformat

import (
	"encoding/xml"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/drawing"
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/schema/x14"
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/theme"
)

// Color is a SpreadsheetML color: automatic, indexed, explicit ARGB or a
// theme slot with a tint. The setters make one form active and clear the
// others.
type Color struct {
	Auto    bool
	Indexed *uint
	// RGB is an AARRGGBB value.
	RGB   string
	Theme *theme.Slot
	tint  float64
}

// NewRGBColor returns an opaque RGB color. Unparsable input becomes white.
func NewRGBColor(hex string) Color {
	var c Color
	c.SetRGB(hex)
	return c
}

// NewThemeColor returns a theme color with a tint clamped to [-1, 1].
func NewThemeColor(slot theme.Slot, tint float64) Color {
	var c Color
	c.SetTheme(slot, tint)
	return c
}

// SetAuto makes the color automatic.
func (c *Color) SetAuto() {
	*c = Color{Auto: true}
}

// SetIndexed selects a legacy palette index.
func (c *Color) SetIndexed(i uint) {
	*c = Color{Indexed: &i}
}

// SetRGB sets an opaque RGB color from RRGGBB, #RRGGBB or AARRGGBB.
func (c *Color) SetRGB(hex string) {
	*c = Color{RGB: "FF" + drawing.ParseHexColor(hex)}
}

// SetTheme selects a theme slot with a tint clamped to [-1, 1].
func (c *Color) SetTheme(slot theme.Slot, tint float64) {
	*c = Color{Theme: &slot}
	c.SetTint(tint)
}

// Tint returns the luminance tint.
func (c *Color) Tint() float64 { return c.tint }

// SetTint sets the luminance tint, clamped to [-1, 1].
func (c *Color) SetTint(v float64) {
	if math.IsNaN(v) {
		v = 0
	}
	c.tint = math.Max(-1, math.Min(1, v))
}

// IsSet reports whether any color form is active.
func (c *Color) IsSet() bool {
	return c.Auto || c.Indexed != nil || c.RGB != "" || c.Theme != nil
}

// Resolve returns the RRGGBB display color against p. Automatic and indexed
// colors do not resolve.
func (c *Color) Resolve(p theme.Palette) (string, bool) {
	switch {
	case c.RGB != "":
		return theme.Tint(c.RGB, c.tint), true
	case c.Theme != nil:
		return p.Resolve(*c.Theme, c.tint)
	}
	return "", false
}

// ToX14Color emits the color as an x14 element with the given local name,
// such as "fillColor" or "axisColor".
func (c *Color) ToX14Color(name string) *x14.Color {
	xc := &x14.Color{XMLName: xml.Name{Local: "x14:" + name}}
	if c.Auto {
		xc.Auto = true
	}
	if c.Indexed != nil {
		i := *c.Indexed
		xc.Indexed = &i
	}
	xc.RGB = c.RGB
	if c.Theme != nil {
		t := uint(*c.Theme)
		xc.Theme = &t
	}
	if c.tint != 0 {
		tint := c.tint
		xc.Tint = &tint
	}
	return xc
}

// FromX14Color reads a color from the attributes of its start element.
// The element has no children; the caller consumes its end element.
func FromX14Color(start xml.StartElement) Color {
	var c Color
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "auto":
			c.Auto = parseBool(attr.Value, false)
		case "indexed":
			if v, err := strconv.ParseUint(attr.Value, 10, 32); err == nil {
				i := uint(v)
				c.Indexed = &i
			}
		case "rgb":
			c.RGB = strings.ToUpper(attr.Value)
		case "theme":
			if v, err := strconv.ParseUint(attr.Value, 10, 32); err == nil {
				slot := theme.Slot(v)
				c.Theme = &slot
			}
		case "tint":
			if v, err := strconv.ParseFloat(attr.Value, 64); err == nil {
				c.SetTint(v)
			}
		}
	}
	return c
}

// Clone returns a deep copy.
func (c Color) Clone() Color {
	if c.Indexed != nil {
		i := *c.Indexed
		c.Indexed = &i
	}
	if c.Theme != nil {
		t := *c.Theme
		c.Theme = &t
	}
	return c
}

// parseBool reads an xsd:boolean, returning def for anything else.
func parseBool(s string, def bool) bool {
	switch s {
	case "1", "true":
		return true
	case "0", "false":
		return false
	}
	return def
}

// boolPtr returns a pointer to v.
func boolPtr(v bool) *bool { return &v }

// uintPtr returns a pointer to v.
func uintPtr(v uint) *uint { return &v }
