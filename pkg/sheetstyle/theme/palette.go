// Package theme provides the document theme color palette and tint
// resolution shared by every style object that can reference theme colors.
package theme

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Slot is a theme color slot. The numbering follows the theme attribute of
// SpreadsheetML colors: lt1 is 0 and dk1 is 1.
type Slot int

// Theme color slots.
const (
	Light1 Slot = iota
	Dark1
	Light2
	Dark2
	Accent1
	Accent2
	Accent3
	Accent4
	Accent5
	Accent6
	Hyperlink
	FollowedHyperlink
)

// SlotCount is the number of slots in a palette.
const SlotCount = 12

var schemeNames = [SlotCount]string{
	"lt1", "dk1", "lt2", "dk2",
	"accent1", "accent2", "accent3", "accent4", "accent5", "accent6",
	"hlink", "folHlink",
}

var slotNames = [SlotCount]string{
	"Light1", "Dark1", "Light2", "Dark2",
	"Accent1", "Accent2", "Accent3", "Accent4", "Accent5", "Accent6",
	"Hyperlink", "FollowedHyperlink",
}

// Valid reports whether s names one of the twelve slots.
func (s Slot) Valid() bool {
	return s >= 0 && s < SlotCount
}

// SchemeName returns the DrawingML scheme color value (a:schemeClr val) for
// the slot, or "" for an invalid slot.
func (s Slot) SchemeName() string {
	if !s.Valid() {
		return ""
	}
	return schemeNames[s]
}

func (s Slot) String() string {
	if !s.Valid() {
		return "Slot(" + strconv.Itoa(int(s)) + ")"
	}
	return slotNames[s]
}

// ParseSlot resolves a slot from either its Go name (Accent1) or its scheme
// name (accent1).
func ParseSlot(name string) (Slot, bool) {
	for i := 0; i < SlotCount; i++ {
		if strings.EqualFold(name, slotNames[i]) || strings.EqualFold(name, schemeNames[i]) {
			return Slot(i), true
		}
	}
	return 0, false
}

// Palette is an ordered list of RRGGBB colors indexed by Slot. Style objects
// keep their own copy; see Clone.
type Palette []string

// DefaultPalette returns the Office theme used by new workbooks.
func DefaultPalette() Palette {
	return Palette{
		"FFFFFF", "000000", "EEECE1", "1F497D",
		"4F81BD", "C0504D", "9BBB59", "8064A2", "4BACC6", "F79646",
		"0000FF", "800080",
	}
}

// Clone returns an independent copy of the palette.
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	c := make(Palette, len(p))
	copy(c, p)
	return c
}

// Color returns the base color of a slot. ok is false when the slot is out
// of range for this palette.
func (p Palette) Color(s Slot) (string, bool) {
	if !s.Valid() || int(s) >= len(p) || len(p[s]) != 6 {
		return "", false
	}
	return strings.ToUpper(p[s]), true
}

// Resolve returns the display color of a slot after applying tint.
func (p Palette) Resolve(s Slot, tint float64) (string, bool) {
	base, ok := p.Color(s)
	if !ok {
		return "", false
	}
	return Tint(base, tint), true
}

// Tint applies a luminance tint in [-1, 1] to an RRGGBB color and returns the
// resulting RRGGBB color. A zero tint returns the color unchanged.
func Tint(hex string, tint float64) string {
	hex = strings.ToUpper(strings.TrimPrefix(hex, "#"))
	if len(hex) == 8 {
		hex = hex[2:]
	}
	if tint == 0 || len(hex) != 6 {
		return hex
	}
	c := excelize.ThemeColor(hex, tint)
	if len(c) > 6 {
		c = c[len(c)-6:]
	}
	return strings.ToUpper(c)
}
