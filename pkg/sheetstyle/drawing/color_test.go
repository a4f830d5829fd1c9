package drawing

import (
	"math"
	"testing"

	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/schema/dml"
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/theme"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi float64
		expected  float64
	}{
		{50, 0, 100, 50},
		{-1, 0, 100, 0},
		{101, 0, 100, 100},
		{0, 0, 100, 0},
		{100, 0, 100, 100},
		{-5000, -4000, 4000, -4000},
		{math.Inf(1), 0, 150, 150},
		{math.Inf(-1), 0, 150, 0},
		{math.NaN(), 0, 150, 0},
	}

	for _, tt := range tests {
		result := clamp(tt.v, tt.lo, tt.hi)
		if result != tt.expected {
			t.Errorf("clamp(%v, %v, %v) = %v, expected %v", tt.v, tt.lo, tt.hi, result, tt.expected)
		}
	}
}

func TestUnitConversions(t *testing.T) {
	if got := PointsToEMU(1); got != 12700 {
		t.Errorf("PointsToEMU(1) = %d, expected 12700", got)
	}
	if got := PointsToEMU(0.5); got != 6350 {
		t.Errorf("PointsToEMU(0.5) = %d, expected 6350", got)
	}
	if got := DegreesToAngle(90); got != 5400000 {
		t.Errorf("DegreesToAngle(90) = %d, expected 5400000", got)
	}
	if got := PercentToFixed(64.999); got != 64999 {
		t.Errorf("PercentToFixed(64.999) = %d, expected 64999", got)
	}
	if got := PercentToFixed(21.001); got != 21001 {
		t.Errorf("PercentToFixed(21.001) = %d, expected 21001", got)
	}
	if got := EMUToPixels(914400); got != 96 {
		t.Errorf("EMUToPixels(914400) = %d, expected 96", got)
	}
}

func TestTintClamp(t *testing.T) {
	tests := []struct {
		tint     float64
		expected float64
	}{
		{-2, -1},
		{-1, -1},
		{-0.5, -0.5},
		{0, 0},
		{0.25, 0.25},
		{1.5, 1},
	}

	for _, tt := range tests {
		c := NewColorTransform(theme.DefaultPalette())
		c.SetTint(tt.tint)
		if c.Tint() != tt.expected {
			t.Errorf("SetTint(%v) stored %v, expected %v", tt.tint, c.Tint(), tt.expected)
		}
	}
}

func TestTransparencyClamp(t *testing.T) {
	c := NewColorTransform(theme.DefaultPalette())
	c.SetColor("FF0000", 150)
	if c.Transparency() != 100 {
		t.Errorf("Transparency() = %v, expected 100", c.Transparency())
	}
	if c.Alpha() != 0 {
		t.Errorf("Alpha() = %d, expected 0", c.Alpha())
	}

	c.SetTransparency(-3)
	if c.Transparency() != 0 {
		t.Errorf("Transparency() = %v, expected 0", c.Transparency())
	}
	if c.Alpha() != 100000 {
		t.Errorf("Alpha() = %d, expected 100000", c.Alpha())
	}
}

func TestColorRoundTrip(t *testing.T) {
	tests := []struct {
		input        string
		transparency float64
		expected     string
		alpha        int
	}{
		{"4F81BD", 0, "4F81BD", -1},
		{"4f81bd", 0, "4F81BD", -1},
		{"#C0504D", 25, "C0504D", 75000},
		{"FF9BBB59", 0, "9BBB59", -1},
		{"000000", 100, "000000", 0},
		{"not a color", 0, DefaultColor, -1},
		{"", 10, DefaultColor, 90000},
	}

	for _, tt := range tests {
		c := NewColorTransform(theme.DefaultPalette())
		c.SetColor(tt.input, tt.transparency)

		if !c.IsRgbColorModelHex {
			t.Errorf("SetColor(%q) left the theme model active", tt.input)
		}
		clr := c.ToRgbColorModelHex()
		if clr.Val != tt.expected {
			t.Errorf("SetColor(%q).Val = %q, expected %q", tt.input, clr.Val, tt.expected)
		}
		if clr.LumMod != nil || clr.LumOff != nil {
			t.Errorf("SetColor(%q) emitted luminance children", tt.input)
		}
		switch {
		case tt.alpha < 0 && clr.Alpha != nil:
			t.Errorf("SetColor(%q, %v) emitted alpha %d, expected none", tt.input, tt.transparency, clr.Alpha.Val)
		case tt.alpha >= 0 && (clr.Alpha == nil || clr.Alpha.Val != tt.alpha):
			t.Errorf("SetColor(%q, %v) alpha = %v, expected %d", tt.input, tt.transparency, clr.Alpha, tt.alpha)
		}
	}
}

func TestThemeColorTransforms(t *testing.T) {
	tests := []struct {
		tint   float64
		lumMod int
		lumOff int
	}{
		{0, -1, -1},
		{-0.25, 75000, -1},
		{-0.5, 50000, -1},
		{0.4, 60000, 40000},
		{0.8, 20000, 80000},
		{-3, 0, -1},
	}

	for _, tt := range tests {
		c := NewColorTransform(theme.DefaultPalette())
		c.SetThemeColor(theme.Accent1, tt.tint, 0)
		clr := c.ToSchemeColor()

		if clr.Val != "accent1" {
			t.Errorf("ToSchemeColor().Val = %q, expected accent1", clr.Val)
		}
		checkAttr(t, "lumMod", tt.tint, clr.LumMod, tt.lumMod)
		checkAttr(t, "lumOff", tt.tint, clr.LumOff, tt.lumOff)
		if clr.Alpha != nil {
			t.Errorf("tint %v: unexpected alpha %d", tt.tint, clr.Alpha.Val)
		}
	}
}

func TestSetThemeColorResolvesDisplayColor(t *testing.T) {
	c := NewColorTransform(theme.DefaultPalette())
	c.SetThemeColor(theme.Accent2, 0, 0)
	if c.IsRgbColorModelHex {
		t.Fatal("SetThemeColor left the RGB model active")
	}
	if c.DisplayColor != "C0504D" {
		t.Errorf("DisplayColor = %q, expected C0504D", c.DisplayColor)
	}

	c.SetThemeColor(theme.Accent2, 0.5, 0)
	if c.DisplayColor == "C0504D" {
		t.Error("a positive tint did not change DisplayColor")
	}

	// An unknown slot leaves the color untouched.
	c.SetColor("123456", 0)
	c.SetThemeColor(theme.Slot(42), 0, 0)
	if c.DisplayColor != "123456" || !c.IsRgbColorModelHex {
		t.Errorf("DisplayColor = %q, rgb %v, expected 123456 rgb", c.DisplayColor, c.IsRgbColorModelHex)
	}

	c.SetThemeColor(theme.Accent3, 0, 0)
	c.SetThemeColor(theme.Slot(40), 0, 0)
	if clr := c.ToColorChoice(); clr.SchemeClr == nil || clr.SchemeClr.Val != "accent3" {
		t.Errorf("ToColorChoice() after an invalid slot = %+v, expected accent3", clr.SchemeClr)
	}
	c.SetThemeColor(theme.Slot(-1), 0, 0)
	if c.ThemeColor != theme.Accent3 {
		t.Errorf("ThemeColor = %v, expected Accent3", c.ThemeColor)
	}
}

func TestColorTransformKeepsPaletteCopy(t *testing.T) {
	p := theme.DefaultPalette()
	c := NewColorTransform(p)
	p[theme.Accent1] = "000000"

	c.SetThemeColor(theme.Accent1, 0, 0)
	if c.DisplayColor != "4F81BD" {
		t.Errorf("DisplayColor = %q, expected 4F81BD", c.DisplayColor)
	}
}

func checkAttr(t *testing.T, name string, tint float64, attr *dml.AttrValInt, expected int) {
	t.Helper()
	if expected < 0 {
		if attr != nil {
			t.Errorf("tint %v: unexpected %s %d", tint, name, attr.Val)
		}
		return
	}
	if attr == nil {
		t.Errorf("tint %v: missing %s, expected %d", tint, name, expected)
		return
	}
	if attr.Val != expected {
		t.Errorf("tint %v: %s = %d, expected %d", tint, name, attr.Val, expected)
	}
}
