package theme

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestSlotSchemeName(t *testing.T) {
	tests := []struct {
		slot     Slot
		expected string
	}{
		{Light1, "lt1"},
		{Dark1, "dk1"},
		{Accent1, "accent1"},
		{Accent6, "accent6"},
		{Hyperlink, "hlink"},
		{FollowedHyperlink, "folHlink"},
		{Slot(12), ""},
		{Slot(-1), ""},
	}

	for _, tt := range tests {
		result := tt.slot.SchemeName()
		if result != tt.expected {
			t.Errorf("Slot(%d).SchemeName() = %q, expected %q", int(tt.slot), result, tt.expected)
		}
	}
}

func TestParseSlot(t *testing.T) {
	tests := []struct {
		name     string
		expected Slot
		ok       bool
	}{
		{"Accent3", Accent3, true},
		{"accent3", Accent3, true},
		{"folHlink", FollowedHyperlink, true},
		{"dark2", Dark2, true},
		{"accent7", 0, false},
	}

	for _, tt := range tests {
		result, ok := ParseSlot(tt.name)
		if ok != tt.ok || result != tt.expected {
			t.Errorf("ParseSlot(%q) = (%v, %v), expected (%v, %v)", tt.name, result, ok, tt.expected, tt.ok)
		}
	}
}

func TestPaletteCloneIsIndependent(t *testing.T) {
	p := DefaultPalette()
	c := p.Clone()
	c[Accent1] = "123456"

	if p[Accent1] != "4F81BD" {
		t.Errorf("original palette changed through clone: %q", p[Accent1])
	}
}

func TestPaletteColor(t *testing.T) {
	p := DefaultPalette()

	if c, ok := p.Color(Accent2); !ok || c != "C0504D" {
		t.Errorf("Color(Accent2) = (%q, %v), expected (C0504D, true)", c, ok)
	}
	if _, ok := p.Color(Slot(20)); ok {
		t.Error("Color(20) should not resolve")
	}
	if _, ok := (Palette{"FFFFFF"}).Color(Accent1); ok {
		t.Error("short palette should not resolve Accent1")
	}
}

func TestTint(t *testing.T) {
	if result := Tint("4f81bd", 0); result != "4F81BD" {
		t.Errorf("Tint(4f81bd, 0) = %q, expected 4F81BD", result)
	}
	if result := Tint("#FF4F81BD", 0); result != "4F81BD" {
		t.Errorf("Tint(#FF4F81BD, 0) = %q, expected 4F81BD", result)
	}

	lighter := Tint("4F81BD", 0.4)
	darker := Tint("4F81BD", -0.25)
	if luminance(t, lighter) <= luminance(t, "4F81BD") {
		t.Errorf("Tint(0.4) = %q, expected a lighter color", lighter)
	}
	if luminance(t, darker) >= luminance(t, "4F81BD") {
		t.Errorf("Tint(-0.25) = %q, expected a darker color", darker)
	}
	if result := Tint("000000", 1); result != "FFFFFF" {
		t.Errorf("Tint(000000, 1) = %q, expected FFFFFF", result)
	}
}

func TestLoad(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	path := filepath.Join(t.TempDir(), "theme.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(p) != SlotCount {
		t.Fatalf("Expected %d colors, got %d", SlotCount, len(p))
	}
	if p[Light1] != "FFFFFF" || p[Dark1] != "000000" {
		t.Errorf("Expected window colors FFFFFF/000000, got %s/%s", p[Light1], p[Dark1])
	}
}

func luminance(t *testing.T, hex string) int64 {
	t.Helper()
	var sum int64
	for i := 0; i < 6; i += 2 {
		v, err := strconv.ParseInt(hex[i:i+2], 16, 64)
		if err != nil {
			t.Fatalf("bad hex %q: %v", hex, err)
		}
		sum += v
	}
	return sum
}
