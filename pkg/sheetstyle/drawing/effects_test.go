package drawing

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/theme"
)

func TestShadowPresets(t *testing.T) {
	if n := len(ShadowPresets()); n != 23 {
		t.Fatalf("ShadowPresets() returned %d presets, expected 23", n)
	}
	for _, p := range ShadowPresets() {
		if _, ok := shadowPresets[p]; !ok {
			t.Errorf("%s has no parameters", p)
		}
	}

	tests := []struct {
		preset   ShadowPreset
		inner    bool
		blurRad  int
		dist     int
		dir      int
		algn     string
		alpha    int
		hasScale bool
	}{
		{ShadowOuterDiagonalBottomRight, false, 50800, 38100, 2700000, "tl", 40000, false},
		{ShadowOuterTop, false, 50800, 38100, 16200000, "", 40000, false},
		{ShadowOuterCenter, false, 63500, 0, 0, "ctr", 40000, true},
		{ShadowInnerDiagonalTopLeft, true, 63500, 50800, 13500000, "", 50000, false},
		{ShadowInnerCenter, true, 114300, 0, 0, "", 50000, false},
		{ShadowPerspectiveBelow, false, 152400, 317500, 5400000, "", 15000, true},
	}

	for _, tt := range tests {
		s := NewShadow(theme.DefaultPalette())
		s.SetPreset(tt.preset)
		if s.IsInnerShadow != tt.inner {
			t.Errorf("%s: IsInnerShadow = %v", tt.preset, s.IsInnerShadow)
			continue
		}
		if tt.inner {
			in := s.ToInnerShadow()
			if in.BlurRad != tt.blurRad || in.Dist != tt.dist || in.Dir != tt.dir {
				t.Errorf("%s: innerShdw = %d/%d/%d, expected %d/%d/%d",
					tt.preset, in.BlurRad, in.Dist, in.Dir, tt.blurRad, tt.dist, tt.dir)
			}
			if in.SrgbClr == nil || in.SrgbClr.Alpha == nil || in.SrgbClr.Alpha.Val != tt.alpha {
				t.Errorf("%s: color = %+v, expected alpha %d", tt.preset, in.SrgbClr, tt.alpha)
			}
			continue
		}
		out := s.ToOuterShadow()
		if out.BlurRad != tt.blurRad || out.Dist != tt.dist || out.Dir != tt.dir {
			t.Errorf("%s: outerShdw = %d/%d/%d, expected %d/%d/%d",
				tt.preset, out.BlurRad, out.Dist, out.Dir, tt.blurRad, tt.dist, tt.dir)
		}
		if out.Algn != tt.algn {
			t.Errorf("%s: algn = %q, expected %q", tt.preset, out.Algn, tt.algn)
		}
		if (out.Sx != nil || out.Sy != nil) != tt.hasScale {
			t.Errorf("%s: scale emitted = %v, expected %v", tt.preset, out.Sx != nil || out.Sy != nil, tt.hasScale)
		}
		if out.RotWithShape {
			t.Errorf("%s: gallery shadow rotates with shape", tt.preset)
		}
		if out.SrgbClr == nil || out.SrgbClr.Val != "000000" || out.SrgbClr.Alpha.Val != tt.alpha {
			t.Errorf("%s: color = %+v, expected 000000 alpha %d", tt.preset, out.SrgbClr, tt.alpha)
		}
	}
}

func TestPerspectiveShadowXML(t *testing.T) {
	s := NewShadow(theme.DefaultPalette())
	s.SetPreset(ShadowPerspectiveDiagonalUpperLeft)

	out, err := xml.Marshal(s.ToOuterShadow())
	if err != nil {
		t.Fatal(err)
	}
	expected := `<a:outerShdw blurRad="76200" dist="0" dir="18900000" sy="23000" kx="-1200000" algn="bl" rotWithShape="false">` +
		`<a:srgbClr val="000000"><a:alpha val="20000"></a:alpha></a:srgbClr></a:outerShdw>`
	if string(out) != expected {
		t.Errorf("xml.Marshal = %s\nexpected %s", out, expected)
	}
}

func TestShadowClamps(t *testing.T) {
	s := NewShadow(theme.DefaultPalette())
	s.SetBlur(500)
	s.SetAngle(-10)
	s.SetDistance(250)
	s.SetSize(0)
	s.SetSkew(120, -120)

	if s.Blur() != 100 || s.Angle() != 0 || s.Distance() != 200 {
		t.Errorf("blur/angle/distance = %v/%v/%v", s.Blur(), s.Angle(), s.Distance())
	}
	if sx, sy := s.Size(); sx != 1 || sy != 1 {
		t.Errorf("size = %v/%v, expected 1/1", sx, sy)
	}
	if kx, ky := s.Skew(); kx != 90 || ky != -90 {
		t.Errorf("skew = %v/%v, expected 90/-90", kx, ky)
	}
}

func TestReflectionPresets(t *testing.T) {
	tests := []struct {
		preset ReflectionPreset
		endPos int
		dist   *int
	}{
		{ReflectionTightTouching, 35000, nil},
		{ReflectionHalfTouching, 55000, nil},
		{ReflectionFullTouching, 90000, nil},
		{ReflectionTight4Pt, 35000, intPtr(50800)},
		{ReflectionHalf8Pt, 55000, intPtr(101600)},
		{ReflectionFull8Pt, 90000, intPtr(101600)},
	}

	for _, tt := range tests {
		r := NewReflection()
		r.SetPreset(tt.preset)
		ref := r.ToReflection()

		if ref.EndPos == nil || *ref.EndPos != tt.endPos {
			t.Errorf("%s: endPos = %v, expected %d", tt.preset, ref.EndPos, tt.endPos)
		}
		switch {
		case tt.dist == nil && ref.Dist != nil:
			t.Errorf("%s: unexpected dist %d", tt.preset, *ref.Dist)
		case tt.dist != nil && (ref.Dist == nil || *ref.Dist != *tt.dist):
			t.Errorf("%s: dist = %v, expected %d", tt.preset, ref.Dist, *tt.dist)
		}
		if *ref.BlurRad != 6350 || *ref.StA != 52000 || *ref.EndA != 300 || *ref.Dir != 5400000 || *ref.Sy != -100000 {
			t.Errorf("%s: shared attributes = %+v", tt.preset, ref)
		}
		if ref.StPos != nil || ref.FadeDir != nil || ref.Sx != nil || ref.Kx != nil || ref.Ky != nil {
			t.Errorf("%s: default attributes emitted: %+v", tt.preset, ref)
		}
		if ref.Algn != "bl" || ref.RotWithShape == nil || *ref.RotWithShape {
			t.Errorf("%s: algn/rotWithShape = %q/%v", tt.preset, ref.Algn, ref.RotWithShape)
		}
	}
}

func TestReflectionDefaultsOmitted(t *testing.T) {
	r := NewReflection()
	out, err := xml.Marshal(r.ToReflection())
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `<a:reflection></a:reflection>` {
		t.Errorf("xml.Marshal = %s, expected an empty reflection", out)
	}
}

func TestEffectListOrder(t *testing.T) {
	e := NewEffectList(theme.DefaultPalette())
	if e.HasEffects() || e.ToEffectList() != nil {
		t.Fatal("empty effect list emitted an element")
	}

	e.SoftEdge.SetRadius(5)
	e.Reflection.SetPreset(ReflectionHalfTouching)
	e.Shadow.SetPreset(ShadowInnerTop)
	e.Glow.SetThemeColor(theme.Accent2, 0, 40)
	e.Glow.SetSize(300)

	if e.Glow.Size() != 150 {
		t.Errorf("glow size = %v, expected 150", e.Glow.Size())
	}

	out, err := xml.Marshal(e.ToEffectList())
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	order := []string{"<a:glow ", "<a:innerShdw ", "<a:reflection ", "<a:softEdge "}
	last := -1
	for _, tag := range order {
		i := strings.Index(s, tag)
		if i < 0 {
			t.Fatalf("%s missing from %s", tag, s)
		}
		if i < last {
			t.Errorf("%s out of order in %s", tag, s)
		}
		last = i
	}
	if strings.Contains(s, "outerShdw") {
		t.Errorf("inner shadow also emitted an outer shadow: %s", s)
	}
	if !strings.Contains(s, `<a:glow rad="1905000"><a:schemeClr val="accent2"><a:alpha val="60000">`) {
		t.Errorf("glow not emitted as expected: %s", s)
	}
	if !strings.Contains(s, `<a:softEdge rad="63500">`) {
		t.Errorf("softEdge not emitted as expected: %s", s)
	}
}
