package drawing

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/theme"
)

func TestScene3DGate(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(r *Rotation3D, f *Format3D)
		expected bool
	}{
		{"nothing set", func(r *Rotation3D, f *Format3D) {}, false},
		{"camera", func(r *Rotation3D, f *Format3D) { r.SetCameraPreset(CameraIsometricLeftDown) }, true},
		{"lighting", func(r *Rotation3D, f *Format3D) { f.SetLighting(LightBalanced, 0) }, true},
		{"bevel top", func(r *Rotation3D, f *Format3D) { f.SetBevelTop(BevelCircle, 6, 6) }, true},
		{"bevel bottom", func(r *Rotation3D, f *Format3D) { f.SetBevelBottom(BevelAngle, 3, 3) }, true},
		{"extrusion only", func(r *Rotation3D, f *Format3D) { f.SetExtrusionHeight(10) }, false},
		{"contour color only", func(r *Rotation3D, f *Format3D) { f.SetContourColor("FF0000", 0) }, false},
		{"material only", func(r *Rotation3D, f *Format3D) { f.Material = MaterialMetal }, false},
	}

	for _, tt := range tests {
		r := NewRotation3D()
		f := NewFormat3D(theme.DefaultPalette())
		tt.setup(&r, &f)
		if got := ToScene3D(&r, &f) != nil; got != tt.expected {
			t.Errorf("%s: scene3d emitted = %v, expected %v", tt.name, got, tt.expected)
		}
	}

	if ToScene3D(nil, nil) != nil {
		t.Error("ToScene3D(nil, nil) emitted an element")
	}
}

func TestShape3DGate(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f *Format3D)
		expected bool
	}{
		{"nothing set", func(f *Format3D) {}, false},
		{"bevel top", func(f *Format3D) { f.SetBevelTop(BevelCircle, 6, 6) }, true},
		{"bevel bottom", func(f *Format3D) { f.SetBevelBottom(BevelCircle, 6, 6) }, true},
		{"extrusion color", func(f *Format3D) { f.SetExtrusionColor("00FF00", 0) }, true},
		{"contour color", func(f *Format3D) { f.SetContourThemeColor(theme.Dark1, 0, 0) }, true},
		{"extrusion height", func(f *Format3D) { f.SetExtrusionHeight(12) }, true},
		{"contour width", func(f *Format3D) { f.SetContourWidth(1) }, true},
		{"material", func(f *Format3D) { f.Material = MaterialPlastic }, true},
		{"z distance", func(f *Format3D) { f.SetZDistance(-20) }, true},
		{"lighting only", func(f *Format3D) { f.SetLighting(LightHarsh, 30) }, false},
		{"material reset", func(f *Format3D) { f.Material = MaterialWarmMatte }, false},
		{"extrusion height clamped to zero", func(f *Format3D) { f.SetExtrusionHeight(-5) }, false},
	}

	for _, tt := range tests {
		f := NewFormat3D(theme.DefaultPalette())
		tt.setup(&f)
		if got := f.HasShape3D(); got != tt.expected {
			t.Errorf("%s: HasShape3D() = %v, expected %v", tt.name, got, tt.expected)
		}
		if got := f.ToShape3D() != nil; got != tt.expected {
			t.Errorf("%s: sp3d emitted = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}

func TestShape3DAttributes(t *testing.T) {
	f := NewFormat3D(theme.DefaultPalette())
	f.SetBevelTop(BevelSoftRound, 2000, 4)
	f.SetExtrusionHeight(10)
	f.SetZDistance(-5000)
	f.Material = MaterialMetal

	out, err := xml.Marshal(f.ToShape3D())
	if err != nil {
		t.Fatal(err)
	}
	expected := `<a:sp3d z="-50800000" extrusionH="127000" prstMaterial="metal">` +
		`<a:bevelT w="20116800" h="50800" prst="softRound"></a:bevelT></a:sp3d>`
	if string(out) != expected {
		t.Errorf("xml.Marshal = %s\nexpected %s", out, expected)
	}
}

func TestCameraPresets(t *testing.T) {
	presets := CameraPresets()
	if len(presets) != 62 {
		t.Fatalf("CameraPresets() returned %d presets, expected 62", len(presets))
	}
	seen := make(map[CameraPreset]bool)
	for _, p := range presets {
		if seen[p] {
			t.Errorf("%s listed twice", p)
		}
		seen[p] = true
	}
	for p := range cameraRotations {
		if !seen[p] {
			t.Errorf("%s has a rotation but is not listed", p)
		}
	}

	tests := []struct {
		preset      CameraPreset
		x, y, z     float64
		perspective float64
	}{
		{CameraOrthographicFront, 0, 0, 0, 0},
		{CameraIsometricTopUp, 314.7, 324.6, 60.2, 0},
		{CameraIsometricOffAxis3Bottom, 306.5, 58.7, 302.4, 0},
		{CameraPerspectiveContrastingLeftFacing, 43.9, 10.4, 356.4, 45},
		{CameraPerspectiveHeroicExtremeRightFacing, 325.5, 8.1, 2.6, 80},
		{CameraObliqueBottomRight, 0, 0, 0, 0},
		{CameraLegacyPerspectiveTop, 0, 0, 0, 45},
	}

	for _, tt := range tests {
		r := NewRotation3D()
		r.SetCameraPreset(tt.preset)
		if r.X() != tt.x || r.Y() != tt.y || r.Z() != tt.z || r.Perspective() != tt.perspective {
			t.Errorf("%s: rotation = %v/%v/%v fov %v, expected %v/%v/%v fov %v", tt.preset,
				r.X(), r.Y(), r.Z(), r.Perspective(), tt.x, tt.y, tt.z, tt.perspective)
		}
		cam := r.toCamera()
		if cam.Rot != nil || cam.Fov != nil {
			t.Errorf("%s: unchanged preset emitted rot/fov %+v", tt.preset, cam)
		}
	}
}

func TestRotation3DOverrides(t *testing.T) {
	r := NewRotation3D()
	r.SetPerspective(60)
	if r.Perspective() != 0 || r.HasCamera {
		t.Errorf("perspective applied to an orthographic camera: %v", r.Perspective())
	}

	r.SetCameraPreset(CameraPerspectiveFront)
	r.SetPerspective(500)
	r.SetX(400)
	r.SetY(20)

	scene := ToScene3D(&r, nil)
	if scene == nil {
		t.Fatal("camera did not emit a scene")
	}
	if scene.Camera.Fov == nil || *scene.Camera.Fov != 10800000 {
		t.Errorf("fov = %v, expected 10800000", scene.Camera.Fov)
	}
	rot := scene.Camera.Rot
	if rot == nil || rot.Lon != 21594000 || rot.Lat != 1200000 || rot.Rev != 0 {
		t.Errorf("rot = %+v, expected lat 1200000 lon 21594000 rev 0", rot)
	}
	if scene.LightRig.Rig != "threePt" || scene.LightRig.Dir != "t" || scene.LightRig.Rot != nil {
		t.Errorf("lightRig = %+v, expected the default three point rig", scene.LightRig)
	}
}

func TestShapePropertiesXML(t *testing.T) {
	sp := NewShapeProperties(theme.DefaultPalette())
	if sp.HasShapeProperties() {
		t.Fatal("new shape properties report content")
	}

	sp.PresetGeometry = "rect"
	sp.Fill.SetNoFill()
	sp.Outline.SetSolidLine("1F497D", 0)
	sp.Outline.SetWidth(2)
	sp.Outline.SetDash(DashSystemDot)
	sp.Outline.Tail.SetType(ArrowTriangle)
	sp.EffectList.Shadow.SetPreset(ShadowOuterBottom)
	sp.Format3D.SetBevelTop(BevelCircle, 6, 6)
	sp.Format3D.SetLighting(LightBalanced, 20)

	out, err := xml.Marshal(sp.ToShapeProperties("xdr"))
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	if !strings.HasPrefix(s, "<xdr:spPr>") || !strings.HasSuffix(s, "</xdr:spPr>") {
		t.Errorf("unexpected root element: %s", s)
	}
	order := []string{
		`<a:prstGeom prst="rect">`,
		`<a:noFill>`,
		`<a:ln w="25400">`,
		`<a:prstDash val="sysDot">`,
		`<a:tailEnd type="triangle">`,
		`<a:effectLst>`,
		`<a:scene3d>`,
		`<a:lightRig rig="balanced" dir="t"><a:rot lat="0" lon="0" rev="1200000">`,
		`<a:sp3d>`,
	}
	last := -1
	for _, part := range order {
		i := strings.Index(s, part)
		if i < 0 {
			t.Fatalf("%s missing from %s", part, s)
		}
		if i < last {
			t.Errorf("%s out of order in %s", part, s)
		}
		last = i
	}
}

func TestShapePropertiesCloneIsDeep(t *testing.T) {
	sp := NewShapeProperties(theme.DefaultPalette())
	sp.Fill.SetSolidFill("FF0000", 0)
	c := sp.Clone()
	c.Fill.SetSolidFill("00FF00", 0)
	c.Format3D.SetExtrusionColor("0000FF", 0)

	if sp.Fill.SolidColor.DisplayColor != "FF0000" {
		t.Errorf("clone shares fill: %q", sp.Fill.SolidColor.DisplayColor)
	}
	if sp.Format3D.HasExtrusionColor {
		t.Error("clone shares the 3-D format")
	}
}
