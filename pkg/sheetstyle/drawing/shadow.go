package drawing

import (
	"strings"

	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/schema/dml"
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/theme"
)

// ShadowPreset names a shadow of the Office gallery.
type ShadowPreset int

// Shadow presets.
const (
	ShadowOuterDiagonalBottomRight ShadowPreset = iota
	ShadowOuterBottom
	ShadowOuterDiagonalBottomLeft
	ShadowOuterRight
	ShadowOuterCenter
	ShadowOuterLeft
	ShadowOuterDiagonalTopRight
	ShadowOuterTop
	ShadowOuterDiagonalTopLeft
	ShadowInnerDiagonalTopLeft
	ShadowInnerTop
	ShadowInnerDiagonalTopRight
	ShadowInnerLeft
	ShadowInnerCenter
	ShadowInnerRight
	ShadowInnerDiagonalBottomLeft
	ShadowInnerBottom
	ShadowInnerDiagonalBottomRight
	ShadowPerspectiveDiagonalUpperLeft
	ShadowPerspectiveDiagonalUpperRight
	ShadowPerspectiveBelow
	ShadowPerspectiveDiagonalLowerLeft
	ShadowPerspectiveDiagonalLowerRight
)

var shadowPresetNames = [...]string{
	"OuterDiagonalBottomRight", "OuterBottom", "OuterDiagonalBottomLeft", "OuterRight",
	"OuterCenter", "OuterLeft", "OuterDiagonalTopRight", "OuterTop", "OuterDiagonalTopLeft",
	"InnerDiagonalTopLeft", "InnerTop", "InnerDiagonalTopRight", "InnerLeft", "InnerCenter",
	"InnerRight", "InnerDiagonalBottomLeft", "InnerBottom", "InnerDiagonalBottomRight",
	"PerspectiveDiagonalUpperLeft", "PerspectiveDiagonalUpperRight", "PerspectiveBelow",
	"PerspectiveDiagonalLowerLeft", "PerspectiveDiagonalLowerRight",
}

func (p ShadowPreset) String() string {
	if p < 0 || int(p) >= len(shadowPresetNames) {
		return "ShadowPreset(?)"
	}
	return shadowPresetNames[p]
}

// ParseShadowPreset resolves a preset by name, ignoring case.
func ParseShadowPreset(name string) (ShadowPreset, bool) {
	for i, n := range shadowPresetNames {
		if strings.EqualFold(n, name) {
			return ShadowPreset(i), true
		}
	}
	return 0, false
}

// ShadowPresets lists every preset in gallery order.
func ShadowPresets() []ShadowPreset {
	presets := make([]ShadowPreset, len(shadowPresetNames))
	for i := range presets {
		presets[i] = ShadowPreset(i)
	}
	return presets
}

// shadowParams is one row of the shadow gallery.
type shadowParams struct {
	inner        bool
	transparency float64
	sx, sy       float64
	kx, ky       float64
	blur         float64
	angle        float64
	distance     float64
	align        RectangleAlignment
}

func outerShadow(angle float64, align RectangleAlignment) shadowParams {
	return shadowParams{transparency: 60, sx: 100, sy: 100, blur: 4, angle: angle, distance: 3, align: align}
}

func innerShadow(angle float64) shadowParams {
	return shadowParams{inner: true, transparency: 50, sx: 100, sy: 100, blur: 5, angle: angle, distance: 4, align: AlignBottom}
}

var shadowPresets = map[ShadowPreset]shadowParams{
	ShadowOuterDiagonalBottomRight: outerShadow(45, AlignTopLeft),
	ShadowOuterBottom:              outerShadow(90, AlignTop),
	ShadowOuterDiagonalBottomLeft:  outerShadow(135, AlignTopRight),
	ShadowOuterRight:               outerShadow(0, AlignLeft),
	ShadowOuterCenter: {
		transparency: 60, sx: 102, sy: 102, blur: 5, angle: 0, distance: 0, align: AlignCenter,
	},
	ShadowOuterLeft:             outerShadow(180, AlignRight),
	ShadowOuterDiagonalTopRight: outerShadow(315, AlignBottomLeft),
	ShadowOuterTop:              outerShadow(270, AlignBottom),
	ShadowOuterDiagonalTopLeft:  outerShadow(225, AlignBottomRight),

	ShadowInnerDiagonalTopLeft:  innerShadow(225),
	ShadowInnerTop:              innerShadow(270),
	ShadowInnerDiagonalTopRight: innerShadow(315),
	ShadowInnerLeft:             innerShadow(180),
	ShadowInnerCenter: {
		inner: true, transparency: 50, sx: 100, sy: 100, blur: 9, angle: 0, distance: 0, align: AlignBottom,
	},
	ShadowInnerRight:               innerShadow(0),
	ShadowInnerDiagonalBottomLeft:  innerShadow(135),
	ShadowInnerBottom:              innerShadow(90),
	ShadowInnerDiagonalBottomRight: innerShadow(45),

	ShadowPerspectiveDiagonalUpperLeft: {
		transparency: 80, sx: 100, sy: 23, kx: -20, blur: 6, angle: 315, align: AlignBottomLeft,
	},
	ShadowPerspectiveDiagonalUpperRight: {
		transparency: 80, sx: 100, sy: 23, kx: 20, blur: 6, angle: 225, align: AlignBottomRight,
	},
	ShadowPerspectiveBelow: {
		transparency: 85, sx: 90, sy: -19, blur: 12, angle: 90, distance: 25, align: AlignBottom,
	},
	ShadowPerspectiveDiagonalLowerLeft: {
		transparency: 80, sx: 100, sy: -23, kx: 13.34, blur: 6, angle: 135, distance: 1, align: AlignBottomRight,
	},
	ShadowPerspectiveDiagonalLowerRight: {
		transparency: 80, sx: 100, sy: -23, kx: -13.34, blur: 6, angle: 45, distance: 1, align: AlignBottomLeft,
	},
}

// Shadow is an inner or outer shadow effect. Size and skew start neutral;
// Has is set by every setter.
type Shadow struct {
	IsInnerShadow   bool
	Color           ColorTransform
	Alignment       RectangleAlignment
	RotateWithShape bool

	sx, sy   float64
	kx, ky   float64
	blur     float64
	angle    float64
	distance float64

	Has bool
}

// NewShadow returns an unset outer shadow in black.
func NewShadow(p theme.Palette) Shadow {
	s := Shadow{
		Color:           NewColorTransform(p),
		Alignment:       AlignBottom,
		RotateWithShape: true,
		sx:              100,
		sy:              100,
	}
	s.Color.SetColor("000000", 0)
	return s
}

// SetColor sets an RGB shadow color.
func (s *Shadow) SetColor(hex string, transparency float64) {
	s.Color.SetColor(hex, transparency)
	s.Has = true
}

// SetThemeColor sets a theme shadow color.
func (s *Shadow) SetThemeColor(slot theme.Slot, tint, transparency float64) {
	s.Color.SetThemeColor(slot, tint, transparency)
	s.Has = true
}

// SetTransparency sets the shadow transparency, clamped to [0, 100].
func (s *Shadow) SetTransparency(v float64) {
	s.Color.SetTransparency(v)
	s.Has = true
}

// Size returns the horizontal and vertical scale in percent.
func (s *Shadow) Size() (sx, sy float64) { return s.sx, s.sy }

// SetSize scales the shadow uniformly, clamped to [1, 200] percent.
func (s *Shadow) SetSize(pct float64) {
	v := clamp(pct, 1, 200)
	s.sx, s.sy = v, v
	s.Has = true
}

// SetScale sets the horizontal and vertical scale separately, each clamped
// to [-200, 200] percent. Negative values mirror the shadow.
func (s *Shadow) SetScale(sx, sy float64) {
	s.sx = clamp(sx, -200, 200)
	s.sy = clamp(sy, -200, 200)
	s.Has = true
}

// Skew returns the horizontal and vertical skew in degrees.
func (s *Shadow) Skew() (kx, ky float64) { return s.kx, s.ky }

// SetSkew sets the skew angles, each clamped to [-90, 90] degrees.
func (s *Shadow) SetSkew(kx, ky float64) {
	s.kx = clamp(kx, -90, 90)
	s.ky = clamp(ky, -90, 90)
	s.Has = true
}

// Blur returns the blur radius in points.
func (s *Shadow) Blur() float64 { return s.blur }

// SetBlur sets the blur radius, clamped to [0, 100] points.
func (s *Shadow) SetBlur(pt float64) {
	s.blur = clamp(pt, 0, 100)
	s.Has = true
}

// Angle returns the shadow direction in degrees.
func (s *Shadow) Angle() float64 { return s.angle }

// SetAngle sets the shadow direction, clamped to [0, 359.9] degrees.
func (s *Shadow) SetAngle(deg float64) {
	s.angle = clamp(deg, 0, 359.9)
	s.Has = true
}

// Distance returns the shadow offset in points.
func (s *Shadow) Distance() float64 { return s.distance }

// SetDistance sets the shadow offset, clamped to [0, 200] points.
func (s *Shadow) SetDistance(pt float64) {
	s.distance = clamp(pt, 0, 200)
	s.Has = true
}

// SetPreset copies a gallery shadow, keeping the current color but
// replacing its transparency. Gallery shadows never rotate with the shape.
// Unknown presets are ignored.
func (s *Shadow) SetPreset(preset ShadowPreset) {
	p, ok := shadowPresets[preset]
	if !ok {
		return
	}
	s.IsInnerShadow = p.inner
	s.Color.SetTransparency(p.transparency)
	s.sx, s.sy = p.sx, p.sy
	s.kx, s.ky = p.kx, p.ky
	s.blur = p.blur
	s.angle = p.angle
	s.distance = p.distance
	s.Alignment = p.align
	s.RotateWithShape = false
	s.Has = true
}

// ToOuterShadow emits the a:outerShdw element. Scale, skew and alignment are
// written only when they differ from the schema defaults.
func (s *Shadow) ToOuterShadow() *dml.OuterShadow {
	o := &dml.OuterShadow{
		BlurRad:      PointsToEMU(s.blur),
		Dist:         PointsToEMU(s.distance),
		Dir:          DegreesToAngle(s.angle),
		RotWithShape: s.RotateWithShape,
		ColorChoice:  s.Color.ToColorChoice(),
	}
	if s.sx != 100 {
		o.Sx = intPtr(PercentToFixed(s.sx))
	}
	if s.sy != 100 {
		o.Sy = intPtr(PercentToFixed(s.sy))
	}
	if s.kx != 0 {
		o.Kx = intPtr(DegreesToAngle(s.kx))
	}
	if s.ky != 0 {
		o.Ky = intPtr(DegreesToAngle(s.ky))
	}
	if s.Alignment != AlignBottom {
		o.Algn = string(s.Alignment)
	}
	return o
}

// ToInnerShadow emits the a:innerShdw element.
func (s *Shadow) ToInnerShadow() *dml.InnerShadow {
	return &dml.InnerShadow{
		BlurRad:     PointsToEMU(s.blur),
		Dist:        PointsToEMU(s.distance),
		Dir:         DegreesToAngle(s.angle),
		ColorChoice: s.Color.ToColorChoice(),
	}
}

// Clone returns a deep copy.
func (s Shadow) Clone() Shadow {
	s.Color = s.Color.Clone()
	return s
}

func intPtr(v int) *int { return &v }
