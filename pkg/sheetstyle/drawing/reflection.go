package drawing

import (
	"strings"

	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/schema/dml"
)

// ReflectionPreset names a reflection of the Office gallery.
type ReflectionPreset int

// Reflection presets.
const (
	ReflectionTightTouching ReflectionPreset = iota
	ReflectionHalfTouching
	ReflectionFullTouching
	ReflectionTight4Pt
	ReflectionHalf4Pt
	ReflectionFull4Pt
	ReflectionTight8Pt
	ReflectionHalf8Pt
	ReflectionFull8Pt
)

var reflectionPresetNames = [...]string{
	"TightTouching", "HalfTouching", "FullTouching",
	"Tight4Pt", "Half4Pt", "Full4Pt",
	"Tight8Pt", "Half8Pt", "Full8Pt",
}

func (p ReflectionPreset) String() string {
	if p < 0 || int(p) >= len(reflectionPresetNames) {
		return "ReflectionPreset(?)"
	}
	return reflectionPresetNames[p]
}

// ParseReflectionPreset resolves a preset by name, ignoring case.
func ParseReflectionPreset(name string) (ReflectionPreset, bool) {
	for i, n := range reflectionPresetNames {
		if strings.EqualFold(n, name) {
			return ReflectionPreset(i), true
		}
	}
	return 0, false
}

// ReflectionPresets lists every preset in gallery order.
func ReflectionPresets() []ReflectionPreset {
	presets := make([]ReflectionPreset, len(reflectionPresetNames))
	for i := range presets {
		presets[i] = ReflectionPreset(i)
	}
	return presets
}

// Schema defaults of a:reflection.
const (
	defaultReflectionStartOpacity = 100
	defaultReflectionEndPosition  = 100
	defaultReflectionFadeDir      = 90
	defaultReflectionScale        = 100
)

// Reflection mirrors the shape below itself, fading from StartOpacity at
// StartPosition to EndOpacity at EndPosition.
type Reflection struct {
	blur          float64
	startOpacity  float64
	startPosition float64
	endOpacity    float64
	endPosition   float64
	distance      float64
	direction     float64
	fadeDirection float64
	sx, sy        float64
	kx, ky        float64

	Alignment       RectangleAlignment
	RotateWithShape bool

	Has bool
}

// NewReflection returns an unset reflection holding the schema defaults.
func NewReflection() Reflection {
	return Reflection{
		startOpacity:    defaultReflectionStartOpacity,
		endPosition:     defaultReflectionEndPosition,
		fadeDirection:   defaultReflectionFadeDir,
		sx:              defaultReflectionScale,
		sy:              defaultReflectionScale,
		Alignment:       AlignBottom,
		RotateWithShape: true,
	}
}

// SetBlur sets the blur radius, clamped to [0, 100] points.
func (r *Reflection) SetBlur(pt float64) {
	r.blur = clamp(pt, 0, 100)
	r.Has = true
}

// Blur returns the blur radius in points.
func (r *Reflection) Blur() float64 { return r.blur }

// SetOpacity sets the start and end opacity, each clamped to [0, 100]
// percent.
func (r *Reflection) SetOpacity(start, end float64) {
	r.startOpacity = clamp(start, 0, 100)
	r.endOpacity = clamp(end, 0, 100)
	r.Has = true
}

// Opacity returns the start and end opacity in percent.
func (r *Reflection) Opacity() (start, end float64) { return r.startOpacity, r.endOpacity }

// SetPosition sets where the fade starts and ends, each clamped to
// [0, 100] percent.
func (r *Reflection) SetPosition(start, end float64) {
	r.startPosition = clamp(start, 0, 100)
	r.endPosition = clamp(end, 0, 100)
	r.Has = true
}

// Position returns the fade start and end positions in percent.
func (r *Reflection) Position() (start, end float64) { return r.startPosition, r.endPosition }

// SetDistance sets the gap below the shape, clamped to [0, 100] points.
func (r *Reflection) SetDistance(pt float64) {
	r.distance = clamp(pt, 0, 100)
	r.Has = true
}

// Distance returns the gap below the shape in points.
func (r *Reflection) Distance() float64 { return r.distance }

// SetDirection sets the offset direction, clamped to [0, 359.9] degrees.
func (r *Reflection) SetDirection(deg float64) {
	r.direction = clamp(deg, 0, 359.9)
	r.Has = true
}

// Direction returns the offset direction in degrees.
func (r *Reflection) Direction() float64 { return r.direction }

// SetFadeDirection sets the fade direction, clamped to [0, 359.9] degrees.
func (r *Reflection) SetFadeDirection(deg float64) {
	r.fadeDirection = clamp(deg, 0, 359.9)
	r.Has = true
}

// FadeDirection returns the fade direction in degrees.
func (r *Reflection) FadeDirection() float64 { return r.fadeDirection }

// SetScale sets the horizontal and vertical ratio, each clamped to
// [-200, 200] percent.
func (r *Reflection) SetScale(sx, sy float64) {
	r.sx = clamp(sx, -200, 200)
	r.sy = clamp(sy, -200, 200)
	r.Has = true
}

// Scale returns the horizontal and vertical ratio in percent.
func (r *Reflection) Scale() (sx, sy float64) { return r.sx, r.sy }

// SetSkew sets the skew angles, each clamped to [-90, 90] degrees.
func (r *Reflection) SetSkew(kx, ky float64) {
	r.kx = clamp(kx, -90, 90)
	r.ky = clamp(ky, -90, 90)
	r.Has = true
}

// Skew returns the skew angles in degrees.
func (r *Reflection) Skew() (kx, ky float64) { return r.kx, r.ky }

// SetPreset copies a gallery reflection. Unknown presets are ignored.
func (r *Reflection) SetPreset(preset ReflectionPreset) {
	if preset < 0 || int(preset) >= len(reflectionPresetNames) {
		return
	}
	// Rows of three: tight, half, full at 0, 4 and 8 points.
	endPositions := [3]float64{35, 55, 90}
	distances := [3]float64{0, 4, 8}

	*r = NewReflection()
	r.blur = 0.5
	r.startOpacity = 52
	r.endOpacity = 0.3
	r.endPosition = endPositions[int(preset)%3]
	r.distance = distances[int(preset)/3]
	r.direction = 90
	r.sy = -100
	r.Alignment = AlignBottomLeft
	r.RotateWithShape = false
	r.Has = true
}

// ToReflection emits the a:reflection element. Attributes equal to their
// schema defaults are omitted.
func (r *Reflection) ToReflection() *dml.Reflection {
	ref := &dml.Reflection{}
	if r.blur != 0 {
		ref.BlurRad = intPtr(PointsToEMU(r.blur))
	}
	if r.startOpacity != defaultReflectionStartOpacity {
		ref.StA = intPtr(PercentToFixed(r.startOpacity))
	}
	if r.startPosition != 0 {
		ref.StPos = intPtr(PercentToFixed(r.startPosition))
	}
	if r.endOpacity != 0 {
		ref.EndA = intPtr(PercentToFixed(r.endOpacity))
	}
	if r.endPosition != defaultReflectionEndPosition {
		ref.EndPos = intPtr(PercentToFixed(r.endPosition))
	}
	if r.distance != 0 {
		ref.Dist = intPtr(PointsToEMU(r.distance))
	}
	if r.direction != 0 {
		ref.Dir = intPtr(DegreesToAngle(r.direction))
	}
	if r.fadeDirection != defaultReflectionFadeDir {
		ref.FadeDir = intPtr(DegreesToAngle(r.fadeDirection))
	}
	if r.sx != defaultReflectionScale {
		ref.Sx = intPtr(PercentToFixed(r.sx))
	}
	if r.sy != defaultReflectionScale {
		ref.Sy = intPtr(PercentToFixed(r.sy))
	}
	if r.kx != 0 {
		ref.Kx = intPtr(DegreesToAngle(r.kx))
	}
	if r.ky != 0 {
		ref.Ky = intPtr(DegreesToAngle(r.ky))
	}
	if r.Alignment != AlignBottom {
		ref.Algn = string(r.Alignment)
	}
	if !r.RotateWithShape {
		rot := false
		ref.RotWithShape = &rot
	}
	return ref
}
