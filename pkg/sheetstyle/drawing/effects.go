package drawing

import (
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/schema/dml"
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/theme"
)

// Glow is a blurred color halo around the shape.
type Glow struct {
	Color ColorTransform
	size  float64
	Has   bool
}

// NewGlow returns an unset glow.
func NewGlow(p theme.Palette) Glow {
	return Glow{Color: NewColorTransform(p)}
}

// Size returns the glow radius in points.
func (g *Glow) Size() float64 { return g.size }

// SetSize sets the glow radius, clamped to [0, 150] points.
func (g *Glow) SetSize(pt float64) {
	g.size = clamp(pt, 0, 150)
	g.Has = true
}

// SetColor sets an RGB glow color.
func (g *Glow) SetColor(hex string, transparency float64) {
	g.Color.SetColor(hex, transparency)
	g.Has = true
}

// SetThemeColor sets a theme glow color.
func (g *Glow) SetThemeColor(slot theme.Slot, tint, transparency float64) {
	g.Color.SetThemeColor(slot, tint, transparency)
	g.Has = true
}

// ToGlow emits the a:glow element.
func (g *Glow) ToGlow() *dml.Glow {
	return &dml.Glow{Rad: PointsToEMU(g.size), ColorChoice: g.Color.ToColorChoice()}
}

// Clone returns a deep copy.
func (g Glow) Clone() Glow {
	g.Color = g.Color.Clone()
	return g
}

// SoftEdge feathers the shape border.
type SoftEdge struct {
	radius float64
	Has    bool
}

// Radius returns the feather radius in points.
func (s *SoftEdge) Radius() float64 { return s.radius }

// SetRadius sets the feather radius, clamped to [0, 100] points.
func (s *SoftEdge) SetRadius(pt float64) {
	s.radius = clamp(pt, 0, 100)
	s.Has = true
}

// ToSoftEdge emits the a:softEdge element.
func (s *SoftEdge) ToSoftEdge() *dml.SoftEdge {
	return &dml.SoftEdge{Rad: PointsToEMU(s.radius)}
}

// EffectList groups the shape effects in the order the schema writes them.
type EffectList struct {
	Glow       Glow
	Shadow     Shadow
	Reflection Reflection
	SoftEdge   SoftEdge
}

// NewEffectList returns an empty effect list whose theme colors resolve
// against a copy of p.
func NewEffectList(p theme.Palette) EffectList {
	return EffectList{
		Glow:       NewGlow(p),
		Shadow:     NewShadow(p),
		Reflection: NewReflection(),
	}
}

// HasEffects reports whether any effect has been set.
func (e *EffectList) HasEffects() bool {
	return e.Glow.Has || e.Shadow.Has || e.Reflection.Has || e.SoftEdge.Has
}

// ToEffectList emits the a:effectLst element, or nil when no effect is set.
// Children are written as glow, innerShdw, outerShdw, reflection, softEdge.
func (e *EffectList) ToEffectList() *dml.EffectList {
	if !e.HasEffects() {
		return nil
	}
	el := &dml.EffectList{}
	if e.Glow.Has {
		el.Glow = e.Glow.ToGlow()
	}
	if e.Shadow.Has {
		if e.Shadow.IsInnerShadow {
			el.InnerShdw = e.Shadow.ToInnerShadow()
		} else {
			el.OuterShdw = e.Shadow.ToOuterShadow()
		}
	}
	if e.Reflection.Has {
		el.Reflection = e.Reflection.ToReflection()
	}
	if e.SoftEdge.Has {
		el.SoftEdge = e.SoftEdge.ToSoftEdge()
	}
	return el
}

// Clone returns a deep copy.
func (e EffectList) Clone() EffectList {
	e.Glow = e.Glow.Clone()
	e.Shadow = e.Shadow.Clone()
	return e
}
