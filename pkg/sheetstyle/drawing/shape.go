package drawing

import (
	"encoding/xml"

	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/schema/dml"
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/theme"
)

// ShapeProperties bundles the visual formatting of a shape, chart element
// or picture.
type ShapeProperties struct {
	palette theme.Palette

	// PresetGeometry is the a:prstGeom preset, such as "rect". Empty leaves
	// the geometry to the host element.
	PresetGeometry string

	Fill       Fill
	Outline    Line
	EffectList EffectList
	Format3D   Format3D
	Rotation3D Rotation3D
}

// NewShapeProperties returns empty shape properties whose theme colors
// resolve against a copy of p.
func NewShapeProperties(p theme.Palette) ShapeProperties {
	return ShapeProperties{
		palette:    p.Clone(),
		Fill:       NewFill(p),
		Outline:    NewLine(p),
		EffectList: NewEffectList(p),
		Format3D:   NewFormat3D(p),
		Rotation3D: NewRotation3D(),
	}
}

// Palette returns a copy of the palette theme colors resolve against.
func (s *ShapeProperties) Palette() theme.Palette { return s.palette.Clone() }

// HasShapeProperties reports whether ToShapeProperties has any child to
// write.
func (s *ShapeProperties) HasShapeProperties() bool {
	return s.PresetGeometry != "" || s.Fill.HasFill() || s.Outline.HasOutline() ||
		s.EffectList.HasEffects() || ToScene3D(&s.Rotation3D, &s.Format3D) != nil ||
		s.Format3D.HasShape3D()
}

// ToShapeProperties emits the spPr element named prefix:spPr, or plain spPr
// when prefix is empty. Children follow the schema order prstGeom, fill, ln,
// effectLst, scene3d, sp3d.
func (s *ShapeProperties) ToShapeProperties(prefix string) *dml.ShapeProperties {
	name := "spPr"
	if prefix != "" {
		name = prefix + ":spPr"
	}
	sp := &dml.ShapeProperties{XMLName: xml.Name{Local: name}}
	if s.PresetGeometry != "" {
		sp.PrstGeom = &dml.PresetGeometry{Prst: s.PresetGeometry, AvLst: &dml.Empty{}}
	}
	sp.FillChoice = s.Fill.ToFill()
	sp.Ln = s.Outline.ToOutline()
	sp.EffectLst = s.EffectList.ToEffectList()
	sp.Scene3D = ToScene3D(&s.Rotation3D, &s.Format3D)
	sp.Sp3D = s.Format3D.ToShape3D()
	return sp
}

// Clone returns a deep copy.
func (s ShapeProperties) Clone() ShapeProperties {
	s.palette = s.palette.Clone()
	s.Fill = s.Fill.Clone()
	s.Outline = s.Outline.Clone()
	s.EffectList = s.EffectList.Clone()
	s.Format3D = s.Format3D.Clone()
	return s
}
