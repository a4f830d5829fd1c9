package drawing

import (
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/schema/dml"
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/theme"
)

// LineFillType selects how an outline is painted.
type LineFillType int

// Line fill types.
const (
	LineAutomatic LineFillType = iota
	LineNone
	LineSolid
	LineGradient
)

// CompoundLine is the a:ln cmpd attribute.
type CompoundLine string

// Compound line types.
const (
	CompoundSingle    CompoundLine = "sng"
	CompoundDouble    CompoundLine = "dbl"
	CompoundThickThin CompoundLine = "thickThin"
	CompoundThinThick CompoundLine = "thinThick"
	CompoundTriple    CompoundLine = "tri"
)

// DashType is a preset dash pattern (ST_PresetLineDashVal).
type DashType string

// Dash types.
const (
	DashSolid            DashType = "solid"
	DashDot              DashType = "dot"
	DashDash             DashType = "dash"
	DashLargeDash        DashType = "lgDash"
	DashDashDot          DashType = "dashDot"
	DashLargeDashDot     DashType = "lgDashDot"
	DashLargeDashDotDot  DashType = "lgDashDotDot"
	DashSystemDash       DashType = "sysDash"
	DashSystemDot        DashType = "sysDot"
	DashSystemDashDot    DashType = "sysDashDot"
	DashSystemDashDotDot DashType = "sysDashDotDot"
)

// LineCap is the a:ln cap attribute.
type LineCap string

// Line caps.
const (
	CapRound  LineCap = "rnd"
	CapSquare LineCap = "sq"
	CapFlat   LineCap = "flat"
)

// LineJoin selects the join child of a:ln.
type LineJoin int

// Line joins.
const (
	JoinRound LineJoin = iota
	JoinBevel
	JoinMiter
)

// PenAlignment is the a:ln algn attribute.
type PenAlignment string

// Pen alignments.
const (
	PenCenter PenAlignment = "ctr"
	PenInset  PenAlignment = "in"
)

// ArrowType is a line end decoration (ST_LineEndType).
type ArrowType string

// Arrow types.
const (
	ArrowNone     ArrowType = "none"
	ArrowTriangle ArrowType = "triangle"
	ArrowStealth  ArrowType = "stealth"
	ArrowDiamond  ArrowType = "diamond"
	ArrowOval     ArrowType = "oval"
	ArrowOpen     ArrowType = "arrow"
)

// ArrowSize is a line end width or length (ST_LineEndWidth, ST_LineEndLength).
type ArrowSize string

// Arrow sizes.
const (
	ArrowSmall  ArrowSize = "sm"
	ArrowMedium ArrowSize = "med"
	ArrowLarge  ArrowSize = "lg"
)

// maxLineWidth is the widest outline Excel accepts, in points.
const maxLineWidth = 1584

// LineEnd describes a head or tail arrow.
type LineEnd struct {
	Type   ArrowType
	Width  ArrowSize
	Length ArrowSize

	HasType, HasWidth, HasLength bool
}

// SetType sets the arrow type.
func (e *LineEnd) SetType(t ArrowType) {
	e.Type = t
	e.HasType = true
}

// SetWidth sets the arrow width.
func (e *LineEnd) SetWidth(s ArrowSize) {
	e.Width = s
	e.HasWidth = true
}

// SetLength sets the arrow length.
func (e *LineEnd) SetLength(s ArrowSize) {
	e.Length = s
	e.HasLength = true
}

// IsSet reports whether any part of the arrow has been set.
func (e *LineEnd) IsSet() bool {
	return e.HasType || e.HasWidth || e.HasLength
}

func (e *LineEnd) toLineEnd() *dml.LineEnd {
	if !e.IsSet() {
		return nil
	}
	le := &dml.LineEnd{}
	if e.HasType {
		le.Type = string(e.Type)
	}
	if e.HasWidth {
		le.W = string(e.Width)
	}
	if e.HasLength {
		le.Len = string(e.Length)
	}
	return le
}

// Line is a shape outline. Every attribute carries a Has flag set on first
// write; unset attributes are left to the application.
type Line struct {
	Type       LineFillType
	SolidColor ColorTransform
	Gradient   GradientFill

	width    float64
	HasWidth bool

	Compound    CompoundLine
	HasCompound bool

	Dash    DashType
	HasDash bool

	Cap    LineCap
	HasCap bool

	Join       LineJoin
	miterLimit float64
	HasJoin    bool

	Alignment    PenAlignment
	HasAlignment bool

	Head LineEnd
	Tail LineEnd
}

// NewLine returns an automatic outline whose theme colors resolve against
// a copy of p.
func NewLine(p theme.Palette) Line {
	return Line{
		Type:       LineAutomatic,
		SolidColor: NewColorTransform(p),
		Gradient:   NewGradientFill(p),
		Compound:   CompoundSingle,
		Dash:       DashSolid,
		Cap:        CapSquare,
		Alignment:  PenCenter,
	}
}

// SetAutomaticLine lets the application choose the outline.
func (l *Line) SetAutomaticLine() { l.Type = LineAutomatic }

// SetNoLine removes the outline.
func (l *Line) SetNoLine() { l.Type = LineNone }

// SetSolidLine sets a solid RGB outline.
func (l *Line) SetSolidLine(hex string, transparency float64) {
	l.Type = LineSolid
	l.SolidColor.SetColor(hex, transparency)
}

// SetSolidThemeLine sets a solid theme color outline.
func (l *Line) SetSolidThemeLine(slot theme.Slot, tint, transparency float64) {
	l.Type = LineSolid
	l.SolidColor.SetThemeColor(slot, tint, transparency)
}

// SetGradientLine replaces the gradient branch with a copy of g.
func (l *Line) SetGradientLine(g GradientFill) {
	l.Type = LineGradient
	l.Gradient = g.Clone()
}

// Width returns the outline width in points.
func (l *Line) Width() float64 { return l.width }

// SetWidth sets the outline width, clamped to [0, 1584] points.
func (l *Line) SetWidth(pt float64) {
	l.width = clamp(pt, 0, maxLineWidth)
	l.HasWidth = true
}

// SetCompound sets the compound line type.
func (l *Line) SetCompound(c CompoundLine) {
	l.Compound = c
	l.HasCompound = true
}

// SetDash sets the preset dash pattern.
func (l *Line) SetDash(d DashType) {
	l.Dash = d
	l.HasDash = true
}

// SetCap sets the line cap.
func (l *Line) SetCap(c LineCap) {
	l.Cap = c
	l.HasCap = true
}

// SetJoin sets a round or bevel join. Use SetMiterJoin for miter joins.
func (l *Line) SetJoin(j LineJoin) {
	l.Join = j
	l.HasJoin = true
}

// SetMiterJoin sets a miter join with a limit in percent, clamped to
// [0, 1000]. A zero limit leaves the limit to the application.
func (l *Line) SetMiterJoin(limit float64) {
	l.Join = JoinMiter
	l.miterLimit = clamp(limit, 0, 1000)
	l.HasJoin = true
}

// MiterLimit returns the miter limit in percent.
func (l *Line) MiterLimit() float64 { return l.miterLimit }

// SetAlignment sets the pen alignment.
func (l *Line) SetAlignment(a PenAlignment) {
	l.Alignment = a
	l.HasAlignment = true
}

// HasOutline reports whether ToOutline writes anything.
func (l *Line) HasOutline() bool {
	return l.Type != LineAutomatic || l.HasWidth || l.HasCompound || l.HasDash ||
		l.HasCap || l.HasJoin || l.HasAlignment || l.Head.IsSet() || l.Tail.IsSet()
}

// ToOutline emits the a:ln element, or nil when nothing is set. Children
// follow the schema order: fill, prstDash, join, headEnd, tailEnd.
func (l *Line) ToOutline() *dml.Outline {
	if !l.HasOutline() {
		return nil
	}
	ln := &dml.Outline{}
	if l.HasWidth {
		w := PointsToEMU(l.width)
		ln.W = &w
	}
	if l.HasCap {
		ln.Cap = string(l.Cap)
	}
	if l.HasCompound {
		ln.Cmpd = string(l.Compound)
	}
	if l.HasAlignment {
		ln.Algn = string(l.Alignment)
	}

	switch l.Type {
	case LineNone:
		ln.NoFill = &dml.Empty{}
	case LineSolid:
		ln.SolidFill = &dml.SolidFill{ColorChoice: l.SolidColor.ToColorChoice()}
	case LineGradient:
		ln.GradFill = l.Gradient.ToGradientFill()
	}

	if l.HasDash {
		ln.PrstDash = &dml.AttrValString{Val: string(l.Dash)}
	}
	if l.HasJoin {
		switch l.Join {
		case JoinRound:
			ln.Round = &dml.Empty{}
		case JoinBevel:
			ln.Bevel = &dml.Empty{}
		case JoinMiter:
			m := &dml.Miter{}
			if l.miterLimit > 0 {
				lim := PercentToFixed(l.miterLimit)
				m.Lim = &lim
			}
			ln.Miter = m
		}
	}
	ln.HeadEnd = l.Head.toLineEnd()
	ln.TailEnd = l.Tail.toLineEnd()
	return ln
}

// Clone returns a deep copy.
func (l Line) Clone() Line {
	l.SolidColor = l.SolidColor.Clone()
	l.Gradient = l.Gradient.Clone()
	return l
}
