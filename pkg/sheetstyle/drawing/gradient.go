package drawing

import (
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/schema/dml"
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/theme"
)

// PathType selects linear or path (non-linear) gradient shading.
type PathType int

// Gradient shading types.
const (
	PathLinear PathType = iota
	PathShape
	PathCircle
	PathRectangle
)

// pathNames maps path types to the a:path path attribute.
var pathNames = map[PathType]string{
	PathShape:     "shape",
	PathCircle:    "circle",
	PathRectangle: "rect",
}

// GradientDirection anchors a path gradient at the center or a corner.
type GradientDirection int

// Path gradient directions.
const (
	DirectionCenter GradientDirection = iota
	DirectionFromTopLeft
	DirectionFromTopRight
	DirectionFromBottomLeft
	DirectionFromBottomRight
)

// pathRect is a fixed fillToRect/tileRect pair in percentage units.
type pathRect struct {
	fillToRect dml.RelativeRect
	tileRect   *dml.RelativeRect
}

// pathDirectionRects holds the corner-anchored rectangles. Each tile
// rectangle mirrors its focus rectangle so the gradient covers the shape
// from the anchored corner.
var pathDirectionRects = map[GradientDirection]pathRect{
	DirectionCenter: {
		fillToRect: dml.RelativeRect{L: 50000, T: 50000, R: 50000, B: 50000},
	},
	DirectionFromTopLeft: {
		fillToRect: dml.RelativeRect{R: 100000, B: 100000},
		tileRect:   &dml.RelativeRect{R: -100000, B: -100000},
	},
	DirectionFromTopRight: {
		fillToRect: dml.RelativeRect{L: 100000, B: 100000},
		tileRect:   &dml.RelativeRect{L: -100000, B: -100000},
	},
	DirectionFromBottomLeft: {
		fillToRect: dml.RelativeRect{R: 100000, T: 100000},
		tileRect:   &dml.RelativeRect{R: -100000, T: -100000},
	},
	DirectionFromBottomRight: {
		fillToRect: dml.RelativeRect{L: 100000, T: 100000},
		tileRect:   &dml.RelativeRect{L: -100000, T: -100000},
	},
}

// LinearDirection names the eight linear gradient directions of the Excel
// gallery.
type LinearDirection int

// Linear gradient directions.
const (
	LinearRight LinearDirection = iota
	LinearDiagonalTopLeftToBottomRight
	LinearDown
	LinearDiagonalTopRightToBottomLeft
	LinearLeft
	LinearDiagonalBottomRightToTopLeft
	LinearUp
	LinearDiagonalBottomLeftToTopRight
)

// Angle returns the shading angle in degrees.
func (d LinearDirection) Angle() float64 {
	if d < LinearRight || d > LinearDiagonalBottomLeftToTopRight {
		return 0
	}
	return float64(d) * 45
}

// GradientStop is a color at a position along the gradient.
type GradientStop struct {
	Color    ColorTransform
	position float64
}

// NewGradientStop returns a stop with the position clamped to [0, 100].
func NewGradientStop(color ColorTransform, position float64) GradientStop {
	s := GradientStop{Color: color}
	s.SetPosition(position)
	return s
}

// Position returns the stop position in percent.
func (s *GradientStop) Position() float64 { return s.position }

// SetPosition sets the stop position, clamped to [0, 100].
func (s *GradientStop) SetPosition(v float64) { s.position = clamp(v, 0, 100) }

// GradientFill is a list of gradient stops with linear or path shading.
// Stops keep insertion order; ordering and uniqueness of positions are up to
// the caller.
type GradientFill struct {
	palette theme.Palette

	Stops           []GradientStop
	PathType        PathType
	Direction       GradientDirection
	RotateWithShape bool

	angle float64
}

// NewGradientFill returns an empty linear gradient.
func NewGradientFill(p theme.Palette) GradientFill {
	return GradientFill{palette: p.Clone(), RotateWithShape: true}
}

// Angle returns the linear shading angle in degrees.
func (g *GradientFill) Angle() float64 { return g.angle }

// SetAngle sets the linear shading angle, clamped to [0, 359.9].
func (g *GradientFill) SetAngle(deg float64) { g.angle = clamp(deg, 0, 359.9) }

// SetLinear switches to linear shading at angle degrees.
func (g *GradientFill) SetLinear(deg float64) {
	g.PathType = PathLinear
	g.SetAngle(deg)
}

// SetLinearDirection switches to linear shading along a gallery direction.
func (g *GradientFill) SetLinearDirection(d LinearDirection) {
	g.SetLinear(d.Angle())
}

// SetPath switches to path shading anchored at direction.
func (g *GradientFill) SetPath(t PathType, d GradientDirection) {
	if t == PathLinear {
		return
	}
	g.PathType = t
	g.Direction = d
}

// AppendStop appends an RGB color stop.
func (g *GradientFill) AppendStop(hex string, position, transparency float64) {
	c := NewColorTransform(g.palette)
	c.SetColor(hex, transparency)
	g.Stops = append(g.Stops, NewGradientStop(c, position))
}

// AppendThemeStop appends a theme color stop.
func (g *GradientFill) AppendThemeStop(slot theme.Slot, tint, position, transparency float64) {
	c := NewColorTransform(g.palette)
	c.SetThemeColor(slot, tint, transparency)
	g.Stops = append(g.Stops, NewGradientStop(c, position))
}

// ClearStops removes all stops.
func (g *GradientFill) ClearStops() {
	g.Stops = nil
}

// SetPreset replaces the stops with a copy of a preset table. Unknown
// presets clear the stops.
func (g *GradientFill) SetPreset(preset GradientPreset) {
	g.ClearStops()
	for _, s := range gradientPresets[preset] {
		g.AppendStop(s.Color, s.Position, 0)
	}
}

// ToGradientFill emits the a:gradFill element.
func (g *GradientFill) ToGradientFill() *dml.GradientFill {
	gf := &dml.GradientFill{RotWithShape: g.RotateWithShape}
	if len(g.Stops) > 0 {
		gf.GsLst = &dml.GradientStopList{}
		for i := range g.Stops {
			gf.GsLst.Gs = append(gf.GsLst.Gs, dml.GradientStop{
				Pos:         PercentToFixed(g.Stops[i].position),
				ColorChoice: g.Stops[i].Color.ToColorChoice(),
			})
		}
	}

	if g.PathType == PathLinear {
		gf.Lin = &dml.LinearShade{Ang: DegreesToAngle(g.angle), Scaled: false}
		return gf
	}

	rects, ok := pathDirectionRects[g.Direction]
	if !ok {
		rects = pathDirectionRects[DirectionCenter]
	}
	fillToRect := rects.fillToRect
	gf.Path = &dml.PathShade{Path: pathNames[g.PathType], FillToRect: &fillToRect}
	if rects.tileRect != nil {
		tileRect := *rects.tileRect
		gf.TileRect = &tileRect
	}
	return gf
}

// Clone returns a deep copy.
func (g GradientFill) Clone() GradientFill {
	g.palette = g.palette.Clone()
	if g.Stops != nil {
		stops := make([]GradientStop, len(g.Stops))
		for i, s := range g.Stops {
			stops[i] = GradientStop{Color: s.Color.Clone(), position: s.position}
		}
		g.Stops = stops
	}
	return g
}
