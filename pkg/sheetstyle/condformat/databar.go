package condformat

import (
	"encoding/xml"
	"math"
	"strconv"

	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/schema/x14"
)

// BarDirection is the direction data bars grow in.
type BarDirection string

// Bar directions.
const (
	DirectionContext     BarDirection = "context"
	DirectionLeftToRight BarDirection = "leftToRight"
	DirectionRightToLeft BarDirection = "rightToLeft"
)

// AxisPosition places the axis between negative and positive bars.
type AxisPosition string

// Axis positions.
const (
	AxisAutomatic AxisPosition = "automatic"
	AxisMiddle    AxisPosition = "middle"
	AxisNone      AxisPosition = "none"
)

// Schema defaults of x14:dataBar.
const (
	defaultMinLength = 10
	defaultMaxLength = 90
)

// DataBar2010 is an Excel 2010 data bar.
type DataBar2010 struct {
	minLength uint
	maxLength uint

	Border                               bool
	Gradient                             bool
	Direction                            BarDirection
	NegativeBarColorSameAsPositive       bool
	NegativeBarBorderColorSameAsPositive bool
	AxisPosition                         AxisPosition

	Min Cfvo2010
	Max Cfvo2010

	FillColor           Color
	BorderColor         Color
	NegativeFillColor   Color
	NegativeBorderColor Color
	AxisColor           Color
}

// NewDataBar2010 returns a gradient data bar spanning the automatic minimum
// and maximum.
func NewDataBar2010() DataBar2010 {
	return DataBar2010{
		minLength:                            defaultMinLength,
		maxLength:                            defaultMaxLength,
		Gradient:                             true,
		Direction:                            DirectionContext,
		NegativeBarBorderColorSameAsPositive: true,
		AxisPosition:                         AxisAutomatic,
		Min:                                  NewCfvo2010(ValueAutoMin, ""),
		Max:                                  NewCfvo2010(ValueAutoMax, ""),
	}
}

// MinLength returns the shortest bar in percent of the cell width.
func (d *DataBar2010) MinLength() uint { return d.minLength }

// SetMinLength sets the shortest bar, clamped to [0, 100] percent.
func (d *DataBar2010) SetMinLength(v int) { d.minLength = clampLength(v) }

// MaxLength returns the longest bar in percent of the cell width.
func (d *DataBar2010) MaxLength() uint { return d.maxLength }

// SetMaxLength sets the longest bar, clamped to [0, 100] percent.
func (d *DataBar2010) SetMaxLength(v int) { d.maxLength = clampLength(v) }

func clampLength(v int) uint {
	return uint(math.Max(0, math.Min(100, float64(v))))
}

// ToDataBar emits the x14:dataBar element. Attributes equal to their schema
// defaults are omitted; children are written as the two cfvo elements
// followed by the colors that are set.
func (d *DataBar2010) ToDataBar() *x14.DataBar {
	db := &x14.DataBar{
		Border:                         d.Border,
		NegativeBarColorSameAsPositive: d.NegativeBarColorSameAsPositive,
	}
	if d.minLength != defaultMinLength {
		db.MinLength = uintPtr(d.minLength)
	}
	if d.maxLength != defaultMaxLength {
		db.MaxLength = uintPtr(d.maxLength)
	}
	if !d.Gradient {
		db.Gradient = boolPtr(false)
	}
	if d.Direction != DirectionContext {
		db.Direction = string(d.Direction)
	}
	if !d.NegativeBarBorderColorSameAsPositive {
		db.NegativeBarBorderColorSameAsPositive = boolPtr(false)
	}
	if d.AxisPosition != AxisAutomatic {
		db.AxisPosition = string(d.AxisPosition)
	}

	db.Cfvo = []*x14.Cfvo{d.Min.ToCfvo(), d.Max.ToCfvo()}

	if d.FillColor.IsSet() {
		db.FillColor = d.FillColor.ToX14Color("fillColor")
	}
	if d.BorderColor.IsSet() {
		db.BorderColor = d.BorderColor.ToX14Color("borderColor")
	}
	if d.NegativeFillColor.IsSet() {
		db.NegativeFillColor = d.NegativeFillColor.ToX14Color("negativeFillColor")
	}
	if d.NegativeBorderColor.IsSet() {
		db.NegativeBorderColor = d.NegativeBorderColor.ToX14Color("negativeBorderColor")
	}
	if d.AxisColor.IsSet() {
		db.AxisColor = d.AxisColor.ToX14Color("axisColor")
	}
	return db
}

// FromDataBar reads an x14:dataBar element whose start element has just
// been read from dec. It consumes the matching end element.
func FromDataBar(dec *xml.Decoder, start xml.StartElement) DataBar2010 {
	d := NewDataBar2010()
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "minLength":
			if v, err := strconv.Atoi(attr.Value); err == nil {
				d.SetMinLength(v)
			}
		case "maxLength":
			if v, err := strconv.Atoi(attr.Value); err == nil {
				d.SetMaxLength(v)
			}
		case "border":
			d.Border = parseBool(attr.Value, false)
		case "gradient":
			d.Gradient = parseBool(attr.Value, true)
		case "direction":
			d.Direction = BarDirection(attr.Value)
		case "negativeBarColorSameAsPositive":
			d.NegativeBarColorSameAsPositive = parseBool(attr.Value, false)
		case "negativeBarBorderColorSameAsPositive":
			d.NegativeBarBorderColorSameAsPositive = parseBool(attr.Value, true)
		case "axisPosition":
			d.AxisPosition = AxisPosition(attr.Value)
		}
	}

	cfvoCount := 0
	depth := 1
	for depth > 0 {
		token, err := dec.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "cfvo":
				c := FromCfvo(dec, t)
				if cfvoCount == 0 {
					d.Min = c
				} else {
					d.Max = c
				}
				cfvoCount++
				depth--
			case "fillColor":
				d.FillColor = FromX14Color(t)
			case "borderColor":
				d.BorderColor = FromX14Color(t)
			case "negativeFillColor":
				d.NegativeFillColor = FromX14Color(t)
			case "negativeBorderColor":
				d.NegativeBorderColor = FromX14Color(t)
			case "axisColor":
				d.AxisColor = FromX14Color(t)
			}
		case xml.EndElement:
			depth--
		}
	}
	return d
}

// Clone returns a deep copy.
func (d DataBar2010) Clone() DataBar2010 {
	d.FillColor = d.FillColor.Clone()
	d.BorderColor = d.BorderColor.Clone()
	d.NegativeFillColor = d.NegativeFillColor.Clone()
	d.NegativeBorderColor = d.NegativeBorderColor.Clone()
	d.AxisColor = d.AxisColor.Clone()
	return d
}
