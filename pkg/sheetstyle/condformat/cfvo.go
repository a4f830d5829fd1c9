package condformat

import (
	"encoding/xml"
	"strings"

	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/schema/x14"
)

// ValueType is the kind of threshold a Cfvo2010 describes.
type ValueType string

// Threshold kinds.
const (
	ValueNumber     ValueType = "num"
	ValuePercent    ValueType = "percent"
	ValueMax        ValueType = "max"
	ValueMin        ValueType = "min"
	ValueFormula    ValueType = "formula"
	ValuePercentile ValueType = "percentile"
	ValueAutoMin    ValueType = "autoMin"
	ValueAutoMax    ValueType = "autoMax"
)

// Cfvo2010 is a conditional formatting value object: a threshold of a data
// bar or icon set.
type Cfvo2010 struct {
	Type ValueType
	// Formula is the threshold value or formula, without a leading "=".
	Formula string
	// GreaterThanOrEqual makes the threshold inclusive. It is true unless set
	// otherwise.
	GreaterThanOrEqual bool
}

// NewCfvo2010 returns an inclusive threshold.
func NewCfvo2010(t ValueType, formula string) Cfvo2010 {
	return Cfvo2010{Type: t, Formula: strings.TrimPrefix(formula, "="), GreaterThanOrEqual: true}
}

// ToCfvo emits the x14:cfvo element. gte is written only when false.
func (c *Cfvo2010) ToCfvo() *x14.Cfvo {
	cfvo := &x14.Cfvo{Type: string(c.Type), F: c.Formula}
	if !c.GreaterThanOrEqual {
		cfvo.Gte = boolPtr(false)
	}
	return cfvo
}

// FromCfvo reads an x14:cfvo element whose start element has just been
// read from dec. It consumes the matching end element.
func FromCfvo(dec *xml.Decoder, start xml.StartElement) Cfvo2010 {
	c := Cfvo2010{Type: ValueNumber, GreaterThanOrEqual: true}
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "type":
			c.Type = ValueType(attr.Value)
		case "gte":
			c.GreaterThanOrEqual = parseBool(attr.Value, true)
		}
	}

	depth := 1
	for depth > 0 {
		token, err := dec.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "f" {
				c.Formula = readText(dec)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
	return c
}

// readText returns the character data of the current element and consumes
// its end element.
func readText(dec *xml.Decoder) string {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		token, err := dec.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.CharData:
			if depth == 1 {
				sb.Write(t)
			}
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return sb.String()
}
