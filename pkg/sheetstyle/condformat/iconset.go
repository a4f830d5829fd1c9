package condformat

import (
	"encoding/xml"
	"strconv"

	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/schema/x14"
)

// IconSetType names a built-in icon set (ST_IconSetType of the x14
// namespace).
type IconSetType string

// Icon sets.
const (
	IconSet3Arrows         IconSetType = "3Arrows"
	IconSet3ArrowsGray     IconSetType = "3ArrowsGray"
	IconSet3Flags          IconSetType = "3Flags"
	IconSet3TrafficLights1 IconSetType = "3TrafficLights1"
	IconSet3TrafficLights2 IconSetType = "3TrafficLights2"
	IconSet3Signs          IconSetType = "3Signs"
	IconSet3Symbols        IconSetType = "3Symbols"
	IconSet3Symbols2       IconSetType = "3Symbols2"
	IconSet3Stars          IconSetType = "3Stars"
	IconSet3Triangles      IconSetType = "3Triangles"
	IconSet4Arrows         IconSetType = "4Arrows"
	IconSet4ArrowsGray     IconSetType = "4ArrowsGray"
	IconSet4RedToBlack     IconSetType = "4RedToBlack"
	IconSet4Rating         IconSetType = "4Rating"
	IconSet4TrafficLights  IconSetType = "4TrafficLights"
	IconSet5Arrows         IconSetType = "5Arrows"
	IconSet5ArrowsGray     IconSetType = "5ArrowsGray"
	IconSet5Rating         IconSetType = "5Rating"
	IconSet5Quarters       IconSetType = "5Quarters"
	IconSet5Boxes          IconSetType = "5Boxes"
	IconSetNoIcons         IconSetType = "NoIcons"
)

// defaultIconSet is the schema default of the iconSet attribute.
const defaultIconSet = IconSet3TrafficLights1

// CustomIcon picks one icon out of any icon set.
type CustomIcon struct {
	IconSet IconSetType
	IconID  uint
}

// IconSet2010 is an Excel 2010 icon set. When CustomIcons is not empty it
// holds one icon per threshold and the set is written as custom.
type IconSet2010 struct {
	IconSet   IconSetType
	ShowValue bool
	Percent   bool
	Reverse   bool

	Cfvos       []Cfvo2010
	CustomIcons []CustomIcon
}

// NewIconSet2010 returns an icon set of the given type with no thresholds.
func NewIconSet2010(t IconSetType) IconSet2010 {
	return IconSet2010{IconSet: t, ShowValue: true, Percent: true}
}

// IsCustom reports whether the set uses custom icons.
func (s *IconSet2010) IsCustom() bool { return len(s.CustomIcons) > 0 }

// ToIconSet emits the x14:iconSet element. Attributes equal to their
// schema defaults are omitted.
func (s *IconSet2010) ToIconSet() *x14.IconSet {
	is := &x14.IconSet{Reverse: s.Reverse, Custom: s.IsCustom()}
	if s.IconSet != defaultIconSet {
		is.IconSet = string(s.IconSet)
	}
	if !s.ShowValue {
		is.ShowValue = boolPtr(false)
	}
	if !s.Percent {
		is.Percent = boolPtr(false)
	}
	for i := range s.Cfvos {
		is.Cfvo = append(is.Cfvo, s.Cfvos[i].ToCfvo())
	}
	for _, icon := range s.CustomIcons {
		is.CfIcon = append(is.CfIcon, &x14.CfIcon{IconSet: string(icon.IconSet), IconID: icon.IconID})
	}
	return is
}

// FromIconSet reads an x14:iconSet element whose start element has just
// been read from dec. It consumes the matching end element.
func FromIconSet(dec *xml.Decoder, start xml.StartElement) IconSet2010 {
	s := NewIconSet2010(defaultIconSet)
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "iconSet":
			s.IconSet = IconSetType(attr.Value)
		case "showValue":
			s.ShowValue = parseBool(attr.Value, true)
		case "percent":
			s.Percent = parseBool(attr.Value, true)
		case "reverse":
			s.Reverse = parseBool(attr.Value, false)
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
			switch t.Name.Local {
			case "cfvo":
				s.Cfvos = append(s.Cfvos, FromCfvo(dec, t))
				depth--
			case "cfIcon":
				s.CustomIcons = append(s.CustomIcons, fromCfIcon(t))
			}
		case xml.EndElement:
			depth--
		}
	}
	return s
}

func fromCfIcon(start xml.StartElement) CustomIcon {
	var icon CustomIcon
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "iconSet":
			icon.IconSet = IconSetType(attr.Value)
		case "iconId":
			if v, err := strconv.ParseUint(attr.Value, 10, 32); err == nil {
				icon.IconID = uint(v)
			}
		}
	}
	return icon
}

// Clone returns a deep copy.
func (s IconSet2010) Clone() IconSet2010 {
	s.Cfvos = append([]Cfvo2010(nil), s.Cfvos...)
	s.CustomIcons = append([]CustomIcon(nil), s.CustomIcons...)
	return s
}
