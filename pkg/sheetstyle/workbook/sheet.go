package workbook

import (
	"encoding/xml"
	"strings"

	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/schema/sml"
)

// SheetState is the visibility of a sheet.
type SheetState string

// Sheet states.
const (
	StateVisible    SheetState = "visible"
	StateHidden     SheetState = "hidden"
	StateVeryHidden SheetState = "veryHidden"
)

// SheetType is the kind of part a sheet entry points at.
type SheetType string

// Sheet types.
const (
	TypeWorksheet  SheetType = "worksheet"
	TypeChartsheet SheetType = "chartsheet"
	TypeDialog     SheetType = "dialogsheet"
	TypeMacro      SheetType = "macrosheet"
)

// Sheet is one entry of the sheets collection.
type Sheet struct {
	Name           string     `json:"name"`
	SheetID        uint       `json:"sheet_id"`
	State          SheetState `json:"state"`
	RelationshipID string     `json:"r_id"`
	// Type is not stored on the sheet element; it comes from the
	// relationship the entry points at.
	Type SheetType `json:"type"`
}

// NewSheet returns a visible worksheet entry.
func NewSheet(name string, sheetID uint, relationshipID string) Sheet {
	return Sheet{
		Name:           name,
		SheetID:        sheetID,
		State:          StateVisible,
		RelationshipID: relationshipID,
		Type:           TypeWorksheet,
	}
}

// SheetTypeFromRelationship maps a relationship type URI to the sheet type
// it targets. Unknown types are worksheets.
func SheetTypeFromRelationship(relType string) SheetType {
	switch relType[strings.LastIndex(relType, "/")+1:] {
	case "chartsheet":
		return TypeChartsheet
	case "dialogsheet":
		return TypeDialog
	case "xlMacrosheet", "xlIntlMacrosheet":
		return TypeMacro
	}
	return TypeWorksheet
}

// ToSheet emits the sheet element. A visible state is omitted.
func (s *Sheet) ToSheet() *sml.Sheet {
	sheet := &sml.Sheet{
		Name:    s.Name,
		SheetID: s.SheetID,
		ID:      s.RelationshipID,
	}
	if s.State != StateVisible && s.State != "" {
		sheet.State = string(s.State)
	}
	return sheet
}

// FromSheet reads a sheet element whose start element has just been read
// from dec. It consumes the matching end element.
func FromSheet(dec *xml.Decoder, start xml.StartElement) (Sheet, error) {
	s := Sheet{State: StateVisible, Type: TypeWorksheet}
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "name":
			s.Name = attr.Value
		case "sheetId":
			if v, ok := parseUint(attr.Value); ok {
				s.SheetID = v
			}
		case "state":
			s.State = SheetState(attr.Value)
		case "id":
			s.RelationshipID = attr.Value
		}
	}
	return s, dec.Skip()
}
