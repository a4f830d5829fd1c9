package workbook

import (
	"encoding/xml"
	"strings"

	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/schema/sml"
	"github.com/xuri/excelize/v2"
)

// Built-in defined names.
const (
	PrintAreaName      = "_xlnm.Print_Area"
	PrintTitlesName    = "_xlnm.Print_Titles"
	FilterDatabaseName = "_xlnm._FilterDatabase"
)

// DefinedName is a workbook or sheet scoped name for a formula or range.
type DefinedName struct {
	Name string `json:"name"`
	// Text is the formula the name refers to.
	Text              string `json:"text"`
	Comment           string `json:"comment,omitempty"`
	CustomMenu        string `json:"custom_menu,omitempty"`
	Description       string `json:"description,omitempty"`
	Help              string `json:"help,omitempty"`
	StatusBar         string `json:"status_bar,omitempty"`
	LocalSheetID      *uint  `json:"local_sheet_id,omitempty"`
	Hidden            bool   `json:"hidden,omitempty"`
	Function          bool   `json:"function,omitempty"`
	VbProcedure       bool   `json:"vb_procedure,omitempty"`
	Xlm               bool   `json:"xlm,omitempty"`
	FunctionGroupID   *uint  `json:"function_group_id,omitempty"`
	ShortcutKey       string `json:"shortcut_key,omitempty"`
	PublishToServer   bool   `json:"publish_to_server,omitempty"`
	WorkbookParameter bool   `json:"workbook_parameter,omitempty"`
}

// NewDefinedName returns a workbook scoped name. A leading "=" on text is
// dropped.
func NewDefinedName(name, text string) DefinedName {
	return DefinedName{Name: name, Text: strings.TrimPrefix(text, "=")}
}

// SetLocalSheetID scopes the name to the sheet at index i of the sheets
// collection.
func (d *DefinedName) SetLocalSheetID(i uint) { d.LocalSheetID = &i }

// ToDefinedName emits the definedName element.
func (d *DefinedName) ToDefinedName() *sml.DefinedName {
	return &sml.DefinedName{
		Name:              d.Name,
		Comment:           d.Comment,
		CustomMenu:        d.CustomMenu,
		Description:       d.Description,
		Help:              d.Help,
		StatusBar:         d.StatusBar,
		LocalSheetID:      cloneUint(d.LocalSheetID),
		Hidden:            d.Hidden,
		Function:          d.Function,
		VbProcedure:       d.VbProcedure,
		Xlm:               d.Xlm,
		FunctionGroupID:   cloneUint(d.FunctionGroupID),
		ShortcutKey:       d.ShortcutKey,
		PublishToServer:   d.PublishToServer,
		WorkbookParameter: d.WorkbookParameter,
		Data:              d.Text,
	}
}

// FromDefinedName reads a definedName element whose start element has just
// been read from dec. It consumes the matching end element.
func FromDefinedName(dec *xml.Decoder, start xml.StartElement) (DefinedName, error) {
	var d DefinedName
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "name":
			d.Name = attr.Value
		case "comment":
			d.Comment = attr.Value
		case "customMenu":
			d.CustomMenu = attr.Value
		case "description":
			d.Description = attr.Value
		case "help":
			d.Help = attr.Value
		case "statusBar":
			d.StatusBar = attr.Value
		case "localSheetId":
			if v, ok := parseUint(attr.Value); ok {
				d.LocalSheetID = &v
			}
		case "hidden":
			d.Hidden = parseBool(attr.Value, false)
		case "function":
			d.Function = parseBool(attr.Value, false)
		case "vbProcedure":
			d.VbProcedure = parseBool(attr.Value, false)
		case "xlm":
			d.Xlm = parseBool(attr.Value, false)
		case "functionGroupId":
			if v, ok := parseUint(attr.Value); ok {
				d.FunctionGroupID = &v
			}
		case "shortcutKey":
			d.ShortcutKey = attr.Value
		case "publishToServer":
			d.PublishToServer = parseBool(attr.Value, false)
		case "workbookParameter":
			d.WorkbookParameter = parseBool(attr.Value, false)
		}
	}

	var sb strings.Builder
	depth := 1
	for depth > 0 {
		token, err := dec.Token()
		if err != nil {
			return d, err
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
	d.Text = sb.String()
	return d, nil
}

// Clone returns a deep copy.
func (d DefinedName) Clone() DefinedName {
	d.LocalSheetID = cloneUint(d.LocalSheetID)
	d.FunctionGroupID = cloneUint(d.FunctionGroupID)
	return d
}

// PrintArea represents cell coordinate bounds for a print area.
type PrintArea struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// PrintAreas parses the areas of a _xlnm.Print_Area name. It returns the
// sheet the areas belong to, or an empty name for any other defined name.
func (d *DefinedName) PrintAreas() (string, []PrintArea) {
	if !strings.EqualFold(d.Name, PrintAreaName) {
		return "", nil
	}
	return parsePrintAreaReference(d.Text)
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10, comma separated.
func parsePrintAreaReference(ref string) (string, []PrintArea) {
	var areas []PrintArea

	var sheetName string
	for _, part := range splitReferences(ref) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		sheet := unquoteSheetName(part[:idx])
		if sheetName == "" {
			sheetName = sheet
		}

		if area, ok := parseRangeToArea(part[idx+1:]); ok {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}

// splitReferences splits a reference list on commas outside quoted sheet
// names. Inside quotes '' is an escaped quote.
func splitReferences(ref string) []string {
	var parts []string
	quoted := false
	start := 0
	for i := 0; i < len(ref); i++ {
		switch ref[i] {
		case '\'':
			if quoted && i+1 < len(ref) && ref[i+1] == '\'' {
				i++
				continue
			}
			quoted = !quoted
		case ',':
			if !quoted {
				parts = append(parts, ref[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, ref[start:])
}

func unquoteSheetName(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		s = s[1 : len(s)-1]
	}
	return strings.ReplaceAll(s, "''", "'")
}

// parseRangeToArea parses a range string like $A$1:$D$10. A single cell
// yields a one-cell area.
func parseRangeToArea(rangeStr string) (PrintArea, bool) {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return PrintArea{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return PrintArea{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return PrintArea{}, false
	}

	return PrintArea{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, true
}

func cloneUint(p *uint) *uint {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
