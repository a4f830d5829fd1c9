// Package workbook models the workbook-level metadata of a spreadsheet
// package: sheets, defined names, workbook views, workbook properties and the
// calculation chain. It also keeps the table and pivot table registries that
// hand out unique ids and names.
package workbook

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/schema/sml"
	"golang.org/x/text/cases"
)

// Default name stems of the registries.
const (
	tablePrefix      = "Table"
	pivotTablePrefix = "PivotTable"
)

// Workbook holds the metadata of one workbook part.
type Workbook struct {
	Properties       WorkbookProperties `json:"properties"`
	Views            []WorkbookView     `json:"views,omitempty"`
	Sheets           []Sheet            `json:"sheets"`
	DefinedNames     []DefinedName      `json:"defined_names,omitempty"`
	CalculationCells []CalculationCell  `json:"calculation_cells,omitempty"`

	tables      registry
	pivotTables registry
}

// registry tracks ids and names that must stay unique within a workbook.
type registry struct {
	ids        []uint
	names      []string
	possibleID uint
}

// New returns an empty workbook with default properties.
func New() *Workbook {
	return &Workbook{
		Properties:  NewWorkbookProperties(),
		tables:      registry{possibleID: 1},
		pivotTables: registry{possibleID: 1},
	}
}

// refresh moves possibleID to the lowest free id at or above 1.
func (r *registry) refresh() uint {
	id := uint(1)
	for slices.Contains(r.ids, id) {
		id++
	}
	r.possibleID = id
	return id
}

// add registers id and name. It reports false and changes nothing when the
// id or the case-folded name is already taken.
func (r *registry) add(id uint, name string) bool {
	if slices.Contains(r.ids, id) || r.hasName(name) {
		return false
	}
	r.ids = append(r.ids, id)
	r.names = append(r.names, name)
	if id == r.possibleID {
		r.refresh()
	}
	return true
}

func (r *registry) hasName(name string) bool {
	fold := cases.Fold()
	key := fold.String(name)
	for _, n := range r.names {
		if fold.String(n) == key {
			return true
		}
	}
	return false
}

// nextName probes prefix1, prefix2, ... starting after the registered count
// and returns the first name not taken. It does not register the name.
func (r *registry) nextName(prefix string) string {
	n := len(r.names) + 1
	name := prefix + strconv.Itoa(n)
	for r.hasName(name) {
		n++
		name = prefix + strconv.Itoa(n)
	}
	return name
}

// PossibleTableID returns the table id RefreshPossibleTableID last found.
func (w *Workbook) PossibleTableID() uint { return w.tables.possibleID }

// RefreshPossibleTableID finds the lowest table id not yet registered.
func (w *Workbook) RefreshPossibleTableID() uint { return w.tables.refresh() }

// AddTable registers a table id and name. It returns false when either is
// already registered.
func (w *Workbook) AddTable(id uint, name string) bool { return w.tables.add(id, name) }

// HasTableName reports whether a table with this name exists. Table names
// compare case-insensitively.
func (w *Workbook) HasTableName(name string) bool { return w.tables.hasName(name) }

// GetNextPossibleTableName returns a table name that is not registered.
// Calling it twice without AddTable returns the same name.
func (w *Workbook) GetNextPossibleTableName() string { return w.tables.nextName(tablePrefix) }

// TableNames returns the registered table names.
func (w *Workbook) TableNames() []string { return slices.Clone(w.tables.names) }

// PossiblePivotTableID returns the pivot table id RefreshPossiblePivotTableID
// last found.
func (w *Workbook) PossiblePivotTableID() uint { return w.pivotTables.possibleID }

// RefreshPossiblePivotTableID finds the lowest pivot table id not yet
// registered.
func (w *Workbook) RefreshPossiblePivotTableID() uint { return w.pivotTables.refresh() }

// AddPivotTable registers a pivot table id and name. It returns false when
// either is already registered.
func (w *Workbook) AddPivotTable(id uint, name string) bool {
	return w.pivotTables.add(id, name)
}

// HasPivotTableName reports whether a pivot table with this name exists.
func (w *Workbook) HasPivotTableName(name string) bool { return w.pivotTables.hasName(name) }

// GetNextPossiblePivotTableName returns a pivot table name that is not
// registered.
func (w *Workbook) GetNextPossiblePivotTableName() string {
	return w.pivotTables.nextName(pivotTablePrefix)
}

// Sheet returns the sheet with the given name.
func (w *Workbook) Sheet(name string) (Sheet, bool) {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return Sheet{}, false
}

// PrintAreas collects the print areas of every _xlnm.Print_Area defined
// name, keyed by sheet name.
func (w *Workbook) PrintAreas() map[string][]PrintArea {
	result := make(map[string][]PrintArea)
	for i := range w.DefinedNames {
		sheetName, areas := w.DefinedNames[i].PrintAreas()
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}
	return result
}

// ToWorkbook emits the workbook element with the parts this model owns.
func (w *Workbook) ToWorkbook() *sml.Workbook {
	wb := &sml.Workbook{
		XMLNS:  sml.NamespaceMain,
		XMLNSR: sml.NamespaceRelationships,
	}
	if w.Properties.HasWorkbookProperties() {
		wb.WorkbookPr = w.Properties.ToWorkbookProperties()
	}
	if len(w.Views) > 0 {
		wb.BookViews = &sml.BookViews{}
		for i := range w.Views {
			wb.BookViews.WorkbookView = append(wb.BookViews.WorkbookView, *w.Views[i].ToWorkbookView())
		}
	}
	for i := range w.Sheets {
		wb.Sheets.Sheet = append(wb.Sheets.Sheet, *w.Sheets[i].ToSheet())
	}
	if len(w.DefinedNames) > 0 {
		wb.DefinedNames = &sml.DefinedNames{}
		for i := range w.DefinedNames {
			wb.DefinedNames.DefinedName = append(wb.DefinedNames.DefinedName, *w.DefinedNames[i].ToDefinedName())
		}
	}
	return wb
}

// Read parses a workbook.xml part.
func Read(r io.Reader) (*Workbook, error) {
	w := New()
	dec := xml.NewDecoder(r)

	for {
		token, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read workbook: %w", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "workbookPr":
			w.Properties, err = FromWorkbookProperties(dec, start)
		case "workbookView":
			var v WorkbookView
			v, err = FromWorkbookView(dec, start)
			w.Views = append(w.Views, v)
		case "sheet":
			var s Sheet
			s, err = FromSheet(dec, start)
			w.Sheets = append(w.Sheets, s)
		case "definedName":
			var d DefinedName
			d, err = FromDefinedName(dec, start)
			w.DefinedNames = append(w.DefinedNames, d)
		}
		if err != nil {
			return nil, fmt.Errorf("read workbook %s: %w", start.Name.Local, err)
		}
	}
	return w, nil
}

// Clone returns a deep copy, registries included.
func (w *Workbook) Clone() *Workbook {
	c := *w
	c.Views = slices.Clone(w.Views)
	c.Sheets = slices.Clone(w.Sheets)
	if w.DefinedNames != nil {
		c.DefinedNames = make([]DefinedName, len(w.DefinedNames))
		for i := range w.DefinedNames {
			c.DefinedNames[i] = w.DefinedNames[i].Clone()
		}
	}
	c.CalculationCells = slices.Clone(w.CalculationCells)
	c.tables = w.tables.clone()
	c.pivotTables = w.pivotTables.clone()
	return &c
}

func (r registry) clone() registry {
	r.ids = slices.Clone(r.ids)
	r.names = slices.Clone(r.names)
	return r
}

// parseBool reads an xsd:boolean, returning def for anything else.
func parseBool(s string, def bool) bool {
	switch s {
	case "1", "true":
		return true
	case "0", "false":
		return false
	}
	return def
}

func parseUint(s string) (uint, bool) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

func boolPtr(v bool) *bool { return &v }

func uintPtr(v uint) *uint { return &v }
