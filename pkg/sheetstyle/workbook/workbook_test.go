package workbook

import (
	"encoding/xml"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

const sampleWorkbook = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
<workbookPr date1904="1" codeName="ThisWorkbook" defaultThemeVersion="124226"/>
<bookViews><workbookView xWindow="240" yWindow="15" windowWidth="16095" windowHeight="9660" tabRatio="750" activeTab="1"/></bookViews>
<sheets><sheet name="Data" sheetId="1" r:id="rId1"/><sheet name="Old &amp; Hidden" sheetId="3" state="hidden" r:id="rId2"/></sheets>
<definedNames><definedName name="_xlnm.Print_Area" localSheetId="0">Data!$A$1:$D$10</definedName><definedName name="Rate" comment="tax">0.2</definedName></definedNames>
<calcPr calcId="145621"/>
</workbook>`

func TestRead(t *testing.T) {
	w, err := Read(strings.NewReader(sampleWorkbook))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if !w.Properties.Date1904 || w.Properties.CodeName != "ThisWorkbook" || w.Properties.DefaultThemeVersion != 124226 {
		t.Errorf("Properties = %+v", w.Properties)
	}
	if !w.Properties.AutoCompressPictures {
		t.Error("unset attribute lost its default")
	}

	if len(w.Views) != 1 {
		t.Fatalf("Expected 1 view, got %d", len(w.Views))
	}
	v := w.Views[0]
	if v.XWindow != 240 || v.WindowHeight != 9660 || v.TabRatio != 750 || v.ActiveTab != 1 || !v.ShowSheetTabs {
		t.Errorf("View = %+v", v)
	}

	expectedSheets := []Sheet{
		{Name: "Data", SheetID: 1, State: StateVisible, RelationshipID: "rId1", Type: TypeWorksheet},
		{Name: "Old & Hidden", SheetID: 3, State: StateHidden, RelationshipID: "rId2", Type: TypeWorksheet},
	}
	if len(w.Sheets) != len(expectedSheets) {
		t.Fatalf("Expected %d sheets, got %d", len(expectedSheets), len(w.Sheets))
	}
	for i, expected := range expectedSheets {
		if w.Sheets[i] != expected {
			t.Errorf("Sheets[%d] = %+v, expected %+v", i, w.Sheets[i], expected)
		}
	}

	if len(w.DefinedNames) != 2 {
		t.Fatalf("Expected 2 defined names, got %d", len(w.DefinedNames))
	}
	pa := w.DefinedNames[0]
	if pa.LocalSheetID == nil || *pa.LocalSheetID != 0 || pa.Text != "Data!$A$1:$D$10" {
		t.Errorf("DefinedNames[0] = %+v", pa)
	}
	if rate := w.DefinedNames[1]; rate.Name != "Rate" || rate.Comment != "tax" || rate.Text != "0.2" || rate.LocalSheetID != nil {
		t.Errorf("DefinedNames[1] = %+v", rate)
	}

	areas := w.PrintAreas()
	if got := areas["Data"]; len(got) != 1 || got[0] != (PrintArea{R1: 1, C1: 1, R2: 10, C2: 4}) {
		t.Errorf("PrintAreas() = %+v", areas)
	}
}

func TestReadMalformed(t *testing.T) {
	tests := []string{
		`<workbook><sheets><sheet name="x"`,
		`<workbook><sheets><sheet name="x">`,
		`<workbook><bookViews><workbookView activeTab="1">`,
		`<workbook><workbookPr date1904="1">`,
		`<workbook><definedNames><definedName name="Rate">0.2`,
	}

	for _, data := range tests {
		if _, err := Read(strings.NewReader(data)); err == nil {
			t.Errorf("Read(%q): expected error for truncated workbook", data)
		}
	}
}

func TestWorkbookRoundTrip(t *testing.T) {
	w, err := Read(strings.NewReader(sampleWorkbook))
	if err != nil {
		t.Fatal(err)
	}

	out, err := xml.Marshal(w.ToWorkbook())
	if err != nil {
		t.Fatal(err)
	}
	xmlStr := string(out)
	for _, part := range []string{
		`<workbookPr date1904="true" codeName="ThisWorkbook" defaultThemeVersion="124226"></workbookPr>`,
		`<workbookView xWindow="240" yWindow="15" windowWidth="16095" windowHeight="9660" tabRatio="750" activeTab="1"></workbookView>`,
		`<sheet name="Old &amp; Hidden" sheetId="3" state="hidden" r:id="rId2"></sheet>`,
		`<definedName name="_xlnm.Print_Area" localSheetId="0">Data!$A$1:$D$10</definedName>`,
	} {
		if !strings.Contains(xmlStr, part) {
			t.Errorf("%s missing from %s", part, xmlStr)
		}
	}

	again, err := Read(strings.NewReader(xmlStr))
	if err != nil {
		t.Fatal(err)
	}
	if len(again.Sheets) != 2 || again.Sheets[1] != w.Sheets[1] || again.Views[0] != w.Views[0] || again.Properties != w.Properties {
		t.Errorf("round trip changed the model: %+v", again)
	}
}

func TestDefaultsSuppressed(t *testing.T) {
	v := NewWorkbookView()
	out, err := xml.Marshal(v.ToWorkbookView())
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `<workbookView></workbookView>` {
		t.Errorf("default view = %s", out)
	}

	p := NewWorkbookProperties()
	if p.HasWorkbookProperties() {
		t.Error("default properties reported as set")
	}
	p.ShowInkAnnotation = false
	if !p.HasWorkbookProperties() {
		t.Error("changed properties reported as unset")
	}
	out, err = xml.Marshal(p.ToWorkbookProperties())
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `<workbookPr showInkAnnotation="false"></workbookPr>` {
		t.Errorf("properties = %s", out)
	}

	w := New()
	w.Sheets = append(w.Sheets, NewSheet("Sheet1", 1, "rId1"))
	out, err = xml.Marshal(w.ToWorkbook())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "workbookPr") || strings.Contains(string(out), "definedNames") {
		t.Errorf("empty parts emitted: %s", out)
	}
}

func TestTabRatioClamp(t *testing.T) {
	tests := []struct {
		input    int
		expected uint
	}{
		{-1, 0},
		{600, 600},
		{1500, 1000},
	}

	for _, tt := range tests {
		v := NewWorkbookView()
		v.SetTabRatio(tt.input)
		if v.TabRatio != tt.expected {
			t.Errorf("SetTabRatio(%d) = %d, expected %d", tt.input, v.TabRatio, tt.expected)
		}
	}
}

func TestTableRegistry(t *testing.T) {
	w := New()
	if name := w.GetNextPossibleTableName(); name != "Table1" {
		t.Errorf("first table name = %q, expected Table1", name)
	}
	if w.GetNextPossibleTableName() != w.GetNextPossibleTableName() {
		t.Error("GetNextPossibleTableName is not idempotent")
	}

	w.AddTable(w.PossibleTableID(), "Table1")
	if id := w.PossibleTableID(); id != 2 {
		t.Errorf("PossibleTableID() = %d, expected 2", id)
	}
	if !w.HasTableName("TABLE1") {
		t.Error("HasTableName is case sensitive")
	}

	// A user named table takes the next probe.
	w.AddTable(5, "table3")
	if name := w.GetNextPossibleTableName(); name != "Table4" {
		t.Errorf("next table name = %q, expected Table4", name)
	}
	if w.HasTableName(w.GetNextPossibleTableName()) {
		t.Error("allocator returned a registered name")
	}

	w.AddTable(2, "Sales")
	if id := w.RefreshPossibleTableID(); id != 3 {
		t.Errorf("RefreshPossibleTableID() = %d, expected 3", id)
	}

	tests := []struct {
		id   uint
		name string
	}{
		{1, "Table9"},
		{9, "SALES"},
		{2, "sales"},
	}
	for _, tt := range tests {
		if w.AddTable(tt.id, tt.name) {
			t.Errorf("AddTable(%d, %q) accepted a duplicate", tt.id, tt.name)
		}
	}
	if names := w.TableNames(); len(names) != 3 {
		t.Errorf("TableNames() = %v, expected 3 names", names)
	}
	if !w.AddTable(9, "Table9") {
		t.Error("AddTable rejected a free id and name")
	}
}

func TestPivotTableRegistry(t *testing.T) {
	w := New()
	w.AddPivotTable(1, "PivotTable2")
	if name := w.GetNextPossiblePivotTableName(); name != "PivotTable3" {
		t.Errorf("next pivot name = %q, expected PivotTable3", name)
	}
	w.AddPivotTable(3, "PivotTable3")
	if id := w.RefreshPossiblePivotTableID(); id != 2 {
		t.Errorf("RefreshPossiblePivotTableID() = %d, expected 2", id)
	}
	if w.HasTableName("PivotTable2") {
		t.Error("pivot names leaked into the table registry")
	}
	if !w.HasPivotTableName("pivottable2") {
		t.Error("HasPivotTableName is case sensitive")
	}

	if w.AddPivotTable(1, "PivotTable9") {
		t.Error("AddPivotTable accepted a duplicate id")
	}
	if w.AddPivotTable(4, "pivottable3") {
		t.Error("AddPivotTable accepted a duplicate name")
	}
	if id := w.RefreshPossiblePivotTableID(); id != 2 {
		t.Errorf("RefreshPossiblePivotTableID() = %d after rejected adds, expected 2", id)
	}
	if !w.AddPivotTable(2, "Summary") {
		t.Error("AddPivotTable rejected a free id and name")
	}
	if id := w.PossiblePivotTableID(); id != 4 {
		t.Errorf("PossiblePivotTableID() = %d, expected 4", id)
	}
}

func TestCloneKeepsRegistries(t *testing.T) {
	w := New()
	w.AddTable(1, "Table1")
	w.DefinedNames = append(w.DefinedNames, NewDefinedName("Rate", "=0.2"))
	w.DefinedNames[0].SetLocalSheetID(0)

	c := w.Clone()
	c.AddTable(2, "Table2")
	*c.DefinedNames[0].LocalSheetID = 4
	if w.HasTableName("Table2") || *w.DefinedNames[0].LocalSheetID != 0 {
		t.Error("Clone shares state with the original")
	}
	if !c.HasTableName("Table1") {
		t.Error("Clone dropped the registry")
	}
}

func TestParsePrintAreaReference(t *testing.T) {
	tests := []struct {
		ref       string
		sheetName string
		areas     []PrintArea
	}{
		{"Sheet1!$A$1:$D$10", "Sheet1", []PrintArea{{R1: 1, C1: 1, R2: 10, C2: 4}}},
		{"'My Sheet'!$B$2:$C$3,'My Sheet'!$F$1:$G$2", "My Sheet", []PrintArea{{R1: 2, C1: 2, R2: 3, C2: 3}, {R1: 1, C1: 6, R2: 2, C2: 7}}},
		{"'It''s'!$E$5", "It's", []PrintArea{{R1: 5, C1: 5, R2: 5, C2: 5}}},
		{"'Sales, 2024'!$A$1:$B$2", "Sales, 2024", []PrintArea{{R1: 1, C1: 1, R2: 2, C2: 2}}},
		{"'a,''b'!$A$1,'a,''b'!$C$3", "a,'b", []PrintArea{{R1: 1, C1: 1, R2: 1, C2: 1}, {R1: 3, C1: 3, R2: 3, C2: 3}}},
		{"Sheet1!$D$10:$A$1", "Sheet1", []PrintArea{{R1: 1, C1: 1, R2: 10, C2: 4}}},
		{"#REF!", "#REF", nil},
	}

	for _, tt := range tests {
		sheetName, areas := parsePrintAreaReference(tt.ref)
		if sheetName != tt.sheetName || len(areas) != len(tt.areas) {
			t.Errorf("parsePrintAreaReference(%q) = %q, %+v", tt.ref, sheetName, areas)
			continue
		}
		for i := range areas {
			if areas[i] != tt.areas[i] {
				t.Errorf("parsePrintAreaReference(%q)[%d] = %+v, expected %+v", tt.ref, i, areas[i], tt.areas[i])
			}
		}
	}
}

func TestSheetTypeFromRelationship(t *testing.T) {
	tests := []struct {
		relType  string
		expected SheetType
	}{
		{"http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet", TypeWorksheet},
		{"http://schemas.openxmlformats.org/officeDocument/2006/relationships/chartsheet", TypeChartsheet},
		{"http://schemas.microsoft.com/office/2006/relationships/xlMacrosheet", TypeMacro},
		{"", TypeWorksheet},
	}

	for _, tt := range tests {
		if got := SheetTypeFromRelationship(tt.relType); got != tt.expected {
			t.Errorf("SheetTypeFromRelationship(%q) = %q, expected %q", tt.relType, got, tt.expected)
		}
	}
}

func TestApplyAndFromExcelize(t *testing.T) {
	w := New()
	w.Sheets = []Sheet{
		NewSheet("Sheet1", 1, "rId1"),
		NewSheet("Report", 2, "rId2"),
	}
	w.Sheets[1].State = StateHidden
	w.DefinedNames = []DefinedName{NewDefinedName("Total", "=Sheet1!$B$1")}
	scoped := NewDefinedName("Limit", "Report!$A$1")
	scoped.SetLocalSheetID(1)
	w.DefinedNames = append(w.DefinedNames, scoped)
	w.Properties.Date1904 = true

	f := excelize.NewFile()
	defer f.Close()
	if err := w.Apply(f); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	read, err := FromExcelize(f2)
	if err != nil {
		t.Fatalf("FromExcelize failed: %v", err)
	}
	if len(read.Sheets) != 2 {
		t.Fatalf("Expected 2 sheets, got %d", len(read.Sheets))
	}
	if read.Sheets[0].State != StateVisible || read.Sheets[1].Name != "Report" || read.Sheets[1].State != StateHidden {
		t.Errorf("Sheets = %+v", read.Sheets)
	}
	if !read.Properties.Date1904 {
		t.Error("Date1904 was not applied")
	}

	found := map[string]DefinedName{}
	for _, d := range read.DefinedNames {
		found[d.Name] = d
	}
	if d, ok := found["Total"]; !ok || d.Text != "Sheet1!$B$1" || d.LocalSheetID != nil {
		t.Errorf("Total = %+v", d)
	}
	if d, ok := found["Limit"]; !ok || d.LocalSheetID == nil || *d.LocalSheetID != 1 {
		t.Errorf("Limit = %+v", d)
	}
}
