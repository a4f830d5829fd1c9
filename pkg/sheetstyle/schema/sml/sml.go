// Package sml defines the SpreadsheetML workbook-part elements written by the
// workbook object model. Elements live in the default (main) namespace.
package sml

import "encoding/xml"

// NamespaceMain is the SpreadsheetML main namespace.
const NamespaceMain = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"

// NamespaceRelationships is bound to the "r" prefix used by r:id.
const NamespaceRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

// Sheet directly maps the sheet element.
type Sheet struct {
	XMLName xml.Name `xml:"sheet"`
	Name    string   `xml:"name,attr"`
	SheetID uint     `xml:"sheetId,attr"`
	State   string   `xml:"state,attr,omitempty"`
	ID      string   `xml:"r:id,attr"`
}

// DefinedName directly maps the definedName element. The formula is the
// element text.
type DefinedName struct {
	XMLName           xml.Name `xml:"definedName"`
	Name              string   `xml:"name,attr"`
	Comment           string   `xml:"comment,attr,omitempty"`
	CustomMenu        string   `xml:"customMenu,attr,omitempty"`
	Description       string   `xml:"description,attr,omitempty"`
	Help              string   `xml:"help,attr,omitempty"`
	StatusBar         string   `xml:"statusBar,attr,omitempty"`
	LocalSheetID      *uint    `xml:"localSheetId,attr,omitempty"`
	Hidden            bool     `xml:"hidden,attr,omitempty"`
	Function          bool     `xml:"function,attr,omitempty"`
	VbProcedure       bool     `xml:"vbProcedure,attr,omitempty"`
	Xlm               bool     `xml:"xlm,attr,omitempty"`
	FunctionGroupID   *uint    `xml:"functionGroupId,attr,omitempty"`
	ShortcutKey       string   `xml:"shortcutKey,attr,omitempty"`
	PublishToServer   bool     `xml:"publishToServer,attr,omitempty"`
	WorkbookParameter bool     `xml:"workbookParameter,attr,omitempty"`
	Data              string   `xml:",chardata"`
}

// WorkbookView directly maps the workbookView element. Attributes left nil
// take their schema defaults.
type WorkbookView struct {
	XMLName                xml.Name `xml:"workbookView"`
	Visibility             string   `xml:"visibility,attr,omitempty"`
	Minimized              bool     `xml:"minimized,attr,omitempty"`
	ShowHorizontalScroll   *bool    `xml:"showHorizontalScroll,attr,omitempty"`
	ShowVerticalScroll     *bool    `xml:"showVerticalScroll,attr,omitempty"`
	ShowSheetTabs          *bool    `xml:"showSheetTabs,attr,omitempty"`
	XWindow                *int     `xml:"xWindow,attr,omitempty"`
	YWindow                *int     `xml:"yWindow,attr,omitempty"`
	WindowWidth            *uint    `xml:"windowWidth,attr,omitempty"`
	WindowHeight           *uint    `xml:"windowHeight,attr,omitempty"`
	TabRatio               *uint    `xml:"tabRatio,attr,omitempty"`
	FirstSheet             *uint    `xml:"firstSheet,attr,omitempty"`
	ActiveTab              *uint    `xml:"activeTab,attr,omitempty"`
	AutoFilterDateGrouping *bool    `xml:"autoFilterDateGrouping,attr,omitempty"`
}

// WorkbookPr directly maps the workbookPr element. Attributes left nil take
// their schema defaults.
type WorkbookPr struct {
	XMLName                    xml.Name `xml:"workbookPr"`
	Date1904                   bool     `xml:"date1904,attr,omitempty"`
	ShowObjects                string   `xml:"showObjects,attr,omitempty"`
	ShowBorderUnselectedTables *bool    `xml:"showBorderUnselectedTables,attr,omitempty"`
	FilterPrivacy              bool     `xml:"filterPrivacy,attr,omitempty"`
	PromptedSolutions          bool     `xml:"promptedSolutions,attr,omitempty"`
	ShowInkAnnotation          *bool    `xml:"showInkAnnotation,attr,omitempty"`
	BackupFile                 bool     `xml:"backupFile,attr,omitempty"`
	SaveExternalLinkValues     *bool    `xml:"saveExternalLinkValues,attr,omitempty"`
	UpdateLinks                string   `xml:"updateLinks,attr,omitempty"`
	CodeName                   string   `xml:"codeName,attr,omitempty"`
	HidePivotFieldList         bool     `xml:"hidePivotFieldList,attr,omitempty"`
	ShowPivotChartFilter       bool     `xml:"showPivotChartFilter,attr,omitempty"`
	AllowRefreshQuery          bool     `xml:"allowRefreshQuery,attr,omitempty"`
	PublishItems               bool     `xml:"publishItems,attr,omitempty"`
	CheckCompatibility         bool     `xml:"checkCompatibility,attr,omitempty"`
	AutoCompressPictures       *bool    `xml:"autoCompressPictures,attr,omitempty"`
	RefreshAllConnections      bool     `xml:"refreshAllConnections,attr,omitempty"`
	DefaultThemeVersion        *uint    `xml:"defaultThemeVersion,attr,omitempty"`
	DateCompatibility          *bool    `xml:"dateCompatibility,attr,omitempty"`
}

// CalcCell directly maps the c element of the calculation chain part.
type CalcCell struct {
	XMLName xml.Name `xml:"c"`
	R       string   `xml:"r,attr"`
	I       *uint    `xml:"i,attr,omitempty"`
	S       bool     `xml:"s,attr,omitempty"`
	L       bool     `xml:"l,attr,omitempty"`
	T       bool     `xml:"t,attr,omitempty"`
	A       bool     `xml:"a,attr,omitempty"`
}

// CalcChain directly maps the calcChain element.
type CalcChain struct {
	XMLName xml.Name   `xml:"calcChain"`
	XMLNS   string     `xml:"xmlns,attr"`
	C       []CalcCell `xml:"c"`
}

// Sheets directly maps the sheets element.
type Sheets struct {
	Sheet []Sheet `xml:"sheet"`
}

// BookViews directly maps the bookViews element.
type BookViews struct {
	WorkbookView []WorkbookView `xml:"workbookView"`
}

// DefinedNames directly maps the definedNames element.
type DefinedNames struct {
	DefinedName []DefinedName `xml:"definedName"`
}

// Workbook maps the subset of the workbook element the object model owns.
type Workbook struct {
	XMLName      xml.Name      `xml:"workbook"`
	XMLNS        string        `xml:"xmlns,attr"`
	XMLNSR       string        `xml:"xmlns:r,attr"`
	WorkbookPr   *WorkbookPr   `xml:"workbookPr"`
	BookViews    *BookViews    `xml:"bookViews"`
	Sheets       Sheets        `xml:"sheets"`
	DefinedNames *DefinedNames `xml:"definedNames"`
}
