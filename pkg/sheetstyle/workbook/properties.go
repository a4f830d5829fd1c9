package workbook

import (
	"encoding/xml"

	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/schema/sml"
)

// ObjectDisplay controls how embedded objects are shown.
type ObjectDisplay string

// Object display modes.
const (
	ObjectsAll          ObjectDisplay = "all"
	ObjectsPlaceholders ObjectDisplay = "placeholders"
	ObjectsNone         ObjectDisplay = "none"
)

// UpdateLinks controls how external links are refreshed on open.
type UpdateLinks string

// Link update modes.
const (
	UpdateLinksUserSet UpdateLinks = "userSet"
	UpdateLinksNever   UpdateLinks = "never"
	UpdateLinksAlways  UpdateLinks = "always"
)

// WorkbookProperties holds the workbookPr attributes.
type WorkbookProperties struct {
	Date1904                   bool          `json:"date1904,omitempty"`
	ShowObjects                ObjectDisplay `json:"show_objects"`
	ShowBorderUnselectedTables bool          `json:"show_border_unselected_tables"`
	FilterPrivacy              bool          `json:"filter_privacy,omitempty"`
	PromptedSolutions          bool          `json:"prompted_solutions,omitempty"`
	ShowInkAnnotation          bool          `json:"show_ink_annotation"`
	BackupFile                 bool          `json:"backup_file,omitempty"`
	SaveExternalLinkValues     bool          `json:"save_external_link_values"`
	UpdateLinks                UpdateLinks   `json:"update_links"`
	CodeName                   string        `json:"code_name,omitempty"`
	HidePivotFieldList         bool          `json:"hide_pivot_field_list,omitempty"`
	ShowPivotChartFilter       bool          `json:"show_pivot_chart_filter,omitempty"`
	AllowRefreshQuery          bool          `json:"allow_refresh_query,omitempty"`
	PublishItems               bool          `json:"publish_items,omitempty"`
	CheckCompatibility         bool          `json:"check_compatibility,omitempty"`
	AutoCompressPictures       bool          `json:"auto_compress_pictures"`
	RefreshAllConnections      bool          `json:"refresh_all_connections,omitempty"`
	// DefaultThemeVersion is written when non-zero.
	DefaultThemeVersion uint `json:"default_theme_version,omitempty"`
	DateCompatibility   bool `json:"date_compatibility"`
}

// NewWorkbookProperties returns the schema defaults.
func NewWorkbookProperties() WorkbookProperties {
	return WorkbookProperties{
		ShowObjects:                ObjectsAll,
		ShowBorderUnselectedTables: true,
		ShowInkAnnotation:          true,
		SaveExternalLinkValues:     true,
		UpdateLinks:                UpdateLinksUserSet,
		AutoCompressPictures:       true,
		DateCompatibility:          true,
	}
}

// HasWorkbookProperties reports whether any attribute differs from its
// default, that is whether ToWorkbookProperties writes anything.
func (p *WorkbookProperties) HasWorkbookProperties() bool {
	return p.Date1904 ||
		(p.ShowObjects != ObjectsAll && p.ShowObjects != "") ||
		!p.ShowBorderUnselectedTables ||
		p.FilterPrivacy ||
		p.PromptedSolutions ||
		!p.ShowInkAnnotation ||
		p.BackupFile ||
		!p.SaveExternalLinkValues ||
		(p.UpdateLinks != UpdateLinksUserSet && p.UpdateLinks != "") ||
		p.CodeName != "" ||
		p.HidePivotFieldList ||
		p.ShowPivotChartFilter ||
		p.AllowRefreshQuery ||
		p.PublishItems ||
		p.CheckCompatibility ||
		!p.AutoCompressPictures ||
		p.RefreshAllConnections ||
		p.DefaultThemeVersion != 0 ||
		!p.DateCompatibility
}

// ToWorkbookProperties emits the workbookPr element with the attributes that
// differ from their defaults.
func (p *WorkbookProperties) ToWorkbookProperties() *sml.WorkbookPr {
	pr := &sml.WorkbookPr{
		Date1904:              p.Date1904,
		FilterPrivacy:         p.FilterPrivacy,
		PromptedSolutions:     p.PromptedSolutions,
		BackupFile:            p.BackupFile,
		CodeName:              p.CodeName,
		HidePivotFieldList:    p.HidePivotFieldList,
		ShowPivotChartFilter:  p.ShowPivotChartFilter,
		AllowRefreshQuery:     p.AllowRefreshQuery,
		PublishItems:          p.PublishItems,
		CheckCompatibility:    p.CheckCompatibility,
		RefreshAllConnections: p.RefreshAllConnections,
	}
	if p.ShowObjects != ObjectsAll && p.ShowObjects != "" {
		pr.ShowObjects = string(p.ShowObjects)
	}
	if !p.ShowBorderUnselectedTables {
		pr.ShowBorderUnselectedTables = boolPtr(false)
	}
	if !p.ShowInkAnnotation {
		pr.ShowInkAnnotation = boolPtr(false)
	}
	if !p.SaveExternalLinkValues {
		pr.SaveExternalLinkValues = boolPtr(false)
	}
	if p.UpdateLinks != UpdateLinksUserSet && p.UpdateLinks != "" {
		pr.UpdateLinks = string(p.UpdateLinks)
	}
	if !p.AutoCompressPictures {
		pr.AutoCompressPictures = boolPtr(false)
	}
	if p.DefaultThemeVersion != 0 {
		pr.DefaultThemeVersion = uintPtr(p.DefaultThemeVersion)
	}
	if !p.DateCompatibility {
		pr.DateCompatibility = boolPtr(false)
	}
	return pr
}

// FromWorkbookProperties reads a workbookPr element whose start element has
// just been read from dec. It consumes the matching end element.
func FromWorkbookProperties(dec *xml.Decoder, start xml.StartElement) (WorkbookProperties, error) {
	p := NewWorkbookProperties()
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "date1904":
			p.Date1904 = parseBool(attr.Value, false)
		case "showObjects":
			p.ShowObjects = ObjectDisplay(attr.Value)
		case "showBorderUnselectedTables":
			p.ShowBorderUnselectedTables = parseBool(attr.Value, true)
		case "filterPrivacy":
			p.FilterPrivacy = parseBool(attr.Value, false)
		case "promptedSolutions":
			p.PromptedSolutions = parseBool(attr.Value, false)
		case "showInkAnnotation":
			p.ShowInkAnnotation = parseBool(attr.Value, true)
		case "backupFile":
			p.BackupFile = parseBool(attr.Value, false)
		case "saveExternalLinkValues":
			p.SaveExternalLinkValues = parseBool(attr.Value, true)
		case "updateLinks":
			p.UpdateLinks = UpdateLinks(attr.Value)
		case "codeName":
			p.CodeName = attr.Value
		case "hidePivotFieldList":
			p.HidePivotFieldList = parseBool(attr.Value, false)
		case "showPivotChartFilter":
			p.ShowPivotChartFilter = parseBool(attr.Value, false)
		case "allowRefreshQuery":
			p.AllowRefreshQuery = parseBool(attr.Value, false)
		case "publishItems":
			p.PublishItems = parseBool(attr.Value, false)
		case "checkCompatibility":
			p.CheckCompatibility = parseBool(attr.Value, false)
		case "autoCompressPictures":
			p.AutoCompressPictures = parseBool(attr.Value, true)
		case "refreshAllConnections":
			p.RefreshAllConnections = parseBool(attr.Value, false)
		case "defaultThemeVersion":
			if v, ok := parseUint(attr.Value); ok {
				p.DefaultThemeVersion = v
			}
		case "dateCompatibility":
			p.DateCompatibility = parseBool(attr.Value, true)
		}
	}
	return p, dec.Skip()
}
