package workbook

import (
	"encoding/xml"
	"strconv"

	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/schema/sml"
)

// Visibility of a workbook window.
type Visibility string

// Window visibilities.
const (
	VisibilityVisible    Visibility = "visible"
	VisibilityHidden     Visibility = "hidden"
	VisibilityVeryHidden Visibility = "veryHidden"
)

const (
	defaultTabRatio = 600
	maxTabRatio     = 1000
)

// WorkbookView is a workbook window. Window position and size are written
// only when non-zero; every other attribute only when it differs from its
// schema default.
type WorkbookView struct {
	Visibility             Visibility `json:"visibility"`
	Minimized              bool       `json:"minimized,omitempty"`
	ShowHorizontalScroll   bool       `json:"show_horizontal_scroll"`
	ShowVerticalScroll     bool       `json:"show_vertical_scroll"`
	ShowSheetTabs          bool       `json:"show_sheet_tabs"`
	XWindow                int        `json:"x_window,omitempty"`
	YWindow                int        `json:"y_window,omitempty"`
	WindowWidth            uint       `json:"window_width,omitempty"`
	WindowHeight           uint       `json:"window_height,omitempty"`
	TabRatio               uint       `json:"tab_ratio"`
	FirstSheet             uint       `json:"first_sheet,omitempty"`
	ActiveTab              uint       `json:"active_tab,omitempty"`
	AutoFilterDateGrouping bool       `json:"auto_filter_date_grouping"`
}

// NewWorkbookView returns a view with the schema defaults.
func NewWorkbookView() WorkbookView {
	return WorkbookView{
		Visibility:             VisibilityVisible,
		ShowHorizontalScroll:   true,
		ShowVerticalScroll:     true,
		ShowSheetTabs:          true,
		TabRatio:               defaultTabRatio,
		AutoFilterDateGrouping: true,
	}
}

// SetTabRatio sets the width of the tab bar in thousandths of the window
// width, clamped to [0, 1000].
func (v *WorkbookView) SetTabRatio(ratio int) {
	v.TabRatio = uint(max(0, min(maxTabRatio, ratio)))
}

// ToWorkbookView emits the workbookView element.
func (v *WorkbookView) ToWorkbookView() *sml.WorkbookView {
	view := &sml.WorkbookView{Minimized: v.Minimized}
	if v.Visibility != VisibilityVisible && v.Visibility != "" {
		view.Visibility = string(v.Visibility)
	}
	if !v.ShowHorizontalScroll {
		view.ShowHorizontalScroll = boolPtr(false)
	}
	if !v.ShowVerticalScroll {
		view.ShowVerticalScroll = boolPtr(false)
	}
	if !v.ShowSheetTabs {
		view.ShowSheetTabs = boolPtr(false)
	}
	if v.XWindow != 0 {
		x := v.XWindow
		view.XWindow = &x
	}
	if v.YWindow != 0 {
		y := v.YWindow
		view.YWindow = &y
	}
	if v.WindowWidth != 0 {
		view.WindowWidth = uintPtr(v.WindowWidth)
	}
	if v.WindowHeight != 0 {
		view.WindowHeight = uintPtr(v.WindowHeight)
	}
	if ratio := min(v.TabRatio, maxTabRatio); ratio != defaultTabRatio {
		view.TabRatio = uintPtr(ratio)
	}
	if v.FirstSheet != 0 {
		view.FirstSheet = uintPtr(v.FirstSheet)
	}
	if v.ActiveTab != 0 {
		view.ActiveTab = uintPtr(v.ActiveTab)
	}
	if !v.AutoFilterDateGrouping {
		view.AutoFilterDateGrouping = boolPtr(false)
	}
	return view
}

// FromWorkbookView reads a workbookView element whose start element has
// just been read from dec. It consumes the matching end element.
func FromWorkbookView(dec *xml.Decoder, start xml.StartElement) (WorkbookView, error) {
	v := NewWorkbookView()
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "visibility":
			v.Visibility = Visibility(attr.Value)
		case "minimized":
			v.Minimized = parseBool(attr.Value, false)
		case "showHorizontalScroll":
			v.ShowHorizontalScroll = parseBool(attr.Value, true)
		case "showVerticalScroll":
			v.ShowVerticalScroll = parseBool(attr.Value, true)
		case "showSheetTabs":
			v.ShowSheetTabs = parseBool(attr.Value, true)
		case "xWindow":
			if n, err := strconv.Atoi(attr.Value); err == nil {
				v.XWindow = n
			}
		case "yWindow":
			if n, err := strconv.Atoi(attr.Value); err == nil {
				v.YWindow = n
			}
		case "windowWidth":
			if n, ok := parseUint(attr.Value); ok {
				v.WindowWidth = n
			}
		case "windowHeight":
			if n, ok := parseUint(attr.Value); ok {
				v.WindowHeight = n
			}
		case "tabRatio":
			if n, err := strconv.Atoi(attr.Value); err == nil {
				v.SetTabRatio(n)
			}
		case "firstSheet":
			if n, ok := parseUint(attr.Value); ok {
				v.FirstSheet = n
			}
		case "activeTab":
			if n, ok := parseUint(attr.Value); ok {
				v.ActiveTab = n
			}
		case "autoFilterDateGrouping":
			v.AutoFilterDateGrouping = parseBool(attr.Value, true)
		}
	}
	return v, dec.Skip()
}
