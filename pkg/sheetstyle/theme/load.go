package theme

import (
	"errors"
	"fmt"

	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/spreadsheet"
)

// ErrNoTheme indicates the workbook carries no theme part.
var ErrNoTheme = errors.New("workbook has no theme")

// Load opens an .xlsx file and returns the palette of its first theme.
func Load(path string) (Palette, error) {
	wb, err := spreadsheet.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return FromUnioffice(wb)
}

// FromUnioffice extracts the palette of the first theme of wb. Slots the
// theme leaves unresolved keep the DefaultPalette color.
func FromUnioffice(wb *spreadsheet.Workbook) (Palette, error) {
	themes := wb.Themes()
	if len(themes) == 0 || themes[0] == nil || themes[0].ThemeElements == nil ||
		themes[0].ThemeElements.ClrScheme == nil {
		return nil, ErrNoTheme
	}
	clrScheme := themes[0].ThemeElements.ClrScheme

	slots := [SlotCount]*dml.CT_Color{
		Light1:            clrScheme.Lt1,
		Dark1:             clrScheme.Dk1,
		Light2:            clrScheme.Lt2,
		Dark2:             clrScheme.Dk2,
		Accent1:           clrScheme.Accent1,
		Accent2:           clrScheme.Accent2,
		Accent3:           clrScheme.Accent3,
		Accent4:           clrScheme.Accent4,
		Accent5:           clrScheme.Accent5,
		Accent6:           clrScheme.Accent6,
		Hyperlink:         clrScheme.Hlink,
		FollowedHyperlink: clrScheme.FolHlink,
	}

	p := DefaultPalette()
	for i, clr := range slots {
		if rgb, ok := colorValue(clr); ok {
			p[i] = rgb
		}
	}
	return p, nil
}

// colorValue resolves a scheme entry to RRGGBB. System colors resolve to
// their last computed value.
func colorValue(clr *dml.CT_Color) (string, bool) {
	if clr == nil {
		return "", false
	}
	if clr.SrgbClr != nil && len(clr.SrgbClr.ValAttr) == 6 {
		return clr.SrgbClr.ValAttr, true
	}
	if clr.SysClr != nil && clr.SysClr.LastClrAttr != nil && len(*clr.SysClr.LastClrAttr) == 6 {
		return *clr.SysClr.LastClrAttr, true
	}
	return "", false
}
