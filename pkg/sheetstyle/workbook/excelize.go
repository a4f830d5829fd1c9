package workbook

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"
)

// workbookScope is the scope excelize reports for workbook scoped names.
const workbookScope = "Workbook"

// Apply pushes the sheets, defined names, active tab and workbook properties
// into f. Sheets missing from f are created; sheets already in f are left in
// place.
func (w *Workbook) Apply(f *excelize.File) error {
	for _, s := range w.Sheets {
		idx, err := f.GetSheetIndex(s.Name)
		if err != nil {
			return fmt.Errorf("sheet %q: %w", s.Name, err)
		}
		if idx == -1 {
			if _, err := f.NewSheet(s.Name); err != nil {
				return fmt.Errorf("sheet %q: %w", s.Name, err)
			}
		}
	}

	if len(w.Views) > 0 {
		active := int(w.Views[0].ActiveTab)
		if active < len(w.Sheets) {
			if idx, err := f.GetSheetIndex(w.Sheets[active].Name); err == nil && idx >= 0 {
				f.SetActiveSheet(idx)
			}
		}
	}

	for _, s := range w.Sheets {
		if s.State != StateHidden && s.State != StateVeryHidden {
			continue
		}
		if err := f.SetSheetVisible(s.Name, false, s.State == StateVeryHidden); err != nil {
			return fmt.Errorf("sheet %q: %w", s.Name, err)
		}
	}

	for i := range w.DefinedNames {
		d := &w.DefinedNames[i]
		scope := ""
		if d.LocalSheetID != nil && int(*d.LocalSheetID) < len(w.Sheets) {
			scope = w.Sheets[*d.LocalSheetID].Name
		}
		if err := f.SetDefinedName(&excelize.DefinedName{
			Name:     d.Name,
			Comment:  d.Comment,
			RefersTo: d.Text,
			Scope:    scope,
		}); err != nil {
			return fmt.Errorf("defined name %q: %w", d.Name, err)
		}
	}

	p := w.Properties
	opts := &excelize.WorkbookPropsOptions{
		Date1904:      &p.Date1904,
		FilterPrivacy: &p.FilterPrivacy,
	}
	if p.CodeName != "" {
		opts.CodeName = &p.CodeName
	}
	if err := f.SetWorkbookProps(opts); err != nil {
		return fmt.Errorf("workbook properties: %w", err)
	}
	return nil
}

// FromExcelize builds a workbook model from an open excelize file. Sheet
// relationship ids and the calculation chain are not exposed by excelize and
// stay empty; hidden sheets read as StateHidden.
func FromExcelize(f *excelize.File) (*Workbook, error) {
	w := New()

	ids := make(map[string]uint)
	for id, name := range f.GetSheetMap() {
		ids[name] = uint(id)
	}

	list := f.GetSheetList()
	for _, name := range list {
		s := NewSheet(name, ids[name], "")
		visible, err := f.GetSheetVisible(name)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		if !visible {
			s.State = StateHidden
		}
		w.Sheets = append(w.Sheets, s)
	}

	view := NewWorkbookView()
	view.ActiveTab = uint(max(f.GetActiveSheetIndex(), 0))
	w.Views = append(w.Views, view)

	for _, dn := range f.GetDefinedName() {
		d := NewDefinedName(dn.Name, dn.RefersTo)
		d.Comment = dn.Comment
		if dn.Scope != "" && dn.Scope != workbookScope {
			if i := slices.IndexFunc(list, func(n string) bool { return strings.EqualFold(n, dn.Scope) }); i >= 0 {
				d.SetLocalSheetID(uint(i))
			}
		}
		w.DefinedNames = append(w.DefinedNames, d)
	}

	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, fmt.Errorf("workbook properties: %w", err)
	}
	if props.Date1904 != nil {
		w.Properties.Date1904 = *props.Date1904
	}
	if props.FilterPrivacy != nil {
		w.Properties.FilterPrivacy = *props.FilterPrivacy
	}
	if props.CodeName != nil {
		w.Properties.CodeName = *props.CodeName
	}
	return w, nil
}
