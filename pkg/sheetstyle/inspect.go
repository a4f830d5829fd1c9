package sheetstyle

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/theme"
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/workbook"
)

// Report is the workbook-level metadata of one .xlsx package.
type Report struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Workbook holds sheets, defined names, views, properties and the
	// calculation chain.
	Workbook *workbook.Workbook `json:"workbook"`
	// PrintAreas maps sheet name to its print areas.
	PrintAreas map[string][]workbook.PrintArea `json:"print_areas,omitempty"`
	// Palette is the theme color scheme, nil when it could not be read.
	Palette theme.Palette `json:"palette,omitempty"`
}

// Inspect reads the workbook metadata and theme palette of an .xlsx file.
// The workbook part is required; failures in optional parts are reported
// through opts.Logger and skipped.
func Inspect(filePath string, opts Options) (*Report, error) {
	if _, err := os.Stat(filePath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, filePath)
	}

	r, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer r.Close()

	wbPart := findWorkbookPart(&r.Reader)
	data, err := readZipFile(&r.Reader, wbPart)
	if err != nil {
		return nil, NewPartError(wbPart, err)
	}
	if data == nil {
		return nil, NewPartError(wbPart, ErrMissingPart)
	}
	wb, err := workbook.Read(bytes.NewReader(data))
	if err != nil {
		return nil, NewPartError(wbPart, err)
	}

	// Sheet types and the calculation chain come from the workbook
	// relationships.
	var rels []relationship
	relsPart := relsPartFor(wbPart)
	if data, err := readZipFile(&r.Reader, relsPart); err != nil {
		opts.warnf("%v", NewPartError(relsPart, err))
	} else {
		rels = parseRelationships(data)
	}

	types := make(map[string]workbook.SheetType)
	calcPart := ""
	for _, rel := range rels {
		types[rel.ID] = workbook.SheetTypeFromRelationship(rel.Type)
		if rel.relType() == "calcChain" {
			calcPart = resolveTarget(rel.Target, path.Dir(wbPart))
		}
	}
	for i := range wb.Sheets {
		if t, ok := types[wb.Sheets[i].RelationshipID]; ok {
			wb.Sheets[i].Type = t
		}
	}

	if opts.ShouldIncludeCalcChain() && calcPart != "" {
		if cells, err := readCalcChain(&r.Reader, calcPart); err != nil {
			opts.warnf("%v", err)
		} else {
			wb.CalculationCells = cells
		}
	}

	report := &Report{
		BookName:   filepath.Base(filePath),
		Workbook:   wb,
		PrintAreas: wb.PrintAreas(),
	}

	if opts.ShouldIncludeTheme() {
		p, err := theme.Load(filePath)
		if err != nil {
			opts.warnf("%v", NewPartError("theme", err))
		} else {
			report.Palette = p
		}
	}

	return report, nil
}

func readCalcChain(r *zip.Reader, part string) ([]workbook.CalculationCell, error) {
	data, err := readZipFile(r, part)
	if err != nil {
		return nil, NewPartError(part, err)
	}
	if data == nil {
		return nil, NewPartError(part, ErrMissingPart)
	}
	cells, err := workbook.ReadCalcChain(bytes.NewReader(data))
	if err != nil {
		return nil, NewPartError(part, err)
	}
	return cells, nil
}
