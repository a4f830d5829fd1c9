package workbook

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/schema/sml"
	"github.com/xuri/excelize/v2"
)

// CalculationCell is one entry of the calculation chain.
type CalculationCell struct {
	// Row is 1-based.
	Row int `json:"row"`
	// Column is 1-based.
	Column int `json:"column"`
	// SheetID is the sheetId of the sheet holding the cell.
	SheetID uint `json:"sheet_id"`
	// Array marks the cell as part of an array formula.
	Array bool `json:"array,omitempty"`
	// NewDependencyLevel starts a new dependency level.
	NewDependencyLevel bool `json:"new_dependency_level,omitempty"`
	// ChildChain marks the cell as a child of the previous cell.
	ChildChain bool `json:"child_chain,omitempty"`
	// NewThread starts a new calculation thread.
	NewThread bool `json:"new_thread,omitempty"`
}

// NewCalculationCell returns a chain entry for cell on the given sheet.
// Unparsable references become A1.
func NewCalculationCell(sheetID uint, cell string) CalculationCell {
	col, row, err := excelize.CellNameToCoordinates(cell)
	if err != nil {
		col, row = 1, 1
	}
	return CalculationCell{Row: row, Column: col, SheetID: sheetID}
}

// CellReference returns the A1 reference of the cell.
func (c *CalculationCell) CellReference() string {
	ref, err := excelize.CoordinatesToCellName(max(c.Column, 1), max(c.Row, 1))
	if err != nil {
		return "A1"
	}
	return ref
}

// ToCalcCell emits the c element with its sheet id.
func (c *CalculationCell) ToCalcCell() *sml.CalcCell {
	cell := c.toCalcCell()
	cell.I = uintPtr(c.SheetID)
	return cell
}

func (c *CalculationCell) toCalcCell() *sml.CalcCell {
	return &sml.CalcCell{
		R: c.CellReference(),
		S: c.ChildChain,
		L: c.NewDependencyLevel,
		T: c.NewThread,
		A: c.Array,
	}
}

// FromCalcCell reads a c element whose start element has just been read from
// dec. It consumes the matching end element. The sheet id is zero when the
// element does not carry one.
func FromCalcCell(dec *xml.Decoder, start xml.StartElement) (CalculationCell, error) {
	var c CalculationCell
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "r":
			if col, row, err := excelize.CellNameToCoordinates(attr.Value); err == nil {
				c.Column, c.Row = col, row
			}
		case "i":
			if v, ok := parseUint(attr.Value); ok {
				c.SheetID = v
			}
		case "s":
			c.ChildChain = parseBool(attr.Value, false)
		case "l":
			c.NewDependencyLevel = parseBool(attr.Value, false)
		case "t":
			c.NewThread = parseBool(attr.Value, false)
		case "a":
			c.Array = parseBool(attr.Value, false)
		}
	}
	return c, dec.Skip()
}

// ToCalcChain emits the calcChain element. The sheet id is written only
// where it changes from the previous cell.
func ToCalcChain(cells []CalculationCell) *sml.CalcChain {
	chain := &sml.CalcChain{XMLNS: sml.NamespaceMain}
	var prev uint
	for i := range cells {
		cell := cells[i].toCalcCell()
		if i == 0 || cells[i].SheetID != prev {
			cell.I = uintPtr(cells[i].SheetID)
		}
		prev = cells[i].SheetID
		chain.C = append(chain.C, *cell)
	}
	return chain
}

// ReadCalcChain parses a calcChain.xml part. A cell without a sheet id
// belongs to the sheet of the cell before it.
func ReadCalcChain(r io.Reader) ([]CalculationCell, error) {
	var cells []CalculationCell
	dec := xml.NewDecoder(r)

	var prev uint
	for {
		token, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read calculation chain: %w", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "c" {
			continue
		}
		c, err := FromCalcCell(dec, start)
		if err != nil {
			return nil, fmt.Errorf("read calculation chain: %w", err)
		}
		if c.SheetID == 0 {
			c.SheetID = prev
		}
		prev = c.SheetID
		cells = append(cells, c)
	}
	return cells, nil
}
