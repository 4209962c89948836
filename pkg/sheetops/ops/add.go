package ops

import (
	"github.com/xuri/excelize/v2"

	"github.com/dmarkov/sheetops/pkg/sheetops/colref"
)

// AddColumn appends a new column after the last used column, writing
// Header into row 1 and, when Fill is non-empty, Fill into every
// existing data row. Duplicate headers are not diagnosed.
type AddColumn struct {
	Header string
	Fill   string
}

func (a AddColumn) Name() string { return "add" }

func (a AddColumn) Apply(f *excelize.File, sheet string) (*Result, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	lastRow, lastCol := usedBounds(rows)
	col := lastCol + 1

	name, err := colref.ColumnName(col)
	if err != nil {
		return nil, err
	}
	res := &Result{Op: a.Name(), Column: name}

	ref, err := excelize.CoordinatesToCellName(col, 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, ref, a.Header); err != nil {
		return nil, err
	}
	res.CellsChanged++

	if a.Fill == "" {
		return res, nil
	}

	for rowNum := 2; rowNum <= lastRow; rowNum++ {
		res.RowsScanned++

		ref, err := excelize.CoordinatesToCellName(col, rowNum)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, ref, a.Fill); err != nil {
			return nil, err
		}
		res.CellsChanged++
	}

	return res, nil
}
