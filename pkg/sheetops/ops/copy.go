package ops

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/dmarkov/sheetops/pkg/sheetops/colref"
)

// CopyColumn copies the Source column's data cells into the column
// headed Target. When no Target header exists, a new column is appended
// after the last used column with Target as its header.
type CopyColumn struct {
	Source string
	Target string
}

func (c CopyColumn) Name() string { return "copy" }

func (c CopyColumn) Apply(f *excelize.File, sheet string) (*Result, error) {
	srcCol, err := findHeaderColumn(f, sheet, c.Source)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	dstCol, err := findHeaderColumn(f, sheet, c.Target)
	switch {
	case errors.Is(err, ErrColumnNotFound):
		_, lastCol := usedBounds(rows)
		dstCol = lastCol + 1
		ref, nameErr := excelize.CoordinatesToCellName(dstCol, 1)
		if nameErr != nil {
			return nil, nameErr
		}
		if err := f.SetCellValue(sheet, ref, c.Target); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	case dstCol == srcCol:
		return nil, fmt.Errorf("copy: source and target are the same column %q", c.Source)
	}

	dstName, err := colref.ColumnName(dstCol)
	if err != nil {
		return nil, err
	}
	res := &Result{Op: c.Name(), Column: dstName}

	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		res.RowsScanned++

		v := cellAt(rows[rowIdx], srcCol)
		if v == cellAt(rows[rowIdx], dstCol) {
			continue
		}

		ref, err := excelize.CoordinatesToCellName(dstCol, rowIdx+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, ref, v); err != nil {
			return nil, err
		}
		res.CellsChanged++
	}

	return res, nil
}
