package ops

import (
	"github.com/xuri/excelize/v2"

	"github.com/dmarkov/sheetops/pkg/sheetops/colref"
)

// RemoveColumn deletes the column headed Header, header cell included,
// shifting later columns left.
type RemoveColumn struct {
	Header string
}

func (r RemoveColumn) Name() string { return "remove" }

func (r RemoveColumn) Apply(f *excelize.File, sheet string) (*Result, error) {
	col, err := findHeaderColumn(f, sheet, r.Header)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	name, err := colref.ColumnName(col)
	if err != nil {
		return nil, err
	}
	res := &Result{Op: r.Name(), Column: name}

	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		res.RowsScanned++
		if cellAt(rows[rowIdx], col) != "" {
			res.CellsChanged++
		}
	}

	if err := f.RemoveCol(sheet, name); err != nil {
		return nil, err
	}

	return res, nil
}
