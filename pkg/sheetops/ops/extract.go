package ops

import (
	"github.com/xuri/excelize/v2"

	"github.com/dmarkov/sheetops/pkg/sheetops/colref"
)

// ExtractColumn collects the data cell values of the column headed
// Header without modifying the workbook. Values keep their row order;
// empty cells between populated ones appear as empty strings.
type ExtractColumn struct {
	Header string
}

func (e ExtractColumn) Name() string { return "extract" }

func (e ExtractColumn) Apply(f *excelize.File, sheet string) (*Result, error) {
	col, err := findHeaderColumn(f, sheet, e.Header)
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
	res := &Result{Op: e.Name(), Column: name}

	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		res.RowsScanned++
		res.Values = append(res.Values, cellAt(rows[rowIdx], col))
	}

	return res, nil
}
