package ops

import (
	"fmt"
	"regexp"

	"github.com/xuri/excelize/v2"

	"github.com/dmarkov/sheetops/pkg/sheetops/colref"
)

// RegexReplace rewrites each data cell of the column headed Header with
// the result of replacing Pattern matches by Replacement. The pattern
// is compiled before any cell is touched, so a bad pattern never leaves
// the sheet half-rewritten.
type RegexReplace struct {
	Header      string
	Pattern     string
	Replacement string
}

func (r RegexReplace) Name() string { return "replace" }

func (r RegexReplace) Apply(f *excelize.File, sheet string) (*Result, error) {
	re, err := regexp.Compile(r.Pattern)
	if err != nil {
		return nil, fmt.Errorf("replace: bad pattern %q: %w", r.Pattern, err)
	}

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

		v := cellAt(rows[rowIdx], col)
		if v == "" {
			continue
		}
		out := re.ReplaceAllString(v, r.Replacement)
		if out == v {
			continue
		}

		ref, err := excelize.CoordinatesToCellName(col, rowIdx+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, ref, out); err != nil {
			return nil, err
		}
		res.CellsChanged++
	}

	return res, nil
}
