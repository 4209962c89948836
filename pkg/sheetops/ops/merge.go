package ops

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/dmarkov/sheetops/pkg/sheetops/colref"
)

// MergeColumns appends the Source column's data cells onto the Target
// column's, joining non-empty halves with Separator, then removes the
// Source column.
type MergeColumns struct {
	Target    string
	Source    string
	Separator string
}

func (m MergeColumns) Name() string { return "merge" }

func (m MergeColumns) Apply(f *excelize.File, sheet string) (*Result, error) {
	targetCol, err := findHeaderColumn(f, sheet, m.Target)
	if err != nil {
		return nil, err
	}
	sourceCol, err := findHeaderColumn(f, sheet, m.Source)
	if err != nil {
		return nil, err
	}
	if targetCol == sourceCol {
		return nil, fmt.Errorf("merge: target and source are the same column %q", m.Target)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	targetName, err := colref.ColumnName(targetCol)
	if err != nil {
		return nil, err
	}
	res := &Result{Op: m.Name(), Column: targetName}

	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		res.RowsScanned++

		sv := cellAt(rows[rowIdx], sourceCol)
		if sv == "" {
			continue
		}
		merged := sv
		if tv := cellAt(rows[rowIdx], targetCol); tv != "" {
			merged = tv + m.Separator + sv
		}

		ref, err := excelize.CoordinatesToCellName(targetCol, rowIdx+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, ref, merged); err != nil {
			return nil, err
		}
		res.CellsChanged++
	}

	sourceName, err := colref.ColumnName(sourceCol)
	if err != nil {
		return nil, err
	}
	if err := f.RemoveCol(sheet, sourceName); err != nil {
		return nil, err
	}

	return res, nil
}
