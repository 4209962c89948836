// Package ops implements header-addressed column operations on xlsx
// worksheets. Each operation locates its column by scanning row 1 for a
// matching header, then walks the data rows below it.
package ops

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrColumnNotFound indicates no header cell in row 1 matched the
// requested column name. Callers usually treat this as a soft condition.
var ErrColumnNotFound = errors.New("column not found")

// Op is a single column operation applied to one worksheet.
type Op interface {
	// Name returns the registry name of the operation.
	Name() string
	// Apply runs the operation against the given sheet of an open workbook.
	Apply(f *excelize.File, sheet string) (*Result, error)
}

// Result describes what an operation did.
type Result struct {
	// Op is the operation's registry name.
	Op string `json:"op"`
	// Column is the resolved column letter (e.g. "C").
	Column string `json:"column,omitempty"`
	// RowsScanned counts the data rows the operation walked.
	RowsScanned int `json:"rows_scanned"`
	// CellsChanged counts cells whose value was written.
	CellsChanged int `json:"cells_changed"`
	// Values holds extracted cell text for read-only operations.
	Values []string `json:"values,omitempty"`
}

// findHeaderColumn scans row 1 for a header cell whose trimmed text
// equals header and returns its 1-based column number. The first match
// wins; duplicate headers are not diagnosed.
func findHeaderColumn(f *excelize.File, sheet, header string) (int, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrColumnNotFound, header)
	}

	want := strings.TrimSpace(header)
	for i, cell := range rows[0] {
		if strings.TrimSpace(cell) == want {
			return i + 1, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrColumnNotFound, header)
}

// cellAt returns the text of the 1-based column col within a row slice
// from GetRows, or "" when the row is shorter than col.
func cellAt(row []string, col int) string {
	if col-1 < len(row) {
		return row[col-1]
	}
	return ""
}
