package sheetops

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound indicates the requested worksheet does not exist in
// the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrUnknownOp indicates an operation name with no registry binding.
var ErrUnknownOp = errors.New("unknown operation")

// OpError reports a failed operation.
type OpError struct {
	Op    string
	Sheet string
	Err   error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("op %q on sheet %q: %v", e.Op, e.Sheet, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
