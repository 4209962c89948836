// Package sheetops applies header-addressed column edits to xlsx
// workbooks.
package sheetops

// Options configures a Run.
type Options struct {
	// Sheet is the worksheet to operate on. Empty selects the first
	// sheet of the workbook.
	Sheet string
	// OutputPath is where the edited workbook is saved. Empty saves in
	// place over the input file.
	OutputPath string
	// DryRun applies operations in memory without saving.
	DryRun bool
}
