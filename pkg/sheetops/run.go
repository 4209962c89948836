package sheetops

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/dmarkov/sheetops/pkg/sheetops/ops"
)

// Run opens the workbook at path, applies opList in order to the
// resolved sheet, and saves the result. A missing column is a soft
// condition: the op is logged and skipped. Any other failure aborts
// the run before anything is saved, so the file on disk is never left
// half-mutated.
func Run(path string, opList []ops.Op, opts Options) ([]ops.Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheet, err := resolveSheet(f, opts.Sheet)
	if err != nil {
		return nil, err
	}

	var results []ops.Result
	for _, op := range opList {
		res, err := op.Apply(f, sheet)
		if err != nil {
			if errors.Is(err, ops.ErrColumnNotFound) {
				log.Warn().
					Str("op", op.Name()).
					Str("sheet", sheet).
					Msg(err.Error())
				continue
			}
			return nil, &OpError{Op: op.Name(), Sheet: sheet, Err: err}
		}

		log.Debug().
			Str("op", op.Name()).
			Str("column", res.Column).
			Int("rows_scanned", res.RowsScanned).
			Int("cells_changed", res.CellsChanged).
			Msg("operation applied")
		results = append(results, *res)
	}

	if opts.DryRun {
		return results, nil
	}

	out := opts.OutputPath
	if out == "" {
		out = path
	}
	if err := f.SaveAs(out); err != nil {
		return nil, fmt.Errorf("save %s: %w", out, err)
	}

	return results, nil
}

// resolveSheet returns the name of the sheet to operate on. An empty
// name falls back to the workbook's first sheet with a logged notice.
func resolveSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()

	if name == "" {
		if len(sheets) == 0 {
			return "", ErrSheetNotFound
		}
		log.Warn().
			Str("sheet", sheets[0]).
			Msg("no sheet name given, using first sheet")
		return sheets[0], nil
	}

	for _, s := range sheets {
		if s == name {
			return s, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, name)
}
