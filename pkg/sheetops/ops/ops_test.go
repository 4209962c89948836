package ops

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

const testSheet = "Sheet1"

// testWorkbook builds a three-column workbook with a header row and
// three data rows, including empty cells in the Email and Phone columns.
func testWorkbook(t *testing.T) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	cells := map[string]string{
		"A1": "Name", "B1": "Email", "C1": "Phone",
		"A2": "Alice", "B2": "alice@example.com", "C2": "555-0100",
		"A3": "Bob", "C3": "555-0101",
		"A4": "Carol", "B4": "carol@example.com",
	}
	for ref, v := range cells {
		if err := f.SetCellValue(testSheet, ref, v); err != nil {
			t.Fatalf("SetCellValue(%s) failed: %v", ref, err)
		}
	}
	return f
}

func getCell(t *testing.T, f *excelize.File, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(testSheet, ref)
	if err != nil {
		t.Fatalf("GetCellValue(%s) failed: %v", ref, err)
	}
	return v
}

func TestFindHeaderColumnTrimsWhitespace(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetCellValue(testSheet, "B1", "  Padded  "); err != nil {
		t.Fatalf("SetCellValue failed: %v", err)
	}

	col, err := findHeaderColumn(f, testSheet, "Padded")
	if err != nil {
		t.Fatalf("findHeaderColumn failed: %v", err)
	}
	if col != 2 {
		t.Errorf("expected column 2, got %d", col)
	}
}

func TestMergeColumns(t *testing.T) {
	f := testWorkbook(t)
	defer f.Close()

	res, err := MergeColumns{Target: "Name", Source: "Phone", Separator: " / "}.Apply(f, testSheet)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}

	if res.Column != "A" {
		t.Errorf("expected column A, got %q", res.Column)
	}
	if res.CellsChanged != 2 {
		t.Errorf("expected 2 cells changed, got %d", res.CellsChanged)
	}
	if got := getCell(t, f, "A2"); got != "Alice / 555-0100" {
		t.Errorf("A2 = %q", got)
	}
	if got := getCell(t, f, "A3"); got != "Bob / 555-0101" {
		t.Errorf("A3 = %q", got)
	}
	// Empty source cell leaves the target untouched.
	if got := getCell(t, f, "A4"); got != "Carol" {
		t.Errorf("A4 = %q", got)
	}
	// Source column is gone; Email shifted into C's old place stays at B.
	if got := getCell(t, f, "B1"); got != "Email" {
		t.Errorf("B1 = %q", got)
	}
	if got := getCell(t, f, "C1"); got != "" {
		t.Errorf("C1 = %q, want empty after source removal", got)
	}
}

func TestMergeColumnsSameColumn(t *testing.T) {
	f := testWorkbook(t)
	defer f.Close()

	if _, err := (MergeColumns{Target: "Name", Source: "Name"}).Apply(f, testSheet); err == nil {
		t.Fatal("expected error for merging a column into itself")
	}
}

func TestRemoveColumn(t *testing.T) {
	f := testWorkbook(t)
	defer f.Close()

	res, err := RemoveColumn{Header: "Email"}.Apply(f, testSheet)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	if res.Column != "B" {
		t.Errorf("expected column B, got %q", res.Column)
	}
	if res.CellsChanged != 2 {
		t.Errorf("expected 2 non-empty data cells removed, got %d", res.CellsChanged)
	}
	if got := getCell(t, f, "B1"); got != "Phone" {
		t.Errorf("B1 = %q, want Phone after shift", got)
	}
	if got := getCell(t, f, "B2"); got != "555-0100" {
		t.Errorf("B2 = %q", got)
	}
}

func TestCopyColumnAppendsMissingTarget(t *testing.T) {
	f := testWorkbook(t)
	defer f.Close()

	res, err := CopyColumn{Source: "Name", Target: "DisplayName"}.Apply(f, testSheet)
	if err != nil {
		t.Fatalf("copy failed: %v", err)
	}

	if res.Column != "D" {
		t.Errorf("expected column D, got %q", res.Column)
	}
	if got := getCell(t, f, "D1"); got != "DisplayName" {
		t.Errorf("D1 = %q", got)
	}
	for ref, want := range map[string]string{"D2": "Alice", "D3": "Bob", "D4": "Carol"} {
		if got := getCell(t, f, ref); got != want {
			t.Errorf("%s = %q, want %q", ref, got, want)
		}
	}
}

func TestCopyColumnOverwritesExistingTarget(t *testing.T) {
	f := testWorkbook(t)
	defer f.Close()

	res, err := CopyColumn{Source: "Phone", Target: "Email"}.Apply(f, testSheet)
	if err != nil {
		t.Fatalf("copy failed: %v", err)
	}

	if res.Column != "B" {
		t.Errorf("expected column B, got %q", res.Column)
	}
	if got := getCell(t, f, "B2"); got != "555-0100" {
		t.Errorf("B2 = %q", got)
	}
	if got := getCell(t, f, "B3"); got != "555-0101" {
		t.Errorf("B3 = %q", got)
	}
	// Empty source cell clears the stale target value.
	if got := getCell(t, f, "B4"); got != "" {
		t.Errorf("B4 = %q, want empty", got)
	}
}

func TestCopyColumnSameColumn(t *testing.T) {
	f := testWorkbook(t)
	defer f.Close()

	if _, err := (CopyColumn{Source: "Name", Target: "Name"}).Apply(f, testSheet); err == nil {
		t.Fatal("expected error for copying a column onto itself")
	}
}

func TestAddColumnWithFill(t *testing.T) {
	f := testWorkbook(t)
	defer f.Close()

	res, err := AddColumn{Header: "Status", Fill: "active"}.Apply(f, testSheet)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if res.Column != "D" {
		t.Errorf("expected column D, got %q", res.Column)
	}
	if res.CellsChanged != 4 {
		t.Errorf("expected 4 cells written (header + 3 rows), got %d", res.CellsChanged)
	}
	if got := getCell(t, f, "D1"); got != "Status" {
		t.Errorf("D1 = %q", got)
	}
	for _, ref := range []string{"D2", "D3", "D4"} {
		if got := getCell(t, f, ref); got != "active" {
			t.Errorf("%s = %q, want active", ref, got)
		}
	}
}

func TestAddColumnHeaderOnly(t *testing.T) {
	f := testWorkbook(t)
	defer f.Close()

	res, err := AddColumn{Header: "Notes"}.Apply(f, testSheet)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if res.CellsChanged != 1 {
		t.Errorf("expected only the header cell written, got %d", res.CellsChanged)
	}
	if got := getCell(t, f, "D2"); got != "" {
		t.Errorf("D2 = %q, want empty", got)
	}
}

func TestRegexReplace(t *testing.T) {
	f := testWorkbook(t)
	defer f.Close()

	res, err := RegexReplace{Header: "Phone", Pattern: "^555-", Replacement: "+1-555-"}.Apply(f, testSheet)
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	if res.CellsChanged != 2 {
		t.Errorf("expected 2 cells changed, got %d", res.CellsChanged)
	}
	if got := getCell(t, f, "C2"); got != "+1-555-0100" {
		t.Errorf("C2 = %q", got)
	}
	if got := getCell(t, f, "C3"); got != "+1-555-0101" {
		t.Errorf("C3 = %q", got)
	}
	if got := getCell(t, f, "C4"); got != "" {
		t.Errorf("C4 = %q, want empty", got)
	}
}

func TestRegexReplaceBadPattern(t *testing.T) {
	f := testWorkbook(t)
	defer f.Close()

	_, err := RegexReplace{Header: "Phone", Pattern: "("}.Apply(f, testSheet)
	if err == nil {
		t.Fatal("expected error for invalid pattern")
	}
	if errors.Is(err, ErrColumnNotFound) {
		t.Fatal("bad pattern must not surface as a missing column")
	}
	// The pattern is rejected before any cell is touched.
	if got := getCell(t, f, "C2"); got != "555-0100" {
		t.Errorf("C2 = %q, want untouched", got)
	}
}

func TestExtractColumn(t *testing.T) {
	f := testWorkbook(t)
	defer f.Close()

	res, err := ExtractColumn{Header: "Email"}.Apply(f, testSheet)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	want := []string{"alice@example.com", "", "carol@example.com"}
	if len(res.Values) != len(want) {
		t.Fatalf("expected %d values, got %d: %v", len(want), len(res.Values), res.Values)
	}
	for i, v := range want {
		if res.Values[i] != v {
			t.Errorf("Values[%d] = %q, want %q", i, res.Values[i], v)
		}
	}
}

func TestMissingColumnIsErrColumnNotFound(t *testing.T) {
	opsUnderTest := []Op{
		MergeColumns{Target: "Ghost", Source: "Name"},
		MergeColumns{Target: "Name", Source: "Ghost"},
		RemoveColumn{Header: "Ghost"},
		CopyColumn{Source: "Ghost", Target: "Name"},
		RegexReplace{Header: "Ghost", Pattern: "x"},
		ExtractColumn{Header: "Ghost"},
	}

	for _, op := range opsUnderTest {
		f := testWorkbook(t)
		_, err := op.Apply(f, testSheet)
		if !errors.Is(err, ErrColumnNotFound) {
			t.Errorf("%s: expected ErrColumnNotFound, got %v", op.Name(), err)
		}
		f.Close()
	}
}

func TestUsedBounds(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]string
		wantRow int
		wantCol int
	}{
		{"empty", nil, 0, 0},
		{"single cell", [][]string{{"x"}}, 1, 1},
		{"ragged rows", [][]string{{"a", "b", "c"}, {"d"}, {"", "", "", "e"}}, 3, 4},
		{"blank cells only", [][]string{{"", ""}, {""}}, 0, 0},
	}

	for _, tt := range tests {
		lastRow, lastCol := usedBounds(tt.rows)
		if lastRow != tt.wantRow || lastCol != tt.wantCol {
			t.Errorf("%s: usedBounds = %d, %d, want %d, %d",
				tt.name, lastRow, lastCol, tt.wantRow, tt.wantCol)
		}
	}
}
