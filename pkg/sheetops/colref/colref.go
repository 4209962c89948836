// Package colref converts between spreadsheet column letter names and
// 1-based column numbers (A→1, Z→26, AA→27).
package colref

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnName converts a 1-based column number to its letter name.
func ColumnName(n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("column number must be positive, got %d", n)
	}

	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('A' + n%26)}, b...)
		n /= 26
	}

	return string(b), nil
}

// ColumnNumber converts a column letter name to its 1-based number.
// Input is case-insensitive. Names must be non-empty and contain ASCII
// letters only; digits or any other character are rejected.
func ColumnNumber(name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("empty column name")
	}

	n := 0
	for _, r := range strings.ToUpper(name) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("invalid column name %q", name)
		}
		n = n*26 + int(r-'A') + 1
	}

	return n, nil
}

// Split breaks a cell reference like "AB12" into its column letters and
// row number.
func Split(ref string) (string, int, error) {
	i := 0
	for i < len(ref) && isLetter(ref[i]) {
		i++
	}
	if i == 0 || i == len(ref) {
		return "", 0, fmt.Errorf("invalid cell reference %q", ref)
	}

	row, err := strconv.Atoi(ref[i:])
	if err != nil || row < 1 {
		return "", 0, fmt.Errorf("invalid cell reference %q", ref)
	}

	return strings.ToUpper(ref[:i]), row, nil
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
