package ops

// usedBounds reports the extent of non-empty cells as 1-based last row
// and last column numbers. A sheet with no data reports 0, 0.
func usedBounds(rows [][]string) (lastRow, lastCol int) {
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if rowIdx+1 > lastRow {
				lastRow = rowIdx + 1
			}
			if colIdx+1 > lastCol {
				lastCol = colIdx + 1
			}
		}
	}

	return
}
