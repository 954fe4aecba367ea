package domain

import "strings"

// NormalizeTable trims leading and trailing whitespace from every cell in
// place. Numeric cells are unaffected since trimming a clean number is a
// no-op; text cells lose incidental padding.
func NormalizeTable(t Table) {
	for _, row := range t.Rows {
		for i, cell := range row {
			row[i] = strings.TrimSpace(cell)
		}
	}
}

// CountDuplicateRows returns how many rows duplicate an earlier row across
// all columns. This is a verification step, not a dedup step: the count is
// reported and the rows are kept.
func CountDuplicateRows(t Table) int {
	seen := make(map[string]struct{}, len(t.Rows))
	dupes := 0
	for _, row := range t.Rows {
		// 0x1f (unit separator) cannot appear in CSV cell values parsed
		// from a well-formed file, so the join is collision-free.
		key := strings.Join(row, "\x1f")
		if _, ok := seen[key]; ok {
			dupes++
			continue
		}
		seen[key] = struct{}{}
	}
	return dupes
}
