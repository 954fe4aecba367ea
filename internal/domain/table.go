package domain

// Table is an in-memory tabular dataset: named columns and string-valued rows
// in source order. The loader produces one per run; later stages read it but
// never reshape it.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// NumRows returns the number of data rows.
func (t Table) NumRows() int {
	return len(t.Rows)
}
