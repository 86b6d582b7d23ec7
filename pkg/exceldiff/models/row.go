package models

// Row is an ordered sequence of cell values; the position is the column.
type Row []CellValue

// Worksheet is an ordered sequence of rows.
type Worksheet []Row

// Pad returns a copy of r with exactly n columns, truncating extra cells or
// filling missing ones with Empty.
func (r Row) Pad(n int) Row {
	out := make(Row, n)
	copy(out, r)
	return out
}

// Strings returns the display form of every cell in r.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, v := range r {
		out[i] = v.String()
	}
	return out
}

// MaxCols returns the length of the longest row in w.
func (w Worksheet) MaxCols() int {
	n := 0
	for _, row := range w {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}
