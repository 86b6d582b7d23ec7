package models

import "fmt"

// Area represents cell coordinate bounds on a sheet.
type Area struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Empty reports whether a covers no cells.
func (a Area) Empty() bool {
	return a.R1 <= 0 || a.C1 <= 0 || a.R2 < a.R1 || a.C2 < a.C1
}

// Rows returns the number of rows covered by a.
func (a Area) Rows() int {
	if a.Empty() {
		return 0
	}
	return a.R2 - a.R1 + 1
}

// Cols returns the number of columns covered by a.
func (a Area) Cols() int {
	if a.Empty() {
		return 0
	}
	return a.C2 - a.C1 + 1
}

// Intersect returns the cells covered by both a and b.
func (a Area) Intersect(b Area) Area {
	return Area{
		R1: max(a.R1, b.R1),
		C1: max(a.C1, b.C1),
		R2: min(a.R2, b.R2),
		C2: min(a.C2, b.C2),
	}
}

func (a Area) String() string {
	return fmt.Sprintf("R%dC%d:R%dC%d", a.R1, a.C1, a.R2, a.C2)
}
