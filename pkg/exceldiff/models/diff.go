package models

import (
	"fmt"
	"strconv"
)

// DiffType classifies a row in a comparison result.
type DiffType int

const (
	// Identical rows exist unchanged in both worksheets.
	Identical DiffType = iota
	// Modified rows were paired with a similar row whose values differ in some columns.
	Modified
	// Removed rows exist only in the first worksheet.
	Removed
	// Added rows exist only in the second worksheet.
	Added
)

var diffTypeNames = [...]string{
	Identical: "identical",
	Modified:  "modified",
	Removed:   "removed",
	Added:     "added",
}

func (t DiffType) String() string {
	if t >= 0 && int(t) < len(diffTypeNames) {
		return diffTypeNames[t]
	}
	return "DiffType(" + strconv.Itoa(int(t)) + ")"
}

// MarshalText encodes t as its lowercase name.
func (t DiffType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(diffTypeNames) {
		return nil, fmt.Errorf("invalid diff type %d", int(t))
	}
	return []byte(diffTypeNames[t]), nil
}

// UnmarshalText decodes a lowercase diff type name.
func (t *DiffType) UnmarshalText(text []byte) error {
	for i, name := range diffTypeNames {
		if name == string(text) {
			*t = DiffType(i)
			return nil
		}
	}
	return fmt.Errorf("invalid diff type %q", text)
}

// RowDiff describes how a single row compares across two worksheets.
type RowDiff struct {
	// Index is the position of the record in the output.
	Index int `json:"index"`
	// Type is the kind of difference.
	Type DiffType `json:"type"`
	// Row holds the current values: the new values for Modified rows.
	Row Row `json:"row"`
	// ModifiedCells lists the column indices that changed (Modified only).
	ModifiedCells []int `json:"modified_cells,omitempty"`
	// Original holds the previous values (Modified only).
	Original Row `json:"original,omitempty"`
}

// IsModified reports whether column col changed in d.
func (d RowDiff) IsModified(col int) bool {
	for _, c := range d.ModifiedCells {
		if c == col {
			return true
		}
	}
	return false
}

// Summary counts comparison results by type.
type Summary struct {
	Identical int `json:"identical"`
	Modified  int `json:"modified"`
	Removed   int `json:"removed"`
	Added     int `json:"added"`
}

// Summarize counts diffs by type.
func Summarize(diffs []RowDiff) Summary {
	var s Summary
	for _, d := range diffs {
		switch d.Type {
		case Identical:
			s.Identical++
		case Modified:
			s.Modified++
		case Removed:
			s.Removed++
		case Added:
			s.Added++
		}
	}
	return s
}

// Total returns the number of counted rows.
func (s Summary) Total() int {
	return s.Identical + s.Changed()
}

// Changed returns the number of rows that are not identical.
func (s Summary) Changed() int {
	return s.Modified + s.Removed + s.Added
}
