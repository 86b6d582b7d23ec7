// Package exceldiff compares worksheets of two Excel workbooks.
package exceldiff

import "github.com/ukaji3/exceldiff-go/pkg/exceldiff/differ"

// ReadOptions configures how a sheet is read.
type ReadOptions struct {
	// SheetName selects the sheet to read. Empty selects the first sheet.
	SheetName string
	// Range restricts reading to a cell range such as "A1:D100".
	// Empty reads the whole used range.
	Range string
}

// Options configures a workbook comparison.
type Options struct {
	// Sheet1 is the sheet read from the first workbook (default: first sheet).
	Sheet1 string
	// Sheet2 is the sheet read from the second workbook (default: first sheet).
	Sheet2 string
	// Range restricts both sheets to the same cell range.
	Range string
	// IgnoreWhitespace trims and collapses whitespace in string values before comparing.
	IgnoreWhitespace bool
}

// DefaultOptions returns default comparison options.
func DefaultOptions() Options {
	return Options{}
}

// FirstReadOptions returns the read options for the first workbook.
func (o Options) FirstReadOptions() ReadOptions {
	return ReadOptions{SheetName: o.Sheet1, Range: o.Range}
}

// SecondReadOptions returns the read options for the second workbook.
func (o Options) SecondReadOptions() ReadOptions {
	return ReadOptions{SheetName: o.Sheet2, Range: o.Range}
}

// DiffOptions returns the options passed to the diff engine.
func (o Options) DiffOptions() differ.Options {
	return differ.Options{IgnoreWhitespace: o.IgnoreWhitespace}
}
