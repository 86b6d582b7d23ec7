// Package output renders comparison results.
package output

import (
	"fmt"
	"unicode/utf8"

	"github.com/ukaji3/exceldiff-go/pkg/exceldiff/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the sheet holding the rendered diff.
const SheetName = "Diff"

const (
	modifiedFontColor = "FF0000" // red
	removedFillColor  = "FFFF00" // yellow
	addedFillColor    = "FFA500" // orange
	dateTimeFormat    = "yyyy-mm-dd hh:mm:ss"

	minColWidth = 8
	maxColWidth = 80
)

// WriteOptions configures the rendered workbook.
type WriteOptions struct {
	// DiffOnly omits identical rows.
	DiffOnly bool
	// IncludeHeader writes the first record's values as a leading plain row.
	IncludeHeader bool
}

// Filter returns the records to render. With diffOnly set, identical rows
// are dropped.
func Filter(diffs []models.RowDiff, diffOnly bool) []models.RowDiff {
	if !diffOnly {
		return diffs
	}
	out := make([]models.RowDiff, 0, len(diffs))
	for _, d := range diffs {
		if d.Type != models.Identical {
			out = append(out, d)
		}
	}
	return out
}

// RowCount returns the number of rows WriteXLSX writes for diffs.
func RowCount(diffs []models.RowDiff, opts WriteOptions) int {
	n := len(Filter(diffs, opts.DiffOnly))
	if opts.IncludeHeader && len(diffs) > 0 {
		n++
	}
	return n
}

// WriteXLSX renders diffs into a new workbook at path.
//
// Identical rows are written plain. Modified rows show each changed cell as
// "old → new" in red. Removed rows get a yellow fill and added rows an
// orange fill.
func WriteXLSX(diffs []models.RowDiff, path string, opts WriteOptions) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	lines := layout(diffs, opts)

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return err
	}

	// Column widths must be set before the first row is streamed.
	for col, width := range columnWidths(lines) {
		if err := sw.SetColWidth(col+1, col+1, width); err != nil {
			return err
		}
	}

	styles := newStyleSet(f)
	for i, l := range lines {
		if len(l.cells) == 0 {
			continue
		}
		values := make([]interface{}, len(l.cells))
		for col, c := range l.cells {
			styleID, err := styles.get(c.style)
			if err != nil {
				return err
			}
			values[col] = excelize.Cell{StyleID: styleID, Value: c.value}
		}

		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, values); err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}
	return f.SaveAs(path)
}

// line is one rendered output row.
type line struct {
	cells []renderedCell
}

type renderedCell struct {
	value interface{}
	text  string // display text, used for column widths
	style styleKey
}

// layout converts diffs into the rows to write, applying the header and
// diff-only policies.
func layout(diffs []models.RowDiff, opts WriteOptions) []line {
	var lines []line
	if opts.IncludeHeader && len(diffs) > 0 {
		lines = append(lines, renderPlain(diffs[0].Row, fillNone))
	}

	for _, d := range Filter(diffs, opts.DiffOnly) {
		switch d.Type {
		case models.Modified:
			lines = append(lines, renderModified(d))
		case models.Removed:
			lines = append(lines, renderPlain(d.Row, fillRemoved))
		case models.Added:
			lines = append(lines, renderPlain(d.Row, fillAdded))
		default:
			lines = append(lines, renderPlain(d.Row, fillNone))
		}
	}
	return lines
}

func renderPlain(row models.Row, fill fillKind) line {
	cells := make([]renderedCell, len(row))
	for col, v := range row {
		cells[col] = renderValue(v, fill)
	}
	return line{cells: cells}
}

func renderModified(d models.RowDiff) line {
	cells := make([]renderedCell, len(d.Row))
	for col, v := range d.Row {
		if !d.IsModified(col) || d.Original == nil {
			cells[col] = renderValue(v, fillNone)
			continue
		}
		var old models.CellValue
		if col < len(d.Original) {
			old = d.Original[col]
		}
		text := ChangeText(old, v)
		cells[col] = renderedCell{value: text, text: text, style: styleKey{changed: true}}
	}
	return line{cells: cells}
}

// ChangeText formats a changed cell as "old → new".
func ChangeText(old, current models.CellValue) string {
	return fmt.Sprintf("%s → %s", old.String(), current.String())
}

func renderValue(v models.CellValue, fill fillKind) renderedCell {
	c := renderedCell{text: v.String(), style: styleKey{fill: fill}}
	switch v.Kind {
	case models.KindString:
		c.value = v.Str
	case models.KindFloat:
		c.value = v.Num
	case models.KindInt:
		c.value = v.Int
	case models.KindBool:
		c.value = v.Bool
	case models.KindDateTime:
		c.value = v.Num
		c.text = dateTimeFormat
		c.style.dateTime = true
	default:
		c.value = ""
	}
	return c
}

// columnWidths sizes each column to its longest display text.
func columnWidths(lines []line) []float64 {
	var longest []int
	for _, l := range lines {
		for col, c := range l.cells {
			for len(longest) <= col {
				longest = append(longest, 0)
			}
			if n := utf8.RuneCountInString(c.text); n > longest[col] {
				longest[col] = n
			}
		}
	}

	widths := make([]float64, len(longest))
	for col, n := range longest {
		widths[col] = float64(min(max(n, minColWidth)+2, maxColWidth))
	}
	return widths
}
