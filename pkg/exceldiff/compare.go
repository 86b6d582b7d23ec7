package exceldiff

import (
	"log/slog"
	"time"

	"github.com/ukaji3/exceldiff-go/pkg/exceldiff/differ"
	"github.com/ukaji3/exceldiff-go/pkg/exceldiff/models"
)

// Result holds the outcome of comparing two workbooks.
type Result struct {
	Sheet1  *models.Sheet
	Sheet2  *models.Sheet
	Diffs   []models.RowDiff
	Summary models.Summary
}

// Compare reads the selected sheet of each workbook and diffs their rows.
func Compare(path1, path2 string, opts Options) (*Result, error) {
	sheet1, err := ReadSheet(path1, opts.FirstReadOptions())
	if err != nil {
		return nil, err
	}

	sheet2, err := ReadSheet(path2, opts.SecondReadOptions())
	if err != nil {
		return nil, err
	}

	return CompareSheets(sheet1, sheet2, opts.DiffOptions()), nil
}

// CompareSheets diffs two sheets that have already been read.
func CompareSheets(sheet1, sheet2 *models.Sheet, opts differ.Options) *Result {
	start := time.Now()
	diffs := differ.New(opts).Compare(sheet1.Rows, sheet2.Rows)
	summary := models.Summarize(diffs)

	slog.Debug("sheets compared",
		"sheet1", sheet1.Name,
		"sheet2", sheet2.Name,
		"ignore_whitespace", opts.IgnoreWhitespace,
		"rows", len(diffs),
		"elapsed", time.Since(start),
	)

	return &Result{
		Sheet1:  sheet1,
		Sheet2:  sheet2,
		Diffs:   diffs,
		Summary: summary,
	}
}
