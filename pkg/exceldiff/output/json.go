package output

import (
	"encoding/json"

	"github.com/ukaji3/exceldiff-go/pkg/exceldiff/models"
)

// Report is the JSON form of a comparison.
type Report struct {
	File1            string           `json:"file1"`
	File2            string           `json:"file2"`
	Sheet1           string           `json:"sheet1"`
	Sheet2           string           `json:"sheet2"`
	IgnoreWhitespace bool             `json:"ignore_whitespace"`
	DiffOnly         bool             `json:"diff_only"`
	Summary          models.Summary   `json:"summary"`
	Rows             []models.RowDiff `json:"rows"`
}

// NewReport builds a report for two compared sheets. The summary always
// counts every record; Rows honors diffOnly.
func NewReport(sheet1, sheet2 *models.Sheet, diffs []models.RowDiff, diffOnly bool) *Report {
	rows := Filter(diffs, diffOnly)
	if rows == nil {
		rows = []models.RowDiff{}
	}
	return &Report{
		File1:    sheet1.BookName,
		File2:    sheet2.BookName,
		Sheet1:   sheet1.Name,
		Sheet2:   sheet2.Name,
		DiffOnly: diffOnly,
		Summary:  models.Summarize(diffs),
		Rows:     rows,
	}
}

// ToJSON serializes a report to JSON.
func ToJSON(report *Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
