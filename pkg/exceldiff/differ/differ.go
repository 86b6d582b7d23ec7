package differ

import "github.com/ukaji3/exceldiff-go/pkg/exceldiff/models"

// Differ compares two worksheets. It holds no state between calls and is
// safe for concurrent use.
type Differ struct {
	opts Options
}

// New creates a Differ with the given options.
func New(opts Options) *Differ {
	return &Differ{opts: opts}
}

// Compare is a convenience wrapper around New(opts).Compare(a, b).
func Compare(a, b models.Worksheet, opts Options) []models.RowDiff {
	return New(opts).Compare(a, b)
}

// Compare classifies every row of a against b and appends the rows of b
// that were never matched. Records for a come first in a's order, followed
// by added rows in b's order. All emitted rows are padded to the widest row
// of either worksheet. The inputs are not modified.
func (d *Differ) Compare(a, b models.Worksheet) []models.RowDiff {
	maxCols := max(a.MaxCols(), b.MaxCols())

	rowsA, normA := d.prepare(a, maxCols)
	rowsB, normB := d.prepare(b, maxCols)

	index := make(map[string]int, len(normB))
	for idx, row := range normB {
		index[normalizedKey(row)] = idx
	}

	consumed := make([]bool, len(rowsB))
	result := make([]models.RowDiff, 0, len(rowsA)+len(rowsB))

	for idxA, row := range normA {
		if idxB, ok := index[normalizedKey(row)]; ok && !consumed[idxB] {
			result = append(result, models.RowDiff{
				Index: idxA,
				Type:  models.Identical,
				Row:   rowsA[idxA],
			})
			consumed[idxB] = true
			continue
		}

		if idxB, modified, ok := FindBestMatch(row, normB, consumed); ok {
			consumed[idxB] = true
			// A duplicate of an already consumed key can still find an equal row.
			if len(modified) == 0 {
				result = append(result, models.RowDiff{
					Index: idxA,
					Type:  models.Identical,
					Row:   rowsA[idxA],
				})
				continue
			}
			result = append(result, models.RowDiff{
				Index:         idxA,
				Type:          models.Modified,
				Row:           rowsB[idxB],
				ModifiedCells: modified,
				Original:      rowsA[idxA],
			})
			continue
		}

		result = append(result, models.RowDiff{
			Index: idxA,
			Type:  models.Removed,
			Row:   rowsA[idxA],
		})
	}

	for idxB, row := range rowsB {
		if consumed[idxB] {
			continue
		}
		// Added rows are numbered by output position, not by their row in b.
		result = append(result, models.RowDiff{
			Index: len(result),
			Type:  models.Added,
			Row:   row,
		})
	}

	return result
}

// prepare pads every row of w to cols columns and computes the normalized
// form used for matching. Normalization runs once per cell.
func (d *Differ) prepare(w models.Worksheet, cols int) (padded, normalized []models.Row) {
	padded = make([]models.Row, len(w))
	normalized = make([]models.Row, len(w))
	for i, row := range w {
		p := row.Pad(cols)
		n := make(models.Row, cols)
		for col, v := range p {
			n[col] = v.Normalize(d.opts.IgnoreWhitespace)
		}
		padded[i] = p
		normalized[i] = n
	}
	return padded, normalized
}
