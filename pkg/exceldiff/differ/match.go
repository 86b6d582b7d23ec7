package differ

import "github.com/ukaji3/exceldiff-go/pkg/exceldiff/models"

// MatchThreshold is the minimum fraction of equal columns for two rows to
// be paired as a modification.
const MatchThreshold = 0.5

// FindBestMatch returns the unconsumed candidate most similar to target.
// Rows are compared position by position on already normalized values. The
// score is the fraction of target columns that are equal; a candidate needs
// at least MatchThreshold and only a strictly higher score replaces the
// current best, so the first candidate wins ties. The returned slice lists
// the columns that differ. An empty target never matches.
func FindBestMatch(target models.Row, candidates []models.Row, consumed []bool) (int, []int, bool) {
	if len(target) == 0 {
		return -1, nil, false
	}

	best := -1
	bestScore := 0.0
	var bestModified []int

	for idx, row := range candidates {
		if idx < len(consumed) && consumed[idx] {
			continue
		}

		matches := 0
		var modified []int
		for col := 0; col < len(target) && col < len(row); col++ {
			if target[col] == row[col] {
				matches++
			} else {
				modified = append(modified, col)
			}
		}

		score := float64(matches) / float64(len(target))
		if score > bestScore && score >= MatchThreshold {
			best = idx
			bestScore = score
			bestModified = modified
		}
	}

	if best < 0 {
		return -1, nil, false
	}
	return best, bestModified, true
}
