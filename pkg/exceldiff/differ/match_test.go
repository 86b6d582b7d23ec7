package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ukaji3/exceldiff-go/pkg/exceldiff/models"
)

func TestFindBestMatch(t *testing.T) {
	target := strRow("a", "b", "c", "d")
	candidates := []models.Row{
		strRow("a", "x", "y", "z"), // 1/4
		strRow("a", "b", "y", "z"), // 2/4
		strRow("a", "b", "c", "z"), // 3/4
	}

	idx, modified, ok := FindBestMatch(target, candidates, make([]bool, len(candidates)))

	assert.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Equal(t, []int{3}, modified)
}

func TestFindBestMatchSkipsConsumed(t *testing.T) {
	target := strRow("a", "b", "c", "d")
	candidates := []models.Row{
		strRow("a", "b", "c", "z"),
		strRow("a", "b", "y", "z"),
	}

	idx, modified, ok := FindBestMatch(target, candidates, []bool{true, false})

	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, []int{2, 3}, modified)
}

func TestFindBestMatchFirstWinsTies(t *testing.T) {
	target := strRow("a", "b")
	candidates := []models.Row{
		strRow("q", "b"),
		strRow("a", "q"),
	}

	idx, modified, ok := FindBestMatch(target, candidates, nil)

	assert.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, []int{0}, modified)
}

func TestFindBestMatchNoCandidate(t *testing.T) {
	target := strRow("a", "b", "c")
	candidates := []models.Row{strRow("a", "x", "y")}

	_, _, ok := FindBestMatch(target, candidates, nil)
	assert.False(t, ok)

	_, _, ok = FindBestMatch(models.Row{}, []models.Row{{}}, nil)
	assert.False(t, ok, "an empty row never matches")
}
