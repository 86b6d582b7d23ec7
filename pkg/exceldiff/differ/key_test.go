package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ukaji3/exceldiff-go/pkg/exceldiff/models"
)

func TestRowKey(t *testing.T) {
	row := models.Row{
		models.StringValue("id"),
		models.IntValue(7),
		models.FloatValue(0.1 + 0.2),
		models.BoolValue(false),
		models.Empty(),
	}

	assert.Equal(t, "id\x007\x000.3\x00false\x00\x00", RowKey(row, false))
}

func TestRowKeyWhitespace(t *testing.T) {
	row := strRow(" a  b ")

	assert.Equal(t, " a  b \x00", RowKey(row, false))
	assert.Equal(t, "a b\x00", RowKey(row, true))
}

func TestRowKeySeparatorInValue(t *testing.T) {
	joined := strRow("a\x00b")
	split := strRow("a", "b")

	assert.NotEqual(t, RowKey(joined, false), RowKey(split, false))
	assert.NotEqual(t, RowKey(strRow("\x01\x02"), false), RowKey(strRow("\x00"), false))
	assert.Equal(t, RowKey(strRow("a\x00b"), false), RowKey(strRow("a\x00b"), false))
}

func TestRowKeyEmptyVersusBlankString(t *testing.T) {
	// Both display as "", so the key cannot tell them apart.
	assert.Equal(t, RowKey(models.Row{models.Empty()}, false), RowKey(strRow(""), false))
}
