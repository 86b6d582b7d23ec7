package differ

import (
	"strings"

	"github.com/ukaji3/exceldiff-go/pkg/exceldiff/models"
)

const (
	keySeparator = 0x00
	keyEscape    = 0x01
)

// RowKey encodes the normalized display strings of row into a lookup key.
// Each cell is terminated by a zero byte. Zero and escape bytes inside a
// value are escaped so distinct rows never share a key.
func RowKey(row models.Row, ignoreWhitespace bool) string {
	normalized := make(models.Row, len(row))
	for i, v := range row {
		normalized[i] = v.Normalize(ignoreWhitespace)
	}
	return normalizedKey(normalized)
}

// normalizedKey encodes a row whose cells are already normalized.
func normalizedKey(row models.Row) string {
	var b strings.Builder
	for _, v := range row {
		writeKeyField(&b, v.String())
	}
	return b.String()
}

func writeKeyField(b *strings.Builder, s string) {
	if strings.IndexByte(s, keySeparator) < 0 && strings.IndexByte(s, keyEscape) < 0 {
		b.WriteString(s)
		b.WriteByte(keySeparator)
		return
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case keyEscape:
			b.WriteByte(keyEscape)
			b.WriteByte(0x01)
		case keySeparator:
			b.WriteByte(keyEscape)
			b.WriteByte(0x02)
		default:
			b.WriteByte(s[i])
		}
	}
	b.WriteByte(keySeparator)
}
