// Package differ compares worksheets row by row.
//
// Rows of the first worksheet are matched against the second in order:
// an exact match on the normalized row key wins, otherwise the most similar
// unmatched row sharing at least half of its columns is paired as a
// modification, otherwise the row is reported as removed. Rows of the
// second worksheet left unmatched are reported as added.
//
// The fuzzy pairing is greedy: each row takes the best remaining candidate
// at the time it is visited, which is not a globally optimal assignment.
package differ

// Options configures comparison behavior.
type Options struct {
	// IgnoreWhitespace trims and collapses whitespace in string values
	// before comparing them.
	IgnoreWhitespace bool
}

// DefaultOptions returns default comparison options.
func DefaultOptions() Options {
	return Options{}
}
