package testcase

import "github.com/roach88/fnjudge/internal/value"

// History records every tuple accepted during one generation.
// Membership uses structural equality, so lookups are a linear scan.
type History struct {
	tuples [][]any
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Contains reports whether a tuple structurally equal to t was added.
func (h *History) Contains(t []any) bool {
	for _, seen := range h.tuples {
		if value.Equal(seen, t) {
			return true
		}
	}
	return false
}

// Add records t. The caller must not mutate t afterwards.
func (h *History) Add(t []any) {
	h.tuples = append(h.tuples, t)
}

// Len returns the number of recorded tuples.
func (h *History) Len() int {
	return len(h.tuples)
}
