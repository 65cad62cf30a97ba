package testcase

import (
	"fmt"
	"strings"

	"github.com/roach88/fnjudge/internal/value"
)

// ReferenceError reports that the reference implementation raised while
// computing an expected value. Generation stops; it is never turned into a
// test.
type ReferenceError struct {
	Inputs []any
	Err    error
}

// Error implements the error interface.
func (e *ReferenceError) Error() string {
	return fmt.Sprintf("reference raised on (%s): %v", value.FormatTuple(e.Inputs), e.Err)
}

// Unwrap returns the raised error.
func (e *ReferenceError) Unwrap() error {
	return e.Err
}

// ExhaustedError reports a random case that kept drawing tuples already in
// the history.
type ExhaustedError struct {
	Columns  []string
	Attempts int
}

// Error implements the error interface.
func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("random case %q: %d consecutive draws were duplicates",
		strings.Join(e.Columns, "; "), e.Attempts)
}
