package engine

import (
	"fmt"

	"github.com/roach88/fnjudge/internal/eval"
	"github.com/roach88/fnjudge/internal/testcase"
	"github.com/roach88/fnjudge/internal/value"
)

const (
	// IndexHint is given when the candidate indexed out of bounds.
	IndexHint = "There was an index out of range error. Check your indexing. " +
		"e.g. trying to access a character of an empty string will cause this error."

	// NoneHint is given when the candidate returned nothing.
	NoneHint = "Make sure you are always returning something from your function."
)

// Hint resolves the hint for a failed test. Passed and unrun tests get "".
//
// The author hint wins. Otherwise an index failure gets IndexHint, a none
// output gets NoneHint and any other execution failure gets a generic hint
// quoting its message. Wrong values and mutations get no generic hint.
func Hint(t *testcase.Test) string {
	if t.Result != testcase.ResultFail {
		return ""
	}
	if t.Hint != "" {
		return t.Hint
	}

	if f, ok := t.Output.(*ExecutionFailure); ok && f.Kind == eval.KindIndex {
		return IndexHint
	}
	if value.IsNone(t.Output) {
		return NoneHint
	}
	if f, ok := t.Output.(*ExecutionFailure); ok {
		return fmt.Sprintf("There was some kind of error: %s. "+
			"The actual section above should include more information.", f.Message)
	}
	return ""
}
