package engine

import (
	"fmt"

	"github.com/roach88/fnjudge/internal/eval"
	"github.com/roach88/fnjudge/internal/value"
)

// ExecutionFailure is the recorded output of a candidate that raised.
type ExecutionFailure struct {
	Kind    eval.ErrorKind
	Message string
	Line    string
	LineNo  int
}

// Error implements the error interface.
func (f *ExecutionFailure) Error() string {
	if f.LineNo > 0 {
		return fmt.Sprintf("%s error on line %d: %s", f.Kind, f.LineNo, f.Message)
	}
	return fmt.Sprintf("%s error: %s", f.Kind, f.Message)
}

func newExecutionFailure(err error) *ExecutionFailure {
	r := eval.AsRaised(err)
	return &ExecutionFailure{Kind: r.Kind, Message: r.Message, Line: r.Line, LineNo: r.LineNo}
}

// MutationDetected is the recorded output of a candidate that changed one of
// its arguments.
type MutationDetected struct {
	// Observed holds the arguments as they were after the call.
	Observed []any
}

// Error implements the error interface.
func (m *MutationDetected) Error() string {
	return fmt.Sprintf("function modified its inputs, they are now (%s)", value.FormatTuple(m.Observed))
}

// Describe renders a test output for people: artifacts by their message,
// values with value.Format.
func Describe(output any) string {
	switch o := output.(type) {
	case *ExecutionFailure:
		return o.Error()
	case *MutationDetected:
		return o.Error()
	}
	return value.Format(output)
}
