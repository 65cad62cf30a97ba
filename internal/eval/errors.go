package eval

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a failure raised by interpreted code.
type ErrorKind string

const (
	// KindIndex is an out of range index or slice expression.
	KindIndex ErrorKind = "index"

	// KindNil is a nil pointer dereference or a write to a nil map.
	KindNil ErrorKind = "nil"

	// KindDivide is an integer division by zero.
	KindDivide ErrorKind = "divide"

	// KindConversion is a failed type assertion or conversion.
	KindConversion ErrorKind = "conversion"

	// KindRuntime is any other Go runtime error.
	KindRuntime ErrorKind = "runtime"

	// KindPanic is an explicit panic call.
	KindPanic ErrorKind = "panic"

	// KindError is a non-nil trailing error result.
	KindError ErrorKind = "error"

	// KindSignature means the arguments did not fit the function's parameters.
	KindSignature ErrorKind = "signature"
)

// Raised is a failure raised while invoking interpreted code.
type Raised struct {
	Kind    ErrorKind
	Message string

	// Line is the trimmed source text of the offending line, if known.
	Line string

	// LineNo is the 1-based line in the bound source, 0 if unknown.
	LineNo int
}

// Error implements the error interface.
func (e *Raised) Error() string {
	if e.LineNo > 0 {
		return fmt.Sprintf("%s: %s (line %d)", e.Kind, e.Message, e.LineNo)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// ArgumentError reports arguments that cannot be passed to a callable.
type ArgumentError struct {
	Function string
	Index    int // -1 when the count is wrong
	Message  string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", e.Function, e.Message)
	}
	return fmt.Sprintf("%s: argument %d: %s", e.Function, e.Index+1, e.Message)
}

// BindError reports a source that does not yield the requested function.
type BindError struct {
	Name    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BindError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bind %s: %s: %v", e.Name, e.Message, e.Err)
	}
	return fmt.Sprintf("bind %s: %s", e.Name, e.Message)
}

// Unwrap returns the underlying interpreter error.
func (e *BindError) Unwrap() error {
	return e.Err
}

// ExprError reports an expression that failed to compile or evaluate.
type ExprError struct {
	Expr string
	Err  error
}

// Error implements the error interface.
func (e *ExprError) Error() string {
	return fmt.Sprintf("expression %q: %v", e.Expr, e.Err)
}

// Unwrap returns the cause.
func (e *ExprError) Unwrap() error {
	return e.Err
}

// AsRaised converts any invocation failure into a *Raised.
// ArgumentErrors become KindSignature. Returns nil for nil.
func AsRaised(err error) *Raised {
	if err == nil {
		return nil
	}
	var r *Raised
	if errors.As(err, &r) {
		return r
	}
	var ae *ArgumentError
	if errors.As(err, &ae) {
		return &Raised{Kind: KindSignature, Message: ae.Error()}
	}
	return &Raised{Kind: KindError, Message: err.Error()}
}

// classify maps a recovered panic message onto an ErrorKind.
func classify(msg string, isRuntime bool) ErrorKind {
	switch {
	case strings.Contains(msg, "index out of range"),
		strings.Contains(msg, "slice bounds out of range"),
		strings.Contains(msg, "index out of bounds"):
		return KindIndex
	case strings.Contains(msg, "nil pointer dereference"),
		strings.Contains(msg, "nil map"):
		return KindNil
	case strings.Contains(msg, "divide by zero"):
		return KindDivide
	case strings.Contains(msg, "interface conversion"),
		strings.Contains(msg, "cannot convert"):
		return KindConversion
	case isRuntime || strings.HasPrefix(msg, "runtime error"):
		return KindRuntime
	}
	return KindPanic
}
