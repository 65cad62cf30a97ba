package spec

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes parse errors.
type ErrorCode string

const (
	// ErrCodeDataBeforeDirective is a data line before the first directive.
	ErrCodeDataBeforeDirective ErrorCode = "DATA_BEFORE_DIRECTIVE"

	// ErrCodeUnknownMode is a directive other than name, code or in.
	ErrCodeUnknownMode ErrorCode = "UNKNOWN_MODE"

	// ErrCodeUnknownKind is an *in directive with an unknown input kind.
	ErrCodeUnknownKind ErrorCode = "UNKNOWN_KIND"

	// ErrCodeBadParameter is a malformed directive parameter.
	ErrCodeBadParameter ErrorCode = "BAD_PARAMETER"

	// ErrCodeBadData is a data line the active input kind rejects.
	ErrCodeBadData ErrorCode = "BAD_DATA"

	// ErrCodeDuplicateName is a second *name directive or name line.
	ErrCodeDuplicateName ErrorCode = "DUPLICATE_NAME"

	// ErrCodeMissingName means the document never named its function.
	ErrCodeMissingName ErrorCode = "MISSING_NAME"

	// ErrCodeMissingCode means the document has no reference code.
	ErrCodeMissingCode ErrorCode = "MISSING_CODE"

	// ErrCodeBadName is a function name that is not a Go identifier.
	ErrCodeBadName ErrorCode = "BAD_NAME"
)

// ParseError reports an invalid specification.
type ParseError struct {
	Line    int // 1-based
	Code    ErrorCode
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Code, e.Message)
}

func parseErrorf(line int, code ErrorCode, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsParseError reports whether err is a *ParseError with the given code.
func IsParseError(err error, code ErrorCode) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}
