package testcase

import (
	"github.com/roach88/fnjudge/internal/eval"
	"github.com/roach88/fnjudge/internal/value"
)

// Result is the outcome of the last run of a Test.
type Result int

const (
	ResultUnset Result = iota
	ResultPass
	ResultFail
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case ResultPass:
		return "pass"
	case ResultFail:
		return "fail"
	}
	return "unset"
}

// Test is one concrete input tuple with its expected output.
//
// Inputs is a snapshot taken before the reference ran and is never mutated
// afterwards. Output and Result hold the last run only; running a test again
// overwrites them.
type Test struct {
	Inputs   []any
	Expected any
	Hint     string
	Secret   bool

	Output any
	Result Result
}

// Passed reports whether the last run passed.
func (t *Test) Passed() bool {
	return t.Result == ResultPass
}

// Fingerprint returns the content ID of the inputs, or "" when they cannot
// be encoded.
func (t *Test) Fingerprint() string {
	fp, err := value.Fingerprint(t.Inputs)
	if err != nil {
		return ""
	}
	return fp
}

// Suite is the generated test set of one specification.
type Suite struct {
	Name      string
	Public    []*Test
	Secret    []*Test
	Reference *eval.Callable
}

// Len returns the number of tests in the suite.
func (s *Suite) Len() int {
	return len(s.Public) + len(s.Secret)
}
