package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/roach88/fnjudge/internal/eval"
	"github.com/roach88/fnjudge/internal/testcase"
	"github.com/roach88/fnjudge/internal/value"
)

// OutcomeKind classifies a single run.
type OutcomeKind string

const (
	OutcomePass       OutcomeKind = "pass"
	OutcomeWrongValue OutcomeKind = "wrong_value"
	OutcomeRaised     OutcomeKind = "raised"
	OutcomeMutated    OutcomeKind = "mutated"
)

// Outcome is the classified result of running a test.
type Outcome struct {
	Kind   OutcomeKind
	Pass   bool
	Output any
	Hint   string
}

// Options configures an Engine.
type Options struct {
	Tolerance value.Tolerance
	Logger    *zap.Logger
}

// Engine runs tests against candidates.
type Engine struct {
	tol    value.Tolerance
	logger *zap.Logger
}

// New creates an Engine. A zero Tolerance means value.DefaultTolerance.
func New(opts Options) *Engine {
	tol := opts.Tolerance
	if tol == (value.Tolerance{}) {
		tol = value.DefaultTolerance
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{tol: tol, logger: logger}
}

var defaultEngine = New(Options{})

// Run runs t against candidate with the default tolerance.
func Run(t *testcase.Test, candidate testcase.Invoker) Outcome {
	return defaultEngine.Run(t, candidate)
}

// Run invokes candidate on a clone of t.Inputs and classifies the result.
// It sets t.Output and t.Result, overwriting any earlier run.
func (e *Engine) Run(t *testcase.Test, candidate testcase.Invoker) Outcome {
	args := value.CloneTuple(t.Inputs)
	out, err := invoke(candidate, args)

	var kind OutcomeKind
	switch {
	case err != nil:
		kind = OutcomeRaised
		t.Output = newExecutionFailure(err)
	case !value.Equal(args, t.Inputs):
		kind = OutcomeMutated
		t.Output = &MutationDetected{Observed: args}
	case e.Matches(t.Expected, out):
		kind = OutcomePass
		t.Output = out
	default:
		kind = OutcomeWrongValue
		t.Output = out
	}

	pass := kind == OutcomePass
	if pass {
		t.Result = testcase.ResultPass
	} else {
		t.Result = testcase.ResultFail
	}

	o := Outcome{Kind: kind, Pass: pass, Output: t.Output, Hint: Hint(t)}
	fields := []zap.Field{
		zap.String("inputs", value.FormatTuple(t.Inputs)),
		zap.String("outcome", string(kind)),
		zap.Bool("secret", t.Secret),
	}
	if kind == OutcomeWrongValue {
		fields = append(fields, zap.String("diff", value.Diff(t.Expected, out)))
	}
	e.logger.Debug("test run", fields...)
	return o
}

// Matches reports whether output is an acceptable answer for expected.
func (e *Engine) Matches(expected, output any) bool {
	expNone, outNone := value.IsNone(expected), value.IsNone(output)
	if expNone || outNone {
		return expNone && outNone
	}
	if value.IsNumber(expected) {
		return value.IsNumber(output) && value.Close(expected, output, e.tol)
	}
	return value.Equal(expected, output)
}

// invoke shields Run from candidates that panic outside the evaluator.
func invoke(candidate testcase.Invoker, args []any) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = &eval.Raised{Kind: eval.KindPanic, Message: fmt.Sprint(r)}
		}
	}()
	return candidate.Invoke(args)
}
