package testcase

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/roach88/fnjudge/internal/eval"
	"github.com/roach88/fnjudge/internal/value"
)

// MaxRedraws bounds consecutive duplicate draws of a random case.
const MaxRedraws = 1000

// Invoker calls a function with an argument tuple.
type Invoker interface {
	Invoke(args []any) (any, error)
}

// Compiler compiles Go expressions for draws and range domains.
type Compiler interface {
	Compile(expr string) (*eval.Expr, error)
}

// Env is what an expansion needs from its generation.
type Env struct {
	History   *History
	Reference Invoker
	Runtime   Compiler
	Logger    *zap.Logger
}

func (env *Env) logger() *zap.Logger {
	if env.Logger == nil {
		return zap.NewNop()
	}
	return env.Logger
}

// CaseSpec is one data line of an input specification.
type CaseSpec interface {
	Expand(env *Env) ([]*Test, error)
}

// accept records a tuple and computes its expected output.
func accept(env *Env, inputs []any, hint string) (*Test, error) {
	snapshot := value.CloneTuple(inputs)
	env.History.Add(snapshot)

	expected, err := env.Reference.Invoke(value.CloneTuple(snapshot))
	if err != nil {
		return nil, &ReferenceError{Inputs: snapshot, Err: err}
	}
	return &Test{Inputs: snapshot, Expected: expected, Hint: hint}, nil
}

// PlainCase is a fixed input tuple with an optional author hint.
type PlainCase struct {
	Inputs []any
	Hint   string
}

// Expand yields exactly one test. Plain tuples are accepted even when an
// equal tuple is already in the history.
func (c *PlainCase) Expand(env *Env) ([]*Test, error) {
	t, err := accept(env, c.Inputs, c.Hint)
	if err != nil {
		return nil, err
	}
	return []*Test{t}, nil
}

// RandomCase draws Repeats tuples, one Go expression per column.
type RandomCase struct {
	Columns []string
	Repeats int
}

// Expand draws a fresh tuple per repeat. A tuple already in the history is
// discarded and the whole tuple is drawn again.
func (c *RandomCase) Expand(env *Env) ([]*Test, error) {
	exprs, err := compileColumns(env.Runtime, c.Columns)
	if err != nil {
		return nil, err
	}

	tests := make([]*Test, 0, c.Repeats)
	for r := 0; r < c.Repeats; r++ {
		tuple, err := c.drawUnique(env, exprs)
		if err != nil {
			return nil, err
		}
		t, err := accept(env, tuple, "")
		if err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}
	return tests, nil
}

func (c *RandomCase) drawUnique(env *Env, exprs []*eval.Expr) ([]any, error) {
	for dups := 0; ; {
		tuple := make([]any, len(exprs))
		for i, e := range exprs {
			v, err := e.Eval()
			if err != nil {
				return nil, fmt.Errorf("column %d: %w", i+1, err)
			}
			tuple[i] = v
		}
		if !env.History.Contains(tuple) {
			return tuple, nil
		}

		dups++
		env.logger().Debug("duplicate draw",
			zap.String("tuple", value.FormatTuple(tuple)),
			zap.Int("consecutive", dups),
		)
		if dups >= MaxRedraws {
			return nil, &ExhaustedError{Columns: c.Columns, Attempts: dups}
		}
	}
}

// RangeCase is the cartesian product of per-column domains.
type RangeCase struct {
	Columns []string
}

// Expand evaluates each column once. A slice or array is a domain, any other
// value is a single fixed value. Tuples are produced with the leftmost column
// varying slowest; tuples already in the history are skipped.
func (c *RangeCase) Expand(env *Env) ([]*Test, error) {
	exprs, err := compileColumns(env.Runtime, c.Columns)
	if err != nil {
		return nil, err
	}

	domains := make([][]any, len(exprs))
	for i, e := range exprs {
		v, err := e.Eval()
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		domains[i] = Domain(v)
	}

	var tests []*Test
	var skipped int
	err = product(domains, func(tuple []any) error {
		if env.History.Contains(tuple) {
			skipped++
			return nil
		}
		t, err := accept(env, tuple, "")
		if err != nil {
			return err
		}
		tests = append(tests, t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		env.logger().Debug("range tuples already generated", zap.Int("skipped", skipped))
	}
	return tests, nil
}

// Domain returns the values a range column iterates over.
// Strings and maps are single values, not domains.
func Domain(v any) []any {
	if v == nil {
		return []any{nil}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return []any{v}
}

// product calls yield for each tuple of the cartesian product of domains,
// rightmost index varying fastest. Nothing is yielded when any domain is
// empty or there are no domains.
func product(domains [][]any, yield func([]any) error) error {
	if len(domains) == 0 {
		return nil
	}
	for _, d := range domains {
		if len(d) == 0 {
			return nil
		}
	}

	idx := make([]int, len(domains))
	for {
		tuple := make([]any, len(domains))
		for i, d := range domains {
			tuple[i] = d[idx[i]]
		}
		if err := yield(tuple); err != nil {
			return err
		}

		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(domains[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return nil
		}
	}
}

func compileColumns(c Compiler, columns []string) ([]*eval.Expr, error) {
	exprs := make([]*eval.Expr, len(columns))
	for i, col := range columns {
		e, err := c.Compile(col)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		exprs[i] = e
	}
	return exprs, nil
}
