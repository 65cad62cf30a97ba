package eval

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"runtime"
	"strings"

	"github.com/traefik/yaegi/interp"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Callable is a function value bound from interpreted source.
type Callable struct {
	name   string
	fn     reflect.Value
	lines  []string
	offset int
	loc    *locator
	rt     *Runtime
}

// Name returns the bound function name.
func (c *Callable) Name() string {
	return c.name
}

// Signature returns the function type as Go syntax, e.g. "func(int, int) int".
func (c *Callable) Signature() string {
	return c.fn.Type().String()
}

// Invoke calls the function with args.
//
// Arguments are adapted to the parameter types: nil becomes the zero value,
// numbers convert between numeric kinds when no precision is lost, and
// trailing arguments fill a variadic parameter. A trailing error result that
// is non-nil is reported as raised.
//
// The result is nil for a function with no results, the value itself for one
// result and a []any for several. A failure is a *Raised or *ArgumentError.
func (c *Callable) Invoke(args []any) (result any, err error) {
	in, err := c.adaptArgs(args)
	if err != nil {
		return nil, err
	}

	c.rt.stderr.Reset()
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = c.raisedFromPanic(r)
		}
	}()

	out := c.fn.Call(in)

	t := c.fn.Type()
	if n := t.NumOut(); n > 0 && t.Out(n-1) == errorType {
		last := out[n-1]
		if !last.IsNil() {
			e := last.Interface().(error)
			return nil, &Raised{Kind: KindError, Message: e.Error()}
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	}
	results := make([]any, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}
	return results, nil
}

func (c *Callable) adaptArgs(args []any) ([]reflect.Value, error) {
	t := c.fn.Type()
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, &ArgumentError{Function: c.name, Index: -1,
				Message: fmt.Sprintf("want at least %d arguments, got %d", fixed, len(args))}
		}
	} else if len(args) != fixed {
		return nil, &ArgumentError{Function: c.name, Index: -1,
			Message: fmt.Sprintf("want %d arguments, got %d", fixed, len(args))}
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		want := t.In(min(i, t.NumIn()-1))
		if i >= fixed {
			want = want.Elem()
		}
		v, err := adaptArg(arg, want)
		if err != nil {
			return nil, &ArgumentError{Function: c.name, Index: i, Message: err.Error()}
		}
		in[i] = v
	}
	return in, nil
}

func adaptArg(arg any, want reflect.Type) (reflect.Value, error) {
	if arg == nil {
		return reflect.Zero(want), nil
	}
	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(want) {
		return v, nil
	}
	if isNumeric(v.Kind()) && isNumeric(want.Kind()) {
		return convertNumber(v, want)
	}
	if v.Kind() == want.Kind() && v.Type().ConvertibleTo(want) {
		return v.Convert(want), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot use %s as %s", v.Type(), want)
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// convertNumber converts between numeric kinds, refusing truncation and
// overflow.
func convertNumber(v reflect.Value, want reflect.Type) (reflect.Value, error) {
	lossy := fmt.Errorf("cannot use %v (%s) as %s without loss", v.Interface(), v.Type(), want)

	switch want.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Convert(want), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var n int64
		switch {
		case v.CanInt():
			n = v.Int()
		case v.CanUint():
			if v.Uint() > math.MaxInt64 {
				return reflect.Value{}, lossy
			}
			n = int64(v.Uint())
		default:
			f := v.Float()
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
				return reflect.Value{}, lossy
			}
			n = int64(f)
		}
		if reflect.Zero(want).OverflowInt(n) {
			return reflect.Value{}, lossy
		}
		return reflect.ValueOf(n).Convert(want), nil
	default:
		var n uint64
		switch {
		case v.CanUint():
			n = v.Uint()
		case v.CanInt():
			if v.Int() < 0 {
				return reflect.Value{}, lossy
			}
			n = uint64(v.Int())
		default:
			f := v.Float()
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
				return reflect.Value{}, lossy
			}
			n = uint64(f)
		}
		if reflect.Zero(want).OverflowUint(n) {
			return reflect.Value{}, lossy
		}
		return reflect.ValueOf(n).Convert(want), nil
	}
}

// raisedFromPanic builds a Raised from a recovered panic value, attaching
// the offending source line when it can be pinned down.
func (c *Callable) raisedFromPanic(r any) *Raised {
	var (
		msg       string
		isRuntime bool
	)
	if p, ok := r.(*interp.Panic); ok {
		r = p.Value
	}
	switch v := r.(type) {
	case runtime.Error:
		msg, isRuntime = v.Error(), true
	case error:
		var re runtime.Error
		isRuntime = errors.As(v, &re)
		msg = v.Error()
	case string:
		msg = v
	default:
		msg = fmt.Sprint(v)
	}

	kind := classify(msg, isRuntime)
	raised := &Raised{Kind: kind, Message: msg}
	if n := c.loc.locate(panicLine(c.rt.stderr.String()), kind) - c.offset; n > 0 && n <= len(c.lines) {
		raised.LineNo = n
		raised.Line = strings.TrimSpace(c.lines[n-1])
	}
	return raised
}
