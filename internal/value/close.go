package value

import (
	"math"
	"reflect"
)

// Tolerance bounds the accepted difference between two numbers.
// Two numbers a and b are close when
//
//	|a-b| <= max(Relative*max(|a|, |b|), Absolute)
type Tolerance struct {
	Relative float64 `json:"relative" yaml:"relative"`
	Absolute float64 `json:"absolute" yaml:"absolute"`
}

// DefaultTolerance accepts floating point rounding noise and nothing more.
var DefaultTolerance = Tolerance{Relative: 1e-9, Absolute: 0}

// Close reports whether expected and actual are numerically close.
// Both must be numbers (see IsNumber); anything else is never close.
// Equal infinities are close, NaN is never close to anything.
func Close(expected, actual any, tol Tolerance) bool {
	a, ok := toFloat(expected)
	if !ok {
		return false
	}
	b, ok := toFloat(actual)
	if !ok {
		return false
	}
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	diff := math.Abs(a - b)
	return diff <= math.Max(tol.Relative*math.Max(math.Abs(a), math.Abs(b)), tol.Absolute)
}

func toFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
