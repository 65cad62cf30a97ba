package value

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// equalOptions configures go-cmp for the value domain.
// Unexported fields of interpreter-defined structs are compared too, NaN equals
// NaN, and a nil slice or map equals an empty one.
var equalOptions = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateNaNs(),
	cmpopts.EquateEmpty(),
}

// Equal reports whether a and b are structurally equal.
// Pointers are followed; values of different dynamic types are never equal.
func Equal(a, b any) bool {
	return cmp.Equal(a, b, equalOptions...)
}

// Diff returns a human-readable difference between a and b, or "" when equal.
func Diff(a, b any) string {
	return cmp.Diff(a, b, equalOptions...)
}

// IsNone reports whether v is the "no value" sentinel: an untyped nil, a nil
// pointer or a nil interface. Nil slices and maps are empty values, not none.
func IsNone(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// IsNumber reports whether v is an integer or floating point scalar.
func IsNumber(v any) bool {
	_, ok := toFloat(v)
	return ok
}

// Clone returns a structural deep copy of v.
// Slices, arrays, maps, pointers, interfaces and exported struct fields are
// copied recursively. Unexported struct fields are copied shallowly.
// Shared pointers stay shared in the copy, so cyclic values terminate.
func Clone(v any) any {
	if v == nil {
		return nil
	}
	c := &cloner{seen: make(map[uintptr]reflect.Value)}
	return c.clone(reflect.ValueOf(v)).Interface()
}

// CloneTuple deep-copies every element of an argument tuple.
func CloneTuple(t []any) []any {
	if t == nil {
		return nil
	}
	out := make([]any, len(t))
	for i, v := range t {
		out[i] = Clone(v)
	}
	return out
}

type cloner struct {
	seen map[uintptr]reflect.Value
}

func (c *cloner) clone(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(c.clone(v.Index(i)))
		}
		return out

	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(c.clone(v.Index(i)))
		}
		return out

	case reflect.Map:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(c.clone(iter.Key()), c.clone(iter.Value()))
		}
		return out

	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		if prev, ok := c.seen[v.Pointer()]; ok {
			return prev
		}
		out := reflect.New(v.Type().Elem())
		c.seen[v.Pointer()] = out
		out.Elem().Set(c.clone(v.Elem()))
		return out

	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(c.clone(v.Elem()))
		return out

	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		for i := 0; i < v.NumField(); i++ {
			if out.Field(i).CanSet() {
				out.Field(i).Set(c.clone(v.Field(i)))
			}
		}
		return out

	default:
		return v
	}
}
