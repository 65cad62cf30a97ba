package value

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Format renders v for diagnostics, the way an instructor would write it in
// Go source: strings quoted, slices as [a, b], maps as {k: v} with sorted
// keys, nil as nil.
func Format(v any) string {
	if v == nil {
		return "nil"
	}
	var b strings.Builder
	formatValue(&b, reflect.ValueOf(v), 0)
	return b.String()
}

// FormatTuple renders an argument tuple as a comma separated list.
func FormatTuple(t []any) string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = Format(v)
	}
	return strings.Join(parts, ", ")
}

func formatValue(b *strings.Builder, v reflect.Value, depth int) {
	if depth > maxDepth {
		b.WriteString("...")
		return
	}

	switch v.Kind() {
	case reflect.Invalid:
		b.WriteString("nil")
	case reflect.Bool:
		b.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		b.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		s := strconv.FormatFloat(v.Float(), 'g', -1, v.Type().Bits())
		if !strings.ContainsAny(s, ".eIN") {
			s += ".0"
		}
		b.WriteString(s)
	case reflect.String:
		b.WriteString(strconv.Quote(v.String()))
	case reflect.Pointer:
		if v.IsNil() {
			b.WriteString("nil")
			return
		}
		b.WriteByte('&')
		formatValue(b, v.Elem(), depth+1)
	case reflect.Interface:
		if v.IsNil() {
			b.WriteString("nil")
			return
		}
		formatValue(b, v.Elem(), depth+1)
	case reflect.Slice, reflect.Array:
		b.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			formatValue(b, v.Index(i), depth+1)
		}
		b.WriteByte(']')
	case reflect.Map:
		formatMap(b, v, depth)
	case reflect.Struct:
		b.WriteByte('{')
		for i := 0; i < v.NumField(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(v.Type().Field(i).Name)
			b.WriteString(": ")
			formatValue(b, v.Field(i), depth+1)
		}
		b.WriteByte('}')
	default:
		fmt.Fprintf(b, "<%s>", v.Type())
	}
}

// formatMap sorts entries by their rendered key so output is stable.
// Sets (map[T]struct{} and map[T]bool with all-true values) render as {a, b}.
func formatMap(b *strings.Builder, v reflect.Value, depth int) {
	type entry struct{ key, val string }
	entries := make([]entry, 0, v.Len())
	set := isSetType(v)
	iter := v.MapRange()
	for iter.Next() {
		var kb, vb strings.Builder
		formatValue(&kb, iter.Key(), depth+1)
		if set && iter.Value().Kind() == reflect.Bool && !iter.Value().Bool() {
			set = false
		}
		formatValue(&vb, iter.Value(), depth+1)
		entries = append(entries, entry{key: kb.String(), val: vb.String()})
	}
	slices.SortFunc(entries, func(a, b entry) int { return strings.Compare(a.key, b.key) })

	b.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.key)
		if !set {
			b.WriteString(": ")
			b.WriteString(e.val)
		}
	}
	b.WriteByte('}')
}

func isSetType(v reflect.Value) bool {
	elem := v.Type().Elem()
	switch elem.Kind() {
	case reflect.Struct:
		return elem.NumField() == 0
	case reflect.Bool:
		return true
	}
	return false
}
