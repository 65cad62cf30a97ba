package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/unicode/norm"
)

// MarshalCanonical produces a deterministic JSON encoding of a Go value.
// It is the only encoding used for fingerprints and golden snapshots.
//
// Differences from json.Marshal:
//  1. Object keys sorted by UTF-16 code units (RFC 8785), not UTF-8 bytes
//  2. No HTML escaping, U+2028/U+2029 left literal
//  3. Strings are NFC normalized
//  4. Floats always carry a fraction or exponent ("5.0", not "5"), so an
//     int and a float with the same magnitude encode differently
//  5. NaN and infinities encode as the strings "NaN", "+Inf", "-Inf"
//  6. Maps with non-string keys encode as an array of [key, value] pairs
//     ordered by the canonical encoding of the key
//  7. Struct fields are encoded by Go field name, unexported ones included
//
// nil, nil pointers and nil interfaces encode as null.
func MarshalCanonical(v any) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	return marshalCanonical(reflect.ValueOf(v), 0)
}

// maxDepth stops runaway recursion on cyclic pointer graphs.
const maxDepth = 256

func marshalCanonical(v reflect.Value, depth int) ([]byte, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("value nested deeper than %d levels", maxDepth)
	}

	switch v.Kind() {
	case reflect.Invalid:
		return []byte("null"), nil
	case reflect.Bool:
		if v.Bool() {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.AppendInt(nil, v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.AppendUint(nil, v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return marshalCanonicalFloat(v.Float(), v.Type().Bits())
	case reflect.String:
		return marshalCanonicalString(v.String())
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return []byte("null"), nil
		}
		return marshalCanonical(v.Elem(), depth+1)
	case reflect.Slice:
		if v.IsNil() {
			return []byte("[]"), nil
		}
		return marshalCanonicalArray(v, depth)
	case reflect.Array:
		return marshalCanonicalArray(v, depth)
	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String {
			return marshalCanonicalObject(v, depth)
		}
		return marshalCanonicalPairs(v, depth)
	case reflect.Struct:
		return marshalCanonicalStruct(v, depth)
	default:
		return nil, fmt.Errorf("unsupported type for canonical JSON: %s", v.Type())
	}
}

func marshalCanonicalFloat(f float64, bits int) ([]byte, error) {
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return []byte(s), nil
}

// marshalCanonicalString produces a canonical JSON string with NFC normalization.
// Only control characters, backslash and quote are escaped.
func marshalCanonicalString(s string) ([]byte, error) {
	normalized := norm.NFC.String(s)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		return nil, err
	}

	result := bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})
	return unescapeLineSeparators(result), nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes emitted by
// encoding/json back into literal characters. An escape preceded by an odd
// run of backslashes is literal text (\\u2028) and is left alone.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] == '\\' && i+5 < len(data) && string(data[i+1:i+5]) == "u202" &&
			(data[i+5] == '8' || data[i+5] == '9') && trailingBackslashes(out)%2 == 0 {
			if data[i+5] == '8' {
				out = append(out, "\u2028"...)
			} else {
				out = append(out, "\u2029"...)
			}
			i += 5
			continue
		}
		out = append(out, data[i])
	}
	return out
}

func trailingBackslashes(b []byte) int {
	n := 0
	for j := len(b) - 1; j >= 0 && b[j] == '\\'; j-- {
		n++
	}
	return n
}

func marshalCanonicalArray(v reflect.Value, depth int) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		elem, err := marshalCanonical(v.Index(i), depth+1)
		if err != nil {
			return nil, fmt.Errorf("array[%d]: %w", i, err)
		}
		buf.Write(elem)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func marshalCanonicalObject(v reflect.Value, depth int) ([]byte, error) {
	keys := make([]string, 0, v.Len())
	byKey := make(map[string]reflect.Value, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		k := iter.Key().String()
		keys = append(keys, k)
		byKey[k] = iter.Value()
	}
	slices.SortFunc(keys, compareKeysRFC8785)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, k, byKey[k], depth); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalCanonicalPairs encodes a map whose keys are not strings, which is
// how sets are represented.
func marshalCanonicalPairs(v reflect.Value, depth int) ([]byte, error) {
	type pair struct{ key, val []byte }
	pairs := make([]pair, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		k, err := marshalCanonical(iter.Key(), depth+1)
		if err != nil {
			return nil, fmt.Errorf("map key: %w", err)
		}
		val, err := marshalCanonical(iter.Value(), depth+1)
		if err != nil {
			return nil, fmt.Errorf("value for key %s: %w", k, err)
		}
		pairs = append(pairs, pair{key: k, val: val})
	}
	slices.SortFunc(pairs, func(a, b pair) int { return bytes.Compare(a.key, b.key) })

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, p := range pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('[')
		buf.Write(p.key)
		buf.WriteByte(',')
		buf.Write(p.val)
		buf.WriteByte(']')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func marshalCanonicalStruct(v reflect.Value, depth int) ([]byte, error) {
	t := v.Type()
	keys := make([]string, t.NumField())
	byKey := make(map[string]reflect.Value, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		keys[i] = t.Field(i).Name
		byKey[keys[i]] = v.Field(i)
	}
	slices.SortFunc(keys, compareKeysRFC8785)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, k, byKey[k], depth); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, v reflect.Value, depth int) error {
	keyBytes, err := marshalCanonicalString(key)
	if err != nil {
		return fmt.Errorf("key %q: %w", key, err)
	}
	buf.Write(keyBytes)
	buf.WriteByte(':')

	valBytes, err := marshalCanonical(v, depth+1)
	if err != nil {
		return fmt.Errorf("value for key %q: %w", key, err)
	}
	buf.Write(valBytes)
	return nil
}

// compareKeysRFC8785 orders strings by UTF-16 code units.
// sort.Strings compares UTF-8 bytes, which disagrees for characters outside
// the BMP.
func compareKeysRFC8785(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))
	return slices.Compare(a16, b16)
}
