package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonicalBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"nil", nil, "null"},
		{"string", "hello", `"hello"`},
		{"empty string", "", `""`},
		{"int", 42, "42"},
		{"negative int", -100, "-100"},
		{"max int64", int64(9223372036854775807), "9223372036854775807"},
		{"uint", uint8(7), "7"},
		{"float", 2.5, "2.5"},
		{"integral float", 5.0, "5.0"},
		{"large float", 1e21, "1e+21"},
		{"nan", math.NaN(), `"NaN"`},
		{"positive inf", math.Inf(1), `"+Inf"`},
		{"negative inf", math.Inf(-1), `"-Inf"`},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"nil slice", []int(nil), "[]"},
		{"array of ints", []int{1, 2, 3}, "[1,2,3]"},
		{"fixed array", [2]bool{true, false}, "[true,false]"},
		{"simple object", map[string]int{"a": 1}, `{"a":1}`},
		{"nil pointer", (*int)(nil), "null"},
		{"tuple", []any{1, "x", nil}, `[1,"x",null]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MarshalCanonical(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestMarshalCanonicalSortedKeys(t *testing.T) {
	obj := map[string]any{
		"zebra": 1,
		"alpha": 2,
		"beta":  map[string]int{"y": 1, "x": 2},
	}

	result, err := MarshalCanonical(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":2,"beta":{"x":2,"y":1},"zebra":1}`, string(result))
}

func TestMarshalCanonicalUTF16Ordering(t *testing.T) {
	// U+10000 encodes as a surrogate pair starting 0xD800, which sorts before
	// 0xE000 in UTF-16 but after it in UTF-8.
	obj := map[string]int{
		"\uE000":     1,
		"\U00010000": 2,
	}

	result, err := MarshalCanonical(obj)
	require.NoError(t, err)
	assert.Equal(t, "{\"\U00010000\":2,\"\uE000\":1}", string(result))
}

func TestMarshalCanonicalSetsAsPairs(t *testing.T) {
	set := map[int]struct{}{3: {}, 1: {}, 2: {}}

	result, err := MarshalCanonical(set)
	require.NoError(t, err)
	assert.Equal(t, `[[1,{}],[2,{}],[3,{}]]`, string(result))
}

func TestMarshalCanonicalStruct(t *testing.T) {
	result, err := MarshalCanonical(&point{X: 1, Y: 2, tags: []string{"a"}})
	require.NoError(t, err)
	assert.Equal(t, `{"X":1,"Y":2,"tags":["a"]}`, string(result))
}

func TestMarshalCanonicalNoHTMLEscape(t *testing.T) {
	result, err := MarshalCanonical("<script>alert('a & b')</script>")
	require.NoError(t, err)
	assert.Equal(t, `"<script>alert('a & b')</script>"`, string(result))
	assert.NotContains(t, string(result), `\u003c`)
	assert.NotContains(t, string(result), `\u0026`)
}

func TestMarshalCanonicalNFCNormalization(t *testing.T) {
	// e followed by a combining acute accent becomes the precomposed form.
	result, err := MarshalCanonical("e\u0301")
	require.NoError(t, err)
	assert.Equal(t, "\"\u00e9\"", string(result))
}

func TestMarshalCanonicalLineSeparators(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"actual separators", "a\u2028b\u2029c", "\"a\u2028b\u2029c\""},
		{"literal escape text", `the escape is \u2028`, `"the escape is \\u2028"`},
		{"mixed", "literal \\u2028 and actual \u2028", "\"literal \\\\u2028 and actual \u2028\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MarshalCanonical(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestMarshalCanonicalRejectsFuncs(t *testing.T) {
	_, err := MarshalCanonical([]any{func() {}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "array[0]")
}

func TestMarshalCanonicalIntAndFloatDiffer(t *testing.T) {
	a, err := MarshalCanonical([]any{5})
	require.NoError(t, err)
	b, err := MarshalCanonical([]any{5.0})
	require.NoError(t, err)
	assert.NotEqual(t, string(a), string(b))
}
