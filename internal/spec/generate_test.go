package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fnjudge/internal/eval"
	"github.com/roach88/fnjudge/internal/testcase"
	"github.com/roach88/fnjudge/internal/testutil"
	"github.com/roach88/fnjudge/internal/value"
)

func generate(t *testing.T, src string, seed uint64) (*testcase.Suite, error) {
	t.Helper()
	doc, err := ParseString(src)
	require.NoError(t, err)
	return Generate(doc, testutil.NewRuntime(t, seed))
}

func TestGenerate(t *testing.T) {
	suite, err := generate(t, addSpec, 1)
	require.NoError(t, err)

	assert.Equal(t, "add", suite.Name)
	require.NotNil(t, suite.Reference)

	// 2 plain + 6 range public, 5 random secret.
	require.Len(t, suite.Public, 8)
	require.Len(t, suite.Secret, 5)

	assert.Equal(t, []any{2, 3}, suite.Public[0].Inputs)
	assert.Equal(t, 5, suite.Public[0].Expected)
	assert.Equal(t, "watch the sign", suite.Public[1].Hint)
	assert.Equal(t, 0, suite.Public[1].Expected)

	for _, tc := range suite.Public {
		assert.False(t, tc.Secret)
	}
	for _, tc := range suite.Secret {
		assert.True(t, tc.Secret)
		a, b := tc.Inputs[0].(int), tc.Inputs[1].(int)
		assert.Equal(t, a+b, tc.Expected)
	}
}

func TestGenerateRangeUsesBoolDomain(t *testing.T) {
	src := `*name
pick
*in range
span(0, 3); bools
*code
func pick(n int, flip bool) int {
	if flip {
		return -n
	}
	return n
}`
	suite, err := generate(t, src, 1)
	require.NoError(t, err)

	var got [][]any
	var expected []any
	for _, tc := range suite.Public {
		got = append(got, tc.Inputs)
		expected = append(expected, tc.Expected)
	}
	assert.Equal(t, [][]any{{0, false}, {0, true}, {1, false}, {1, true}, {2, false}, {2, true}}, got)
	assert.Equal(t, []any{0, 0, 1, -1, 2, -2}, expected)
}

func TestGenerateNoDuplicateTuples(t *testing.T) {
	src := `*name
id
*in plain int
1
*in range
span(0, 4)
*in secret_random 3
randint(0, 9)
*code
func id(n int) int { return n }`

	suite, err := generate(t, src, 3)
	require.NoError(t, err)

	// Range skips the plain 1; the random draws avoid everything earlier.
	var all [][]any
	for _, tc := range append(suite.Public, suite.Secret...) {
		all = append(all, tc.Inputs)
	}
	require.Len(t, all, 7)
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			assert.False(t, value.Equal(all[i], all[j]), "tuple %v repeated", all[i])
		}
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	a, err := generate(t, addSpec, 42)
	require.NoError(t, err)
	b, err := generate(t, addSpec, 42)
	require.NoError(t, err)

	for i := range a.Secret {
		assert.Equal(t, a.Secret[i].Inputs, b.Secret[i].Inputs)
	}
}

func TestGenerateReferenceMissing(t *testing.T) {
	_, err := generate(t, "*name\nadd\n*in plain int\n1\n*code\nfunc sub(a int) int { return -a }", 1)
	var be *eval.BindError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "add", be.Name)
}

func TestGenerateReferenceRaises(t *testing.T) {
	src := `*name
first
*in plain []int
[1]
[]
*code
func first(xs []int) int {
	return xs[0]
}`
	_, err := generate(t, src, 1)

	var re *testcase.ReferenceError
	require.ErrorAs(t, err, &re)
	assert.Contains(t, err.Error(), "line 5")

	var raised *eval.Raised
	require.ErrorAs(t, err, &raised)
	assert.Equal(t, eval.KindIndex, raised.Kind)
}
