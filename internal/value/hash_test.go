package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fingerprint(t *testing.T, inputs []any) string {
	t.Helper()
	fp, err := Fingerprint(inputs)
	require.NoError(t, err)
	return fp
}

func TestFingerprintDeterminism(t *testing.T) {
	inputs := []any{1, "x", map[string]int{"b": 2, "a": 1}}

	fp1, err := Fingerprint(inputs)
	require.NoError(t, err)
	fp2, err := Fingerprint(CloneTuple(inputs))
	require.NoError(t, err)

	assert.Equal(t, fp1, fp2)
	assert.Len(t, fp1, 64)
}

func TestFingerprintChangesWithInputs(t *testing.T) {
	assert.NotEqual(t, fingerprint(t, []any{1, 2}), fingerprint(t, []any{2, 1}))
	assert.NotEqual(t, fingerprint(t, []any{1}), fingerprint(t, []any{1.0}))
}

func TestFingerprintNilEqualsEmpty(t *testing.T) {
	assert.Equal(t, fingerprint(t, nil), fingerprint(t, []any{}))
}

func TestFingerprintDomainSeparation(t *testing.T) {
	canonical, err := MarshalCanonical([]any{1})
	require.NoError(t, err)
	assert.NotEqual(t, hashWithDomain("other/v1", canonical), fingerprint(t, []any{1}))
}

func TestFingerprintError(t *testing.T) {
	_, err := Fingerprint([]any{make(chan int)})
	require.Error(t, err)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abc", ShortID("abc"))
	assert.Equal(t, "0123456789ab", ShortID("0123456789abcdef"))
}
