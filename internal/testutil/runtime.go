package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/fnjudge/internal/eval"
)

// NewRuntime returns an interpreter with draw helpers seeded with seed.
func NewRuntime(t testing.TB, seed uint64) *eval.Runtime {
	t.Helper()
	rt, err := eval.New(eval.Options{Rand: eval.NewRand(seed)})
	require.NoError(t, err)
	return rt
}

// Bind interprets source in a fresh runtime and returns the function name.
func Bind(t testing.TB, source, name string) *eval.Callable {
	t.Helper()
	rt, err := eval.New(eval.Options{})
	require.NoError(t, err)
	c, err := rt.BindCallable(source, name)
	require.NoError(t, err)
	return c
}
