package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fnjudge/internal/engine"
	"github.com/roach88/fnjudge/internal/testcase"
	"github.com/roach88/fnjudge/internal/testutil"
)

type invokerFunc func(args []any) (any, error)

func (f invokerFunc) Invoke(args []any) (any, error) { return f(args) }

func double(args []any) (any, error) { return args[0].(int) * 2, nil }

func suiteOf(public, secret []int) *testcase.Suite {
	s := &testcase.Suite{Name: "double"}
	for _, n := range public {
		s.Public = append(s.Public, &testcase.Test{Inputs: []any{n}, Expected: n * 2})
	}
	for _, n := range secret {
		s.Secret = append(s.Secret, &testcase.Test{Inputs: []any{n}, Expected: n * 2, Secret: true})
	}
	return s
}

func newTestSession() *Session {
	return NewSession(SessionOptions{IDs: testutil.NewFixedRunIDGenerator("run-1")})
}

func TestGradeAllPass(t *testing.T) {
	res := newTestSession().Grade(suiteOf([]int{1, 2}, []int{3, 4, 5}), invokerFunc(double))

	assert.True(t, res.Pass)
	assert.Equal(t, "run-1", res.RunID)
	assert.Equal(t, "double", res.Function)
	require.Len(t, res.Public, 2)
	assert.Equal(t, 2, res.PublicTotal)
	assert.Nil(t, res.FailedPublic())
	assert.Equal(t, SecretSummary{Total: 3, Attempted: true, Passed: 3}, res.Secret)
}

func TestGradeStopsAtFirstPublicFailure(t *testing.T) {
	calls := 0
	wrongOnTwo := invokerFunc(func(args []any) (any, error) {
		calls++
		if args[0].(int) == 2 {
			return 5, nil
		}
		return double(args)
	})

	res := newTestSession().Grade(suiteOf([]int{1, 2, 3}, []int{4}), wrongOnTwo)

	assert.False(t, res.Pass)
	assert.Equal(t, 2, calls)
	require.Len(t, res.Public, 2)
	assert.Equal(t, 3, res.PublicTotal)

	failed := res.FailedPublic()
	require.NotNil(t, failed)
	assert.Equal(t, 2, failed.Index)
	assert.Equal(t, []any{2}, failed.Inputs)
	assert.Equal(t, 4, failed.Expected)
	assert.Equal(t, 5, failed.Output)
	assert.Equal(t, engine.OutcomeWrongValue, failed.Outcome)
	assert.NotEmpty(t, failed.Fingerprint)

	assert.False(t, res.Secret.Attempted)
	assert.Equal(t, 1, res.Secret.Total)
	assert.Zero(t, res.Secret.Passed)
}

func TestGradeRunsEverySecretTest(t *testing.T) {
	wrongOnOdd := invokerFunc(func(args []any) (any, error) {
		if args[0].(int)%2 == 1 {
			return 0, nil
		}
		return double(args)
	})
	suite := suiteOf([]int{2}, []int{3, 4, 5, 6})

	res := newTestSession().Grade(suite, wrongOnOdd)

	assert.False(t, res.Pass)
	assert.True(t, res.Secret.Attempted)
	assert.Equal(t, 2, res.Secret.Passed)
	assert.Equal(t, 2, res.Secret.Failed)
	assert.Equal(t, []string{suite.Secret[0].Fingerprint(), suite.Secret[2].Fingerprint()}, res.Secret.Failing)

	// Every secret test was run and recorded.
	for _, s := range suite.Secret {
		assert.NotEqual(t, testcase.ResultUnset, s.Result)
	}
}

func TestGradeEmptySuitePasses(t *testing.T) {
	res := newTestSession().Grade(&testcase.Suite{Name: "f"}, invokerFunc(double))

	assert.True(t, res.Pass)
	assert.Empty(t, res.Public)
	assert.True(t, res.Secret.Attempted)
}

func TestNewSessionDefaults(t *testing.T) {
	res := NewSession(SessionOptions{}).Grade(suiteOf([]int{1}, nil), invokerFunc(double))

	assert.True(t, res.Pass)
	assert.Len(t, res.RunID, 36)
}

func TestUUIDv7Generator(t *testing.T) {
	g := UUIDv7Generator{}
	a, b := g.Generate(), g.Generate()

	assert.Len(t, a, 36)
	assert.Equal(t, byte('7'), a[14])
	assert.NotEqual(t, a, b)
}
