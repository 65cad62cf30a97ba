package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fnjudge/internal/engine"
	"github.com/roach88/fnjudge/internal/eval"
)

func TestSnapshot(t *testing.T) {
	res := &Result{
		RunID:    "ignored",
		Function: "f",
		Public: []Entry{
			{
				Index:       1,
				Inputs:      []any{"", 2},
				Expected:    1.5,
				Output:      &engine.ExecutionFailure{Kind: eval.KindIndex, Message: "boom", LineNo: 3},
				Outcome:     engine.OutcomeRaised,
				Hint:        engine.IndexHint,
				Fingerprint: "ignored",
			},
		},
		PublicTotal: 1,
		Secret:      SecretSummary{Total: 2, Failing: []string{"ignored"}},
	}

	data, err := Snapshot("snap", res)
	require.NoError(t, err)

	want := `{"function":"f","pass":false,"public":[{"expected":"1.5","hint":"` + engine.IndexHint +
		`","index":1,"inputs":"\"\", 2","outcome":"raised","output":"index error on line 3: boom"}],` +
		`"public_total":1,"scenario_name":"snap","secret":{"attempted":false,"failed":0,"passed":0,"total":2}}`
	assert.Equal(t, want, string(data))
	assert.NotContains(t, string(data), "ignored")
}

func TestAssertGolden(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/add_sign.yaml")
	require.NoError(t, err)
	res, err := Run(s)
	require.NoError(t, err)

	require.NoError(t, AssertGolden(t, s.Name, res))
}
