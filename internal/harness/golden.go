package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/fnjudge/internal/engine"
	"github.com/roach88/fnjudge/internal/value"
)

// Snapshot renders result as canonical JSON for golden comparison.
//
// Values are rendered with value.Format so that a snapshot reads the way the
// grader prints them. The run ID and fingerprints are left out.
func Snapshot(name string, result *Result) ([]byte, error) {
	public := make([]any, len(result.Public))
	for i, e := range result.Public {
		entry := map[string]any{
			"index":    e.Index,
			"inputs":   value.FormatTuple(e.Inputs),
			"expected": value.Format(e.Expected),
			"output":   engine.Describe(e.Output),
			"outcome":  string(e.Outcome),
		}
		if e.Hint != "" {
			entry["hint"] = e.Hint
		}
		public[i] = entry
	}

	snapshot := map[string]any{
		"scenario_name": name,
		"function":      result.Function,
		"pass":          result.Pass,
		"public":        public,
		"public_total":  result.PublicTotal,
		"secret": map[string]any{
			"total":     result.Secret.Total,
			"attempted": result.Secret.Attempted,
			"passed":    result.Secret.Passed,
			"failed":    result.Secret.Failed,
		},
	}
	return value.MarshalCanonical(snapshot)
}

// RunWithGolden grades a scenario and compares the snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against its golden file.
func AssertGolden(t *testing.T, name string, result *Result) error {
	t.Helper()

	data, err := Snapshot(name, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
	return nil
}
