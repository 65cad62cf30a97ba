package harness

import (
	"github.com/roach88/fnjudge/internal/engine"
)

// Entry is the full record of one public test run.
type Entry struct {
	// Index is the 1-based position among the public tests.
	Index       int                `json:"index"`
	Inputs      []any              `json:"inputs"`
	Expected    any                `json:"expected"`
	Output      any                `json:"output"`
	Outcome     engine.OutcomeKind `json:"outcome"`
	Pass        bool               `json:"pass"`
	Hint        string             `json:"hint,omitempty"`
	Fingerprint string             `json:"fingerprint"`
}

// SecretSummary reports secret tests without revealing them.
type SecretSummary struct {
	Total int `json:"total"`

	// Attempted is false when a public test failed first.
	Attempted bool `json:"attempted"`
	Passed    int  `json:"passed"`
	Failed    int  `json:"failed"`

	// Failing lists fingerprints of the failed secret tests.
	Failing []string `json:"failing,omitempty"`
}

// Result is the outcome of grading one candidate.
type Result struct {
	RunID    string `json:"run_id"`
	Function string `json:"function"`

	// Pass is true when every public and secret test passed.
	Pass bool `json:"pass"`

	// Public holds the public tests that ran, in order. When Pass is false
	// and secret tests were not attempted, the last entry is the failure.
	Public      []Entry `json:"public"`
	PublicTotal int     `json:"public_total"`

	Secret SecretSummary `json:"secret"`
}

// FailedPublic returns the failing public entry, or nil.
func (r *Result) FailedPublic() *Entry {
	if len(r.Public) == 0 {
		return nil
	}
	last := &r.Public[len(r.Public)-1]
	if last.Pass {
		return nil
	}
	return last
}
