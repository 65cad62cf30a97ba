package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/fnjudge/internal/engine"
)

func ptr[T any](v T) *T { return &v }

func failingResult() *Result {
	return &Result{
		Public: []Entry{
			{Index: 1, Pass: true, Outcome: engine.OutcomePass},
			{Index: 2, Outcome: engine.OutcomeRaised, Hint: engine.IndexHint},
		},
		PublicTotal: 4,
		Secret:      SecretSummary{Total: 3},
	}
}

func TestCheckExpectations(t *testing.T) {
	passing := &Result{
		Pass:        true,
		Public:      []Entry{{Index: 1, Pass: true}},
		PublicTotal: 1,
		Secret:      SecretSummary{Total: 2, Attempted: true, Passed: 2},
	}

	tests := []struct {
		name   string
		expect Expect
		result *Result
		want   []string
	}{
		{
			name:   "no expectations",
			result: failingResult(),
		},
		{
			name:   "matching failure",
			expect: Expect{Pass: ptr(false), FailedPublic: 2, Outcome: engine.OutcomeRaised, HintContains: "indexing", PublicRun: ptr(2), SecretTotal: ptr(3)},
			result: failingResult(),
		},
		{
			name:   "matching pass",
			expect: Expect{Pass: ptr(true), SecretPassed: ptr(2)},
			result: passing,
		},
		{
			name:   "wrong pass",
			expect: Expect{Pass: ptr(true)},
			result: failingResult(),
			want:   []string{"pass: expected true, got false"},
		},
		{
			name:   "wrong index and outcome",
			expect: Expect{FailedPublic: 1, Outcome: engine.OutcomeMutated},
			result: failingResult(),
			want: []string{
				"failed_public: expected test 1, got test 2",
				"outcome: expected mutated, got raised",
			},
		},
		{
			name:   "failure expected but passed",
			expect: Expect{FailedPublic: 1},
			result: passing,
			want:   []string{"expected a public test to fail, none did"},
		},
		{
			name:   "counts",
			expect: Expect{PublicRun: ptr(1), SecretTotal: ptr(5), SecretPassed: ptr(1)},
			result: passing,
			want: []string{
				"secret_total: expected 5, got 2",
				"secret_passed: expected 1, got 2",
			},
		},
		{
			name:   "hint",
			expect: Expect{HintContains: "returning"},
			result: failingResult(),
			want:   []string{`hint: expected to contain "returning", got "` + engine.IndexHint + `"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckExpectations(tt.expect, tt.result))
		})
	}
}
