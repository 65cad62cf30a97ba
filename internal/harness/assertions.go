package harness

import (
	"fmt"
	"strings"
)

// CheckExpectations compares result with the scenario's expectations and
// returns one message per mismatch.
func CheckExpectations(e Expect, result *Result) []string {
	var errs []string
	failf := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	if e.Pass != nil && *e.Pass != result.Pass {
		failf("pass: expected %t, got %t", *e.Pass, result.Pass)
	}

	failed := result.FailedPublic()
	if e.FailedPublic > 0 || e.Outcome != "" || e.HintContains != "" {
		if failed == nil {
			failf("expected a public test to fail, none did")
		} else {
			if e.FailedPublic > 0 && failed.Index != e.FailedPublic {
				failf("failed_public: expected test %d, got test %d", e.FailedPublic, failed.Index)
			}
			if e.Outcome != "" && failed.Outcome != e.Outcome {
				failf("outcome: expected %s, got %s", e.Outcome, failed.Outcome)
			}
			if e.HintContains != "" && !strings.Contains(failed.Hint, e.HintContains) {
				failf("hint: expected to contain %q, got %q", e.HintContains, failed.Hint)
			}
		}
	}

	if e.PublicRun != nil && *e.PublicRun != len(result.Public) {
		failf("public_run: expected %d, got %d", *e.PublicRun, len(result.Public))
	}
	if e.SecretTotal != nil && *e.SecretTotal != result.Secret.Total {
		failf("secret_total: expected %d, got %d", *e.SecretTotal, result.Secret.Total)
	}
	if e.SecretPassed != nil && *e.SecretPassed != result.Secret.Passed {
		failf("secret_passed: expected %d, got %d", *e.SecretPassed, result.Secret.Passed)
	}

	return errs
}
