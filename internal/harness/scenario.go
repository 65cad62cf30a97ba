package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/fnjudge/internal/engine"
)

// Scenario grades one candidate against one specification and states what
// the grader should conclude.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Spec is the path to the specification file.
	Spec string `yaml:"spec"`

	// Candidate is the path to the Go source of the submission.
	Candidate string `yaml:"candidate"`

	// Seed seeds the draw helpers used to generate random tests.
	Seed uint64 `yaml:"seed"`

	// RunID is an optional fixed run ID. If empty, defaults to
	// "test-run-default" so golden files stay deterministic.
	RunID string `yaml:"run_id,omitempty"`

	Expect Expect `yaml:"expect"`
}

// Expect is the expected grading result. Unset fields are not checked.
type Expect struct {
	Pass *bool `yaml:"pass,omitempty"`

	// FailedPublic is the 1-based index of the failing public test.
	FailedPublic int `yaml:"failed_public,omitempty"`

	// Outcome is the outcome kind of the failing public test.
	Outcome engine.OutcomeKind `yaml:"outcome,omitempty"`

	// PublicRun is the number of public tests that ran.
	PublicRun *int `yaml:"public_run,omitempty"`

	SecretTotal  *int `yaml:"secret_total,omitempty"`
	SecretPassed *int `yaml:"secret_passed,omitempty"`

	// HintContains is a substring the failing test's hint must contain.
	HintContains string `yaml:"hint_contains,omitempty"`
}

var validOutcomes = map[engine.OutcomeKind]bool{
	engine.OutcomeWrongValue: true,
	engine.OutcomeRaised:     true,
	engine.OutcomeMutated:    true,
}

// LoadScenario reads and parses a scenario YAML file. Spec and candidate
// paths are resolved relative to the scenario file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	base := filepath.Dir(path)
	scenario.Spec = resolve(base, scenario.Spec)
	scenario.Candidate = resolve(base, scenario.Candidate)

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Spec == "" {
		return fmt.Errorf("spec is required")
	}

	if s.Candidate == "" {
		return fmt.Errorf("candidate is required")
	}

	e := s.Expect
	if e.Outcome != "" && !validOutcomes[e.Outcome] {
		return fmt.Errorf("expect.outcome: unknown outcome %q", e.Outcome)
	}
	if e.FailedPublic < 0 {
		return fmt.Errorf("expect.failed_public must be positive")
	}
	if e.Pass != nil && *e.Pass && (e.FailedPublic > 0 || e.Outcome != "") {
		return fmt.Errorf("expect.pass is true but a public failure is expected")
	}

	return nil
}
