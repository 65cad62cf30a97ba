package harness

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/roach88/fnjudge/internal/engine"
	"github.com/roach88/fnjudge/internal/eval"
	"github.com/roach88/fnjudge/internal/spec"
	"github.com/roach88/fnjudge/internal/testcase"
	"github.com/roach88/fnjudge/internal/testutil"
)

// DefaultRunID is stamped on scenario results that name no run ID.
const DefaultRunID = "test-run-default"

// Run grades a scenario's candidate against its specification.
//
// Everything is deterministic: tests are generated with the scenario seed
// and the result carries a fixed run ID.
func Run(scenario *Scenario) (*Result, error) {
	return RunWithLogger(scenario, zap.NewNop())
}

// RunWithLogger is Run with logging.
func RunWithLogger(scenario *Scenario, logger *zap.Logger) (*Result, error) {
	suite, err := Generate(scenario.Spec, scenario.Seed, logger)
	if err != nil {
		return nil, err
	}

	candidate, err := BindCandidate(scenario.Candidate, suite.Name)
	if err != nil {
		return nil, err
	}

	runID := scenario.RunID
	if runID == "" {
		runID = DefaultRunID
	}
	session := NewSession(SessionOptions{
		Engine: engine.New(engine.Options{Logger: logger}),
		IDs:    testutil.NewFixedRunIDGenerator(runID),
		Logger: logger,
	})
	return session.Grade(suite, candidate), nil
}

// Generate parses the specification at path and generates its suite with
// draw helpers seeded by seed.
func Generate(path string, seed uint64, logger *zap.Logger) (*testcase.Suite, error) {
	doc, err := spec.ParseFile(path)
	if err != nil {
		return nil, err
	}

	rt, err := eval.New(eval.Options{Rand: eval.NewRand(seed)})
	if err != nil {
		return nil, err
	}

	suite, err := spec.Generate(doc, rt, spec.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return suite, nil
}

// BindCandidate interprets the Go source file at path in a runtime of its
// own and returns the function name.
func BindCandidate(path, name string) (*eval.Callable, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate: %w", err)
	}

	rt, err := eval.New(eval.Options{})
	if err != nil {
		return nil, err
	}

	c, err := rt.BindCallable(string(src), name)
	if err != nil {
		return nil, fmt.Errorf("candidate: %w", err)
	}
	return c, nil
}
