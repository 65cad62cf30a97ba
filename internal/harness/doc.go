// Package harness grades a candidate against a generated suite and checks
// the grader itself against recorded scenarios.
//
// # Grading
//
// Session.Grade runs the public tests in order and stops at the first
// failure, keeping full detail for every public test it ran. Only when every
// public test passes are the secret tests run. All of them run, and the
// result reports counts plus the fingerprints of the failing ones, never
// their inputs or expected values.
//
// # Scenarios
//
// A scenario is a YAML file naming a specification, a candidate source file
// and a seed, plus the expected grading outcome:
//
//	name: add-wrong-sign
//	description: subtracting instead of adding fails the second public test
//	spec: ../specs/add.spec
//	candidate: ../candidates/add_sub.go
//	seed: 1
//	expect:
//	  pass: false
//	  failed_public: 2
//	  outcome: wrong_value
//
// Paths are relative to the scenario file. Run grades the scenario,
// CheckExpectations compares the result with expect, and RunWithGolden
// compares a canonical JSON snapshot of the result with a golden file.
package harness
