// Package engine runs one test against a candidate and classifies the
// outcome.
//
// Run never raises. Every failure of the candidate is recorded on the test
// as an artifact:
//
//   - ExecutionFailure: the candidate panicked, returned a non-nil error or
//     could not be called with the inputs
//   - MutationDetected: the candidate changed an argument, whatever it
//     returned
//
// Otherwise the output is compared with the expected value: the none
// sentinel must match none, numbers compare within a tolerance, everything
// else compares structurally with value.Equal, the same equality used for
// mutation detection.
package engine
