// Package value is the deep value utility shared by generation and grading.
//
// Every input tuple and every output in fnjudge is a plain Go value produced
// by the interpreter or by a column converter: scalars, slices, arrays, maps
// (which double as sets), pointers and structs. This package provides the
// operations the rest of the system needs over that domain:
//
//   - Clone / CloneTuple: structural deep copy, used for the pre-call snapshot
//   - Equal: structural deep equality, used both for mutation detection and
//     for output comparison so the two never diverge
//   - IsNone: the "no value" sentinel test
//   - Close: numeric comparison with a relative/absolute tolerance
//   - Format / FormatTuple: human-readable rendering for diagnostics
//   - MarshalCanonical / Fingerprint: deterministic encoding and content IDs
//
// value imports nothing internal.
package value
