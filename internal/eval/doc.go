// Package eval is the only place fnjudge runs dynamic code.
//
// Reference and candidate implementations are Go source interpreted by
// yaegi. Random draws and range domains are Go expressions evaluated by the
// same interpreter. Everything that crosses this boundary comes back as a
// plain Go value or as one of the typed errors below.
//
// A Runtime owns one interpreter. Grading uses one Runtime per role: the
// reference runtime carries the draw helpers bound to an explicit random
// source, the candidate runtime does not.
//
// Names reserved in reference code (defined by the draw prelude):
//
//	randint(lo, hi int) int              uniform integer in [lo, hi]
//	uniform(lo, hi float64) float64      uniform float in [lo, hi)
//	randbool() bool
//	choice(xs ...interface{}) interface{}
//	randints(n, lo, hi int) []int
//	randstr(n int, alphabet string) string
//	span(lo, hi int) []int               lo, lo+1, ..., hi-1
//	spanStep(lo, hi, step int) []int
//	bools                                []bool{false, true}
package eval
