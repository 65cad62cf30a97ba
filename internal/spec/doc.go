// Package spec parses test specification files and generates test suites
// from them.
//
// A specification is line oriented. Lines beginning with * are directives,
// \* escapes a data line that starts with *, and ## starts a comment line:
//
//	## add two integers
//	*name
//	add
//	*in plain int;int
//	2;3
//	5;-5 : watch the sign
//	*in secret_random 5
//	randint(-100, 100); randint(-100, 100)
//	*in range
//	span(0, 3); span(-1, 1)
//	*code
//	func add(a, b int) int {
//		return a + b
//	}
//
// Parse validates the whole document before anything is evaluated. Generate
// binds the reference and expands every input specification in document
// order against one shared history.
package spec
