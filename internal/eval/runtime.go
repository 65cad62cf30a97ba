package eval

import (
	"bytes"
	"fmt"
	"go/parser"
	"go/token"
	"io"
	"math/rand/v2"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// Options configures a Runtime.
type Options struct {
	// Rand is the source for the draw helpers. When nil the helpers are not
	// installed and the runtime can only bind functions.
	Rand *rand.Rand

	// Stdout receives whatever interpreted code prints. Defaults to io.Discard.
	Stdout io.Writer
}

// Runtime wraps a single yaegi interpreter.
// A Runtime is not safe for concurrent use.
type Runtime struct {
	interp *interp.Interpreter
	stderr *bytes.Buffer
	exprs  int
}

// New creates a Runtime with the Go standard library available.
func New(opts Options) (*Runtime, error) {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	stderr := &bytes.Buffer{}

	i := interp.New(interp.Options{
		Stdout: stdout,
		Stderr: stderr,
	})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("failed to load stdlib: %w", err)
	}

	rt := &Runtime{interp: i, stderr: stderr}
	if opts.Rand != nil {
		if err := rt.installDraws(opts.Rand); err != nil {
			return nil, err
		}
	}
	return rt, nil
}

// BindCallable evaluates source and returns the function named name.
// Source without a package clause is placed in package main; any other
// package clause is renamed to main.
func (rt *Runtime) BindCallable(source, name string) (*Callable, error) {
	if !token.IsIdentifier(name) {
		return nil, &BindError{Name: name, Message: "not a valid Go identifier"}
	}

	full, offset, err := normalizeSource(source)
	if err != nil {
		return nil, &BindError{Name: name, Message: "source does not parse", Err: err}
	}

	rt.stderr.Reset()
	if _, err := rt.interp.Eval(full); err != nil {
		return nil, &BindError{Name: name, Message: "source does not compile", Err: err}
	}

	fn, err := rt.interp.Eval("main." + name)
	if err != nil {
		return nil, &BindError{Name: name, Message: "function not defined", Err: err}
	}
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return nil, &BindError{Name: name, Message: "not a function"}
	}
	if fn.IsNil() {
		return nil, &BindError{Name: name, Message: "function value is nil"}
	}

	return &Callable{
		name:   name,
		fn:     fn,
		lines:  strings.Split(source, "\n"),
		offset: offset,
		loc:    newLocator(full),
		rt:     rt,
	}, nil
}

// normalizeSource makes source a package main file and returns how many
// lines were prepended.
func normalizeSource(source string) (string, int, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "", source, parser.PackageClauseOnly)
	if err != nil {
		// No package clause at all: this is the common case.
		return "package main\n" + source, 1, nil
	}
	if f.Name.Name == "main" {
		return source, 0, nil
	}
	start := fset.Position(f.Name.Pos()).Offset
	end := fset.Position(f.Name.End()).Offset
	return source[:start] + "main" + source[end:], 0, nil
}

// panicPos matches the position yaegi writes to stderr for each frame a
// panic unwinds through. The first match is the innermost frame. The
// position is where the frame's body started, see locator.
var panicPos = regexp.MustCompile(`(?m)^(?:(\S+?):)?(\d+):(\d+): panic`)

// panicLine returns the line number of the innermost panic report, or 0.
func panicLine(stderr string) int {
	m := panicPos.FindStringSubmatch(stderr)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return 0
	}
	return n
}
