package eval

import (
	"fmt"
	"go/ast"
	"go/parser"
	"reflect"
)

// Expr is a compiled Go expression. Each call to Eval evaluates it again,
// so draw helpers produce a fresh value every time.
type Expr struct {
	src string
	fn  reflect.Value
}

// String returns the expression source.
func (e *Expr) String() string {
	return e.src
}

// Compile type-checks expr in the runtime's package main and returns a thunk.
func (rt *Runtime) Compile(expr string) (*Expr, error) {
	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, &ExprError{Expr: expr, Err: err}
	}

	// The value goes through a typed local: yaegi cannot return a
	// comparison result directly as interface{}.
	body := fmt.Sprintf("v := (%s)\n\treturn v", expr)
	if id, ok := parsed.(*ast.Ident); ok && id.Name == "nil" {
		body = "return nil"
	}

	rt.exprs++
	name := fmt.Sprintf("fnjudgeExpr%d", rt.exprs)
	src := fmt.Sprintf("package main\n\nfunc %s() interface{} {\n\t%s\n}\n", name, body)
	if _, err := rt.interp.Eval(src); err != nil {
		return nil, &ExprError{Expr: expr, Err: err}
	}

	fn, err := rt.interp.Eval("main." + name)
	if err != nil {
		return nil, &ExprError{Expr: expr, Err: err}
	}
	return &Expr{src: expr, fn: fn}, nil
}

// Eval evaluates the expression once. A panic inside it is returned as an
// *ExprError wrapping a *Raised.
func (e *Expr) Eval() (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprint(r)
			result = nil
			err = &ExprError{Expr: e.src, Err: &Raised{Kind: classify(msg, false), Message: msg}}
		}
	}()

	out := e.fn.Call(nil)
	return out[0].Interface(), nil
}

// Evaluate compiles expr and evaluates it once.
func (rt *Runtime) Evaluate(expr string) (any, error) {
	e, err := rt.Compile(expr)
	if err != nil {
		return nil, err
	}
	return e.Eval()
}
