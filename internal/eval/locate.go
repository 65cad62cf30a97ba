package eval

import (
	"go/ast"
	"go/parser"
	"go/token"
)

// locator maps the position yaegi reports for a panicking frame onto the
// line that actually failed.
//
// yaegi reports where the frame's body started executing, not the failing
// statement. That is exact for a body of one simple statement. For longer
// bodies the failing line is recovered when exactly one line of the body can
// raise the failure's kind; otherwise the line is unknown.
type locator struct {
	fset *token.FileSet
	file *ast.File
}

func newLocator(full string) *locator {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "", full, 0)
	if err != nil {
		return nil
	}
	return &locator{fset: fset, file: f}
}

// locate returns the failing line in the normalized source, or 0.
func (l *locator) locate(reported int, kind ErrorKind) int {
	if l == nil || reported <= 0 {
		return 0
	}
	body := l.enclosingBody(reported)
	if body == nil {
		return 0
	}
	if len(body.List) == 1 && isSimpleStmt(body.List[0]) {
		return reported
	}

	lines := map[int]bool{}
	ast.Inspect(body, func(n ast.Node) bool {
		if _, ok := n.(*ast.FuncLit); ok {
			return false
		}
		if n != nil && raises(n, kind) {
			lines[l.fset.Position(n.Pos()).Line] = true
		}
		return true
	})
	if len(lines) != 1 {
		return 0
	}
	for line := range lines {
		return line
	}
	return 0
}

// enclosingBody returns the innermost function body spanning line.
func (l *locator) enclosingBody(line int) *ast.BlockStmt {
	var (
		best *ast.BlockStmt
		span int
	)
	ast.Inspect(l.file, func(n ast.Node) bool {
		var body *ast.BlockStmt
		switch fn := n.(type) {
		case *ast.FuncDecl:
			body = fn.Body
		case *ast.FuncLit:
			body = fn.Body
		}
		if body == nil {
			return true
		}
		from := l.fset.Position(body.Lbrace).Line
		to := l.fset.Position(body.Rbrace).Line
		if line >= from && line <= to && (best == nil || to-from <= span) {
			best, span = body, to-from
		}
		return true
	})
	return best
}

func isSimpleStmt(s ast.Stmt) bool {
	switch s.(type) {
	case *ast.ReturnStmt, *ast.ExprStmt, *ast.AssignStmt, *ast.IncDecStmt,
		*ast.SendStmt, *ast.DeclStmt:
		return true
	}
	return false
}

// raises reports whether n is an expression that can fail with kind.
func raises(n ast.Node, kind ErrorKind) bool {
	switch kind {
	case KindIndex:
		switch n.(type) {
		case *ast.IndexExpr, *ast.SliceExpr:
			return true
		}
	case KindDivide:
		switch e := n.(type) {
		case *ast.BinaryExpr:
			return e.Op == token.QUO || e.Op == token.REM
		case *ast.AssignStmt:
			return e.Tok == token.QUO_ASSIGN || e.Tok == token.REM_ASSIGN
		}
	case KindConversion:
		_, ok := n.(*ast.TypeAssertExpr)
		return ok
	case KindPanic:
		if call, ok := n.(*ast.CallExpr); ok {
			id, ok := call.Fun.(*ast.Ident)
			return ok && id.Name == "panic"
		}
	}
	return false
}
