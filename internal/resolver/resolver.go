// Package resolver performs the static scope-distance analysis pass: for
// every Variable/Assign node it records how many enclosing environments to
// skip to reach the scope that declares that name. It is keyed by AST node
// identity (map[ast.Expr]int over the node's own pointer), not by name
// text — SPEC_FULL.md calls this out as a correctness requirement the
// teacher's own resolver already gets right.
package resolver

import (
	"rulox/internal/ast"
	"rulox/internal/diag"
	"rulox/internal/token"
)

type functionType int

const (
	functionNone functionType = iota
	functionFunction
)

// scope maps a name to whether its initializer has finished running yet;
// false means "declared but not yet defined" — reading it is the
// "read local variable in its own initializer" error.
type scope map[string]bool

// Locals is the resolver's output: scope distance per variable-reference
// node, consumed directly by the evaluator's environment lookups.
type Locals map[ast.Expr]int

type Resolver struct {
	sink    *diag.Sink
	locals  Locals
	scopes  []scope
	funcCtx functionType
}

func New(sink *diag.Sink) *Resolver {
	return &Resolver{sink: sink, locals: make(Locals)}
}

// Resolve walks the whole program and returns the accumulated locals map.
func (r *Resolver) Resolve(prog *ast.Program) Locals {
	for _, stmt := range prog.Statements {
		r.stmt(stmt)
	}
	return r.locals
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	top := r.scopes[len(r.scopes)-1]
	if _, ok := top[name.Lexeme]; ok {
		r.sink.ResolverWarning(name.Line, name.Column, name.Lexeme,
			"Already a variable with this name in this scope.")
	}
	top[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal records how many scopes back `name` is declared in,
// searching from the innermost scope outward. No entry is recorded when
// the name isn't found locally: the evaluator then treats it as global.
func (r *Resolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) stmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.ExpressionStmt:
		r.expr(n.Expr)
	case *ast.PrintStmt:
		r.expr(n.Expr)
	case *ast.ReturnStmt:
		if r.funcCtx == functionNone {
			r.sink.ResolverWarning(n.Keyword.Line, n.Keyword.Column, n.Keyword.Lexeme,
				"Can't return from top-level code.")
		}
		r.expr(n.Value)
	case *ast.VarStmt:
		r.declare(n.Name)
		if n.Initializer != nil {
			r.expr(n.Initializer)
		}
		r.define(n.Name)
	case *ast.BlockStmt:
		r.beginScope()
		for _, stmt := range n.Statements {
			r.stmt(stmt)
		}
		r.endScope()
	case *ast.IfStmt:
		r.expr(n.Condition)
		r.stmt(n.Then)
		if n.Else != nil {
			r.stmt(n.Else)
		}
	case *ast.WhileStmt:
		r.expr(n.Condition)
		r.stmt(n.Body)
	case *ast.FunctionStmt:
		r.declare(n.Name)
		r.define(n.Name)
		r.resolveFunction(n, functionFunction)
	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, typ functionType) {
	enclosing := r.funcCtx
	r.funcCtx = typ

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	for _, stmt := range fn.Body {
		r.stmt(stmt)
	}
	r.endScope()

	r.funcCtx = enclosing
}

func (r *Resolver) expr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Literal:
		// nothing to resolve
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, declared := r.scopes[len(r.scopes)-1][n.Name.Lexeme]; declared && !defined {
				r.sink.ResolverWarning(n.Name.Line, n.Name.Column, n.Name.Lexeme,
					"Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(n, n.Name.Lexeme)
	case *ast.Assign:
		r.expr(n.Value)
		r.resolveLocal(n, n.Name.Lexeme)
	case *ast.Unary:
		r.expr(n.Operand)
	case *ast.Binary:
		r.expr(n.Left)
		r.expr(n.Right)
	case *ast.Logical:
		r.expr(n.Left)
		r.expr(n.Right)
	case *ast.Call:
		r.expr(n.Callee)
		for _, arg := range n.Args {
			r.expr(arg)
		}
	case *ast.Group:
		r.expr(n.Inner)
	default:
		panic("resolver: unhandled expression type")
	}
}
