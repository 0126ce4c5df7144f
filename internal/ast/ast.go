// Package ast defines the expression and statement node types the parser
// produces, one struct per grammar production, mirroring the BNF in
// SPEC_FULL.md. Nodes are immutable once built; the resolver and evaluator
// only ever read them.
package ast

import (
	"fmt"
	"strings"

	"rulox/internal/token"
)

// Expr is any expression node. Every concrete type is used by pointer, so
// map[Expr]int (as used by the resolver) keys on node identity rather than
// structural equality.
type Expr interface {
	exprNode()
	String() string
}

// Stmt is any statement node.
type Stmt interface {
	stmtNode()
	String() string
}

// ---- Expressions ----

// Literal holds the token that produced it; the evaluator decodes the
// payload (number/string/true/false/nil) from Token.Kind at evaluation
// time rather than the parser pre-computing a runtime Value.
type Literal struct {
	Token token.Token
}

func (*Literal) exprNode() {}
func (l *Literal) String() string {
	if l.Token.Kind == token.String {
		return fmt.Sprintf("%q", l.Token.Text)
	}
	return l.Token.Lexeme
}

type Variable struct {
	Name token.Token
}

func (*Variable) exprNode() {}
func (v *Variable) String() string { return v.Name.Lexeme }

type Assign struct {
	Name  token.Token
	Value Expr
}

func (*Assign) exprNode() {}
func (a *Assign) String() string { return fmt.Sprintf("%s = %s", a.Name.Lexeme, a.Value) }

type Unary struct {
	Op      token.Token
	Operand Expr
}

func (*Unary) exprNode() {}
func (u *Unary) String() string { return fmt.Sprintf("(%s %s)", u.Op.Lexeme, u.Operand) }

type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (*Binary) exprNode() {}
func (b *Binary) String() string { return fmt.Sprintf("(%s %s %s)", b.Op.Lexeme, b.Left, b.Right) }

// Logical distinguishes the short-circuiting "and"/"or" operators from
// ordinary binary ones; they evaluate differently (conditional RHS
// evaluation), so they get their own node instead of overloading Binary.
type Logical struct {
	Left  Expr
	Op    token.Token // And or Or
	Right Expr
}

func (*Logical) exprNode() {}
func (l *Logical) String() string { return fmt.Sprintf("(%s %s %s)", l.Op.Lexeme, l.Left, l.Right) }

type Call struct {
	Callee Expr
	Paren  token.Token // closing ')', for error locations
	Args   []Expr
}

func (*Call) exprNode() {}
func (c *Call) String() string {
	sb := strings.Builder{}
	sb.WriteString(c.Callee.String())
	sb.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

type Group struct {
	Inner Expr
}

func (*Group) exprNode() {}
func (g *Group) String() string { return fmt.Sprintf("(group %s)", g.Inner) }

// ---- Statements ----

type ExpressionStmt struct {
	Expr Expr
}

func (*ExpressionStmt) stmtNode() {}
func (e *ExpressionStmt) String() string { return e.Expr.String() }

type PrintStmt struct {
	Expr Expr
}

func (*PrintStmt) stmtNode() {}
func (p *PrintStmt) String() string { return "print " + p.Expr.String() }

type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // never nil; a bare `return;` parses to a nil-literal
}

func (*ReturnStmt) stmtNode() {}
func (r *ReturnStmt) String() string { return "return " + r.Value.String() }

type VarStmt struct {
	Name        token.Token
	Initializer Expr // nil if the declaration had no initializer
}

func (*VarStmt) stmtNode() {}
func (v *VarStmt) String() string {
	if v.Initializer == nil {
		return "var " + v.Name.Lexeme
	}
	return fmt.Sprintf("var %s = %s", v.Name.Lexeme, v.Initializer)
}

type BlockStmt struct {
	Statements []Stmt
}

func (*BlockStmt) stmtNode() {}
func (b *BlockStmt) String() string {
	sb := strings.Builder{}
	sb.WriteString("{\n")
	for _, s := range b.Statements {
		sb.WriteString("    " + s.String() + "\n")
	}
	sb.WriteByte('}')
	return sb.String()
}

type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // nil if there is no else branch
}

func (*IfStmt) stmtNode() {}
func (i *IfStmt) String() string {
	s := fmt.Sprintf("if (%s) %s", i.Condition, i.Then)
	if i.Else != nil {
		s += " else " + i.Else.String()
	}
	return s
}

type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (*WhileStmt) stmtNode() {}
func (w *WhileStmt) String() string { return fmt.Sprintf("while (%s) %s", w.Condition, w.Body) }

type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (*FunctionStmt) stmtNode() {}
func (f *FunctionStmt) String() string {
	sb := strings.Builder{}
	sb.WriteString("fun " + f.Name.Lexeme + "(")
	for i, p := range f.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Lexeme)
	}
	sb.WriteString(") {\n")
	for _, s := range f.Body {
		sb.WriteString("    " + s.String() + "\n")
	}
	sb.WriteByte('}')
	return sb.String()
}

// Program is the root node: the full list of top-level statements.
type Program struct {
	Statements []Stmt
}

func (p *Program) String() string {
	sb := strings.Builder{}
	for _, s := range p.Statements {
		sb.WriteString(s.String() + "\n")
	}
	return sb.String()
}
