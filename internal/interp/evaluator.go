// Package interp implements the tree-walking evaluator: expression
// evaluation, statement execution, and the runtime value rules (operator
// semantics, truthiness, equality) SPEC_FULL.md §4.5 specifies.
package interp

import (
	"rulox/internal/ast"
	"rulox/internal/environment"
	"rulox/internal/resolver"
	"rulox/internal/token"
)

// Evaluator walks the AST using the environment chain and the resolver's
// scope-depth annotations, collecting printed lines into Output.
type Evaluator struct {
	Globals *environment.Environment
	env     *environment.Environment
	locals  resolver.Locals
	Output  []string
}

func NewEvaluator(locals resolver.Locals) *Evaluator {
	globals := environment.New(nil)
	return &Evaluator{Globals: globals, env: globals, locals: locals}
}

func (ev *Evaluator) Eval(e ast.Expr) (environment.Value, error) {
	switch n := e.(type) {
	case *ast.Literal:
		return ev.literal(n)
	case *ast.Variable:
		return ev.lookup(n, n.Name.Lexeme)
	case *ast.Assign:
		return ev.assign(n)
	case *ast.Unary:
		return ev.unary(n)
	case *ast.Binary:
		return ev.binary(n)
	case *ast.Logical:
		return ev.logical(n)
	case *ast.Call:
		return ev.call(n)
	case *ast.Group:
		return ev.Eval(n.Inner)
	}
	panic("interp: unhandled expression type")
}

func (ev *Evaluator) literal(n *ast.Literal) (environment.Value, error) {
	switch n.Token.Kind {
	case token.True:
		return environment.Bool{V: true}, nil
	case token.False:
		return environment.Bool{V: false}, nil
	case token.Nil:
		return environment.Nil{}, nil
	case token.String:
		return environment.String{V: n.Token.Text}, nil
	case token.Number:
		return environment.Number{V: n.Token.NumberLit}, nil
	}
	panic("interp: unhandled literal kind")
}

func (ev *Evaluator) lookup(expr ast.Expr, name string) (environment.Value, error) {
	if distance, ok := ev.locals[expr]; ok {
		return ev.env.GetAt(distance, name)
	}
	return ev.Globals.Get(name)
}

func (ev *Evaluator) assign(n *ast.Assign) (environment.Value, error) {
	val, err := ev.Eval(n.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := ev.locals[n]; ok {
		ev.env.AssignAt(distance, n.Name.Lexeme, val)
		return val, nil
	}
	if err := ev.Globals.Assign(n.Name.Lexeme, val); err != nil {
		return nil, err
	}
	return val, nil
}

func (ev *Evaluator) unary(n *ast.Unary) (environment.Value, error) {
	right, err := ev.Eval(n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Op.Kind {
	case token.Bang:
		return environment.Bool{V: !isTruthy(right)}, nil
	case token.Minus:
		num, ok := asNumber(right)
		if !ok {
			return nil, typeError(n.Op.Line, n.Op.Column, n.Op.Lexeme, "Operand must be a number.")
		}
		return environment.Number{V: -num}, nil
	}
	panic("interp: unhandled unary operator")
}

func (ev *Evaluator) logical(n *ast.Logical) (environment.Value, error) {
	left, err := ev.Eval(n.Left)
	if err != nil {
		return nil, err
	}
	switch n.Op.Kind {
	case token.Or:
		if isTruthy(left) {
			return left, nil
		}
	case token.And:
		if !isTruthy(left) {
			return left, nil
		}
	}
	return ev.Eval(n.Right)
}

func (ev *Evaluator) binary(n *ast.Binary) (environment.Value, error) {
	left, err := ev.Eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := ev.Eval(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op.Kind {
	case token.Plus:
		ls, lok := left.(environment.String)
		rs, rok := right.(environment.String)
		if lok && rok {
			return environment.String{V: ls.V + rs.V}, nil
		}
		ln, lnok := asNumber(left)
		rn, rnok := asNumber(right)
		if lnok && rnok {
			return environment.Number{V: ln + rn}, nil
		}
		return nil, typeError(n.Op.Line, n.Op.Column, n.Op.Lexeme, "Operands must be two numbers or two strings.")

	case token.Minus, token.Star, token.Slash, token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		ln, lok := asNumber(left)
		rn, rok := asNumber(right)
		if !lok || !rok {
			return nil, typeError(n.Op.Line, n.Op.Column, n.Op.Lexeme, "Operands must be numbers.")
		}
		switch n.Op.Kind {
		case token.Minus:
			return environment.Number{V: ln - rn}, nil
		case token.Star:
			return environment.Number{V: ln * rn}, nil
		case token.Slash:
			return environment.Number{V: ln / rn}, nil
		case token.Greater:
			return environment.Bool{V: ln > rn}, nil
		case token.GreaterEqual:
			return environment.Bool{V: ln >= rn}, nil
		case token.Less:
			return environment.Bool{V: ln < rn}, nil
		case token.LessEqual:
			return environment.Bool{V: ln <= rn}, nil
		}

	case token.EqualEqual:
		return environment.Bool{V: valuesEqual(left, right)}, nil
	case token.BangEqual:
		return environment.Bool{V: !valuesEqual(left, right)}, nil
	}
	panic("interp: unhandled binary operator")
}

func (ev *Evaluator) call(n *ast.Call) (environment.Value, error) {
	calleeVal, err := ev.Eval(n.Callee)
	if err != nil {
		return nil, err
	}

	fn, ok := calleeVal.(callable)
	if !ok {
		return nil, &NotCallableError{Line: n.Paren.Line, Column: n.Paren.Column, Token: n.Paren.Lexeme}
	}

	args := make([]environment.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := ev.Eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if len(n.Args) != fn.Arity() {
		return nil, &ArityError{
			Line: n.Paren.Line, Column: n.Paren.Column, Token: n.Paren.Lexeme,
			Expected: fn.Arity(), Got: len(n.Args),
		}
	}

	return fn.call(ev, args)
}

// ---------------- value rules ----------------

// Display renders a value the way the print statement does: strings are
// wrapped in double quotes (the canonical Value display form), every
// other kind uses its own String().
func Display(v environment.Value) string {
	if s, ok := v.(environment.String); ok {
		return `"` + s.V + `"`
	}
	return v.String()
}

// isTruthy implements the language's own truthiness policy: false and nil
// are falsy, everything else (including 0, "", and callables) is truthy.
// This never delegates to Go's own zero-value or boolean conversions.
func isTruthy(v environment.Value) bool {
	switch val := v.(type) {
	case environment.Nil:
		return false
	case environment.Bool:
		return val.V
	default:
		return true
	}
}

func asNumber(v environment.Value) (float64, bool) {
	n, ok := v.(environment.Number)
	return n.V, ok
}

// valuesEqual implements content equality for scalars and identity
// equality for callables; no cross-type pair is ever equal, and two NaNs
// compare unequal per IEEE-754 (inherited from Go's float64 ==).
func valuesEqual(a, b environment.Value) bool {
	switch av := a.(type) {
	case environment.Nil:
		_, ok := b.(environment.Nil)
		return ok
	case environment.Bool:
		bv, ok := b.(environment.Bool)
		return ok && av.V == bv.V
	case environment.Number:
		bv, ok := b.(environment.Number)
		return ok && av.V == bv.V
	case environment.String:
		bv, ok := b.(environment.String)
		return ok && av.V == bv.V
	case *Function:
		bv, ok := b.(*Function)
		return ok && av == bv
	}
	return false
}
