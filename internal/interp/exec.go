package interp

import (
	"rulox/internal/ast"
	"rulox/internal/environment"
)

// Exec runs one statement in the evaluator's current environment.
// isReturn signals that a Return statement fired; retVal is its value.
// Callers must propagate (retVal, true, nil) upward unchanged until it
// reaches the call frame it belongs to — Return must never escape its
// enclosing function call.
func (ev *Evaluator) Exec(s ast.Stmt) (retVal environment.Value, isReturn bool, err error) {
	switch n := s.(type) {
	case *ast.ExpressionStmt:
		_, err := ev.Eval(n.Expr)
		return nil, false, err

	case *ast.PrintStmt:
		v, err := ev.Eval(n.Expr)
		if err != nil {
			return nil, false, err
		}
		ev.Output = append(ev.Output, Display(v))
		return nil, false, nil

	case *ast.ReturnStmt:
		v, err := ev.Eval(n.Value)
		if err != nil {
			return nil, false, err
		}
		return v, true, nil

	case *ast.VarStmt:
		var v environment.Value = environment.Nil{}
		if n.Initializer != nil {
			var err error
			v, err = ev.Eval(n.Initializer)
			if err != nil {
				return nil, false, err
			}
		}
		ev.env.Define(n.Name.Lexeme, v)
		return nil, false, nil

	case *ast.BlockStmt:
		return ev.execBlock(n.Statements, environment.New(ev.env))

	case *ast.IfStmt:
		cond, err := ev.Eval(n.Condition)
		if err != nil {
			return nil, false, err
		}
		if isTruthy(cond) {
			return ev.Exec(n.Then)
		}
		if n.Else != nil {
			return ev.Exec(n.Else)
		}
		return nil, false, nil

	case *ast.WhileStmt:
		for {
			cond, err := ev.Eval(n.Condition)
			if err != nil {
				return nil, false, err
			}
			if !isTruthy(cond) {
				return nil, false, nil
			}
			retVal, isReturn, err := ev.Exec(n.Body)
			if err != nil || isReturn {
				return retVal, isReturn, err
			}
		}

	case *ast.FunctionStmt:
		ev.env.Define(n.Name.Lexeme, &Function{decl: n, closure: ev.env})
		return nil, false, nil
	}
	panic("interp: unhandled statement type")
}

// execBlock runs a statement list inside newEnv, always restoring the
// evaluator's previous environment on every exit path — normal
// completion, an early return, or a runtime error.
func (ev *Evaluator) execBlock(stmts []ast.Stmt, newEnv *environment.Environment) (environment.Value, bool, error) {
	previous := ev.env
	ev.env = newEnv
	defer func() { ev.env = previous }()

	for _, stmt := range stmts {
		retVal, isReturn, err := ev.Exec(stmt)
		if err != nil || isReturn {
			return retVal, isReturn, err
		}
	}
	return nil, false, nil
}
