package interp

import (
	"fmt"

	"rulox/internal/ast"
	"rulox/internal/environment"
)

// Function is the sole Callable implementation: a user-defined function
// plus the environment chain captured at its declaration (its closure).
// Two Function values are equal only if they are the same object, per
// SPEC_FULL.md's Value equality rules for callables.
type Function struct {
	decl    *ast.FunctionStmt
	closure *environment.Environment
}

var _ environment.Callable = (*Function)(nil)

func (f *Function) Arity() int   { return len(f.decl.Params) }
func (f *Function) Name() string { return f.decl.Name.Lexeme }
func (f *Function) String() string {
	names := make([]string, len(f.decl.Params))
	for i, p := range f.decl.Params {
		names[i] = p.Lexeme
	}
	return fmt.Sprintf("(fn %s (%s))", f.decl.Name.Lexeme, joinNames(names))
}

func joinNames(names []string) string {
	s := ""
	for i, n := range names {
		if i > 0 {
			s += ", "
		}
		s += n
	}
	return s
}

// callable is implemented only by *Function; it's declared here (rather
// than on environment.Callable) so the environment package never needs to
// depend back on the evaluator.
type callable interface {
	environment.Callable
	call(ev *Evaluator, args []environment.Value) (environment.Value, error)
}

var _ callable = (*Function)(nil)

// call creates a fresh environment whose parent is the closure, binds
// each parameter, then executes the body as a block inside it. A Return
// inside the body supplies the result; falling off the end yields Nil.
func (f *Function) call(ev *Evaluator, args []environment.Value) (environment.Value, error) {
	callEnv := environment.New(f.closure)
	for i, param := range f.decl.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	retVal, isReturn, err := ev.execBlock(f.decl.Body, callEnv)
	if err != nil {
		return nil, err
	}
	if isReturn {
		return retVal, nil
	}
	return environment.Nil{}, nil
}
