package interp

import "rulox/internal/ast"

// Run executes every top-level statement in program order, stopping at
// the first runtime error (spec.md §7: RuntimeError aborts the current
// interpret() run; whatever was printed before the fault stays in
// ev.Output). The resolver only warns about a top-level Return, so one can
// reach here; Run discards its value and goes on with the next statement
// rather than panicking.
func (ev *Evaluator) Run(program *ast.Program) error {
	for _, stmt := range program.Statements {
		if _, _, err := ev.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
