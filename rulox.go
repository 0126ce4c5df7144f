// Package rulox is the public facade over the interpreter core: lexing,
// parsing, static resolution and tree-walking evaluation. It is the only
// package external collaborators (a CLI, a REPL, a browser binding) should
// import; everything else lives under internal/.
//
// The shape mirrors the original rulox implementation this system was
// distilled from almost exactly: New(source), Tokenize(), Parse(),
// Run() []string, HadErrors.
package rulox

import (
	"rulox/internal/ast"
	"rulox/internal/diag"
	"rulox/internal/environment"
	"rulox/internal/interp"
	"rulox/internal/lexer"
	"rulox/internal/parser"
	"rulox/internal/resolver"
	"rulox/internal/token"
)

// Rulox holds one source program through all pipeline stages. It is not
// safe for concurrent use: the interpreter is single-threaded by design
// (SPEC_FULL.md §5).
type Rulox struct {
	// HadErrors is true once any lexical or parse diagnostic has been
	// recorded. It mirrors the original implementation's public field of
	// the same name.
	HadErrors bool

	source  string
	sink    *diag.Sink
	tokens  []token.Token
	program *ast.Program
	env     string // last-run environment snapshot, for introspection
}

func New(source string) *Rulox {
	return &Rulox{source: source, sink: diag.NewSink()}
}

// Tokenize runs the lexer and returns the resulting token stream. Calling
// it again re-scans the same source and returns the same tokens; any
// lexical diagnostics are recorded in the sink again.
func (r *Rulox) Tokenize() []token.Token {
	r.tokens = lexer.New(r.source, r.sink).Scan()
	r.HadErrors = r.HadErrors || r.sink.HadLexOrParseErrors()
	return r.tokens
}

// Parse tokenizes (if not already done) then runs the recursive-descent
// parser, returning the resulting AST. Parse errors are recorded in the
// diagnostics sink rather than raised; check HadErrors/Diagnostics after
// calling this.
func (r *Rulox) Parse() *ast.Program {
	if r.tokens == nil {
		r.Tokenize()
	}
	r.program = parser.New(r.tokens, r.sink).Parse()
	r.HadErrors = r.HadErrors || r.sink.HadLexOrParseErrors()
	return r.program
}

// Run executes the program and returns the lines it printed. Per
// spec.md §7: if lexing or parsing recorded any diagnostic, the resolver
// and evaluator are skipped entirely and the accumulated diagnostics are
// returned in their place instead of program output.
func (r *Rulox) Run() []string {
	if r.program == nil {
		r.Parse()
	}

	if r.sink.HadLexOrParseErrors() {
		return r.sink.Lines()
	}

	locals := resolver.New(r.sink).Resolve(r.program)

	ev := interp.NewEvaluator(locals)
	if err := ev.Run(r.program); err != nil {
		r.sink.Runtime(0, 0, "", err.Error())
	}
	r.env = ev.Globals.String()

	if !r.sink.Empty() {
		out := append([]string{}, ev.Output...)
		out = append(out, r.sink.Lines()...)
		return out
	}
	return ev.Output
}

// Diagnostics returns every recorded diagnostic line, across every stage
// that ran.
func (r *Rulox) Diagnostics() []string {
	return r.sink.Lines()
}

// Environment renders the global environment's bindings as they stood
// after the last Run(), grounded on the original implementation's
// get_environment() introspection hook.
func (r *Rulox) Environment() string {
	return r.env
}

// Value re-exports environment.Value so external collaborators (e.g. a
// browser binding that wants to pretty-print a single evaluated
// expression) don't need to import the internal package directly.
type Value = environment.Value
