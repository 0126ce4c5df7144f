// Package diag implements the diagnostics sink shared by every pipeline
// stage: lexer, parser, resolver and evaluator all report into the same
// accumulator instead of aborting the whole pipeline on first error.
package diag

import (
	"fmt"
	"strings"
)

type Stage int

const (
	Lexical Stage = iota
	Parse
	Resolver
	Runtime
)

// Diagnostic is one recorded error or warning, formatted per the
// `[error @ <line> : <col>]` wire format the original rulox implementation
// uses for reporting.
type Diagnostic struct {
	Stage   Stage
	Line    int
	Column  int
	Token   string // offending token text, "" for lexical diagnostics
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[error @ %d : %d]\n\t --> `%s` = %s", d.Line, d.Column, d.Token, d.Message)
}

// Sink accumulates diagnostics across the lex/parse/resolve/evaluate
// pipeline. A fresh Sink is created per Rulox run.
type Sink struct {
	diagnostics []Diagnostic
}

func NewSink() *Sink {
	return &Sink{}
}

func (s *Sink) Report(d Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
}

func (s *Sink) Lexical(line int, message string) {
	s.Report(Diagnostic{Stage: Lexical, Line: line, Column: 0, Message: message})
}

func (s *Sink) ParseError(line, col int, tokenText, message string) {
	s.Report(Diagnostic{Stage: Parse, Line: line, Column: col, Token: tokenText, Message: message})
}

func (s *Sink) ResolverWarning(line, col int, tokenText, message string) {
	s.Report(Diagnostic{Stage: Resolver, Line: line, Column: col, Token: tokenText, Message: message})
}

func (s *Sink) Runtime(line, col int, tokenText, message string) {
	s.Report(Diagnostic{Stage: Runtime, Line: line, Column: col, Token: tokenText, Message: message})
}

// HadLexOrParseErrors reports whether any lexical or parse diagnostic (the two
// stages that must short-circuit the resolver/evaluator per spec) was
// recorded.
func (s *Sink) HadLexOrParseErrors() bool {
	for _, d := range s.diagnostics {
		if d.Stage == Lexical || d.Stage == Parse {
			return true
		}
	}
	return false
}

func (s *Sink) Empty() bool {
	return len(s.diagnostics) == 0
}

func (s *Sink) All() []Diagnostic {
	return s.diagnostics
}

// Lines renders every diagnostic as one formatted string, in recorded order.
func (s *Sink) Lines() []string {
	lines := make([]string, len(s.diagnostics))
	for i, d := range s.diagnostics {
		lines[i] = d.String()
	}
	return lines
}

func (s *Sink) String() string {
	var sb strings.Builder
	for _, line := range s.Lines() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
