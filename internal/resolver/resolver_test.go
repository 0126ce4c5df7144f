package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rulox/internal/ast"
	"rulox/internal/diag"
	"rulox/internal/lexer"
	"rulox/internal/parser"
	"rulox/internal/resolver"
)

func resolve(t *testing.T, source string) (*ast.Program, resolver.Locals, *diag.Sink) {
	t.Helper()
	sink := diag.NewSink()
	toks := lexer.New(source, sink).Scan()
	prog := parser.New(toks, sink).Parse()
	locals := resolver.New(sink).Resolve(prog)
	return prog, locals, sink
}

func TestResolve_GlobalReferenceGetsNoLocalEntry(t *testing.T) {
	prog, locals, sink := resolve(t, "var x = 1; print x;")
	assert.True(t, sink.Empty())

	printStmt := prog.Statements[1].(*ast.PrintStmt)
	v := printStmt.Expr.(*ast.Variable)
	_, ok := locals[v]
	assert.False(t, ok, "a global reference should not be recorded in Locals")
}

func TestResolve_NestedBlockReferenceRecordsDistance(t *testing.T) {
	prog, locals, sink := resolve(t, `
		{
			var x = 1;
			{
				print x;
			}
		}
	`)
	assert.True(t, sink.Empty())

	outer := prog.Statements[0].(*ast.BlockStmt)
	inner := outer.Statements[1].(*ast.BlockStmt)
	printStmt := inner.Statements[0].(*ast.PrintStmt)
	v := printStmt.Expr.(*ast.Variable)

	distance, ok := locals[v]
	assert.True(t, ok)
	assert.Equal(t, 1, distance)
}

func TestResolve_ClosureOverOuterLocalRecordsDistanceAcrossFunctionBoundary(t *testing.T) {
	_, locals, sink := resolve(t, `
		fun make() {
			var x = 0;
			fun inc() { x = x + 1; return x; }
			return inc;
		}
	`)
	assert.True(t, sink.Empty())
	assert.NotEmpty(t, locals, "the assignment and read of x inside inc should both be recorded")

	found := false
	for _, distance := range locals {
		if distance == 1 {
			found = true
		}
	}
	assert.True(t, found, "x read/written inside inc is one closure hop away from its own frame")
}

func TestResolve_ReadingVariableInOwnInitializerWarns(t *testing.T) {
	_, _, sink := resolve(t, `{ var x = x; }`)
	assert.False(t, sink.Empty())
	assert.Contains(t, sink.Lines()[0], "own initializer")
}

func TestResolve_RedeclarationInSameScopeWarns(t *testing.T) {
	_, _, sink := resolve(t, `{ var x = 1; var x = 2; }`)
	assert.False(t, sink.Empty())
	assert.Contains(t, sink.Lines()[0], "Already a variable")
}

func TestResolve_TopLevelReturnWarns(t *testing.T) {
	_, _, sink := resolve(t, `return 1;`)
	assert.False(t, sink.Empty())
	assert.Contains(t, sink.Lines()[0], "top-level code")
}

func TestResolve_RedeclarationAtGlobalScopeIsFine(t *testing.T) {
	_, _, sink := resolve(t, `var x = 1; var x = 2;`)
	assert.True(t, sink.Empty())
}
