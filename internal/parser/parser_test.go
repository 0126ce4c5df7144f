package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rulox/internal/ast"
	"rulox/internal/diag"
	"rulox/internal/lexer"
	"rulox/internal/parser"
)

func parse(t *testing.T, source string) (*ast.Program, *diag.Sink) {
	t.Helper()
	sink := diag.NewSink()
	toks := lexer.New(source, sink).Scan()
	prog := parser.New(toks, sink).Parse()
	return prog, sink
}

func TestParse_ArithmeticPrecedence(t *testing.T) {
	prog, sink := parse(t, "1 + 2 * 3;")
	assert.True(t, sink.Empty())
	assert.Len(t, prog.Statements, 1)

	exprStmt, ok := prog.Statements[0].(*ast.ExpressionStmt)
	assert.True(t, ok)
	bin, ok := exprStmt.Expr.(*ast.Binary)
	assert.True(t, ok)
	assert.Equal(t, "+", bin.Op.Lexeme)
	_, rightIsMul := bin.Right.(*ast.Binary)
	assert.True(t, rightIsMul, "multiplication should bind tighter and nest on the right")
}

func TestParse_ForLoopDesugarsToBlockWithWhile(t *testing.T) {
	prog, sink := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	assert.True(t, sink.Empty())
	assert.Len(t, prog.Statements, 1)

	outer, ok := prog.Statements[0].(*ast.BlockStmt)
	assert.True(t, ok, "for with an initializer desugars to a wrapping block")
	assert.Len(t, outer.Statements, 2)

	_, isVar := outer.Statements[0].(*ast.VarStmt)
	assert.True(t, isVar)

	loop, ok := outer.Statements[1].(*ast.WhileStmt)
	assert.True(t, ok)

	body, ok := loop.Body.(*ast.BlockStmt)
	assert.True(t, ok, "an increment clause wraps the body in a block")
	assert.Len(t, body.Statements, 2)
}

func TestParse_ForLoopWithoutConditionDefaultsToTrue(t *testing.T) {
	prog, sink := parse(t, "for (;;) print 1;")
	assert.True(t, sink.Empty())
	loop, ok := prog.Statements[0].(*ast.WhileStmt)
	assert.True(t, ok)
	lit, ok := loop.Condition.(*ast.Literal)
	assert.True(t, ok)
	assert.Equal(t, "true", lit.Token.Lexeme)
}

func TestParse_InvalidAssignmentTargetRecordsDiagnosticAndContinues(t *testing.T) {
	prog, sink := parse(t, `1 + 2 = 3; print "still parses";`)
	assert.False(t, sink.Empty())
	assert.Len(t, prog.Statements, 2, "an invalid assignment target should not abort the whole parse")
}

func TestParse_TooManyParametersRecordsDiagnosticButKeepsParsing(t *testing.T) {
	prog, sink := parse(t, "fun f(a,b,c,d,e,f,g,h,i) { return a; }")
	assert.False(t, sink.Empty())
	assert.Len(t, prog.Statements, 1, "exceeding the parameter cap should not abort the declaration")
	fn := prog.Statements[0].(*ast.FunctionStmt)
	assert.Len(t, fn.Params, 9)
}

func TestParse_SynchronizesAfterSyntaxErrorToNextStatement(t *testing.T) {
	prog, sink := parse(t, "var ; print 1; print 2;")
	assert.False(t, sink.Empty())
	assert.Len(t, prog.Statements, 2, "the broken var decl is dropped, later statements still parse")
}

func TestParse_BareReturnSynthesizesNilLiteral(t *testing.T) {
	prog, sink := parse(t, "fun f() { return; }")
	assert.True(t, sink.Empty())
	fn := prog.Statements[0].(*ast.FunctionStmt)
	ret := fn.Body[0].(*ast.ReturnStmt)
	assert.NotNil(t, ret.Value)
	lit, ok := ret.Value.(*ast.Literal)
	assert.True(t, ok)
	assert.Equal(t, "nil", lit.Token.Lexeme)
}
