package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rulox/internal/diag"
	"rulox/internal/lexer"
	"rulox/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestScan_SingleAndTwoCharTokens(t *testing.T) {
	sink := diag.NewSink()
	toks := lexer.New("!= == <= >= < > = !", sink).Scan()
	assert.True(t, sink.Empty())
	assert.Equal(t, []token.Kind{
		token.BangEqual, token.EqualEqual, token.LessEqual, token.GreaterEqual,
		token.Less, token.Greater, token.Equal, token.Bang, token.EOF,
	}, kinds(toks))
}

func TestScan_LineCommentIsIgnored(t *testing.T) {
	sink := diag.NewSink()
	toks := lexer.New("1 // a comment\n+ 2", sink).Scan()
	assert.Equal(t, []token.Kind{token.Number, token.Plus, token.Number, token.EOF}, kinds(toks))
	assert.Equal(t, 2, toks[2].Line)
}

func TestScan_BlockCommentSpansLines(t *testing.T) {
	sink := diag.NewSink()
	toks := lexer.New("1 /* skip\nme */ + 2;", sink).Scan()
	assert.Equal(t, []token.Kind{token.Number, token.Plus, token.Number, token.Semicolon, token.EOF}, kinds(toks))
}

func TestScan_UnterminatedBlockCommentReportsDiagnostic(t *testing.T) {
	sink := diag.NewSink()
	toks := lexer.New("1 /* never closed", sink).Scan()
	assert.False(t, sink.Empty())
	assert.Contains(t, sink.Lines()[0], "Unterminated comment")
	assert.Equal(t, []token.Kind{token.Number, token.EOF}, kinds(toks))
}

func TestScan_StringLiteralCapturesDequotedText(t *testing.T) {
	sink := diag.NewSink()
	toks := lexer.New(`"hello"`, sink).Scan()
	assert.Len(t, toks, 2)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, "hello", toks[0].Text)
	assert.Equal(t, `"hello"`, toks[0].Lexeme)
}

func TestScan_UnterminatedStringReportsDiagnosticAndStops(t *testing.T) {
	sink := diag.NewSink()
	toks := lexer.New(`"oops`, sink).Scan()
	assert.False(t, sink.Empty())
	assert.Equal(t, []token.Kind{token.EOF}, kinds(toks))
}

func TestScan_NumberWithFractionalPart(t *testing.T) {
	sink := diag.NewSink()
	toks := lexer.New("3.14", sink).Scan()
	assert.Equal(t, 3.14, toks[0].NumberLit)
}

func TestScan_TrailingDotIsNotPartOfNumber(t *testing.T) {
	sink := diag.NewSink()
	toks := lexer.New("1.", sink).Scan()
	assert.Equal(t, []token.Kind{token.Number, token.Dot, token.EOF}, kinds(toks))
	assert.Equal(t, float64(1), toks[0].NumberLit)
}

func TestScan_KeywordsVsIdentifiers(t *testing.T) {
	sink := diag.NewSink()
	toks := lexer.New("var x = fun_name;", sink).Scan()
	assert.Equal(t, []token.Kind{
		token.Var, token.Identifier, token.Equal, token.Identifier, token.Semicolon, token.EOF,
	}, kinds(toks))
}

func TestScan_UnexpectedCharacterContinuesScanning(t *testing.T) {
	sink := diag.NewSink()
	toks := lexer.New("1 @ 2", sink).Scan()
	assert.False(t, sink.Empty())
	assert.Equal(t, []token.Kind{token.Number, token.Number, token.EOF}, kinds(toks))
}

func TestScan_ColumnResetsOnNewline(t *testing.T) {
	sink := diag.NewSink()
	toks := lexer.New("1\n22", sink).Scan()
	assert.Equal(t, 0, toks[0].Column)
	assert.Equal(t, 0, toks[1].Column)
	assert.Equal(t, 2, toks[1].Line)
}
