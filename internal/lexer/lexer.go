// Package lexer turns source text into a token stream. It is modeled on
// the teacher's byte-cursor scanner: a current index/byte plus one-token
// lookahead helpers, rather than a rune-based reader.
package lexer

import (
	"fmt"
	"strconv"

	"rulox/internal/diag"
	"rulox/internal/token"
)

// Scanner walks source bytes and produces tokens, recording lexical errors
// into a diag.Sink instead of aborting: an unterminated string or stray
// character does not stop the scan.
type Scanner struct {
	source []byte
	idx    int  // index of the current character
	ch     byte // current character
	line   int
	column int

	sink *diag.Sink
}

func New(source string, sink *diag.Sink) *Scanner {
	return &Scanner{
		source: []byte(source),
		idx:    -1,
		line:   1,
		column: -1,
		sink:   sink,
	}
}

// Returns false at end of input.
func (s *Scanner) next() bool {
	if s.idx >= len(s.source)-1 {
		return false
	}
	s.idx++
	s.ch = s.source[s.idx]
	s.column++
	return true
}

func (s *Scanner) peek() byte {
	if s.idx >= len(s.source)-1 {
		return 0
	}
	return s.source[s.idx+1]
}

func (s *Scanner) peekTwo() byte {
	if s.idx >= len(s.source)-2 {
		return 0
	}
	return s.source[s.idx+2]
}

func (s *Scanner) newline() {
	s.line++
	s.column = -1
}

// Scan consumes the whole source and returns its token stream, always
// terminated by exactly one EOF token.
func (s *Scanner) Scan() []token.Token {
	toks := make([]token.Token, 0, len(s.source)/4+1)

	for s.next() {
		startLine, startCol := s.line, s.column

		switch s.ch {
		case ' ', '\t', '\r':
			// skip
		case '\n':
			s.newline()
		case '(':
			toks = append(toks, s.simple(token.LeftParen, startLine, startCol))
		case ')':
			toks = append(toks, s.simple(token.RightParen, startLine, startCol))
		case '{':
			toks = append(toks, s.simple(token.LeftBrace, startLine, startCol))
		case '}':
			toks = append(toks, s.simple(token.RightBrace, startLine, startCol))
		case ',':
			toks = append(toks, s.simple(token.Comma, startLine, startCol))
		case '.':
			toks = append(toks, s.simple(token.Dot, startLine, startCol))
		case '-':
			toks = append(toks, s.simple(token.Minus, startLine, startCol))
		case '+':
			toks = append(toks, s.simple(token.Plus, startLine, startCol))
		case ';':
			toks = append(toks, s.simple(token.Semicolon, startLine, startCol))
		case '*':
			toks = append(toks, s.simple(token.Star, startLine, startCol))
		case '/':
			switch {
			case s.peek() == '/':
				s.lineComment()
			case s.peek() == '*':
				s.blockComment(startLine)
			default:
				toks = append(toks, s.simple(token.Slash, startLine, startCol))
			}
		case '=':
			if s.peek() == '=' {
				s.next()
				toks = append(toks, token.Token{Kind: token.EqualEqual, Lexeme: "==", Line: startLine, Column: startCol})
			} else {
				toks = append(toks, s.simple(token.Equal, startLine, startCol))
			}
		case '!':
			if s.peek() == '=' {
				s.next()
				toks = append(toks, token.Token{Kind: token.BangEqual, Lexeme: "!=", Line: startLine, Column: startCol})
			} else {
				toks = append(toks, s.simple(token.Bang, startLine, startCol))
			}
		case '<':
			if s.peek() == '=' {
				s.next()
				toks = append(toks, token.Token{Kind: token.LessEqual, Lexeme: "<=", Line: startLine, Column: startCol})
			} else {
				toks = append(toks, s.simple(token.Less, startLine, startCol))
			}
		case '>':
			if s.peek() == '=' {
				s.next()
				toks = append(toks, token.Token{Kind: token.GreaterEqual, Lexeme: ">=", Line: startLine, Column: startCol})
			} else {
				toks = append(toks, s.simple(token.Greater, startLine, startCol))
			}
		case '"':
			if tok, ok := s.stringLiteral(startLine, startCol); ok {
				toks = append(toks, tok)
			}
		default:
			switch {
			case isDigit(s.ch):
				toks = append(toks, s.numberLiteral(startLine, startCol))
			case isAlpha(s.ch):
				toks = append(toks, s.identifier(startLine, startCol))
			default:
				s.sink.Lexical(s.line, fmt.Sprintf("Unexpected character: %s", string(s.ch)))
			}
		}
	}

	toks = append(toks, token.Token{Kind: token.EOF, Line: s.line, Column: s.column + 1})
	return toks
}

func (s *Scanner) simple(kind token.Kind, line, col int) token.Token {
	return token.Token{Kind: kind, Lexeme: string(s.ch), Line: line, Column: col}
}

func (s *Scanner) lineComment() {
	for s.peek() != '\n' && s.next() {
	}
}

// blockComment consumes a /* ... */ comment. It is nesting-unaware: the
// first */ closes it, even if another /* was seen since. Running off the
// end of input without a closing */ is a LexicalError, same as an
// unterminated string.
func (s *Scanner) blockComment(startLine int) {
	s.next() // consume '*'
	for {
		if !s.next() {
			s.sink.Lexical(startLine, "Unterminated comment.")
			return
		}
		if s.ch == '\n' {
			s.newline()
			continue
		}
		if s.ch == '*' && s.peek() == '/' {
			s.next()
			return
		}
	}
}

func (s *Scanner) stringLiteral(startLine, startCol int) (token.Token, bool) {
	contentStart := s.idx + 1

	for {
		if !s.next() {
			s.sink.Lexical(s.line, "Unterminated string.")
			return token.Token{}, false
		}
		if s.ch == '"' {
			break
		}
		if s.ch == '\n' {
			s.newline()
		}
	}

	text := string(s.source[contentStart:s.idx])
	lexeme := string(s.source[contentStart-1 : s.idx+1])
	return token.Token{Kind: token.String, Lexeme: lexeme, Text: text, Line: startLine, Column: startCol}, true
}

// numberLiteral consumes digits, then a fractional part only if the '.' is
// itself followed by a digit (a bare trailing '.' is left for the dot
// token, since '.' also begins the reserved-but-unused property access
// grammar).
func (s *Scanner) numberLiteral(startLine, startCol int) token.Token {
	start := s.idx

	for isDigit(s.peek()) {
		s.next()
	}
	if s.peek() == '.' && isDigit(s.peekTwo()) {
		s.next()
		for isDigit(s.peek()) {
			s.next()
		}
	}

	lexeme := string(s.source[start : s.idx+1])
	n, _ := strconv.ParseFloat(lexeme, 64)
	return token.Token{Kind: token.Number, Lexeme: lexeme, NumberLit: n, Line: startLine, Column: startCol}
}

func (s *Scanner) identifier(startLine, startCol int) token.Token {
	start := s.idx

	for isAlphaNumeric(s.peek()) {
		s.next()
	}

	lexeme := string(s.source[start : s.idx+1])
	if kind, ok := token.Reserved[lexeme]; ok {
		return token.Token{Kind: kind, Lexeme: lexeme, Line: startLine, Column: startCol}
	}
	return token.Token{Kind: token.Identifier, Lexeme: lexeme, Text: lexeme, Line: startLine, Column: startCol}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
