/*
File    : ego/lexer/lexer.go
*/

// Package lexer tokenizes ego source text into a stream of token.Token,
// one character of lookahead at a time.
package lexer

import (
	"fmt"

	"github.com/akashmaji946/ego/token"
)

// Lexer scans a source string and produces tokens on demand via NextToken.
// It holds no state beyond its cursor; the produced tokens are immutable.
type Lexer struct {
	src     string
	pos     int // position of current in src
	readPos int // position after current
	current byte
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	l := &Lexer{src: src}
	l.readChar()
	return l
}

// peekChar returns the byte after the current one without consuming it, or
// 0 at end of input.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.src) {
		return 0
	}
	return l.src[l.readPos]
}

// readChar advances the cursor by one byte.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.src) {
		l.current = 0
	} else {
		l.current = l.src[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func (l *Lexer) skipWhitespace() {
	for l.current == ' ' || l.current == '\t' || l.current == '\n' || l.current == '\r' {
		l.readChar()
	}
}

// readNumber scans a run of digits with at most one '.'. If leadingMinus is
// set, the '-' already sitting at l.current is consumed as part of the
// literal (this is how the scanner distinguishes a negative number from
// the Minus operator: only '-' immediately followed by a digit starts a
// number).
func (l *Lexer) readNumber(leadingMinus bool) string {
	start := l.pos
	if leadingMinus {
		l.readChar()
	}
	dotSeen := false
	for isDigit(l.current) || (l.current == '.' && !dotSeen) {
		if l.current == '.' {
			dotSeen = true
		}
		l.readChar()
	}
	return l.src[start:l.pos]
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.current) || l.current == '_' {
		l.readChar()
	}
	return l.src[start:l.pos]
}

// readString consumes the body of a string literal (the lexer must be
// sitting on the opening quote). It returns the unescaped body and whether
// a closing quote was found before end of input.
func (l *Lexer) readString() (string, bool) {
	start := l.pos + 1
	for {
		l.readChar()
		if l.current == '"' {
			str := l.src[start:l.pos]
			l.readChar()
			return str, true
		}
		if l.current == 0 {
			return l.src[start:l.pos], false
		}
	}
}

// NextToken scans and returns the next token, advancing past it. Reaching
// end of input yields an EOF token on every subsequent call. An
// unterminated string or an unrecognized byte is reported through ok via
// the returned bool, letting the caller raise a scanning error.
func (l *Lexer) NextToken() (token.Token, bool) {
	l.skipWhitespace()

	switch l.current {
	case ';':
		l.readChar()
		return token.New(token.SEMICOLON, ";"), true
	case ',':
		l.readChar()
		return token.New(token.COMMA, ","), true
	case '+':
		l.readChar()
		return token.New(token.PLUS, "+"), true
	case '-':
		if isDigit(l.peekChar()) {
			return token.New(token.NUMBER, l.readNumber(true)), true
		}
		l.readChar()
		return token.New(token.MINUS, "-"), true
	case '/':
		l.readChar()
		return token.New(token.DIV, "/"), true
	case '*':
		l.readChar()
		return token.New(token.MUL, "*"), true
	case '^':
		l.readChar()
		return token.New(token.POW, "^"), true
	case '%':
		l.readChar()
		return token.New(token.MOD, "%"), true
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.New(token.EQUAL, "=="), true
		}
		l.readChar()
		return token.New(token.ASSIGN, "="), true
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.New(token.NOT_EQUAL, "!="), true
		}
		l.readChar()
		return token.New(token.BANG, "!"), true
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.New(token.LTE, "<="), true
		}
		l.readChar()
		return token.New(token.LT, "<"), true
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.New(token.GTE, ">="), true
		}
		l.readChar()
		return token.New(token.GT, ">"), true
	case '(':
		l.readChar()
		return token.New(token.LPAREN, "("), true
	case ')':
		l.readChar()
		return token.New(token.RPAREN, ")"), true
	case '{':
		l.readChar()
		return token.New(token.LBRACE, "{"), true
	case '}':
		l.readChar()
		return token.New(token.RBRACE, "}"), true
	case '[':
		l.readChar()
		return token.New(token.LBRACKET, "["), true
	case ']':
		l.readChar()
		return token.New(token.RBRACKET, "]"), true
	case '"':
		str, ok := l.readString()
		return token.New(token.STRING, str), ok
	case 0:
		return token.New(token.EOF, ""), true
	}

	if isDigit(l.current) {
		return token.New(token.NUMBER, l.readNumber(false)), true
	}
	if isLetter(l.current) {
		ident := l.readIdentifier()
		return token.New(token.LookupIdent(ident), ident), true
	}

	bad := string(l.current)
	l.readChar()
	return token.New(token.EOF, bad), false
}

// ScanAll runs the lexer to completion, returning every token including
// the trailing EOF. It stops and reports an error on the first
// unterminated string or unrecognized byte, matching the source's
// behavior of treating both as a fatal scanning error (spec.md §4.1).
func (l *Lexer) ScanAll() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok, ok := l.NextToken()
		if !ok {
			if tok.Kind == token.STRING {
				return nil, fmt.Errorf("unterminated string literal")
			}
			return nil, fmt.Errorf("unexpected character %q", tok.Literal)
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}
