/*
File    : ego/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/akashmaji946/ego/token"
	"github.com/stretchr/testify/assert"
)

type lexCase struct {
	Input    string
	Expected []token.Token
}

func drain(t *testing.T, l *Lexer) []token.Token {
	t.Helper()
	var toks []token.Token
	for {
		tok, ok := l.NextToken()
		assert.True(t, ok, "unexpected scan failure at token %v", tok)
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func TestLexer_Operators(t *testing.T) {
	cases := []lexCase{
		{
			Input: `+ - * / % ^ = == ! != < <= > >=`,
			Expected: []token.Token{
				token.New(token.PLUS, "+"),
				token.New(token.MINUS, "-"),
				token.New(token.MUL, "*"),
				token.New(token.DIV, "/"),
				token.New(token.MOD, "%"),
				token.New(token.POW, "^"),
				token.New(token.ASSIGN, "="),
				token.New(token.EQUAL, "=="),
				token.New(token.BANG, "!"),
				token.New(token.NOT_EQUAL, "!="),
				token.New(token.LT, "<"),
				token.New(token.LTE, "<="),
				token.New(token.GT, ">"),
				token.New(token.GTE, ">="),
				token.New(token.EOF, ""),
			},
		},
		{
			Input: `( ) { } [ ] , ;`,
			Expected: []token.Token{
				token.New(token.LPAREN, "("),
				token.New(token.RPAREN, ")"),
				token.New(token.LBRACE, "{"),
				token.New(token.RBRACE, "}"),
				token.New(token.LBRACKET, "["),
				token.New(token.RBRACKET, "]"),
				token.New(token.COMMA, ","),
				token.New(token.SEMICOLON, ";"),
				token.New(token.EOF, ""),
			},
		},
	}

	for _, c := range cases {
		toks := drain(t, New(c.Input))
		assert.Equal(t, c.Expected, toks)
	}
}

func TestLexer_KeywordsAndIdentifiers(t *testing.T) {
	toks := drain(t, New(`let x = foo_bar; if else while return func true false and or`))
	assert.Equal(t, []token.Token{
		token.New(token.LET, "let"),
		token.New(token.IDENT, "x"),
		token.New(token.ASSIGN, "="),
		token.New(token.IDENT, "foo_bar"),
		token.New(token.SEMICOLON, ";"),
		token.New(token.IF, "if"),
		token.New(token.ELSE, "else"),
		token.New(token.WHILE, "while"),
		token.New(token.RETURN, "return"),
		token.New(token.FUNCTION, "func"),
		token.New(token.TRUE, "true"),
		token.New(token.FALSE, "false"),
		token.New(token.AND, "and"),
		token.New(token.OR, "or"),
		token.New(token.EOF, ""),
	}, toks)
}

func TestLexer_NumberLiterals(t *testing.T) {
	toks := drain(t, New(`42 3.14 -7 -2.5 5 - 2`))
	assert.Equal(t, []token.Token{
		token.New(token.NUMBER, "42"),
		token.New(token.NUMBER, "3.14"),
		token.New(token.NUMBER, "-7"),
		token.New(token.NUMBER, "-2.5"),
		token.New(token.NUMBER, "5"),
		token.New(token.MINUS, "-"),
		token.New(token.NUMBER, "2"),
		token.New(token.EOF, ""),
	}, toks)
}

func TestLexer_StringLiteral(t *testing.T) {
	toks := drain(t, New(`"hello world" "foo1"`))
	assert.Equal(t, []token.Token{
		token.New(token.STRING, "hello world"),
		token.New(token.STRING, "foo1"),
		token.New(token.EOF, ""),
	}, toks)
}

func TestLexer_UnterminatedString(t *testing.T) {
	l := New(`"unterminated`)
	_, ok := l.NextToken()
	assert.False(t, ok)
}

func TestLexer_EmptyInput(t *testing.T) {
	toks := drain(t, New(``))
	assert.Equal(t, []token.Token{token.New(token.EOF, "")}, toks)
}
