/*
File    : ego/parser/parser.go
*/

// Package parser turns a token stream into the AST defined in package ast,
// using a recursive-descent parser for statements and a Pratt
// (precedence-climbing) parser for expressions — the same split the
// source's parser.cpp uses, adapted to Go's error-return style instead of
// thrown exceptions.
package parser

import (
	"github.com/akashmaji946/ego/ast"
	"github.com/akashmaji946/ego/lexer"
	"github.com/akashmaji946/ego/token"
)

// Parser walks a fully-scanned token slice. Scanning the whole program up
// front (rather than lexing lazily token-by-token) keeps lookahead trivial
// and lets a scanning error surface as a ParseError before any parsing work
// begins.
type Parser struct {
	tokens []token.Token
	pos    int
}

// Parse scans and parses a complete ego program, returning its top-level
// statement list.
func Parse(src string) ([]ast.Node, error) {
	toks, err := lexer.New(src).ScanAll()
	if err != nil {
		return nil, newParseError("%s", err.Error())
	}
	p := &Parser{tokens: toks}
	return p.parseProgram()
}

func (p *Parser) cur() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peek() token.Token {
	if p.pos+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) advance() token.Token {
	tok := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if p.cur().Kind != kind {
		return token.Token{}, newParseError("expected %s, got %s (%q)", kind, p.cur().Kind, p.cur().Literal)
	}
	return p.advance(), nil
}

func (p *Parser) atEOF() bool {
	return p.cur().Kind == token.EOF
}

func (p *Parser) parseProgram() ([]ast.Node, error) {
	var nodes []ast.Node
	for !p.atEOF() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, stmt)
	}
	return nodes, nil
}
