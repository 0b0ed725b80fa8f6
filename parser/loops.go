/*
File    : ego/parser/loops.go
*/
package parser

import (
	"github.com/akashmaji946/ego/ast"
	"github.com/akashmaji946/ego/token"
)

// parseWhileStatement parses `while ( cond ) { ... }`.
func (p *Parser) parseWhileStatement() (ast.Node, error) {
	p.advance() // while
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Condition: cond, Body: body}, nil
}
