/*
File    : ego/parser/collections.go
*/
package parser

import (
	"github.com/akashmaji946/ego/ast"
	"github.com/akashmaji946/ego/token"
)

// parseArrayExpression parses a `[ e1, e2, ... ]` literal.
func (p *Parser) parseArrayExpression() (ast.Node, error) {
	if _, err := p.expect(token.LBRACKET); err != nil {
		return nil, err
	}
	var elems []ast.Node
	for p.cur().Kind != token.RBRACKET {
		el, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)
		if p.cur().Kind == token.COMMA {
			p.advance()
		}
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.ArrayExpression{Elements: elems}, nil
}

// parseMemberExpression parses the `[ index ]` suffix of an
// already-consumed identifier: object[property].
func (p *Parser) parseMemberExpression(name string) (ast.Node, error) {
	if _, err := p.expect(token.LBRACKET); err != nil {
		return nil, err
	}
	prop, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.MemberExpression{Object: &ast.Identifier{Name: name}, Property: prop}, nil
}
