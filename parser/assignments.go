/*
File    : ego/parser/assignments.go
*/
package parser

import (
	"github.com/akashmaji946/ego/ast"
	"github.com/akashmaji946/ego/token"
)

// parseLetStatement parses `let name = expr ;`.
func (p *Parser) parseLetStatement() (ast.Node, error) {
	p.advance() // let
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	val, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	p.skipSemicolons()
	return &ast.LetStatement{
		Ident: &ast.Identifier{Name: nameTok.Literal},
		Value: val,
	}, nil
}

// parseAssignmentExpression parses `name = expr ;`, rebinding an existing
// variable. It does not declare a new one; that is what let is for.
func (p *Parser) parseAssignmentExpression() (ast.Node, error) {
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	val, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	p.skipSemicolons()
	return &ast.AssignmentExpression{
		Ident: &ast.Identifier{Name: nameTok.Literal},
		Value: val,
	}, nil
}
