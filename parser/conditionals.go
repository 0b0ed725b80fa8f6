/*
File    : ego/parser/conditionals.go
*/
package parser

import (
	"github.com/akashmaji946/ego/ast"
	"github.com/akashmaji946/ego/token"
)

// parseIfStatement parses `if ( cond ) { ... } [else { ... }]`. There is no
// `else if` chaining in the grammar; an else-if must be written as a
// nested if inside the else block.
func (p *Parser) parseIfStatement() (ast.Node, error) {
	p.advance() // if
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
	consequent, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var alternate []ast.Node
	if p.cur().Kind == token.ELSE {
		p.advance()
		alternate, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStatement{
		Condition:  cond,
		Consequent: consequent,
		Alternate:  alternate,
	}, nil
}
