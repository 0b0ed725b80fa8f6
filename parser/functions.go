/*
File    : ego/parser/functions.go
*/
package parser

import (
	"github.com/akashmaji946/ego/ast"
	"github.com/akashmaji946/ego/token"
)

// parseFunctionStatement parses `func name ( params ) { body }`.
func (p *Parser) parseFunctionStatement() (ast.Node, error) {
	p.advance() // func
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var params []*ast.Identifier
	for p.cur().Kind != token.RPAREN {
		paramTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		params = append(params, &ast.Identifier{Name: paramTok.Literal})
		if p.cur().Kind == token.COMMA {
			p.advance()
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionStatement{
		Ident:  &ast.Identifier{Name: nameTok.Literal},
		Params: params,
		Body:   body,
	}, nil
}

// parseCallExpression parses the `( args )` suffix of a call whose callee
// name has already been consumed by the caller.
func (p *Parser) parseCallExpression(name string) (ast.Node, error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Node
	for p.cur().Kind != token.RPAREN {
		arg, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur().Kind == token.COMMA {
			p.advance()
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.CallExpression{CalleeName: name, Args: args}, nil
}
