/*
File    : ego/parser/expressions.go
*/
package parser

import (
	"strings"

	"github.com/akashmaji946/ego/ast"
	"github.com/akashmaji946/ego/token"
)

// parseExpression is the Pratt/precedence-climbing loop: it parses one
// primary operand, then repeatedly folds in infix operators whose
// precedence is at least minPrec.
func (p *Parser) parseExpression(minPrec int) (ast.Node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for token.IsBinaryOp(p.cur().Kind) && precedenceOf(p.cur().Kind) >= minPrec {
		opTok := p.advance()
		nextMin := precedenceOf(opTok.Kind) + 1
		if rightAssociative(opTok.Kind) {
			nextMin = precedenceOf(opTok.Kind)
		}
		right, err := p.parseExpression(nextMin)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Left: left, Op: opTok, Right: right}
	}
	return left, nil
}

// parsePrimary parses a literal, identifier, call, member access, grouped
// expression, or array literal — everything that can start an expression.
func (p *Parser) parsePrimary() (ast.Node, error) {
	tok := p.cur()
	switch tok.Kind {
	case token.NUMBER:
		p.advance()
		dt := ast.IntType
		if strings.ContainsRune(tok.Literal, '.') {
			dt = ast.FloatType
		}
		return &ast.Literal{Value: tok.Literal, DataType: dt}, nil

	case token.STRING:
		p.advance()
		return &ast.Literal{Value: tok.Literal, DataType: ast.StringType}, nil

	case token.TRUE, token.FALSE:
		p.advance()
		return &ast.Literal{Value: tok.Literal, DataType: ast.BoolType}, nil

	case token.LPAREN:
		p.advance()
		expr, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	case token.LBRACKET:
		return p.parseArrayExpression()

	case token.IDENT:
		p.advance()
		switch p.cur().Kind {
		case token.LPAREN:
			return p.parseCallExpression(tok.Literal)
		case token.LBRACKET:
			return p.parseMemberExpression(tok.Literal)
		default:
			return &ast.Identifier{Name: tok.Literal}, nil
		}

	default:
		return nil, newParseError("unexpected token %s (%q)", tok.Kind, tok.Literal)
	}
}
