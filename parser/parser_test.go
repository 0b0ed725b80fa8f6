/*
File    : ego/parser/parser_test.go
*/
package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/ego/ast"
	"github.com/akashmaji946/ego/parser"
)

func TestParse_LetAndArithmeticPrecedence(t *testing.T) {
	nodes, err := parser.Parse("let x = 1 + 2 * 3;")
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	let, ok := nodes[0].(*ast.LetStatement)
	require.True(t, ok)
	assert.Equal(t, "x", let.Ident.Name)

	bin, ok := let.Value.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op.Literal)

	right, ok := bin.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "*", right.Op.Literal)
}

func TestParse_PowerIsRightAssociative(t *testing.T) {
	nodes, err := parser.Parse("let x = 2 ^ 3 ^ 2;")
	require.NoError(t, err)
	let := nodes[0].(*ast.LetStatement)
	bin := let.Value.(*ast.BinaryExpression)

	// 2 ^ (3 ^ 2): the right operand must itself be a '^' expression.
	_, leftIsBinary := bin.Left.(*ast.BinaryExpression)
	assert.False(t, leftIsBinary)
	_, rightIsBinary := bin.Right.(*ast.BinaryExpression)
	assert.True(t, rightIsBinary)
}

func TestParse_IfElse(t *testing.T) {
	src := `if (x < 10) { let y = 1; } else { let y = 2; }`
	nodes, err := parser.Parse(src)
	require.NoError(t, err)
	stmt, ok := nodes[0].(*ast.IfStatement)
	require.True(t, ok)
	assert.Len(t, stmt.Consequent, 1)
	assert.Len(t, stmt.Alternate, 1)
}

func TestParse_WhileLoop(t *testing.T) {
	nodes, err := parser.Parse("while (i < 10) { i = i + 1; }")
	require.NoError(t, err)
	stmt, ok := nodes[0].(*ast.WhileStatement)
	require.True(t, ok)
	assert.Len(t, stmt.Body, 1)
}

func TestParse_FunctionDeclarationAndCall(t *testing.T) {
	src := `
		func add(a, b) {
			return a + b;
		}
		let r = add(1, 2);
	`
	nodes, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	fn, ok := nodes[0].(*ast.FunctionStatement)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Ident.Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)

	let := nodes[1].(*ast.LetStatement)
	call, ok := let.Value.(*ast.CallExpression)
	require.True(t, ok)
	assert.Equal(t, "add", call.CalleeName)
	assert.Len(t, call.Args, 2)
}

func TestParse_ArrayLiteralAndMemberExpression(t *testing.T) {
	nodes, err := parser.Parse("let xs = [1, 2, 3]; let first = xs[0];")
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	arr := nodes[0].(*ast.LetStatement).Value.(*ast.ArrayExpression)
	assert.Len(t, arr.Elements, 3)

	member := nodes[1].(*ast.LetStatement).Value.(*ast.MemberExpression)
	assert.Equal(t, "xs", member.Object.Name)
}

func TestParse_NegativeNumberLiteral(t *testing.T) {
	nodes, err := parser.Parse("let x = -5;")
	require.NoError(t, err)
	lit := nodes[0].(*ast.LetStatement).Value.(*ast.Literal)
	assert.Equal(t, "-5", lit.Value)
	assert.Equal(t, ast.IntType, lit.DataType)
}

func TestParse_UnexpectedTokenIsParseError(t *testing.T) {
	_, err := parser.Parse("let = 5;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error while parsing: ")
}

func TestParse_UnterminatedStringIsParseError(t *testing.T) {
	_, err := parser.Parse(`let x = "hello;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error while parsing: ")
}

func TestParse_SemicolonIsNotRequired(t *testing.T) {
	nodes, err := parser.Parse("let x = 5")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
}

func TestParse_MissingClosingBraceIsParseError(t *testing.T) {
	_, err := parser.Parse("while (1) { let x = 1;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error while parsing: ")
}
