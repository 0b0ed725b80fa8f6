/*
File    : ego/ast/node.go
*/

// Package ast defines the immutable abstract syntax tree produced by the
// parser and walked by the evaluator. Each node variant below corresponds
// 1:1 to a node class in the original ego source (ast.h), expressed as a
// tagged variant (a marker interface plus concrete struct types) rather
// than the source's class hierarchy with a stringly-typed discriminant.
package ast

import "github.com/akashmaji946/ego/token"

// Node is implemented by every AST node. TokenLiteral exists mainly for
// debugging/error context; the unexported method keeps the node set closed
// to this package.
type Node interface {
	TokenLiteral() string
	node()
}

// DataType tags the literal kind of a Literal node.
type DataType int

const (
	IntType DataType = iota
	FloatType
	StringType
	BoolType
)

// Literal is a scalar literal: an Int, Float, String, or Bool, carried as
// the exact source text and resolved to a runtime value during evaluation.
type Literal struct {
	Value    string
	DataType DataType
}

func (l *Literal) node()                 {}
func (l *Literal) TokenLiteral() string   { return l.Value }

// Identifier names a variable.
type Identifier struct {
	Name string
}

func (i *Identifier) node()               {}
func (i *Identifier) TokenLiteral() string { return i.Name }

// BinaryExpression applies a binary operator token to two operand nodes.
type BinaryExpression struct {
	Left  Node
	Op    token.Token
	Right Node
}

func (b *BinaryExpression) node()               {}
func (b *BinaryExpression) TokenLiteral() string { return b.Op.Literal }

// ArrayExpression constructs an array from its element expressions.
type ArrayExpression struct {
	Elements []Node
}

func (a *ArrayExpression) node()               {}
func (a *ArrayExpression) TokenLiteral() string { return "[" }

// MemberExpression indexes an array-valued identifier by an integer
// expression: object[property].
type MemberExpression struct {
	Object   *Identifier
	Property Node
}

func (m *MemberExpression) node()               {}
func (m *MemberExpression) TokenLiteral() string { return m.Object.Name }

// CallExpression invokes a built-in or user-defined function by name.
type CallExpression struct {
	CalleeName string
	Args       []Node
}

func (c *CallExpression) node()               {}
func (c *CallExpression) TokenLiteral() string { return c.CalleeName }

// LetStatement binds a new variable in the current environment.
type LetStatement struct {
	Ident *Identifier
	Value Node
}

func (l *LetStatement) node()               {}
func (l *LetStatement) TokenLiteral() string { return "let" }

// AssignmentExpression overwrites an existing variable binding.
type AssignmentExpression struct {
	Ident *Identifier
	Value Node
}

func (a *AssignmentExpression) node()               {}
func (a *AssignmentExpression) TokenLiteral() string { return a.Ident.Name }

// IfStatement is a conditional branch; Alternate is nil when there is no
// else clause.
type IfStatement struct {
	Condition   Node
	Consequent  []Node
	Alternate   []Node
}

func (i *IfStatement) node()               {}
func (i *IfStatement) TokenLiteral() string { return "if" }

// WhileStatement repeats Body while Condition is truthy.
type WhileStatement struct {
	Condition Node
	Body      []Node
}

func (w *WhileStatement) node()               {}
func (w *WhileStatement) TokenLiteral() string { return "while" }

// FunctionStatement declares a named user function.
type FunctionStatement struct {
	Ident  *Identifier
	Params []*Identifier
	Body   []Node
}

func (f *FunctionStatement) node()               {}
func (f *FunctionStatement) TokenLiteral() string { return "func" }

// ReturnStatement yields Value as the enclosing function body's result.
type ReturnStatement struct {
	Value Node
}

func (r *ReturnStatement) node()               {}
func (r *ReturnStatement) TokenLiteral() string { return "return" }
