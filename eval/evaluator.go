/*
File    : ego/eval/evaluator.go
*/

// Package eval tree-walks the AST produced by package parser, computing
// object.Object values against an object.Environment. It knows nothing
// about source text or tokens; it only ever sees ast.Node.
package eval

import (
	"github.com/akashmaji946/ego/ast"
	"github.com/akashmaji946/ego/builtin"
	"github.com/akashmaji946/ego/object"
)

// Evaluator walks ast.Node trees. It is stateless beyond its builtin
// registry, which is injected at construction so the evaluator package
// does not need to import any of the concrete builtin implementations
// (generic functions, terminal graphics) directly.
type Evaluator struct {
	builtins *builtin.Registry
}

// New creates an Evaluator backed by the given builtin registry. A nil
// registry is valid and simply means no builtins are available — every
// call resolves only against user-defined functions.
func New(builtins *builtin.Registry) *Evaluator {
	return &Evaluator{builtins: builtins}
}

// Eval runs a full statement list against env and returns the value of
// the first return statement it hits. When no return statement runs, it
// returns the last statement's value rather than Unit; the result is Unit
// only for an empty list or a last statement that yields no value.
func (e *Evaluator) Eval(program []ast.Node, env *object.Environment) (object.Object, error) {
	val, _, err := e.evalBlock(program, env)
	if err != nil {
		return nil, err
	}
	return val, nil
}

// EvalExpression evaluates a single expression node against env.
func (e *Evaluator) EvalExpression(node ast.Node, env *object.Environment) (object.Object, error) {
	return e.evalExpr(node, env)
}
