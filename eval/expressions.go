/*
File    : ego/eval/expressions.go
*/
package eval

import (
	"strconv"

	"github.com/akashmaji946/ego/ast"
	"github.com/akashmaji946/ego/object"
)

func (e *Evaluator) evalExpr(node ast.Node, env *object.Environment) (object.Object, error) {
	switch n := node.(type) {
	case *ast.Literal:
		return evalLiteral(n)

	case *ast.Identifier:
		val, ok := env.Get(n.Name)
		if !ok {
			return nil, newEvalError("undefined identifier: %s", n.Name)
		}
		return val, nil

	case *ast.ArrayExpression:
		elems := make([]object.Object, len(n.Elements))
		for i, el := range n.Elements {
			val, err := e.evalExpr(el, env)
			if err != nil {
				return nil, err
			}
			elems[i] = val
		}
		return &object.Array{Elements: elems}, nil

	case *ast.MemberExpression:
		return e.evalMemberExpression(n, env)

	case *ast.BinaryExpression:
		return e.evalBinaryExpression(n, env)

	case *ast.CallExpression:
		return e.evalCallExpression(n, env)

	default:
		return nil, newEvalError("cannot evaluate %T as an expression", node)
	}
}

func evalLiteral(n *ast.Literal) (object.Object, error) {
	switch n.DataType {
	case ast.IntType:
		v, err := strconv.ParseInt(n.Value, 10, 64)
		if err != nil {
			return nil, newEvalError("invalid integer literal %q", n.Value)
		}
		return &object.Int{Value: v}, nil
	case ast.FloatType:
		v, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, newEvalError("invalid float literal %q", n.Value)
		}
		return &object.Float{Value: v}, nil
	case ast.StringType:
		return &object.String{Value: n.Value}, nil
	case ast.BoolType:
		return &object.Bool{Value: n.Value == "true"}, nil
	default:
		return nil, newEvalError("literal has unknown data type")
	}
}

func (e *Evaluator) evalMemberExpression(n *ast.MemberExpression, env *object.Environment) (object.Object, error) {
	obj, ok := env.Get(n.Object.Name)
	if !ok {
		return nil, newEvalError("undefined identifier: %s", n.Object.Name)
	}
	arr, ok := obj.(*object.Array)
	if !ok {
		return nil, newEvalError("cannot index into %s value %q", obj.Type(), n.Object.Name)
	}
	idxObj, err := e.evalExpr(n.Property, env)
	if err != nil {
		return nil, err
	}
	idx, ok := idxObj.(*object.Int)
	if !ok {
		return nil, newEvalError("array index must be an int, got %s", idxObj.Type())
	}
	if idx.Value < 0 || int(idx.Value) >= len(arr.Elements) {
		return nil, newEvalError("index out of bounds: %d", idx.Value)
	}
	return arr.Elements[idx.Value], nil
}

// evalCallExpression resolves a call by name, checking builtins first so
// a builtin can never be shadowed by a same-named user function. User
// function calls get a brand new Environment containing only their own
// parameter bindings — no access to the caller's variables and no
// closure over the environment the function was declared in (spec.md
// §9).
func (e *Evaluator) evalCallExpression(n *ast.CallExpression, env *object.Environment) (object.Object, error) {
	if e.builtins != nil {
		if fn, ok := e.builtins.Lookup(n.CalleeName); ok {
			return fn(n, env, e.evalExpr)
		}
	}

	fn, ok := env.GetFunc(n.CalleeName)
	if !ok {
		return nil, newEvalError("undefined identifier: %s", n.CalleeName)
	}
	if len(n.Args) != len(fn.Params) {
		return nil, newEvalError("function %q expects %d argument(s), got %d", n.CalleeName, len(fn.Params), len(n.Args))
	}

	callEnv := object.New()
	for i, param := range fn.Params {
		val, err := e.evalExpr(n.Args[i], env)
		if err != nil {
			return nil, err
		}
		callEnv.Set(param, val)
	}
	val, returned, err := e.evalBlock(fn.Body, callEnv)
	if err != nil {
		return nil, err
	}
	if !returned {
		return object.UnitValue, nil
	}
	return val, nil
}
