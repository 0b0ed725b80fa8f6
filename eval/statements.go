/*
File    : ego/eval/statements.go
*/
package eval

import (
	"github.com/akashmaji946/ego/ast"
	"github.com/akashmaji946/ego/object"
)

// evalBlock runs a statement list in order, returning early (with its
// second result set to true) the moment a return statement is reached —
// whether that return is at this level or inside a nested if/while
// block. result holds the last statement's value when no return fires,
// so a bare expression at the end of a program or REPL line still
// produces a displayable value.
func (e *Evaluator) evalBlock(stmts []ast.Node, env *object.Environment) (object.Object, bool, error) {
	var result object.Object = object.UnitValue
	for _, stmt := range stmts {
		val, returned, err := e.evalStatement(stmt, env)
		if err != nil {
			return nil, false, err
		}
		if returned {
			return val, true, nil
		}
		result = val
	}
	return result, false, nil
}

func (e *Evaluator) evalStatement(node ast.Node, env *object.Environment) (object.Object, bool, error) {
	switch n := node.(type) {
	case *ast.LetStatement:
		if env.Has(n.Ident.Name) {
			return nil, false, newEvalError("variable already defined: %s", n.Ident.Name)
		}
		val, err := e.evalExpr(n.Value, env)
		if err != nil {
			return nil, false, err
		}
		env.Set(n.Ident.Name, val)
		return object.UnitValue, false, nil

	case *ast.AssignmentExpression:
		if !env.Has(n.Ident.Name) {
			return nil, false, newEvalError("variable not defined: %s", n.Ident.Name)
		}
		val, err := e.evalExpr(n.Value, env)
		if err != nil {
			return nil, false, err
		}
		env.Set(n.Ident.Name, val)
		return object.UnitValue, false, nil

	case *ast.IfStatement:
		cond, err := e.evalExpr(n.Condition, env)
		if err != nil {
			return nil, false, err
		}
		if cond.Truthy() {
			return e.evalBlock(n.Consequent, env)
		}
		if n.Alternate != nil {
			return e.evalBlock(n.Alternate, env)
		}
		return object.UnitValue, false, nil

	case *ast.WhileStatement:
		for {
			cond, err := e.evalExpr(n.Condition, env)
			if err != nil {
				return nil, false, err
			}
			if !cond.Truthy() {
				return object.UnitValue, false, nil
			}
			val, returned, err := e.evalBlock(n.Body, env)
			if err != nil {
				return nil, false, err
			}
			if returned {
				return val, true, nil
			}
		}

	case *ast.FunctionStatement:
		if env.HasFunc(n.Ident.Name) {
			return nil, false, newEvalError("function already defined: %s", n.Ident.Name)
		}
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = p.Name
		}
		env.SetFunc(n.Ident.Name, &object.Function{Params: params, Body: n.Body})
		return object.UnitValue, false, nil

	case *ast.ReturnStatement:
		if n.Value == nil {
			return object.UnitValue, true, nil
		}
		val, err := e.evalExpr(n.Value, env)
		if err != nil {
			return nil, false, err
		}
		return val, true, nil

	default:
		// A bare expression used as a statement: a call for its side
		// effects (print(x);) or, in the REPL, a value to display.
		val, err := e.evalExpr(node, env)
		if err != nil {
			return nil, false, err
		}
		return val, false, nil
	}
}
