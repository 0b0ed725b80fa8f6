/*
File    : ego/eval/operators.go
*/
package eval

import (
	"math"

	"github.com/akashmaji946/ego/ast"
	"github.com/akashmaji946/ego/object"
	"github.com/akashmaji946/ego/token"
)

// evalBinaryExpression evaluates both operands eagerly — and and or do
// not short-circuit, matching the canonical behavior recorded for this
// Open Question (spec.md §6): a call with a side effect on the right of
// `and`/`or` always runs.
func (e *Evaluator) evalBinaryExpression(n *ast.BinaryExpression, env *object.Environment) (object.Object, error) {
	left, err := e.evalExpr(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(n.Right, env)
	if err != nil {
		return nil, err
	}

	switch n.Op.Kind {
	case token.AND:
		return &object.Bool{Value: left.Truthy() && right.Truthy()}, nil
	case token.OR:
		return &object.Bool{Value: left.Truthy() || right.Truthy()}, nil
	case token.PLUS:
		return evalPlus(left, right)
	case token.MINUS, token.MUL, token.DIV, token.MOD, token.POW,
		token.LT, token.LTE, token.GT, token.GTE,
		token.EQUAL, token.NOT_EQUAL:
		return evalNumericOp(n.Op.Kind, left, right)
	default:
		return nil, newEvalError("unsupported operator %q", n.Op.Literal)
	}
}

func asFloat(o object.Object) (float64, bool) {
	switch v := o.(type) {
	case *object.Int:
		return float64(v.Value), true
	case *object.Float:
		return v.Value, true
	default:
		return 0, false
	}
}

// evalPlus implements `+` over either two numbers or a string-concat: any
// String operand forces the whole expression to concatenate as text,
// using the other operand's Inspect() form (so `"n=" + 3` yields "n=3").
func evalPlus(left, right object.Object) (object.Object, error) {
	ls, lIsStr := left.(*object.String)
	rs, rIsStr := right.(*object.String)
	if lIsStr || rIsStr {
		l, r := left.Inspect(), right.Inspect()
		if lIsStr {
			l = ls.Value
		}
		if rIsStr {
			r = rs.Value
		}
		return &object.String{Value: l + r}, nil
	}
	return evalNumericOp(token.PLUS, left, right)
}

// evalNumericOp implements every binary operator except `+`/`and`/`or` —
// arithmetic, relational comparison, and `==`/`!=` alike — dispatching on
// operand type per spec.md §4.4.1's coercion ladder: a Float on either
// side promotes both to Float; else an Int on either side promotes both
// to Int; else a Bool on either side coerces both through truthiness
// (true=1, false=0) and runs as Int. Two Strings (or Arrays) reach none
// of those rungs and fall through to "unknown operator" — `==`/`!=` have
// no String/Array branch here, matching the source's evaluate_operator,
// which defines no comparison path for them beyond `+`'s concatenation.
func evalNumericOp(op token.Kind, left, right object.Object) (object.Object, error) {
	if isFloat(left) || isFloat(right) {
		lf, lok := asFloat(left)
		rf, rok := asFloat(right)
		if !lok || !rok {
			return nil, newEvalError("operator %q requires numeric operands, got %s and %s", op, left.Type(), right.Type())
		}
		return evalFloatOp(op, lf, rf)
	}

	_, lIsInt := left.(*object.Int)
	_, rIsInt := right.(*object.Int)
	if lIsInt || rIsInt {
		l, lok := asInt(left)
		r, rok := asInt(right)
		if !lok || !rok {
			return nil, newEvalError("operator %q requires numeric operands, got %s and %s", op, left.Type(), right.Type())
		}
		return evalIntOp(op, l, r)
	}

	_, lIsBool := left.(*object.Bool)
	_, rIsBool := right.(*object.Bool)
	if lIsBool || rIsBool {
		return evalIntOp(op, boolToInt(left.Truthy()), boolToInt(right.Truthy()))
	}

	return nil, newEvalError("unknown operator %q for %s and %s", op, left.Type(), right.Type())
}

func isFloat(o object.Object) bool {
	_, ok := o.(*object.Float)
	return ok
}

func asInt(o object.Object) (int64, bool) {
	switch v := o.(type) {
	case *object.Int:
		return v.Value, true
	case *object.Bool:
		return boolToInt(v.Value), true
	default:
		return 0, false
	}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func evalIntOp(op token.Kind, l, r int64) (object.Object, error) {
	switch op {
	case token.PLUS:
		return &object.Int{Value: l + r}, nil
	case token.MINUS:
		return &object.Int{Value: l - r}, nil
	case token.MUL:
		return &object.Int{Value: l * r}, nil
	case token.DIV:
		if r == 0 {
			return nil, newEvalError("division by zero")
		}
		return &object.Int{Value: l / r}, nil
	case token.MOD:
		if r == 0 {
			return nil, newEvalError("division by zero")
		}
		return &object.Int{Value: l % r}, nil
	case token.POW:
		return &object.Int{Value: intPow(l, r)}, nil
	case token.LT:
		return &object.Bool{Value: l < r}, nil
	case token.LTE:
		return &object.Bool{Value: l <= r}, nil
	case token.GT:
		return &object.Bool{Value: l > r}, nil
	case token.GTE:
		return &object.Bool{Value: l >= r}, nil
	case token.EQUAL:
		return &object.Bool{Value: l == r}, nil
	case token.NOT_EQUAL:
		return &object.Bool{Value: l != r}, nil
	default:
		return nil, newEvalError("unsupported integer operator %q", op)
	}
}

// intPow computes l^r for integer operands. A negative exponent falls
// back to math.Pow truncated to int64 rather than erroring, per the Open
// Question decision (spec.md §6): the source gives int^int no separate
// rational result, so this is the closest faithful behavior to "do what
// the float path would do."
func intPow(l, r int64) int64 {
	if r < 0 {
		return int64(math.Pow(float64(l), float64(r)))
	}
	result := int64(1)
	for i := int64(0); i < r; i++ {
		result *= l
	}
	return result
}

func evalFloatOp(op token.Kind, l, r float64) (object.Object, error) {
	switch op {
	case token.PLUS:
		return &object.Float{Value: l + r}, nil
	case token.MINUS:
		return &object.Float{Value: l - r}, nil
	case token.MUL:
		return &object.Float{Value: l * r}, nil
	case token.DIV:
		if r == 0 {
			return nil, newEvalError("division by zero")
		}
		return &object.Float{Value: l / r}, nil
	case token.MOD:
		return nil, newEvalError("operator %% is not defined for float operands")
	case token.POW:
		return &object.Float{Value: math.Pow(l, r)}, nil
	case token.LT:
		return &object.Bool{Value: l < r}, nil
	case token.LTE:
		return &object.Bool{Value: l <= r}, nil
	case token.GT:
		return &object.Bool{Value: l > r}, nil
	case token.GTE:
		return &object.Bool{Value: l >= r}, nil
	case token.EQUAL:
		return &object.Bool{Value: l == r}, nil
	case token.NOT_EQUAL:
		return &object.Bool{Value: l != r}, nil
	default:
		return nil, newEvalError("unsupported float operator %q", op)
	}
}
