/*
File    : ego/eval/eval_test.go
*/
package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/ego/eval"
	"github.com/akashmaji946/ego/object"
	"github.com/akashmaji946/ego/parser"
)

func run(t *testing.T, src string) object.Object {
	t.Helper()
	nodes, err := parser.Parse(src)
	require.NoError(t, err)
	env := object.New()
	val, err := eval.New(nil).Eval(nodes, env)
	require.NoError(t, err)
	return val
}

func runErr(t *testing.T, src string) error {
	t.Helper()
	nodes, err := parser.Parse(src)
	require.NoError(t, err)
	_, err = eval.New(nil).Eval(nodes, object.New())
	return err
}

func TestEval_ArithmeticPrecedence(t *testing.T) {
	val := run(t, "let x = 1 + 2 * 3; x;")
	assert.Equal(t, int64(7), val.(*object.Int).Value)
}

func TestEval_FloatPromotion(t *testing.T) {
	val := run(t, "let x = 1 + 2.5; x;")
	assert.Equal(t, 3.5, val.(*object.Float).Value)
}

func TestEval_StringConcatenation(t *testing.T) {
	val := run(t, `let x = "count: " + 3; x;`)
	assert.Equal(t, "count: 3", val.(*object.String).Value)
}

func TestEval_DivisionByZeroIsEvalError(t *testing.T) {
	err := runErr(t, "let x = 1 / 0;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error while evaluating: ")
	assert.Contains(t, err.Error(), "division by zero")
}

func TestEval_AndOrDoNotShortCircuit(t *testing.T) {
	src := `
		func side(x) {
			return x;
		}
		let a = false and side(true);
		a;
	`
	val := run(t, src)
	assert.False(t, val.(*object.Bool).Value)

	// The right operand is evaluated even when the left one already
	// decides the result, so an error on the right still surfaces.
	err := runErr(t, "let b = false and missing;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined identifier: missing")

	err = runErr(t, "let c = true or missing;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined identifier: missing")
}

func TestEval_IfElse(t *testing.T) {
	val := run(t, `
		let x = 10;
		let y = 0;
		if (x < 5) {
			y = 1;
		} else {
			y = 2;
		}
		y;
	`)
	assert.Equal(t, int64(2), val.(*object.Int).Value)
}

func TestEval_WhileLoop(t *testing.T) {
	val := run(t, `
		let i = 0;
		let sum = 0;
		while (i < 5) {
			sum = sum + i;
			i = i + 1;
		}
		sum;
	`)
	assert.Equal(t, int64(10), val.(*object.Int).Value)
}

func TestEval_UserFunctionCallAndReturn(t *testing.T) {
	val := run(t, `
		func add(a, b) {
			return a + b;
		}
		add(3, 4);
	`)
	assert.Equal(t, int64(7), val.(*object.Int).Value)
}

func TestEval_FunctionCallsDoNotSeeCallerScope(t *testing.T) {
	err := runErr(t, `
		let shared = 99;
		func readShared() {
			return shared;
		}
		readShared();
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined identifier: shared")
}

func TestEval_ArrayLiteralAndIndexing(t *testing.T) {
	val := run(t, `
		let xs = [10, 20, 30];
		xs[1];
	`)
	assert.Equal(t, int64(20), val.(*object.Int).Value)
}

func TestEval_ArrayIndexOutOfBoundsIsEvalError(t *testing.T) {
	err := runErr(t, `
		let xs = [1, 2];
		xs[5];
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of bounds")
}

func TestEval_UndefinedVariableIsEvalError(t *testing.T) {
	err := runErr(t, "missing;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined identifier: missing")
}

func TestEval_UndefinedFunctionIsEvalError(t *testing.T) {
	err := runErr(t, "missing_fn();")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined identifier: missing_fn")
}

func TestEval_WrongArgumentCountIsEvalError(t *testing.T) {
	err := runErr(t, `
		func needsTwo(a, b) {
			return a;
		}
		needsTwo(1);
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expects 2 argument")
}

func TestEval_LetRedefinitionIsEvalError(t *testing.T) {
	err := runErr(t, "let x = 1; let x = 2;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "variable already defined: x")
}

func TestEval_AssignToUndefinedVariableIsEvalError(t *testing.T) {
	err := runErr(t, "x = 1;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "variable not defined: x")
}

func TestEval_LetThenAssignIdempotence(t *testing.T) {
	val := run(t, "let x = 5; x = 5; x;")
	assert.Equal(t, int64(5), val.(*object.Int).Value)
}

func TestEval_SemicolonsAreOptional(t *testing.T) {
	val := run(t, "let x = 1 + 2 * 3\nx")
	assert.Equal(t, int64(7), val.(*object.Int).Value)
}

func TestEval_EmptyProgramProducesUnit(t *testing.T) {
	val := run(t, "")
	assert.Equal(t, object.UNIT, val.Type())
}

func TestEval_EmptyFunctionBodyReturnsUnit(t *testing.T) {
	val := run(t, `
		func noop() {
		}
		noop();
	`)
	assert.Equal(t, object.UNIT, val.Type())
}

func TestEval_PowerIsRightAssociative(t *testing.T) {
	val := run(t, "let x = 2 ^ 2 ^ 3; x;")
	// 2 ^ (2 ^ 3) = 2 ^ 8 = 256, not (2^2)^3 = 64.
	assert.Equal(t, int64(256), val.(*object.Int).Value)
}

func TestEval_OrAndAreSamePrecedenceLeftAssociative(t *testing.T) {
	// true or false and false == (true or false) and false == false,
	// not true or (false and false) == true.
	val := run(t, "let x = true or false and false; x;")
	assert.False(t, val.(*object.Bool).Value)
}

func TestEval_BoolOperandsCoerceThroughTruthiness(t *testing.T) {
	val := run(t, "let x = true + true; x;")
	assert.Equal(t, int64(2), val.(*object.Int).Value)
}

func TestEval_BoolEqualsIntCoercesThroughTruthiness(t *testing.T) {
	val := run(t, "let x = true == 1; x;")
	assert.True(t, val.(*object.Bool).Value)
}

func TestEval_StringEqualityIsEvalError(t *testing.T) {
	err := runErr(t, `let x = "a" == "b";`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operator")
}

func TestEval_ComparisonOperatorsShareOnePrecedenceLevel(t *testing.T) {
	// a == b < c parses as (a == b) < c, not a == (b < c), since == and <
	// sit at the same precedence level and associate left-to-right:
	// (2 == 2) < 2 is 1 < 2, true; 2 == (2 < 2) would be 2 == 0, false.
	val := run(t, "let x = (2 == 2) < 2; x;")
	assert.True(t, val.(*object.Bool).Value)

	val = run(t, "let y = 2 == 2 < 2; y;")
	assert.True(t, val.(*object.Bool).Value)
}

func TestEval_ModSharesPowPrecedenceAboveMulDiv(t *testing.T) {
	// a * b % c parses as a * (b % c), not (a * b) % c.
	val := run(t, "let x = 2 * 5 % 3; x;")
	assert.Equal(t, int64(4), val.(*object.Int).Value)
}
