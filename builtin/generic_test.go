/*
File    : ego/builtin/generic_test.go
*/
package builtin_test

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/ego/builtin"
	"github.com/akashmaji946/ego/eval"
	"github.com/akashmaji946/ego/object"
	"github.com/akashmaji946/ego/parser"
)

func newEvaluator() *eval.Evaluator {
	r := builtin.NewRegistry()
	builtin.RegisterGeneric(r)
	return eval.New(r)
}

func runWith(t *testing.T, src string) (object.Object, error) {
	t.Helper()
	nodes, err := parser.Parse(src)
	require.NoError(t, err)
	return newEvaluator().Eval(nodes, object.New())
}

func TestLen_ArrayAndString(t *testing.T) {
	val, err := runWith(t, `len([1, 2, 3]);`)
	require.NoError(t, err)
	assert.Equal(t, int64(3), val.(*object.Int).Value)

	val, err = runWith(t, `len("hello");`)
	require.NoError(t, err)
	assert.Equal(t, int64(5), val.(*object.Int).Value)
}

func TestLen_WrongArgCountIsEvalError(t *testing.T) {
	_, err := runWith(t, `len();`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error while evaluating: ")
	assert.Contains(t, err.Error(), "len: expects 1 argument")
}

func TestToInt_FromFloatAndString(t *testing.T) {
	val, err := runWith(t, `to_int(3.9);`)
	require.NoError(t, err)
	assert.Equal(t, int64(3), val.(*object.Int).Value)

	val, err = runWith(t, `to_int("42");`)
	require.NoError(t, err)
	assert.Equal(t, int64(42), val.(*object.Int).Value)
}

func TestToStr_FromInt(t *testing.T) {
	val, err := runWith(t, `to_str(7);`)
	require.NoError(t, err)
	assert.Equal(t, "7", val.(*object.String).Value)
}

func TestCeilFloor(t *testing.T) {
	val, err := runWith(t, `ceil(3.1);`)
	require.NoError(t, err)
	assert.Equal(t, int64(4), val.(*object.Int).Value)

	val, err = runWith(t, `floor(3.9);`)
	require.NoError(t, err)
	assert.Equal(t, int64(3), val.(*object.Int).Value)
}

func TestRandInt_IsZeroArgAndReturnsAnInt(t *testing.T) {
	val, err := runWith(t, `rand_int();`)
	require.NoError(t, err)
	_, ok := val.(*object.Int)
	assert.True(t, ok)
}

func TestPrint_ArrayLiteralArgumentPrintsElements(t *testing.T) {
	stdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	_, err = runWith(t, `print([1, 2, 3]);`)
	w.Close()
	os.Stdout = stdout
	require.NoError(t, err)
	out, readErr := io.ReadAll(r)
	require.NoError(t, readErr)
	assert.Equal(t, "1 2 3", string(out))
}
