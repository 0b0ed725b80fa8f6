/*
File    : ego/builtin/errors.go
*/
package builtin

import (
	"fmt"

	"github.com/akashmaji946/ego/object"
)

// Error is a builtin-raised runtime fault: a wrong argument count or an
// argument of the wrong type. It carries the same "error while
// evaluating: " prefix as eval.EvalError so callers can't tell a builtin
// error apart from one the evaluator raised itself — this package
// cannot import eval (eval imports builtin), so it defines its own type
// with matching formatting instead.
type Error struct {
	msg string
}

func (e *Error) Error() string {
	return "error while evaluating: " + e.msg
}

func newArityError(name string, want, got int) *Error {
	return &Error{msg: fmt.Sprintf("%s: expects %d argument(s), got %d", name, want, got)}
}

func newTypeError(name, want string, got object.Type) *Error {
	return &Error{msg: fmt.Sprintf("%s: expects %s, got %s", name, want, got)}
}

func newError(name, format string, a ...interface{}) *Error {
	return &Error{msg: fmt.Sprintf("%s: %s", name, fmt.Sprintf(format, a...))}
}
