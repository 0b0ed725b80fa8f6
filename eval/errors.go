/*
File    : ego/eval/errors.go
*/
package eval

import "fmt"

// EvalError is raised for any runtime fault: an undefined variable or
// function, a call with the wrong argument count, an out-of-bounds array
// index, or an operator applied to the wrong operand types. Like
// ParseError, it propagates to the caller without local recovery
// (spec.md §7).
type EvalError struct {
	msg string
}

func newEvalError(format string, a ...interface{}) *EvalError {
	return &EvalError{msg: fmt.Sprintf(format, a...)}
}

func (e *EvalError) Error() string {
	return "error while evaluating: " + e.msg
}
