/*
File    : ego/object/function.go
*/
package object

import "github.com/akashmaji946/ego/ast"

// Function is a user-defined function's runtime representation: its
// parameter names and its body. Unlike the teacher's Function, it does
// NOT capture a defining scope — ego functions do not close over their
// enclosing environment (see Environment); every call starts from a
// brand new, empty binding set populated only with its arguments.
type Function struct {
	Params []string
	Body   []ast.Node
}
