/*
File    : ego/builtin/builtin.go
*/

// Package builtin implements ego's built-in function surface: the
// generic functions (print, len, ...) and the terminal-hosted
// graphics/input functions in builtin/termgfx. A builtin receives the
// unevaluated call-expression node rather than pre-evaluated arguments,
// matching the source's builtins.cpp ABI — this lets print special-case
// an array-expression argument, and lets graphics builtins accept a
// variable number of differently-typed arguments without the evaluator
// needing to know about either.
package builtin

import (
	"github.com/akashmaji946/ego/ast"
	"github.com/akashmaji946/ego/object"
)

// EvalFunc evaluates a single AST expression node against env. The
// evaluator passes its own expression evaluator down to each builtin
// call so builtins can resolve their own arguments.
type EvalFunc func(node ast.Node, env *object.Environment) (object.Object, error)

// Func is the signature every builtin function implements.
type Func func(call *ast.CallExpression, env *object.Environment, eval EvalFunc) (object.Object, error)

// Builtin pairs a callable name with its implementation, for registries
// that want to enumerate what they hold (e.g. a REPL's `.builtins` help
// command).
type Builtin struct {
	Name string
	Fn   Func
}

// Registry is a name -> Func lookup table. The evaluator holds one and
// consults it before falling back to user-defined functions, so a
// builtin name can never be shadowed by a user function of the same
// name.
type Registry struct {
	fns map[string]Func
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{fns: make(map[string]Func)}
}

// Register adds or replaces the implementation bound to name.
func (r *Registry) Register(name string, fn Func) {
	r.fns[name] = fn
}

// Lookup returns the Func bound to name, if any.
func (r *Registry) Lookup(name string) (Func, bool) {
	fn, ok := r.fns[name]
	return fn, ok
}

// Names returns every registered builtin name, for help text and
// completion.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.fns))
	for name := range r.fns {
		names = append(names, name)
	}
	return names
}
