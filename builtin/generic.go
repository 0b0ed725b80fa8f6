/*
File    : ego/builtin/generic.go
*/
package builtin

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/akashmaji946/ego/ast"
	"github.com/akashmaji946/ego/object"
)

// RegisterGeneric adds the non-graphics builtins to r: print, println,
// len, rand_int, to_int, to_str, ceil, and floor.
func RegisterGeneric(r *Registry) {
	r.Register("print", printFunc(false))
	r.Register("println", printFunc(true))
	r.Register("len", lenFunc)
	r.Register("rand_int", randIntFunc)
	r.Register("to_int", toIntFunc)
	r.Register("to_str", toStrFunc)
	r.Register("ceil", ceilFunc)
	r.Register("floor", floorFunc)
}

func evalArgs(call *ast.CallExpression, env *object.Environment, eval EvalFunc) ([]object.Object, error) {
	vals := make([]object.Object, len(call.Args))
	for i, arg := range call.Args {
		val, err := eval(arg, env)
		if err != nil {
			return nil, err
		}
		vals[i] = val
	}
	return vals, nil
}

// printFunc prints every argument's display form, space-separated. An
// argument written directly as an array literal prints its elements
// individually rather than the array's bracketed Inspect() form — this
// is the reason builtins see the raw call expression instead of
// pre-evaluated values: print needs to look at the shape of its
// arguments, not just their runtime values.
func printFunc(newline bool) Func {
	return func(call *ast.CallExpression, env *object.Environment, eval EvalFunc) (object.Object, error) {
		parts := make([]string, 0, len(call.Args))
		for _, arg := range call.Args {
			if arrLit, ok := arg.(*ast.ArrayExpression); ok {
				for _, el := range arrLit.Elements {
					val, err := eval(el, env)
					if err != nil {
						return nil, err
					}
					parts = append(parts, val.Inspect())
				}
				continue
			}
			val, err := eval(arg, env)
			if err != nil {
				return nil, err
			}
			parts = append(parts, val.Inspect())
		}
		out := strings.Join(parts, " ")
		if newline {
			fmt.Println(out)
		} else {
			fmt.Print(out)
		}
		return object.UnitValue, nil
	}
}

func lenFunc(call *ast.CallExpression, env *object.Environment, eval EvalFunc) (object.Object, error) {
	args, err := evalArgs(call, env, eval)
	if err != nil {
		return nil, err
	}
	if len(args) != 1 {
		return nil, newArityError("len", 1, len(args))
	}
	switch v := args[0].(type) {
	case *object.Array:
		return &object.Int{Value: int64(len(v.Elements))}, nil
	case *object.String:
		return &object.Int{Value: int64(len(v.Value))}, nil
	default:
		return nil, newTypeError("len", "array or string", v.Type())
	}
}

// randIntFunc is spec.md §6's zero-arg `rand_int()→Int`: it takes no
// required arguments and returns a bare host random int, matching
// original_source/builtins.cpp's `rand()` call. Any arguments passed are
// evaluated and echoed space-separated first, exactly like the source
// does before constructing its IntegerObject.
func randIntFunc(call *ast.CallExpression, env *object.Environment, eval EvalFunc) (object.Object, error) {
	args, err := evalArgs(call, env, eval)
	if err != nil {
		return nil, err
	}
	for _, arg := range args {
		fmt.Print(arg.Inspect(), " ")
	}
	return &object.Int{Value: rand.Int63()}, nil
}

func toIntFunc(call *ast.CallExpression, env *object.Environment, eval EvalFunc) (object.Object, error) {
	args, err := evalArgs(call, env, eval)
	if err != nil {
		return nil, err
	}
	if len(args) != 1 {
		return nil, newArityError("to_int", 1, len(args))
	}
	switch v := args[0].(type) {
	case *object.Int:
		return v, nil
	case *object.Float:
		return &object.Int{Value: int64(v.Value)}, nil
	case *object.Bool:
		if v.Value {
			return &object.Int{Value: 1}, nil
		}
		return &object.Int{Value: 0}, nil
	case *object.String:
		n, convErr := strconv.ParseInt(strings.TrimSpace(v.Value), 10, 64)
		if convErr != nil {
			return nil, newError("to_int", "cannot convert %q to int", v.Value)
		}
		return &object.Int{Value: n}, nil
	default:
		return nil, newTypeError("to_int", "int, float, bool, or string", v.Type())
	}
}

func toStrFunc(call *ast.CallExpression, env *object.Environment, eval EvalFunc) (object.Object, error) {
	args, err := evalArgs(call, env, eval)
	if err != nil {
		return nil, err
	}
	if len(args) != 1 {
		return nil, newArityError("to_str", 1, len(args))
	}
	return &object.String{Value: args[0].Inspect()}, nil
}

func ceilFunc(call *ast.CallExpression, env *object.Environment, eval EvalFunc) (object.Object, error) {
	return roundingFunc("ceil", math.Ceil, call, env, eval)
}

func floorFunc(call *ast.CallExpression, env *object.Environment, eval EvalFunc) (object.Object, error) {
	return roundingFunc("floor", math.Floor, call, env, eval)
}

func roundingFunc(name string, round func(float64) float64, call *ast.CallExpression, env *object.Environment, eval EvalFunc) (object.Object, error) {
	args, err := evalArgs(call, env, eval)
	if err != nil {
		return nil, err
	}
	if len(args) != 1 {
		return nil, newArityError(name, 1, len(args))
	}
	switch v := args[0].(type) {
	case *object.Int:
		return v, nil
	case *object.Float:
		return &object.Int{Value: int64(round(v.Value))}, nil
	default:
		return nil, newTypeError(name, "int or float", v.Type())
	}
}
