/*
File    : ego/builtin/termgfx/builtins.go
*/
package termgfx

import (
	"fmt"
	"time"

	"github.com/akashmaji946/ego/ast"
	"github.com/akashmaji946/ego/builtin"
	"github.com/akashmaji946/ego/object"
)

// activeWindow is the single window an ego program can have open at a
// time, mirroring the source's single global raylib window. Every
// drawing/input builtin operates on it.
var activeWindow *Window

// Register adds the graphics and input builtins to r: make_window,
// begin_drawing, end_drawing, windows_should_close, close_window,
// wait_time, clr_bg, draw_rec, draw_text, draw_circle, is_key_down, and
// set_log_level.
func Register(r *builtin.Registry) {
	r.Register("make_window", makeWindow)
	r.Register("begin_drawing", beginDrawing)
	r.Register("end_drawing", endDrawing)
	r.Register("windows_should_close", windowsShouldClose)
	r.Register("close_window", closeWindow)
	r.Register("wait_time", waitTime)
	r.Register("clr_bg", clrBg)
	r.Register("draw_rec", drawRec)
	r.Register("draw_text", drawText)
	r.Register("draw_circle", drawCircle)
	r.Register("is_key_down", isKeyDown)
	r.Register("set_log_level", setLogLevel)
}

func evalArgs(call *ast.CallExpression, env *object.Environment, eval builtin.EvalFunc) ([]object.Object, error) {
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

func asInt(o object.Object) (int, bool) {
	v, ok := o.(*object.Int)
	if !ok {
		return 0, false
	}
	return int(v.Value), true
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

func asString(o object.Object) (string, bool) {
	v, ok := o.(*object.String)
	if !ok {
		return "", false
	}
	return v.Value, true
}

func argError(name, format string, a ...interface{}) error {
	return fmt.Errorf("error while evaluating: %s: %s", name, fmt.Sprintf(format, a...))
}

func requireWindow(name string) (*Window, error) {
	if activeWindow == nil {
		return nil, argError(name, "no window is open, call make_window first")
	}
	return activeWindow, nil
}

func makeWindow(call *ast.CallExpression, env *object.Environment, eval builtin.EvalFunc) (object.Object, error) {
	args, err := evalArgs(call, env, eval)
	if err != nil {
		return nil, err
	}
	if len(args) != 3 {
		return nil, argError("make_window", "expects 3 arguments (width, height, title), got %d", len(args))
	}
	width, wOK := asInt(args[0])
	height, hOK := asInt(args[1])
	title, tOK := asString(args[2])
	if !wOK || !hOK || !tOK {
		return nil, argError("make_window", "expects (int, int, string)")
	}
	win, err := New(title, width, height)
	if err != nil {
		return nil, argError("make_window", "%s", err.Error())
	}
	activeWindow = win
	return object.UnitValue, nil
}

func beginDrawing(call *ast.CallExpression, env *object.Environment, eval builtin.EvalFunc) (object.Object, error) {
	win, err := requireWindow("begin_drawing")
	if err != nil {
		return nil, err
	}
	win.BeginDrawing()
	return object.UnitValue, nil
}

func endDrawing(call *ast.CallExpression, env *object.Environment, eval builtin.EvalFunc) (object.Object, error) {
	win, err := requireWindow("end_drawing")
	if err != nil {
		return nil, err
	}
	win.EndDrawing()
	return object.UnitValue, nil
}

func windowsShouldClose(call *ast.CallExpression, env *object.Environment, eval builtin.EvalFunc) (object.Object, error) {
	win, err := requireWindow("windows_should_close")
	if err != nil {
		return nil, err
	}
	return &object.Bool{Value: win.ShouldClose()}, nil
}

func closeWindow(call *ast.CallExpression, env *object.Environment, eval builtin.EvalFunc) (object.Object, error) {
	win, err := requireWindow("close_window")
	if err != nil {
		return nil, err
	}
	win.Close()
	activeWindow = nil
	return object.UnitValue, nil
}

func waitTime(call *ast.CallExpression, env *object.Environment, eval builtin.EvalFunc) (object.Object, error) {
	args, err := evalArgs(call, env, eval)
	if err != nil {
		return nil, err
	}
	if len(args) != 1 {
		return nil, argError("wait_time", "expects 1 argument (seconds)")
	}
	seconds, ok := asFloat(args[0])
	if !ok {
		return nil, argError("wait_time", "expects a number")
	}
	time.Sleep(time.Duration(seconds * float64(time.Second)))
	return object.UnitValue, nil
}

func clrBg(call *ast.CallExpression, env *object.Environment, eval builtin.EvalFunc) (object.Object, error) {
	win, err := requireWindow("clr_bg")
	if err != nil {
		return nil, err
	}
	args, err := evalArgs(call, env, eval)
	if err != nil {
		return nil, err
	}
	if len(args) != 1 {
		return nil, argError("clr_bg", "expects 1 argument (color name)")
	}
	name, ok := asString(args[0])
	if !ok {
		return nil, argError("clr_bg", "expects a string color name")
	}
	win.ClearBackground(ColorByName(name))
	return object.UnitValue, nil
}

func drawRec(call *ast.CallExpression, env *object.Environment, eval builtin.EvalFunc) (object.Object, error) {
	win, err := requireWindow("draw_rec")
	if err != nil {
		return nil, err
	}
	args, err := evalArgs(call, env, eval)
	if err != nil {
		return nil, err
	}
	if len(args) != 5 {
		return nil, argError("draw_rec", "expects 5 arguments (x, y, width, height, color)")
	}
	x, xOK := asInt(args[0])
	y, yOK := asInt(args[1])
	width, wOK := asInt(args[2])
	height, hOK := asInt(args[3])
	name, cOK := asString(args[4])
	if !xOK || !yOK || !wOK || !hOK || !cOK {
		return nil, argError("draw_rec", "expects (int, int, int, int, string)")
	}
	win.DrawRectangle(x, y, width, height, ColorByName(name))
	return object.UnitValue, nil
}

func drawText(call *ast.CallExpression, env *object.Environment, eval builtin.EvalFunc) (object.Object, error) {
	win, err := requireWindow("draw_text")
	if err != nil {
		return nil, err
	}
	args, err := evalArgs(call, env, eval)
	if err != nil {
		return nil, err
	}
	if len(args) != 4 {
		return nil, argError("draw_text", "expects 4 arguments (text, x, y, color)")
	}
	text, tOK := asString(args[0])
	x, xOK := asInt(args[1])
	y, yOK := asInt(args[2])
	name, cOK := asString(args[3])
	if !tOK || !xOK || !yOK || !cOK {
		return nil, argError("draw_text", "expects (string, int, int, string)")
	}
	win.DrawText(text, x, y, ColorByName(name))
	return object.UnitValue, nil
}

func drawCircle(call *ast.CallExpression, env *object.Environment, eval builtin.EvalFunc) (object.Object, error) {
	win, err := requireWindow("draw_circle")
	if err != nil {
		return nil, err
	}
	args, err := evalArgs(call, env, eval)
	if err != nil {
		return nil, err
	}
	if len(args) != 4 {
		return nil, argError("draw_circle", "expects 4 arguments (x, y, radius, color)")
	}
	x, xOK := asInt(args[0])
	y, yOK := asInt(args[1])
	radius, rOK := asInt(args[2])
	name, cOK := asString(args[3])
	if !xOK || !yOK || !rOK || !cOK {
		return nil, argError("draw_circle", "expects (int, int, int, string)")
	}
	win.DrawCircle(x, y, radius, ColorByName(name))
	return object.UnitValue, nil
}

func isKeyDown(call *ast.CallExpression, env *object.Environment, eval builtin.EvalFunc) (object.Object, error) {
	win, err := requireWindow("is_key_down")
	if err != nil {
		return nil, err
	}
	args, err := evalArgs(call, env, eval)
	if err != nil {
		return nil, err
	}
	if len(args) != 1 {
		return nil, argError("is_key_down", "expects 1 argument (key name)")
	}
	name, ok := asString(args[0])
	if !ok {
		return nil, argError("is_key_down", "expects a string key name")
	}
	return &object.Bool{Value: win.IsKeyDown(name)}, nil
}

// logLevel records the requested raylib trace log level name. The
// terminal backend has no underlying log stream to silence; this exists
// so scripts that call set_log_level at startup still run unchanged.
var logLevel = "info"

func setLogLevel(call *ast.CallExpression, env *object.Environment, eval builtin.EvalFunc) (object.Object, error) {
	args, err := evalArgs(call, env, eval)
	if err != nil {
		return nil, err
	}
	if len(args) != 1 {
		return nil, argError("set_log_level", "expects 1 argument")
	}
	name, ok := asString(args[0])
	if !ok {
		return nil, argError("set_log_level", "expects a string")
	}
	logLevel = name
	return object.UnitValue, nil
}
