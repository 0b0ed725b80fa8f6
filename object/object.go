/*
File    : ego/object/object.go
*/

// Package object defines the runtime value model ego programs compute
// over: Int, Float, String, Bool, Array and Unit, each satisfying the
// Object interface, plus the Function and Environment types the evaluator
// uses to run user-defined functions.
package object

import (
	"strconv"
	"strings"
)

// Type identifies the concrete kind of an Object.
type Type string

const (
	INT    Type = "int"
	FLOAT  Type = "float"
	STRING Type = "string"
	BOOL   Type = "bool"
	ARRAY  Type = "array"
	UNIT   Type = "unit"
)

// Object is the interface every runtime value implements: a type tag, a
// human-readable inspect string (used by print/println and by the `+`
// string-concatenation rule), and a truthiness predicate for conditions.
type Object interface {
	Type() Type
	Inspect() string
	Truthy() bool
}

// Int is a signed 64-bit integer value.
type Int struct{ Value int64 }

func (i *Int) Type() Type      { return INT }
func (i *Int) Inspect() string { return strconv.FormatInt(i.Value, 10) }
func (i *Int) Truthy() bool    { return i.Value != 0 }

// Float is a 64-bit floating point value.
type Float struct{ Value float64 }

func (f *Float) Type() Type      { return FLOAT }
func (f *Float) Inspect() string { return strconv.FormatFloat(f.Value, 'f', -1, 64) }
func (f *Float) Truthy() bool    { return f.Value != 0 }

// String is a text value.
type String struct{ Value string }

func (s *String) Type() Type      { return STRING }
func (s *String) Inspect() string { return s.Value }
func (s *String) Truthy() bool    { return s.Value != "" }

// Bool is a boolean value.
type Bool struct{ Value bool }

func (b *Bool) Type() Type      { return BOOL }
func (b *Bool) Inspect() string { return strconv.FormatBool(b.Value) }
func (b *Bool) Truthy() bool    { return b.Value }

// Array is an ordered, fixed-length sequence of values.
type Array struct{ Elements []Object }

func (a *Array) Type() Type { return ARRAY }
func (a *Array) Inspect() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (a *Array) Truthy() bool { return len(a.Elements) != 0 }

// Unit is the result of statements that produce no value (assignment,
// control flow, a function call that never hits a return). The data model
// says it should never reach a truthiness site; Truthy returns false as a
// defensive default rather than panicking on a caller's mistake.
type Unit struct{}

func (u *Unit) Type() Type      { return UNIT }
func (u *Unit) Inspect() string { return "" }
func (u *Unit) Truthy() bool    { return false }

// UnitValue is the single shared Unit instance; Unit carries no state so
// there is no need to allocate a fresh one per use.
var UnitValue = &Unit{}
