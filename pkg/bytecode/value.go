/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import (
	"github.com/orilang/ori/pkg/oriutil"
)

// A ValueKind represents one of the types a value in the Ori Virtual Machine
// can have. We use "kind" in the name because "type" is a keyword in Go.
type ValueKind int

const (
	// ValueNull identifies the null value.
	ValueNull ValueKind = iota

	// ValueBool identifies a Boolean value.
	ValueBool

	// ValueNumber identifies a number value (an IEEE-754 double).
	ValueNumber

	// ValueObj identifies a heap-allocated value.
	ValueObj
)

// Value is an Ori language value.
type Value struct {
	// Kind is the kind of the value.
	Kind ValueKind

	// Bool is the payload of a ValueBool value.
	Bool bool

	// Number is the payload of a ValueNumber value.
	Number float64

	// Obj is the payload of a ValueObj value: a handle to an object owned by
	// the Heap.
	Obj Object
}

// NewValueNull creates a new null Value.
func NewValueNull() Value {
	return Value{Kind: ValueNull}
}

// NewValueBool creates a new Boolean Value.
func NewValueBool(b bool) Value {
	return Value{Kind: ValueBool, Bool: b}
}

// NewValueNumber creates a new number Value.
func NewValueNumber(n float64) Value {
	return Value{Kind: ValueNumber, Number: n}
}

// NewValueObj creates a new Value referencing the heap object obj.
func NewValueObj(obj Object) Value {
	return Value{Kind: ValueObj, Obj: obj}
}

// IsNull checks if the value is null.
func (v Value) IsNull() bool {
	return v.Kind == ValueNull
}

// IsBool checks if the value is a Boolean.
func (v Value) IsBool() bool {
	return v.Kind == ValueBool
}

// IsNumber checks if the value is a number.
func (v Value) IsNumber() bool {
	return v.Kind == ValueNumber
}

// IsObj checks if the value is a heap object.
func (v Value) IsObj() bool {
	return v.Kind == ValueObj
}

// IsString checks if the value is a string object.
func (v Value) IsString() bool {
	if v.Kind != ValueObj {
		return false
	}
	_, ok := v.Obj.(*ObjString)
	return ok
}

// AsString returns this Value's object, assuming it is a string.
func (v Value) AsString() *ObjString {
	return v.Obj.(*ObjString)
}

// IsFalsy tells whether the value counts as false in a Boolean context. Null
// and false are falsy; every other value is truthy.
func (v Value) IsFalsy() bool {
	return v.Kind == ValueNull || (v.Kind == ValueBool && !v.Bool)
}

// String converts the value to the string the user sees: this is what
// OpPrint renders, so the output must be user-friendly.
func (v Value) String() string {
	switch v.Kind {
	case ValueNull:
		return "null"
	case ValueBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case ValueNumber:
		return oriutil.FormatNumber(v.Number)
	case ValueObj:
		return v.Obj.String()
	}
	return "<unexpected value kind>"
}

// ValuesEqual tells whether two values are equal. Values of different kinds
// are never equal. Numbers compare with IEEE-754 semantics, so NaN is not
// equal to itself. Objects compare by identity: thanks to string interning,
// two strings with the same content are the same object.
func ValuesEqual(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ValueNull:
		return true
	case ValueBool:
		return a.Bool == b.Bool
	case ValueNumber:
		return a.Number == b.Number
	case ValueObj:
		return a.Obj == b.Obj
	}
	return false
}
