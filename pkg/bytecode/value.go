/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import (
	"fmt"
	"reflect"
	"strings"
)

// A ValueKind represents one of the types a value in the Vireo Virtual
// Machine can have. This is the type from the perspective of the VM (in the
// sense that embedder-defined types are not individually represented here).
// We use "kind" in the name because "type" is a keyword in Go.
type ValueKind int

const (
	// ValueKindUnit identifies the unit value.
	ValueKindUnit ValueKind = iota

	// ValueKindBool identifies a boolean value.
	ValueKindBool

	// ValueKindIntegral identifies an integral value.
	ValueKindIntegral

	// ValueKindString identifies a string value.
	ValueKindString

	// ValueKindFun identifies a function value (either a user function or a
	// NIF).
	ValueKindFun

	// ValueKindStruct identifies a struct value.
	ValueKindStruct

	// ValueKindHost identifies any value kind defined by the embedder.
	ValueKindHost
)

// String converts the ValueKind to a user-facing name.
func (k ValueKind) String() string {
	switch k {
	case ValueKindUnit:
		return "unit"
	case ValueKindBool:
		return "bool"
	case ValueKindIntegral:
		return "int"
	case ValueKindString:
		return "string"
	case ValueKindFun:
		return "fun"
	case ValueKindStruct:
		return "struct"
	case ValueKindHost:
		return "host"
	}
	return "unknown"
}

// Unit is the payload of the unit value.
type Unit struct{}

// A ValueFun is the runtime representation of something callable: either a
// user function or a NIF.
type ValueFun struct {
	// Native tells whether this refers to a NIF (true) or to a user function
	// (false).
	Native bool

	// Nif identifies the NIF. Only meaningful when Native is true.
	Nif NifId

	// Fun identifies the user function. Only meaningful when Native is false.
	Fun FunId
}

func (f ValueFun) String() string {
	if f.Native {
		return f.Nif.String()
	}
	return f.Fun.String()
}

// A Struct is the runtime representation of a constructor application: the
// constructor tag plus the field values, in declaration order.
type Struct struct {
	Constr ConstrId
	Fields []Value
}

// Value is a Vireo language value.
//
// The set of stock payload types is Unit, bool, int64, string, ValueFun and
// Struct; an embedder can store any other type in here and handle it from its
// own NIFs.
type Value struct {
	Value any
}

// NewValueUnit creates the unit Value.
func NewValueUnit() Value {
	return Value{Value: Unit{}}
}

// NewValueBool creates a new boolean Value.
func NewValueBool(b bool) Value {
	return Value{Value: b}
}

// NewValueInt creates a new integral Value.
func NewValueInt(i int64) Value {
	return Value{Value: i}
}

// NewValueString creates a new string Value.
func NewValueString(s string) Value {
	return Value{Value: s}
}

// NewValueFun creates a new Value referring to a user function.
func NewValueFun(id FunId) Value {
	return Value{Value: ValueFun{Fun: id}}
}

// NewValueNif creates a new Value referring to a NIF.
func NewValueNif(id NifId) Value {
	return Value{Value: ValueFun{Native: true, Nif: id}}
}

// NewValueStruct creates a new struct Value with the given constructor tag
// and fields.
func NewValueStruct(constr ConstrId, fields []Value) Value {
	return Value{Value: Struct{Constr: constr, Fields: fields}}
}

// KindOf returns the ValueKind of v.
func KindOf(v Value) ValueKind {
	switch v.Value.(type) {
	case Unit:
		return ValueKindUnit
	case bool:
		return ValueKindBool
	case int64:
		return ValueKindIntegral
	case string:
		return ValueKindString
	case ValueFun:
		return ValueKindFun
	case Struct:
		return ValueKindStruct
	default:
		return ValueKindHost
	}
}

// IsUnit checks if the value is the unit value.
func (v Value) IsUnit() bool {
	_, ok := v.Value.(Unit)
	return ok
}

// IsBool checks if the value contains a boolean.
func (v Value) IsBool() bool {
	_, ok := v.Value.(bool)
	return ok
}

// AsBool returns this Value's value, assuming it is a boolean.
func (v Value) AsBool() bool {
	return v.Value.(bool)
}

// IsInt checks if the value contains an integral value.
func (v Value) IsInt() bool {
	_, ok := v.Value.(int64)
	return ok
}

// AsInt returns this Value's value, assuming it is an integral value.
func (v Value) AsInt() int64 {
	return v.Value.(int64)
}

// IsString checks if the value contains a string.
func (v Value) IsString() bool {
	_, ok := v.Value.(string)
	return ok
}

// AsString returns this Value's value, assuming it is a string.
func (v Value) AsString() string {
	return v.Value.(string)
}

// IsFun checks if the value contains a function value.
func (v Value) IsFun() bool {
	_, ok := v.Value.(ValueFun)
	return ok
}

// AsFun returns this Value's value, assuming it is a function value.
func (v Value) AsFun() ValueFun {
	return v.Value.(ValueFun)
}

// IsStruct checks if the value contains a struct value.
func (v Value) IsStruct() bool {
	_, ok := v.Value.(Struct)
	return ok
}

// AsStruct returns this Value's value, assuming it is a struct value.
func (v Value) AsStruct() Struct {
	return v.Value.(Struct)
}

// String converts the value to a string. This is also used to show final
// program results to users, so the output must be user-friendly.
func (v Value) String() string {
	switch vv := v.Value.(type) {
	case Unit:
		return "()"
	case bool:
		if vv {
			return "true"
		}
		return "false"
	case int64:
		return fmt.Sprintf("%d", vv)
	case string:
		return fmt.Sprintf("%q", vv)
	case ValueFun:
		return fmt.Sprintf("<fun %v>", vv)
	case Struct:
		fields := make([]string, len(vv.Fields))
		for i, f := range vv.Fields {
			fields[i] = f.String()
		}
		return fmt.Sprintf("<%v (%v)>", vv.Constr, strings.Join(fields, ", "))
	default:
		return fmt.Sprintf("<%T %v>", vv, vv)
	}
}

// DebugString is like String, but uses debug information (if non-nil) for
// friendlier output, like showing function names instead of indices.
func (v Value) DebugString(di *DebugInfo) string {
	if di == nil {
		return v.String()
	}
	if f, ok := v.Value.(ValueFun); ok && !f.Native {
		if i := f.Fun.Index(); i < len(di.FunctionNames) {
			return fmt.Sprintf("<fun %v>", di.FunctionNames[i])
		}
	}
	return v.String()
}

// ValuesEqual checks if a and b are considered equal.
func ValuesEqual(a, b Value) bool {
	if reflect.TypeOf(a.Value) != reflect.TypeOf(b.Value) {
		return false
	}

	switch va := a.Value.(type) {
	case Unit:
		return true

	case bool:
		return va == b.Value.(bool)

	case int64:
		return va == b.Value.(int64)

	case string:
		return va == b.Value.(string)

	case ValueFun:
		return va == b.Value.(ValueFun)

	case Struct:
		vb := b.Value.(Struct)
		if va.Constr != vb.Constr || len(va.Fields) != len(vb.Fields) {
			return false
		}
		for i := range va.Fields {
			if !ValuesEqual(va.Fields[i], vb.Fields[i]) {
				return false
			}
		}
		return true

	default:
		return reflect.DeepEqual(a.Value, b.Value)
	}
}
