/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, ValueKindUnit, KindOf(NewValueUnit()))
	assert.Equal(t, ValueKindBool, KindOf(NewValueBool(true)))
	assert.Equal(t, ValueKindIntegral, KindOf(NewValueInt(7)))
	assert.Equal(t, ValueKindString, KindOf(NewValueString("hi")))
	assert.Equal(t, ValueKindFun, KindOf(NewValueFun(FunIdFromIndex(0))))
	assert.Equal(t, ValueKindFun, KindOf(NewValueNif(NifIdFromIndex(0))))
	assert.Equal(t, ValueKindStruct, KindOf(NewValueStruct(0, nil)))

	type hostThing struct{}
	assert.Equal(t, ValueKindHost, KindOf(Value{Value: hostThing{}}))
}

func TestValuesEqual(t *testing.T) {
	assert.True(t, ValuesEqual(NewValueUnit(), NewValueUnit()))
	assert.True(t, ValuesEqual(NewValueInt(7), NewValueInt(7)))
	assert.False(t, ValuesEqual(NewValueInt(7), NewValueInt(8)))
	assert.False(t, ValuesEqual(NewValueInt(7), NewValueBool(true)))
	assert.True(t, ValuesEqual(NewValueBool(false), NewValueBool(false)))
	assert.True(t, ValuesEqual(NewValueString("a"), NewValueString("a")))

	assert.True(t, ValuesEqual(
		NewValueFun(FunIdFromIndex(3)),
		NewValueFun(FunIdFromIndex(3))))
	assert.False(t, ValuesEqual(
		NewValueFun(FunIdFromIndex(3)),
		NewValueNif(NifIdFromIndex(3))))

	pair := ConstrIdFromIndex(0)
	a := NewValueStruct(pair, []Value{NewValueInt(1), NewValueInt(2)})
	b := NewValueStruct(pair, []Value{NewValueInt(1), NewValueInt(2)})
	c := NewValueStruct(pair, []Value{NewValueInt(1), NewValueInt(3)})
	assert.True(t, ValuesEqual(a, b))
	assert.False(t, ValuesEqual(a, c))
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "()", NewValueUnit().String())
	assert.Equal(t, "true", NewValueBool(true).String())
	assert.Equal(t, "42", NewValueInt(42).String())
	assert.Equal(t, `"hi"`, NewValueString("hi").String())
	assert.Equal(t, "<fun F2>", NewValueFun(FunIdFromIndex(2)).String())
	assert.Equal(t, "<fun N1>", NewValueNif(NifIdFromIndex(1)).String())

	pair := ConstrIdFromIndex(0)
	s := NewValueStruct(pair, []Value{NewValueInt(10), NewValueInt(20)})
	assert.Equal(t, "<C0 (10, 20)>", s.String())
}

func TestValueDebugString(t *testing.T) {
	di := &DebugInfo{FunctionNames: []string{"main", "helper"}}
	assert.Equal(t, "<fun helper>", NewValueFun(FunIdFromIndex(1)).DebugString(di))
	assert.Equal(t, "<fun F9>", NewValueFun(FunIdFromIndex(9)).DebugString(di))
	assert.Equal(t, "42", NewValueInt(42).DebugString(di))
}

func TestIdStrings(t *testing.T) {
	assert.Equal(t, "F3", FunIdFromIndex(3).String())
	assert.Equal(t, "L0", LitIdFromIndex(0).String())
	assert.Equal(t, "C1", ConstrIdFromIndex(1).String())
	assert.Equal(t, "N2", NifIdFromIndex(2).String())
	assert.Equal(t, "G4", GlobalIdFromIndex(4).String())
}

func TestAddLiteralDeduplicates(t *testing.T) {
	m := &CompiledModule{}
	a := m.AddLiteral(int64(7))
	b := m.AddLiteral(int64(8))
	c := m.AddLiteral(int64(7))
	assert.Equal(t, a, c)
	assert.NotEqual(t, a, b)
	assert.Len(t, m.Literals, 2)
}
