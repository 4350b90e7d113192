/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package stdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vireo-lang/vireo/pkg/bytecode"
	"github.com/vireo-lang/vireo/pkg/compile"
	"github.com/vireo-lang/vireo/pkg/ir"
	"github.com/vireo-lang/vireo/pkg/vm"
	"github.com/vireo-lang/vireo/pkg/vutil"
)

func TestLiteralMapperNumbers(t *testing.T) {
	cases := map[string]int64{
		"0":    0,
		"42":   42,
		"-7":   -7,
		"0x2a": 42,
		"0b101": 5,
		"0o17": 15,
	}
	for source, expected := range cases {
		lit, err := LiteralMapper(ir.NumberLiteral{Source: source})
		require.NoError(t, err, "source %q", source)
		assert.Equal(t, expected, lit, "source %q", source)
	}

	_, err := LiteralMapper(ir.NumberLiteral{Source: "not-a-number"})
	assert.Error(t, err)
}

func TestLiteralMapperBoolsAndStrings(t *testing.T) {
	lit, err := LiteralMapper(ir.BoolLiteral{Source: "true"})
	require.NoError(t, err)
	assert.Equal(t, true, lit)

	lit, err = LiteralMapper(ir.BoolLiteral{Source: "false"})
	require.NoError(t, err)
	assert.Equal(t, false, lit)

	lit, err = LiteralMapper(ir.StringLiteral{Value: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hi", lit)
}

func TestLiteralMapperRejectsUnsupported(t *testing.T) {
	_, err := LiteralMapper(ir.DecimalLiteral{Source: "1.5"})
	assert.Error(t, err)

	_, err = LiteralMapper(ir.BytesLiteral{Value: []byte{1}})
	assert.Error(t, err)
}

func TestLiteralToValue(t *testing.T) {
	assert.Equal(t, bytecode.NewValueInt(7), LiteralToValue(int64(7)))
	assert.Equal(t, bytecode.NewValueBool(true), LiteralToValue(true))
	assert.Equal(t, bytecode.NewValueString("x"), LiteralToValue("x"))
	assert.Panics(t, func() { LiteralToValue(3.14) })
}

// registeredNif fetches a registered NIF by name for direct calling.
func registeredNif(t *testing.T, env *compile.Environment, name string) vm.NIF {
	t.Helper()
	id, ok := env.NifByPath("/" + name)
	require.True(t, ok, "NIF %v not registered", name)
	return env.NifAt(id)
}

func TestArithmeticNifs(t *testing.T) {
	env := compile.NewEnvironment()
	require.Nil(t, Register(env, &vutil.MemoryMouth{}))

	cases := []struct {
		name     string
		a, b     int64
		expected bytecode.Value
	}{
		{"+", 40, 2, bytecode.NewValueInt(42)},
		{"-", 40, 2, bytecode.NewValueInt(38)},
		{"*", 40, 2, bytecode.NewValueInt(80)},
		{"/", 40, 2, bytecode.NewValueInt(20)},
		{"%", 41, 2, bytecode.NewValueInt(1)},
		{"<", 1, 2, bytecode.NewValueBool(true)},
		{">", 1, 2, bytecode.NewValueBool(false)},
		{"<=", 2, 2, bytecode.NewValueBool(true)},
		{">=", 1, 2, bytecode.NewValueBool(false)},
		{"int_eq", 2, 2, bytecode.NewValueBool(true)},
	}
	for _, tc := range cases {
		nif := registeredNif(t, env, tc.name)
		v, err := nif.Call.Pure([]bytecode.Value{
			bytecode.NewValueInt(tc.a), bytecode.NewValueInt(tc.b),
		})
		require.Nil(t, err, "NIF %v", tc.name)
		assert.Equal(t, tc.expected, v, "NIF %v", tc.name)
	}
}

func TestDivisionByZero(t *testing.T) {
	env := compile.NewEnvironment()
	require.Nil(t, Register(env, &vutil.MemoryMouth{}))

	for _, name := range []string{"/", "%"} {
		nif := registeredNif(t, env, name)
		_, err := nif.Call.Pure([]bytecode.Value{
			bytecode.NewValueInt(1), bytecode.NewValueInt(0),
		})
		require.NotNil(t, err, "NIF %v", name)
		assert.Contains(t, err.Error(), "division by zero")
	}
}

func TestNifArityChecks(t *testing.T) {
	env := compile.NewEnvironment()
	require.Nil(t, Register(env, &vutil.MemoryMouth{}))

	nif := registeredNif(t, env, "+")
	_, err := nif.Call.Pure([]bytecode.Value{bytecode.NewValueInt(1)})
	require.NotNil(t, err)
	arityErr := &vm.ArityError{}
	require.ErrorAs(t, err, &arityErr)
	assert.Equal(t, 2, arityErr.Expected)
	assert.Equal(t, 1, arityErr.Got)
}

func TestNifTypeChecks(t *testing.T) {
	env := compile.NewEnvironment()
	require.Nil(t, Register(env, &vutil.MemoryMouth{}))

	nif := registeredNif(t, env, "+")
	_, err := nif.Call.Pure([]bytecode.Value{
		bytecode.NewValueBool(true), bytecode.NewValueInt(1),
	})
	require.NotNil(t, err)
	kindErr := &vm.ValueKindUnexpected{}
	require.ErrorAs(t, err, &kindErr)
	assert.Equal(t, bytecode.ValueKindIntegral, kindErr.Expected)
}

func TestGenericEquality(t *testing.T) {
	env := compile.NewEnvironment()
	require.Nil(t, Register(env, &vutil.MemoryMouth{}))

	nif := registeredNif(t, env, "=")
	v, err := nif.Call.Pure([]bytecode.Value{
		bytecode.NewValueString("a"), bytecode.NewValueString("a"),
	})
	require.Nil(t, err)
	assert.Equal(t, bytecode.NewValueBool(true), v)

	v, err = nif.Call.Pure([]bytecode.Value{
		bytecode.NewValueString("a"), bytecode.NewValueInt(1),
	})
	require.Nil(t, err)
	assert.Equal(t, bytecode.NewValueBool(false), v)
}

func TestPrintAndPrintln(t *testing.T) {
	mouth := &vutil.MemoryMouth{}
	env := compile.NewEnvironment()
	require.Nil(t, Register(env, mouth))

	print := registeredNif(t, env, "print")
	println := registeredNif(t, env, "println")

	_, err := print.Call.Pure([]bytecode.Value{bytecode.NewValueString("a")})
	require.Nil(t, err)
	_, err = println.Call.Pure([]bytecode.Value{bytecode.NewValueInt(7)})
	require.Nil(t, err)

	// println flushes; the print output rides along in the same chunk.
	assert.Equal(t, []string{"a7\n"}, mouth.Outputs)
}

func TestRegistrationOrderIsStable(t *testing.T) {
	// Serialized modules store NifIds, so two environments built by Register
	// must hand out the same ids.
	envA := compile.NewEnvironment()
	require.Nil(t, Register(envA, &vutil.MemoryMouth{}))
	envB := compile.NewEnvironment()
	require.Nil(t, Register(envB, &vutil.MemoryMouth{}))

	for _, name := range []string{"/+", "/print", "/abort", "/call_depth"} {
		idA, okA := envA.NifByPath(name)
		idB, okB := envB.NifByPath(name)
		require.True(t, okA && okB, "NIF %v", name)
		assert.Equal(t, idA, idB, "NIF %v", name)
	}
}
