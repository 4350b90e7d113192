/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testModule assembles a small but fully-populated module by hand.
func testModule() *CompiledModule {
	m := &CompiledModule{FunsTbl: map[string]FunId{}}

	m.AddLiteral(int64(7))
	m.AddLiteral(true)
	m.AddLiteral("hello")

	// main: PushLiteral(L0); Ret
	code := make([]byte, 5)
	code[0] = byte(OpPushLiteral)
	EncodeUInt31(code[1:], 0)
	m.Code = append(m.Code, code...)
	m.Code = append(m.Code, byte(OpRet))

	m.Functions = append(m.Functions, FunctionDef{CodePos: 0, StackSize: 2, Arity: 0})
	m.FunsTbl["/main/main"] = FunIdFromIndex(0)

	m.Constructors = append(m.Constructors, ConstructorDef{
		Name:       "Pair",
		FieldCount: 2,
		FieldNames: []string{"first", "second"},
	})

	m.Globals = append(m.Globals,
		NewValueInt(99),
		NewValueStruct(ConstrIdFromIndex(0), []Value{NewValueInt(1), NewValueUnit()}),
	)

	return m
}

func TestModuleSerializationRoundTrip(t *testing.T) {
	m := testModule()

	buf := &bytes.Buffer{}
	require.NoError(t, m.Serialize(buf))

	loaded := &CompiledModule{}
	require.NoError(t, loaded.Deserialize(buf))

	assert.Equal(t, m.Code, loaded.Code)
	assert.Equal(t, m.Literals, loaded.Literals)
	assert.Equal(t, m.Functions, loaded.Functions)
	assert.Equal(t, m.Constructors, loaded.Constructors)
	assert.Equal(t, m.FunsTbl, loaded.FunsTbl)
	require.Len(t, loaded.Globals, 2)
	assert.True(t, ValuesEqual(m.Globals[0], loaded.Globals[0]))
	assert.True(t, ValuesEqual(m.Globals[1], loaded.Globals[1]))
}

func TestModuleSerializationRejectsFunctionValues(t *testing.T) {
	m := testModule()
	m.Globals = append(m.Globals, NewValueFun(FunIdFromIndex(0)))

	buf := &bytes.Buffer{}
	err := m.Serialize(buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot serialize function values")
}

func TestModuleDeserializationRejectsBadMagic(t *testing.T) {
	m := testModule()
	buf := &bytes.Buffer{}
	require.NoError(t, m.Serialize(buf))

	data := buf.Bytes()
	data[0] ^= 0xFF

	loaded := &CompiledModule{}
	err := loaded.Deserialize(bytes.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "magic")
}

func TestModuleDeserializationRejectsCorruptedPayload(t *testing.T) {
	m := testModule()
	buf := &bytes.Buffer{}
	require.NoError(t, m.Serialize(buf))

	// Flip a bit somewhere inside the payload; the CRC32 footer must notice.
	data := buf.Bytes()
	data[len(data)-10] ^= 0x01

	loaded := &CompiledModule{}
	err := loaded.Deserialize(bytes.NewReader(data))
	require.Error(t, err)
}

func TestDebugInfoSerializationRoundTrip(t *testing.T) {
	di := &DebugInfo{FunctionNames: []string{"main", "helper", "<lambda:2>"}}

	buf := &bytes.Buffer{}
	require.NoError(t, di.Serialize(buf))

	loaded := &DebugInfo{}
	require.NoError(t, loaded.Deserialize(buf))
	assert.Equal(t, di.FunctionNames, loaded.FunctionNames)
}

func TestValidateCatchesBadIndices(t *testing.T) {
	m := testModule()
	require.NoError(t, m.Validate())

	// Point the literal fetch past the pool.
	bad := testModule()
	EncodeUInt31(bad.Code[1:], 999)
	assert.Error(t, bad.Validate())

	// Function table pointing outside the code.
	bad = testModule()
	bad.Functions[0].CodePos = 1000
	assert.Error(t, bad.Validate())

	// Truncated instruction.
	bad = testModule()
	bad.Code = bad.Code[:len(bad.Code)-3]
	assert.Error(t, bad.Validate())
}

func TestDisassembleSmoke(t *testing.T) {
	m := testModule()
	di := &DebugInfo{FunctionNames: []string{"main"}}

	out := &bytes.Buffer{}
	m.Disassemble(out, di)

	text := out.String()
	assert.Contains(t, text, "PUSH_LITERAL")
	assert.Contains(t, text, "RET")
	assert.Contains(t, text, "main")
}
