/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import (
	"encoding/binary"
	"math"
)

// EncodeUInt31 encodes an unsigned 31-bit integer into the four first bytes
// of code. Panics if v does not fit into 31 bits.
func EncodeUInt31(code []byte, v int) {
	if v < 0 || v > math.MaxInt32 {
		panic("Value does not fit into 31 bits")
	}
	binary.LittleEndian.PutUint32(code, uint32(v))
}

// DecodeUInt31 decodes the first four bytes in code into an unsigned 31-bit
// integer. Panics if the value read does not fit into 31 bits.
func DecodeUInt31(code []byte) int {
	v := binary.LittleEndian.Uint32(code)
	if v > math.MaxInt32 {
		panic("Value does not fit into 31 bits")
	}
	return int(v)
}

// EncodeSInt32 encodes a signed 32-bit integer into the four first bytes of
// code. Used for jump offsets. Panics if v does not fit into 32 bits.
func EncodeSInt32(code []byte, v int) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		panic("Value does not fit into 32 bits")
	}
	binary.LittleEndian.PutUint32(code, uint32(int32(v)))
}

// DecodeSInt32 decodes the first four bytes in code into a signed 32-bit
// integer.
func DecodeSInt32(code []byte) int {
	return int(int32(binary.LittleEndian.Uint32(code)))
}

// OperandsSize returns the number of operand bytes following op. Together
// with the opcode byte itself, this determines how far the instruction
// pointer advances past an instruction.
func OperandsSize(op OpCode) int {
	switch op {
	case OpIgnoreOne, OpRet:
		return 0
	case OpCall:
		return 1
	case OpPushLiteral, OpFetchGlobal, OpFetchNif, OpFetchFun,
		OpFetchStackLocal, OpFetchStackParam, OpLocalBind, OpJump, OpCondJump:
		return 4
	case OpAccessField:
		return 8
	}
	panic("unknown opcode")
}
