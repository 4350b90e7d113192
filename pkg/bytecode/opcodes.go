/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

// OpCode is an opcode in the Vireo Virtual Machine.
type OpCode uint8

const (
	// OpPushLiteral pushes the value materialized from the literal pool entry
	// given by its 31-bit operand.
	OpPushLiteral OpCode = iota

	// OpFetchGlobal pushes the global table entry given by its operand.
	OpFetchGlobal

	// OpFetchNif pushes a function value referring to the NIF given by its
	// operand.
	OpFetchNif

	// OpFetchFun pushes a function value referring to the user function given
	// by its operand.
	OpFetchFun

	// OpFetchStackLocal pushes the local slot given by its operand.
	OpFetchStackLocal

	// OpFetchStackParam pushes the parameter given by its operand.
	OpFetchStackParam

	// OpAccessField pops a struct value and pushes one of its fields. Takes
	// two operands: the expected constructor and the field index.
	OpAccessField

	// OpLocalBind pops a value and stores it into the local slot given by its
	// operand.
	OpLocalBind

	// OpIgnoreOne pops a value and discards it.
	OpIgnoreOne

	// OpCall calls the callee laid out on the stack under the arguments. Its
	// single-byte operand is the call arity.
	OpCall

	// OpJump adds its signed operand to the instruction pointer.
	OpJump

	// OpCondJump pops a boolean; if false it adds its signed operand to the
	// instruction pointer, otherwise execution falls through.
	OpCondJump

	// OpRet returns from the current function with the value on top of the
	// stack. Returning from the outermost frame ends the program.
	OpRet
)

// String converts the OpCode to the mnemonic used by the disassembler.
func (op OpCode) String() string {
	switch op {
	case OpPushLiteral:
		return "PUSH_LITERAL"
	case OpFetchGlobal:
		return "FETCH_GLOBAL"
	case OpFetchNif:
		return "FETCH_NIF"
	case OpFetchFun:
		return "FETCH_FUN"
	case OpFetchStackLocal:
		return "FETCH_LOCAL"
	case OpFetchStackParam:
		return "FETCH_PARAM"
	case OpAccessField:
		return "ACCESS_FIELD"
	case OpLocalBind:
		return "LOCAL_BIND"
	case OpIgnoreOne:
		return "IGNORE_ONE"
	case OpCall:
		return "CALL"
	case OpJump:
		return "JUMP"
	case OpCondJump:
		return "COND_JUMP"
	case OpRet:
		return "RET"
	}
	return "UNKNOWN"
}
