/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import "fmt"

// Validate checks that the module is internally consistent: every literal,
// global, function and constructor id stored in an instruction refers to a
// live entry in its table, every jump target lies inside the Code, every
// instruction decodes cleanly, and the function table points into the Code.
// NIF ids are not checked: the NIF table belongs to the execution
// environment, not to the module. This is what "module finalization" means
// from the VM's point of view: a validated module can be executed without
// per-instruction bounds checking of its literal, function and constructor
// indices.
func (m *CompiledModule) Validate() error {
	for i, f := range m.Functions {
		if f.CodePos < 0 || f.CodePos >= len(m.Code) {
			return fmt.Errorf("function %v: code position %v out of bounds", FunIdFromIndex(i), f.CodePos)
		}
	}

	offset := 0
	for offset < len(m.Code) {
		op := OpCode(m.Code[offset])

		var size int
		switch op {
		case OpPushLiteral, OpFetchGlobal, OpFetchNif, OpFetchFun,
			OpFetchStackLocal, OpFetchStackParam, OpLocalBind,
			OpAccessField, OpIgnoreOne, OpCall, OpJump, OpCondJump, OpRet:
			size = 1 + OperandsSize(op)
		default:
			return fmt.Errorf("unknown opcode %d at %v", byte(op), offset)
		}
		if offset+size > len(m.Code) {
			return fmt.Errorf("truncated instruction %v at %v", op, offset)
		}

		switch op {
		case OpPushLiteral:
			if err := checkIndex(m.Code[offset+1:], len(m.Literals), "literal", offset); err != nil {
				return err
			}
		case OpFetchGlobal:
			if err := checkIndex(m.Code[offset+1:], len(m.Globals), "global", offset); err != nil {
				return err
			}
		case OpFetchFun:
			if err := checkIndex(m.Code[offset+1:], len(m.Functions), "function", offset); err != nil {
				return err
			}
		case OpAccessField:
			if err := checkIndex(m.Code[offset+1:], len(m.Constructors), "constructor", offset); err != nil {
				return err
			}
		case OpJump, OpCondJump:
			target := offset + DecodeSInt32(m.Code[offset+1:])
			if target < 0 || target >= len(m.Code) {
				return fmt.Errorf("jump target %v out of bounds at %v", target, offset)
			}
		}

		offset += size
	}

	return nil
}

// checkIndex checks that the 31-bit index encoded in code fits a table of
// the given length.
func checkIndex(code []byte, tableLen int, what string, offset int) error {
	index := DecodeUInt31(code)
	if index >= tableLen {
		return fmt.Errorf("%v index %v out of bounds at %v", what, index, offset)
	}
	return nil
}
