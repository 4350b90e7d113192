/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import (
	"fmt"
	"io"
)

// Disassemble writes a disassembly of the whole module to out. debugInfo is
// optional: if not nil, it will be used for better disassembly.
func (m *CompiledModule) Disassemble(out io.Writer, debugInfo *DebugInfo) {
	funStarts := map[InstructionAddress]FunId{}
	for i, f := range m.Functions {
		funStarts[f.CodePos] = FunIdFromIndex(i)
	}

	offset := 0
	for offset < len(m.Code) {
		if id, ok := funStarts[offset]; ok {
			def := m.Functions[id.Index()]
			fmt.Fprintf(out, "\n%v [%v] (arity %d, stack size %d):\n",
				id, debugInfo.FunctionName(id), def.Arity, def.StackSize)
		}
		offset = m.DisassembleInstruction(out, offset, debugInfo)
	}
}

// DisassembleInstruction disassembles the instruction at a given offset of
// the module Code and returns the offset of the next instruction. Output is
// written to out. debugInfo is optional: if not nil, it will be used for
// better disassembly.
func (m *CompiledModule) DisassembleInstruction(out io.Writer, offset int, debugInfo *DebugInfo) int {
	fmt.Fprintf(out, "%05v ", offset)

	op := OpCode(m.Code[offset])

	switch op {
	case OpPushLiteral:
		index := DecodeUInt31(m.Code[offset+1:])
		detail := "<out of bounds>"
		if index < len(m.Literals) {
			detail = fmt.Sprintf("%v", m.Literals[index])
		}
		fmt.Fprintf(out, "%-16s %v '%v'\n", op, LitIdFromIndex(index), detail)

	case OpFetchGlobal:
		index := DecodeUInt31(m.Code[offset+1:])
		detail := "<out of bounds>"
		if index < len(m.Globals) {
			detail = m.Globals[index].DebugString(debugInfo)
		}
		fmt.Fprintf(out, "%-16s %v '%v'\n", op, GlobalIdFromIndex(index), detail)

	case OpFetchNif:
		index := DecodeUInt31(m.Code[offset+1:])
		fmt.Fprintf(out, "%-16s %v\n", op, NifIdFromIndex(index))

	case OpFetchFun:
		index := DecodeUInt31(m.Code[offset+1:])
		fmt.Fprintf(out, "%-16s %v [%v]\n", op, FunIdFromIndex(index),
			debugInfo.FunctionName(FunIdFromIndex(index)))

	case OpFetchStackLocal, OpFetchStackParam, OpLocalBind:
		index := DecodeUInt31(m.Code[offset+1:])
		fmt.Fprintf(out, "%-16s %v\n", op, index)

	case OpAccessField:
		constr := DecodeUInt31(m.Code[offset+1:])
		field := DecodeUInt31(m.Code[offset+5:])
		name := ""
		if constr < len(m.Constructors) {
			name = fmt.Sprintf(" [%v]", m.Constructors[constr].Name)
		}
		fmt.Fprintf(out, "%-16s %v%v .%v\n", op, ConstrIdFromIndex(constr), name, field)

	case OpIgnoreOne, OpRet:
		fmt.Fprintf(out, "%v\n", op)

	case OpCall:
		arity := m.Code[offset+1]
		fmt.Fprintf(out, "%-16s %v\n", op, arity)

	case OpJump, OpCondJump:
		delta := DecodeSInt32(m.Code[offset+1:])
		fmt.Fprintf(out, "%-16s %+d -> %05v\n", op, delta, offset+delta)

	default:
		fmt.Fprintf(out, "Unknown opcode %d\n", byte(op))
		return offset + 1
	}

	return offset + 1 + OperandsSize(op)
}
