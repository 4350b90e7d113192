/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package vm

import (
	"math"

	"go.uber.org/zap"

	"github.com/vireo-lang/vireo/pkg/bytecode"
	"github.com/vireo-lang/vireo/pkg/errs"
)

// Exec executes the function fun of the machine's module, with the given
// arguments, and returns the program value.
//
// The entry call is laid out on the operand stack exactly like a Call
// instruction would, but no return frame is pushed: the return stack is
// empty while the entry function runs, so its Ret is the terminal one.
func Exec(em *ExecutionMachine, fun bytecode.FunId, args []bytecode.Value) (bytecode.Value, errs.Error) {
	if len(args) > math.MaxUint8 {
		return bytecode.Value{}, &ArityOverflow{Got: len(args)}
	}
	arity := bytecode.CallArity(len(args))

	em.baseSP = em.stack.size()
	em.stack.pushCall(bytecode.NewValueFun(fun), args)

	res, err := processCall(em, arity)
	if err != nil {
		return bytecode.Value{}, err
	}
	if !res.jump {
		// The entry point was a NIF after all. Nothing to run.
		em.stack.truncate(em.baseSP)
		em.stack.push(res.value)
		return res.value, nil
	}
	em.enterFunction(res)

	if em.Trace != nil {
		em.Trace.Debug("seeded initial frame")
	}

	return execLoop(em)
}

// ExecContinue resumes execution after a suspension point. It fails with
// ExecutionFinished if there is nothing to resume: the previous run
// terminated, or no run was ever started.
func ExecContinue(em *ExecutionMachine) (bytecode.Value, errs.Error) {
	if len(em.rets) == 0 {
		return bytecode.Value{}, &ExecutionFinished{}
	}
	return execLoop(em)
}

// execLoop runs the dispatch loop until the program yields its value or an
// error is raised. The abort flag is observed once per iteration, before
// dispatching, so a pending abort wins over the next instruction.
func execLoop(em *ExecutionMachine) (bytecode.Value, errs.Error) {
	for {
		if em.Aborted() {
			return bytecode.Value{}, &Abort{}
		}
		v, err := step(em)
		if err != nil {
			return bytecode.Value{}, err
		}
		if v != nil {
			return *v, nil
		}
	}
}

// step decodes and executes one single instruction, leaving the instruction
// pointer at the next instruction to execute. It returns a non-nil value
// exactly when the program terminated, yielding that value.
func step(em *ExecutionMachine) (*bytecode.Value, errs.Error) {
	code := em.module.Code
	op := bytecode.OpCode(code[em.ip])
	em.traceStep(op)

	switch op {
	case bytecode.OpPushLiteral:
		id := bytecode.LitId(bytecode.DecodeUInt31(code[em.ip+1:]))
		lit := em.module.Literals[id.Index()]
		em.stack.push(em.params.LiteralToValue(lit))
		em.ipNext()

	case bytecode.OpFetchGlobal:
		id := bytecode.GlobalId(bytecode.DecodeUInt31(code[em.ip+1:]))
		em.pushFromGlobal(id)
		em.ipNext()

	case bytecode.OpFetchNif:
		id := bytecode.NifId(bytecode.DecodeUInt31(code[em.ip+1:]))
		em.stack.push(bytecode.NewValueNif(id))
		em.ipNext()

	case bytecode.OpFetchFun:
		id := bytecode.FunId(bytecode.DecodeUInt31(code[em.ip+1:]))
		em.stack.push(bytecode.NewValueFun(id))
		em.ipNext()

	case bytecode.OpFetchStackLocal:
		bind := bytecode.LocalBind(bytecode.DecodeUInt31(code[em.ip+1:]))
		em.pushFromLocal(bind)
		em.ipNext()

	case bytecode.OpFetchStackParam:
		bind := bytecode.ParamBind(bytecode.DecodeUInt31(code[em.ip+1:]))
		em.pushFromParam(bind)
		em.ipNext()

	case bytecode.OpAccessField:
		expected := bytecode.ConstrId(bytecode.DecodeUInt31(code[em.ip+1:]))
		index := bytecode.DecodeUInt31(code[em.ip+5:])

		val := em.stack.pop()
		st, err := StructValue(val)
		if err != nil {
			return nil, err
		}
		// The tag check precedes the bounds check.
		if st.Constr != expected {
			return nil, &StructMismatch{
				ConstrExpected: expected,
				ConstrGot:      st.Constr,
			}
		}
		if index >= len(st.Fields) {
			return nil, &StructFieldOutOfBound{
				Constr:     st.Constr,
				FieldIndex: index,
				StructLen:  len(st.Fields),
			}
		}
		em.stack.push(st.Fields[index])
		em.ipNext()

	case bytecode.OpLocalBind:
		bind := bytecode.LocalBind(bytecode.DecodeUInt31(code[em.ip+1:]))
		em.setLocal(bind, em.stack.pop())
		em.ipNext()

	case bytecode.OpIgnoreOne:
		_ = em.stack.pop()
		em.ipNext()

	case bytecode.OpCall:
		arity := bytecode.CallArity(code[em.ip+1])
		res, err := processCall(em, arity)
		if err != nil {
			return nil, err
		}
		if res.jump {
			em.rets = append(em.rets, returnFrame{
				retIP:          em.ip + 2,
				savedSP:        em.sp,
				savedStackSize: em.currentStackSize,
				arity:          arity,
			})
			em.enterFunction(res)
		} else {
			em.stack.popCall(arity)
			em.stack.push(res.value)
			em.ipNext()
		}

	case bytecode.OpJump:
		em.ipJump(bytecode.DecodeSInt32(code[em.ip+1:]))

	case bytecode.OpCondJump:
		delta := bytecode.DecodeSInt32(code[em.ip+1:])
		b, err := BoolValue(em.stack.pop())
		if err != nil {
			return nil, err
		}
		if b {
			em.ipNext()
		} else {
			em.ipJump(delta)
		}

	case bytecode.OpRet:
		val := em.stack.pop()
		if len(em.rets) == 0 {
			// Terminal return: unwind the entry frame and yield the program
			// value.
			em.stack.truncate(em.baseSP)
			em.stack.push(val)
			return &val, nil
		}

		frame := em.rets[len(em.rets)-1]
		em.rets = em.rets[:len(em.rets)-1]

		em.spUnlocal(em.currentStackSize)
		em.currentStackSize = frame.savedStackSize
		em.stack.popCall(frame.arity)
		em.sp = frame.savedSP
		em.stack.push(val)
		em.ip = frame.retIP

	default:
		return nil, errs.NewICE("unknown opcode %d at %v", byte(op), em.ip)
	}

	return nil, nil
}

// callResult is the outcome of resolving a call: either a jump into a user
// function, or a value computed right away by a NIF.
type callResult struct {
	jump      bool
	target    bytecode.InstructionAddress
	stackSize bytecode.LocalStackSize
	value     bytecode.Value
}

// processCall resolves the callee of a call of the given arity. The call
// must already be laid out on the operand stack: the callee value, then each
// argument.
//
// For a user function, the result tells the caller where to jump and how big
// a local window to open; the callee and arguments stay on the stack as the
// new frame's parameter window. For a NIF, the callback runs right here and
// the result carries its value; consuming the call layout is left to the
// caller, since the entry path and the Call instruction differ on what to do
// with the stack afterwards.
func processCall(em *ExecutionMachine, arity bytecode.CallArity) (callResult, errs.Error) {
	callee := em.stack.callee(arity)
	fun, err := FunValue(callee)
	if err != nil {
		if em.Trace != nil {
			em.Trace.Debug("callee is not callable",
				zap.Stringer("kind", bytecode.KindOf(callee)))
		}
		return callResult{}, err
	}

	if fun.Native {
		nif := em.environ.NIFs[fun.Nif.Index()]

		var res bytecode.Value
		var nifErr errs.Error
		switch {
		case nif.Call.Pure != nil:
			res, nifErr = nif.Call.Pure(em.stack.args(arity))
		case nif.Call.Mut != nil:
			args := make([]bytecode.Value, int(arity))
			copy(args, em.stack.args(arity))
			res, nifErr = nif.Call.Mut(em, args)
		default:
			return callResult{}, errs.NewICE("NIF %v has no callback", fun.Nif)
		}
		if nifErr != nil {
			return callResult{}, nifErr
		}
		return callResult{value: res}, nil
	}

	def := em.module.Functions[fun.Fun.Index()]
	return callResult{
		jump:      true,
		target:    def.CodePos,
		stackSize: def.StackSize,
	}, nil
}

// enterFunction completes the frame setup for a jump into a user function:
// the stack pointer moves past the arguments, the local window opens, and
// the instruction pointer lands on the function's first instruction. Both
// the entry path and the Call instruction funnel through here, so the two
// ways of starting a function produce identical frame layouts.
func (em *ExecutionMachine) enterFunction(res callResult) {
	em.spSet(res.stackSize)
	em.ip = res.target
}
