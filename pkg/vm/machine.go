/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package vm

import (
	"fmt"
	"io"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/vireo-lang/vireo/pkg/bytecode"
)

// An ExecutionMachine is the whole state needed to execute a compiled
// module: the operand stack, the return stack, the instruction pointer and
// the frame bookkeeping.
//
// A machine is owned by a single driver: none of its methods may be called
// concurrently, with the single exception of Abort, which may be called from
// another goroutine (or a signal handler) to request cooperative
// cancellation.
type ExecutionMachine struct {
	// Userdata is an opaque embedder context. The machine never touches it;
	// Mut NIFs can.
	Userdata any

	// Trace, if set, receives one debug entry per instruction executed. Nil
	// means no tracing.
	Trace *zap.Logger

	// module is the compiled module being executed. Read-only.
	module *bytecode.CompiledModule

	// environ holds the NIF and global tables. Read-only.
	environ *ExecutionEnviron

	// params holds the embedder hooks.
	params ExecutionParams

	// stack is the operand stack.
	stack Stack

	// rets is the return stack. It has one entry for every function that has
	// started running but hasn't returned yet, except the entry function.
	rets []returnFrame

	// ip is the instruction pointer: the address of the next instruction to
	// decode.
	ip bytecode.InstructionAddress

	// sp is the stack pointer: the boundary between the caller's portion of
	// the operand stack and the current frame's local window.
	sp int

	// currentStackSize is the local window size of the current frame.
	currentStackSize bytecode.LocalStackSize

	// baseSP is the operand stack height at entry, used to unwind the entry
	// frame on the terminal return.
	baseSP int

	// aborted is the cooperative cancellation flag.
	aborted atomic.Bool
}

// returnFrame is one entry of the return stack: everything needed to resume
// the caller when the callee returns.
type returnFrame struct {
	retIP          bytecode.InstructionAddress
	savedSP        int
	savedStackSize bytecode.LocalStackSize
	arity          bytecode.CallArity
}

// NewExecutionMachine returns a new machine ready to execute module within
// environ. userdata is an arbitrary embedder context made available to Mut
// NIFs.
func NewExecutionMachine(module *bytecode.CompiledModule, environ *ExecutionEnviron, params ExecutionParams, userdata any) *ExecutionMachine {
	return &ExecutionMachine{
		Userdata: userdata,
		module:   module,
		environ:  environ,
		params:   params,
	}
}

// Module returns the compiled module this machine executes.
func (em *ExecutionMachine) Module() *bytecode.CompiledModule {
	return em.module
}

// Abort requests cooperative cancellation. Safe to call from another
// goroutine; the dispatch loop observes the flag between instructions and
// fails the execution with an Abort error.
func (em *ExecutionMachine) Abort() {
	em.aborted.Store(true)
}

// Aborted reports whether cancellation has been requested.
func (em *ExecutionMachine) Aborted() bool {
	return em.aborted.Load()
}

// Reset returns the machine to its initial state, so that a new Exec can
// start from scratch. This is the only sanctioned way to reuse a machine
// after an error or an abort.
func (em *ExecutionMachine) Reset() {
	em.stack.truncate(0)
	em.rets = em.rets[:0]
	em.ip = 0
	em.sp = 0
	em.currentStackSize = 0
	em.baseSP = 0
	em.aborted.Store(false)
}

// IP returns the current instruction pointer. Meant for post-mortem
// inspection.
func (em *ExecutionMachine) IP() bytecode.InstructionAddress {
	return em.ip
}

// SP returns the current stack pointer. Meant for post-mortem inspection.
func (em *ExecutionMachine) SP() int {
	return em.sp
}

// StackSize returns the current operand stack height.
func (em *ExecutionMachine) StackSize() int {
	return em.stack.size()
}

// CallDepth returns the number of frames on the return stack.
func (em *ExecutionMachine) CallDepth() int {
	return len(em.rets)
}

//
// Frame and pointer bookkeeping
//

// ipNext advances the instruction pointer past the instruction at the
// current address.
func (em *ExecutionMachine) ipNext() {
	op := bytecode.OpCode(em.module.Code[em.ip])
	em.ip += 1 + bytecode.OperandsSize(op)
}

// ipJump applies a relative jump to the instruction pointer.
func (em *ExecutionMachine) ipJump(delta int) {
	em.ip += delta
}

// spSet makes the current operand stack top the new frame boundary and
// reserves a local window of the given size above it.
func (em *ExecutionMachine) spSet(size bytecode.LocalStackSize) {
	em.sp = em.stack.size()
	for i := bytecode.LocalStackSize(0); i < size; i++ {
		em.stack.push(bytecode.NewValueUnit())
	}
	em.currentStackSize = size
}

// spUnlocal frees the local window of the current frame.
func (em *ExecutionMachine) spUnlocal(size bytecode.LocalStackSize) {
	em.stack.popN(int(size))
}

// pushFromLocal pushes a copy of the given local slot.
func (em *ExecutionMachine) pushFromLocal(bind bytecode.LocalBind) {
	em.stack.push(em.stack.at(em.sp + int(bind)))
}

// pushFromParam pushes a copy of the given parameter. Parameter offsets
// address back from the frame boundary: offset 0 is the argument nearest
// to it.
func (em *ExecutionMachine) pushFromParam(bind bytecode.ParamBind) {
	em.stack.push(em.stack.at(em.sp - int(bind) - 1))
}

// pushFromGlobal pushes a copy of the given global table entry.
func (em *ExecutionMachine) pushFromGlobal(id bytecode.GlobalId) {
	em.stack.push(em.environ.Globals[id.Index()])
}

// setLocal stores a value into the given local slot.
func (em *ExecutionMachine) setLocal(bind bytecode.LocalBind, v bytecode.Value) {
	em.stack.setAt(em.sp+int(bind), v)
}

// DebugState writes a dump of the machine state to w: instruction pointer,
// stack pointer, operand stack and return stack. State is preserved when an
// execution fails, so this is the tool for post-mortem inspection.
func (em *ExecutionMachine) DebugState(w io.Writer) {
	fmt.Fprintf(w, "IP=%v SP=%v locals=%v frames=%v\n",
		em.ip, em.sp, em.currentStackSize, len(em.rets))

	fmt.Fprint(w, "Stack: ")
	for _, v := range em.stack.data {
		fmt.Fprintf(w, "[ %v ]", v)
	}
	fmt.Fprint(w, "\n")

	for i := len(em.rets) - 1; i >= 0; i-- {
		f := em.rets[i]
		fmt.Fprintf(w, "  frame %v: ret=%v sp=%v locals=%v arity=%v\n",
			i, f.retIP, f.savedSP, f.savedStackSize, f.arity)
	}
}

// traceStep logs the instruction about to be executed, if tracing is on.
func (em *ExecutionMachine) traceStep(op bytecode.OpCode) {
	if em.Trace == nil {
		return
	}
	em.Trace.Debug("step",
		zap.Int("ip", em.ip),
		zap.Stringer("op", op),
		zap.Int("sp", em.sp),
		zap.Int("stack", em.stack.size()),
		zap.Int("frames", len(em.rets)))
}
