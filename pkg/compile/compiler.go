/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package compile

import (
	"fmt"
	"math"

	"github.com/vireo-lang/vireo/pkg/bytecode"
	"github.com/vireo-lang/vireo/pkg/errs"
	"github.com/vireo-lang/vireo/pkg/ir"
)

// CompilationParams groups the embedder-provided hooks the compiler needs.
type CompilationParams struct {
	// LiteralMapper maps an IR literal to the host-interpreted literal
	// stored in the module's literal pool. Returning an error rejects the
	// literal (e.g. a backend without decimal support).
	LiteralMapper func(lit ir.Literal) (bytecode.Literal, error)
}

// Compile compiles a lowered module mounted at the given namespace into a
// CompiledModule, resolving identifiers against env. sourceName is used for
// error messages only.
func Compile(params CompilationParams, sourceName string, ns Namespace, mod *ir.Module, env *Environment) (*bytecode.CompiledModule, *bytecode.DebugInfo, errs.Error) {
	cg := &codeGenerator{
		params:     params,
		sourceName: sourceName,
		ns:         ns,
		env:        env,
		module:     &bytecode.CompiledModule{FunsTbl: map[string]bytecode.FunId{}},
		debugInfo:  &bytecode.DebugInfo{},
	}

	// Pass one: register every named function, so that bodies can reference
	// functions defined later in the program.
	for _, stmt := range mod.Statements {
		switch n := stmt.(type) {
		case *ir.FunctionStatement:
			if err := cg.declareFunction(n); err != nil {
				return nil, nil, err
			}

		case *ir.ExprStatement:
			return nil, nil, errs.NewCompileTimeWithoutLine(sourceName,
				"top-level expressions are not supported; wrap the code in a function")

		default:
			return nil, nil, errs.NewICE("unknown statement type: %T", n)
		}
	}

	// Pass two: generate code. Lambdas encountered along the way join the
	// queue as anonymous functions.
	for len(cg.pending) > 0 {
		p := cg.pending[0]
		cg.pending = cg.pending[1:]
		if err := cg.compileFunction(p); err != nil {
			return nil, nil, err
		}
	}

	// The environment's constructors and globals become the module's tables.
	cg.module.Constructors = append([]bytecode.ConstructorDef(nil), env.constructors...)
	cg.module.Globals = append([]bytecode.Value(nil), env.globals...)

	if err := cg.module.Validate(); err != nil {
		return nil, nil, errs.NewICE("compiled module failed validation: %v", err)
	}

	return cg.module, cg.debugInfo, nil
}

// pendingFun is a function waiting for code generation: either a named
// function from pass one, or a lambda lifted during pass two.
type pendingFun struct {
	id     bytecode.FunId
	name   string
	span   ir.Span
	params []ir.Variable
	body   ir.Expr

	// enclosingNames are the parameter and local names visible where a
	// lambda appeared. Used only to report captures as such, instead of as
	// undefined identifiers.
	enclosingNames []ir.Ident
}

// codeGenerator holds the state shared by all functions being compiled into
// one module.
type codeGenerator struct {
	params     CompilationParams
	sourceName string
	ns         Namespace
	env        *Environment
	module     *bytecode.CompiledModule
	debugInfo  *bytecode.DebugInfo
	pending    []pendingFun
}

// declareFunction assigns a FunId to a named function and queues its body
// for code generation.
func (cg *codeGenerator) declareFunction(fn *ir.FunctionStatement) errs.Error {
	path := NewAbsPath(cg.ns, string(fn.Name)).String()
	if _, exists := cg.module.FunsTbl[path]; exists {
		return errs.NewCompileTime(cg.sourceName, fn.Span.Line,
			"duplicate definition of function '%v'", fn.Name)
	}

	id, err := cg.newFunction(string(fn.Name))
	if err != nil {
		return err
	}
	cg.module.FunsTbl[path] = id
	cg.pending = append(cg.pending, pendingFun{
		id:     id,
		name:   string(fn.Name),
		span:   fn.Span,
		params: fn.Params,
		body:   fn.Body,
	})
	return nil
}

// newFunction appends a placeholder entry to the function table and returns
// its id. CodePos, StackSize and Arity get filled in when the function's
// body is compiled.
func (cg *codeGenerator) newFunction(name string) (bytecode.FunId, errs.Error) {
	if len(cg.module.Functions) >= bytecode.MaxTableEntries {
		return 0, errs.NewCompileTimeWithoutLine(cg.sourceName,
			"too many functions in one module, the maximum is %v", bytecode.MaxTableEntries)
	}
	id := bytecode.FunIdFromIndex(len(cg.module.Functions))
	cg.module.Functions = append(cg.module.Functions, bytecode.FunctionDef{})
	cg.debugInfo.FunctionNames = append(cg.debugInfo.FunctionNames, name)
	return id, nil
}

// compileFunction generates the code of one function.
func (cg *codeGenerator) compileFunction(p pendingFun) errs.Error {
	if len(p.params) > math.MaxUint8 {
		return errs.NewCompileTime(cg.sourceName, p.span.Line,
			"function '%v' takes too many parameters: %v", p.name, len(p.params))
	}

	fc := &funcCompiler{
		cg:             cg,
		params:         map[ir.Ident]bytecode.ParamBind{},
		enclosingNames: p.enclosingNames,
	}

	// Parameter i of an arity-A function sits A-1-i slots below the frame
	// boundary: arguments are pushed in order, so the last one is nearest.
	arity := len(p.params)
	for i, prm := range p.params {
		if _, dup := fc.params[prm.Name]; dup {
			return errs.NewCompileTime(cg.sourceName, prm.Span.Line,
				"duplicate parameter '%v' in function '%v'", prm.Name, p.name)
		}
		fc.params[prm.Name] = bytecode.ParamBind(arity - 1 - i)
	}

	// Note the index-based writes: compiling the body can append lambdas to
	// the function table, so a pointer into it would go stale.
	cg.module.Functions[p.id.Index()].CodePos = len(cg.module.Code)
	cg.module.Functions[p.id.Index()].Arity = bytecode.CallArity(arity)

	if err := fc.compileExpr(p.body); err != nil {
		return err
	}
	fc.emitOp(bytecode.OpRet)

	cg.module.Functions[p.id.Index()].StackSize = bytecode.LocalStackSize(fc.maxSlots)
	return nil
}

// localVar is one live local binding during code generation.
type localVar struct {
	name ir.Ident
	slot int
}

// funcCompiler holds the per-function code generation state.
type funcCompiler struct {
	cg             *codeGenerator
	params         map[ir.Ident]bytecode.ParamBind
	locals         []localVar
	maxSlots       int
	enclosingNames []ir.Ident
}

//
// Emission helpers
//

// emitOp appends a bare opcode to the module code.
func (fc *funcCompiler) emitOp(op bytecode.OpCode) {
	fc.cg.module.Code = append(fc.cg.module.Code, byte(op))
}

// emitOpU31 appends an opcode with a single 31-bit operand.
func (fc *funcCompiler) emitOpU31(op bytecode.OpCode, operand int) {
	code := &fc.cg.module.Code
	operandStart := len(*code) + 1
	*code = append(*code, byte(op), 0, 0, 0, 0)
	bytecode.EncodeUInt31((*code)[operandStart:], operand)
}

// emitJump appends a jump-family opcode with a placeholder offset, and
// returns the instruction's address for later patching.
func (fc *funcCompiler) emitJump(op bytecode.OpCode) int {
	pos := len(fc.cg.module.Code)
	fc.cg.module.Code = append(fc.cg.module.Code, byte(op), 0, 0, 0, 0)
	return pos
}

// patchJump makes the jump at pos land on the next instruction to be
// emitted. Offsets are relative to the jump instruction itself.
func (fc *funcCompiler) patchJump(pos int) {
	delta := len(fc.cg.module.Code) - pos
	bytecode.EncodeSInt32(fc.cg.module.Code[pos+1:], delta)
}

//
// Scope handling
//

// declareLocal binds a name to a fresh local slot and returns the slot.
func (fc *funcCompiler) declareLocal(name ir.Ident) int {
	slot := len(fc.locals)
	fc.locals = append(fc.locals, localVar{name: name, slot: slot})
	if len(fc.locals) > fc.maxSlots {
		fc.maxSlots = len(fc.locals)
	}
	return slot
}

// releaseLocal undoes the innermost declareLocal.
func (fc *funcCompiler) releaseLocal() {
	fc.locals = fc.locals[:len(fc.locals)-1]
}

//
// Expression compilation
//

func (fc *funcCompiler) compileExpr(expr ir.Expr) errs.Error {
	switch n := expr.(type) {
	case *ir.LiteralExpr:
		lit, err := fc.cg.params.LiteralMapper(n.Literal)
		if err != nil {
			return errs.NewCompileTime(fc.cg.sourceName, n.Span.Line, "%v", err)
		}
		if len(fc.cg.module.Literals) >= bytecode.MaxTableEntries {
			return errs.NewCompileTime(fc.cg.sourceName, n.Span.Line,
				"too many literals in one module, the maximum is %v", bytecode.MaxTableEntries)
		}
		id := fc.cg.module.AddLiteral(lit)
		fc.emitOpU31(bytecode.OpPushLiteral, id.Index())
		return nil

	case *ir.ListExpr:
		return errs.NewCompileTime(fc.cg.sourceName, n.Span.Line,
			"list expressions are not supported")

	case *ir.LetExpr:
		if err := fc.compileExpr(n.Value); err != nil {
			return err
		}
		slot := fc.declareLocal(n.Name.Name)
		fc.emitOpU31(bytecode.OpLocalBind, slot)
		if err := fc.compileExpr(n.Body); err != nil {
			return err
		}
		fc.releaseLocal()
		return nil

	case *ir.ThenExpr:
		if err := fc.compileExpr(n.First); err != nil {
			return err
		}
		fc.emitOp(bytecode.OpIgnoreOne)
		return fc.compileExpr(n.Second)

	case *ir.IdentExpr:
		return fc.compileIdent(n)

	case *ir.LambdaExpr:
		return fc.compileLambda(n)

	case *ir.CallExpr:
		arity := len(n.Items) - 1
		if arity > math.MaxUint8 {
			return errs.NewCompileTime(fc.cg.sourceName, n.Span.Line,
				"call with too many arguments: %v", arity)
		}
		for _, item := range n.Items {
			if err := fc.compileExpr(item); err != nil {
				return err
			}
		}
		fc.emitOp(bytecode.OpCall)
		fc.cg.module.Code = append(fc.cg.module.Code, byte(arity))
		return nil

	case *ir.IfExpr:
		if err := fc.compileExpr(n.Cond); err != nil {
			return err
		}
		elseJump := fc.emitJump(bytecode.OpCondJump)
		if err := fc.compileExpr(n.Then); err != nil {
			return err
		}
		endJump := fc.emitJump(bytecode.OpJump)
		fc.patchJump(elseJump)
		if err := fc.compileExpr(n.Else); err != nil {
			return err
		}
		fc.patchJump(endJump)
		return nil

	default:
		return errs.NewICE("unknown expression type: %T", n)
	}
}

// compileIdent resolves an identifier and emits the fetch for it. The
// resolution order is: local bindings (innermost first), parameters, then
// the global scope (functions, NIFs, globals) -- first in the module's
// namespace, then in the root namespace.
func (fc *funcCompiler) compileIdent(n *ir.IdentExpr) errs.Error {
	for i := len(fc.locals) - 1; i >= 0; i-- {
		if fc.locals[i].name == n.Name {
			fc.emitOpU31(bytecode.OpFetchStackLocal, fc.locals[i].slot)
			return nil
		}
	}

	if bind, ok := fc.params[n.Name]; ok {
		fc.emitOpU31(bytecode.OpFetchStackParam, int(bind))
		return nil
	}

	for _, path := range fc.cg.searchPaths(string(n.Name)) {
		if id, ok := fc.cg.module.FunsTbl[path]; ok {
			fc.emitOpU31(bytecode.OpFetchFun, id.Index())
			return nil
		}
		if id, ok := fc.cg.env.NifByPath(path); ok {
			fc.emitOpU31(bytecode.OpFetchNif, id.Index())
			return nil
		}
		if id, ok := fc.cg.env.GlobalByPath(path); ok {
			fc.emitOpU31(bytecode.OpFetchGlobal, id.Index())
			return nil
		}
	}

	for _, name := range fc.enclosingNames {
		if name == n.Name {
			return errs.NewCompileTime(fc.cg.sourceName, n.Span.Line,
				"lambda cannot capture '%v' from the enclosing function", n.Name)
		}
	}

	return errs.NewCompileTime(fc.cg.sourceName, n.Span.Line,
		"undefined identifier '%v'", n.Name)
}

// compileLambda lifts a lambda to an anonymous module function and emits a
// fetch of it.
func (fc *funcCompiler) compileLambda(n *ir.LambdaExpr) errs.Error {
	name := fmt.Sprintf("<lambda:%d>", len(fc.cg.module.Functions))
	id, err := fc.cg.newFunction(name)
	if err != nil {
		return err
	}

	// Remember every name visible here: the lambda body cannot use them (no
	// environment capture at runtime), but we want to say so explicitly.
	visible := make([]ir.Ident, 0, len(fc.params)+len(fc.locals)+len(fc.enclosingNames))
	for prm := range fc.params {
		visible = append(visible, prm)
	}
	for _, l := range fc.locals {
		visible = append(visible, l.name)
	}
	visible = append(visible, fc.enclosingNames...)

	fc.cg.pending = append(fc.cg.pending, pendingFun{
		id:             id,
		name:           name,
		span:           n.Span,
		params:         n.Params,
		body:           n.Body,
		enclosingNames: visible,
	})

	fc.emitOpU31(bytecode.OpFetchFun, id.Index())
	return nil
}

// searchPaths returns the absolute paths an unqualified name is looked up
// under, in priority order.
func (cg *codeGenerator) searchPaths(name string) []string {
	inNS := NewAbsPath(cg.ns, name).String()
	inRoot := NewAbsPath(RootNamespace(), name).String()
	if inNS == inRoot {
		return []string{inRoot}
	}
	return []string{inNS, inRoot}
}
