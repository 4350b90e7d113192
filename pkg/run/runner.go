/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package run

import (
	"os"

	"go.uber.org/zap"

	"github.com/vireo-lang/vireo/pkg/bytecode"
	"github.com/vireo-lang/vireo/pkg/compile"
	"github.com/vireo-lang/vireo/pkg/errs"
	"github.com/vireo-lang/vireo/pkg/frontend"
	"github.com/vireo-lang/vireo/pkg/ir"
	"github.com/vireo-lang/vireo/pkg/stdlib"
	"github.com/vireo-lang/vireo/pkg/twi"
	"github.com/vireo-lang/vireo/pkg/vm"
	"github.com/vireo-lang/vireo/pkg/vutil"
)

// A Runner can build and run a Vireo program. Meant to abstract away the
// differences between the tree-walk interpreter and the bytecode VM with
// regards to building and running.
type Runner interface {
	// Build builds the program located at path. Can be called multiple
	// times.
	Build(path string) errs.Error

	// Run runs the program, sending its output to mouth, and returns the
	// program's final value. Can be called after a successful Build().
	Run(mouth vutil.Mouth) (bytecode.Value, errs.Error)
}

// stdEnvironment builds the stock compile-time environment over the given
// mouth. NIF ids depend only on registration order, so environments built
// here at different times (say, one to compile and one to execute) are
// interchangeable.
func stdEnvironment(mouth vutil.Mouth) (*compile.Environment, errs.Error) {
	env := compile.NewEnvironment()
	if err := stdlib.Register(env, mouth); err != nil {
		return nil, err
	}
	return env, nil
}

//
// The bytecode VM runner
//

// vmRunner is a Runner that compiles to bytecode and runs on the VM.
type vmRunner struct {
	trace  *zap.Logger
	module *bytecode.CompiledModule
	di     *bytecode.DebugInfo
}

// NewVMRunner creates a new Runner based on the bytecode VM. trace is
// optional: if not nil, the machine logs every instruction to it.
func NewVMRunner(trace *zap.Logger) Runner {
	return &vmRunner{trace: trace}
}

// Build satisfies the Runner interface. path can be either a source
// directory or a compiled module (*.vrc) file.
func (r *vmRunner) Build(path string) errs.Error {
	isDir, plainErr := vutil.IsDir(path)
	if plainErr != nil {
		return errs.NewCommandPrep("stating %v: %v", path, plainErr)
	}

	if !isDir {
		module, di, err := LoadModuleBinaries(path, false)
		if err != nil {
			return err
		}
		r.module = module
		r.di = di
		return nil
	}

	// Compiling needs the stock NIFs registered; where their output goes is
	// decided again at Run time.
	env, err := stdEnvironment(vutil.NewWriterMouth(os.Stdout))
	if err != nil {
		return err
	}
	module, di, err := CompileProgram(path, env)
	if err != nil {
		return err
	}
	r.module = module
	r.di = di
	return nil
}

// Run satisfies the Runner interface.
func (r *vmRunner) Run(mouth vutil.Mouth) (bytecode.Value, errs.Error) {
	if r.module == nil {
		return bytecode.Value{}, errs.NewICE("Run called before a successful Build")
	}

	env, err := stdEnvironment(mouth)
	if err != nil {
		return bytecode.Value{}, err
	}

	entry, ok := r.module.FunctionByPath(EntryPointPath)
	if !ok {
		return bytecode.Value{}, errs.NewRuntime("program has no %v function", EntryPointPath)
	}

	em := vm.NewExecutionMachine(r.module, env.Finalize(),
		vm.ExecutionParams{LiteralToValue: stdlib.LiteralToValue}, mouth)
	em.Trace = r.trace

	value, execErr := vm.Exec(em, entry, nil)
	mouth.Flush()
	if execErr != nil {
		return bytecode.Value{}, execErr
	}
	return value, nil
}

//
// The tree-walk runner
//

// walkRunner is a Runner based on the tree-walk interpreter.
type walkRunner struct {
	root  string
	irMod *ir.Module
}

// NewWalkRunner creates a new Runner based on the tree-walk interpreter.
func NewWalkRunner() Runner {
	return &walkRunner{}
}

// Build satisfies the Runner interface. Only source directories are
// accepted: the tree-walk interpreter has no use for compiled modules.
func (r *walkRunner) Build(path string) errs.Error {
	if isDir, err := vutil.IsDir(path); err != nil || !isDir {
		return errs.NewCommandPrep("the tree-walk interpreter needs a source directory, and %v isn't one", path)
	}

	irMod, err := LowerProgram(path)
	if err != nil {
		return err
	}
	r.root = path
	r.irMod = irMod
	return nil
}

// Run satisfies the Runner interface.
func (r *walkRunner) Run(mouth vutil.Mouth) (bytecode.Value, errs.Error) {
	if r.irMod == nil {
		return bytecode.Value{}, errs.NewICE("Run called before a successful Build")
	}

	env, err := stdEnvironment(mouth)
	if err != nil {
		return bytecode.Value{}, err
	}

	in, err := twi.New(twi.Params{
		LiteralMapper:  stdlib.LiteralMapper,
		LiteralToValue: stdlib.LiteralToValue,
	}, MainNamespace(), r.irMod, env)
	if err != nil {
		return bytecode.Value{}, err
	}

	value, execErr := in.CallPath(EntryPointPath, nil)
	mouth.Flush()
	if execErr != nil {
		return bytecode.Value{}, execErr
	}
	return value, nil
}

//
// Convenience entry points
//

// RunProgram builds and runs the program at path (a source directory or a
// compiled .vrc file) on the bytecode VM, sending output to mouth.
func RunProgram(path string, mouth vutil.Mouth, trace *zap.Logger) (bytecode.Value, errs.Error) {
	r := NewVMRunner(trace)
	if err := r.Build(path); err != nil {
		return bytecode.Value{}, err
	}
	return r.Run(mouth)
}

// WalkProgram builds and runs the program at path on the tree-walk
// interpreter, sending output to mouth.
func WalkProgram(path string, mouth vutil.Mouth) (bytecode.Value, errs.Error) {
	r := NewWalkRunner()
	if err := r.Build(path); err != nil {
		return bytecode.Value{}, err
	}
	return r.Run(mouth)
}

// RunSource compiles and runs a single in-memory source string on the
// bytecode VM. Meant for the REPL and for tests.
func RunSource(name, source string, mouth vutil.Mouth) (bytecode.Value, errs.Error) {
	astMod, err := frontend.ParseSource(name, source)
	if err != nil {
		return bytecode.Value{}, err
	}
	irMod, err := ir.Lower(name, astMod)
	if err != nil {
		return bytecode.Value{}, err
	}

	env, err := stdEnvironment(mouth)
	if err != nil {
		return bytecode.Value{}, err
	}
	params := compile.CompilationParams{LiteralMapper: stdlib.LiteralMapper}
	module, _, err := compile.Compile(params, name, MainNamespace(), irMod, env)
	if err != nil {
		return bytecode.Value{}, err
	}

	entry, ok := module.FunctionByPath(EntryPointPath)
	if !ok {
		return bytecode.Value{}, errs.NewRuntime("program has no %v function", EntryPointPath)
	}

	em := vm.NewExecutionMachine(module, env.Finalize(),
		vm.ExecutionParams{LiteralToValue: stdlib.LiteralToValue}, mouth)
	value, execErr := vm.Exec(em, entry, nil)
	mouth.Flush()
	if execErr != nil {
		return bytecode.Value{}, execErr
	}
	return value, nil
}
