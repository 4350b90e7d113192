/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package stdlib

import (
	"github.com/vireo-lang/vireo/pkg/bytecode"
	"github.com/vireo-lang/vireo/pkg/compile"
	"github.com/vireo-lang/vireo/pkg/errs"
	"github.com/vireo-lang/vireo/pkg/vm"
	"github.com/vireo-lang/vireo/pkg/vutil"
)

// Register registers the stock NIFs in env, all under the root namespace.
// Program output (print and friends) goes to mouth.
//
// Registration order is part of the module format contract: a serialized
// module stores NifIds, so loading it requires an environment built by this
// same function.
func Register(env *compile.Environment, mouth vutil.Mouth) errs.Error {
	pure := []struct {
		name string
		f    vm.PureNIF
	}{
		{"+", nifAdd},
		{"-", nifSub},
		{"*", nifMul},
		{"/", nifDiv},
		{"%", nifMod},
		{"=", nifEq},
		{"<", nifLt},
		{">", nifGt},
		{"<=", nifLe},
		{">=", nifGe},
		{"not", nifNot},
		{"bool_eq", nifBoolEq},
		{"int_eq", nifIntEq},
		{"print", makeNifPrint(mouth, false)},
		{"println", makeNifPrint(mouth, true)},
	}
	for _, p := range pure {
		nif := vm.NIF{Name: p.name, Call: vm.NIFCall{Pure: p.f}}
		path := compile.NewAbsPath(compile.RootNamespace(), p.name)
		if _, err := env.AddNif(path, nif); err != nil {
			return err
		}
	}

	mut := []struct {
		name string
		f    vm.MutNIF
	}{
		{"abort", nifAbort},
		{"call_depth", nifCallDepth},
	}
	for _, m := range mut {
		nif := vm.NIF{Name: m.name, Call: vm.NIFCall{Mut: m.f}}
		path := compile.NewAbsPath(compile.RootNamespace(), m.name)
		if _, err := env.AddNif(path, nif); err != nil {
			return err
		}
	}

	return nil
}

// checkArity fails with an ArityError unless exactly want arguments were
// passed.
func checkArity(args []bytecode.Value, want int) errs.Error {
	if len(args) != want {
		return &vm.ArityError{Expected: want, Got: len(args)}
	}
	return nil
}

// intArgs extracts the two integer operands of a binary arithmetic or
// comparison NIF.
func intArgs(args []bytecode.Value) (int64, int64, errs.Error) {
	if err := checkArity(args, 2); err != nil {
		return 0, 0, err
	}
	a, err := vm.IntValue(args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := vm.IntValue(args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func nifAdd(args []bytecode.Value) (bytecode.Value, errs.Error) {
	a, b, err := intArgs(args)
	if err != nil {
		return bytecode.Value{}, err
	}
	return bytecode.NewValueInt(a + b), nil
}

func nifSub(args []bytecode.Value) (bytecode.Value, errs.Error) {
	a, b, err := intArgs(args)
	if err != nil {
		return bytecode.Value{}, err
	}
	return bytecode.NewValueInt(a - b), nil
}

func nifMul(args []bytecode.Value) (bytecode.Value, errs.Error) {
	a, b, err := intArgs(args)
	if err != nil {
		return bytecode.Value{}, err
	}
	return bytecode.NewValueInt(a * b), nil
}

func nifDiv(args []bytecode.Value) (bytecode.Value, errs.Error) {
	a, b, err := intArgs(args)
	if err != nil {
		return bytecode.Value{}, err
	}
	if b == 0 {
		return bytecode.Value{}, errs.NewRuntime("division by zero")
	}
	return bytecode.NewValueInt(a / b), nil
}

func nifMod(args []bytecode.Value) (bytecode.Value, errs.Error) {
	a, b, err := intArgs(args)
	if err != nil {
		return bytecode.Value{}, err
	}
	if b == 0 {
		return bytecode.Value{}, errs.NewRuntime("division by zero")
	}
	return bytecode.NewValueInt(a % b), nil
}

func nifEq(args []bytecode.Value) (bytecode.Value, errs.Error) {
	if err := checkArity(args, 2); err != nil {
		return bytecode.Value{}, err
	}
	return bytecode.NewValueBool(bytecode.ValuesEqual(args[0], args[1])), nil
}

func nifLt(args []bytecode.Value) (bytecode.Value, errs.Error) {
	a, b, err := intArgs(args)
	if err != nil {
		return bytecode.Value{}, err
	}
	return bytecode.NewValueBool(a < b), nil
}

func nifGt(args []bytecode.Value) (bytecode.Value, errs.Error) {
	a, b, err := intArgs(args)
	if err != nil {
		return bytecode.Value{}, err
	}
	return bytecode.NewValueBool(a > b), nil
}

func nifLe(args []bytecode.Value) (bytecode.Value, errs.Error) {
	a, b, err := intArgs(args)
	if err != nil {
		return bytecode.Value{}, err
	}
	return bytecode.NewValueBool(a <= b), nil
}

func nifGe(args []bytecode.Value) (bytecode.Value, errs.Error) {
	a, b, err := intArgs(args)
	if err != nil {
		return bytecode.Value{}, err
	}
	return bytecode.NewValueBool(a >= b), nil
}

func nifNot(args []bytecode.Value) (bytecode.Value, errs.Error) {
	if err := checkArity(args, 1); err != nil {
		return bytecode.Value{}, err
	}
	b, err := vm.BoolValue(args[0])
	if err != nil {
		return bytecode.Value{}, err
	}
	return bytecode.NewValueBool(!b), nil
}

func nifBoolEq(args []bytecode.Value) (bytecode.Value, errs.Error) {
	if err := checkArity(args, 2); err != nil {
		return bytecode.Value{}, err
	}
	a, err := vm.BoolValue(args[0])
	if err != nil {
		return bytecode.Value{}, err
	}
	b, err := vm.BoolValue(args[1])
	if err != nil {
		return bytecode.Value{}, err
	}
	return bytecode.NewValueBool(a == b), nil
}

func nifIntEq(args []bytecode.Value) (bytecode.Value, errs.Error) {
	a, b, err := intArgs(args)
	if err != nil {
		return bytecode.Value{}, err
	}
	return bytecode.NewValueBool(a == b), nil
}

// makeNifPrint builds the print/println NIFs over the given mouth. Strings
// print raw; every other value prints in its display form. println also
// flushes, so each line reaches the host as soon as it is complete.
func makeNifPrint(mouth vutil.Mouth, newline bool) vm.PureNIF {
	return func(args []bytecode.Value) (bytecode.Value, errs.Error) {
		for _, arg := range args {
			if arg.IsString() {
				mouth.Say(arg.AsString())
			} else {
				mouth.Say(arg.String())
			}
		}
		if newline {
			mouth.Say("\n")
			mouth.Flush()
		}
		return bytecode.NewValueUnit(), nil
	}
}

// nifAbort requests cooperative cancellation of the running machine. The
// machine keeps running until the dispatch loop observes the flag, i.e. the
// current instruction (this call) completes first.
func nifAbort(em *vm.ExecutionMachine, args []bytecode.Value) (bytecode.Value, errs.Error) {
	if err := checkArity(args, 0); err != nil {
		return bytecode.Value{}, err
	}
	em.Abort()
	return bytecode.NewValueUnit(), nil
}

// nifCallDepth reports how many frames sit on the machine's return stack.
func nifCallDepth(em *vm.ExecutionMachine, args []bytecode.Value) (bytecode.Value, errs.Error) {
	if err := checkArity(args, 0); err != nil {
		return bytecode.Value{}, err
	}
	return bytecode.NewValueInt(int64(em.CallDepth())), nil
}
