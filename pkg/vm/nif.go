/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package vm

import (
	"github.com/vireo-lang/vireo/pkg/bytecode"
	"github.com/vireo-lang/vireo/pkg/errs"
)

// A PureNIF is a host callback that only sees its arguments. The args slice
// is borrowed from the operand stack: callbacks must not retain it past the
// call.
type PureNIF func(args []bytecode.Value) (bytecode.Value, errs.Error)

// A MutNIF is a host callback that additionally gets mutable access to the
// execution machine. The args slice is a copy, so it stays valid while the
// callback mutates the machine.
type MutNIF func(em *ExecutionMachine, args []bytecode.Value) (bytecode.Value, errs.Error)

// A NIFCall is the callable part of a NIF: exactly one of Pure and Mut is
// set.
type NIFCall struct {
	Pure PureNIF
	Mut  MutNIF
}

// A NIF is a Native Intrinsic Function: a host-provided callback invocable
// from bytecode.
type NIF struct {
	// Name is the NIF's leaf name, used by diagnostics. The compiler resolves
	// NIFs by the absolute path they were registered under, and the VM itself
	// only ever uses NifIds.
	Name string

	// Call is the actual callback.
	Call NIFCall
}

// An ExecutionEnviron is the runtime environment a module executes in: the
// NIF table and the global table derived from the compile-time environment.
// It is read-only during execution and can be shared between machines.
type ExecutionEnviron struct {
	NIFs    []NIF
	Globals []bytecode.Value
}

// ExecutionParams groups the embedder-provided hooks the machine needs.
type ExecutionParams struct {
	// LiteralToValue materializes a runtime value from a literal pool entry.
	// Literals are validated at compile time, so this mapping is infallible.
	LiteralToValue func(lit bytecode.Literal) bytecode.Value
}
