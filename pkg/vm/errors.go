/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package vm

import (
	"fmt"

	"github.com/vireo-lang/vireo/pkg/bytecode"
	"github.com/vireo-lang/vireo/pkg/errs"
)

// The execution errors form a closed set: everything that can go wrong while
// executing well-formed bytecode is one of the types below, or an error
// propagated verbatim from a NIF. All of them fulfill errs.Error, and all of
// them are fatal to the current execution.

// Abort reports that a cooperative cancellation request was observed.
type Abort struct{}

// Error fulfills the error interface.
func (e *Abort) Error() string {
	return "execution aborted"
}

// ExitCode fulfills the errs.Error interface.
func (e *Abort) ExitCode() int {
	return errs.StatusCodeExecutionError
}

// ExecutionFinished reports that ExecContinue was called on a machine whose
// execution already terminated (or never started).
type ExecutionFinished struct{}

// Error fulfills the error interface.
func (e *ExecutionFinished) Error() string {
	return "execution already finished"
}

// ExitCode fulfills the errs.Error interface.
func (e *ExecutionFinished) ExitCode() int {
	return errs.StatusCodeExecutionError
}

// ArityOverflow reports that an entry point was invoked with more arguments
// than a call arity can carry.
type ArityOverflow struct {
	// Got is the offending argument count.
	Got int
}

// Error fulfills the error interface.
func (e *ArityOverflow) Error() string {
	return fmt.Sprintf("too many arguments for a call: %v", e.Got)
}

// ExitCode fulfills the errs.Error interface.
func (e *ArityOverflow) ExitCode() int {
	return errs.StatusCodeExecutionError
}

// ArityError reports a call with the wrong number of arguments. The executor
// itself relies on the compiler getting arities right; this kind exists for
// dynamic checks done by NIFs and by other engines.
type ArityError struct {
	Expected int
	Got      int
}

// Error fulfills the error interface.
func (e *ArityError) Error() string {
	return fmt.Sprintf("expected %v arguments, got %v", e.Expected, e.Got)
}

// ExitCode fulfills the errs.Error interface.
func (e *ArityError) ExitCode() int {
	return errs.StatusCodeExecutionError
}

// ValueKindUnexpected reports a type tag mismatch on a value-consuming
// instruction.
type ValueKindUnexpected struct {
	Expected bytecode.ValueKind
	Got      bytecode.ValueKind
}

// Error fulfills the error interface.
func (e *ValueKindUnexpected) Error() string {
	return fmt.Sprintf("expected a value of kind %v, got %v", e.Expected, e.Got)
}

// ExitCode fulfills the errs.Error interface.
func (e *ValueKindUnexpected) ExitCode() int {
	return errs.StatusCodeExecutionError
}

// StructMismatch reports a field access on a struct built by a different
// constructor than the one the access expects.
type StructMismatch struct {
	ConstrExpected bytecode.ConstrId
	ConstrGot      bytecode.ConstrId
}

// Error fulfills the error interface.
func (e *StructMismatch) Error() string {
	return fmt.Sprintf("expected a struct built by %v, got one built by %v",
		e.ConstrExpected, e.ConstrGot)
}

// ExitCode fulfills the errs.Error interface.
func (e *StructMismatch) ExitCode() int {
	return errs.StatusCodeExecutionError
}

// StructFieldOutOfBound reports a field access past the end of a struct.
type StructFieldOutOfBound struct {
	Constr     bytecode.ConstrId
	FieldIndex int
	StructLen  int
}

// Error fulfills the error interface.
func (e *StructFieldOutOfBound) Error() string {
	return fmt.Sprintf("field index %v out of bounds for a %v struct of %v fields",
		e.FieldIndex, e.Constr, e.StructLen)
}

// ExitCode fulfills the errs.Error interface.
func (e *StructFieldOutOfBound) ExitCode() int {
	return errs.StatusCodeExecutionError
}

//
// Checked value accessors
//

// BoolValue returns the boolean payload of v, or a ValueKindUnexpected error
// if v is not a boolean.
func BoolValue(v bytecode.Value) (bool, errs.Error) {
	if !v.IsBool() {
		return false, &ValueKindUnexpected{
			Expected: bytecode.ValueKindBool,
			Got:      bytecode.KindOf(v),
		}
	}
	return v.AsBool(), nil
}

// IntValue returns the integral payload of v, or a ValueKindUnexpected error
// if v is not integral.
func IntValue(v bytecode.Value) (int64, errs.Error) {
	if !v.IsInt() {
		return 0, &ValueKindUnexpected{
			Expected: bytecode.ValueKindIntegral,
			Got:      bytecode.KindOf(v),
		}
	}
	return v.AsInt(), nil
}

// StringValue returns the string payload of v, or a ValueKindUnexpected
// error if v is not a string.
func StringValue(v bytecode.Value) (string, errs.Error) {
	if !v.IsString() {
		return "", &ValueKindUnexpected{
			Expected: bytecode.ValueKindString,
			Got:      bytecode.KindOf(v),
		}
	}
	return v.AsString(), nil
}

// FunValue returns the function payload of v, or a ValueKindUnexpected error
// if v is not callable.
func FunValue(v bytecode.Value) (bytecode.ValueFun, errs.Error) {
	if !v.IsFun() {
		return bytecode.ValueFun{}, &ValueKindUnexpected{
			Expected: bytecode.ValueKindFun,
			Got:      bytecode.KindOf(v),
		}
	}
	return v.AsFun(), nil
}

// StructValue returns the struct payload of v, or a ValueKindUnexpected
// error if v is not a struct.
func StructValue(v bytecode.Value) (bytecode.Struct, errs.Error) {
	if !v.IsStruct() {
		return bytecode.Struct{}, &ValueKindUnexpected{
			Expected: bytecode.ValueKindStruct,
			Got:      bytecode.KindOf(v),
		}
	}
	return v.AsStruct(), nil
}
