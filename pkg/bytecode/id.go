/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import "fmt"

// The table indices of a compiled module are all compact 32-bit values, but
// each table gets its own Go type so that indices into different tables
// cannot be mixed up.

// A FunId indexes the function table of a compiled module.
type FunId uint32

// Index converts the id to a plain slice index.
func (id FunId) Index() int {
	return int(id)
}

// FunIdFromIndex converts a plain slice index to a FunId.
func FunIdFromIndex(i int) FunId {
	return FunId(i)
}

func (id FunId) String() string {
	return fmt.Sprintf("F%d", uint32(id))
}

// A LitId indexes the literal pool of a compiled module.
type LitId uint32

// Index converts the id to a plain slice index.
func (id LitId) Index() int {
	return int(id)
}

// LitIdFromIndex converts a plain slice index to a LitId.
func LitIdFromIndex(i int) LitId {
	return LitId(i)
}

func (id LitId) String() string {
	return fmt.Sprintf("L%d", uint32(id))
}

// A ConstrId indexes the constructor table of a compiled module.
type ConstrId uint32

// Index converts the id to a plain slice index.
func (id ConstrId) Index() int {
	return int(id)
}

// ConstrIdFromIndex converts a plain slice index to a ConstrId.
func ConstrIdFromIndex(i int) ConstrId {
	return ConstrId(i)
}

func (id ConstrId) String() string {
	return fmt.Sprintf("C%d", uint32(id))
}

// A NifId indexes the table of native intrinsic functions provided by the
// embedder.
type NifId uint32

// Index converts the id to a plain slice index.
func (id NifId) Index() int {
	return int(id)
}

// NifIdFromIndex converts a plain slice index to a NifId.
func NifIdFromIndex(i int) NifId {
	return NifId(i)
}

func (id NifId) String() string {
	return fmt.Sprintf("N%d", uint32(id))
}

// A GlobalId indexes the global table of a compiled module.
type GlobalId uint32

// Index converts the id to a plain slice index.
func (id GlobalId) Index() int {
	return int(id)
}

// GlobalIdFromIndex converts a plain slice index to a GlobalId.
func GlobalIdFromIndex(i int) GlobalId {
	return GlobalId(i)
}

func (id GlobalId) String() string {
	return fmt.Sprintf("G%d", uint32(id))
}

// An InstructionAddress is a position in a module's Code: the byte offset of
// an instruction's opcode.
type InstructionAddress = int

// A CallArity is the number of arguments attached to a call. Arities are
// encoded in a single byte; the compiler rejects calls with more arguments.
type CallArity uint8

// A LocalStackSize is the number of operand stack slots a function reserves
// for its local variables.
type LocalStackSize uint32

// A LocalBind is an offset into the local window of the current frame.
type LocalBind uint32

// A ParamBind is an offset into the parameter window of the current frame.
// Offset 0 addresses the argument nearest the frame boundary.
type ParamBind uint32
