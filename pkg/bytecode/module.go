/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import "reflect"

const (
	// MaxTableEntries is the maximum number of entries any table of a
	// CompiledModule can have. This is equal to 2^31, so that indices fit on
	// an int even on platforms that use 32-bit integers.
	MaxTableEntries = 2_147_483_648
)

// A Literal is an entry in the literal pool of a compiled module. Literals
// are host-interpreted: the compiler stores whatever the embedder's literal
// mapper produces, and the VM materializes values from them through the
// embedder's literal-to-value mapping. The VM itself never looks inside.
type Literal = any

// A FunctionDef is the function table record of one compiled function.
type FunctionDef struct {
	// CodePos is the address of the function's first instruction.
	CodePos InstructionAddress

	// StackSize is the number of local slots the function needs.
	StackSize LocalStackSize

	// Arity is the number of parameters the function takes.
	Arity CallArity
}

// A ConstructorDef describes one constructor: how many fields its values
// carry, and optionally their names.
type ConstructorDef struct {
	// Name is the constructor's user-facing name.
	Name string

	// FieldCount is the number of fields of values built by this constructor.
	FieldCount int

	// FieldNames optionally names each field. Either empty or FieldCount
	// entries long.
	FieldNames []string
}

// CompiledModule is a compiled, binary version of a Vireo program. It is
// immutable once execution starts, and can be shared by reference between
// any number of execution machines.
type CompiledModule struct {
	// Code is the bytecode of all functions, one after the other. Includes
	// both opcodes and their immediate operands.
	Code []byte

	// Literals is the literal pool: the host-interpreted literal values used
	// by the Code.
	Literals []Literal

	// Functions is the function table, indexed by FunId.
	Functions []FunctionDef

	// Constructors is the constructor table, indexed by ConstrId.
	Constructors []ConstructorDef

	// Globals contains the precomputed global values, indexed by GlobalId.
	Globals []Value

	// FunsTbl maps the absolute path of each named function to its FunId.
	// Used by embedders to resolve entry points.
	FunsTbl map[string]FunId
}

// SearchLiteral searches the literal pool for an entry equal to lit. If
// found, it returns the index of this entry into m.Literals. If not found,
// it returns a negative value.
func (m *CompiledModule) SearchLiteral(lit Literal) int {
	for i, l := range m.Literals {
		if reflect.DeepEqual(l, lit) {
			return i
		}
	}
	return -1
}

// AddLiteral adds a literal to the pool and returns its LitId. If an equal
// literal is already pooled, its id is returned instead (literals are
// constant, no need for duplicates).
func (m *CompiledModule) AddLiteral(lit Literal) LitId {
	if i := m.SearchLiteral(lit); i >= 0 {
		return LitIdFromIndex(i)
	}
	m.Literals = append(m.Literals, lit)
	return LitIdFromIndex(len(m.Literals) - 1)
}

// FunctionByPath resolves the absolute path of a function (like
// "/main/main") to its FunId.
func (m *CompiledModule) FunctionByPath(path string) (FunId, bool) {
	id, ok := m.FunsTbl[path]
	return id, ok
}
