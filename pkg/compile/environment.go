/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package compile

import (
	"strings"

	"github.com/vireo-lang/vireo/pkg/bytecode"
	"github.com/vireo-lang/vireo/pkg/errs"
	"github.com/vireo-lang/vireo/pkg/vm"
)

// A Namespace is a sequence of path segments under which things get
// registered and compiled, like "/main".
type Namespace struct {
	segments []string
}

// RootNamespace returns the root namespace, "/".
func RootNamespace() Namespace {
	return Namespace{}
}

// Append returns a new Namespace nested one segment deeper.
func (ns Namespace) Append(segment string) Namespace {
	segments := make([]string, 0, len(ns.segments)+1)
	segments = append(segments, ns.segments...)
	segments = append(segments, segment)
	return Namespace{segments: segments}
}

// String converts the Namespace to its path form.
func (ns Namespace) String() string {
	return "/" + strings.Join(ns.segments, "/")
}

// An AbsPath is the absolute path of a named thing: a namespace plus a leaf
// name. Paths are what NIFs, globals, constructors and functions are
// registered and resolved under.
type AbsPath struct {
	NS   Namespace
	Name string
}

// NewAbsPath creates an AbsPath from a namespace and a leaf name.
func NewAbsPath(ns Namespace, name string) AbsPath {
	return AbsPath{NS: ns, Name: name}
}

// String converts the AbsPath to its path form, like "/main/main".
func (p AbsPath) String() string {
	if len(p.NS.segments) == 0 {
		return "/" + p.Name
	}
	return p.NS.String() + "/" + p.Name
}

// An Environment accumulates everything the embedder provides at compile
// time: NIFs, precomputed globals, and constructors. Ids are handed out in
// registration order, so an environment rebuilt the same way yields the same
// ids -- which is what makes serialized modules loadable later.
type Environment struct {
	nifs     []vm.NIF
	nifPaths map[string]bytecode.NifId

	globals     []bytecode.Value
	globalPaths map[string]bytecode.GlobalId

	constructors     []bytecode.ConstructorDef
	constructorPaths map[string]bytecode.ConstrId
}

// NewEnvironment creates a new, empty Environment.
func NewEnvironment() *Environment {
	return &Environment{
		nifPaths:         map[string]bytecode.NifId{},
		globalPaths:      map[string]bytecode.GlobalId{},
		constructorPaths: map[string]bytecode.ConstrId{},
	}
}

// AddNif registers a NIF under the given path and returns its id.
func (env *Environment) AddNif(path AbsPath, nif vm.NIF) (bytecode.NifId, errs.Error) {
	key := path.String()
	if _, exists := env.nifPaths[key]; exists {
		return 0, errs.NewCompileTimeWithoutLine("", "duplicate NIF registration: %v", key)
	}
	id := bytecode.NifIdFromIndex(len(env.nifs))
	env.nifs = append(env.nifs, nif)
	env.nifPaths[key] = id
	return id, nil
}

// AddGlobal registers a precomputed global value under the given path and
// returns its id.
func (env *Environment) AddGlobal(path AbsPath, value bytecode.Value) (bytecode.GlobalId, errs.Error) {
	key := path.String()
	if _, exists := env.globalPaths[key]; exists {
		return 0, errs.NewCompileTimeWithoutLine("", "duplicate global registration: %v", key)
	}
	id := bytecode.GlobalIdFromIndex(len(env.globals))
	env.globals = append(env.globals, value)
	env.globalPaths[key] = id
	return id, nil
}

// AddConstructor registers a constructor under the given path and returns
// its id. fieldNames is optional: pass nil for a constructor with unnamed
// fields.
func (env *Environment) AddConstructor(path AbsPath, fieldCount int, fieldNames []string) (bytecode.ConstrId, errs.Error) {
	key := path.String()
	if _, exists := env.constructorPaths[key]; exists {
		return 0, errs.NewCompileTimeWithoutLine("", "duplicate constructor registration: %v", key)
	}
	if fieldNames != nil && len(fieldNames) != fieldCount {
		return 0, errs.NewCompileTimeWithoutLine("", "constructor %v: %v field names for %v fields",
			key, len(fieldNames), fieldCount)
	}
	id := bytecode.ConstrIdFromIndex(len(env.constructors))
	env.constructors = append(env.constructors, bytecode.ConstructorDef{
		Name:       path.Name,
		FieldCount: fieldCount,
		FieldNames: fieldNames,
	})
	env.constructorPaths[key] = id
	return id, nil
}

// NifByPath resolves a path to a NifId.
func (env *Environment) NifByPath(path string) (bytecode.NifId, bool) {
	id, ok := env.nifPaths[path]
	return id, ok
}

// NifAt returns the NIF with the given id.
func (env *Environment) NifAt(id bytecode.NifId) vm.NIF {
	return env.nifs[id.Index()]
}

// GlobalByPath resolves a path to a GlobalId.
func (env *Environment) GlobalByPath(path string) (bytecode.GlobalId, bool) {
	id, ok := env.globalPaths[path]
	return id, ok
}

// GlobalAt returns the global value with the given id.
func (env *Environment) GlobalAt(id bytecode.GlobalId) bytecode.Value {
	return env.globals[id.Index()]
}

// ConstructorByPath resolves a path to a ConstrId.
func (env *Environment) ConstructorByPath(path string) (bytecode.ConstrId, bool) {
	id, ok := env.constructorPaths[path]
	return id, ok
}

// Finalize derives the runtime environment the VM executes in. The returned
// ExecutionEnviron borrows the environment's tables; the environment must
// not be mutated afterwards.
func (env *Environment) Finalize() *vm.ExecutionEnviron {
	return &vm.ExecutionEnviron{
		NIFs:    env.nifs,
		Globals: env.globals,
	}
}
