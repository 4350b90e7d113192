/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package run

import (
	"os"
	"path"

	"github.com/vireo-lang/vireo/pkg/bytecode"
	"github.com/vireo-lang/vireo/pkg/compile"
	"github.com/vireo-lang/vireo/pkg/errs"
	"github.com/vireo-lang/vireo/pkg/frontend"
	"github.com/vireo-lang/vireo/pkg/ir"
	"github.com/vireo-lang/vireo/pkg/stdlib"
)

const (
	// MainNamespaceSegment is the namespace segment all program sources are
	// mounted under.
	MainNamespaceSegment = "main"

	// EntryPointPath is the absolute path of a program's entry point.
	EntryPointPath = "/main/main"
)

// MainNamespace returns the namespace program sources are compiled into.
func MainNamespace() compile.Namespace {
	return compile.RootNamespace().Append(MainNamespaceSegment)
}

// LowerProgram parses the program at root and lowers it to the IR.
func LowerProgram(root string) (*ir.Module, errs.Error) {
	astMod, plainErr := frontend.ParseProgram(root)
	if plainErr != nil {
		if e, ok := plainErr.(errs.Error); ok {
			return nil, e
		}
		return nil, errs.NewICE("unexpected parse error of type %T: %v", plainErr, plainErr)
	}
	return ir.Lower(root, astMod)
}

// CompileProgram parses, lowers and compiles the program at root, resolving
// identifiers against env. The environment must already carry the NIFs the
// program is allowed to use (normally via stdlib.Register).
func CompileProgram(root string, env *compile.Environment) (*bytecode.CompiledModule, *bytecode.DebugInfo, errs.Error) {
	irMod, err := LowerProgram(root)
	if err != nil {
		return nil, nil, err
	}

	params := compile.CompilationParams{LiteralMapper: stdlib.LiteralMapper}
	return compile.Compile(params, root, MainNamespace(), irMod, env)
}

// DebugInfoPath returns the path of the debug info file corresponding to a
// compiled module file: same name, .vrd extension.
func DebugInfoPath(modulePath string) string {
	return modulePath[:len(modulePath)-len(path.Ext(modulePath))] + ".vrd"
}

// LoadModuleBinaries loads the CompiledModule from modulePath. It also looks
// for the corresponding debug info file and loads it if found. If the debug
// info file is not found, it returns an error only if diRequired is true.
func LoadModuleBinaries(modulePath string, diRequired bool) (*bytecode.CompiledModule, *bytecode.DebugInfo, errs.Error) {
	moduleFile, err := os.Open(modulePath)
	if err != nil {
		return nil, nil, errs.NewCommandPrep("opening compiled module file %v: %v", modulePath, err)
	}
	defer moduleFile.Close()

	module := &bytecode.CompiledModule{}
	err = module.Deserialize(moduleFile)
	if err != nil {
		return nil, nil, errs.NewCommandPrep("reading the compiled module %v: %v", modulePath, err)
	}

	diPath := DebugInfoPath(modulePath)
	diFile, err := os.Open(diPath)
	if err != nil {
		if diRequired {
			return nil, nil, errs.NewCommandPrep("opening debug info file %v: %v", diPath, err)
		}
		return module, nil, nil
	}
	defer diFile.Close()

	di := &bytecode.DebugInfo{}
	err = di.Deserialize(diFile)
	if err != nil {
		if diRequired {
			return nil, nil, errs.NewCommandPrep("reading debug info from %v: %v", diPath, err)
		}
		return module, nil, nil
	}

	return module, di, nil
}
