/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package frontend

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"

	"github.com/vireo-lang/vireo/pkg/ast"
	"github.com/vireo-lang/vireo/pkg/errs"
	"github.com/vireo-lang/vireo/pkg/vutil"
)

// ParseProgram parses the Vireo program at a given directory root. It
// recursively looks for Vireo source files (*.vrs), parses each of them
// concurrently, and merges all declarations into a single ast.Module.
func ParseProgram(root string) (*ast.Module, error) {
	sourceFiles, err := findSourceFiles(root)
	if err != nil {
		ctErr := errs.NewCompileTimeWithoutLine(root, "%v", err.Error())
		return nil, ctErr
	}

	if len(sourceFiles) == 0 {
		ctErr := errs.NewCompileTimeWithoutLine(root, "No Vireo source files (*.vrs) found.")
		return nil, ctErr
	}

	chModules := make(chan *ast.Module, 1024)
	chError := make(chan error, 1024)

	for _, sourceFile := range sourceFiles {
		go parseFileAsync(sourceFile, root, chModules, chError)
	}

	mod := &ast.Module{}
	allErrors := &errs.CompileTimeCollection{}

	for i := 0; i < len(sourceFiles); i++ {
		select {
		case fileMod := <-chModules:
			mod.Statements = append(mod.Statements, fileMod.Statements...)
		case err := <-chError:
			ctErr := &errs.CompileTime{}
			if errors.As(err, &ctErr) {
				allErrors.Add(ctErr)
			} else {
				return nil, errs.NewICE("While parsing the program got an error of type %T: %v", err, err)
			}
		}
	}

	if !allErrors.IsEmpty() {
		return nil, allErrors
	}
	return mod, nil
}

// findSourceFiles traverses the filesystem starting at root looking for
// Vireo source files (*.vrs). Returns a slice with all files found.
func findSourceFiles(root string) ([]string, error) {
	files := []string{}
	err := vutil.ForEachMatchingFileRecursive(root, regexp.MustCompile(`.*\.vrs`),
		func(path string) errs.Error {
			files = append(files, path)
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	return files, nil
}

// ParseFile parses the Vireo source file located at fileName and returns its
// corresponding AST. root is the path to the root of the program, and is
// used to compute the file name relative to the program root.
func ParseFile(fileName, root string) (*ast.Module, error) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		ctErr := errs.NewCompileTimeWithoutLine(fileName, "%v", err.Error())
		return nil, ctErr
	}

	fileNameFromRoot, err := filepath.Rel(root, fileName)
	if err != nil {
		return nil, err
	}
	fileNameFromRoot = filepath.Clean(fileNameFromRoot)

	return ParseSource(fileNameFromRoot, string(source))
}

// ParseSource parses Vireo source code. fileName is used for error reporting
// only.
func ParseSource(fileName, source string) (*ast.Module, errs.Error) {
	p := newParser(fileName, source)
	return p.parse()
}

// parseFileAsync is a way to call ParseFile with everything wired up for
// being called asynchronously (i.e., it is not async by itself, but is
// designed to be called from a goroutine). It is guaranteed to send once to
// either one (but not both) of the channels it receives: either an error or
// the AST corresponding to the parsed file.
func parseFileAsync(path, root string, chModules chan<- *ast.Module, chError chan<- error) {
	mod, err := ParseFile(path, root)
	if err != nil {
		chError <- err
		return
	}
	chModules <- mod
}
