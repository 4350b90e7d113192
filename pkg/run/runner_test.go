/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package run_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vireo-lang/vireo/pkg/bytecode"
	"github.com/vireo-lang/vireo/pkg/compile"
	"github.com/vireo-lang/vireo/pkg/run"
	"github.com/vireo-lang/vireo/pkg/stdlib"
	"github.com/vireo-lang/vireo/pkg/vutil"
)

// writeProgram writes a one-file program into a fresh directory and returns
// the directory path.
func writeProgram(t *testing.T, source string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.vrs"), []byte(source), 0o644))
	return dir
}

func TestRunSource(t *testing.T) {
	mouth := &vutil.MemoryMouth{}
	v, err := run.RunSource("test", `(define (main) (+ 40 2))`, mouth)
	require.Nil(t, err)
	assert.Equal(t, bytecode.NewValueInt(42), v)
}

func TestRunProgramFromSourceDir(t *testing.T) {
	dir := writeProgram(t, `(define (main) (println "hi") 7)`)

	mouth := &vutil.MemoryMouth{}
	v, err := run.RunProgram(dir, mouth, nil)
	require.Nil(t, err)
	assert.Equal(t, bytecode.NewValueInt(7), v)
	assert.Equal(t, []string{"hi\n"}, mouth.Outputs)
}

func TestVMAndWalkAgree(t *testing.T) {
	dir := writeProgram(t, `
		(define (fact n) (if (< n 2) 1 (* n (fact (- n 1)))))
		(define (main) (fact 10))`)

	vmValue, err := run.RunProgram(dir, &vutil.MemoryMouth{}, nil)
	require.Nil(t, err)
	walkValue, err := run.WalkProgram(dir, &vutil.MemoryMouth{})
	require.Nil(t, err)

	assert.True(t, bytecode.ValuesEqual(vmValue, walkValue))
	assert.Equal(t, bytecode.NewValueInt(3628800), vmValue)
}

func TestRunProgramFromCompiledModule(t *testing.T) {
	dir := writeProgram(t, `(define (main) (* 6 7))`)

	env := compile.NewEnvironment()
	require.Nil(t, stdlib.Register(env, &vutil.MemoryMouth{}))
	module, di, err := run.CompileProgram(dir, env)
	require.Nil(t, err)

	// Write the .vrc and .vrd pair, then run from the file.
	outDir := t.TempDir()
	modulePath := filepath.Join(outDir, "prog.vrc")
	moduleFile, plainErr := os.Create(modulePath)
	require.NoError(t, plainErr)
	require.NoError(t, module.Serialize(moduleFile))
	require.NoError(t, moduleFile.Close())

	diFile, plainErr := os.Create(run.DebugInfoPath(modulePath))
	require.NoError(t, plainErr)
	require.NoError(t, di.Serialize(diFile))
	require.NoError(t, diFile.Close())

	v, rErr := run.RunProgram(modulePath, &vutil.MemoryMouth{}, nil)
	require.Nil(t, rErr)
	assert.Equal(t, bytecode.NewValueInt(42), v)

	// The loader also picks up the debug info.
	loaded, loadedDI, lErr := run.LoadModuleBinaries(modulePath, true)
	require.Nil(t, lErr)
	assert.NotNil(t, loadedDI)
	assert.Equal(t, module.Code, loaded.Code)
}

func TestLoadModuleBinariesMissingDebugInfo(t *testing.T) {
	dir := writeProgram(t, `(define (main) 1)`)

	env := compile.NewEnvironment()
	require.Nil(t, stdlib.Register(env, &vutil.MemoryMouth{}))
	module, _, err := run.CompileProgram(dir, env)
	require.Nil(t, err)

	outDir := t.TempDir()
	modulePath := filepath.Join(outDir, "prog.vrc")
	moduleFile, plainErr := os.Create(modulePath)
	require.NoError(t, plainErr)
	require.NoError(t, module.Serialize(moduleFile))
	require.NoError(t, moduleFile.Close())

	// Not required: loads fine without the .vrd around.
	loaded, di, lErr := run.LoadModuleBinaries(modulePath, false)
	require.Nil(t, lErr)
	assert.Nil(t, di)
	assert.NotNil(t, loaded)

	// Required: that's an error.
	_, _, lErr = run.LoadModuleBinaries(modulePath, true)
	assert.NotNil(t, lErr)
}

func TestRunProgramMissingEntryPoint(t *testing.T) {
	dir := writeProgram(t, `(define (helper) 1)`)

	_, err := run.RunProgram(dir, &vutil.MemoryMouth{}, nil)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "/main/main")
}
