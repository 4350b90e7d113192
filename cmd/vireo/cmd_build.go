/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vireo-lang/vireo/pkg/compile"
	"github.com/vireo-lang/vireo/pkg/errs"
	"github.com/vireo-lang/vireo/pkg/run"
	"github.com/vireo-lang/vireo/pkg/stdlib"
	"github.com/vireo-lang/vireo/pkg/vutil"
)

var buildCmd = &cobra.Command{
	Use:   "build <path>",
	Short: "Builds a Vireo program from source",
	Long: `Builds a Vireo program from source, writing a compiled module
(*.vrc) and its debug info (*.vrd) to the current directory.`,
	Args: cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		srcPath := args[0]
		if isDir, err := vutil.IsDir(srcPath); err != nil || !isDir {
			reportAndExit(errs.NewBadUsage("The build command expects a directory, but %v isn't one", srcPath))
		}

		env := compile.NewEnvironment()
		err := stdlib.Register(env, vutil.NewWriterMouth(os.Stdout))
		reportAndExitOnError(err)

		module, di, err := run.CompileProgram(srcPath, env)
		reportAndExitOnError(err)

		base := filepath.Base(filepath.Clean(srcPath))

		modulePath := base + ".vrc"
		moduleFile, plainErr := os.Create(modulePath)
		if plainErr != nil {
			reportAndExit(errs.NewCommandPrep("creating compiled module file: %v", plainErr))
		}
		defer moduleFile.Close()
		if plainErr = module.Serialize(moduleFile); plainErr != nil {
			reportAndExit(errs.NewCommandPrep("writing %v: %v", modulePath, plainErr))
		}

		diPath := base + ".vrd"
		diFile, plainErr := os.Create(diPath)
		if plainErr != nil {
			reportAndExit(errs.NewCommandPrep("creating debug info file: %v", plainErr))
		}
		defer diFile.Close()
		if plainErr = di.Serialize(diFile); plainErr != nil {
			reportAndExit(errs.NewCommandPrep("writing %v: %v", diPath, plainErr))
		}

		reportAndExit(nil)
	},
}
