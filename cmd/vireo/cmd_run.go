/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vireo-lang/vireo/pkg/run"
	"github.com/vireo-lang/vireo/pkg/vutil"
)

// runTraceExecution is for the flag --trace.
var runTraceExecution bool

var runCmd = &cobra.Command{
	Use:   "run <path>",
	Short: "Runs a Vireo program",
	Long: `Runs a Vireo program on the bytecode virtual machine. The path can
be either a source directory or a compiled module (*.vrc) file. The
program's final value is printed when it terminates.`,
	Args: cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		var trace *zap.Logger
		if runTraceExecution {
			var err error
			trace, err = newTraceLogger()
			reportAndExitOnError(err)
			defer trace.Sync()
		}

		mouth := vutil.NewWriterMouth(os.Stdout)
		value, err := run.RunProgram(args[0], mouth, trace)
		reportAndExitOnError(err)

		fmt.Printf("=> %v\n", value)
		reportAndExit(nil)
	},
}

func init() {
	runCmd.Flags().BoolVar(&runTraceExecution, "trace", false,
		"Log every instruction executed")
}
