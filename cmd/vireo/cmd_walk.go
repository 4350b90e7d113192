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

	"github.com/vireo-lang/vireo/pkg/run"
	"github.com/vireo-lang/vireo/pkg/vutil"
)

var walkCmd = &cobra.Command{
	Use:   "walk <path>",
	Short: "Runs a Vireo program on the tree-walk interpreter",
	Long: `Runs a Vireo program on the tree-walk interpreter instead of the
bytecode virtual machine. Slower, but handy to cross-check the VM.`,
	Args: cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		mouth := vutil.NewWriterMouth(os.Stdout)
		value, err := run.WalkProgram(args[0], mouth)
		reportAndExitOnError(err)

		fmt.Printf("=> %v\n", value)
		reportAndExit(nil)
	},
}
