/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "vireo",
	SilenceUsage: true,
	Short:        "Vireo is an embeddable programming language",
	Long: `The toolchain of the Vireo programming language: a small embeddable
language compiled to bytecode and run on a stack-based virtual machine.`,
}

func init() {
	devCmd.AddCommand(devDisassembleCmd, devPrintASTCmd, devTestCmd)
	rootCmd.AddCommand(buildCmd, runCmd, walkCmd, replCmd, devCmd)
}
