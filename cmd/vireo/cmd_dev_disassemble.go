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
)

var devDisassembleCmd = &cobra.Command{
	Use:   "disassemble <vrc-file>",
	Short: "Disassembles a compiled Vireo module",
	Long:  `Disassembles a compiled Vireo module.`,
	Args:  cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		module, di, err := run.LoadModuleBinaries(args[0], false)
		reportAndExitOnError(err)

		fmt.Printf("Disassembling %s\n", args[0])
		fmt.Printf("Total %v bytes of code, %v literals, %v functions, %v constructors, %v globals\n",
			len(module.Code), len(module.Literals), len(module.Functions),
			len(module.Constructors), len(module.Globals))

		if entry, ok := module.FunctionByPath(run.EntryPointPath); ok {
			fmt.Printf("Entry point: %v [%v]\n", entry, di.FunctionName(entry))
		}

		module.Disassemble(os.Stdout, di)
		reportAndExit(nil)
	},
}
