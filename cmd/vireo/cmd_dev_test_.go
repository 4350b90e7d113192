/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"github.com/spf13/cobra"

	"github.com/vireo-lang/vireo/pkg/test"
)

var devTestCmd = &cobra.Command{
	Use:   "test <suite-path>",
	Short: "Runs the Vireo end-to-end test suite",
	Long:  `Runs the Vireo end-to-end test suite rooted at the given path.`,
	Args:  cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		err := test.ExecuteSuite(args[0])
		reportAndExit(err)
	},
}
