/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "ori",
	SilenceUsage: true,
	Short:        "Ori is a small dynamically-typed scripting language",
	Long: `A small dynamically-typed scripting language, implemented as a
single-pass compiler feeding a stack-based bytecode virtual machine.`,
}

func init() {
	devCmd.AddCommand(devScanCmd, devDisassembleCmd, devTestCmd)
	rootCmd.AddCommand(runCmd, replCmd, devCmd)
}
