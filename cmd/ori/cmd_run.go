/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"os"

	"github.com/orilang/ori/pkg/errs"
	"github.com/orilang/ori/pkg/vm"
	"github.com/spf13/cobra"
)

// runDebugTraceExecution is for the flag --trace.
var runDebugTraceExecution bool

var runCmd = &cobra.Command{
	Use:   "run <ori-file>",
	Short: "Runs an Ori program",
	Long:  `Runs an Ori program from a source file.`,
	Args:  cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		source, err := os.ReadFile(args[0])
		if err != nil {
			errs.ReportAndExit(errs.NewOriTool("reading %v: %v", args[0], err))
		}

		theVM := vm.NewStd()
		theVM.DebugTraceExecution = runDebugTraceExecution

		result := theVM.Interpret(string(source))
		theVM.Free()
		os.Exit(result.ExitCode())
	},
}

func init() {
	runCmd.Flags().BoolVarP(&runDebugTraceExecution, "trace", "t", false,
		"Trace the execution: print the stack and each instruction as it runs")
}
