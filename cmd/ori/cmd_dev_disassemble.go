/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/orilang/ori/pkg/bytecode"
	"github.com/orilang/ori/pkg/errs"
	"github.com/orilang/ori/pkg/frontend"
	"github.com/spf13/cobra"
)

var devDisassembleCmd = &cobra.Command{
	Use:   "disassemble <ori-file>",
	Short: "Compiles an Ori source file and disassembles the result",
	Long:  `Compiles an Ori source file and disassembles the resulting bytecode.`,
	Args:  cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		source, err := os.ReadFile(args[0])
		if err != nil {
			errs.ReportAndExit(errs.NewOriTool("reading %v: %v", args[0], err))
		}

		chunk := bytecode.NewChunk()
		heap := bytecode.NewHeap()
		defer heap.Free()

		if compErrs := frontend.Compile(string(source), chunk, heap); compErrs != nil {
			errs.ReportAndExit(compErrs)
		}

		fmt.Printf("Disassembling %v\n", args[0])
		fmt.Printf("%v bytes of code, %v constants\n",
			humanize.Comma(int64(len(chunk.Code))),
			humanize.Comma(int64(len(chunk.Constants))))

		bytecode.DisassembleChunk(chunk, os.Stdout, args[0])
	},
}
