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

	"github.com/orilang/ori/pkg/errs"
	"github.com/orilang/ori/pkg/frontend"
	"github.com/spf13/cobra"
)

var devScanCmd = &cobra.Command{
	Use:   "scan <ori-file>",
	Short: "Scans an Ori source file and prints the tokens",
	Long: `Scans an Ori source file and prints the tokens. This is only useful for
testing when developing Ori itself.`,
	Args: cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		source, err := os.ReadFile(args[0])
		if err != nil {
			errs.ReportAndExit(errs.NewOriTool("reading %v: %v", args[0], err))
		}

		scanner := frontend.NewScanner(string(source))
		line := -1
		for {
			token := scanner.Token()
			if token.Line != line {
				fmt.Printf("%4d ", token.Line)
				line = token.Line
			} else {
				fmt.Printf("   | ")
			}
			fmt.Printf("%-22v '%v'\n", token.Kind, token.Lexeme)

			if token.Kind == frontend.TokenKindEOF {
				break
			}
		}
	},
}
