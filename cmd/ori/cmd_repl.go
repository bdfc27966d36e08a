/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/orilang/ori/pkg/vm"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Starts an interactive session",
	Long: `Starts an interactive session. Each line is interpreted as it is entered;
global variables persist from one line to the next.`,
	Args: cobra.NoArgs,

	Run: func(cmd *cobra.Command, args []string) {
		theVM := vm.NewStd()
		defer theVM.Free()

		// No prompt when the input is piped in: it would just pollute the
		// output.
		interactive := term.IsTerminal(int(os.Stdin.Fd()))

		scanner := bufio.NewScanner(os.Stdin)
		for {
			if interactive {
				fmt.Print("> ")
			}

			if !scanner.Scan() {
				if interactive {
					fmt.Println()
				}
				return
			}

			// Errors already went to stderr; the session goes on regardless.
			theVM.Interpret(scanner.Text())
		}
	},
}
