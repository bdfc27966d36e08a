/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"github.com/orilang/ori/pkg/errs"
	"github.com/orilang/ori/pkg/oriutil"
	"github.com/orilang/ori/pkg/test"
	"github.com/spf13/cobra"
)

var devTestCmd = &cobra.Command{
	Use:   "test <suite-path>",
	Short: "Runs the Ori test suite",
	Long:  `Runs the end-to-end test suite rooted at the given directory.`,
	Args:  cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		suitePath := args[0]
		if isDir, err := oriutil.IsDir(suitePath); err != nil || !isDir {
			errs.ReportAndExit(errs.NewBadUsage("The test command expects a directory, but %v isn't one", suitePath))
		}

		errs.ReportAndExit(test.ExecuteSuite(suitePath))
	},
}
