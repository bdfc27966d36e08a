/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package errs

const (
	// StatusCodeSuccess indicates a successful execution.
	StatusCodeSuccess = 0

	// StatusCodeOriTool indicates a failure of the ori tool itself that
	// doesn't fit any other category (e.g., a file that could not be read).
	StatusCodeOriTool = 1

	// StatusCodeTestSuiteError indicates a failure while running Ori's own
	// end-to-end test suite.
	StatusCodeTestSuiteError = 2

	// StatusCodeBadUsage indicates some user error in the usage of the ori
	// tool (e.g., passing the wrong number of arguments).
	StatusCodeBadUsage = 64

	// StatusCodeCompileTimeError indicates a compile-time error in the
	// interpreted program.
	StatusCodeCompileTimeError = 65

	// StatusCodeRuntimeError indicates a runtime error in the interpreted
	// program.
	StatusCodeRuntimeError = 70

	// StatusCodeICE indicates an Internal Compiler Error.
	StatusCodeICE = 125
)
