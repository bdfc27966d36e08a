/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package errs

import (
	"errors"
	"fmt"
	"os"
)

// ReportAndExit reports the error err to the end user and exits with the
// appropriate status code. It's fine if err is nil, we handle this case here.
func ReportAndExit(err error) {
	badUsageError := &BadUsage{}
	oriToolError := &OriTool{}
	compTimeError := &CompileTime{}
	compTimeColl := &CompileTimeCollection{}
	runtimeError := &Runtime{}
	testSuiteError := &TestSuite{}
	iceErr := &ICE{}

	switch {
	case err == nil:
		os.Exit(StatusCodeSuccess)

	case errors.As(err, &badUsageError):
		fmt.Fprintf(os.Stderr, "%v\n", badUsageError)
		os.Exit(StatusCodeBadUsage)

	case errors.As(err, &oriToolError):
		fmt.Fprintf(os.Stderr, "%v\n", oriToolError)
		os.Exit(StatusCodeOriTool)

	case errors.As(err, &compTimeError):
		fmt.Fprintf(os.Stderr, "%v\n", compTimeError)
		os.Exit(StatusCodeCompileTimeError)

	case errors.As(err, &compTimeColl):
		fmt.Fprintf(os.Stderr, "%v", compTimeColl)
		os.Exit(StatusCodeCompileTimeError)

	case errors.As(err, &runtimeError):
		fmt.Fprintf(os.Stderr, "%v\n", runtimeError)
		os.Exit(StatusCodeRuntimeError)

	case errors.As(err, &testSuiteError):
		fmt.Fprintf(os.Stderr, "%v\n", testSuiteError)
		os.Exit(StatusCodeTestSuiteError)

	case errors.As(err, &iceErr):
		fmt.Fprintf(os.Stderr, "%v\n", iceErr)
		os.Exit(StatusCodeICE)

	default:
		fmt.Fprintf(os.Stderr, "Internal Compiler Error: unexpected error of type %T: %v\n", err, err)
		os.Exit(StatusCodeICE)
	}
}
