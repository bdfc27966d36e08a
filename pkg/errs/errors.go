/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package errs

import (
	"fmt"
	"strings"
)

//
// The Error interface
//

// Error is an Ori error.
type Error interface {
	error
	ExitCode() int
}

//
// CompileTime
//

// CompileTime is an error used to represent any compile-time error: scanning
// errors, parsing errors, and limits like the constant pool overflowing.
type CompileTime struct {
	// Message contains a user-friendly error message.
	Message string

	// Line contains the line number where the error was detected.
	Line int

	// Lexeme contains the lexeme where the error was detected. Empty for
	// errors that came from an error token (the scanner already baked the
	// interesting part into Message).
	Lexeme string

	// AtEnd tells if the error was detected at the end of the input.
	AtEnd bool
}

// NewCompileTime is a handy way to create a CompileTime error at some specific
// line of code.
func NewCompileTime(line int, lexeme string, atEnd bool, format string, a ...any) *CompileTime {
	return &CompileTime{
		Message: fmt.Sprintf(format, a...),
		Line:    line,
		Lexeme:  lexeme,
		AtEnd:   atEnd,
	}
}

// Error converts the CompileTime to a string. Fulfills the error interface.
// The format is the one users see on stderr: `[line N] Error at 'x': message`.
func (e *CompileTime) Error() string {
	at := ""
	if e.AtEnd {
		at = " at end"
	} else if e.Lexeme != "" {
		at = fmt.Sprintf(" at '%v'", e.Lexeme)
	}
	return fmt.Sprintf("[line %v] Error%v: %v", e.Line, at, e.Message)
}

// ExitCode fulfills the Error interface.
func (e *CompileTime) ExitCode() int {
	return StatusCodeCompileTimeError
}

//
// CompileTimeCollection
//

// CompileTimeCollection is a collection of CompileTime errors. A single run of
// the compiler can report several errors (one per synchronization region), so
// this is what the compiler hands back to callers.
type CompileTimeCollection struct {
	// Errors is the collection of CompileTime errors.
	Errors []*CompileTime
}

// Add adds a new error to the collection of errors. A no-op if err is nil.
func (e *CompileTimeCollection) Add(err *CompileTime) {
	if err == nil {
		return
	}
	e.Errors = append(e.Errors, err)
}

// IsEmpty checks if this CompileTimeCollection is empty (i.e., if it is a
// collection of errors without any errors inside it).
func (e *CompileTimeCollection) IsEmpty() bool {
	return len(e.Errors) == 0
}

// Error converts the CompileTimeCollection to a string -- a multiline string
// at that, with one error per line. Fulfills the error interface.
func (e *CompileTimeCollection) Error() string {
	s := strings.Builder{}
	for _, err := range e.Errors {
		s.WriteString(err.Error())
		s.WriteByte('\n')
	}
	return s.String()
}

// ExitCode fulfills the Error interface.
func (e *CompileTimeCollection) ExitCode() int {
	return StatusCodeCompileTimeError
}

//
// Runtime
//

// Runtime is an error that happened while the virtual machine was executing a
// program: an undefined variable, an operand of the wrong type, and so on.
type Runtime struct {
	// Message contains a message explaining what happened.
	Message string

	// Line contains the source line of the instruction that trapped.
	Line int
}

// NewRuntime is a handy way to create a Runtime error.
func NewRuntime(line int, format string, a ...any) *Runtime {
	return &Runtime{
		Message: fmt.Sprintf(format, a...),
		Line:    line,
	}
}

// Error converts the Runtime to a string. Fulfills the error interface.
func (e *Runtime) Error() string {
	return fmt.Sprintf("%v\n[line %v] in script", e.Message, e.Line)
}

// ExitCode fulfills the Error interface.
func (e *Runtime) ExitCode() int {
	return StatusCodeRuntimeError
}

//
// OriTool
//

// OriTool is an error that happened when running the ori tool that doesn't fit
// any of the other error types. Could be, e.g., an error opening some file.
type OriTool struct {
	// Message contains a message explaining what went wrong.
	Message string
}

// NewOriTool is a handy way to create an OriTool error.
func NewOriTool(format string, a ...any) *OriTool {
	return &OriTool{
		Message: fmt.Sprintf(format, a...),
	}
}

// Error converts the OriTool to a string. Fulfills the error interface.
func (e *OriTool) Error() string {
	return e.Message
}

// ExitCode fulfills the Error interface.
func (e *OriTool) ExitCode() int {
	return StatusCodeOriTool
}

//
// TestSuite
//

// TestSuite is an error that happened when running the Ori test suite (i.e.,
// when testing Ori itself).
type TestSuite struct {
	// TestCase contains the path to the test case that failed.
	TestCase string

	// Message contains a message explaining how the test failed.
	Message string
}

// NewTestSuite is a handy way to create a TestSuite error.
func NewTestSuite(testCase, format string, a ...any) *TestSuite {
	return &TestSuite{
		TestCase: testCase,
		Message:  fmt.Sprintf(format, a...),
	}
}

// Error converts the TestSuite to a string. Fulfills the error interface.
func (e *TestSuite) Error() string {
	return fmt.Sprintf("%v: %v", e.TestCase, e.Message)
}

// ExitCode fulfills the Error interface.
func (e *TestSuite) ExitCode() int {
	return StatusCodeTestSuiteError
}

//
// BadUsage
//

// BadUsage is an error that happened because the ori tool was called in the
// wrong way (like incorrect command-line arguments).
type BadUsage struct {
	// Message contains a message explaining what happened.
	Message string
}

// NewBadUsage is a handy way to create a BadUsage error.
func NewBadUsage(format string, a ...any) *BadUsage {
	return &BadUsage{
		Message: fmt.Sprintf(format, a...),
	}
}

// Error converts the BadUsage to a string. Fulfills the error interface.
func (e *BadUsage) Error() string {
	return "Usage error: " + e.Message
}

// ExitCode fulfills the Error interface.
func (e *BadUsage) ExitCode() int {
	return StatusCodeBadUsage
}

//
// ICE
//

// ICE is an Internal Compiler Error. Used to report some unexpected issue with
// the interpreter -- like when we find it is in a state it wasn't expected to
// be. It's always a bug.
type ICE struct {
	// Message contains some message to contextualize the situation in which
	// the error happened. Hopefully will be good enough to help fixing the
	// bug.
	Message string
}

// NewICE is a handy way to create an ICE.
func NewICE(format string, a ...any) *ICE {
	return &ICE{
		Message: fmt.Sprintf(format, a...),
	}
}

// Error converts the ICE to a string. Fulfills the error interface.
func (e *ICE) Error() string {
	return "Internal Compiler Error: " + e.Message
}

// ExitCode fulfills the Error interface.
func (e *ICE) ExitCode() int {
	return StatusCodeICE
}
