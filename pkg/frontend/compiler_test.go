/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package frontend

import (
	"fmt"
	"strings"
	"testing"

	"github.com/orilang/ori/pkg/bytecode"
	"github.com/orilang/ori/pkg/errs"
)

// compileSource compiles source into a fresh chunk, failing the test on
// compile errors.
func compileSource(t *testing.T, source string) *bytecode.Chunk {
	t.Helper()

	chunk := bytecode.NewChunk()
	heap := bytecode.NewHeap()
	if compErrs := Compile(source, chunk, heap); compErrs != nil {
		t.Fatalf("unexpected compile errors:\n%v", compErrs)
	}
	return chunk
}

// compileExpectingErrors compiles source expecting it to fail, and returns
// the errors.
func compileExpectingErrors(t *testing.T, source string) *errs.CompileTimeCollection {
	t.Helper()

	chunk := bytecode.NewChunk()
	heap := bytecode.NewHeap()
	compErrs := Compile(source, chunk, heap)
	if compErrs == nil {
		t.Fatalf("expected compile errors, got none")
	}
	return compErrs
}

func TestCompileArithmetic(t *testing.T) {
	chunk := compileSource(t, "print 1 + 2 * 3;")

	// Operands in source order, multiplication bound tighter than addition.
	expected := []uint8{
		uint8(bytecode.OpConstant), 0,
		uint8(bytecode.OpConstant), 1,
		uint8(bytecode.OpConstant), 2,
		uint8(bytecode.OpMultiply),
		uint8(bytecode.OpAdd),
		uint8(bytecode.OpPrint),
		uint8(bytecode.OpReturn),
	}

	if len(chunk.Code) != len(expected) {
		t.Fatalf("expected %v bytes, got %v", len(expected), len(chunk.Code))
	}
	for i, b := range expected {
		if chunk.Code[i] != b {
			t.Errorf("byte %v: expected %v, got %v", i, b, chunk.Code[i])
		}
	}

	for i, n := range []float64{1, 2, 3} {
		if chunk.Constants[i].Number != n {
			t.Errorf("constant %v: expected %v, got %v", i, n, chunk.Constants[i].Number)
		}
	}
}

func TestCompileLeftAssociativity(t *testing.T) {
	chunk := compileSource(t, "print 1 - 2 - 3;")

	expected := []uint8{
		uint8(bytecode.OpConstant), 0,
		uint8(bytecode.OpConstant), 1,
		uint8(bytecode.OpSubtract),
		uint8(bytecode.OpConstant), 2,
		uint8(bytecode.OpSubtract),
		uint8(bytecode.OpPrint),
		uint8(bytecode.OpReturn),
	}

	if len(chunk.Code) != len(expected) {
		t.Fatalf("expected %v bytes, got %v", len(expected), len(chunk.Code))
	}
	for i, b := range expected {
		if chunk.Code[i] != b {
			t.Errorf("byte %v: expected %v, got %v", i, b, chunk.Code[i])
		}
	}
}

func TestCompileComparisonEncodings(t *testing.T) {
	tests := []struct {
		source   string
		expected []uint8
	}{
		{"1 == 2;", []uint8{uint8(bytecode.OpEqual)}},
		{"1 != 2;", []uint8{uint8(bytecode.OpEqual), uint8(bytecode.OpNot)}},
		{"1 < 2;", []uint8{uint8(bytecode.OpLess)}},
		{"1 <= 2;", []uint8{uint8(bytecode.OpGreater), uint8(bytecode.OpNot)}},
		{"1 > 2;", []uint8{uint8(bytecode.OpGreater)}},
		{"1 >= 2;", []uint8{uint8(bytecode.OpLess), uint8(bytecode.OpNot)}},
	}

	for _, tt := range tests {
		chunk := compileSource(t, tt.source)

		// Skip the two constant loads; then come the operator opcodes, then
		// the statement's pop and the chunk's return.
		operators := chunk.Code[4 : len(chunk.Code)-2]
		if len(operators) != len(tt.expected) {
			t.Errorf("%q: expected %v operator bytes, got %v", tt.source, len(tt.expected), len(operators))
			continue
		}
		for i, b := range tt.expected {
			if operators[i] != b {
				t.Errorf("%q: operator byte %v: expected %v, got %v", tt.source, i, b, operators[i])
			}
		}
	}
}

func TestCompileLiterals(t *testing.T) {
	chunk := compileSource(t, "true; false; null;")

	expected := []uint8{
		uint8(bytecode.OpTrue), uint8(bytecode.OpPop),
		uint8(bytecode.OpFalse), uint8(bytecode.OpPop),
		uint8(bytecode.OpNull), uint8(bytecode.OpPop),
		uint8(bytecode.OpReturn),
	}

	for i, b := range expected {
		if chunk.Code[i] != b {
			t.Errorf("byte %v: expected %v, got %v", i, b, chunk.Code[i])
		}
	}
}

func TestCompileStringLiteral(t *testing.T) {
	chunk := compileSource(t, `print "hi";`)

	if len(chunk.Constants) != 1 {
		t.Fatalf("expected 1 constant, got %v", len(chunk.Constants))
	}
	s := chunk.Constants[0].AsString()
	if string(s.Chars) != "hi" {
		t.Errorf("expected the quotes to be trimmed, got %q", s.Chars)
	}
}

func TestCompileIdentifierConstantsShareHandles(t *testing.T) {
	chunk := bytecode.NewChunk()
	heap := bytecode.NewHeap()
	if compErrs := Compile("let a = 1; a; a;", chunk, heap); compErrs != nil {
		t.Fatalf("unexpected compile errors:\n%v", compErrs)
	}

	// Every occurrence of `a` adds a constant, but interning makes them all
	// the same object.
	var handles []*bytecode.ObjString
	for _, constant := range chunk.Constants {
		if constant.IsString() {
			handles = append(handles, constant.AsString())
		}
	}
	if len(handles) != 3 {
		t.Fatalf("expected 3 string constants, got %v", len(handles))
	}
	if handles[0] != handles[1] || handles[1] != handles[2] {
		t.Errorf("expected all occurrences of 'a' to intern to one handle")
	}
}

func TestCompileLetDeclaration(t *testing.T) {
	chunk := compileSource(t, "let answer = 42;")

	expected := []uint8{
		uint8(bytecode.OpConstant), 1, // the initializer (name is constant 0)
		uint8(bytecode.OpDefineGlobal), 0,
		uint8(bytecode.OpReturn),
	}

	if len(chunk.Code) != len(expected) {
		t.Fatalf("expected %v bytes, got %v", len(expected), len(chunk.Code))
	}
	for i, b := range expected {
		if chunk.Code[i] != b {
			t.Errorf("byte %v: expected %v, got %v", i, b, chunk.Code[i])
		}
	}
}

func TestCompileLetWithoutInitializer(t *testing.T) {
	chunk := compileSource(t, "let x;")

	expected := []uint8{
		uint8(bytecode.OpNull),
		uint8(bytecode.OpDefineGlobal), 0,
		uint8(bytecode.OpReturn),
	}

	for i, b := range expected {
		if chunk.Code[i] != b {
			t.Errorf("byte %v: expected %v, got %v", i, b, chunk.Code[i])
		}
	}
}

func TestCompileAssignment(t *testing.T) {
	chunk := compileSource(t, "a = 1;")

	expected := []uint8{
		uint8(bytecode.OpConstant), 1,
		uint8(bytecode.OpSetGlobal), 0,
		uint8(bytecode.OpPop),
		uint8(bytecode.OpReturn),
	}

	for i, b := range expected {
		if chunk.Code[i] != b {
			t.Errorf("byte %v: expected %v, got %v", i, b, chunk.Code[i])
		}
	}
}

func TestCompileInvalidAssignmentTarget(t *testing.T) {
	compErrs := compileExpectingErrors(t, "a + b = c;")

	if len(compErrs.Errors) != 1 {
		t.Fatalf("expected exactly 1 error, got %v:\n%v", len(compErrs.Errors), compErrs)
	}
	if !strings.Contains(compErrs.Errors[0].Error(), "Invalid assignment target.") {
		t.Errorf("expected an invalid-assignment-target error, got %q", compErrs.Errors[0].Error())
	}
}

func TestCompileChainedAssignmentIsValid(t *testing.T) {
	// Right-associative chained assignment is fine; it's only non-variable
	// targets that are rejected.
	compileSource(t, "a = b = c;")
}

func TestCompileExpectExpression(t *testing.T) {
	compErrs := compileExpectingErrors(t, "print + ;")

	if !strings.Contains(compErrs.Error(), "Expect expression.") {
		t.Errorf("expected an expect-expression error, got %q", compErrs.Error())
	}
}

func TestCompileMissingSemicolon(t *testing.T) {
	compErrs := compileExpectingErrors(t, "print 1")

	if len(compErrs.Errors) != 1 {
		t.Fatalf("expected exactly 1 error, got %v", len(compErrs.Errors))
	}
	msg := compErrs.Errors[0].Error()
	if !strings.Contains(msg, "Expect ';' after value.") {
		t.Errorf("expected the missing-semicolon message, got %q", msg)
	}
	if !strings.Contains(msg, "at end") {
		t.Errorf("expected the error to point at the end of input, got %q", msg)
	}
}

func TestCompileErrorFormat(t *testing.T) {
	compErrs := compileExpectingErrors(t, "let 1 = 2;")

	msg := compErrs.Errors[0].Error()
	if !strings.HasPrefix(msg, "[line 1] Error at '1': ") {
		t.Errorf("expected the standard error format, got %q", msg)
	}
}

func TestCompileSynchronizationReportsOncePerStatement(t *testing.T) {
	// Two broken statements: panic mode suppresses the cascade within each,
	// and synchronization lets the second one be reported too.
	compErrs := compileExpectingErrors(t, "let 1; let 2;")

	if len(compErrs.Errors) != 2 {
		t.Fatalf("expected 2 errors (one per statement), got %v:\n%v", len(compErrs.Errors), compErrs)
	}
}

func TestCompileUnterminatedString(t *testing.T) {
	compErrs := compileExpectingErrors(t, `print "abc`)

	if len(compErrs.Errors) != 1 {
		t.Fatalf("expected exactly 1 error, got %v:\n%v", len(compErrs.Errors), compErrs)
	}
	msg := compErrs.Errors[0].Error()
	if msg != "[line 1] Error: Unterminated string." {
		t.Errorf("expected the unterminated-string diagnostic, got %q", msg)
	}
}

func TestCompileTooManyConstants(t *testing.T) {
	// 257 distinct number literals: the 257th doesn't fit the one-byte
	// operand.
	b := strings.Builder{}
	for i := 0; i < 257; i++ {
		fmt.Fprintf(&b, "print %d;", i)
	}

	compErrs := compileExpectingErrors(t, b.String())
	if len(compErrs.Errors) != 1 {
		t.Fatalf("expected exactly 1 error, got %v", len(compErrs.Errors))
	}
	if !strings.Contains(compErrs.Error(), "Too many constants in one chunk.") {
		t.Errorf("expected a too-many-constants error, got %q", compErrs.Error())
	}
}

func TestCompileLineMapMatchesCode(t *testing.T) {
	chunk := compileSource(t, "let a = 1;\nprint a;\nlet b = a + 2;\n")

	if len(chunk.Code) != len(chunk.Lines) {
		t.Fatalf("code and line map lengths differ: %v != %v", len(chunk.Code), len(chunk.Lines))
	}

	// Lines are non-decreasing in a straight-line program.
	for i := 1; i < len(chunk.Lines); i++ {
		if chunk.Lines[i] < chunk.Lines[i-1] {
			t.Errorf("line map decreases at byte %v: %v -> %v", i, chunk.Lines[i-1], chunk.Lines[i])
		}
	}

	if chunk.Lines[0] != 1 {
		t.Errorf("expected the first byte on line 1, got %v", chunk.Lines[0])
	}
	// The trailing Return is attributed to the EOF token, which sits on line
	// 4 after the final newline.
	if last := chunk.Lines[len(chunk.Lines)-1]; last != 4 {
		t.Errorf("expected the last byte on line 4, got %v", last)
	}
}

func TestCompileGroupingMissingParen(t *testing.T) {
	compErrs := compileExpectingErrors(t, "print (1 + 2;")

	if !strings.Contains(compErrs.Error(), "Expect ')' after expression.") {
		t.Errorf("expected the missing-paren message, got %q", compErrs.Error())
	}
}
