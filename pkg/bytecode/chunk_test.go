/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import (
	"testing"
)

func TestChunkWrite(t *testing.T) {
	chunk := NewChunk()

	chunk.Write(uint8(OpConstant), 1)
	chunk.Write(0, 1)
	chunk.Write(uint8(OpReturn), 2)

	if len(chunk.Code) != 3 {
		t.Fatalf("expected 3 bytes of code, got %v", len(chunk.Code))
	}
	if len(chunk.Lines) != len(chunk.Code) {
		t.Fatalf("code and line map lengths differ: %v != %v", len(chunk.Code), len(chunk.Lines))
	}

	expectedLines := []int{1, 1, 2}
	for i, line := range expectedLines {
		if chunk.Lines[i] != line {
			t.Errorf("byte %v: expected line %v, got %v", i, line, chunk.Lines[i])
		}
	}
}

func TestChunkWriteGrows(t *testing.T) {
	chunk := NewChunk()

	for i := 0; i < 1000; i++ {
		chunk.Write(uint8(OpPop), i)
	}

	if len(chunk.Code) != 1000 || len(chunk.Lines) != 1000 {
		t.Fatalf("expected 1000 bytes and lines, got %v and %v", len(chunk.Code), len(chunk.Lines))
	}
	if chunk.Lines[999] != 999 {
		t.Errorf("expected line 999 at the last byte, got %v", chunk.Lines[999])
	}
}

func TestChunkAddConstant(t *testing.T) {
	chunk := NewChunk()

	for i := 0; i < 10; i++ {
		index := chunk.AddConstant(NewValueNumber(float64(i)))
		if index != i {
			t.Fatalf("expected constant index %v, got %v", i, index)
		}
	}

	for i := 0; i < 10; i++ {
		if chunk.Constants[i].Number != float64(i) {
			t.Errorf("constant %v: expected %v, got %v", i, float64(i), chunk.Constants[i].Number)
		}
	}
}

func TestChunkFree(t *testing.T) {
	chunk := NewChunk()
	chunk.Write(uint8(OpReturn), 1)
	chunk.AddConstant(NewValueNumber(1.0))

	chunk.Free()

	if len(chunk.Code) != 0 || len(chunk.Lines) != 0 || len(chunk.Constants) != 0 {
		t.Errorf("expected a blank chunk after Free")
	}
}
