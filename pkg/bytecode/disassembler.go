/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import (
	"fmt"
	"io"
)

// DisassembleChunk disassembles a whole chunk, writing the result to out.
// name is a header printed before the instructions.
func DisassembleChunk(chunk *Chunk, out io.Writer, name string) {
	fmt.Fprintf(out, "== %v ==\n", name)

	for offset := 0; offset < len(chunk.Code); {
		offset = DisassembleInstruction(chunk, out, offset)
	}
}

// DisassembleInstruction disassembles the instruction at a given offset of
// chunk and returns the offset of the next instruction. Output is written to
// out.
func DisassembleInstruction(chunk *Chunk, out io.Writer, offset int) int {
	// Offset
	fmt.Fprintf(out, "%04d ", offset)

	// Source line, or a marker when it's the same as the previous byte's
	if offset > 0 && chunk.Lines[offset] == chunk.Lines[offset-1] {
		fmt.Fprintf(out, "   | ")
	} else {
		fmt.Fprintf(out, "%4d ", chunk.Lines[offset])
	}

	// Instruction
	instruction := OpCode(chunk.Code[offset])

	switch instruction {
	case OpConstant, OpGetGlobal, OpDefineGlobal, OpSetGlobal:
		return disassembleConstantInstruction(chunk, out, instruction.String(), offset)

	case OpNull, OpTrue, OpFalse, OpPop, OpEqual, OpGreater, OpLess, OpAdd,
		OpSubtract, OpMultiply, OpDivide, OpNot, OpNegate, OpPrint, OpReturn:
		return disassembleSimpleInstruction(out, instruction.String(), offset)

	default:
		fmt.Fprintf(out, "Unknown opcode %d\n", instruction)
		return offset + 1
	}
}

// disassembleSimpleInstruction disassembles a simple instruction at a given
// offset. name is the instruction name, and the output is written to out.
// Returns the offset to the next instruction.
//
// A simple instruction is one composed of a single byte (just the opcode, no
// operands).
func disassembleSimpleInstruction(out io.Writer, name string, offset int) int {
	fmt.Fprintf(out, "%v\n", name)
	return offset + 1
}

// disassembleConstantInstruction disassembles an instruction with a one-byte
// constant pool operand at a given offset. name is the instruction name, and
// the output is written to out. Returns the offset to the next instruction.
func disassembleConstantInstruction(chunk *Chunk, out io.Writer, name string, offset int) int {
	index := chunk.Code[offset+1]
	fmt.Fprintf(out, "%-16s %4d '%v'\n", name, index, chunk.Constants[index])
	return offset + 2
}
