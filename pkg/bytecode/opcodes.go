/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

// OpCode is an opcode in the Ori Virtual Machine.
type OpCode uint8

const (
	// OpConstant loads a constant onto the stack. It takes a one-byte operand:
	// the index of the constant in the Chunk's constant pool.
	OpConstant OpCode = iota

	// OpNull pushes a null value onto the stack.
	OpNull

	// OpTrue pushes a true value onto the stack.
	OpTrue

	// OpFalse pushes a false value onto the stack.
	OpFalse

	// OpPop discards the value on the top of the stack.
	OpPop

	// OpGetGlobal pushes the value of a global variable. Takes a one-byte
	// operand: the constant pool index of the variable name.
	OpGetGlobal

	// OpDefineGlobal defines a global variable, initializing it with the value
	// on the top of the stack (which is popped). Takes a one-byte operand: the
	// constant pool index of the variable name. Redefining an existing global
	// silently overwrites it.
	OpDefineGlobal

	// OpSetGlobal assigns the value on the top of the stack to an existing
	// global variable. Takes a one-byte operand: the constant pool index of
	// the variable name. The value is left on the stack: assignment is an
	// expression, and the surrounding expression statement pops it.
	OpSetGlobal

	// OpEqual pops two values and pushes a Boolean telling whether they are
	// equal.
	OpEqual

	// OpGreater pops two numbers and pushes a Boolean telling whether the
	// first is greater than the second.
	OpGreater

	// OpLess pops two numbers and pushes a Boolean telling whether the first
	// is less than the second.
	OpLess

	// OpAdd pops two values and pushes their sum (numbers) or concatenation
	// (strings).
	OpAdd

	// OpSubtract pops two numbers and pushes their difference.
	OpSubtract

	// OpMultiply pops two numbers and pushes their product.
	OpMultiply

	// OpDivide pops two numbers and pushes their quotient.
	OpDivide

	// OpNot pops a value and pushes its logical negation.
	OpNot

	// OpNegate pops a number and pushes its arithmetic negation.
	OpNegate

	// OpPrint pops a value and prints it, followed by a newline.
	OpPrint

	// OpReturn ends the execution.
	OpReturn
)

// String converts an OpCode to the name used in disassembly and traces.
func (op OpCode) String() string {
	switch op {
	case OpConstant:
		return "CONSTANT"
	case OpNull:
		return "NULL"
	case OpTrue:
		return "TRUE"
	case OpFalse:
		return "FALSE"
	case OpPop:
		return "POP"
	case OpGetGlobal:
		return "GET_GLOBAL"
	case OpDefineGlobal:
		return "DEFINE_GLOBAL"
	case OpSetGlobal:
		return "SET_GLOBAL"
	case OpEqual:
		return "EQUAL"
	case OpGreater:
		return "GREATER"
	case OpLess:
		return "LESS"
	case OpAdd:
		return "ADD"
	case OpSubtract:
		return "SUBTRACT"
	case OpMultiply:
		return "MULTIPLY"
	case OpDivide:
		return "DIVIDE"
	case OpNot:
		return "NOT"
	case OpNegate:
		return "NEGATE"
	case OpPrint:
		return "PRINT"
	case OpReturn:
		return "RETURN"
	}
	return ""
}
