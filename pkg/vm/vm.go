/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package vm

import (
	"fmt"
	"io"
	"os"

	"github.com/orilang/ori/pkg/bytecode"
	"github.com/orilang/ori/pkg/errs"
	"github.com/orilang/ori/pkg/frontend"
)

// InterpretResult is the outcome of interpreting a piece of source code.
type InterpretResult int

const (
	// ResultOk means the program ran to completion.
	ResultOk InterpretResult = iota

	// ResultCompileError means the source didn't compile; nothing was
	// executed.
	ResultCompileError

	// ResultRuntimeError means execution started but trapped.
	ResultRuntimeError
)

// ExitCode returns the process exit status corresponding to the result.
func (r InterpretResult) ExitCode() int {
	switch r {
	case ResultCompileError:
		return errs.StatusCodeCompileTimeError
	case ResultRuntimeError:
		return errs.StatusCodeRuntimeError
	}
	return errs.StatusCodeSuccess
}

// VM is an Ori Virtual Machine: a stack machine executing one Chunk at a
// time.
//
// A VM is strictly single-threaded. It stays usable after a runtime error
// (the stack is reset, globals survive), so a REPL can keep feeding it lines.
type VM struct {
	// Set DebugTraceExecution to true to make the VM disassemble the code as
	// it runs through it.
	DebugTraceExecution bool

	// out is where the VM sends the program's output (what print produces).
	out io.Writer

	// errOut is where the VM sends diagnostics: compile and runtime errors.
	errOut io.Writer

	// chunk is the chunk being executed.
	chunk *bytecode.Chunk

	// ip is the instruction pointer: the offset into chunk.Code of the next
	// byte to read.
	ip int

	// stack is the operand stack.
	stack Stack

	// globals maps global variable names to their values.
	globals *bytecode.Table

	// heap owns every object allocated while compiling and running, and
	// interns all strings.
	heap *bytecode.Heap
}

// New returns a new Virtual Machine. out is where the VM sends the program's
// output, errOut is where it reports errors.
func New(out, errOut io.Writer) *VM {
	return &VM{
		out:     out,
		errOut:  errOut,
		globals: bytecode.NewTable(),
		heap:    bytecode.NewHeap(),
	}
}

// NewStd returns a new Virtual Machine wired to the standard output and
// error streams.
func NewStd() *VM {
	return New(os.Stdout, os.Stderr)
}

// Heap returns the VM's heap.
func (vm *VM) Heap() *bytecode.Heap {
	return vm.heap
}

// Free releases the globals table, the interning table, and every object the
// VM owns. The VM goes back to a blank, reusable state.
func (vm *VM) Free() {
	vm.globals.Free()
	vm.heap.Free()
	vm.chunk = nil
	vm.ip = 0
	vm.stack.reset()
}

// Interpret compiles and runs source. Diagnostics go to the VM's error
// writer; program output goes to the output writer. The compiled chunk lives
// only for the duration of the call.
func (vm *VM) Interpret(source string) InterpretResult {
	chunk := bytecode.NewChunk()
	defer chunk.Free()

	if compErrs := frontend.Compile(source, chunk, vm.heap); compErrs != nil {
		fmt.Fprint(vm.errOut, compErrs.Error())
		return ResultCompileError
	}

	vm.chunk = chunk
	vm.ip = 0

	result := vm.run()

	vm.chunk = nil
	return result
}

// run is the dispatch loop: read one opcode, execute it, repeat until the
// chunk returns or an instruction traps.
func (vm *VM) run() (result InterpretResult) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*errs.Runtime); ok {
				vm.stack.reset()
				result = ResultRuntimeError
				return
			}
			panic(r)
		}
	}()

	for {
		if vm.DebugTraceExecution {
			fmt.Fprint(vm.out, "          ")
			for _, v := range vm.stack.values() {
				fmt.Fprintf(vm.out, "[ %v ]", v)
			}
			fmt.Fprint(vm.out, "\n")
			bytecode.DisassembleInstruction(vm.chunk, vm.out, vm.ip)
		}

		instruction := bytecode.OpCode(vm.readByte())

		switch instruction {
		case bytecode.OpConstant:
			vm.push(vm.readConstant())

		case bytecode.OpNull:
			vm.push(bytecode.NewValueNull())

		case bytecode.OpTrue:
			vm.push(bytecode.NewValueBool(true))

		case bytecode.OpFalse:
			vm.push(bytecode.NewValueBool(false))

		case bytecode.OpPop:
			vm.pop()

		case bytecode.OpGetGlobal:
			name := vm.readString()
			value, ok := vm.globals.Get(name)
			if !ok {
				vm.runtimeError("Undefined variable '%s'.", name)
			}
			vm.push(value)

		case bytecode.OpDefineGlobal:
			name := vm.readString()
			vm.globals.Set(name, vm.peek(0))
			vm.pop()

		case bytecode.OpSetGlobal:
			name := vm.readString()
			if vm.globals.Set(name, vm.peek(0)) {
				// The assignment created the variable, and assignment must
				// not do that: undo and complain.
				vm.globals.Delete(name)
				vm.runtimeError("Undefined variable '%s'.", name)
			}
			// The value stays on the stack: assignment is an expression.

		case bytecode.OpEqual:
			b := vm.pop()
			a := vm.pop()
			vm.push(bytecode.NewValueBool(bytecode.ValuesEqual(a, b)))

		case bytecode.OpGreater:
			a, b := vm.popNumberOperands()
			vm.push(bytecode.NewValueBool(a > b))

		case bytecode.OpLess:
			a, b := vm.popNumberOperands()
			vm.push(bytecode.NewValueBool(a < b))

		case bytecode.OpAdd:
			switch {
			case vm.peek(0).IsString() && vm.peek(1).IsString():
				vm.concatenate()
			case vm.peek(0).IsNumber() && vm.peek(1).IsNumber():
				b := vm.pop().Number
				a := vm.pop().Number
				vm.push(bytecode.NewValueNumber(a + b))
			default:
				vm.runtimeError("Operands must be two numbers or two strings.")
			}

		case bytecode.OpSubtract:
			a, b := vm.popNumberOperands()
			vm.push(bytecode.NewValueNumber(a - b))

		case bytecode.OpMultiply:
			a, b := vm.popNumberOperands()
			vm.push(bytecode.NewValueNumber(a * b))

		case bytecode.OpDivide:
			// Division by zero is not an error: IEEE-754 gives us infinities
			// and NaN.
			a, b := vm.popNumberOperands()
			vm.push(bytecode.NewValueNumber(a / b))

		case bytecode.OpNot:
			vm.push(bytecode.NewValueBool(vm.pop().IsFalsy()))

		case bytecode.OpNegate:
			if !vm.peek(0).IsNumber() {
				vm.runtimeError("Operand must be a number.")
			}
			vm.push(bytecode.NewValueNumber(-vm.pop().Number))

		case bytecode.OpPrint:
			fmt.Fprintf(vm.out, "%v\n", vm.pop())

		case bytecode.OpReturn:
			return ResultOk

		default:
			vm.runtimeError("Unexpected instruction: %v", uint8(instruction))
		}
	}
}

//
// Bytecode reading
//

// readByte reads the next byte from the chunk and advances the instruction
// pointer.
func (vm *VM) readByte() uint8 {
	b := vm.chunk.Code[vm.ip]
	vm.ip++
	return b
}

// readConstant reads a one-byte constant index from the chunk and returns the
// corresponding constant value.
func (vm *VM) readConstant() bytecode.Value {
	return vm.chunk.Constants[vm.readByte()]
}

// readString reads a one-byte constant index from the chunk and returns the
// corresponding constant, which must be a string (it's a variable name the
// compiler interned).
func (vm *VM) readString() *bytecode.ObjString {
	return vm.readConstant().AsString()
}

//
// Stack manipulation
//

// push pushes a value onto the VM stack. Overflow is a runtime error.
func (vm *VM) push(value bytecode.Value) {
	if !vm.stack.push(value) {
		vm.runtimeError("Stack overflow.")
	}
}

// pop pops a value from the VM stack and returns it.
func (vm *VM) pop() bytecode.Value {
	return vm.stack.pop()
}

// peek returns a value on the stack that is a given distance from the top.
// Passing 0 means "give me the value on the top of the stack". The stack is
// not changed at all.
func (vm *VM) peek(distance int) bytecode.Value {
	return vm.stack.peek(distance)
}

//
// Operations
//

// popNumberOperands pops the two operands of a binary numeric instruction,
// checking their types first (with the stack untouched, so the error path
// sees a consistent stack).
func (vm *VM) popNumberOperands() (a, b float64) {
	if !vm.peek(0).IsNumber() || !vm.peek(1).IsNumber() {
		vm.runtimeError("Operands must be numbers.")
	}
	b = vm.pop().Number
	a = vm.pop().Number
	return a, b
}

// concatenate pops two strings and pushes their concatenation, interned: if
// an equal string already exists, the freshly built buffer is dropped and the
// existing handle reused.
func (vm *VM) concatenate() {
	b := vm.pop().AsString()
	a := vm.pop().AsString()

	chars := make([]byte, 0, len(a.Chars)+len(b.Chars))
	chars = append(chars, a.Chars...)
	chars = append(chars, b.Chars...)

	vm.push(bytecode.NewValueObj(vm.heap.TakeString(chars)))
}

//
// Runtime errors
//

// runtimeError stops the execution, reporting a runtime error with a given
// message and fmt.Printf-like arguments. The faulting source line comes from
// the chunk's line map, at the last byte the instruction pointer consumed
// (ip-1): the opcode itself for simple instructions, the operand byte for
// instructions that carry one.
func (vm *VM) runtimeError(format string, a ...any) {
	line := vm.chunk.Lines[vm.ip-1]

	err := errs.NewRuntime(line, format, a...)
	fmt.Fprintf(vm.errOut, "%v\n", err)

	panic(err)
}
