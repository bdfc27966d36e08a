/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package vm

import (
	"github.com/orilang/ori/pkg/bytecode"
)

// StackMax is the capacity of the VM's operand stack.
const StackMax = 256

// Stack implements the VM operand stack: a fixed-capacity stack of
// bytecode.Values.
type Stack struct {
	data [StackMax]bytecode.Value
	top  int
}

// size returns the number of elements in the stack.
func (s *Stack) size() int {
	return s.top
}

// push pushes a new value onto the stack. Returns false if the stack is full
// (and the value was not pushed).
func (s *Stack) push(v bytecode.Value) bool {
	if s.top == StackMax {
		return false
	}
	s.data[s.top] = v
	s.top++
	return true
}

// pop pops a value from the top of the stack and returns it. Panics on
// underflow.
func (s *Stack) pop() bytecode.Value {
	s.top--
	return s.data[s.top]
}

// peek returns a value on the stack that is a given distance from the top.
// Passing 0 means "give me the value on the top of the stack". The stack is
// not changed at all. Panics if trying to get a value beyond the bottom of
// the stack.
func (s *Stack) peek(distance int) bytecode.Value {
	return s.data[s.top-1-distance]
}

// reset empties the stack. The backing array is left as is, to be overwritten
// by future pushes.
func (s *Stack) reset() {
	s.top = 0
}

// values returns the stack contents, bottom first. Used by the execution
// tracer.
func (s *Stack) values() []bytecode.Value {
	return s.data[:s.top]
}
