/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package vm

import (
	"github.com/vireo-lang/vireo/pkg/bytecode"
)

// Stack implements the VM operand stack, which is a stack of
// bytecode.Values.
type Stack struct {
	data []bytecode.Value
}

// size returns the number of elements in the stack.
func (s *Stack) size() int {
	return len(s.data)
}

// top returns the value at the top of the stack, without popping it. Panics
// if the stack is empty.
func (s *Stack) top() bytecode.Value {
	return s.data[len(s.data)-1]
}

// push pushes a new value into the stack.
func (s *Stack) push(v bytecode.Value) {
	s.data = append(s.data, v)
}

// pop pops a value from the top of the stack and returns it. Panics on
// underflow.
func (s *Stack) pop() bytecode.Value {
	top := s.top()
	s.data = s.data[:len(s.data)-1]
	return top
}

// popN pops n values from the top of the stack and discards them. Panics on
// underflow.
func (s *Stack) popN(n int) {
	s.data = s.data[:len(s.data)-n]
}

// peek returns a value on the stack that is a given distance from the top.
// Passing 0 means "give me the value on the top of the stack". The stack is
// not changed at all. Panics if trying to get a value beyond the bottom of
// the stack.
func (s *Stack) peek(distance int) bytecode.Value {
	return s.data[len(s.data)-1-distance]
}

// at returns a value at a given index of the stack. In other words, accesses
// the stack as an array. The stack is not changed at all. Panics if trying
// to get a value that is out-of-bounds.
func (s *Stack) at(index int) bytecode.Value {
	return s.data[index]
}

// setAt sets the value at a given index of the stack. In other words,
// accesses the stack as an array. Panics if trying to set a value that is
// out-of-bounds.
func (s *Stack) setAt(index int, value bytecode.Value) {
	s.data[index] = value
}

// truncate drops every value above the given height.
func (s *Stack) truncate(height int) {
	s.data = s.data[:height]
}

// pushCall lays out a call on the stack: the callee value followed by each
// argument, in order.
func (s *Stack) pushCall(callee bytecode.Value, args []bytecode.Value) {
	s.push(callee)
	s.data = append(s.data, args...)
}

// popCall pops a whole call layout: the arity arguments plus the callee
// under them.
func (s *Stack) popCall(arity bytecode.CallArity) {
	s.popN(int(arity) + 1)
}

// callee returns the callee value of a call of the given arity, i.e. the
// value arity+1 positions deep.
func (s *Stack) callee(arity bytecode.CallArity) bytecode.Value {
	return s.peek(int(arity))
}

// args returns the argument window of a call of the given arity: the arity
// topmost values, oldest first. The returned slice aliases the stack and is
// only valid until the stack changes.
func (s *Stack) args(arity bytecode.CallArity) []bytecode.Value {
	return s.data[len(s.data)-int(arity):]
}
