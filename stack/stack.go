// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stack

// Stack - a LIFO stack of values
//
// the zero value is an empty stack. Elements are never modified
// once pushed, so a copy of a Stack value is independent of the
// original: push or pop on one does not affect the other
type Stack[T any] struct {
	top  *element[T]
	size int
}

// a single cell, shared by all copies that contain it
type element[T any] struct {
	value T
	next  *element[T]
}

// Push - add a value to the top of the stack
func (s *Stack[T]) Push(value T) {
	s.top = &element[T]{
		value: value,
		next:  s.top,
	}
	s.size += 1
}

// Pop - remove and return the top value
//
// panics if the stack is empty, check IsEmpty first
func (s *Stack[T]) Pop() T {
	if nil == s.top {
		panic("stack: pop from empty stack")
	}
	e := s.top
	s.top = e.next
	s.size -= 1
	return e.value
}

// Top - return the top value without removing it
//
// panics if the stack is empty
func (s *Stack[T]) Top() T {
	if nil == s.top {
		panic("stack: top of empty stack")
	}
	return s.top.value
}

// IsEmpty - true if no values are on the stack
func (s *Stack[T]) IsEmpty() bool {
	return nil == s.top
}

// Len - number of values on the stack
func (s *Stack[T]) Len() int {
	return s.size
}

// Reverse - a new stack with the same values in the opposite order
func (s *Stack[T]) Reverse() Stack[T] {
	r := Stack[T]{}
	for e := s.top; nil != e; e = e.next {
		r.Push(e.value)
	}
	return r
}
