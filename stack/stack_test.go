// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltraverse/stack"
)

func TestPushPop(t *testing.T) {
	s := stack.Stack[int]{}
	assert.True(t, s.IsEmpty(), "new stack not empty")
	assert.Equal(t, 0, s.Len(), "new stack length")

	for i := 1; i <= 5; i += 1 {
		s.Push(i)
		assert.Equal(t, i, s.Top(), "wrong top")
	}
	assert.Equal(t, 5, s.Len(), "stack length")

	for i := 5; i >= 1; i -= 1 {
		require.False(t, s.IsEmpty(), "stack emptied early")
		assert.Equal(t, i, s.Pop(), "wrong pop")
	}
	assert.True(t, s.IsEmpty(), "stack not empty")
	assert.Equal(t, 0, s.Len(), "final stack length")
}

func TestEmptyPanics(t *testing.T) {
	s := stack.Stack[string]{}
	assert.Panics(t, func() { s.Pop() }, "pop of empty stack")
	assert.Panics(t, func() { s.Top() }, "top of empty stack")
}

// copies must not see each other's changes
func TestCopyIndependence(t *testing.T) {
	a := stack.Stack[string]{}
	a.Push("one")
	a.Push("two")

	b := a
	b.Pop()
	b.Push("three")
	b.Push("four")

	a.Push("five")

	assert.Equal(t, 3, a.Len(), "a length")
	assert.Equal(t, 3, b.Len(), "b length")

	assert.Equal(t, "five", a.Pop())
	assert.Equal(t, "two", a.Pop())
	assert.Equal(t, "one", a.Pop())

	assert.Equal(t, "four", b.Pop())
	assert.Equal(t, "three", b.Pop())
	assert.Equal(t, "one", b.Pop())
}

func TestReverse(t *testing.T) {
	s := stack.Stack[int]{}
	for i := 0; i < 4; i += 1 {
		s.Push(i)
	}
	r := s.Reverse()
	assert.Equal(t, s.Len(), r.Len(), "reversed length")
	for i := 0; i < 4; i += 1 {
		assert.Equal(t, i, r.Pop())
	}
	assert.Equal(t, 3, s.Top(), "original changed")
}
