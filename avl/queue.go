// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltraverse/stack"
)

// first in first out queue made of two stacks
//
// items are added to back and taken from front; when front runs out
// the back is reversed into it. Copies of a queue are independent.
type queue[T any] struct {
	front stack.Stack[T]
	back  stack.Stack[T]
}

func (q *queue[T]) put(item T) {
	q.back.Push(item)
}

// panics if the queue is empty
func (q *queue[T]) take() T {
	q.settle()
	return q.front.Pop()
}

// panics if the queue is empty
func (q *queue[T]) peek() T {
	q.settle()
	return q.front.Top()
}

func (q *queue[T]) isEmpty() bool {
	return q.front.IsEmpty() && q.back.IsEmpty()
}

func (q *queue[T]) settle() {
	if q.front.IsEmpty() {
		q.front = q.back.Reverse()
		q.back = stack.Stack[T]{}
	}
}
