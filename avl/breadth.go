// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// level order cursor: node is always the front of pending
type levels[K, V any] struct {
	node    *Node[K, V]
	pending queue[*Node[K, V]]
}

func (l *levels[K, V]) start(root *Node[K, V]) {
	l.node = root
	if nil != root {
		l.pending.put(root)
	}
}

// dequeue the current node, queue its children left then right
func (l *levels[K, V]) forward() {
	if l.pending.isEmpty() {
		l.node = nil
		return
	}
	p := l.pending.take()
	if nil != p.left {
		l.pending.put(p.left)
	}
	if nil != p.right {
		l.pending.put(p.right)
	}
	if l.pending.isEmpty() {
		l.node = nil
		return
	}
	l.node = l.pending.peek()
}

func (l *levels[K, V]) current() *Node[K, V] {
	if nil == l.node {
		panic("avl: dereference of end iterator")
	}
	return l.node
}

// Breadth - level order iterator that can modify values
//
// visits the root, then every node of depth 1 left to right, then
// depth 2 and so on
type Breadth[K, V any] struct {
	l levels[K, V]
}

// ConstBreadth - read only level order iterator
type ConstBreadth[K, V any] struct {
	l levels[K, V]
}

// BeginBreadth - iterator at the root, or at the end if the tree is
// empty
func (tree *Tree[K, V]) BeginBreadth() Breadth[K, V] {
	it := Breadth[K, V]{}
	it.l.start(tree.root)
	return it
}

// EndBreadth - the position after the last node of the deepest level
func (tree *Tree[K, V]) EndBreadth() Breadth[K, V] {
	return Breadth[K, V]{}
}

func (it *Breadth[K, V]) Valid() bool {
	return nil != it.l.node
}

func (it *Breadth[K, V]) Key() K {
	return it.l.current().key
}

func (it *Breadth[K, V]) Value() V {
	return it.l.current().value
}

// SetValue - overwrite the value of the current node
func (it *Breadth[K, V]) SetValue(value V) {
	it.l.current().value = value
}

// Next - advance to the next node in level order
func (it *Breadth[K, V]) Next() {
	it.l.forward()
}

func (it *Breadth[K, V]) Equal(other Breadth[K, V]) bool {
	return it.l.node == other.l.node
}

// Const - read only copy of the iterator
func (it *Breadth[K, V]) Const() ConstBreadth[K, V] {
	return ConstBreadth[K, V]{l: it.l}
}

func (it *ConstBreadth[K, V]) Valid() bool {
	return nil != it.l.node
}

func (it *ConstBreadth[K, V]) Key() K {
	return it.l.current().key
}

func (it *ConstBreadth[K, V]) Value() V {
	return it.l.current().value
}

func (it *ConstBreadth[K, V]) Next() {
	it.l.forward()
}

func (it *ConstBreadth[K, V]) Equal(other ConstBreadth[K, V]) bool {
	return it.l.node == other.l.node
}
