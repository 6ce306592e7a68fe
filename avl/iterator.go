// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltraverse/stack"
)

// First - return the node with the lowest key value
func (tree *Tree[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node[K, V]) Next() *Node[K, V] {
	if p.right != nil {
		return p.right.first()
	}
	for up := p.up; nil != up; p, up = up, up.up {
		if up.left == p {
			return up
		}
	}
	return nil
}

// Prev - given a node, return the node with the next lowest key value
// or nil if no more nodes
func (p *Node[K, V]) Prev() *Node[K, V] {
	if p.left != nil {
		return p.left.last()
	}
	for up := p.up; nil != up; p, up = up, up.up {
		if up.right == p {
			return up
		}
	}
	return nil
}

// cursor shared by the ascending and descending iterators
//
// path holds every ancestor of node, the parent on top; when node is
// nil the cursor is at the end and path is empty
type cursor[K, V any] struct {
	tree *Tree[K, V]
	node *Node[K, V]
	path stack.Stack[*Node[K, V]]
}

// position a cursor at any node by following the parent links
func (tree *Tree[K, V]) cursorAt(p *Node[K, V]) cursor[K, V] {
	c := cursor[K, V]{
		tree: tree,
		node: p,
	}
	if nil == p {
		return c
	}
	ancestors := stack.Stack[*Node[K, V]]{}
	for up := p.up; nil != up; up = up.up {
		ancestors.Push(up)
	}
	c.path = ancestors.Reverse()
	return c
}

// position at the lowest key
func (c *cursor[K, V]) seekFirst() {
	c.path = stack.Stack[*Node[K, V]]{}
	c.node = c.tree.root
	if nil != c.node {
		c.descendLeft()
	}
}

// position at the highest key
func (c *cursor[K, V]) seekLast() {
	c.path = stack.Stack[*Node[K, V]]{}
	c.node = c.tree.root
	if nil != c.node {
		c.descendRight()
	}
}

func (c *cursor[K, V]) descendLeft() {
	for nil != c.node.left {
		c.path.Push(c.node)
		c.node = c.node.left
	}
}

func (c *cursor[K, V]) descendRight() {
	for nil != c.node.right {
		c.path.Push(c.node)
		c.node = c.node.right
	}
}

// step to the next higher key; no-op at the end
func (c *cursor[K, V]) forward() {
	p := c.node
	if nil == p {
		return
	}
	if nil != p.right {
		c.path.Push(p)
		c.node = p.right
		c.descendLeft()
		return
	}
	for !c.path.IsEmpty() && c.path.Top().right == p {
		p = c.path.Pop()
	}
	if c.path.IsEmpty() {
		c.node = nil
		return
	}
	c.node = c.path.Pop()
}

// step to the next lower key; no-op at the end
func (c *cursor[K, V]) backward() {
	p := c.node
	if nil == p {
		return
	}
	if nil != p.left {
		c.path.Push(p)
		c.node = p.left
		c.descendRight()
		return
	}
	for !c.path.IsEmpty() && c.path.Top().left == p {
		p = c.path.Pop()
	}
	if c.path.IsEmpty() {
		c.node = nil
		return
	}
	c.node = c.path.Pop()
}

// the node under the cursor, dereferencing the end is a programming
// error
func (c *cursor[K, V]) current() *Node[K, V] {
	if nil == c.node {
		panic("avl: dereference of end iterator")
	}
	return c.node
}
