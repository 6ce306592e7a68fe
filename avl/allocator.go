// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltraverse/stack"
)

// Node - a node in the tree
type Node[K, V any] struct {
	left       *Node[K, V] // left sub-tree
	right      *Node[K, V] // right sub-tree
	up         *Node[K, V] // points to parent node
	key        K           // key part for ordering
	value      V           // value part for data storage
	height     int         // 1 for a leaf
	leftNodes  int         // nodes in left sub-tree
	rightNodes int         // nodes in right sub-tree
}

// allocate a new node, reuses reclaimed nodes if any are available
func (tree *Tree[K, V]) newNode(key K, value V) *Node[K, V] {
	if nil == tree.pool {
		if 0 != tree.freeNodes {
			panic("pool corrupt")
		}
		tree.totalNodes += 1
		return &Node[K, V]{
			key:    key,
			value:  value,
			height: 1,
		}
	}
	p := tree.pool
	tree.pool = p.up
	p.key = key
	p.value = value
	p.height = 1
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	tree.freeNodes -= 1
	return p
}

// reclaim a node and keep it in a pool
func (tree *Tree[K, V]) freeNode(node *Node[K, V]) {
	var zeroKey K
	var zeroValue V

	node.up = tree.pool // use as free list pointer

	node.left = nil
	node.right = nil
	node.key = zeroKey
	node.value = zeroValue
	node.height = 0
	node.leftNodes = 0
	node.rightNodes = 0
	tree.freeNodes += 1

	tree.pool = node
}

// Clear - release every node back to the pool, leaving an empty tree
func (tree *Tree[K, V]) Clear() {
	if nil == tree.root {
		return
	}
	pending := stack.Stack[*Node[K, V]]{}
	pending.Push(tree.root)
	for !pending.IsEmpty() {
		p := pending.Pop()
		if nil != p.left {
			pending.Push(p.left)
		}
		if nil != p.right {
			pending.Push(p.right)
		}
		tree.freeNode(p)
	}
	tree.root = nil
	tree.count = 0
}
