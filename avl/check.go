// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltraverse/stack"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	if nil != tree.root && nil != tree.root.up {
		fmt.Printf("fail at root: %v  has parent: %v\n", tree.root.key, tree.root.up.key)
		return false
	}
	return tree.walk(func(p *Node[K, V]) bool {
		for _, child := range []*Node[K, V]{p.left, p.right} {
			if nil != child && child.up != p {
				fmt.Printf("fail at node: %v   expected parent: %v\n", child.key, p.key)
				return false
			}
		}
		return true
	})
}

// CheckBalance - check ordering, cached heights and the AVL balance
// condition at every node
func (tree *Tree[K, V]) CheckBalance() bool {
	return tree.walk(func(p *Node[K, V]) bool {
		if nil != p.left && tree.compare(p.left.key, p.key) >= 0 {
			fmt.Printf("fail at node: %v  left: %v out of order\n", p.key, p.left.key)
			return false
		}
		if nil != p.right && tree.compare(p.right.key, p.key) <= 0 {
			fmt.Printf("fail at node: %v  right: %v out of order\n", p.key, p.right.key)
			return false
		}
		hl := height(p.left)
		hr := height(p.right)
		h := hl
		if hr > h {
			h = hr
		}
		if p.height != 1+h {
			fmt.Printf("fail at node: %v  height: %d  expected: %d\n", p.key, p.height, 1+h)
			return false
		}
		if b := hl - hr; b < -1 || b > 1 {
			fmt.Printf("fail at node: %v  balance: %+d\n", p.key, b)
			return false
		}
		return true
	})
}

// CheckCounts - check the cached sub-tree node counts
func (tree *Tree[K, V]) CheckCounts() bool {
	if size(tree.root) != tree.count {
		fmt.Printf("fail at root: nodes: %d  count: %d\n", size(tree.root), tree.count)
		return false
	}
	return tree.walk(func(p *Node[K, V]) bool {
		if p.leftNodes != size(p.left) || p.rightNodes != size(p.right) {
			fmt.Printf("fail at node: %v  counts: [%d,%d]  expected: [%d,%d]\n", p.key, p.leftNodes, p.rightNodes, size(p.left), size(p.right))
			return false
		}
		return true
	})
}

// internal: visit every node, stop at the first failed check
func (tree *Tree[K, V]) walk(check func(*Node[K, V]) bool) bool {
	if nil == tree.root {
		return true
	}
	pending := stack.Stack[*Node[K, V]]{}
	pending.Push(tree.root)
	for !pending.IsEmpty() {
		p := pending.Pop()
		if !check(p) {
			return false
		}
		if nil != p.left {
			pending.Push(p.left)
		}
		if nil != p.right {
			pending.Push(p.right)
		}
	}
	return true
}
