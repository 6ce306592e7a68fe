// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// returns an iterator positioned at the node holding the key and true
// if a node was added; if the key was already present the stored
// value is left unchanged and false is returned
func (tree *Tree[K, V]) Insert(key K, value V) (Ascending[K, V], bool) {
	p, added := tree.insert(key, value)
	return Ascending[K, V]{c: tree.cursorAt(p)}, added
}

// Set - insert or overwrite the value for a key
// returns true if a new node was added
func (tree *Tree[K, V]) Set(key K, value V) bool {
	p, added := tree.insert(key, value)
	if !added {
		p.value = value
	}
	return added
}

// internal routine for insert
// returns the node holding the key and whether it was created
func (tree *Tree[K, V]) insert(key K, value V) (*Node[K, V], bool) {
	var up *Node[K, V]
	pp := &tree.root
	for nil != *pp {
		up = *pp
		switch c := tree.compare(up.key, key); {
		case c > 0: // up.key > key
			pp = &up.left
		case c < 0: // up.key < key
			pp = &up.right
		default:
			return up, false
		}
	}

	p := tree.newNode(key, value)
	p.up = up
	*pp = p
	tree.count += 1

	tree.rebalance(up, key)
	return p, true
}

// walk up from the parent of a new node restoring heights, counts and
// the balance of every ancestor
func (tree *Tree[K, V]) rebalance(p *Node[K, V], key K) {
	for nil != p {
		p.update()
		switch b := p.balance(); {
		case b > 1: // left branch too high
			if tree.compare(key, p.left.key) > 0 {
				// double LR rotation
				tree.rotateLeft(p.left)
			}
			p = tree.rotateRight(p)
		case b < -1: // right branch too high
			if tree.compare(key, p.right.key) < 0 {
				// double RL rotation
				tree.rotateRight(p.right)
			}
			p = tree.rotateLeft(p)
		}
		p = p.up
	}
}

// single right rotation: the left child replaces p
//
//        p            p1
//       / \          /  \
//      p1  c   →    a    p
//     / \                / \
//    a   b              b   c
//
// returns the new sub-tree root
func (tree *Tree[K, V]) rotateRight(p *Node[K, V]) *Node[K, V] {
	p1 := p.left

	p.left = p1.right
	if nil != p.left {
		p.left.up = p
	}
	p1.right = p

	tree.replace(p.up, p, p1)
	p.up = p1

	p.update()
	p1.update()
	return p1
}

// single left rotation: the right child replaces p
// returns the new sub-tree root
func (tree *Tree[K, V]) rotateLeft(p *Node[K, V]) *Node[K, V] {
	p1 := p.right

	p.right = p1.left
	if nil != p.right {
		p.right.up = p
	}
	p1.left = p

	tree.replace(p.up, p, p1)
	p.up = p1

	p.update()
	p1.update()
	return p1
}

// link a new child in place of an old one
func (tree *Tree[K, V]) replace(up *Node[K, V], old *Node[K, V], child *Node[K, V]) {
	child.up = up
	switch {
	case nil == up:
		tree.root = child
	case old == up.left:
		up.left = child
	default:
		up.right = child
	}
}

// recompute cached height and counts from the children
func (p *Node[K, V]) update() {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
	p.leftNodes = size(p.left)
	p.rightNodes = size(p.right)
}

// left height minus right height
func (p *Node[K, V]) balance() int {
	return height(p.left) - height(p.right)
}

func height[K, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	return p.height
}

func size[K, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	return 1 + p.leftNodes + p.rightNodes
}
