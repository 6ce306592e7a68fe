// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Ascending - in-order iterator that can modify values
type Ascending[K, V any] struct {
	c cursor[K, V]
}

// ConstAscending - read only in-order iterator
type ConstAscending[K, V any] struct {
	c cursor[K, V]
}

// BeginAscending - iterator at the lowest key, or at the end if the
// tree is empty
func (tree *Tree[K, V]) BeginAscending() Ascending[K, V] {
	it := Ascending[K, V]{c: cursor[K, V]{tree: tree}}
	it.c.seekFirst()
	return it
}

// EndAscending - the position one past the highest key
func (tree *Tree[K, V]) EndAscending() Ascending[K, V] {
	return Ascending[K, V]{c: cursor[K, V]{tree: tree}}
}

// Find - iterator at the node holding a key
func (tree *Tree[K, V]) Find(key K) (Ascending[K, V], bool) {
	p, _ := tree.Search(key)
	if nil == p {
		return tree.EndAscending(), false
	}
	return Ascending[K, V]{c: tree.cursorAt(p)}, true
}

// Valid - false at the end
func (it *Ascending[K, V]) Valid() bool {
	return nil != it.c.node
}

// Key - key of the current node
func (it *Ascending[K, V]) Key() K {
	return it.c.current().key
}

// Value - value of the current node
func (it *Ascending[K, V]) Value() V {
	return it.c.current().value
}

// SetValue - overwrite the value of the current node
func (it *Ascending[K, V]) SetValue(value V) {
	it.c.current().value = value
}

// Next - advance to the next higher key
func (it *Ascending[K, V]) Next() {
	it.c.forward()
}

// Prev - move to the next lower key, from the end this is the highest
// key
func (it *Ascending[K, V]) Prev() {
	if nil == it.c.node {
		it.c.seekLast()
		return
	}
	it.c.backward()
}

// Equal - true if both iterators are at the same position
func (it *Ascending[K, V]) Equal(other Ascending[K, V]) bool {
	return it.c.node == other.c.node
}

// Const - read only copy of the iterator
func (it *Ascending[K, V]) Const() ConstAscending[K, V] {
	return ConstAscending[K, V]{c: it.c}
}

// Valid - false at the end
func (it *ConstAscending[K, V]) Valid() bool {
	return nil != it.c.node
}

// Key - key of the current node
func (it *ConstAscending[K, V]) Key() K {
	return it.c.current().key
}

// Value - value of the current node
func (it *ConstAscending[K, V]) Value() V {
	return it.c.current().value
}

// Next - advance to the next higher key
func (it *ConstAscending[K, V]) Next() {
	it.c.forward()
}

// Prev - move to the next lower key, from the end this is the highest
// key
func (it *ConstAscending[K, V]) Prev() {
	if nil == it.c.node {
		it.c.seekLast()
		return
	}
	it.c.backward()
}

// Equal - true if both iterators are at the same position
func (it *ConstAscending[K, V]) Equal(other ConstAscending[K, V]) bool {
	return it.c.node == other.c.node
}
