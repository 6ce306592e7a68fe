// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Descending - reverse in-order iterator that can modify values
type Descending[K, V any] struct {
	c cursor[K, V]
}

// ConstDescending - read only reverse in-order iterator
type ConstDescending[K, V any] struct {
	c cursor[K, V]
}

// BeginDescending - iterator at the highest key, or at the end if the
// tree is empty
func (tree *Tree[K, V]) BeginDescending() Descending[K, V] {
	it := Descending[K, V]{c: cursor[K, V]{tree: tree}}
	it.c.seekLast()
	return it
}

// EndDescending - the position one past the lowest key
func (tree *Tree[K, V]) EndDescending() Descending[K, V] {
	return Descending[K, V]{c: cursor[K, V]{tree: tree}}
}

func (it *Descending[K, V]) Valid() bool {
	return nil != it.c.node
}

func (it *Descending[K, V]) Key() K {
	return it.c.current().key
}

func (it *Descending[K, V]) Value() V {
	return it.c.current().value
}

// SetValue - overwrite the value of the current node
func (it *Descending[K, V]) SetValue(value V) {
	it.c.current().value = value
}

// Next - advance to the next lower key
func (it *Descending[K, V]) Next() {
	it.c.backward()
}

// Prev - move to the next higher key, from the end this is the lowest
// key
func (it *Descending[K, V]) Prev() {
	if nil == it.c.node {
		it.c.seekFirst()
		return
	}
	it.c.forward()
}

func (it *Descending[K, V]) Equal(other Descending[K, V]) bool {
	return it.c.node == other.c.node
}

// Const - read only copy of the iterator
func (it *Descending[K, V]) Const() ConstDescending[K, V] {
	return ConstDescending[K, V]{c: it.c}
}

func (it *ConstDescending[K, V]) Valid() bool {
	return nil != it.c.node
}

func (it *ConstDescending[K, V]) Key() K {
	return it.c.current().key
}

func (it *ConstDescending[K, V]) Value() V {
	return it.c.current().value
}

func (it *ConstDescending[K, V]) Next() {
	it.c.backward()
}

func (it *ConstDescending[K, V]) Prev() {
	if nil == it.c.node {
		it.c.seekFirst()
		return
	}
	it.c.forward()
}

func (it *ConstDescending[K, V]) Equal(other ConstDescending[K, V]) bool {
	return it.c.node == other.c.node
}
