// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a generic AVL balanced tree with the addition of
// parent pointers and three kinds of iterator
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches its height, so the balance factor is the
// difference of the child heights and is recomputed on the way back
// up to the root after every insert.
//
// Iterators walk the tree without recursion: ascending and descending
// iterators keep the ancestors of the current node on a stack, the
// breadth first iterator keeps a queue of pending nodes.  Any insert
// invalidates every iterator; continuing to use one afterwards is
// undefined.
//
// An insert with an existing key leaves the stored value alone and
// reports that nothing was added; use Set to overwrite.
package avl
