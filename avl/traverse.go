// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// TraverseLNR - fold over the tree in ascending key order
//
// f combines the result so far with one key/value pair and returns
// the new result, the final result is returned
func TraverseLNR[K, V, R any](tree *Tree[K, V], seed R, f func(R, K, V) R) R {
	for it := tree.BeginAscending(); it.Valid(); it.Next() {
		seed = f(seed, it.Key(), it.Value())
	}
	return seed
}

// TraverseRNL - fold over the tree in descending key order
func TraverseRNL[K, V, R any](tree *Tree[K, V], seed R, f func(R, K, V) R) R {
	for it := tree.BeginDescending(); it.Valid(); it.Next() {
		seed = f(seed, it.Key(), it.Value())
	}
	return seed
}

// TraverseBreadth - fold over the tree level by level, left to right
// within a level
func TraverseBreadth[K, V, R any](tree *Tree[K, V], seed R, f func(R, K, V) R) R {
	for it := tree.BeginBreadth(); it.Valid(); it.Next() {
		seed = f(seed, it.Key(), it.Value())
	}
	return seed
}
