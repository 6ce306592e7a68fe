// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stack - a persistent LIFO stack
//
// Used by the tree iterators to remember the path of ancestors still
// to be visited, without recursion.
//
// Note: a stack is not thread safe
package stack
