// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package traversal - map traversal names to folds over a tree
//
// The built in names are "ascending", "descending" and "breadth";
// each sums the keys and collects the values in visiting order.
//
// Note: a registry is not thread safe
package traversal
