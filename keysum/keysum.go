// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keysum - accumulate the keys and values visited by a tree
// traversal
package keysum

import (
	"math"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltraverse/fault"
)

// KeySum - running total of keys and the visited values in order
//
// once Err is set further pairs are ignored
type KeySum struct {
	Sum    int
	Values []string
	Err    error
}

// Add - fold step for the tree traversals
func Add(k KeySum, key int, value string) KeySum {
	if nil != k.Err {
		return k
	}
	if (key > 0 && k.Sum > math.MaxInt-key) || (key < 0 && k.Sum < math.MinInt-key) {
		k.Err = fault.ErrSumOverflow
		return k
	}
	k.Sum += key
	k.Values = append(k.Values, value)
	return k
}

// String - the sum immediately followed by each value preceded by a
// space
func (k KeySum) String() string {
	b := strings.Builder{}
	b.WriteString(strconv.Itoa(k.Sum))
	for _, v := range k.Values {
		b.WriteByte(' ')
		b.WriteString(v)
	}
	return b.String()
}
