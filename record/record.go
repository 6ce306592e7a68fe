// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - read key/value records into a tree
//
// Input is a sequence of white space separated words taken in pairs:
// a decimal integer key followed by a value word, up to the end of
// the input. Line breaks have no special meaning.
package record

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/bitmark-inc/avltraverse/avl"
	"github.com/bitmark-inc/avltraverse/fault"
)

// Read - insert every record from a reader into the tree
//
// returns the number of records read; records read before an error
// remain in the tree. A repeated key keeps its first value.
func Read(r io.Reader, tree *avl.Tree[int, string]) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	n := 0
	for scanner.Scan() {
		key, err := strconv.Atoi(scanner.Text())
		if nil != err {
			return n, fault.ErrIncorrectInput
		}
		if !scanner.Scan() {
			if err := scanner.Err(); nil != err {
				return n, err
			}
			// a key without a value
			return n, fault.ErrIncorrectInput
		}
		tree.Insert(key, scanner.Text())
		n += 1
	}
	if err := scanner.Err(); nil != err {
		return n, err
	}
	return n, nil
}

// ReadFile - insert every record from a file into the tree
func ReadFile(fileName string, tree *avl.Tree[int, string]) (int, error) {
	f, err := os.Open(fileName)
	if nil != err {
		if os.IsNotExist(err) {
			return 0, fault.ErrMissingInputFile
		}
		return 0, err
	}
	defer f.Close()

	return Read(f, tree)
}
