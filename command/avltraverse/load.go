// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltraverse/avl"
	"github.com/bitmark-inc/avltraverse/fault"
	"github.com/bitmark-inc/avltraverse/record"
)

// read a fresh tree from the input file
func load(log *logger.L, fileName string) (*avl.Tree[int, string], error) {
	tree := avl.New[int, string]()
	n, err := record.ReadFile(fileName, tree)
	if nil != err {
		log.Errorf("read: %q  error: %s", fileName, err)
		return nil, err
	}
	log.Infof("read: %q  pairs: %d  nodes: %d", fileName, n, tree.Count())
	return tree, nil
}

// structural checks, any failure is fatal
func check(log *logger.L, tree *avl.Tree[int, string]) {
	if !tree.CheckUp() {
		fault.Panicf("parent links: %s", fault.ErrTreeInconsistent)
	}
	if !tree.CheckBalance() {
		fault.Panicf("balance: %s", fault.ErrTreeInconsistent)
	}
	if !tree.CheckCounts() {
		fault.Panicf("node counts: %s", fault.ErrTreeInconsistent)
	}
	log.Debugf("tree checked: %d nodes  height: %d", tree.Count(), tree.Height())
}

// tree diagram for --dump
func dump(w io.Writer, tree *avl.Tree[int, string]) {
	tree.Print(w, true)
}
