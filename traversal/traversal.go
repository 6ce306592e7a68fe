// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traversal

import (
	"time"

	"github.com/bitmark-inc/logger"
	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/avltraverse/avl"
	"github.com/bitmark-inc/avltraverse/fault"
	"github.com/bitmark-inc/avltraverse/keysum"
)

// names of the built in traversals
const (
	Ascending  = "ascending"
	Descending = "descending"
	Breadth    = "breadth"
)

const (
	loggerTag = "traversal"
)

// Func - a fold over a tree starting from a seed
type Func func(keysum.KeySum) keysum.KeySum

// Registry - named traversals over one tree
//
// the name to function map is itself a tree; results are cached until
// they expire or the registry is loaded with a new tree
type Registry struct {
	log       *logger.L
	functions *avl.Tree[string, Func]
	results   *cache.Cache
	count     int
}

// New - create a registry with the built in traversals bound to a tree
func New(tree *avl.Tree[int, string], expiry time.Duration) *Registry {
	r := &Registry{
		log:       logger.New(loggerTag),
		functions: avl.New[string, Func](),
		results:   cache.New(expiry, 2*expiry),
	}
	r.Load(tree)
	return r
}

// Load - bind the built in traversals to a tree, discarding any
// cached results
func (r *Registry) Load(tree *avl.Tree[int, string]) {
	r.results.Flush()
	r.count = tree.Count()

	r.functions.Set(Ascending, func(seed keysum.KeySum) keysum.KeySum {
		return avl.TraverseLNR(tree, seed, keysum.Add)
	})
	r.functions.Set(Descending, func(seed keysum.KeySum) keysum.KeySum {
		return avl.TraverseRNL(tree, seed, keysum.Add)
	})
	r.functions.Set(Breadth, func(seed keysum.KeySum) keysum.KeySum {
		return avl.TraverseBreadth(tree, seed, keysum.Add)
	})

	r.log.Infof("loaded tree: %d nodes  height: %d", tree.Count(), tree.Height())
}

// Register - add a further named traversal
func (r *Registry) Register(name string, f Func) error {
	if _, added := r.functions.Insert(name, f); !added {
		return fault.ErrDuplicateTraversal
	}
	r.log.Debugf("registered: %q", name)
	return nil
}

// Names - all registered traversal names in sorted order
func (r *Registry) Names() []string {
	return avl.TraverseLNR(r.functions, make([]string, 0, r.functions.Count()), func(names []string, name string, _ Func) []string {
		return append(names, name)
	})
}

// Run - perform a traversal by name
func (r *Registry) Run(name string) (keysum.KeySum, error) {
	if item, found := r.results.Get(name); found {
		r.log.Debugf("cached result: %q", name)
		return item.(keysum.KeySum), nil
	}

	node, _ := r.functions.Search(name)
	if nil == node {
		r.log.Warnf("unknown traversal: %q", name)
		return keysum.KeySum{}, fault.ErrUnknownTraversal
	}

	result := node.Value()(keysum.KeySum{})
	if nil != result.Err {
		r.log.Errorf("traversal: %q  error: %s", name, result.Err)
		return result, result.Err
	}

	r.results.Set(name, result, cache.DefaultExpiration)
	r.log.Infof("traversal: %q  sum: %d  values: %d of %d", name, result.Sum, len(result.Values), r.count)
	return result, nil
}
