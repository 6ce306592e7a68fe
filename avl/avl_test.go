// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"fmt"
	"os"
	"sort"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltraverse/avl"
)

func TestListShort(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"2136", "9651", "4079", "1042", "3579",
		"3630", "1427", "5843", "9549", "5433",
		"1274", "9034", "4724", "6179", "5072",
		"9272", "4030", "4205", "3363", "8582",
		"1720", "0506", "8382", "6774", "1042",

		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []string{
		"8133", "2136", "9651", "4079", "1042",
		"3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179",
		"5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774",
		"3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982",
		"3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797",
		"3028", "5880", "3061", "5212", "6539",
		"1320", "3581", "3334", "4348", "2934",
		"8342", "8814", "8736", "1353", "3082",
		"9620", "0056", "5063", "1245", "7066",
		"7435", "2999", "7803", "1303", "1697",
		"0017", "4314", "9926", "7587", "2531",
		"8123", "5693", "7495", "9975", "5465",
		"4342", "7958", "7138", "9382", "0672",
		"5402", "0204", "2397", "2712", "0938",
		"9610", "3611", "2140", "4289", "9271",
		"4786", "4145", "1066", "4366", "6716",
		"8579", "1012", "5935", "8278", "5761",
		"1871", "6257", "2649", "8643", "1239",
		"3416", "6146", "7127", "9517", "5788",
		"9025", "6880", "9064", "4849", "4503",
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

// sorted keys with duplicates removed
func uniqueSorted(addList []string) []string {
	unique := make(map[string]struct{})
	for _, key := range addList {
		unique[key] = struct{}{}
	}
	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)
	return expected
}

// check the tree after every single insert
func doList(t *testing.T, addList []string) {

	tree := avl.New[string, string]()
	seen := make(map[string]struct{})

	for _, key := range addList {
		_, duplicate := seen[key]
		seen[key] = struct{}{}

		_, added := tree.Insert(key, "data:"+key)
		if added == duplicate {
			t.Fatalf("insert: %q  added: %v  duplicate: %v", key, added, duplicate)
		}

		if !tree.CheckUp() || !tree.CheckBalance() || !tree.CheckCounts() {
			t.Errorf("add: %q inconsistent tree", key)
			depth := tree.Print(os.Stdout, true)
			t.Logf("depth: %d", depth)
			t.Fatal("inconsistent tree")
		}
		if len(seen) != tree.Count() {
			t.Fatalf("count: %d  expected: %d", tree.Count(), len(seen))
		}
	}
}

// traverse the tree forwards and backwards to check node links
func doTraverse(t *testing.T, addList []string) {

	tree := avl.New[string, string]()
	for _, key := range addList {
		tree.Insert(key, "data:"+key)
	}
	expected := uniqueSorted(addList)

	p := tree.First()
	if nil == p {
		t.Fatalf("no first item")
	}

	n := 0
	for i := 0; nil != p; i += 1 {
		if p.Key() != expected[i] {
			t.Fatalf("next item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Next()
	}
	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	p = tree.Last()
	if nil == p {
		t.Fatalf("no last item")
	}

	n = 0
	for i := len(expected) - 1; nil != p; i -= 1 {
		if p.Key() != expected[i] {
			t.Fatalf("prev item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Prev()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), n)
	}
}

// use indexing to fetch each item
func doGet(t *testing.T, addList []string) {

	tree := avl.New[string, string]()
	for _, key := range addList {
		tree.Insert(key, "data:"+key)
	}
	expected := uniqueSorted(addList)

	if len(expected) != tree.Count() {
		t.Fatalf("expected: %d items, but tree count: %d", len(expected), tree.Count())
	}

	for index, key := range expected {
		node := tree.Get(index)
		if nil == node {
			t.Fatalf("[%d] key: %q not it tree (nil result)", index, key)
		}
		if node.Key() != key {
			t.Fatalf("[%d]: expected: %q but found: %q", index, key, node.Key())
		}
		node1, index1 := tree.Search(key)
		if nil == node1 {
			t.Fatalf("[%d]: search: %q returned nil", index, key)
		}
		if index != index1 {
			t.Errorf("[%d]: search: %q index: %d expected: %d", index, key, index1, index)
		}
		if "data:"+key != node1.Value() {
			t.Errorf("[%d]: search: %q value: %q", index, key, node1.Value())
		}
	}

	if nil != tree.Get(-1) || nil != tree.Get(len(expected)) {
		t.Fatal("out of range index returned a node")
	}
	if node, index := tree.Search("not a key"); nil != node || -1 != index {
		t.Fatalf("missing key found: %v at: %d", node, index)
	}
}

func TestRandomTree(t *testing.T) {
	for i := 0; i < 8; i += 1 {
		t.Run(fmt.Sprintf("iteration-%d", i), func(t *testing.T) {
			var keys []uint16
			fuzz.New().NilChance(0).NumElements(1000, 3000).Fuzz(&keys)
			randomTree(t, keys)
		})
	}
}

func randomTree(t *testing.T, keys []uint16) {

	tree := avl.New[uint16, int]()
	unique := make(map[uint16]struct{})

	for i, key := range keys {
		unique[key] = struct{}{}
		tree.Insert(key, i)
		if !tree.CheckBalance() {
			tree.Print(os.Stdout, false)
			t.Fatalf("unbalanced after insert of: %d", key)
		}
	}

	if !tree.CheckUp() {
		depth := tree.Print(os.Stdout, true)
		t.Logf("depth: %d", depth)
		t.Fatalf("inconsistent tree")
	}
	if !tree.CheckCounts() {
		t.Fatal("tree CheckCounts failed")
	}
	assert.Equal(t, len(unique), tree.Count(), "node count")

	// 1.44 log2(n+2) bounds the height of any AVL tree
	limit := 1
	for n := 1; n < len(unique)+2; n *= 2 {
		limit += 1
	}
	limit = limit * 3 / 2
	assert.LessOrEqual(t, tree.Height(), limit, "tree too high")

	previous := -1
	for it := tree.BeginAscending(); it.Valid(); it.Next() {
		if int(it.Key()) <= previous {
			t.Fatalf("key: %d  after: %d", it.Key(), previous)
		}
		previous = int(it.Key())
	}
}

// check that a duplicate insert does not overwrite, that Set does
// and that nodes keep constant address when tree is re-balanced
func TestOverwriteAndNodeStability(t *testing.T) {
	addList := []string{
		"01", "02", "03", "04", "05",
		"06", "07", "08", "09", "10",
	}

	tree := avl.New[string, string]()
	for _, key := range addList {
		tree.Insert(key, "data:"+key)
	}

	oKey := "05"
	oIndex := 4 // zero based index

	it, added := tree.Insert(oKey, "ignored")
	if added {
		t.Fatalf("duplicate key: %q was added", oKey)
	}
	if it.Key() != oKey || it.Value() != "data:"+oKey {
		t.Fatalf("duplicate insert returned: %q → %q", it.Key(), it.Value())
	}
	if len(addList) != tree.Count() {
		t.Fatalf("count: %d  expected: %d", tree.Count(), len(addList))
	}

	const newData = "new content for 05"
	if tree.Set(oKey, newData) {
		t.Fatalf("set of existing key: %q reported an add", oKey)
	}

	node1, index1 := tree.Search(oKey)
	if oIndex != index1 {
		t.Errorf("index1: %d  expected %d", index1, oIndex)
	}
	if newData != node1.Value() {
		t.Fatalf("node data actual: %q  expected: %q", node1.Value(), newData)
	}

	// add more nodes so the tree rotates around the oKey node
	for _, key := range []string{"11", "12", "13", "14", "15", "16"} {
		if !tree.Set(key, "data:"+key) {
			t.Fatalf("set of new key: %q not added", key)
		}
	}

	node2, index2 := tree.Search(oKey)
	if oIndex != index2 {
		t.Errorf("index2: %d  expected %d", index2, oIndex)
	}
	if node1 != node2 {
		t.Fatalf("node moved from: %p → %p", node1, node2)
	}
	if !tree.CheckUp() || !tree.CheckBalance() {
		t.Errorf("add: inconsistent tree")
		depth := tree.Print(os.Stdout, true)
		t.Logf("depth: %d", depth)
		t.Fatalf("inconsistent tree")
	}
}

func TestGetDepthInTree(t *testing.T) {
	addList := []string{
		"01", "02", "03", "04", "05",
		"06", "07",
	}

	tree := avl.New[string, string]()
	for _, key := range addList {
		tree.Insert(key, "data:"+key)
	}

	if d := tree.First().Next().Depth(); d != 1 {
		t.Fatalf("incorrect node depth: %d", d)
	}

	if d := tree.First().Next().Next().Depth(); d != 2 {
		t.Fatalf("incorrect node depth: %d", d)
	}
	if d := tree.Root().Depth(); d != 0 {
		t.Fatalf("incorrect root depth: %d", d)
	}
}

func TestGetChildrenByDepth(t *testing.T) {
	addList := []string{
		"01", "02", "03", "04", "05",
		"06", "07",
	}

	tree := avl.New[string, string]()
	for _, key := range addList {
		tree.Insert(key, "data:"+key)
	}

	if len(tree.Root().GetChildrenByDepth(1)) != 2 {
		t.Fatalf("incorrect children number in depth 1")
	}

	if len(tree.Root().GetChildrenByDepth(2)) != 4 {
		t.Fatalf("incorrect children number in depth 2")
	}
}

func TestEmpty(t *testing.T) {
	tree := avl.New[int, string]()
	assert.True(t, tree.IsEmpty(), "new tree not empty")
	assert.Equal(t, 0, tree.Count(), "new tree count")
	assert.Equal(t, 0, tree.Height(), "new tree height")
	assert.Nil(t, tree.Root(), "new tree root")
	assert.Nil(t, tree.First(), "new tree first")
	assert.Nil(t, tree.Last(), "new tree last")

	tree.Insert(1, "a")
	assert.False(t, tree.IsEmpty(), "tree empty after insert")

	tree.Insert(1, "b")
	assert.False(t, tree.IsEmpty(), "tree empty after duplicate insert")
	assert.Equal(t, 1, tree.Count(), "duplicate changed count")

	tree.Clear()
	assert.True(t, tree.IsEmpty(), "tree not empty after clear")
	assert.Equal(t, 0, tree.Count(), "count after clear")
}

// keys ordered by a custom comparison, longest first
func TestCompare(t *testing.T) {
	tree := avl.NewWithCompare[string, int](func(a string, b string) int {
		return len(b) - len(a)
	})
	for _, key := range []string{"a", "abcd", "ab", "abc"} {
		tree.Insert(key, len(key))
	}
	_, added := tree.Insert("xy", 0)
	assert.False(t, added, "same length key was added")

	keys := avl.TraverseLNR(tree, []string{}, func(r []string, key string, _ int) []string {
		return append(r, key)
	})
	assert.Equal(t, []string{"abcd", "abc", "ab", "a"}, keys)

	assert.Panics(t, func() { avl.NewWithCompare[string, int](nil) }, "nil compare accepted")
}

func TestPrint(t *testing.T) {
	tree := avl.New[int, string]()
	for i := 1; i <= 7; i += 1 {
		tree.Insert(i, fmt.Sprintf("v%d", i))
	}
	var b stringsBuilder
	depth := tree.Print(&b, true)
	assert.Equal(t, 3, depth, "print depth")
	assert.Equal(t, tree.Height(), depth, "print depth and height differ")
	assert.Equal(t, 7, b.lines, "printed lines")
}

// counts output lines
type stringsBuilder struct {
	lines int
}

func (s *stringsBuilder) Write(b []byte) (int, error) {
	for _, c := range b {
		if '\n' == c {
			s.lines += 1
		}
	}
	return len(b), nil
}
