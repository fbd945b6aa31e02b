// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

func TestListShort(t *testing.T) {
	addList := []avl.StringItem{
		"3917", "0442", "7725", "2068", "9301",
		"5586",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []avl.StringItem{
		"6618", "0093", "4471", "8830", "1206",
		"1213", "1299", "1240", "1277", "3340",
		"6618", "0093", "4471", "8830", "1206",

		"0093", "0093", "0093", "0093", "0093",
		"0093", "0093", "0093", "0093", "0093",
		"1240", "1240", "1240", "1240", "1240",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	r := rand.New(rand.NewSource(2718))
	addList := make([]avl.StringItem, 0, 400)
	for i := 0; i < cap(addList); i += 1 {
		addList = append(addList, avl.StringItem(fmt.Sprintf("%04d", r.Intn(10000))))
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// insert the whole list, then for each split point delete the head of
// the list, check the tree, delete the rest and check it is empty
func doList(t *testing.T, addList []avl.StringItem) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[avl.StringItem]struct{})

		tree := avl.New()
		for _, key := range addList {
			tree.Insert(key)
		}

		if err := tree.Validate(); nil != err {
			dumpTree(t, tree)
			t.Fatalf("add: inconsistent tree: %s", err)
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				if tree.Delete(key) {
					t.Fatalf("second delete of: %q succeeded", key)
				}
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			if !tree.Delete(key) {
				t.Fatalf("delete of: %q failed", key)
			}
		}

		if err := tree.Validate(); nil != err {
			dumpTree(t, tree)
			t.Fatalf("delete: inconsistent tree: %s", err)
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			if !tree.Delete(key) {
				t.Fatalf("delete of: %q failed", key)
			}
		}
		if !tree.IsEmpty() {
			dumpTree(t, tree)
			t.Fatal("remainder: remaining nodes")
		}
		if 0 != tree.Count() {
			t.Fatalf("remaining count not zero: %d", tree.Count())
		}
	}
}

// traverse the tree to check the iterator against a sorted list
func doTraverse(t *testing.T, addList []avl.StringItem) {

	unique := make(map[string]struct{})
	tree := avl.New()
	for _, key := range addList {
		unique[string(key)] = struct{}{}
		tree.Insert(key)
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	n := 0
	it := tree.Iterator()
	for i := 0; it.Next(); i += 1 {
		if 0 != it.Key().Compare(avl.StringItem(expected[i])) {
			t.Fatalf("next item: actual: %q  expected: %q", it.Key(), expected[i])
		}
		n += 1
	}
	require.NoError(t, it.Err(), "iteration error")

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), n)
	}

	assert.Equal(t, avl.StringItem(expected[0]), tree.First(), "wrong first key")
	assert.Equal(t, avl.StringItem(expected[len(expected)-1]), tree.Last(), "wrong last key")
}

func dumpTree(t *testing.T, tree *avl.Tree) {
	var b bytes.Buffer
	depth := tree.Print(&b)
	t.Logf("depth: %d\n%s", depth, b.String())
}

func intKeys(tree *avl.Tree) []int {
	keys := []int{}
	for _, k := range tree.Keys() {
		keys = append(keys, int(k.(avl.IntItem)))
	}
	return keys
}

func TestEmptyTree(t *testing.T) {
	tree := avl.New()

	assert.True(t, tree.IsEmpty(), "new tree is not empty")
	assert.Equal(t, 0, tree.Count(), "wrong count")
	assert.Equal(t, 0, tree.Height(), "wrong height")
	assert.Nil(t, tree.First(), "first of empty tree")
	assert.Nil(t, tree.Last(), "last of empty tree")
	assert.False(t, tree.Contains(avl.IntItem(1)), "empty tree contains a key")
	assert.False(t, tree.Delete(avl.IntItem(1)), "delete from empty tree")
	assert.True(t, tree.ValidateBSTInvariant(), "empty tree is not ordered")
	assert.NoError(t, tree.Validate(), "empty tree is not valid")
	assert.Empty(t, tree.Keys(), "empty tree has keys")

	it := tree.Iterator()
	assert.False(t, it.Next(), "iterator on empty tree")
	assert.Nil(t, it.Key(), "key on empty tree")
	assert.NoError(t, it.Err(), "iterator error on empty tree")
}

func TestSingleNodeHeight(t *testing.T) {
	tree := avl.New()
	require.True(t, tree.Insert(avl.IntItem(42)), "insert failed")

	assert.Equal(t, 0, tree.Height(), "single node height")
	assert.Equal(t, 1, tree.Count(), "wrong count")
	assert.False(t, tree.IsEmpty(), "tree is empty")
}

func TestNilKey(t *testing.T) {
	tree := avl.New()
	tree.Insert(avl.IntItem(1))

	assert.False(t, tree.Insert(nil), "nil insert succeeded")
	assert.False(t, tree.Delete(nil), "nil delete succeeded")
	assert.False(t, tree.Contains(nil), "nil key found")

	k, found := tree.Search(nil)
	assert.False(t, found, "nil key found by search")
	assert.Nil(t, k, "nil search returned a key")

	assert.Equal(t, 1, tree.Count(), "count changed")
	assert.Equal(t, uint64(1), tree.Statistics().Generation, "generation changed")
}

func TestInOrderTraversal(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{5, 2, 8, 1, 3} {
		require.True(t, tree.Insert(avl.IntItem(k)), "insert failed")
	}

	assert.Equal(t, []int{1, 2, 3, 5, 8}, intKeys(tree), "wrong in-order sequence")
}

func TestIteratorRestarts(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{5, 2, 8} {
		tree.Insert(avl.IntItem(k))
	}

	for pass := 0; pass < 3; pass += 1 {
		keys := []int{}
		it := tree.Iterator()
		for it.Next() {
			keys = append(keys, int(it.Key().(avl.IntItem)))
		}
		assert.NoError(t, it.Err(), "iteration error")
		assert.Equal(t, []int{2, 5, 8}, keys, "pass: %d wrong sequence", pass)
		assert.False(t, it.Next(), "next after end")
		assert.Nil(t, it.Key(), "key after end")
	}
}

func TestIteratorFailsAfterInsert(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{1, 2, 3} {
		tree.Insert(avl.IntItem(k))
	}

	it := tree.Iterator()
	require.True(t, it.Next(), "first next")
	assert.Equal(t, avl.IntItem(1), it.Key(), "first key")

	require.True(t, tree.Insert(avl.IntItem(4)), "insert")

	assert.False(t, it.Next(), "next after insert")
	assert.Equal(t, fault.ErrConcurrentMutation, it.Err(), "wrong error")
	assert.True(t, fault.IsErrProcess(it.Err()), "wrong class")
	assert.Nil(t, it.Key(), "key after failure")
	assert.False(t, it.Next(), "failure is sticky")

	// a fresh iterator sees the new key
	assert.Equal(t, []int{1, 2, 3, 4}, intKeys(tree), "fresh traversal")
}

func TestIteratorFailsAfterDelete(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{1, 2, 3} {
		tree.Insert(avl.IntItem(k))
	}

	it := tree.Iterator()
	require.True(t, tree.Delete(avl.IntItem(3)), "delete")

	assert.False(t, it.Next(), "next after delete")
	assert.Equal(t, fault.ErrConcurrentMutation, it.Err(), "wrong error")
}

func TestIteratorSurvivesFailedMutation(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{1, 2, 3} {
		tree.Insert(avl.IntItem(k))
	}

	keys := []int{}
	it := tree.Iterator()
	for it.Next() {
		keys = append(keys, int(it.Key().(avl.IntItem)))

		// none of these change the tree
		assert.False(t, tree.Insert(avl.IntItem(2)), "duplicate insert")
		assert.False(t, tree.Delete(avl.IntItem(99)), "absent delete")
		assert.False(t, tree.Insert(nil), "nil insert")
		assert.True(t, tree.Contains(avl.IntItem(3)), "contains")
	}
	assert.NoError(t, it.Err(), "iteration error")
	assert.Equal(t, []int{1, 2, 3}, keys, "sequence")
}

func TestIteratorEmptyTree(t *testing.T) {
	it := avl.New().Iterator()
	assert.False(t, it.Next(), "next on empty tree")
	assert.NoError(t, it.Err(), "error on empty tree")
	assert.Nil(t, it.Key(), "key on empty tree")
}

func TestForEach(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{5, 2, 8, 1, 3} {
		tree.Insert(avl.IntItem(k))
	}

	keys := []int{}
	err := tree.ForEach(func(key avl.Item) bool {
		keys = append(keys, int(key.(avl.IntItem)))
		return len(keys) < 3
	})
	assert.NoError(t, err, "early stop")
	assert.Equal(t, []int{1, 2, 3}, keys, "stopped sequence")

	err = tree.ForEach(func(key avl.Item) bool {
		tree.Delete(key)
		return true
	})
	assert.Equal(t, fault.ErrConcurrentMutation, err, "mutation inside ForEach")
	assert.Equal(t, 4, tree.Count(), "only the first key was deleted")
	assert.False(t, tree.Contains(avl.IntItem(1)), "first key still present")
}

func TestDuplicateInsert(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{50, 20, 80, 10, 30, 70, 90} {
		tree.Insert(avl.IntItem(k))
	}

	var before bytes.Buffer
	tree.Print(&before)
	stats := tree.Statistics()

	for _, k := range []int{50, 10, 90, 30} {
		assert.False(t, tree.Insert(avl.IntItem(k)), "duplicate insert of: %d", k)
	}

	var after bytes.Buffer
	tree.Print(&after)

	assert.Equal(t, 7, tree.Count(), "count changed")
	assert.Equal(t, stats, tree.Statistics(), "statistics changed")
	assert.Equal(t, before.String(), after.String(), "shape changed")
}

func TestDeleteAbsent(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{50, 20, 80, 10} {
		tree.Insert(avl.IntItem(k))
	}

	var before bytes.Buffer
	tree.Print(&before)
	stats := tree.Statistics()

	for _, k := range []int{0, 15, 51, 1000} {
		assert.False(t, tree.Delete(avl.IntItem(k)), "delete of absent: %d", k)
	}

	var after bytes.Buffer
	tree.Print(&after)

	assert.Equal(t, 4, tree.Count(), "count changed")
	assert.Equal(t, stats, tree.Statistics(), "statistics changed")
	assert.Equal(t, before.String(), after.String(), "shape changed")
}

func TestDeleteWithTwoChildren(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		require.True(t, tree.Insert(avl.IntItem(k)), "insert failed")
	}

	require.True(t, tree.Delete(avl.IntItem(5)), "delete failed")

	assert.True(t, tree.ValidateBSTInvariant(), "order broken")
	assert.NoError(t, tree.Validate(), "invalid tree")
	assert.Equal(t, []int{1, 3, 4, 7, 8, 9}, intKeys(tree), "wrong keys")
	assert.False(t, tree.Contains(avl.IntItem(5)), "deleted key found")
	assert.Equal(t, 6, tree.Count(), "wrong count")
}

func TestAscendingHeightBound(t *testing.T) {
	const n = 1000
	tree := avl.New()
	for i := 1; i <= n; i += 1 {
		require.True(t, tree.Insert(avl.IntItem(i)), "insert: %d failed", i)
	}

	bound := int(math.Ceil(1.44 * math.Log2(n+2)))
	assert.LessOrEqual(t, tree.Height(), bound, "tree degenerated")
	assert.NoError(t, tree.Validate(), "invalid tree")
	assert.Equal(t, n, tree.Count(), "wrong count")

	stats := tree.Statistics()
	assert.Greater(t, stats.LeftRotations, 0, "no rotations")
	assert.Equal(t, 0, stats.RightRotations, "right rotation on ascending keys")
}

func TestDescendingHeightBound(t *testing.T) {
	const n = 1000
	tree := avl.New()
	for i := n; i >= 1; i -= 1 {
		require.True(t, tree.Insert(avl.IntItem(i)), "insert: %d failed", i)
	}

	bound := int(math.Ceil(1.44 * math.Log2(n+2)))
	assert.LessOrEqual(t, tree.Height(), bound, "tree degenerated")
	assert.NoError(t, tree.Validate(), "invalid tree")
}

func TestSearchFirstLast(t *testing.T) {
	tree := avl.New()
	for _, k := range []string{"mango", "apple", "pear", "kiwi", "banana"} {
		tree.Insert(avl.StringItem(k))
	}

	k, found := tree.Search(avl.StringItem("kiwi"))
	assert.True(t, found, "kiwi not found")
	assert.Equal(t, avl.StringItem("kiwi"), k, "wrong key")

	_, found = tree.Search(avl.StringItem("plum"))
	assert.False(t, found, "plum was found")

	assert.Equal(t, avl.StringItem("apple"), tree.First(), "wrong first")
	assert.Equal(t, avl.StringItem("pear"), tree.Last(), "wrong last")
}

// random operations checked against a map after every step
func TestRandomOperations(t *testing.T) {
	for _, seed := range []int64{1, 17, 2020} {
		randomOperations(t, seed, 3000, 300)
	}
}

func randomOperations(t *testing.T, seed int64, rounds int, keyRange int) {
	r := rand.New(rand.NewSource(seed))
	tree := avl.New()
	reference := make(map[int]struct{})
	inserts := 0
	deletes := 0

	for i := 0; i < rounds; i += 1 {
		k := r.Intn(keyRange)
		_, present := reference[k]

		if r.Intn(100) < 55 {
			ok := tree.Insert(avl.IntItem(k))
			require.Equal(t, !present, ok, "seed: %d round: %d insert: %d", seed, i, k)
			if ok {
				reference[k] = struct{}{}
				inserts += 1
			}
		} else {
			ok := tree.Delete(avl.IntItem(k))
			require.Equal(t, present, ok, "seed: %d round: %d delete: %d", seed, i, k)
			if ok {
				delete(reference, k)
				deletes += 1
			}
		}

		if err := tree.Validate(); nil != err {
			dumpTree(t, tree)
			t.Fatalf("seed: %d round: %d invalid tree: %s", seed, i, err)
		}
		require.Equal(t, inserts-deletes, tree.Count(), "seed: %d round: %d wrong count", seed, i)
	}

	for k := 0; k < keyRange; k += 1 {
		_, present := reference[k]
		assert.Equal(t, present, tree.Contains(avl.IntItem(k)), "seed: %d membership of: %d", seed, k)
	}

	expected := make([]int, 0, len(reference))
	for k := range reference {
		expected = append(expected, k)
	}
	sort.Ints(expected)
	assert.Equal(t, expected, intKeys(tree), "seed: %d wrong traversal", seed)
}

func TestFreeListReuse(t *testing.T) {
	tree := avl.New()
	for i := 0; i < 100; i += 1 {
		tree.Insert(avl.IntItem(i))
	}
	for i := 0; i < 100; i += 2 {
		require.True(t, tree.Delete(avl.IntItem(i)), "delete: %d", i)
	}

	stats := tree.Statistics()
	assert.Equal(t, 100, stats.AllocatedNodes, "wrong allocations")
	assert.Equal(t, 50, stats.FreeNodes, "wrong free count")

	for i := 1000; i < 1030; i += 1 {
		require.True(t, tree.Insert(avl.IntItem(i)), "insert: %d", i)
	}

	stats = tree.Statistics()
	assert.Equal(t, 100, stats.AllocatedNodes, "nodes were not reused")
	assert.Equal(t, 20, stats.FreeNodes, "wrong free count")
	assert.Equal(t, 80, stats.Count, "wrong count")
	assert.NoError(t, tree.Validate(), "invalid tree")
}

func TestPrint(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{1, 2, 3} {
		tree.Insert(avl.IntItem(k))
	}

	var b bytes.Buffer
	depth := tree.Print(&b)

	expected := "" +
		"       /------+ 3 0/+0\n" +
		"|------+ 2 1/+0\n" +
		"       \\------+ 1 0/+0\n"

	assert.Equal(t, 2, depth, "wrong depth")
	assert.Equal(t, expected, b.String(), "wrong drawing")
}
