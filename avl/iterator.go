// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Iterator - ascending in-order traversal of a tree
//
// typical use:
//
//   it := tree.Iterator()
//   for it.Next() {
//       key := it.Key()
//       ...
//   }
//   if err := it.Err(); nil != err {
//       ...
//   }
//
// There is deliberately no way to remove a key through an iterator;
// a Delete on the tree invalidates all of its iterators.
type Iterator struct {
	tree       *Tree
	generation uint64
	stack      []*node
	key        Item
	err        error
}

// Iterator - start a new traversal from the lowest key
func (tree *Tree) Iterator() *Iterator {
	it := &Iterator{
		tree:       tree,
		generation: tree.generation.Uint64(),
		stack:      make([]*node, 0, tree.Height()+1),
	}
	it.pushLeft(tree.root)
	return it
}

// stack the left spine of a sub-tree
func (it *Iterator) pushLeft(p *node) {
	for nil != p {
		it.stack = append(it.stack, p)
		p = p.left
	}
}

// Next - advance to the next key, false at the end of the tree or
// if the tree was modified since the iterator was created; in the
// second case Err returns fault.ErrConcurrentMutation
func (it *Iterator) Next() bool {
	if nil != it.err {
		return false
	}
	if it.tree.generation.Changed(it.generation) {
		it.err = fault.ErrConcurrentMutation
		it.key = nil
		it.stack = nil
		return false
	}

	n := len(it.stack)
	if 0 == n {
		it.key = nil
		return false
	}
	p := it.stack[n-1]
	it.stack = it.stack[:n-1]
	it.pushLeft(p.right)

	it.key = p.key
	return true
}

// Key - the key at the current position, nil before the first Next
// or after the end
func (it *Iterator) Key() Item {
	return it.key
}

// Err - the error that stopped the iteration, if any
func (it *Iterator) Err() error {
	return it.err
}

// ForEach - call fn for each key in ascending order until fn returns
// false
//
// fn must not Insert or Delete, doing so stops the loop with
// fault.ErrConcurrentMutation
func (tree *Tree) ForEach(fn func(key Item) bool) error {
	it := tree.Iterator()
	for it.Next() {
		if !fn(it.Key()) {
			break
		}
	}
	return it.Err()
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []Item {
	keys := make([]Item, 0, tree.count)
	it := tree.Iterator()
	for it.Next() {
		keys = append(keys, it.Key())
	}
	// nothing can modify the tree inside this loop so it.Err() is always nil
	return keys
}
