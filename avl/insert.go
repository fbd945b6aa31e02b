// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a new key to the tree
//
// returns false without changing anything if the key is nil or is
// already present
func (tree *Tree) Insert(key Item) bool {
	if nil == key {
		return false
	}
	if contains(key, tree.root) {
		return false
	}
	tree.root = tree.insert(key, tree.root)
	tree.count += 1
	tree.generation.Increment()
	return true
}

// internal routine for insert, key is known to be absent
func (tree *Tree) insert(key Item, p *node) *node {
	if nil == p { // insert new node
		return tree.newNode(key)
	}

	if p.key.Compare(key) > 0 { // p.key > key
		p.left = tree.insert(key, p.left)
	} else {
		p.right = tree.insert(key, p.right)
	}

	update(p)
	return tree.balance(p)
}
