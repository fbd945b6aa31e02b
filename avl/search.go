// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Contains - true if the key is in the tree, a nil key is never found
func (tree *Tree) Contains(key Item) bool {
	if nil == key {
		return false
	}
	return contains(key, tree.root)
}

func contains(key Item, p *node) bool {
	return nil != search(key, p)
}

// Search - find a specific key and return the stored copy of it
func (tree *Tree) Search(key Item) (Item, bool) {
	if nil == key {
		return nil, false
	}
	p := search(key, tree.root)
	if nil == p {
		return nil, false
	}
	return p.key, true
}

func search(key Item, p *node) *node {
	if nil == p {
		return nil
	}

	c := p.key.Compare(key)
	if c > 0 { // p.key > key
		return search(key, p.left)
	}
	if c < 0 { // p.key < key
		return search(key, p.right)
	}
	return p
}

// First - return the lowest key or nil if the tree is empty
func (tree *Tree) First() Item {
	p := tree.root.first()
	if nil == p {
		return nil
	}
	return p.key
}

// internal: lowest node in a sub-tree
func (p *node) first() *node {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the highest key or nil if the tree is empty
func (tree *Tree) Last() Item {
	p := tree.root.last()
	if nil == p {
		return nil
	}
	return p.key
}

// internal: highest node in a sub-tree
func (p *node) last() *node {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}
