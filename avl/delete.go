// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific key from the tree
//
// returns false without changing anything if the key is nil or is
// not present
func (tree *Tree) Delete(key Item) bool {
	if nil == key {
		return false
	}
	if !contains(key, tree.root) {
		return false
	}
	tree.root = tree.delete(key, tree.root)
	tree.count -= 1
	tree.generation.Increment()
	return true
}

// internal delete routine, key is known to be present below p
func (tree *Tree) delete(key Item, p *node) *node {
	if nil == p {
		return nil
	}

	switch c := p.key.Compare(key); {
	case c > 0: // p.key > key
		p.left = tree.delete(key, p.left)

	case c < 0: // p.key < key
		p.right = tree.delete(key, p.right)

	case nil == p.left: // found: only right branch or leaf
		r := p.right
		tree.freeNode(p)
		return r

	case nil == p.right: // found: only left branch
		l := p.left
		tree.freeNode(p)
		return l

	case p.left.height > p.right.height:
		// found with two branches: take the key from the higher
		// branch, the node that held it is the one that is unlinked
		replacement := p.left.last().key
		p.key = replacement
		p.left = tree.delete(replacement, p.left)

	default:
		replacement := p.right.first().key
		p.key = replacement
		p.right = tree.delete(replacement, p.right)
	}

	update(p)
	return tree.balance(p)
}
