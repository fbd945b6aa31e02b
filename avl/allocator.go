// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// a node in the tree
type node struct {
	left    *node // left sub-tree
	right   *node // right sub-tree
	key     Item  // key part for ordering
	height  int   // leaf = 0, absent sub-tree = -1
	balance int   // height(right) - height(left): -1, 0, +1
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
func (tree *Tree) newNode(key Item) *node {
	p := tree.pool
	if nil == p {
		if 0 != tree.freeNodes {
			panic("pool corrupt")
		}
		tree.totalNodes += 1
		return &node{
			key: key,
		}
	}
	tree.pool = p.right // free list pointer
	tree.freeNodes -= 1

	p.key = key
	p.left = nil
	p.right = nil
	p.height = 0
	p.balance = 0
	return p
}

// reclaim a node and keep it in the tree's pool
func (tree *Tree) freeNode(p *node) {
	p.left = nil
	p.key = nil
	p.height = 0
	p.balance = 0

	p.right = tree.pool // use as free list pointer
	tree.pool = p
	tree.freeNodes += 1
}
