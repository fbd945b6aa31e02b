// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// height of a possibly absent sub-tree
func height(p *node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute a node's height and balance factor from its children
func update(p *node) {
	lh := height(p.left)
	rh := height(p.right)

	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
	p.balance = rh - lh
}

// rotate if the balance factor has reached ±2
// returns the root of the sub-tree which replaces p in its parent
func (tree *Tree) balance(p *node) *node {
	switch p.balance {
	case -2: // left branch is too high
		if p.left.balance <= 0 {
			// single LL rotation
			return tree.rightRotation(p)
		}
		// double LR rotation
		p.left = tree.leftRotation(p.left)
		return tree.rightRotation(p)

	case +2: // right branch is too high
		if p.right.balance >= 0 {
			// single RR rotation
			return tree.leftRotation(p)
		}
		// double RL rotation
		p.right = tree.rightRotation(p.right)
		return tree.leftRotation(p)

	case -1, 0, +1:
		return p

	default:
		fault.Panicf("avl: balance factor: %d at key: %v", p.balance, p.key)
	}
	return p // not reached
}

// p.right is promoted and p becomes its left child
func (tree *Tree) leftRotation(p *node) *node {
	p1 := p.right
	p.right = p1.left
	p1.left = p

	update(p)
	update(p1)

	tree.leftRotations += 1
	return p1
}

// p.left is promoted and p becomes its right child
func (tree *Tree) rightRotation(p *node) *node {
	p1 := p.left
	p.left = p1.right
	p1.right = p

	update(p)
	update(p1)

	tree.rightRotations += 1
	return p1
}
