// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/counter"
)

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *node
	count int

	// incremented by every successful Insert or Delete
	generation counter.Counter

	leftRotations  int
	rightRotations int

	// reclaimed nodes linked through their right pointer
	pool       *node
	freeNodes  int
	totalNodes int
}

// Statistics - summary of a tree's shape and history
type Statistics struct {
	Count          int    `json:"count"`
	Height         int    `json:"height"`
	LeftRotations  int    `json:"leftRotations"`
	RightRotations int    `json:"rightRotations"`
	Generation     uint64 `json:"generation"`
	AllocatedNodes int    `json:"allocatedNodes"`
	FreeNodes      int    `json:"freeNodes"`
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of keys currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - number of edges from the root to the deepest leaf
//
// both an empty tree and a single node tree have height zero
func (tree *Tree) Height() int {
	if nil == tree.root {
		return 0
	}
	return tree.root.height
}

// Statistics - return counters describing the tree
func (tree *Tree) Statistics() Statistics {
	return Statistics{
		Count:          tree.count,
		Height:         tree.Height(),
		LeftRotations:  tree.leftRotations,
		RightRotations: tree.rightRotations,
		Generation:     tree.generation.Uint64(),
		AllocatedNodes: tree.totalNodes,
		FreeNodes:      tree.freeNodes,
	}
}
