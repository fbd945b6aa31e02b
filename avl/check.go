// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// ValidateBSTInvariant - check that every left child is less than and
// every right child is greater than its parent
func (tree *Tree) ValidateBSTInvariant() bool {
	return checkOrder(tree.root)
}

// internal: parent/child ordering checker
func checkOrder(p *node) bool {
	if nil == p {
		return true
	}
	if nil != p.left && p.left.key.Compare(p.key) >= 0 {
		return false
	}
	if nil != p.right && p.right.key.Compare(p.key) <= 0 {
		return false
	}
	return checkOrder(p.left) && checkOrder(p.right)
}

// Validate - check the complete set of tree invariants
//
// every key lies strictly between the bounds set by its ancestors,
// every stored height and balance factor matches the children, every
// balance factor is in the range -1..+1 and the key count is correct
func (tree *Tree) Validate() error {
	n, err := validate(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: counted: %d  expected: %d", fault.ErrNodeCount, n, tree.count)
	}
	return nil
}

// internal: recursive checker, returns the number of nodes in the sub-tree
func validate(p *node, low Item, high Item) (int, error) {
	if nil == p {
		return 0, nil
	}
	if nil != low && low.Compare(p.key) >= 0 {
		return 0, fmt.Errorf("%w: key: %v  not above: %v", fault.ErrKeyOrder, p.key, low)
	}
	if nil != high && high.Compare(p.key) <= 0 {
		return 0, fmt.Errorf("%w: key: %v  not below: %v", fault.ErrKeyOrder, p.key, high)
	}

	nl, err := validate(p.left, low, p.key)
	if nil != err {
		return 0, err
	}
	nr, err := validate(p.right, p.key, high)
	if nil != err {
		return 0, err
	}

	lh := height(p.left)
	rh := height(p.right)
	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	if p.height != h {
		return 0, fmt.Errorf("%w: key: %v  height: %d  expected: %d", fault.ErrHeightMismatch, p.key, p.height, h)
	}
	if p.balance != rh-lh || p.balance < -1 || p.balance > +1 {
		return 0, fmt.Errorf("%w: key: %v  balance: %+d  actual: %+d", fault.ErrBalanceFactor, p.key, p.balance, rh-lh)
	}
	return 1 + nl + nr, nil
}
