// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree holding an ordered set of
// distinct keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node records the height of its sub-tree and a balance factor
// (height of right minus height of left).  Insert and Delete recurse
// down from the root and on the way back up every frame recomputes
// height and balance, then rotates if the balance has reached ±2, so
// that the tree is fully balanced when the top level call returns.
//
// Iteration is in ascending key order and is fail-fast: any
// successful Insert or Delete after the iterator was created causes
// the next step to stop with fault.ErrConcurrentMutation.  Keys can
// only be removed through the tree, never through an iterator.
package avl
