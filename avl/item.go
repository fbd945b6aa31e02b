// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"
)

// Item - a key item must implement the Compare function
//
// Compare returns a negative number, zero or a positive number if the
// receiver is less than, equal to or greater than the argument.  The
// argument is always a key of the same dynamic type that was stored
// in the tree.  A nil Item is never stored.
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// IntItem - integer key
type IntItem int

// Compare - integer ordering for AVL interface
func (i IntItem) Compare(x interface{}) int {
	j := x.(IntItem)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

// StringItem - string key in byte-wise lexical order
type StringItem string

// Compare - string ordering for AVL interface
func (s StringItem) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(StringItem)))
}

// String - for printing
func (s StringItem) String() string {
	return string(s)
}
