// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - monotonic generation counter
//
// A data structure increments its counter on every structural change;
// a reader captures the value with Uint64 and later calls Changed to
// find out whether anything was modified in between.
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned generation number
// the zero value is ready to use
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// Changed - true if the counter moved on from a captured value
func (ic *Counter) Changed(since uint64) bool {
	return ic.Uint64() != since
}
