// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

type ascendingResult struct {
	Count          int `json:"count"`
	Height         int `json:"height"`
	Bound          int `json:"bound"`
	LeftRotations  int `json:"leftRotations"`
	RightRotations int `json:"rightRotations"`
}

func runAscending(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 1 != c.NArg() {
		return fault.ErrMissingArguments
	}

	n, err := checkCount(c.Args().Get(0))
	if nil != err {
		return err
	}

	return ascending(m.w, n)
}

// worst case height of an AVL tree holding n keys
func heightBound(n int) int {
	return int(math.Ceil(1.44 * math.Log2(float64(n+2))))
}

func ascending(w io.Writer, n int) error {

	tree := avl.New()
	for i := 1; i <= n; i += 1 {
		tree.Insert(avl.IntItem(i))
	}

	if err := tree.Validate(); nil != err {
		return err
	}

	st := tree.Statistics()
	result := ascendingResult{
		Count:          st.Count,
		Height:         st.Height,
		Bound:          heightBound(n),
		LeftRotations:  st.LeftRotations,
		RightRotations: st.RightRotations,
	}

	if err := printJson(w, result); nil != err {
		return err
	}

	if result.Height > result.Bound {
		return fmt.Errorf("%w: height: %d  bound: %d", fault.ErrHeightExceedsBound, result.Height, result.Bound)
	}
	return nil
}
