// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

type buildResult struct {
	Inserted   int            `json:"inserted"`
	Duplicates []string       `json:"duplicates,omitempty"`
	Keys       []string       `json:"keys"`
	Statistics avl.Statistics `json:"statistics"`
}

func runBuild(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys := []string(c.Args())
	if 0 == len(keys) {
		return fault.ErrMissingArguments
	}

	keyType := guessKeyType(keys)
	if c.Bool("strings") {
		keyType = keyTypeString
	}

	if m.verbose {
		fmt.Fprintf(m.e, "key type: %s\n", keyType)
	}

	return build(m.w, keyType, keys)
}

// insert keys, draw the tree and print the result as JSON
func build(w io.Writer, keyType string, keys []string) error {

	items, err := makeKeys(keyType, keys)
	if nil != err {
		return err
	}

	tree := avl.New()
	result := buildResult{}
	for i, item := range items {
		if tree.Insert(item) {
			result.Inserted += 1
		} else {
			result.Duplicates = append(result.Duplicates, keys[i])
		}
	}

	if err := tree.Validate(); nil != err {
		return err
	}

	tree.Print(w)

	result.Keys = keyStrings(tree)
	result.Statistics = tree.Statistics()

	return printJson(w, result)
}

// in-order keys as strings
func keyStrings(tree *avl.Tree) []string {
	keys := make([]string, 0, tree.Count())
	for _, k := range tree.Keys() {
		keys = append(keys, fmt.Sprintf("%v", k))
	}
	return keys
}
