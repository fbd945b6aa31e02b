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
)

type keyResult struct {
	Key    string `json:"key"`
	Result bool   `json:"result"`
}

type stepResult struct {
	Step    int         `json:"step"`
	Action  string      `json:"action"`
	Results []keyResult `json:"results"`
	Count   int         `json:"count"`
	Height  int         `json:"height"`
}

type workloadResult struct {
	Keys       []string       `json:"keys"`
	Statistics avl.Statistics `json:"statistics"`
}

func runWorkload(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	workload, err := getWorkload(m.file)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "key type: %s  steps: %d\n", workload.KeyType, len(workload.Steps))
	}

	return execute(m.w, workload)
}

// apply each step in turn, validating the tree after every step
func execute(w io.Writer, workload *Workload) error {

	tree := avl.New()

	for i, step := range workload.Steps {
		items, err := makeKeys(workload.KeyType, step.Keys)
		if nil != err {
			return err
		}

		result := stepResult{
			Step:    i + 1,
			Action:  step.Action,
			Results: make([]keyResult, len(items)),
		}

		for j, item := range items {
			ok := false
			switch step.Action {
			case actionInsert:
				ok = tree.Insert(item)
			case actionDelete:
				ok = tree.Delete(item)
			case actionContains:
				ok = tree.Contains(item)
			}
			result.Results[j] = keyResult{
				Key:    step.Keys[j],
				Result: ok,
			}
		}

		if err := tree.Validate(); nil != err {
			return fmt.Errorf("step: %d  %w", i+1, err)
		}

		result.Count = tree.Count()
		result.Height = tree.Height()
		if err := printJson(w, result); nil != err {
			return err
		}
	}

	if workload.Print {
		tree.Print(w)
	}

	return printJson(w, workloadResult{
		Keys:       keyStrings(tree),
		Statistics: tree.Statistics(),
	})
}
