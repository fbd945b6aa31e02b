// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// actions a workload step may perform
const (
	actionInsert   = "insert"
	actionDelete   = "delete"
	actionContains = "contains"
)

// Step - one action applied to a list of keys
type Step struct {
	Action string   `gluamapper:"action" json:"action"`
	Keys   []string `gluamapper:"keys" json:"keys"`
}

// Workload - contents of the Lua workload file
type Workload struct {
	KeyType string `gluamapper:"key_type" json:"key_type"`
	Print   bool   `gluamapper:"print" json:"print"`
	Steps   []Step `gluamapper:"steps" json:"steps"`
}

// read and verify a workload file
func getWorkload(fileName string) (*Workload, error) {

	if "" == fileName {
		return nil, fmt.Errorf("%w: --config-file is required", fault.ErrMissingArguments)
	}

	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	workload := &Workload{
		KeyType: keyTypeInteger,
	}

	if err := configuration.ParseConfigurationFile(fileName, workload); nil != err {
		return nil, err
	}

	workload.KeyType, err = checkKeyType(workload.KeyType)
	if nil != err {
		return nil, err
	}

	for i, step := range workload.Steps {
		switch step.Action {
		case actionInsert, actionDelete, actionContains:
		default:
			return nil, fmt.Errorf("%w: step: %d  action: %q", fault.ErrUnknownAction, i+1, step.Action)
		}
		if _, err := makeKeys(workload.KeyType, step.Keys); nil != err {
			return nil, fmt.Errorf("step: %d  %w", i+1, err)
		}
	}

	return workload, nil
}
