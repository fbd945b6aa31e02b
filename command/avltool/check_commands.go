// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// key types accepted by the workload configuration
const (
	keyTypeInteger = "integer"
	keyTypeString  = "string"
)

func checkKeyType(keyType string) (string, error) {
	switch keyType {
	case keyTypeInteger, "int":
		return keyTypeInteger, nil
	case keyTypeString, "str":
		return keyTypeString, nil
	default:
		return "", fmt.Errorf("%w: %q", fault.ErrUnknownKeyType, keyType)
	}
}

func checkCount(count string) (int, error) {
	n, err := strconv.Atoi(count)
	if nil != err {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", fault.ErrInvalidCount, n)
	}
	return n, nil
}

// convert all keys to items of one type
func makeKeys(keyType string, keys []string) ([]avl.Item, error) {
	items := make([]avl.Item, len(keys))
	for i, k := range keys {
		switch keyType {
		case keyTypeInteger:
			n, err := strconv.Atoi(k)
			if nil != err {
				return nil, fmt.Errorf("%w: %q is not an integer", fault.ErrInvalidKey, k)
			}
			items[i] = avl.IntItem(n)
		case keyTypeString:
			items[i] = avl.StringItem(k)
		default:
			return nil, fmt.Errorf("%w: %q", fault.ErrUnknownKeyType, keyType)
		}
	}
	return items, nil
}

// integers unless any key fails to parse as one
func guessKeyType(keys []string) string {
	for _, k := range keys {
		if _, err := strconv.Atoi(k); nil != err {
			return keyTypeString
		}
	}
	return keyTypeInteger
}
