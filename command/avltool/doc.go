// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avltool - build, display and exercise AVL trees from the command line
//
//   avltool build 5 2 8 1 3
//   avltool build --strings pear apple fig
//   avltool ascending 1000
//   avltool --config-file=workload.conf run
package main
