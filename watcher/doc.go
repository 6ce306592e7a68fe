// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package watcher - notify when an input file changes or disappears
//
// the watcher runs as a background process and only signals on its
// channels, so whoever reads the file again owns all the data
package watcher
