// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - start and stop a group of goroutines
//
// each process receives the same argument and a shared shutdown
// channel; Stop closes the channel and waits for all of them
package background
