// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sequence - chain position arithmetic and block construction
//
// Two accounts pass a balance back and forth:
//
//   0: open    account 0  source: pending hash
//   1: send    account 0  -> account 1
//   2: open    account 1  source: message 1
//   3: send    account 1  -> account 0
//   4: receive account 0  source: message 3
//   5: send    account 0  -> account 1
//   6: receive account 1  source: message 5
//   ...
//   n: send    final      -> external recipient  (n = message count)
//
// so the first build of a count of n messages produces n+1 blocks.
package sequence
