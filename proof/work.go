// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/nanoseq/block"
	"github.com/bitmark-inc/nanoseq/fault"
)

// Threshold - network difficulty for open, send and receive blocks
const Threshold uint64 = 0xffffffc000000000

// Value - work value of a token against a root
//
// blake2b-64(little endian work || root) read as little endian
func Value(root []byte, work block.Work) uint64 {
	h, err := blake2b.New(block.WorkSize, nil)
	if nil != err {
		panic(err) // only possible for an out of range size
	}
	h.Write(work.Bytes())
	h.Write(root)
	return binary.LittleEndian.Uint64(h.Sum(nil))
}

// Validate - check that work meets the threshold for root
func Validate(root []byte, work block.Work, threshold uint64) error {
	if Value(root, work) < threshold {
		return fault.ErrInvalidWork
	}
	return nil
}
