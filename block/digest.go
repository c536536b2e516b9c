// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/nanoseq/fault"
)

// DigestLength - number of bytes in a block hash
const DigestLength = 32

// Digest - a block hash, printed as upper case hex
type Digest [DigestLength]byte

// NewDigest - blake2b-256 of the concatenated items
func NewDigest(items ...[]byte) Digest {
	h, err := blake2b.New256(nil)
	if nil != err {
		panic(err) // only possible with a key
	}
	for _, item := range items {
		h.Write(item)
	}
	var digest Digest
	copy(digest[:], h.Sum(nil))
	return digest
}

// DigestFromHex - decode 64 hex digits
func DigestFromHex(s string) (Digest, error) {
	var digest Digest
	if 2*DigestLength != len(s) {
		return digest, fault.ErrInvalidHash
	}
	b, err := hex.DecodeString(s)
	if nil != err {
		return digest, fault.ErrInvalidHash
	}
	copy(digest[:], b)
	return digest, nil
}

// String - upper case hex
func (digest Digest) String() string {
	return strings.ToUpper(hex.EncodeToString(digest[:]))
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	return []byte(digest.String()), nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	d, err := DigestFromHex(string(s))
	if nil != err {
		return err
	}
	*digest = d
	return nil
}
