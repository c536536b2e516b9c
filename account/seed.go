// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"

	"github.com/bitmark-inc/nanoseq/fault"
)

// SeedSize - bytes in a seed
const SeedSize = 32

var hex64 = regexp.MustCompile(`^[A-Fa-f0-9]{64}$`)

// IsHex64 - true if s is exactly 64 hex digits
//
// seeds, keys and block hashes all share this form
func IsHex64(s string) bool {
	return hex64.MatchString(s)
}

// NewSeed - random seed as lower case hex
func NewSeed() (string, error) {
	seed := make([]byte, SeedSize)
	if _, err := rand.Read(seed); nil != err {
		return "", err
	}
	return hex.EncodeToString(seed), nil
}

// SeedFromHex - validate and decode a hex seed
func SeedFromHex(s string) ([]byte, error) {
	if !IsHex64(s) {
		return nil, fault.ErrInvalidSeed
	}
	return hex.DecodeString(s)
}
