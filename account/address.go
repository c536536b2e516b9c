// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"math/big"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/nanoseq/fault"
)

// base32 alphabet without 0, 2, l and v
const alphabet = "13456789abcdefghijkmnopqrstuwxyz"

const (
	// AddressPrefix - prefix written on output
	AddressPrefix = "xrb_"

	keyCharacters      = 52 // 4 zero pad bits + 256 key bits
	checksumCharacters = 8  // 40 checksum bits
	checksumSize       = 5
)

// prefixes accepted on input
var addressPrefixes = []string{AddressPrefix, "nano_"}

// AddressFromKey - encode a 32 byte public key as an account address
func AddressFromKey(key []byte) string {
	n := new(big.Int).SetBytes(key)
	c := new(big.Int).SetBytes(checksum(key))
	return AddressPrefix + encode(n, keyCharacters) + encode(c, checksumCharacters)
}

// KeyFromAddress - decode an account address to its public key
func KeyFromAddress(address string) ([]byte, error) {
	address = strings.TrimSpace(address)

	body := ""
	for _, prefix := range addressPrefixes {
		if strings.HasPrefix(address, prefix) {
			body = address[len(prefix):]
			break
		}
	}
	if "" == body {
		return nil, fault.ErrInvalidAddressPrefix
	}
	if keyCharacters+checksumCharacters != len(body) {
		return nil, fault.ErrInvalidAddress
	}

	n, err := decode(body[:keyCharacters])
	if nil != err {
		return nil, err
	}
	if n.BitLen() > 8*PublicKeySize {
		return nil, fault.ErrInvalidAddress
	}
	key := make([]byte, PublicKeySize)
	n.FillBytes(key)

	c, err := decode(body[keyCharacters:])
	if nil != err {
		return nil, err
	}
	expected := make([]byte, checksumSize)
	c.FillBytes(expected)

	if !bytes.Equal(expected, checksum(key)) {
		return nil, fault.ErrChecksumMismatch
	}
	return key, nil
}

// blake2b-40 of the key in reverse byte order
func checksum(key []byte) []byte {
	h, err := blake2b.New(checksumSize, nil)
	if nil != err {
		panic(err) // only possible for an out of range size
	}
	h.Write(key)
	sum := h.Sum(nil)
	for i, j := 0, len(sum)-1; i < j; i, j = i+1, j-1 {
		sum[i], sum[j] = sum[j], sum[i]
	}
	return sum
}

func encode(n *big.Int, characters int) string {
	n = new(big.Int).Set(n)
	mask := big.NewInt(0x1f)
	digit := new(big.Int)

	buffer := make([]byte, characters)
	for i := characters - 1; i >= 0; i -= 1 {
		digit.And(n, mask)
		buffer[i] = alphabet[digit.Int64()]
		n.Rsh(n, 5)
	}
	return string(buffer)
}

func decode(s string) (*big.Int, error) {
	n := new(big.Int)
	for i := 0; i < len(s); i += 1 {
		d := strings.IndexByte(alphabet, s[i])
		if d < 0 {
			return nil, fault.ErrInvalidAddress
		}
		n.Lsh(n, 5)
		n.Or(n, big.NewInt(int64(d)))
	}
	return n, nil
}
