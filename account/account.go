// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/nanoseq/fault"
)

// sizes of the raw key material
const (
	PublicKeySize  = 32
	PrivateKeySize = 32

	keySize = 32
)

// Account - one derived key pair, stored as upper case hex
type Account struct {
	Index      uint32 `json:"index"`
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
	Address    string `json:"address"`
}

// Derive - the account at index for a given seed
//
// private key = blake2b-256(seed || big endian index)
func Derive(seed []byte, index uint32) (*Account, error) {
	if SeedSize != len(seed) {
		return nil, fault.ErrInvalidSeedLength
	}

	h, err := blake2b.New256(nil)
	if nil != err {
		return nil, err
	}
	h.Write(seed)

	var i [4]byte
	binary.BigEndian.PutUint32(i[:], index)
	h.Write(i[:])

	privateKey := h.Sum(nil)

	publicKey, err := PublicKeyFromPrivate(privateKey)
	if nil != err {
		return nil, err
	}

	return &Account{
		Index:      index,
		PublicKey:  strings.ToUpper(hex.EncodeToString(publicKey)),
		PrivateKey: strings.ToUpper(hex.EncodeToString(privateKey)),
		Address:    AddressFromKey(publicKey),
	}, nil
}

// PublicKeyBytes - decode the public key
func (a *Account) PublicKeyBytes() ([]byte, error) {
	return decodeKey(a.PublicKey)
}

// PrivateKeyBytes - decode the private key
func (a *Account) PrivateKeyBytes() ([]byte, error) {
	return decodeKey(a.PrivateKey)
}

func decodeKey(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, err
	}
	if keySize != len(b) {
		return nil, fault.ErrInvalidKeyLength
	}
	return b, nil
}
