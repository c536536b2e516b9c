// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/subtle"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/nanoseq/fault"
)

// SignatureSize - bytes in a signature (R || S)
const SignatureSize = 64

// ed25519 with blake2b-512 in place of sha-512

// PublicKeyFromPrivate - compute the public key of a 32 byte private key
func PublicKeyFromPrivate(privateKey []byte) ([]byte, error) {
	s, _, err := expand(privateKey)
	if nil != err {
		return nil, err
	}
	return new(edwards25519.Point).ScalarBaseMult(s).Bytes(), nil
}

// Sign - sign a message (normally a 32 byte block hash)
func Sign(privateKey []byte, message []byte) ([]byte, error) {
	s, prefix, err := expand(privateKey)
	if nil != err {
		return nil, err
	}
	publicKey := new(edwards25519.Point).ScalarBaseMult(s).Bytes()

	r, err := hashToScalar(prefix, message)
	if nil != err {
		return nil, err
	}
	R := new(edwards25519.Point).ScalarBaseMult(r).Bytes()

	k, err := hashToScalar(R, publicKey, message)
	if nil != err {
		return nil, err
	}
	S := edwards25519.NewScalar().MultiplyAdd(k, s, r)

	signature := make([]byte, 0, SignatureSize)
	signature = append(signature, R...)
	signature = append(signature, S.Bytes()...)
	return signature, nil
}

// Verify - check a signature against a public key
func Verify(publicKey []byte, message []byte, signature []byte) bool {
	if PublicKeySize != len(publicKey) || SignatureSize != len(signature) {
		return false
	}

	A, err := new(edwards25519.Point).SetBytes(publicKey)
	if nil != err {
		return false
	}
	S, err := edwards25519.NewScalar().SetCanonicalBytes(signature[32:])
	if nil != err {
		return false
	}
	k, err := hashToScalar(signature[:32], publicKey, message)
	if nil != err {
		return false
	}

	// [S]B - [k]A == R
	minusA := new(edwards25519.Point).Negate(A)
	R := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(k, minusA, S)

	return 1 == subtle.ConstantTimeCompare(R.Bytes(), signature[:32])
}

// expand the private key into the clamped scalar and the nonce prefix
func expand(privateKey []byte) (*edwards25519.Scalar, []byte, error) {
	if PrivateKeySize != len(privateKey) {
		return nil, nil, fault.ErrInvalidKeyLength
	}
	h := blake2b.Sum512(privateKey)
	s, err := edwards25519.NewScalar().SetBytesWithClamping(h[:32])
	if nil != err {
		return nil, nil, err
	}
	return s, h[32:], nil
}

func hashToScalar(items ...[]byte) (*edwards25519.Scalar, error) {
	h, err := blake2b.New512(nil)
	if nil != err {
		return nil, err
	}
	for _, item := range items {
		h.Write(item)
	}
	return edwards25519.NewScalar().SetUniformBytes(h.Sum(nil))
}
