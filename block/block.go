// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/bitmark-inc/nanoseq/fault"
)

// Type - block type as carried in the message header
type Type byte

// block types, numbering fixed by the network
const (
	Invalid   Type = 0
	NotABlock Type = 1
	Send      Type = 2
	Receive   Type = 3
	Open      Type = 4
)

// field sizes
const (
	KeySize       = 32
	BalanceSize   = 16
	SignatureSize = 64
)

// ZeroBalance - every send in the sequence records this balance
const ZeroBalance = "00000000000000000000000000000000"

// Key - a raw public key
type Key [KeySize]byte

// Block - one open, send or receive block
//
// only the fields belonging to Type are meaningful
type Block struct {
	Type           Type
	Previous       Digest
	Source         Digest
	Destination    Key
	Representative Key
	Account        Key
	Balance        [BalanceSize]byte
	Signature      [SignatureSize]byte
	Work           Work
}

// String - block type name
func (t Type) String() string {
	switch t {
	case Send:
		return "send"
	case Receive:
		return "receive"
	case Open:
		return "open"
	case NotABlock:
		return "not_a_block"
	default:
		return "invalid"
	}
}

// BodySize - packed size of a block of this type
func (t Type) BodySize() int {
	switch t {
	case Send:
		return DigestLength + KeySize + BalanceSize + SignatureSize + WorkSize
	case Receive:
		return DigestLength + DigestLength + SignatureSize + WorkSize
	case Open:
		return DigestLength + KeySize + KeySize + SignatureSize + WorkSize
	default:
		return 0
	}
}

// KeyFromHex - decode 64 hex digits
func KeyFromHex(s string) (Key, error) {
	var key Key
	b, err := hex.DecodeString(s)
	if nil != err || KeySize != len(b) {
		return key, fault.ErrInvalidKeyLength
	}
	copy(key[:], b)
	return key, nil
}

// String - upper case hex
func (key Key) String() string {
	return strings.ToUpper(hex.EncodeToString(key[:]))
}

// Root - the value proof-of-work is computed on
func (blk *Block) Root() []byte {
	if Open == blk.Type {
		return blk.Account[:]
	}
	return blk.Previous[:]
}

// Hash - the canonical block hash, the value that is signed
func (blk *Block) Hash() (Digest, error) {
	switch blk.Type {
	case Send:
		return NewDigest(blk.Previous[:], blk.Destination[:], blk.Balance[:]), nil
	case Receive:
		return NewDigest(blk.Previous[:], blk.Source[:]), nil
	case Open:
		return NewDigest(blk.Source[:], blk.Representative[:], blk.Account[:]), nil
	default:
		return Digest{}, fault.ErrInvalidBlockType
	}
}

// Pack - wire representation: hashed fields, signature, work
func (blk *Block) Pack() ([]byte, error) {
	buffer := make([]byte, 0, blk.Type.BodySize())

	switch blk.Type {
	case Send:
		buffer = append(buffer, blk.Previous[:]...)
		buffer = append(buffer, blk.Destination[:]...)
		buffer = append(buffer, blk.Balance[:]...)
	case Receive:
		buffer = append(buffer, blk.Previous[:]...)
		buffer = append(buffer, blk.Source[:]...)
	case Open:
		buffer = append(buffer, blk.Source[:]...)
		buffer = append(buffer, blk.Representative[:]...)
		buffer = append(buffer, blk.Account[:]...)
	default:
		return nil, fault.ErrInvalidBlockType
	}

	buffer = append(buffer, blk.Signature[:]...)
	buffer = append(buffer, blk.Work.Bytes()...)
	return buffer, nil
}

// Unpack - reverse of Pack for a known block type
func Unpack(t Type, body []byte) (*Block, error) {
	size := t.BodySize()
	if 0 == size {
		return nil, fault.ErrInvalidBlockType
	}
	if size != len(body) {
		return nil, fault.ErrInvalidMessageLength
	}

	blk := &Block{
		Type: t,
	}

	n := 0
	next := func(dst []byte) {
		n += copy(dst, body[n:n+len(dst)])
	}

	switch t {
	case Send:
		next(blk.Previous[:])
		next(blk.Destination[:])
		next(blk.Balance[:])
	case Receive:
		next(blk.Previous[:])
		next(blk.Source[:])
	case Open:
		next(blk.Source[:])
		next(blk.Representative[:])
		next(blk.Account[:])
	}
	next(blk.Signature[:])

	var work [WorkSize]byte
	next(work[:])
	blk.Work = workFromBytes(work[:])

	return blk, nil
}

// MarshalJSON - the field set of the block's type only
func (blk *Block) MarshalJSON() ([]byte, error) {
	fields := map[string]string{
		"type":      blk.Type.String(),
		"work":      blk.Work.String(),
		"signature": strings.ToUpper(hex.EncodeToString(blk.Signature[:])),
	}

	switch blk.Type {
	case Send:
		fields["previous"] = blk.Previous.String()
		fields["destination"] = blk.Destination.String()
		fields["balance"] = strings.ToUpper(hex.EncodeToString(blk.Balance[:]))
	case Receive:
		fields["previous"] = blk.Previous.String()
		fields["source"] = blk.Source.String()
	case Open:
		fields["source"] = blk.Source.String()
		fields["representative"] = blk.Representative.String()
		fields["account"] = blk.Account.String()
	default:
		return nil, fault.ErrInvalidBlockType
	}

	if hash, err := blk.Hash(); nil == err {
		fields["hash"] = hash.String()
	}

	return json.Marshal(fields)
}
