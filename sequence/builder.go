// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sequence

import (
	"github.com/bitmark-inc/nanoseq/account"
	"github.com/bitmark-inc/nanoseq/block"
	"github.com/bitmark-inc/nanoseq/fault"
	"github.com/bitmark-inc/nanoseq/state"
)

// DefaultRepresentative - representative recorded in every open block
const DefaultRepresentative = "xrb_1nanode8ngaakzbck8smq6ru9bethqwyehomf79sae1k7xd47dkidjqzffeg"

var representativeKey block.Key

func init() {
	key, err := account.KeyFromAddress(DefaultRepresentative)
	if nil != err {
		panic("default representative: " + err.Error())
	}
	copy(representativeKey[:], key)
}

// Build - the unsigned block at pos
//
// work and signature are left zero
func Build(pos Position, s *state.State) (*block.Block, error) {
	owner, err := accountKey(s, pos.Account)
	if nil != err {
		return nil, err
	}

	blk := &block.Block{
		Type: pos.Type,
	}

	switch pos.Type {
	case block.Open:
		blk.Source, err = source(s, pos.Source)
		if nil != err {
			return nil, err
		}
		blk.Representative = representativeKey
		blk.Account = owner

	case block.Send:
		blk.Previous, err = messageHash(s, pos.Previous)
		if nil != err {
			return nil, err
		}
		blk.Destination, err = destination(s, pos.Destination)
		if nil != err {
			return nil, err
		}
		// balance stays zero

	case block.Receive:
		blk.Previous, err = messageHash(s, pos.Previous)
		if nil != err {
			return nil, err
		}
		blk.Source, err = source(s, pos.Source)
		if nil != err {
			return nil, err
		}

	default:
		return nil, fault.ErrInvalidBlockType
	}

	return blk, nil
}

func accountKey(s *state.State, index int) (block.Key, error) {
	a := s.Account(index)
	if nil == a {
		return block.Key{}, fault.ErrMissingAccounts
	}
	return block.KeyFromHex(a.PublicKey)
}

func messageHash(s *state.State, index int) (block.Digest, error) {
	hash, ok := s.MessageHash(index)
	if !ok {
		return block.Digest{}, fault.ErrMissingMessage
	}
	return block.DigestFromHex(hash)
}

func source(s *state.State, index int) (block.Digest, error) {
	if External == index {
		if "" == s.PendingHash {
			return block.Digest{}, fault.ErrMissingPendingHash
		}
		return block.DigestFromHex(s.PendingHash)
	}
	return messageHash(s, index)
}

func destination(s *state.State, index int) (block.Key, error) {
	if External == index {
		if "" == s.FinalRecipient {
			return block.Key{}, fault.ErrMissingFinalRecipient
		}
		return block.KeyFromHex(s.FinalRecipient)
	}
	return accountKey(s, index)
}
