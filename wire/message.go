// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/nanoseq/account"
	"github.com/bitmark-inc/nanoseq/block"
	"github.com/bitmark-inc/nanoseq/fault"
)

// Message - a rendered publish message and the hash of its block
type Message struct {
	Message string `json:"message"` // hex of header and block
	Hash    string `json:"hash"`    // upper case block hash
}

// Render - sign a block and frame it as a publish message
//
// the block's Signature field is filled in
func Render(blk *block.Block, privateKey []byte) (Message, error) {
	hash, err := blk.Hash()
	if nil != err {
		return Message{}, err
	}

	signature, err := account.Sign(privateKey, hash[:])
	if nil != err {
		return Message{}, err
	}
	copy(blk.Signature[:], signature)

	body, err := blk.Pack()
	if nil != err {
		return Message{}, err
	}

	buffer := NewHeader(Publish, blk.Type).Pack()
	buffer = append(buffer, body...)

	return Message{
		Message: strings.ToUpper(hex.EncodeToString(buffer)),
		Hash:    hash.String(),
	}, nil
}

// Bytes - the raw datagram
func (m Message) Bytes() ([]byte, error) {
	return hex.DecodeString(m.Message)
}

// Decode - recover the block from a publish message
func (m Message) Decode() (*block.Block, error) {
	buffer, err := m.Bytes()
	if nil != err {
		return nil, err
	}
	h, body, err := ParseHeader(buffer)
	if nil != err {
		return nil, err
	}
	if Publish != h.Type {
		return nil, fault.ErrInvalidMessageType
	}
	return block.Unpack(h.BlockType(), body)
}
