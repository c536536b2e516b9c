// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"

	"github.com/bitmark-inc/nanoseq/block"
	"github.com/bitmark-inc/nanoseq/fault"
)

// HeaderSize - bytes in a message header
const HeaderSize = 8

// header constants for the live network
const (
	magicNetwork = 'R'
	magicVersion = 'C'

	VersionMax   = 0x05
	VersionUsing = 0x05
	VersionMin   = 0x01
)

// MessageType - second part of the header
type MessageType byte

// message types used by the sequence
const (
	Invalid   MessageType = 0x00
	NotAType  MessageType = 0x01
	Keepalive MessageType = 0x02
	Publish   MessageType = 0x03
)

// Header - common prefix of every message
type Header struct {
	VersionMax   byte
	VersionUsing byte
	VersionMin   byte
	Type         MessageType
	Extensions   uint16
}

func (t MessageType) String() string {
	switch t {
	case Keepalive:
		return "keepalive"
	case Publish:
		return "publish"
	case NotAType:
		return "not_a_type"
	default:
		return "invalid"
	}
}

// NewHeader - header for this node's messages
func NewHeader(t MessageType, blockType block.Type) Header {
	return Header{
		VersionMax:   VersionMax,
		VersionUsing: VersionUsing,
		VersionMin:   VersionMin,
		Type:         t,
		Extensions:   uint16(blockType&0x0f) << 8,
	}
}

// BlockType - block type carried in bits 8..11 of the extensions
func (h Header) BlockType() block.Type {
	return block.Type((h.Extensions >> 8) & 0x0f)
}

// Pack - header bytes
func (h Header) Pack() []byte {
	buffer := make([]byte, HeaderSize)
	buffer[0] = magicNetwork
	buffer[1] = magicVersion
	buffer[2] = h.VersionMax
	buffer[3] = h.VersionUsing
	buffer[4] = h.VersionMin
	buffer[5] = byte(h.Type)
	binary.LittleEndian.PutUint16(buffer[6:], h.Extensions)
	return buffer
}

// ParseHeader - split a datagram into header and body
func ParseHeader(buffer []byte) (Header, []byte, error) {
	if len(buffer) < HeaderSize {
		return Header{}, nil, fault.ErrInvalidMessageLength
	}
	if magicNetwork != buffer[0] || magicVersion != buffer[1] {
		return Header{}, nil, fault.ErrInvalidMessageHeader
	}
	h := Header{
		VersionMax:   buffer[2],
		VersionUsing: buffer[3],
		VersionMin:   buffer[4],
		Type:         MessageType(buffer[5]),
		Extensions:   binary.LittleEndian.Uint16(buffer[6:]),
	}
	return h, buffer[HeaderSize:], nil
}
