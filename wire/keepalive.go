// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"net"

	"github.com/bitmark-inc/nanoseq/block"
	"github.com/bitmark-inc/nanoseq/fault"
)

// keepalive body layout
const (
	KeepalivePeers = 8
	peerSize       = net.IPv6len + 2
	keepaliveSize  = KeepalivePeers * peerSize
)

// PackKeepalive - keepalive message listing up to eight peers
//
// unused slots are zero, IPv4 addresses are written IPv4-mapped
func PackKeepalive(peers []*net.UDPAddr) []byte {
	buffer := NewHeader(Keepalive, block.Invalid).Pack()
	body := make([]byte, keepaliveSize)

	for i, peer := range peers {
		if i >= KeepalivePeers {
			break
		}
		ip := peer.IP.To16()
		if nil == ip {
			continue
		}
		slot := body[i*peerSize:]
		copy(slot, ip)
		binary.LittleEndian.PutUint16(slot[net.IPv6len:], uint16(peer.Port))
	}
	return append(buffer, body...)
}

// UnpackKeepalive - peers from a keepalive body, empty slots skipped
func UnpackKeepalive(body []byte) ([]*net.UDPAddr, error) {
	if keepaliveSize != len(body) {
		return nil, fault.ErrInvalidMessageLength
	}

	peers := make([]*net.UDPAddr, 0, KeepalivePeers)
	for i := 0; i < KeepalivePeers; i += 1 {
		slot := body[i*peerSize : (i+1)*peerSize]
		ip := make(net.IP, net.IPv6len)
		copy(ip, slot)
		port := binary.LittleEndian.Uint16(slot[net.IPv6len:])
		if ip.IsUnspecified() || 0 == port {
			continue
		}
		peers = append(peers, &net.UDPAddr{IP: ip, Port: int(port)})
	}
	return peers, nil
}
