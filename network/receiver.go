// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package network

import (
	"net"
	"time"

	"github.com/bitmark-inc/nanoseq/wire"
)

type receiver struct {
	session *Session
}

// Run - background processing interface
func (r *receiver) Run(_ interface{}, shutdown <-chan struct{}) {
	s := r.session
	log := s.log

	log.Info("receiver starting…")
	buffer := make([]byte, maximumDatagram)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}

		_ = s.conn.SetReadDeadline(time.Now().Add(readTimeout))
		n, from, err := s.conn.ReadFromUDP(buffer)
		if nil != err {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue loop
			}
			log.Debugf("read error: %s", err)
			continue loop
		}

		r.process(buffer[:n], from)
	}

	log.Info("receiver stopped")
}

func (r *receiver) process(datagram []byte, from *net.UDPAddr) {
	log := r.session.log

	h, body, err := wire.ParseHeader(datagram)
	if nil != err {
		log.Debugf("from: %s  discard: %s", from, err)
		return
	}

	switch h.Type {
	case wire.Keepalive:
		peers, err := wire.UnpackKeepalive(body)
		if nil != err {
			log.Debugf("from: %s  keepalive: %s", from, err)
			return
		}
		log.Debugf("from: %s  keepalive peers: %d", from, len(peers))
		for _, peer := range peers {
			r.session.addPeer(peer)
		}

	default:
		log.Tracef("from: %s  ignored: %s", from, h.Type)
	}
}
