// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package network_test

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nanoseq/fault"
	"github.com/bitmark-inc/nanoseq/network"
	"github.com/bitmark-inc/nanoseq/wire"
)

// a stand-in for a remote node
func newPeer(t *testing.T) *net.UDPConn {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}
	return conn
}

func receive(t *testing.T, conn *net.UDPConn) ([]byte, *net.UDPAddr) {
	buffer := make([]byte, 2048)
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, from, err := conn.ReadFromUDP(buffer)
	if nil != err {
		t.Fatalf("peer receive error: %s", err)
	}
	return buffer[:n], from
}

var noLookup = network.LookupFunc(func(host string) ([]net.IP, error) {
	return nil, errors.New("lookup not expected")
})

func openSession(t *testing.T, bootstrap ...string) *network.Session {
	configuration := &network.Configuration{
		Listen:    0,
		Bootstrap: bootstrap,
	}
	s, err := network.Open(logger.New(category), configuration, network.LookupFunc(func(host string) ([]net.IP, error) {
		return []net.IP{net.ParseIP(host)}, nil
	}))
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	return s
}

func TestOpenWithoutBootstrap(t *testing.T) {
	configuration := &network.Configuration{
		Bootstrap: []string{"bad host port", "node.invalid:7075"},
	}
	_, err := network.Open(logger.New(category), configuration, noLookup)
	assert.Equal(t, fault.ErrNoBootstrapPeers, err, "wrong error")
}

func TestKeepaliveDiscovery(t *testing.T) {
	peer := newPeer(t)
	defer peer.Close()

	s := openSession(t, peer.LocalAddr().String())
	defer s.Close()

	assert.Equal(t, 1, s.PeerCount(), "bootstrap only")

	err := s.Keepalive()
	assert.Nil(t, err, "keepalive error")

	datagram, from := receive(t, peer)
	h, _, err := wire.ParseHeader(datagram)
	assert.Nil(t, err, "header error")
	assert.Equal(t, wire.Keepalive, h.Type, "message type")

	reply := wire.PackKeepalive([]*net.UDPAddr{
		{IP: net.ParseIP("192.0.2.10"), Port: 7075},
		{IP: net.ParseIP("192.0.2.11"), Port: 7075},
	})
	_, err = peer.WriteToUDP(reply, from)
	assert.Nil(t, err, "reply error")

	deadline := time.Now().Add(2 * time.Second)
	for s.PeerCount() < 3 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 3, s.PeerCount(), "learned peers")
}

func TestPublish(t *testing.T) {
	peer := newPeer(t)
	defer peer.Close()

	s := openSession(t, peer.LocalAddr().String())

	message := []byte("RC\x05\x05\x01\x03\x00\x02payload")
	err := s.Publish(message)
	assert.Nil(t, err, "publish error")

	datagram, _ := receive(t, peer)
	assert.Equal(t, message, datagram, "datagram")

	assert.Nil(t, s.Close(), "close error")
	assert.Nil(t, s.Close(), "second close error")
	assert.Equal(t, fault.ErrSessionClosed, s.Publish(message), "publish after close")
}

func TestLookupLiteral(t *testing.T) {
	l := network.NewLookuper(logger.New(category))
	ips, err := l.Lookup("192.0.2.1")
	assert.Nil(t, err, "lookup error")
	assert.Equal(t, 1, len(ips), "addresses")
	assert.True(t, net.ParseIP("192.0.2.1").Equal(ips[0]), "address")
}

func TestSeveralBootstrapHostsCountOnce(t *testing.T) {
	first := newPeer(t)
	defer first.Close()
	second := newPeer(t)
	defer second.Close()

	s := openSession(t, first.LocalAddr().String(), second.LocalAddr().String())
	defer s.Close()

	assert.Equal(t, 1, s.PeerCount(), "bootstrap hosts")

	err := s.Keepalive()
	assert.Nil(t, err, "keepalive error")

	for _, peer := range []*net.UDPConn{first, second} {
		datagram, _ := receive(t, peer)
		h, _, err := wire.ParseHeader(datagram)
		assert.Nil(t, err, "header error")
		assert.Equal(t, wire.Keepalive, h.Type, "message type")
	}
}
