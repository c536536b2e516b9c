// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package network

import (
	"net"
	"strconv"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nanoseq/background"
	"github.com/bitmark-inc/nanoseq/fault"
	"github.com/bitmark-inc/nanoseq/wire"
)

// defaults
const (
	DefaultPort      = 7075
	DefaultBootstrap = "peering.nano.org:7075"
)

const (
	bootstrapKey    = "bootstrap"
	peerExpiration  = 5 * time.Minute
	cleanupInterval = 1 * time.Minute
	readTimeout     = 250 * time.Millisecond
	maximumDatagram = 1024
)

// Configuration - network section of the configuration file
//
// all bootstrap hosts together count as a single peer, so a session
// that learned nothing reports one peer however many are listed
type Configuration struct {
	Listen      int      `gluamapper:"listen" json:"listen"`
	Bootstrap   []string `gluamapper:"bootstrap" json:"bootstrap"`
	PublishRate float64  `gluamapper:"publish_rate" json:"publish_rate"`
}

// Session - one UDP socket and the peers learned through it
//
// the bootstrap hosts share one entry in the peer table, learned peers
// come only from keepalive bodies, so a session that heard nothing
// reports exactly one peer
type Session struct {
	sync.Mutex
	log        *logger.L
	conn       *net.UDPConn
	peers      *cache.Cache
	bootstrap  []*net.UDPAddr
	background *background.T
	closed     bool
}

// Open - resolve bootstrap hosts, bind and start receiving
func Open(log *logger.L, configuration *Configuration, lookuper Lookuper) (*Session, error) {
	log.Info("opening…")

	peers := cache.New(peerExpiration, cleanupInterval)
	bootstrap := make([]*net.UDPAddr, 0, len(configuration.Bootstrap))

	for _, hostPort := range configuration.Bootstrap {
		addrs, err := resolve(lookuper, hostPort)
		if nil != err {
			log.Warnf("bootstrap: %q  error: %s", hostPort, err)
			continue
		}
		bootstrap = append(bootstrap, addrs...)
	}
	if 0 == len(bootstrap) {
		return nil, fault.ErrNoBootstrapPeers
	}
	peers.Set(bootstrapKey, bootstrap, cache.NoExpiration)

	conn, err := net.ListenUDP("udp", &net.UDPAddr{Port: configuration.Listen})
	if nil != err {
		return nil, err
	}
	log.Infof("server listening: %s", conn.LocalAddr())

	s := &Session{
		log:       log,
		conn:      conn,
		peers:     peers,
		bootstrap: bootstrap,
	}
	s.background = background.Start(background.Processes{&receiver{session: s}}, nil)

	return s, nil
}

func resolve(lookuper Lookuper, hostPort string) ([]*net.UDPAddr, error) {
	host, p, err := net.SplitHostPort(hostPort)
	if nil != err {
		return nil, err
	}
	port, err := strconv.Atoi(p)
	if nil != err || port <= 0 || port > 65535 {
		return nil, fault.ErrInvalidPeerAddress
	}

	ips, err := lookuper.Lookup(host)
	if nil != err {
		return nil, err
	}
	if 0 == len(ips) {
		return nil, fault.ErrInvalidPeerAddress
	}

	addrs := make([]*net.UDPAddr, 0, len(ips))
	for _, ip := range ips {
		addrs = append(addrs, &net.UDPAddr{IP: ip, Port: port})
	}
	return addrs, nil
}

// LocalAddr - address the socket is bound to
func (s *Session) LocalAddr() *net.UDPAddr {
	return s.conn.LocalAddr().(*net.UDPAddr)
}

// PeerCount - one for the bootstrap hosts plus unexpired learned peers
func (s *Session) PeerCount() int {
	return len(s.peers.Items())
}

// Keepalive - introduce this node to every known peer
func (s *Session) Keepalive() error {
	learned := make([]*net.UDPAddr, 0, wire.KeepalivePeers)
	for _, addrs := range s.learned() {
		learned = append(learned, addrs...)
	}
	return s.send(wire.PackKeepalive(learned))
}

// Publish - send one message to every known peer
//
// returns after the last write completes; the first write error is
// returned but the remaining peers are still sent to
func (s *Session) Publish(message []byte) error {
	return s.send(message)
}

// Close - stop receiving and release the socket
func (s *Session) Close() error {
	s.Lock()
	if s.closed {
		s.Unlock()
		return nil
	}
	s.closed = true
	s.Unlock()

	s.background.Stop()
	err := s.conn.Close()
	s.log.Info("closed")
	return err
}

func (s *Session) send(message []byte) error {
	s.Lock()
	closed := s.closed
	s.Unlock()
	if closed {
		return fault.ErrSessionClosed
	}

	var first error
	for _, addrs := range s.peers.Items() {
		for _, addr := range addrs.Object.([]*net.UDPAddr) {
			_, err := s.conn.WriteToUDP(message, addr)
			if nil != err {
				s.log.Debugf("send to: %s  error: %s", addr, err)
				if nil == first {
					first = err
				}
			}
		}
	}
	return first
}

// peers learned from keepalives, bootstrap entries excluded
func (s *Session) learned() [][]*net.UDPAddr {
	result := [][]*net.UDPAddr{}
	for _, item := range s.peers.Items() {
		if 0 == item.Expiration {
			continue
		}
		result = append(result, item.Object.([]*net.UDPAddr))
	}
	return result
}

func (s *Session) addPeer(addr *net.UDPAddr) {
	key := addr.String()
	_, found := s.peers.Get(key)

	// refresh expiry of known peers
	s.peers.Set(key, []*net.UDPAddr{addr}, cache.DefaultExpiration)

	if !found {
		s.log.Debugf("new peer: %s  total: %d", key, s.PeerCount())
	}
}
