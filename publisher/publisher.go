// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publisher

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nanoseq/fault"
	"github.com/bitmark-inc/nanoseq/wire"
)

// PeerWait - time allowed for keepalive replies before counting peers
const PeerWait = 10 * time.Second

// Session - the network operations needed to publish
type Session interface {
	Keepalive() error
	PeerCount() int
	Publish(message []byte) error
	Close() error
}

// Connector - open a fresh session
type Connector func() (Session, error)

// Publisher - broadcast a finished sequence in order
type Publisher struct {
	log     *logger.L
	connect Connector
	wait    time.Duration
	limiter *rate.Limiter
	w       io.Writer
}

// New - a publisher sending at most perSecond messages per second,
// zero means unlimited
func New(log *logger.L, connect Connector, perSecond float64, w io.Writer) *Publisher {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &Publisher{
		log:     log,
		connect: connect,
		wait:    PeerWait,
		limiter: rate.NewLimiter(limit, 1),
		w:       w,
	}
}

// Publish - keepalive, wait for peers then send every message front to
// back, each send completing before the next begins
//
// a single peer after the wait means discovery failed and nothing is
// sent; individual send errors are logged and not retried
func (p *Publisher) Publish(messages []wire.Message) error {
	log := p.log

	session, err := p.connect()
	if nil != err {
		return err
	}
	defer func() {
		if err := session.Close(); nil != err {
			log.Warnf("session close error: %s", err)
		}
	}()

	if err := session.Keepalive(); nil != err {
		log.Warnf("keepalive error: %s", err)
	}

	fmt.Fprintf(p.w, "waiting %s for peers…\n", p.wait)
	time.Sleep(p.wait)

	count := session.PeerCount()
	fmt.Fprintf(p.w, "peers: %d\n", count)
	log.Infof("peer count: %d", count)

	if 1 == count {
		return fault.ErrPeerDiscoveryFailed
	}

	for i, message := range messages {
		if err := p.limiter.Wait(context.Background()); nil != err {
			return err
		}

		buffer, err := message.Bytes()
		if nil != err {
			log.Errorf("message[%d]: %s  decode error: %s", i, message.Hash, err)
			continue
		}

		err = session.Publish(buffer)
		if nil != err {
			log.Warnf("publish[%d]: %s  error: %s", i, message.Hash, err)
		} else {
			log.Debugf("published[%d]: %s", i, message.Hash)
		}
		fmt.Fprintf(p.w, "published %d/%d: %s\n", i+1, len(messages), message.Hash)
	}

	log.Infof("published: %d messages", len(messages))
	return nil
}
