// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publisher_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nanoseq/fault"
	"github.com/bitmark-inc/nanoseq/mocks"
	"github.com/bitmark-inc/nanoseq/publisher"
	"github.com/bitmark-inc/nanoseq/wire"
)

var messages = []wire.Message{
	{Message: "52430505010302000A", Hash: "AA"},
	{Message: "52430505010302000B", Hash: "BB"},
	{Message: "52430505010302000C", Hash: "CC"},
}

func newPublisher(session publisher.Session, perSecond float64, w *bytes.Buffer) *publisher.Publisher {
	p := publisher.New(logger.New(category), func() (publisher.Session, error) {
		return session, nil
	}, perSecond, w)
	p.SetWait(time.Millisecond)
	return p
}

func TestPublishInOrder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSession(ctl)

	gomock.InOrder(
		m.EXPECT().Keepalive().Return(nil).Times(1),
		m.EXPECT().PeerCount().Return(5).Times(1),
		m.EXPECT().Publish([]byte{0x52, 0x43, 0x05, 0x05, 0x01, 0x03, 0x02, 0x00, 0x0a}).Return(nil).Times(1),
		m.EXPECT().Publish([]byte{0x52, 0x43, 0x05, 0x05, 0x01, 0x03, 0x02, 0x00, 0x0b}).Return(nil).Times(1),
		m.EXPECT().Publish([]byte{0x52, 0x43, 0x05, 0x05, 0x01, 0x03, 0x02, 0x00, 0x0c}).Return(nil).Times(1),
		m.EXPECT().Close().Return(nil).Times(1),
	)

	w := &bytes.Buffer{}
	err := newPublisher(m, 0, w).Publish(messages)
	assert.Nil(t, err, "publish error")
	assert.Contains(t, w.String(), "peers: 5", "peer count output")
	assert.Contains(t, w.String(), "published 3/3: CC", "progress output")
}

func TestPublishSinglePeer(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSession(ctl)

	gomock.InOrder(
		m.EXPECT().Keepalive().Return(nil).Times(1),
		m.EXPECT().PeerCount().Return(1).Times(1),
		m.EXPECT().Close().Return(nil).Times(1),
	)
	m.EXPECT().Publish(gomock.Any()).Times(0)

	err := newPublisher(m, 0, &bytes.Buffer{}).Publish(messages)
	assert.Equal(t, fault.ErrPeerDiscoveryFailed, err, "wrong error")
}

func TestPublishZeroPeers(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSession(ctl)

	m.EXPECT().Keepalive().Return(nil).Times(1)
	m.EXPECT().PeerCount().Return(0).Times(1)
	m.EXPECT().Publish(gomock.Any()).Return(nil).Times(len(messages))
	m.EXPECT().Close().Return(nil).Times(1)

	err := newPublisher(m, 0, &bytes.Buffer{}).Publish(messages)
	assert.Nil(t, err, "publish error")
}

func TestPublishErrorsNotRetried(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSession(ctl)

	m.EXPECT().Keepalive().Return(errors.New("keepalive failed")).Times(1)
	m.EXPECT().PeerCount().Return(3).Times(1)
	m.EXPECT().Publish(gomock.Any()).Return(errors.New("send failed")).Times(len(messages))
	m.EXPECT().Close().Return(nil).Times(1)

	err := newPublisher(m, 0, &bytes.Buffer{}).Publish(messages)
	assert.Nil(t, err, "send errors are not fatal")
}

func TestPublishConnectError(t *testing.T) {
	expected := errors.New("no socket")
	p := publisher.New(logger.New(category), func() (publisher.Session, error) {
		return nil, expected
	}, 0, &bytes.Buffer{})

	err := p.Publish(messages)
	assert.Equal(t, expected, err, "wrong error")
}

func TestPublishRateLimited(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSession(ctl)

	m.EXPECT().Keepalive().Return(nil).Times(1)
	m.EXPECT().PeerCount().Return(2).Times(1)
	m.EXPECT().Publish(gomock.Any()).Return(nil).Times(len(messages))
	m.EXPECT().Close().Return(nil).Times(1)

	start := time.Now()
	err := newPublisher(m, 20, &bytes.Buffer{}).Publish(messages)
	assert.Nil(t, err, "publish error")

	// burst of one then 50ms per message
	assert.True(t, time.Since(start) >= 90*time.Millisecond, "sends were not paced")
}
