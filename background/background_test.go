// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nanoseq/background"
)

type poller struct {
	polls    int64
	finished int32
}

func (p *poller) Run(args interface{}, shutdown <-chan struct{}) {
	interval := args.(time.Duration)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(interval):
			atomic.AddInt64(&p.polls, 1)
		}
	}
	atomic.StoreInt32(&p.finished, 1)
}

func TestStartStop(t *testing.T) {
	first := &poller{}
	second := &poller{}

	b := background.Start(background.Processes{first, second}, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	b.Stop()

	assert.Equal(t, int32(1), atomic.LoadInt32(&first.finished), "first process not finished")
	assert.Equal(t, int32(1), atomic.LoadInt32(&second.finished), "second process not finished")
	assert.NotZero(t, atomic.LoadInt64(&first.polls), "first process never ran")
	assert.NotZero(t, atomic.LoadInt64(&second.polls), "second process never ran")
}

func TestStopTwice(t *testing.T) {
	p := &poller{}

	b := background.Start(background.Processes{p}, time.Millisecond)
	b.Stop()
	b.Stop()

	assert.Equal(t, int32(1), atomic.LoadInt32(&p.finished), "process not finished")
}

func TestStopNil(t *testing.T) {
	var b *background.T
	b.Stop()
}
