// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"sync/atomic"
	"time"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nanoseq/block"
	"github.com/bitmark-inc/nanoseq/fault"
)

// how many nonces between checks for another thread's success
const checkInterval = 0x1000

// Generator - searches for work on one root at a time
type Generator struct {
	log       *logger.L
	threads   int
	threshold uint64
}

// New - create a generator with a fixed thread count
func New(log *logger.L, threads int, threshold uint64) (*Generator, error) {
	if threads <= 0 {
		return nil, fault.ErrZeroThreads
	}
	if 0 == threshold {
		return nil, fault.ErrZeroWorkThreshold
	}
	return &Generator{
		log:       log,
		threads:   threads,
		threshold: threshold,
	}, nil
}

// Generate - block until a work token for root is found
//
// each thread starts from a random nonce, the first to succeed stops the others
func (g *Generator) Generate(root []byte) (block.Work, error) {
	log := g.log

	log.Infof("generating work for: %x  threads: %d", root, g.threads)
	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)

	found := make(chan block.Work, g.threads)
	var count uint64

	for i := 0; i < g.threads; i += 1 {
		nonce, err := randomNonce()
		if nil != err {
			return 0, err
		}
		group.Go(func() error {
			n, ok := g.search(ctx, root, nonce)
			atomic.AddUint64(&count, n)
			if ok {
				found <- block.Work(nonce + n - 1)
				cancel()
			}
			return nil
		})
	}

	if err := group.Wait(); nil != err {
		return 0, err
	}

	select {
	case work := <-found:
		elapsed := time.Since(start)
		log.Infof("work found: %s  in: %s", work, elapsed)
		if seconds := elapsed.Seconds(); seconds > 0 {
			log.Debugf("hash rate: %f H/s", float64(atomic.LoadUint64(&count))/seconds)
		}
		return work, nil
	default:
		return 0, fault.ErrWorkGenerationFailed
	}
}

// search from nonce upwards, returns the number of nonces tried
// and whether the last one met the threshold
func (g *Generator) search(ctx context.Context, root []byte, nonce uint64) (uint64, bool) {
	h, err := blake2b.New(block.WorkSize, nil)
	if nil != err {
		return 0, false
	}

	var buffer [block.WorkSize]byte
	sum := make([]byte, 0, block.WorkSize)

	for n := uint64(1); ; n += 1 {
		if 0 == n%checkInterval {
			select {
			case <-ctx.Done():
				return n, false
			default:
			}
		}

		binary.LittleEndian.PutUint64(buffer[:], nonce+n-1)
		h.Reset()
		h.Write(buffer[:])
		h.Write(root)
		sum = h.Sum(sum[:0])

		if binary.LittleEndian.Uint64(sum) >= g.threshold {
			return n, true
		}
	}
}

func randomNonce() (uint64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
