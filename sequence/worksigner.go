// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sequence

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nanoseq/block"
	"github.com/bitmark-inc/nanoseq/proof"
	"github.com/bitmark-inc/nanoseq/wire"
)

// WorkSigner - proof-of-work and message rendering for built blocks
type WorkSigner interface {
	// blocks until work for root is found
	Work(root []byte) (block.Work, error)

	// fills in the signature and renders the publish message
	Sign(blk *block.Block, privateKey []byte) (wire.Message, error)
}

type workSigner struct {
	generator *proof.Generator
}

// NewWorkSigner - WorkSigner backed by the local proof generator
func NewWorkSigner(log *logger.L, threads int, threshold uint64) (WorkSigner, error) {
	g, err := proof.New(log, threads, threshold)
	if nil != err {
		return nil, err
	}
	return &workSigner{
		generator: g,
	}, nil
}

func (w *workSigner) Work(root []byte) (block.Work, error) {
	return w.generator.Generate(root)
}

func (w *workSigner) Sign(blk *block.Block, privateKey []byte) (wire.Message, error) {
	return wire.Render(blk, privateKey)
}
