// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nanoseq/block"
	"github.com/bitmark-inc/nanoseq/fault"
	"github.com/bitmark-inc/nanoseq/proof"
)

// one in sixteen nonces succeed
const easyThreshold uint64 = 0xf000000000000000

func TestGenerate(t *testing.T) {
	for _, threads := range []int{1, 4} {
		g, err := proof.New(logger.New(category), threads, easyThreshold)
		assert.Nil(t, err, "new generator error")

		root := bytes.Repeat([]byte{byte(threads)}, 32)
		work, err := g.Generate(root)
		assert.Nil(t, err, "threads: %d  generate error", threads)
		assert.Nil(t, proof.Validate(root, work, easyThreshold), "threads: %d  work %s does not validate", threads, work)
	}
}

func TestValidate(t *testing.T) {
	root := bytes.Repeat([]byte{0x42}, 32)

	// search by hand for one failing and one passing token
	var good, bad block.Work
	haveGood, haveBad := false, false
	for w := block.Work(0); !haveGood || !haveBad; w += 1 {
		if proof.Value(root, w) >= easyThreshold {
			good, haveGood = w, true
		} else {
			bad, haveBad = w, true
		}
	}

	assert.Nil(t, proof.Validate(root, good, easyThreshold), "good work rejected")
	assert.Equal(t, fault.ErrInvalidWork, proof.Validate(root, bad, easyThreshold), "bad work accepted")

	// the same token against another root gives another value
	other := bytes.Repeat([]byte{0x43}, 32)
	assert.NotEqual(t, proof.Value(root, good), proof.Value(other, good), "root does not affect value")
}

func TestNewInvalid(t *testing.T) {
	_, err := proof.New(logger.New(category), 0, easyThreshold)
	assert.Equal(t, fault.ErrZeroThreads, err, "zero threads accepted")

	_, err = proof.New(logger.New(category), 1, 0)
	assert.Equal(t, fault.ErrZeroWorkThreshold, err, "zero threshold accepted")
}
