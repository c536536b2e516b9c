// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sequence

import (
	"math"

	"github.com/bitmark-inc/nanoseq/block"
	"github.com/bitmark-inc/nanoseq/fault"
)

// MinimumCount - smallest message count, not including the final send
const MinimumCount = 3

// reference values meaning "not another message"
const (
	External = -1 // pending hash for a source, final recipient for a destination
	None     = -2 // field not used by this block type
)

// Position - everything needed to build the next block
type Position struct {
	Index       int // the index this block's message will have
	Type        block.Type
	Account     int // account whose chain is extended
	Previous    int // message index, or None for open
	Source      int // message index, External or None
	Destination int // account index, External or None
	Final       bool
}

// NormaliseCount - round down to odd, then up to at least MinimumCount
//
// 1, 2, 3, 4, 5, 6 -> 3, 3, 3, 5, 5, 7
func NormaliseCount(input float64) int {
	n := int(math.Floor(input/2))*2 + 1
	if n < MinimumCount {
		n = MinimumCount
	}
	return n
}

// ValidCount - true for an odd count no less than MinimumCount
func ValidCount(count int) bool {
	return count >= MinimumCount && 1 == count%2
}

// Resolve - the block that follows built messages in a sequence of target
func Resolve(built int, target int) (Position, error) {
	if !ValidCount(target) || built < 0 || built > target {
		return Position{}, fault.ErrInvalidPosition
	}

	switch {
	case 0 == built:
		return Position{
			Index:       0,
			Type:        block.Open,
			Account:     0,
			Previous:    None,
			Source:      External,
			Destination: None,
		}, nil

	case 1 == built:
		return Position{
			Index:       1,
			Type:        block.Send,
			Account:     0,
			Previous:    0,
			Source:      None,
			Destination: 1,
		}, nil

	case 2 == built:
		return Position{
			Index:       2,
			Type:        block.Open,
			Account:     1,
			Previous:    None,
			Source:      1,
			Destination: None,
		}, nil

	case target == built:
		// whichever account received last holds the balance
		return Position{
			Index:       built,
			Type:        block.Send,
			Account:     ((built - 1) / 2) % 2,
			Previous:    built - 1,
			Source:      None,
			Destination: External,
			Final:       true,
		}, nil
	}

	accountIndex := (built / 2) % 2

	// the last block on this account's own chain: the other account's
	// block sits between them except straight after a receive
	previous := built - 3
	if 1 == built%2 || 3 == built {
		previous = built - 1
	}

	if 0 == built%2 {
		return Position{
			Index:       built,
			Type:        block.Receive,
			Account:     accountIndex,
			Previous:    previous,
			Source:      built - 1,
			Destination: None,
		}, nil
	}

	return Position{
		Index:       built,
		Type:        block.Send,
		Account:     accountIndex,
		Previous:    previous,
		Source:      None,
		Destination: 1 - accountIndex,
	}, nil
}
