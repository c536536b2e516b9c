// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orchestrator

// Stage - position of the driver, derived from persisted state
type Stage int

// stages in the order they are passed through
const (
	// persisted seed is not 64 hex digits
	NeedSeed Stage = iota

	// derive both accounts from the seed
	NeedAccounts

	// ask the operator how many messages to build
	NeedMsgCount

	// ask the operator for the block funding account 0
	NeedPendingHash

	// build, work and sign the next message
	Building

	// ask the operator where the balance finally goes
	NeedFinalRecipient

	// build the terminal send
	BuildingFinal

	// broadcast the whole sequence
	Publishing

	// nothing left to do
	Done

	// more messages than the count allows
	Overrun
)

func (stage Stage) String() string {
	switch stage {
	case NeedSeed:
		return "NeedSeed"
	case NeedAccounts:
		return "NeedAccounts"
	case NeedMsgCount:
		return "NeedMsgCount"
	case NeedPendingHash:
		return "NeedPendingHash"
	case Building:
		return "Building"
	case NeedFinalRecipient:
		return "NeedFinalRecipient"
	case BuildingFinal:
		return "BuildingFinal"
	case Publishing:
		return "Publishing"
	case Done:
		return "Done"
	case Overrun:
		return "Overrun"
	default:
		return "*Unknown*"
	}
}
