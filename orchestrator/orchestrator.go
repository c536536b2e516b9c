// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orchestrator

import (
	"encoding/hex"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nanoseq/account"
	"github.com/bitmark-inc/nanoseq/block"
	"github.com/bitmark-inc/nanoseq/fault"
	"github.com/bitmark-inc/nanoseq/sequence"
	"github.com/bitmark-inc/nanoseq/state"
	"github.com/bitmark-inc/nanoseq/wire"
)

// accounts used by a sequence
const accountCount = 2

// largest message count accepted from the operator
const maximumCount = math.MaxInt32

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// Prompter - operator input, answers are validated by the caller
type Prompter interface {
	MessageCount() (string, error)
	PendingHash(address string) (string, error)
	FinalRecipient() (string, error)
}

// Publisher - broadcast the finished sequence
type Publisher interface {
	Publish(messages []wire.Message) error
}

// Orchestrator - drives a sequence from a seed to published messages
type Orchestrator struct {
	log       *logger.L
	state     *state.State
	prompter  Prompter
	signer    sequence.WorkSigner
	publisher Publisher
	published bool
}

// New - an orchestrator owning s for its lifetime
func New(log *logger.L, s *state.State, prompter Prompter, signer sequence.WorkSigner, publisher Publisher) *Orchestrator {
	return &Orchestrator{
		log:       log,
		state:     s,
		prompter:  prompter,
		signer:    signer,
		publisher: publisher,
	}
}

// Stage - the next action according to the persisted state
func (o *Orchestrator) Stage() Stage {
	s := o.state
	built := len(s.Messages)

	switch {
	case !account.IsHex64(s.Seed):
		return NeedSeed
	case !accountsPresent(s.Accounts):
		return NeedAccounts
	case !sequence.ValidCount(s.MsgCount):
		return NeedMsgCount
	case !account.IsHex64(s.PendingHash):
		return NeedPendingHash
	case built < s.MsgCount:
		return Building
	case built == s.MsgCount && !account.IsHex64(s.FinalRecipient):
		return NeedFinalRecipient
	case built == s.MsgCount:
		return BuildingFinal
	case built == s.MsgCount+1 && !o.published:
		return Publishing
	case built == s.MsgCount+1:
		return Done
	default:
		return Overrun
	}
}

// a hand edited file may hold null entries
func accountsPresent(accounts []*account.Account) bool {
	if accountCount != len(accounts) {
		return false
	}
	for _, a := range accounts {
		if nil == a {
			return false
		}
	}
	return true
}

// Run - step until done or an error occurs
func (o *Orchestrator) Run() error {
	for {
		stage := o.Stage()
		if Done == stage {
			o.log.Info("sequence complete")
			return nil
		}
		err := o.Step()
		if nil != err {
			o.log.Errorf("stage: %s  error: %s", stage, err)
			return err
		}
	}
}

// Step - perform exactly one action, persisting its result
func (o *Orchestrator) Step() error {
	log := o.log
	s := o.state

	stage := o.Stage()
	log.Debugf("current stage: %s  messages: %d/%d", stage, len(s.Messages), s.MsgCount)

	switch stage {
	case NeedSeed:
		return fault.ErrInvalidSeed

	case NeedAccounts:
		return o.deriveAccounts()

	case NeedMsgCount:
		return o.askMessageCount()

	case NeedPendingHash:
		return o.askPendingHash()

	case Building, BuildingFinal:
		return o.buildNext()

	case NeedFinalRecipient:
		return o.askFinalRecipient()

	case Publishing:
		err := o.publisher.Publish(s.Messages)
		if nil != err {
			return err
		}
		o.published = true
		return nil

	case Done:
		return nil

	default:
		return fault.ErrSequenceOverrun
	}
}

func (o *Orchestrator) deriveAccounts() error {
	seed, err := account.SeedFromHex(o.state.Seed)
	if nil != err {
		return err
	}

	accounts := make([]*account.Account, accountCount)
	for i := 0; i < accountCount; i += 1 {
		accounts[i], err = account.Derive(seed, uint32(i))
		if nil != err {
			return err
		}
		o.log.Infof("account[%d]: %s", i, accounts[i].Address)
	}
	return o.state.SetAccounts(accounts)
}

func (o *Orchestrator) askMessageCount() error {
	answer, err := o.prompter.MessageCount()
	if nil != err {
		return err
	}

	// leading number only, "7 messages" is 7
	value, err := strconv.ParseFloat(leadingNumber.FindString(strings.TrimSpace(answer)), 64)
	if nil != err || math.IsNaN(value) || math.IsInf(value, 0) || value > maximumCount {
		return fault.ErrInvalidMessageCount
	}

	count := sequence.NormaliseCount(value)
	o.log.Infof("message count: %d", count)
	return o.state.SetMessageCount(count)
}

func (o *Orchestrator) askPendingHash() error {
	answer, err := o.prompter.PendingHash(o.state.Accounts[0].Address)
	if nil != err {
		return err
	}

	digest, err := block.DigestFromHex(strings.TrimSpace(answer))
	if nil != err {
		return err
	}

	o.log.Infof("pending hash: %s", digest)
	return o.state.SetPendingHash(digest.String())
}

func (o *Orchestrator) askFinalRecipient() error {
	answer, err := o.prompter.FinalRecipient()
	if nil != err {
		return err
	}

	key, err := account.KeyFromAddress(strings.TrimSpace(answer))
	if nil != err {
		return err
	}

	o.log.Infof("final recipient: %s", account.AddressFromKey(key))
	return o.state.SetFinalRecipient(strings.ToUpper(hex.EncodeToString(key)))
}

func (o *Orchestrator) buildNext() error {
	log := o.log
	s := o.state

	pos, err := sequence.Resolve(len(s.Messages), s.MsgCount)
	if nil != err {
		return err
	}

	blk, err := sequence.Build(pos, s)
	if nil != err {
		return err
	}

	log.Infof("message[%d]: %s on account[%d]  computing work…", pos.Index, pos.Type, pos.Account)
	work, err := o.signer.Work(blk.Root())
	if nil != err {
		return err
	}
	blk.Work = work

	privateKey, err := s.Accounts[pos.Account].PrivateKeyBytes()
	if nil != err {
		return err
	}

	message, err := o.signer.Sign(blk, privateKey)
	if nil != err {
		return err
	}

	log.Infof("message[%d]: hash: %s  work: %s", pos.Index, message.Hash, work)
	return s.AppendMessage(message)
}
