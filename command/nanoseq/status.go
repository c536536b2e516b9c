// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nanoseq/account"
	"github.com/bitmark-inc/nanoseq/block"
	"github.com/bitmark-inc/nanoseq/fault"
	"github.com/bitmark-inc/nanoseq/orchestrator"
	"github.com/bitmark-inc/nanoseq/state"
)

// the seed and private keys are never shown
type statusReport struct {
	File           string          `json:"file"`
	Stage          string          `json:"stage"`
	Accounts       []string        `json:"accounts,omitempty"`
	MsgCount       int             `json:"msgCount"`
	Built          int             `json:"built"`
	PendingHash    string          `json:"pendingHash,omitempty"`
	FinalRecipient string          `json:"finalRecipient,omitempty"`
	Messages       []statusMessage `json:"messages,omitempty"`
}

type statusMessage struct {
	Hash  string       `json:"hash"`
	Block *block.Block `json:"block,omitempty"`
	Error string       `json:"error,omitempty"`
}

func runStatus(c *cli.Context) error {
	m, ok := c.App.Metadata["config"].(*metadata)
	if !ok {
		return fault.ErrMissingStateFile
	}

	// do not let Load invent a fresh seed for a mistyped name
	if _, err := os.Stat(m.stateFile); nil != err {
		return err
	}

	s, err := state.Load(m.stateFile, logger.New("state"))
	if nil != err {
		return err
	}

	return printJson(m.w, report(s))
}

func report(s *state.State) *statusReport {
	r := &statusReport{
		File:        s.Path(),
		Stage:       orchestrator.New(logger.New("status"), s, nil, nil, nil).Stage().String(),
		MsgCount:    s.MsgCount,
		Built:       len(s.Messages),
		PendingHash: s.PendingHash,
	}

	for _, a := range s.Accounts {
		r.Accounts = append(r.Accounts, a.Address)
	}

	if "" != s.FinalRecipient {
		key, err := hex.DecodeString(s.FinalRecipient)
		if nil == err && account.PublicKeySize == len(key) {
			r.FinalRecipient = account.AddressFromKey(key)
		} else {
			r.FinalRecipient = s.FinalRecipient
		}
	}

	for _, message := range s.Messages {
		item := statusMessage{
			Hash: message.Hash,
		}
		blk, err := message.Decode()
		if nil != err {
			item.Error = err.Error()
		} else {
			item.Block = blk
		}
		r.Messages = append(r.Messages, item)
	}
	return r
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
