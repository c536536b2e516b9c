// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"encoding/json"
	"io/ioutil"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nanoseq/account"
	"github.com/bitmark-inc/nanoseq/wire"
)

// State - the persisted sequence
//
// every mutator saves before returning, so the file is never behind
// memory by more than the call in progress
type State struct {
	Seed           string             `json:"seed"`
	Accounts       []*account.Account `json:"accounts,omitempty"`
	Messages       []wire.Message     `json:"messages,omitempty"`
	MsgCount       int                `json:"msgCount,omitempty"`
	PendingHash    string             `json:"pendingHash,omitempty"`
	FinalRecipient string             `json:"finalRecipient,omitempty"`

	path string
	log  *logger.L
}

// Load - read the state file, or start afresh
//
// a missing or unreadable file is not an error, a new random seed is
// used instead; nothing is written until the first mutation
func Load(path string, log *logger.L) (*State, error) {
	s := &State{
		path: path,
		log:  log,
	}

	data, err := ioutil.ReadFile(path)
	if nil == err {
		err = json.Unmarshal(data, s)
	}
	if nil == err {
		log.Infof("loaded: %q  messages: %d", path, len(s.Messages))
		return s, nil
	}

	log.Warnf("error reading persistence file, starting from new: %s", err)

	seed, err := account.NewSeed()
	if nil != err {
		return nil, err
	}
	*s = State{
		Seed: seed,
		path: path,
		log:  log,
	}
	return s, nil
}

// Path - the backing file
func (s *State) Path() string {
	return s.path
}

// Save - overwrite the backing file
//
// a crash during the write can leave a truncated file, which the next
// Load treats as absent
func (s *State) Save() error {
	data, err := json.Marshal(s)
	if nil != err {
		return err
	}
	err = ioutil.WriteFile(s.path, data, 0600)
	if nil != err {
		s.log.Errorf("save: %q  error: %s", s.path, err)
		return err
	}
	s.log.Debugf("saved: %q  messages: %d", s.path, len(s.Messages))
	return nil
}

// SetAccounts - record the derived accounts
func (s *State) SetAccounts(accounts []*account.Account) error {
	s.Accounts = accounts
	return s.Save()
}

// SetMessageCount - record the normalised message count
func (s *State) SetMessageCount(count int) error {
	s.MsgCount = count
	return s.Save()
}

// SetPendingHash - record the externally funded block hash
func (s *State) SetPendingHash(hash string) error {
	s.PendingHash = hash
	return s.Save()
}

// SetFinalRecipient - record the raw public key of the final recipient
func (s *State) SetFinalRecipient(publicKey string) error {
	s.FinalRecipient = publicKey
	return s.Save()
}

// AppendMessage - add one built message
func (s *State) AppendMessage(message wire.Message) error {
	s.Messages = append(s.Messages, message)
	return s.Save()
}

// MessageHash - hash of the message at index
func (s *State) MessageHash(index int) (string, bool) {
	if index < 0 || index >= len(s.Messages) {
		return "", false
	}
	return s.Messages[index].Hash, true
}

// Account - the account at index, nil if not derived
func (s *State) Account(index int) *account.Account {
	if index < 0 || index >= len(s.Accounts) {
		return nil
	}
	return s.Accounts[index]
}
