// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrChecksumMismatch      = InvalidError("checksum mismatch")
	ErrInvalidAddress        = InvalidError("invalid address")
	ErrInvalidAddressPrefix  = InvalidError("invalid address prefix")
	ErrInvalidBlockType      = InvalidError("invalid block type")
	ErrInvalidConfiguration  = InvalidError("configuration file must return a table")
	ErrInvalidHash           = InvalidError("invalid hash, must be 64 character hex string")
	ErrInvalidKeyLength      = LengthError("invalid key length")
	ErrInvalidMessageCount   = InvalidError("message count is not a number")
	ErrInvalidMessageHeader  = InvalidError("invalid message header")
	ErrInvalidMessageLength  = LengthError("invalid message length")
	ErrInvalidMessageType    = InvalidError("invalid message type")
	ErrInvalidPeerAddress    = InvalidError("invalid peer address")
	ErrInvalidPosition       = InvalidError("invalid chain position")
	ErrInvalidSeed           = InvalidError("invalid seed value, must be 64 character hex string")
	ErrInvalidSeedLength     = LengthError("invalid seed length")
	ErrInvalidWork           = InvalidError("invalid work")
	ErrMissingAccounts       = NotFoundError("accounts have not been derived")
	ErrMissingFinalRecipient = NotFoundError("final recipient is not set")
	ErrMissingMessage        = NotFoundError("referenced message does not exist")
	ErrMissingPendingHash    = NotFoundError("pending hash is not set")
	ErrMissingStateFile      = NotFoundError("persistence filename not specified")
	ErrNoBootstrapPeers      = NotFoundError("no bootstrap peers could be resolved")
	ErrPeerDiscoveryFailed   = ProcessError("peer connection failed, please try again")
	ErrSequenceOverrun       = ProcessError("more messages stored than the sequence allows")
	ErrSessionClosed         = ProcessError("network session is closed")
	ErrWorkGenerationFailed  = ProcessError("work generation failed")
	ErrZeroThreads           = InvalidError("work thread count must be positive")
	ErrZeroWorkThreshold     = InvalidError("work threshold must be non-zero")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
