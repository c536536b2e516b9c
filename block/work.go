// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/bitmark-inc/nanoseq/fault"
)

// WorkSize - bytes of work on the wire
const WorkSize = 8

// Work - proof-of-work token
//
// printed as 16 zero padded hex digits, packed little endian
type Work uint64

// String - 16 hex digits
func (w Work) String() string {
	return fmt.Sprintf("%016x", uint64(w))
}

// WorkFromHex - parse a 1..16 digit hex token
func WorkFromHex(s string) (Work, error) {
	if 0 == len(s) || len(s) > 2*WorkSize {
		return 0, fault.ErrInvalidWork
	}
	n, err := strconv.ParseUint(s, 16, 64)
	if nil != err {
		return 0, fault.ErrInvalidWork
	}
	return Work(n), nil
}

// Bytes - little endian packing used both on the wire and by the work hash
func (w Work) Bytes() []byte {
	b := make([]byte, WorkSize)
	binary.LittleEndian.PutUint64(b, uint64(w))
	return b
}

// MarshalText - hex text for JSON
func (w Work) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText - hex text from JSON
func (w *Work) UnmarshalText(s []byte) error {
	n, err := WorkFromHex(string(s))
	if nil != err {
		return err
	}
	*w = n
	return nil
}

func workFromBytes(b []byte) Work {
	return Work(binary.LittleEndian.Uint64(b))
}
