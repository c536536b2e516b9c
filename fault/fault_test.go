// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/nanoseq/fault"
)

// test that the sequence errors keep their classes
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		invalid  bool
		length   bool
		notFound bool
		process  bool
	}{
		{fault.ErrInvalidSeed, true, false, false, false},
		{fault.ErrInvalidHash, true, false, false, false},
		{fault.ErrInvalidKeyLength, false, true, false, false},
		{fault.ErrInvalidMessageLength, false, true, false, false},
		{fault.ErrMissingMessage, false, false, true, false},
		{fault.ErrMissingStateFile, false, false, true, false},
		{fault.ErrPeerDiscoveryFailed, false, false, false, true},
		{fault.ErrSequenceOverrun, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}
