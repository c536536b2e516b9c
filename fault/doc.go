// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Each error is a single typed instance so callers compare with ==
// and test the class with the IsErrX functions instead of matching
// strings.  Invalid and length errors come from bad input, not found
// errors from incomplete state and process errors from a run that
// could not finish.
package fault
