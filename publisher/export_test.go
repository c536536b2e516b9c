// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publisher

import "time"

// SetWait - shorten the peer wait for tests
func (p *Publisher) SetWait(wait time.Duration) {
	p.wait = wait
}
