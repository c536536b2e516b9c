// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available, so getenv can supply items such as
// the bootstrap hosts from the environment.  The file must return a
// table whose keys match the gluamapper tags of the target structure.
package configuration
