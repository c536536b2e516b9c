// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nanoseq/configuration"
	"github.com/bitmark-inc/nanoseq/fault"
)

type network struct {
	Listen    int      `gluamapper:"listen"`
	Bootstrap []string `gluamapper:"bootstrap"`
}

type options struct {
	Name    string  `gluamapper:"name"`
	Network network `gluamapper:"network"`
	Threads int     `gluamapper:"threads"`
}

func writeFile(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	file := filepath.Join(dir, "test.conf")
	if err := ioutil.WriteFile(file, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return file, func() { _ = os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	file, cleanup := writeFile(t, `
local M = {}
M.name = arg[0]
M.network = {
    listen = 17075,
    bootstrap = { "127.0.0.1:7075", "peering.example.org:7075" },
}
return M
`)
	defer cleanup()

	o := &options{
		Threads: 4,
	}
	err := configuration.ParseConfigurationFile(file, o)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, file, o.Name, "arg[0]")
	assert.Equal(t, 17075, o.Network.Listen, "listen")
	assert.Equal(t, []string{"127.0.0.1:7075", "peering.example.org:7075"}, o.Network.Bootstrap, "bootstrap")
	assert.Equal(t, 4, o.Threads, "default was overwritten")
}

func TestParseConfigurationFileNotTable(t *testing.T) {
	file, cleanup := writeFile(t, `return "nothing"`)
	defer cleanup()

	err := configuration.ParseConfigurationFile(file, &options{})
	assert.Equal(t, fault.ErrInvalidConfiguration, err, "wrong error")
}

func TestParseConfigurationFileSyntax(t *testing.T) {
	file, cleanup := writeFile(t, `return {`)
	defer cleanup()

	err := configuration.ParseConfigurationFile(file, &options{})
	assert.NotNil(t, err, "syntax error not detected")
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/var/lib/nanoseq/log", configuration.EnsureAbsolute("/var/lib/nanoseq", "log"), "relative")
	assert.Equal(t, "/tmp/log", configuration.EnsureAbsolute("/var/lib/nanoseq", "/tmp/../tmp/log"), "absolute")
}
