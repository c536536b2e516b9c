// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nanoseq/configuration"
	"github.com/bitmark-inc/nanoseq/network"
)

// basic defaults, relative paths are from the directory of the
// configuration file, or of the state file if there is none
const (
	defaultLogDirectory = "."
	defaultLogFile      = "nanoseq.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// WorkConfiguration - proof-of-work settings
type WorkConfiguration struct {
	Threads int `gluamapper:"threads" json:"threads"`
}

// Configuration - everything the configuration file may set
type Configuration struct {
	Network network.Configuration `gluamapper:"network" json:"network"`
	Work    WorkConfiguration     `gluamapper:"work" json:"work"`
	Logging logger.Configuration  `gluamapper:"logging" json:"logging"`
}

// will read, decode and verify the configuration; an empty file name
// gives the defaults
func getConfiguration(configurationFileName string, stateFileName string, verbose bool) (*Configuration, error) {

	stateFileName, err := filepath.Abs(filepath.Clean(stateFileName))
	if nil != err {
		return nil, err
	}
	baseDirectory := filepath.Dir(stateFileName)

	options := &Configuration{
		Network: network.Configuration{
			Listen:    network.DefaultPort,
			Bootstrap: []string{network.DefaultBootstrap},
		},
		Work: WorkConfiguration{
			Threads: runtime.NumCPU(),
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}

	if "" != configurationFileName {
		configurationFileName, err = filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		baseDirectory = filepath.Dir(configurationFileName)

		if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
			return nil, err
		}
	}

	if options.Work.Threads <= 0 {
		options.Work.Threads = runtime.NumCPU()
	}
	if options.Network.PublishRate < 0 {
		options.Network.PublishRate = 0
	}
	if 0 == len(options.Network.Bootstrap) {
		options.Network.Bootstrap = []string{network.DefaultBootstrap}
	}
	if options.Network.Listen < 0 || options.Network.Listen > 65535 {
		return nil, fmt.Errorf("listen: %d is not a valid port", options.Network.Listen)
	}

	// log file must be a plain name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	options.Logging.Directory = configuration.EnsureAbsolute(baseDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	if verbose {
		options.Logging.Console = true
	}

	return options, nil
}
