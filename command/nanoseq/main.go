// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nanoseq/fault"
)

type metadata struct {
	stateFile string
	config    *Configuration
	verbose   bool
	e         io.Writer
	w         io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "nanoseq"
	app.Usage = "build and publish a two account block sequence"
	app.UsageText = "nanoseq [global options] STATE-FILE\n   nanoseq [global options] command STATE-FILE"
	app.Version = version
	app.HideVersion = true
	app.Metadata = map[string]interface{}{}

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " copy log output to the console",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " optional Lua configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "status",
			Usage:     "summarise a state file without changing it",
			ArgsUsage: "STATE-FILE",
			Action:    runStatus,
		},
		{
			Name:  "version",
			Usage: "display nanoseq version",
			Action: func(c *cli.Context) error {
				_, err := c.App.Writer.Write([]byte(version + "\n"))
				return err
			},
		},
	}
	app.Action = runSequence

	// read the configuration and start logging
	app.Before = func(c *cli.Context) error {

		command := c.Args().Get(0)
		stateFile := command
		switch command {
		case "version", "help", "h":
			return nil
		case "status":
			stateFile = c.Args().Get(1)
		}

		if "" == stateFile {
			return fault.ErrMissingStateFile
		}

		verbose := c.GlobalBool("verbose")
		configuration, err := getConfiguration(c.GlobalString("config-file"), stateFile, verbose)
		if nil != err {
			return err
		}

		if err := logger.Initialise(configuration.Logging); nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			stateFile: stateFile,
			config:    configuration,
			verbose:   verbose,
			e:         c.App.ErrWriter,
			w:         c.App.Writer,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
