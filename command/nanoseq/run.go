// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nanoseq/fault"
	"github.com/bitmark-inc/nanoseq/network"
	"github.com/bitmark-inc/nanoseq/orchestrator"
	"github.com/bitmark-inc/nanoseq/proof"
	"github.com/bitmark-inc/nanoseq/prompt"
	"github.com/bitmark-inc/nanoseq/publisher"
	"github.com/bitmark-inc/nanoseq/sequence"
	"github.com/bitmark-inc/nanoseq/state"
)

func runSequence(c *cli.Context) error {
	m, ok := c.App.Metadata["config"].(*metadata)
	if !ok {
		return fault.ErrMissingStateFile
	}

	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("configuration: %+v", m.config)

	s, err := state.Load(m.stateFile, logger.New("state"))
	if nil != err {
		return err
	}

	signer, err := sequence.NewWorkSigner(logger.New("proof"), m.config.Work.Threads, proof.Threshold)
	if nil != err {
		return err
	}

	networkLog := logger.New("network")
	connect := func() (publisher.Session, error) {
		session, err := network.Open(networkLog, &m.config.Network, network.NewLookuper(networkLog))
		if nil != err {
			return nil, err
		}
		return session, nil
	}
	p := publisher.New(logger.New("publisher"), connect, m.config.Network.PublishRate, m.w)

	o := orchestrator.New(logger.New("orchestrator"), s, prompt.NewConsole(), signer, p)

	err = o.Run()
	if fault.ErrPeerDiscoveryFailed == err {
		fmt.Fprintf(m.e, "only one peer found, nothing was sent; run again to retry\n")
	}
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "published %d messages from: %s\n", len(s.Messages), s.Path())
	return nil
}
