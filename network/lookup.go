// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package network

import (
	"net"

	"github.com/miekg/dns"

	"github.com/bitmark-inc/logger"
)

const (
	resolverConfigFile = "/etc/resolv.conf"
	maximumNameServers = 3 // as resolv.conf(5)
)

// Lookuper - interface to resolve a bootstrap host
type Lookuper interface {
	Lookup(host string) ([]net.IP, error)
}

// LookupFunc - adapt a function to a Lookuper
type LookupFunc func(host string) ([]net.IP, error)

// Lookup - call the function
func (f LookupFunc) Lookup(host string) ([]net.IP, error) {
	return f(host)
}

type lookuper struct {
	log *logger.L
}

// NewLookuper - query the name servers from resolv.conf directly,
// falling back to the system resolver
func NewLookuper(log *logger.L) Lookuper {
	return &lookuper{
		log: log,
	}
}

// Lookup - A and AAAA records for host
func (l *lookuper) Lookup(host string) ([]net.IP, error) {
	log := l.log

	if ip := net.ParseIP(host); nil != ip {
		return []net.IP{ip}, nil
	}

	conf, err := dns.ClientConfigFromFile(resolverConfigFile)
	if nil != err {
		log.Warnf("reading %s error: %s", resolverConfigFile, err)
		return net.LookupIP(host)
	}

	servers := conf.Servers
	if len(servers) > maximumNameServers {
		servers = servers[:maximumNameServers]
	}

	for _, server := range servers {
		s := net.JoinHostPort(server, conf.Port)
		ips := query(log, s, host)
		if 0 != len(ips) {
			log.Infof("host: %q  resolved by: %q  addresses: %v", host, s, ips)
			return ips, nil
		}
	}

	log.Debugf("host: %q  no name server answered, trying system resolver", host)
	return net.LookupIP(host)
}

func query(log *logger.L, server string, host string) []net.IP {
	c := dns.Client{}
	ips := []net.IP{}

	for _, t := range []uint16{dns.TypeA, dns.TypeAAAA} {
		msg := dns.Msg{}
		msg.SetQuestion(dns.Fqdn(host), t)

		r, _, err := c.Exchange(&msg, server)
		if nil != err {
			log.Debugf("exchange with dns server %q error: %s", server, err)
			continue
		}

		for _, rr := range r.Answer {
			switch a := rr.(type) {
			case *dns.A:
				ips = append(ips, a.A)
			case *dns.AAAA:
				ips = append(ips, a.AAAA)
			}
		}
	}
	return ips
}
