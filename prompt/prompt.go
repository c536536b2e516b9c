// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prompt

import (
	"fmt"
	"io"
	"os"

	"github.com/manifoldco/promptui"
)

// Console - operator prompts on a terminal
//
// answers are returned as typed, validation belongs to the caller so
// that a bad answer stops the run instead of asking again
type Console struct {
	in  io.ReadCloser
	out io.WriteCloser
}

// NewConsole - prompts on the process's stdin and stdout
func NewConsole() *Console {
	return &Console{
		in:  os.Stdin,
		out: os.Stdout,
	}
}

// MessageCount - number of messages to build
func (c *Console) MessageCount() (string, error) {
	return c.ask("Message count (odd, minimum 3)")
}

// PendingHash - hash of the block that funded account 0
func (c *Console) PendingHash(address string) (string, error) {
	fmt.Fprint(c.out, pendingInstructions(address))
	return c.ask("Pending block hash")
}

// FinalRecipient - address receiving the final send
func (c *Console) FinalRecipient() (string, error) {
	return c.ask("Final recipient address")
}

func (c *Console) ask(label string) (string, error) {
	p := promptui.Prompt{
		Label:  label,
		Stdin:  c.in,
		Stdout: c.out,
	}
	return p.Run()
}

func pendingInstructions(address string) string {
	return fmt.Sprintf("Send a small amount to:\n\n  %s\n\nthen enter the hash of that send block.\n", address)
}
