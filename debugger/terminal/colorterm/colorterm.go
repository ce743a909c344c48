// This file is part of Emu6502.
//
// Emu6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Emu6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Emu6502.  If not, see <https://www.gnu.org/licenses/>.

// Package colorterm implements the Terminal interface for the monitor. It
// supports colour output, a command history and simple line editing. The
// input must be a real terminal, which is put into cbreak mode for the
// duration of the session.
package colorterm

import (
	"bufio"
	"os"
	"sync"

	"github.com/emu6502/emu6502/debugger/terminal"
	"github.com/emu6502/emu6502/debugger/terminal/easyterm"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.Terminal

	in     *os.File
	out    *os.File
	reader *bufio.Reader

	tabCompletion terminal.TabCompletion
	history       []string

	// output is written from the monitor goroutine and from the goroutine
	// that reports halts
	crit     sync.Mutex
	silenced bool
}

// NewColorTerminal is the preferred method of initialisation for the
// ColorTerminal type.
func NewColorTerminal(in, out *os.File) *ColorTerminal {
	return &ColorTerminal{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
	}
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	if err := ct.Terminal.Initialise(ct.in, ct.out); err != nil {
		return err
	}
	return ct.CBreakMode()
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {
	ct.print("\r")
	_ = ct.Flush()
	_ = ct.CanonicalMode()
}

// RegisterTabCompletion implements the terminal.Terminal interface.
func (ct *ColorTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	ct.tabCompletion = tc
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.crit.Lock()
	defer ct.crit.Unlock()
	ct.silenced = silenced
}
