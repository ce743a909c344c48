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

// Package plainterm implements the Terminal interface for the monitor. It
// works with any io.Reader and io.Writer and so is suitable for piped input
// and for testing.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/emu6502/emu6502/debugger/terminal"
	"github.com/emu6502/emu6502/debugger/terminal/easyterm"
)

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it is in when it is created.
type PlainTerminal struct {
	input       *bufio.Scanner
	interactive bool

	crit     sync.Mutex
	output   io.Writer
	silenced bool
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type. The terminal is interactive if the input is a file
// connected to a terminal. Prompts are only written for interactive
// terminals.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	pt := &PlainTerminal{
		input:  bufio.NewScanner(input),
		output: output,
	}
	if f, ok := input.(*os.File); ok {
		pt.interactive = easyterm.IsTerminal(f)
	}
	return pt
}

// Initialise implements the terminal.Terminal interface.
func (pt *PlainTerminal) Initialise() error {
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (pt *PlainTerminal) CleanUp() {
}

// RegisterTabCompletion implements the terminal.Terminal interface.
func (pt *PlainTerminal) RegisterTabCompletion(terminal.TabCompletion) {
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.interactive
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.crit.Lock()
	defer pt.crit.Unlock()
	pt.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	pt.crit.Lock()
	defer pt.crit.Unlock()

	if pt.silenced && style != terminal.StyleError {
		return
	}

	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}

	fmt.Fprintln(pt.output, strings.TrimRight(s, "\n"))
}

// TermRead implements the terminal.Input interface. The io.EOF error is
// returned when the input has been exhausted.
func (pt *PlainTerminal) TermRead(prompt string) (string, error) {
	if pt.interactive {
		pt.crit.Lock()
		fmt.Fprint(pt.output, prompt)
		pt.crit.Unlock()
	}

	if !pt.input.Scan() {
		if err := pt.input.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return pt.input.Text(), nil
}
