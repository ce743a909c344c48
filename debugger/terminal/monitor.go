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

package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/debugger"
	"github.com/emu6502/emu6502/debugger/govern"
	"github.com/emu6502/emu6502/debugger/terminal/commandline"
	"github.com/emu6502/emu6502/logger"
)

// Monitor is the interactive command line interface to the debugger.
type Monitor struct {
	dbg  *debugger.Debugger
	term Terminal

	keywords commandline.Keywords

	// used when naming files created by the DUMP command
	machineName string

	// signalled by the halt hook after the halt has been reported
	stopped chan struct{}
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(dbg *debugger.Debugger, term Terminal, machineName string) *Monitor {
	m := &Monitor{
		dbg:         dbg,
		term:        term,
		machineName: machineName,
		stopped:     make(chan struct{}, 1),
	}

	words := make([]string, 0, len(commands))
	for _, c := range commands {
		words = append(words, c.name)
	}
	m.keywords = commandline.NewKeywords(words...)

	return m
}

type input struct {
	line string
	err  error
}

// read the next line of input. the terminal read happens in a goroutine so
// that the context can interrupt the wait.
func (m *Monitor) read(ctx context.Context, prompt string) (string, error) {
	ch := make(chan input, 1)
	go func() {
		s, err := m.term.TermRead(prompt)
		ch <- input{line: s, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case in := <-ch:
		return in.line, in.err
	}
}

func (m *Monitor) prompt() string {
	r := m.dbg.Registers()
	return fmt.Sprintf("[%s $%04x] > ", strings.ToLower(m.dbg.State().String()), r.PC)
}

// Run the monitor until the emulation ends, the user quits or the context is
// cancelled.
//
// When the input is exhausted the monitor returns. If the emulation is not
// running at that point it is ended because there is no longer any way of
// resuming it.
func (m *Monitor) Run(ctx context.Context) error {
	if err := m.term.Initialise(); err != nil {
		return err
	}
	defer m.term.CleanUp()

	m.term.RegisterTabCompletion(commandline.NewTabCompletion(m.keywords))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	m.dbg.AddHaltHook(ctx, m.halted)

	for {
		line, err := m.read(ctx, m.prompt())
		if err != nil {
			switch {
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				return nil
			case errors.Is(err, io.EOF):
				if m.dbg.State() != govern.Running {
					m.dbg.Quit()
				}
				return nil
			case curated.Is(err, UserInterrupt):
				if m.dbg.State() == govern.Running {
					m.dbg.Pause()
					continue
				}
				m.dbg.Quit()
				return nil
			case curated.Is(err, UserAbort):
				m.dbg.Quit()
				return nil
			}
			return err
		}

		if quit := m.process(ctx, line); quit {
			return nil
		}

		if m.dbg.State() == govern.Ending {
			return nil
		}
	}
}

// halted is the halt hook. reports the reason for the halt along with the
// registers and the next instruction.
func (m *Monitor) halted(reason string, regs debugger.Registers) {
	switch reason {
	case "step":
	case "":
		m.term.TermPrintLine(StyleHalt, "paused")
	default:
		m.term.TermPrintLine(StyleHalt, fmt.Sprintf("halted: %s", reason))
	}
	m.term.TermPrintLine(StyleCPUStep, regs.String())
	for _, e := range m.dbg.Disassemble(regs.PC, 1) {
		m.term.TermPrintLine(StyleCPUStep, e.String())
	}

	select {
	case m.stopped <- struct{}{}:
	default:
	}
}

// waitStopped blocks until the halt hook reports a halt.
func (m *Monitor) waitStopped(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-m.stopped:
	}
}

// process a single line of input. returns true if the monitor should end.
func (m *Monitor) process(ctx context.Context, line string) bool {
	tk := commandline.TokeniseInput(line)
	word, ok := tk.Get()
	if !ok {
		return false
	}

	keyword, err := m.keywords.Resolve(word)
	if err != nil {
		m.term.TermPrintLine(StyleError, err.Error())
		return false
	}

	logger.Logf(logger.Allow, "monitor", "%s", tk)

	for _, c := range commands {
		if c.name != keyword {
			continue
		}
		if tk.Remaining() > c.maxArgs {
			m.term.TermPrintLine(StyleError, fmt.Sprintf("too many arguments for %s", keyword))
			m.term.TermPrintLine(StyleHelp, c.usage)
			return false
		}
		quit, err := c.fn(m, ctx, tk)
		if err != nil {
			m.term.TermPrintLine(StyleError, err.Error())
		}
		return quit
	}

	return false
}
