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
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/debugger/dbgmem"
	"github.com/emu6502/emu6502/debugger/govern"
	"github.com/emu6502/emu6502/debugger/terminal/commandline"
	"github.com/emu6502/emu6502/logger"
	"github.com/emu6502/emu6502/paths"
)

// Sentinel errors returned by the monitor commands.
const (
	MissingArgument = "%s requires %s"
	BadArgument     = "invalid %s (%s)"
	NotStopped      = "emulation is %s"
)

// default argument values.
const (
	defaultMemLength = 64
	defaultListCount = 10
	defaultLogCount  = 10
)

type command struct {
	name    string
	maxArgs int
	usage   string
	help    string
	fn      func(m *Monitor, ctx context.Context, tk *commandline.Tokens) (bool, error)
}

// the table is populated in init() because HELP refers to it.
var commands []command

func init() {
	commands = []command{
		{"STEP", 1, "STEP [n]", "execute n instructions (default 1) and then pause", (*Monitor).step},
		{"RUN", 0, "RUN", "run the emulation until it is paused", (*Monitor).run},
		{"HALT", 0, "HALT", "pause the emulation", (*Monitor).halt},
		{"REGS", 0, "REGS", "show the CPU registers", (*Monitor).regs},
		{"SET", 2, "SET reg value", "change the value of a register (PC, A, X, Y, SP or SR)", (*Monitor).set},
		{"MEM", 2, "MEM addr [len]", "hex dump of len bytes of memory (default 64)", (*Monitor).mem},
		{"POKE", 2, "POKE addr value", "write the value to memory", (*Monitor).poke},
		{"LIST", 2, "LIST [addr] [n]", "disassemble n instructions (default 10) from addr (default PC)", (*Monitor).list},
		{"BREAK", 1, "BREAK [addr]", "add an execution breakpoint. lists breakpoints if no address is given", (*Monitor).brk},
		{"WATCH", 1, "WATCH [addr]", "pause after any access to the address. lists watches if no address is given", (*Monitor).watch},
		{"CLEAR", 1, "CLEAR addr", "remove any breakpoint and watch at the address", (*Monitor).clear},
		{"DEVICES", 0, "DEVICES", "list the devices in the address space", (*Monitor).devices},
		{"DUMP", 1, "DUMP [file]", "write all mapped memory to a file", (*Monitor).dump},
		{"LOG", 1, "LOG [n]", "show the n most recent log entries (default 10)", (*Monitor).log},
		{"HELP", 1, "HELP [command]", "list commands or show help for a command", (*Monitor).help},
		{"QUIT", 0, "QUIT", "end the emulation", (*Monitor).quit},
	}
}

func address(tk *commandline.Tokens, cmd string) (uint16, error) {
	s, ok := tk.Get()
	if !ok {
		return 0, curated.Errorf(MissingArgument, cmd, "an address")
	}
	return dbgmem.ParseAddress(s)
}

// value parses the next token as an 8bit value.
func value(tk *commandline.Tokens, cmd string) (uint8, error) {
	s, ok := tk.Get()
	if !ok {
		return 0, curated.Errorf(MissingArgument, cmd, "a value")
	}
	v, err := dbgmem.ParseAddress(s)
	if err != nil || v > 0xff {
		return 0, curated.Errorf(BadArgument, "value", s)
	}
	return uint8(v), nil
}

// count parses the next token as a positive decimal number. the default
// value is returned if there are no more tokens.
func count(tk *commandline.Tokens, def int) (int, error) {
	s, ok := tk.Get()
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, curated.Errorf(BadArgument, "count", s)
	}
	return n, nil
}

func (m *Monitor) step(ctx context.Context, tk *commandline.Tokens) (bool, error) {
	n, err := count(tk, 1)
	if err != nil {
		return false, err
	}

	if st := m.dbg.State(); st != govern.Paused {
		return false, curated.Errorf(NotStopped, strings.ToLower(st.String()))
	}

	// discard any notification from an earlier halt
	select {
	case <-m.stopped:
	default:
	}

	m.dbg.Step(n)
	m.waitStopped(ctx)
	return false, nil
}

func (m *Monitor) run(_ context.Context, _ *commandline.Tokens) (bool, error) {
	if st := m.dbg.State(); st.IsTerminal() {
		return false, curated.Errorf(NotStopped, strings.ToLower(st.String()))
	}
	m.dbg.Run()
	return false, nil
}

func (m *Monitor) halt(_ context.Context, _ *commandline.Tokens) (bool, error) {
	switch m.dbg.State() {
	case govern.Running, govern.Stepping:
		m.dbg.Pause()
	default:
		m.term.TermPrintLine(StyleCPUStep, m.dbg.Registers().String())
	}
	return false, nil
}

func (m *Monitor) regs(_ context.Context, _ *commandline.Tokens) (bool, error) {
	m.term.TermPrintLine(StyleCPUStep, m.dbg.Registers().String())
	return false, nil
}

func (m *Monitor) set(_ context.Context, tk *commandline.Tokens) (bool, error) {
	reg, ok := tk.Get()
	if !ok {
		return false, curated.Errorf(MissingArgument, "SET", "a register")
	}
	s, ok := tk.Get()
	if !ok {
		return false, curated.Errorf(MissingArgument, "SET", "a value")
	}
	v, err := dbgmem.ParseAddress(s)
	if err != nil {
		return false, curated.Errorf(BadArgument, "value", s)
	}
	if err := m.dbg.SetRegister(reg, v); err != nil {
		return false, err
	}
	m.term.TermPrintLine(StyleCPUStep, m.dbg.Registers().String())
	return false, nil
}

func (m *Monitor) mem(_ context.Context, tk *commandline.Tokens) (bool, error) {
	addr, err := address(tk, "MEM")
	if err != nil {
		return false, err
	}
	n, err := count(tk, defaultMemLength)
	if err != nil {
		return false, err
	}

	to := min(int(addr)+n-1, 0xffff)
	s := &strings.Builder{}
	if err := m.dbg.Dump(s, addr, uint16(to)); err != nil {
		return false, err
	}
	if s.Len() == 0 {
		m.term.TermPrintLine(StyleFeedback, "no memory mapped in that range")
		return false, nil
	}
	m.term.TermPrintLine(StyleFeedback, s.String())
	return false, nil
}

func (m *Monitor) poke(_ context.Context, tk *commandline.Tokens) (bool, error) {
	addr, err := address(tk, "POKE")
	if err != nil {
		return false, err
	}
	v, err := value(tk, "POKE")
	if err != nil {
		return false, err
	}
	ai, err := m.dbg.Poke(addr, v)
	if err != nil {
		return false, err
	}
	m.term.TermPrintLine(StyleFeedback, ai.String())
	return false, nil
}

func (m *Monitor) list(_ context.Context, tk *commandline.Tokens) (bool, error) {
	var addr uint16
	if tk.IsEnd() {
		addr = m.dbg.Registers().PC
	} else {
		var err error
		addr, err = address(tk, "LIST")
		if err != nil {
			return false, err
		}
	}

	n, err := count(tk, defaultListCount)
	if err != nil {
		return false, err
	}

	for _, e := range m.dbg.Disassemble(addr, n) {
		m.term.TermPrintLine(StyleCPUStep, e.String())
	}
	return false, nil
}

func listAddresses(l []uint16) string {
	s := make([]string, 0, len(l))
	for _, a := range l {
		s = append(s, fmt.Sprintf("$%04x", a))
	}
	return strings.Join(s, " ")
}

func (m *Monitor) brk(_ context.Context, tk *commandline.Tokens) (bool, error) {
	if tk.IsEnd() {
		l := m.dbg.Breaks()
		if len(l) == 0 {
			m.term.TermPrintLine(StyleFeedback, "no breakpoints")
		} else {
			m.term.TermPrintLine(StyleFeedback, listAddresses(l))
		}
		return false, nil
	}

	addr, err := address(tk, "BREAK")
	if err != nil {
		return false, err
	}
	if m.dbg.AddBreak(addr) {
		m.term.TermPrintLine(StyleFeedback, fmt.Sprintf("breakpoint added at $%04x", addr))
	} else {
		m.term.TermPrintLine(StyleFeedback, fmt.Sprintf("breakpoint already exists at $%04x", addr))
	}
	return false, nil
}

func (m *Monitor) watch(_ context.Context, tk *commandline.Tokens) (bool, error) {
	if tk.IsEnd() {
		l := m.dbg.Watches()
		if len(l) == 0 {
			m.term.TermPrintLine(StyleFeedback, "no watches")
		} else {
			m.term.TermPrintLine(StyleFeedback, listAddresses(l))
		}
		return false, nil
	}

	addr, err := address(tk, "WATCH")
	if err != nil {
		return false, err
	}
	if m.dbg.AddWatch(addr) {
		m.term.TermPrintLine(StyleFeedback, fmt.Sprintf("watch added at $%04x", addr))
	} else {
		m.term.TermPrintLine(StyleFeedback, fmt.Sprintf("watch already exists at $%04x", addr))
	}
	return false, nil
}

func (m *Monitor) clear(_ context.Context, tk *commandline.Tokens) (bool, error) {
	addr, err := address(tk, "CLEAR")
	if err != nil {
		return false, err
	}
	if m.dbg.Clear(addr) {
		m.term.TermPrintLine(StyleFeedback, fmt.Sprintf("cleared $%04x", addr))
	} else {
		m.term.TermPrintLine(StyleFeedback, fmt.Sprintf("nothing to clear at $%04x", addr))
	}
	return false, nil
}

func (m *Monitor) devices(_ context.Context, _ *commandline.Tokens) (bool, error) {
	s := &strings.Builder{}
	m.dbg.Devices(s)
	m.term.TermPrintLine(StyleFeedback, s.String())
	return false, nil
}

func (m *Monitor) dump(_ context.Context, tk *commandline.Tokens) (bool, error) {
	fn, ok := tk.Get()
	if !ok {
		var err error
		fn, err = paths.ResourcePath(paths.UniqueFilename("dump", m.machineName))
		if err != nil {
			return false, err
		}
	}

	f, err := os.Create(fn)
	if err != nil {
		return false, err
	}

	err = m.dbg.DumpAll(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return false, err
	}

	m.term.TermPrintLine(StyleFeedback, fmt.Sprintf("memory dumped to %s", fn))
	return false, nil
}

func (m *Monitor) log(_ context.Context, tk *commandline.Tokens) (bool, error) {
	n, err := count(tk, defaultLogCount)
	if err != nil {
		return false, err
	}
	s := &strings.Builder{}
	logger.Tail(s, n)
	if s.Len() == 0 {
		m.term.TermPrintLine(StyleFeedback, "log is empty")
		return false, nil
	}
	m.term.TermPrintLine(StyleLog, s.String())
	return false, nil
}

func (m *Monitor) help(_ context.Context, tk *commandline.Tokens) (bool, error) {
	if word, ok := tk.Get(); ok {
		keyword, err := m.keywords.Resolve(word)
		if err != nil {
			return false, err
		}
		for _, c := range commands {
			if c.name == keyword {
				m.term.TermPrintLine(StyleHelp, c.usage)
				m.term.TermPrintLine(StyleHelp, c.help)
			}
		}
		return false, nil
	}

	for _, c := range commands {
		m.term.TermPrintLine(StyleHelp, fmt.Sprintf("%-16s %s", c.usage, c.help))
	}
	return false, nil
}

func (m *Monitor) quit(_ context.Context, _ *commandline.Tokens) (bool, error) {
	m.dbg.Quit()
	return true, nil
}
