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

package debugger

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/debugger/dbgmem"
	"github.com/emu6502/emu6502/debugger/govern"
	"github.com/emu6502/emu6502/disassembly"
	"github.com/emu6502/emu6502/hardware/cpu"
	"github.com/emu6502/emu6502/hardware/memory"
	"github.com/emu6502/emu6502/logger"
)

// UnknownRegister is returned by SetRegister() for an unrecognised register
// name.
const UnknownRegister = "debugger: unknown register %s"

// Debugger is the access point for inspecting and controlling the emulation.
type Debugger struct {
	cpu *cpu.CPU
	mem *memory.Controller
	gov *govern.Governor

	// peek and poke go directly to the controller and do not trigger the
	// watches
	dbgmem dbgmem.DbgMem

	// sits between the CPU and the memory controller
	watcher *dbgmem.Watcher

	// execution breakpoints. only accessed at an instruction boundary
	breaks map[uint16]bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The CPU must not be running.
func NewDebugger(mc *cpu.CPU, mem *memory.Controller, gov *govern.Governor) *Debugger {
	dbg := &Debugger{
		cpu:    mc,
		mem:    mem,
		gov:    gov,
		dbgmem: dbgmem.DbgMem{Mem: mem},
		breaks: make(map[uint16]bool),
	}

	dbg.watcher = dbgmem.NewWatcher(mem, dbg.watchHit)
	mc.Plumb(dbg.watcher)
	gov.SetCheck(dbg.check)

	return dbg
}

// Governor returns the governor controlling the emulation.
func (dbg *Debugger) Governor() *govern.Governor {
	return dbg.gov
}

// check is called by the governor at every instruction boundary.
func (dbg *Debugger) check(mc *cpu.CPU) string {
	pc := mc.PC.Address()
	if dbg.breaks[pc] {
		logger.Logf(logger.Allow, "debugger", "break at $%04x", pc)
		return fmt.Sprintf("break $%04x", pc)
	}
	return ""
}

// watchHit is called by the watcher from the goroutine running the CPU. The
// pause takes effect at the next instruction boundary.
func (dbg *Debugger) watchHit(a dbgmem.Access) {
	logger.Logf(logger.Allow, "debugger", "watch: %s", a)
	dbg.gov.Pause("watch " + a.String())
}

// Registers returns a copy of the CPU registers.
func (dbg *Debugger) Registers() Registers {
	var r Registers
	dbg.gov.Sync(func() {
		r = copyRegisters(dbg.cpu)
	})
	return r
}

// SetRegister changes the value of the named register. See
// Registers.Register() for the list of names.
func (dbg *Debugger) SetRegister(name string, value uint16) error {
	var err error
	dbg.gov.Sync(func() {
		switch name {
		case "PC", "pc":
			dbg.cpu.PC.Load(value)
		case "A", "a":
			dbg.cpu.A.Load(uint8(value))
		case "X", "x":
			dbg.cpu.X.Load(uint8(value))
		case "Y", "y":
			dbg.cpu.Y.Load(uint8(value))
		case "SP", "sp":
			dbg.cpu.SP.Load(uint8(value))
		case "SR", "sr", "P", "p":
			dbg.cpu.Status.Load(uint8(value))
		default:
			err = curated.Errorf(UnknownRegister, name)
		}
	})
	return err
}

// Peek returns the value at the address. Watches are not triggered.
func (dbg *Debugger) Peek(address any) (*dbgmem.AddressInfo, error) {
	var ai *dbgmem.AddressInfo
	var err error
	dbg.gov.Sync(func() {
		ai, err = dbg.dbgmem.Peek(address)
	})
	return ai, err
}

// Poke writes the value to the address. Watches are not triggered.
func (dbg *Debugger) Poke(address any, data uint8) (*dbgmem.AddressInfo, error) {
	var ai *dbgmem.AddressInfo
	var err error
	dbg.gov.Sync(func() {
		ai, err = dbg.dbgmem.Poke(address, data)
	})
	return ai, err
}

// PeekRange returns up to length bytes starting at the address. The range
// is truncated at the first unmapped address.
func (dbg *Debugger) PeekRange(address uint16, length int) []uint8 {
	var d []uint8
	dbg.gov.Sync(func() {
		d = dbg.dbgmem.PeekRange(address, length)
	})
	return d
}

// Disassemble count instructions starting at the address.
func (dbg *Debugger) Disassemble(address uint16, count int) []disassembly.Entry {
	var e []disassembly.Entry
	dbg.gov.Sync(func() {
		e = disassembly.Disassemble(dbg.mem, address, count)
	})
	return e
}

// Dump writes a hex listing of the memory between the two addresses.
func (dbg *Debugger) Dump(w io.Writer, from uint16, to uint16) error {
	var err error
	dbg.gov.Sync(func() {
		err = dbg.mem.Dump(w, from, to)
	})
	return err
}

// DumpAll writes a hex listing of every mapped part of the address space.
func (dbg *Debugger) DumpAll(w io.Writer) error {
	var err error
	dbg.gov.Sync(func() {
		for _, r := range dbg.mem.MappedRanges() {
			fmt.Fprintf(w, "%s\n", r)
			if err = dbg.mem.Dump(w, r.Origin, r.Memtop); err != nil {
				return
			}
		}
	})
	return err
}

// Devices writes a summary of the devices in the address space.
func (dbg *Debugger) Devices(w io.Writer) {
	dbg.gov.Sync(func() {
		dbg.mem.Summary(w)
	})
}

// AddBreak adds an execution breakpoint. Returns false if the breakpoint
// already exists.
func (dbg *Debugger) AddBreak(address uint16) bool {
	var ok bool
	dbg.gov.Sync(func() {
		ok = !dbg.breaks[address]
		dbg.breaks[address] = true
	})
	return ok
}

// RemoveBreak removes an execution breakpoint. Returns false if there was no
// breakpoint at the address.
func (dbg *Debugger) RemoveBreak(address uint16) bool {
	var ok bool
	dbg.gov.Sync(func() {
		ok = dbg.breaks[address]
		delete(dbg.breaks, address)
	})
	return ok
}

// Breaks returns the addresses of the execution breakpoints in order.
func (dbg *Debugger) Breaks() []uint16 {
	var l []uint16
	dbg.gov.Sync(func() {
		for a := range dbg.breaks {
			l = append(l, a)
		}
	})
	slices.Sort(l)
	return l
}

// AddWatch adds a memory watch. The emulation will pause after any
// instruction that reads from or writes to the address. Returns false if the
// watch already exists.
func (dbg *Debugger) AddWatch(address uint16) bool {
	var ok bool
	dbg.gov.Sync(func() {
		ok = dbg.watcher.Add(address)
	})
	return ok
}

// RemoveWatch removes a memory watch. Returns false if there was no watch at
// the address.
func (dbg *Debugger) RemoveWatch(address uint16) bool {
	var ok bool
	dbg.gov.Sync(func() {
		ok = dbg.watcher.Remove(address)
	})
	return ok
}

// Watches returns the watched addresses in order.
func (dbg *Debugger) Watches() []uint16 {
	var l []uint16
	dbg.gov.Sync(func() {
		l = dbg.watcher.List()
	})
	return l
}

// Clear removes any breakpoint or watch at the address. Returns false if
// there was nothing to remove.
func (dbg *Debugger) Clear(address uint16) bool {
	b := dbg.RemoveBreak(address)
	w := dbg.RemoveWatch(address)
	return b || w
}

// Step executes n instructions and then pauses.
func (dbg *Debugger) Step(n int) {
	dbg.gov.Step(n)
}

// Run the emulation until it is paused.
func (dbg *Debugger) Run() {
	dbg.gov.Run()
}

// Pause the emulation at the next instruction boundary.
func (dbg *Debugger) Pause() {
	dbg.gov.Pause("pause")
}

// Quit ends the emulation.
func (dbg *Debugger) Quit() {
	dbg.gov.Quit()
}

// State returns the state of the emulation.
func (dbg *Debugger) State() govern.State {
	return dbg.gov.State()
}

// AddHaltHook arranges for the function to be called whenever the emulation
// halts, with the reason for the halt and the registers at that point. The
// function is called from a new goroutine which ends when the context is
// cancelled.
func (dbg *Debugger) AddHaltHook(ctx context.Context, hook func(reason string, regs Registers)) {
	halts := dbg.gov.Halts()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-halts:
				hook(dbg.gov.Reason(), dbg.Registers())
			}
		}
	}()
}
