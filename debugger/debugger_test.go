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

package debugger_test

import (
	"context"
	"strings"
	"testing"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/debugger"
	"github.com/emu6502/emu6502/debugger/govern"
	"github.com/emu6502/emu6502/hardware/cpu"
	"github.com/emu6502/emu6502/hardware/memory"
	"github.com/emu6502/emu6502/hardware/memory/devices"
	"github.com/emu6502/emu6502/test"
)

// the test program:
//
//	$0600: LDA #$01
//	$0602: STA $20
//	$0604: INX
//	$0605: JMP $0602
var program = []uint8{0xa9, 0x01, 0x85, 0x20, 0xe8, 0x4c, 0x02, 0x06}

type harness struct {
	mc    *cpu.CPU
	dbg   *debugger.Debugger
	gov   *govern.Governor
	halts <-chan struct{}
	done  chan error
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	mem := memory.NewController(nil)
	ram, err := devices.NewRAM("ram", 0x0000, 0x8000)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mem.Register(ram))
	for i, b := range program {
		test.DemandSuccess(t, mem.Write8(0x0600+uint16(i), b))
	}

	mc := cpu.NewCPU(mem)
	mc.LoadPC(0x0600)

	gov := govern.NewGovernor(govern.ModeDebugger)
	h := &harness{
		mc:    mc,
		dbg:   debugger.NewDebugger(mc, mem, gov),
		gov:   gov,
		halts: gov.Halts(),
		done:  make(chan error, 1),
	}

	return h
}

// start the emulation and wait for the governor to announce that it is
// paused.
func (h *harness) start(t *testing.T) {
	t.Helper()
	go func() {
		h.done <- h.gov.Attach(context.Background(), h.mc)
	}()
	<-h.halts
	t.Cleanup(func() {
		h.dbg.Quit()
		<-h.done
	})
}

func TestRegisters(t *testing.T) {
	h := newHarness(t)

	// the debugger works before the emulation has started
	r := h.dbg.Registers()
	test.ExpectEquality(t, r.String(), "PC=$0600 A=$00 X=$00 Y=$00 SP=$fd SR=sv-bdIzc CLK=0")

	v, ok := r.Register("sp")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 0xfd)
	_, ok = r.Register("Q")
	test.ExpectFailure(t, ok)

	test.ExpectSuccess(t, h.dbg.SetRegister("X", 0x10))
	err := h.dbg.SetRegister("Q", 0x10)
	test.ExpectSuccess(t, curated.Is(err, debugger.UnknownRegister))

	h.start(t)

	h.dbg.Step(2)
	<-h.halts
	r = h.dbg.Registers()
	test.ExpectEquality(t, r.PC, 0x0604)
	test.ExpectEquality(t, r.A, 0x01)
	test.ExpectEquality(t, r.X, 0x10)
	test.ExpectEquality(t, r.Instructions, 2)
	test.ExpectEquality(t, r.Clocks, 5)
}

func TestBreakpoints(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	test.ExpectSuccess(t, h.dbg.AddBreak(0x0604))
	test.ExpectFailure(t, h.dbg.AddBreak(0x0604))
	test.ExpectSuccess(t, h.dbg.AddBreak(0x0700))
	test.ExpectEquality(t, len(h.dbg.Breaks()), 2)
	test.ExpectEquality(t, h.dbg.Breaks()[0], 0x0604)

	h.dbg.Run()
	<-h.halts
	test.ExpectEquality(t, h.gov.Reason(), "break $0604")
	r := h.dbg.Registers()
	test.ExpectEquality(t, r.PC, 0x0604)
	test.ExpectEquality(t, r.X, 0x00)

	// running from a breakpoint does not trigger the same breakpoint
	h.dbg.Run()
	<-h.halts
	r = h.dbg.Registers()
	test.ExpectEquality(t, r.PC, 0x0604)
	test.ExpectEquality(t, r.X, 0x01)

	test.ExpectSuccess(t, h.dbg.RemoveBreak(0x0604))
	test.ExpectFailure(t, h.dbg.RemoveBreak(0x0604))
	test.ExpectEquality(t, len(h.dbg.Breaks()), 1)
}

func TestWatches(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	test.ExpectSuccess(t, h.dbg.AddWatch(0x0020))
	test.ExpectFailure(t, h.dbg.AddWatch(0x0020))
	test.ExpectEquality(t, len(h.dbg.Watches()), 1)

	h.dbg.Run()
	<-h.halts

	// the emulation pauses after the instruction that accessed the address
	test.ExpectSuccess(t, strings.HasPrefix(h.gov.Reason(), "watch write 0x0020"))
	test.ExpectEquality(t, h.dbg.Registers().PC, 0x0604)

	// peek and poke do not trigger the watch
	_, err := h.dbg.Poke(0x0020, 0x99)
	test.ExpectSuccess(t, err)
	ai, err := h.dbg.Peek(0x0020)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ai.Data, 0x99)
	select {
	case <-h.halts:
		t.Errorf("unexpected halt after peek/poke")
	default:
	}

	test.ExpectSuccess(t, h.dbg.Clear(0x0020))
	test.ExpectFailure(t, h.dbg.Clear(0x0020))
	test.ExpectEquality(t, len(h.dbg.Watches()), 0)
}

func TestMemory(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	d := h.dbg.PeekRange(0x0600, 4)
	test.ExpectEquality(t, len(d), 4)
	test.ExpectEquality(t, d[0], 0xa9)

	// range is truncated at the end of the RAM
	d = h.dbg.PeekRange(0x7ffe, 4)
	test.ExpectEquality(t, len(d), 2)

	_, err := h.dbg.Peek(0x8000)
	test.ExpectFailure(t, err)

	e := h.dbg.Disassemble(0x0600, 4)
	test.ExpectEquality(t, len(e), 4)
	test.ExpectEquality(t, e[3].String(), "$0605: 4c 02 06  JMP $0602")

	w := &test.CompareWriter{}
	h.dbg.Devices(w)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "ram"))
}

func TestHaltHook(t *testing.T) {
	h := newHarness(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type halt struct {
		reason string
		regs   debugger.Registers
	}
	ch := make(chan halt, 10)
	h.dbg.AddHaltHook(ctx, func(reason string, regs debugger.Registers) {
		ch <- halt{reason: reason, regs: regs}
	})

	h.start(t)
	<-ch

	h.dbg.Step(1)
	hl := <-ch
	test.ExpectEquality(t, hl.reason, "step")
	test.ExpectEquality(t, hl.regs.PC, 0x0602)
}
