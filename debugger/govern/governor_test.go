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

package govern_test

import (
	"context"
	"errors"
	"testing"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/debugger/govern"
	"github.com/emu6502/emu6502/hardware/cpu"
	"github.com/emu6502/emu6502/hardware/memory"
	"github.com/emu6502/emu6502/hardware/memory/devices"
	"github.com/emu6502/emu6502/test"
)

// creates a CPU running an endless loop that increments the X register
func newCPU(t *testing.T, program ...uint8) *cpu.CPU {
	t.Helper()

	mem := memory.NewController(nil)
	ram, err := devices.NewRAM("ram", 0x0000, 0x8000)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mem.Register(ram))

	if len(program) == 0 {
		program = []uint8{0xe8, 0x4c, 0x00, 0x06} // INX; JMP $0600
	}
	for i, b := range program {
		test.DemandSuccess(t, mem.Write8(0x0600+uint16(i), b))
	}

	mc := cpu.NewCPU(mem)
	mc.LoadPC(0x0600)
	return mc
}

func TestStepping(t *testing.T) {
	mc := newCPU(t)
	g := govern.NewGovernor(govern.ModeDebugger)
	test.ExpectEquality(t, g.State(), govern.Paused)

	halts := g.Halts()
	done := make(chan error)
	go func() {
		done <- g.Attach(context.Background(), mc)
	}()

	// the governor announces that it is paused before the first instruction
	<-halts
	test.ExpectSuccess(t, g.IsFreshHalt())
	g.AcknowledgeHalt()
	test.ExpectFailure(t, g.IsFreshHalt())

	g.Step(3)
	<-halts
	test.ExpectEquality(t, g.State(), govern.Paused)
	test.ExpectEquality(t, g.Reason(), "step")

	var instructions uint64
	g.Sync(func() {
		instructions = mc.Instructions
	})
	test.ExpectEquality(t, instructions, 3)

	g.Step(2)
	<-halts
	g.Sync(func() {
		instructions = mc.Instructions
	})
	test.ExpectEquality(t, instructions, 5)

	g.Run()
	g.Pause("user")
	<-halts
	test.ExpectEquality(t, g.State(), govern.Paused)

	select {
	case <-g.Ending():
		t.Errorf("ending channel closed before quit")
	default:
	}

	g.Quit()
	test.ExpectSuccess(t, <-done)
	test.ExpectEquality(t, g.State(), govern.Ending)
	<-g.Ending()

	// a second quit is harmless
	g.Quit()

	// state cannot be changed once the emulation is ending
	g.Run()
	test.ExpectEquality(t, g.State(), govern.Ending)
}

func TestCheck(t *testing.T) {
	mc := newCPU(t)
	g := govern.NewGovernor(govern.ModeDebugger)
	g.SetCheck(func(mc *cpu.CPU) string {
		if mc.X.Value() == 10 {
			return "break"
		}
		return ""
	})

	var boundaries int
	g.AddHook(func(_ *cpu.CPU) {
		boundaries++
	})

	halts := g.Halts()
	done := make(chan error)
	go func() {
		done <- g.Attach(context.Background(), mc)
	}()
	<-halts

	g.Run()
	<-halts
	test.ExpectEquality(t, g.Reason(), "break")

	var x uint8
	g.Sync(func() {
		x = mc.X.Value()
	})
	test.ExpectEquality(t, x, 10)

	g.Quit()
	test.ExpectSuccess(t, <-done)
	test.ExpectEquality(t, boundaries > 0, true)
}

func TestHalted(t *testing.T) {
	mc := newCPU(t, 0x4c, 0x00, 0x90) // JMP $9000
	g := govern.NewGovernor(govern.ModeRun)
	test.ExpectEquality(t, g.State(), govern.Running)

	halts := g.Halts()
	err := g.Attach(context.Background(), mc)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidAddress))
	test.ExpectEquality(t, g.State(), govern.Halted)

	select {
	case <-halts:
	default:
		t.Errorf("expected a fresh halt")
	}

	// steps are ignored once halted
	g.Step(1)
	test.ExpectEquality(t, g.State(), govern.Halted)
}

func TestSyncDetached(t *testing.T) {
	g := govern.NewGovernor(govern.ModeDebugger)
	var ran bool
	g.Sync(func() {
		ran = true
	})
	test.ExpectSuccess(t, ran)
}

func TestCancel(t *testing.T) {
	mc := newCPU(t)
	g := govern.NewGovernor(govern.ModeRun)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- g.Attach(ctx, mc)
	}()
	cancel()

	err := <-done
	test.ExpectSuccess(t, err == nil || errors.Is(err, context.Canceled))
}

func TestStateString(t *testing.T) {
	test.ExpectEquality(t, govern.Paused.String(), "Paused")
	test.ExpectEquality(t, govern.Stepping.String(), "Stepping")
	test.ExpectEquality(t, govern.Running.String(), "Running")
	test.ExpectEquality(t, govern.Halted.String(), "Halted")
	test.ExpectEquality(t, govern.Ending.String(), "Ending")
	test.ExpectSuccess(t, govern.Ending.IsTerminal())
	test.ExpectFailure(t, govern.Paused.IsTerminal())
}
