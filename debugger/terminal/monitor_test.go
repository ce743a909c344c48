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

package terminal_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emu6502/emu6502/debugger"
	"github.com/emu6502/emu6502/debugger/govern"
	"github.com/emu6502/emu6502/debugger/terminal"
	"github.com/emu6502/emu6502/debugger/terminal/plainterm"
	"github.com/emu6502/emu6502/hardware/cpu"
	"github.com/emu6502/emu6502/hardware/memory"
	"github.com/emu6502/emu6502/hardware/memory/devices"
	"github.com/emu6502/emu6502/test"
)

// $0600: LDA #$01
// $0602: STA $20
// $0604: INX
// $0605: JMP $0602
var program = []uint8{0xa9, 0x01, 0x85, 0x20, 0xe8, 0x4c, 0x02, 0x06}

// start an emulation in debugger mode and wait for it to pause.
func start(t *testing.T) *debugger.Debugger {
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
	dbg := debugger.NewDebugger(mc, mem, gov)

	halts := gov.Halts()
	done := make(chan error, 1)
	go func() {
		done <- gov.Attach(context.Background(), mc)
	}()
	<-halts

	t.Cleanup(func() {
		gov.Quit()
		<-done
	})

	return dbg
}

func runMonitor(t *testing.T, dbg *debugger.Debugger, script string) string {
	t.Helper()
	w := &test.CompareWriter{}
	term := plainterm.NewPlainTerminal(strings.NewReader(script), w)
	mon := terminal.NewMonitor(dbg, term, "test")
	test.DemandSuccess(t, mon.Run(context.Background()))
	return w.String()
}

func expectOutput(t *testing.T, output string, expected string) {
	t.Helper()
	if !strings.Contains(output, expected) {
		t.Errorf("output does not contain %q\n%s", expected, output)
	}
}

func TestSession(t *testing.T) {
	dbg := start(t)

	out := runMonitor(t, dbg, strings.Join([]string{
		"regs",
		"step 2",
		"b $0605",
		"break",
		"list $0600 2",
		"mem $0600 8",
		"poke $20 $7f",
		"xyz",
		"s",
		"step x",
		"help regs",
		"quit",
	}, "\n"))

	expectOutput(t, out, "PC=$0600 A=$00 X=$00 Y=$00 SP=$fd SR=sv-bdIzc CLK=0\n")
	expectOutput(t, out, "PC=$0604 A=$01 X=$00 Y=$00 SP=$fd SR=sv-bdIzc CLK=5\n$0604: e8        INX\n")
	expectOutput(t, out, "breakpoint added at $0605\n$0605\n")
	expectOutput(t, out, "$0600: a9 01     LDA #$01\n$0602: 85 20     STA $20\n")
	expectOutput(t, out, "a9 01 85 20 e8 4c 02 06")
	expectOutput(t, out, "* unrecognised command (xyz)\n")
	expectOutput(t, out, "* ambiguous command (s could be SET/STEP)\n")
	expectOutput(t, out, "* invalid count (x)\n")
	expectOutput(t, out, "REGS\nshow the CPU registers\n")

	test.ExpectEquality(t, dbg.State(), govern.Ending)

	ai, err := dbg.Peek(uint16(0x0020))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ai.Data, 0x7f)
	test.ExpectEquality(t, len(dbg.Breaks()), 1)
}

func TestBreakAndWatch(t *testing.T) {
	dbg := start(t)

	out := runMonitor(t, dbg, strings.Join([]string{
		"watch $20",
		"step 5",
		"clear $20",
		"watch",
		"quit",
	}, "\n"))

	// the watch pauses the emulation after the STA instruction and before
	// the step has completed
	expectOutput(t, out, "watch added at $0020\n")
	expectOutput(t, out, "halted: watch")
	expectOutput(t, out, "PC=$0604 A=$01")
	expectOutput(t, out, "cleared $0020\nno watches\n")
}

func TestEndOfInput(t *testing.T) {
	dbg := start(t)

	// the emulation is ended when input runs out and the emulation is paused
	out := runMonitor(t, dbg, "regs\n")
	expectOutput(t, out, "PC=$0600")
	test.ExpectEquality(t, dbg.State(), govern.Ending)
}

func TestDump(t *testing.T) {
	dbg := start(t)

	fn := filepath.Join(t.TempDir(), "dump.txt")
	out := runMonitor(t, dbg, "dump "+fn+"\ndevices\nquit\n")
	expectOutput(t, out, "memory dumped to "+fn)
	expectOutput(t, out, "ram ")

	d, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	expectOutput(t, string(d), "$0000-$7fff\n")
	expectOutput(t, string(d), "a9 01 85 20 e8 4c 02 06")
}
