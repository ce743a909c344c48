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

package hardware_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/debugger/govern"
	"github.com/emu6502/emu6502/gui"
	"github.com/emu6502/emu6502/hardware"
	"github.com/emu6502/emu6502/hardware/cpu"
	"github.com/emu6502/emu6502/setup"
	"github.com/emu6502/emu6502/test"
)

// a ROM of 16 bytes at $fff0. the reset vector points to $0600
var resetROM = []byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0x00, 0x06, 0x00, 0x00,
}

func config(t *testing.T, s string) *setup.Config {
	t.Helper()
	cfg, err := setup.Parse(strings.NewReader(s))
	test.DemandSuccess(t, err)
	return cfg
}

func writeROM(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "reset.bin"), resetROM, 0o600))
	return dir
}

func TestStartAddress(t *testing.T) {
	dir := writeROM(t)

	const devices = `"devices": [
		{ "type": "RAM", "instanceName": "ram", "startAddress": 0, "size": "0x8000" },
		{ "type": "ROM", "instanceName": "rom", "startAddress": "$fff0", "romFilename": "reset.bin" }
	]`

	// reset vector
	m, err := hardware.NewMachine(config(t, `{`+devices+`}`), hardware.Options{Dir: dir})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x0600)

	// config start address is preferred to the reset vector
	m, err = hardware.NewMachine(config(t, `{"startAddress": "$0700", `+devices+`}`), hardware.Options{Dir: dir})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x0700)

	// and the option is preferred to everything
	m, err = hardware.NewMachine(config(t, `{"startAddress": "$0700", `+devices+`}`), hardware.Options{
		Dir:          dir,
		StartAddress: 0x0800,
		HasStart:     true,
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x0800)

	// the ROM start address is preferred to the reset vector
	cfg := config(t, `{`+devices+`}`)
	o, err := setup.ParseOverride("ROM.rom.startEmulatorAddress=$fff0")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, cfg.Apply(o))
	m, err = hardware.NewMachine(cfg, hardware.Options{Dir: dir})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0xfff0)

	// no reset vector
	_, err = hardware.NewMachine(config(t, `{"devices": [
		{ "type": "RAM", "instanceName": "ram", "startAddress": 0, "size": "0x8000" }
	]}`), hardware.Options{})
	test.ExpectSuccess(t, curated.Is(err, hardware.NoStartAddress))

	// bad configuration
	_, err = hardware.NewMachine(config(t, `{"devices": [
		{ "type": "RAM", "instanceName": "ram", "startAddress": 0, "size": "0x8000" },
		{ "type": "RAM", "instanceName": "overlap", "startAddress": "0x1000", "size": 16 }
	]}`), hardware.Options{})
	test.ExpectSuccess(t, curated.Is(err, hardware.MachineError))
}

func TestTrace(t *testing.T) {
	m, err := hardware.NewMachine(config(t, `{
		"startAddress": "$0600",
		"cpu": { "haltOnIllegal": true },
		"devices": [
			{ "type": "RAM", "instanceName": "ram", "startAddress": 0, "size": "0x8000" }
		]
	}`), hardware.Options{Mode: govern.ModeRun})
	test.DemandSuccess(t, err)

	// LDA #$01; STA $20; KIL
	for i, b := range []uint8{0xa9, 0x01, 0x85, 0x20, 0x02} {
		test.DemandSuccess(t, m.Mem.Write8(0x0600+uint16(i), b))
	}

	w := &test.CompareWriter{}
	m.Trace(w)

	err = m.Run(context.Background())
	test.ExpectSuccess(t, curated.Is(err, cpu.IllegalOpcode))
	test.ExpectEquality(t, m.Gov.State(), govern.Halted)

	test.ExpectEquality(t, w.String(), "$0600: a9 01     LDA #$01 [2]\n$0602: 85 20     STA $0020 [3]\n")

	// the display is told to halt
	cmd, ok := m.Queue.TryPop()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, cmd.Op, gui.OpHaltEmulation)

	d := &strings.Builder{}
	test.ExpectSuccess(t, m.Dump(d))
	test.ExpectSuccess(t, strings.HasPrefix(d.String(), "$0000-$7fff\n"))
	test.ExpectSuccess(t, strings.Contains(d.String(), "a9 01 85 20 02"))
}

func TestEvents(t *testing.T) {
	m, err := hardware.NewMachine(config(t, `{
		"startAddress": "$0600",
		"devices": [
			{ "type": "RAM", "instanceName": "zp", "startAddress": 0, "size": 255 },
			{ "type": "Easy6502InputDevice", "instanceName": "input" },
			{ "type": "RAM", "instanceName": "ram", "startAddress": "0x100", "size": "0x7f00" },
			{ "type": "Easy6502JsDisplay", "instanceName": "display", "startAddress": "0x8000" }
		]
	}`), hardware.Options{Mode: govern.ModeRun})
	test.DemandSuccess(t, err)

	// the devices have sent their initialisation commands
	test.ExpectEquality(t, m.Queue.Len(), 4)

	// JMP $0600
	for i, b := range []uint8{0x4c, 0x00, 0x06} {
		test.DemandSuccess(t, m.Mem.Write8(0x0600+uint16(i), b))
	}

	done := make(chan error, 1)
	go func() {
		done <- m.Run(context.Background())
	}()

	// keyboard events reach the input device and closing the window ends the
	// emulation
	m.Events.Send(gui.Event{ID: gui.EventKeyboard, Key: "w", Down: true})
	m.Events.Send(gui.Event{ID: gui.EventWindowClose})
	test.ExpectSuccess(t, <-done)
	test.ExpectEquality(t, m.Gov.State(), govern.Ending)

	v, err := m.Mem.Read8(0x00ff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 'w')
}

func TestCancel(t *testing.T) {
	m, err := hardware.NewMachine(config(t, `{
		"startAddress": "$0600",
		"devices": [
			{ "type": "RAM", "instanceName": "ram", "startAddress": 0, "size": "0x8000" }
		]
	}`), hardware.Options{Mode: govern.ModeRun})
	test.DemandSuccess(t, err)

	// JMP $0600
	for i, b := range []uint8{0x4c, 0x00, 0x06} {
		test.DemandSuccess(t, m.Mem.Write8(0x0600+uint16(i), b))
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- m.Run(ctx)
	}()
	cancel()
	test.ExpectSuccess(t, <-done)
}

// the emulation can be ended while the display device is blocked on a full
// display queue
func TestFullDisplayQueue(t *testing.T) {
	const cfg = `{
		"startAddress": "$0600",
		"devices": [
			{ "type": "RAM", "instanceName": "ram", "startAddress": 0, "size": "0x8000" },
			{ "type": "Easy6502JsDisplay", "instanceName": "display", "startAddress": "0x8000" }
		]
	}`

	// STA $8000; JMP $0600
	program := []uint8{0x8d, 0x00, 0x80, 0x4c, 0x00, 0x06}

	for _, end := range []string{"window", "quit", "cancel"} {
		m, err := hardware.NewMachine(config(t, cfg), hardware.Options{Mode: govern.ModeRun})
		test.DemandSuccess(t, err)
		for i, b := range program {
			test.DemandSuccess(t, m.Mem.Write8(0x0600+uint16(i), b))
		}

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- m.Run(ctx)
		}()

		// nothing is draining the queue
		deadline := time.Now().Add(5 * time.Second)
		for m.Queue.Len() < gui.QueueCapacity {
			if time.Now().After(deadline) {
				t.Fatalf("%s: display queue did not fill", end)
			}
			time.Sleep(time.Millisecond)
		}

		switch end {
		case "window":
			m.Events.Send(gui.Event{ID: gui.EventWindowClose})
		case "quit":
			m.Gov.Quit()
		case "cancel":
			cancel()
		}

		select {
		case err := <-done:
			test.ExpectSuccess(t, err, end)
		case <-time.After(2 * time.Second):
			t.Fatalf("%s: emulation did not end", end)
		}
		cancel()

		// the display sees a halt even though the halt command could not be
		// queued
		fb := gui.NewFramebuffer()
		fb.Drain(m.Queue)
		test.ExpectSuccess(t, fb.Halted, end)
	}
}
