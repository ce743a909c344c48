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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emu6502/emu6502/debugger/govern"
	"github.com/emu6502/emu6502/hardware"
	"github.com/emu6502/emu6502/modalflag"
	"github.com/emu6502/emu6502/test"
)

// LDA #$01; STA $20; INX; JMP $0602
var program = []uint8{0xa9, 0x01, 0x85, 0x20, 0xe8, 0x4c, 0x02, 0x06}

func writeProgram(t *testing.T) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "prog.bin")
	test.DemandSuccess(t, os.WriteFile(fn, program, 0o644))
	return fn
}

func TestDefaultConfig(t *testing.T) {
	fn := writeProgram(t)

	cfg, dir, err := machineConfig("", fn, 0x0600)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dir, "")
	test.ExpectEquality(t, cfg.Name, "prog")
	test.ExpectSuccess(t, cfg.HasStart)
	test.ExpectEquality(t, cfg.StartAddress, 0x0600)
	test.DemandEquality(t, len(cfg.Devices), 2)
	test.ExpectEquality(t, cfg.Devices[0].String(), "RAM.ram")
	test.ExpectEquality(t, cfg.Devices[1].String(), "ROM.program")

	m, err := hardware.NewMachine(cfg, hardware.Options{Mode: govern.ModeRun, Headless: true})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x0600)

	v, err := m.Mem.Read8(0x0605)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x4c)

	// the RAM ends where the program begins
	test.ExpectSuccess(t, m.Mem.Write8(0x05ff, 0x01))
	_, err = m.Mem.Read8(0x0608)
	test.ExpectFailure(t, err)

	// a load address of zero means there is no RAM
	cfg, _, err = machineConfig("", fn, 0x0000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(cfg.Devices), 1)

	_, _, err = machineConfig("", "", 0x0600)
	test.ExpectFailure(t, err)
}

func TestConfigFile(t *testing.T) {
	fn := writeProgram(t)

	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "machine.json")
	test.DemandSuccess(t, os.WriteFile(cfgFile, []byte(`{
		"configName": "test",
		"devices": [
			{ "type": "RAM", "instanceName": "zp", "startAddress": 0, "size": 512 }
		]
	}`), 0o644))

	cfg, cfgDir, err := machineConfig(cfgFile, "", 0x0600)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfgDir, dir)
	test.ExpectEquality(t, cfg.Name, "test")
	test.ExpectEquality(t, len(cfg.Devices), 1)

	// a binary file adds a program to the description
	cfg, _, err = machineConfig(cfgFile, fn, 0x0600)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(cfg.Devices), 2)
	test.ExpectSuccess(t, filepath.IsAbs(cfg.Devices[1].Str("romFilename")))
}

func TestHeadless(t *testing.T) {
	test.ExpectSuccess(t, isHeadless(""))
	test.ExpectSuccess(t, isHeadless("None"))
	test.ExpectFailure(t, isHeadless("sdl"))
	test.ExpectFailure(t, isHeadless("ebiten"))
}

func TestDisasm(t *testing.T) {
	fn := writeProgram(t)

	md := &modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-base", "$0600", fn})
	w := &test.CompareWriter{}
	test.DemandSuccess(t, disasm(md, w))

	lines := strings.Split(strings.TrimSpace(w.String()), "\n")
	test.DemandEquality(t, len(lines), 4)
	test.ExpectEquality(t, lines[0], "$0600: a9 01     LDA #$01")
	test.ExpectEquality(t, lines[3], "$0605: 4c 02 06  JMP $0602")

	md.NewArgs([]string{"-start", "0x0602", "-count", "1", fn})
	w.Clear()
	test.DemandSuccess(t, disasm(md, w))
	test.ExpectEquality(t, w.String(), "$0602: 85 20     STA $0020\n")

	md.NewArgs([]string{})
	test.ExpectFailure(t, disasm(md, w))
}
