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

package devices_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/hardware/memory"
	"github.com/emu6502/emu6502/hardware/memory/devices"
	"github.com/emu6502/emu6502/random"
	"github.com/emu6502/emu6502/test"
)

func TestRAM(t *testing.T) {
	ram, err := devices.NewRAM("ram", 0x0200, 0x100)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ram.Memtop(), 0x02ff)

	test.ExpectSuccess(t, ram.Write16(0x0200, 0xbeef))
	v, _ := ram.Read8(0x0200)
	test.ExpectEquality(t, v, 0xef)
	w, _ := ram.Read16(0x0200)
	test.ExpectEquality(t, w, 0xbeef)

	// 16 bit access cannot start on the last byte
	_, err = ram.Read16(0x02ff)
	test.ExpectFailure(t, err)

	test.ExpectSuccess(t, ram.Reset())
	w, _ = ram.Read16(0x0200)
	test.ExpectEquality(t, w, 0x0000)
}

func TestROM(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.bin")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0xa9, 0x01, 0x00}, 0o644))

	rom, err := devices.LoadROM("rom", 0x0600, fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rom.Memtop(), 0x0602)

	v, _ := rom.Read8(0x0600)
	test.ExpectEquality(t, v, 0xa9)

	// writes are ignored
	test.ExpectSuccess(t, rom.Write8(0x0600, 0xea))
	v, _ = rom.Read8(0x0600)
	test.ExpectEquality(t, v, 0xa9)

	// reset reloads the file
	test.ExpectSuccess(t, os.WriteFile(fn, []byte{0xa2, 0x02, 0x00}, 0o644))
	test.ExpectSuccess(t, rom.Reset())
	v, _ = rom.Read8(0x0600)
	test.ExpectEquality(t, v, 0xa2)

	// a file that changes size is an error
	test.ExpectSuccess(t, os.WriteFile(fn, []byte{0xa2}, 0o644))
	test.ExpectFailure(t, rom.Reset())

	_, err = devices.LoadROM("rom", 0x0600, filepath.Join(t.TempDir(), "missing.bin"))
	test.ExpectFailure(t, err)

	// rom that doesn't fit in the address space
	_, err = devices.NewROM("rom", 0xfffe, []uint8{1, 2, 3})
	test.ExpectFailure(t, err)
}

func TestMirror(t *testing.T) {
	mc := memory.NewController(binary.LittleEndian)
	ram, _ := devices.NewRAM("ram", 0x0000, 0x800)
	test.DemandSuccess(t, mc.Register(ram))

	// the NES mirrors its 2k of RAM three times
	mirror, err := devices.NewMirror("mirror", 0x0800, 0x1800, mc, 0x0000, 0x800)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mc.Register(mirror))
	test.ExpectSuccess(t, mc.ResetAll())

	test.ExpectSuccess(t, mc.Write8(0x0801, 0x55))
	v, _ := mc.Read8(0x0001)
	test.ExpectEquality(t, v, 0x55)
	v, _ = mc.Read8(0x1801)
	test.ExpectEquality(t, v, 0x55)

	test.ExpectSuccess(t, mc.Write8(0x0002, 0x66))
	v, _ = mc.Read8(0x1002)
	test.ExpectEquality(t, v, 0x66)

	w, err := mirror.Read16(0x0801)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, 0x6655)

	// target size must be a power of two
	_, err = devices.NewMirror("bad", 0x2000, 0x100, mc, 0x0000, 0x300)
	test.ExpectFailure(t, err)

	// cannot mirror itself
	_, err = devices.NewMirror("self", 0x2000, 0x100, mc, 0x2000, 0x100)
	test.ExpectFailure(t, err)
}

func TestMirrorCycle(t *testing.T) {
	mc := memory.NewController(binary.LittleEndian)

	a, err := devices.NewMirror("a", 0x1000, 0x100, mc, 0x2000, 0x100)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mc.Register(a))
	b, err := devices.NewMirror("b", 0x2000, 0x100, mc, 0x1000, 0x100)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mc.Register(b))

	test.ExpectFailure(t, mc.ResetAll())
	test.ExpectSuccess(t, curated.Is(a.Reset(), devices.MirrorCycle))
	test.ExpectSuccess(t, curated.Is(b.Reset(), devices.MirrorCycle))

	// an access through the cycle fails rather than recursing
	_, err = mc.Read8(0x1000)
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, mc.Write8(0x2010, 0x01))

	// a chain of mirrors that ends at a real device is fine
	mc = memory.NewController(binary.LittleEndian)
	ram, _ := devices.NewRAM("ram", 0x0000, 0x100)
	test.DemandSuccess(t, mc.Register(ram))
	a, _ = devices.NewMirror("a", 0x1000, 0x100, mc, 0x2000, 0x100)
	test.DemandSuccess(t, mc.Register(a))
	b, _ = devices.NewMirror("b", 0x2000, 0x100, mc, 0x0000, 0x100)
	test.DemandSuccess(t, mc.Register(b))
	test.ExpectSuccess(t, mc.ResetAll())

	test.ExpectSuccess(t, mc.Write8(0x1005, 0x77))
	v, err := mc.Read8(0x0005)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x77)
}

func TestRNG(t *testing.T) {
	a := random.NewRandom(nil)
	a.ZeroSeed = true
	b := random.NewRandom(nil)
	b.ZeroSeed = true

	rngA, err := devices.NewRNG("rng", 0x00fe, 1, a)
	test.DemandSuccess(t, err)
	rngB, err := devices.NewRNG("rng", 0x00fe, 1, b)
	test.DemandSuccess(t, err)

	for range 16 {
		va, _ := rngA.Read8(0x00fe)
		vb, _ := rngB.Read8(0x00fe)
		test.ExpectEquality(t, va, vb)
	}

	test.ExpectSuccess(t, rngA.Write8(0x00fe, 0x00))
}
