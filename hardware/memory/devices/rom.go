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

package devices

import (
	"encoding/binary"
	"os"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/hardware/memory"
	"github.com/emu6502/emu6502/logger"
)

// ROM is read only memory, loaded from a file or from a slice of bytes.
// Writes are ignored.
type ROM struct {
	memory.Area
	order    binary.ByteOrder
	filename string
	data     []uint8

	startAddress    uint16
	hasStartAddress bool
}

// NewROM creates a ROM device containing a copy of data.
func NewROM(label string, origin uint16, data []uint8) (*ROM, error) {
	area, err := memory.NewArea(label, origin, len(data))
	if err != nil {
		return nil, err
	}
	return &ROM{
		Area:  area,
		order: binary.LittleEndian,
		data:  append([]uint8(nil), data...),
	}, nil
}

// LoadROM creates a ROM device from the contents of a file. The size of the
// device is the size of the file. The file is read again on every Reset().
func LoadROM(label string, origin uint16, filename string) (*ROM, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("rom: %v", err)
	}
	rom, err := NewROM(label, origin, data)
	if err != nil {
		return nil, err
	}
	rom.filename = filename
	return rom, nil
}

// SetStartAddress nominates an address at which program execution should
// begin.
func (rom *ROM) SetStartAddress(address uint16) {
	rom.startAddress = address
	rom.hasStartAddress = true
}

// StartAddress implements the memory.StartAddresser interface.
func (rom *ROM) StartAddress() (uint16, bool) {
	return rom.startAddress, rom.hasStartAddress
}

// Read8 implements the memory.Device interface.
func (rom *ROM) Read8(address uint16) (uint8, error) {
	return rom.data[address-rom.Origin()], nil
}

// Write8 implements the memory.Device interface. The write is ignored.
func (rom *ROM) Write8(address uint16, data uint8) error {
	logger.Logf(logger.Allow, "rom", "%s: ignored write of %#02x to %#04x", rom.Label(), data, address)
	return nil
}

// Read16 implements the memory.Device interface.
func (rom *ROM) Read16(address uint16) (uint16, error) {
	if address == rom.Memtop() {
		return 0xffff, outOfRange(rom, address)
	}
	return memory.Read16(rom, rom.order, address)
}

// Write16 implements the memory.Device interface. The write is ignored.
func (rom *ROM) Write16(address uint16, data uint16) error {
	logger.Logf(logger.Allow, "rom", "%s: ignored write of %#04x to %#04x", rom.Label(), data, address)
	return nil
}

// Reset implements the memory.Device interface.
func (rom *ROM) Reset() error {
	if rom.filename == "" {
		return nil
	}

	data, err := os.ReadFile(rom.filename)
	if err != nil {
		return curated.Errorf("rom: %v", err)
	}
	if len(data) != len(rom.data) {
		return curated.Errorf("rom: %s: size of %s has changed", rom.Label(), rom.filename)
	}
	copy(rom.data, data)
	return nil
}
