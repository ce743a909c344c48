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

	"github.com/emu6502/emu6502/hardware/memory"
)

// RAM is read/write memory. The contents are cleared on reset.
type RAM struct {
	memory.Area
	order binary.ByteOrder
	data  []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM(label string, origin uint16, size int) (*RAM, error) {
	area, err := memory.NewArea(label, origin, size)
	if err != nil {
		return nil, err
	}
	return &RAM{
		Area:  area,
		order: binary.LittleEndian,
		data:  make([]uint8, size),
	}, nil
}

// Read8 implements the memory.Device interface.
func (ram *RAM) Read8(address uint16) (uint8, error) {
	return ram.data[address-ram.Origin()], nil
}

// Write8 implements the memory.Device interface.
func (ram *RAM) Write8(address uint16, data uint8) error {
	ram.data[address-ram.Origin()] = data
	return nil
}

// Read16 implements the memory.Device interface.
func (ram *RAM) Read16(address uint16) (uint16, error) {
	if address == ram.Memtop() {
		return 0xffff, outOfRange(ram, address)
	}
	return memory.Read16(ram, ram.order, address)
}

// Write16 implements the memory.Device interface.
func (ram *RAM) Write16(address uint16, data uint16) error {
	if address == ram.Memtop() {
		return outOfRange(ram, address)
	}
	return memory.Write16(ram, ram.order, address, data)
}

// Reset implements the memory.Device interface.
func (ram *RAM) Reset() error {
	clear(ram.data)
	return nil
}
