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

package memory

import (
	"encoding/binary"
	"fmt"

	"github.com/emu6502/emu6502/curated"
)

// Bus is the minimal interface for reading and writing single bytes.
type Bus interface {
	Read8(address uint16) (uint8, error)
	Write8(address uint16, data uint8) error
}

// Device is a region of the address space. Addresses passed to the access
// functions are absolute addresses and are always within the range of the
// device when called by the Controller.
type Device interface {
	Bus

	Label() string

	// the range of the device is inclusive of both the origin and memtop
	Origin() uint16
	Memtop() uint16

	// 16 bit access. the byte order is decided by the device
	Read16(address uint16) (uint16, error)
	Write16(address uint16, data uint16) error

	// Reset is called before emulation starts and whenever the machine is
	// reset
	Reset() error
}

// StartAddresser is implemented by devices that can specify where program
// execution should begin.
type StartAddresser interface {
	StartAddress() (uint16, bool)
}

// Range is an inclusive range of addresses.
type Range struct {
	Origin uint16
	Memtop uint16
}

func (r Range) String() string {
	return fmt.Sprintf("$%04x-$%04x", r.Origin, r.Memtop)
}

// Size returns the number of addresses in the range.
func (r Range) Size() int {
	return int(r.Memtop) - int(r.Origin) + 1
}

// Contains returns true if the address is in the range.
func (r Range) Contains(address uint16) bool {
	return address >= r.Origin && address <= r.Memtop
}

// Overlaps returns true if any address is in both ranges.
func (r Range) Overlaps(o Range) bool {
	return r.Origin <= o.Memtop && o.Origin <= r.Memtop
}

// DeviceRange returns the Range covered by the device.
func DeviceRange(dev Device) Range {
	return Range{Origin: dev.Origin(), Memtop: dev.Memtop()}
}

// Area is embedded by Device implementations. It takes care of the label and
// range of the device.
type Area struct {
	label  string
	origin uint16
	memtop uint16
}

// BadSize is returned by NewArea() when the size of the area is zero or
// would extend beyond the top of the address space.
const BadSize = "memory: %s: size of %#x at origin %#04x is not possible"

// NewArea is the preferred method of initialisation for the Area type.
func NewArea(label string, origin uint16, size int) (Area, error) {
	if size <= 0 || int(origin)+size > 0x10000 {
		return Area{}, curated.Errorf(BadSize, label, size, origin)
	}
	return Area{
		label:  label,
		origin: origin,
		memtop: uint16(int(origin) + size - 1),
	}, nil
}

// Label returns the name of the area.
func (a Area) Label() string {
	return a.label
}

// Origin returns the first address of the area.
func (a Area) Origin() uint16 {
	return a.origin
}

// Memtop returns the last address of the area.
func (a Area) Memtop() uint16 {
	return a.memtop
}

// Size returns the number of addresses in the area.
func (a Area) Size() int {
	return int(a.memtop) - int(a.origin) + 1
}

// Read16 composes a 16 bit value from two byte reads. The byte at address is
// the first byte in the order given.
func Read16(bus Bus, order binary.ByteOrder, address uint16) (uint16, error) {
	var b [2]byte
	var err error

	b[0], err = bus.Read8(address)
	if err != nil {
		return 0xffff, err
	}
	b[1], err = bus.Read8(address + 1)
	if err != nil {
		return 0xffff, err
	}

	return order.Uint16(b[:]), nil
}

// Write16 decomposes a 16 bit value into two byte writes.
func Write16(bus Bus, order binary.ByteOrder, address uint16, data uint16) error {
	var b [2]byte
	order.PutUint16(b[:], data)

	if err := bus.Write8(address, b[0]); err != nil {
		return err
	}
	return bus.Write8(address+1, b[1])
}
