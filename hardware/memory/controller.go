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
	"io"
	"slices"
	"strings"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/logger"
)

// List of errors returned by the Controller.
const (
	InvalidAddress = "memory: no device at address %#04x"
	Overlap        = "memory: %s %s overlaps %s %s"
	Inverted       = "memory: %s has a memtop below it's origin"
	UnknownDevice  = "memory: no device labelled %s"
)

// the value returned by a read from an invalid address.
const sentinel = 0xff

// Controller maps addresses to devices.
type Controller struct {
	order binary.ByteOrder

	// devices sorted by origin
	devices []Device
}

// NewController is the preferred method of initialisation for the Controller
// type. The byte order is used for 16 bit accesses that are composed by the
// Controller. The 6502 is little endian.
func NewController(order binary.ByteOrder) *Controller {
	if order == nil {
		order = binary.LittleEndian
	}
	return &Controller{
		order: order,
	}
}

// ByteOrder returns the byte order of the controller.
func (mc *Controller) ByteOrder() binary.ByteOrder {
	return mc.order
}

// Register adds a device to the address space.
func (mc *Controller) Register(dev Device) error {
	r := DeviceRange(dev)
	if r.Memtop < r.Origin {
		err := curated.Errorf(Inverted, dev.Label())
		logger.Log(logger.Allow, "memory", err)
		return err
	}

	for _, d := range mc.devices {
		if r.Overlaps(DeviceRange(d)) {
			err := curated.Errorf(Overlap, dev.Label(), r, d.Label(), DeviceRange(d))
			logger.Log(logger.Allow, "memory", err)
			return err
		}
	}

	i, _ := slices.BinarySearchFunc(mc.devices, r.Origin, func(d Device, origin uint16) int {
		return int(d.Origin()) - int(origin)
	})
	mc.devices = slices.Insert(mc.devices, i, dev)

	logger.Logf(logger.Allow, "memory", "registered %s at %s", dev.Label(), r)
	return nil
}

// Delete removes the device with the label from the address space.
func (mc *Controller) Delete(label string) error {
	i := slices.IndexFunc(mc.devices, func(d Device) bool {
		return d.Label() == label
	})
	if i < 0 {
		return curated.Errorf(UnknownDevice, label)
	}
	mc.devices = slices.Delete(mc.devices, i, i+1)
	return nil
}

// Resolve returns the device that owns the address.
func (mc *Controller) Resolve(address uint16) (Device, bool) {
	for _, d := range mc.devices {
		if address < d.Origin() {
			break
		}
		if address <= d.Memtop() {
			return d, true
		}
	}
	return nil, false
}

// Read8 reads a single byte from the address space.
func (mc *Controller) Read8(address uint16) (uint8, error) {
	d, ok := mc.Resolve(address)
	if !ok {
		return sentinel, curated.Errorf(InvalidAddress, address)
	}
	return d.Read8(address)
}

// Write8 writes a single byte to the address space.
func (mc *Controller) Write8(address uint16, data uint8) error {
	d, ok := mc.Resolve(address)
	if !ok {
		return curated.Errorf(InvalidAddress, address)
	}
	return d.Write8(address, data)
}

// Read16 reads two consecutive bytes and composes them in the byte order of
// the controller. The two bytes may belong to different devices.
func (mc *Controller) Read16(address uint16) (uint16, error) {
	return Read16(mc, mc.order, address)
}

// Write16 writes two consecutive bytes in the byte order of the controller.
func (mc *Controller) Write16(address uint16, data uint16) error {
	return Write16(mc, mc.order, address, data)
}

// Devices returns the registered devices in address order.
func (mc *Controller) Devices() []Device {
	return slices.Clone(mc.devices)
}

// ResetAll calls Reset() on every device in address order. All devices are
// reset even if one of them fails.
func (mc *Controller) ResetAll() error {
	var errs []string
	for _, d := range mc.devices {
		if err := d.Reset(); err != nil {
			logger.Logf(logger.Allow, "memory", "reset %s: %v", d.Label(), err)
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return curated.Errorf("memory: reset: %s", strings.Join(errs, ", "))
	}
	return nil
}

// StartAddress returns the start address nominated by the first device that
// implements the StartAddresser interface and which has a start address.
func (mc *Controller) StartAddress() (uint16, bool) {
	for _, d := range mc.devices {
		if s, ok := d.(StartAddresser); ok {
			if a, ok := s.StartAddress(); ok {
				return a, true
			}
		}
	}
	return 0, false
}

// MappedRanges returns the populated parts of the address space. Devices
// that are adjacent are merged into a single range.
func (mc *Controller) MappedRanges() []Range {
	var ranges []Range
	for _, d := range mc.devices {
		r := DeviceRange(d)
		if len(ranges) > 0 {
			last := &ranges[len(ranges)-1]
			if last.Memtop != 0xffff && last.Memtop+1 == r.Origin {
				last.Memtop = r.Memtop
				continue
			}
		}
		ranges = append(ranges, r)
	}
	return ranges
}

// Summary writes a table of the registered devices.
func (mc *Controller) Summary(w io.Writer) {
	for _, d := range mc.devices {
		r := DeviceRange(d)
		fmt.Fprintf(w, "%-16s %s %6d bytes\n", d.Label(), r, r.Size())
	}
}

func (mc *Controller) String() string {
	s := strings.Builder{}
	mc.Summary(&s)
	return s.String()
}

// Dump writes a hex and ASCII listing of the address space between from and
// to inclusive. Rows with no mapped addresses are omitted. Unmapped addresses
// in a row that is otherwise mapped are shown as "--".
//
// Dump reads memory through the devices. Devices with side effects on read
// will be affected.
func (mc *Controller) Dump(w io.Writer, from uint16, to uint16) error {
	if to < from {
		return nil
	}

	for row := int(from) &^ 0x0f; row <= int(to); row += 16 {
		hex := strings.Builder{}
		asc := strings.Builder{}
		mapped := false

		for col := 0; col < 16; col++ {
			a := row + col
			if a < int(from) || a > int(to) {
				hex.WriteString("   ")
				asc.WriteRune(' ')
				continue
			}

			d, ok := mc.Resolve(uint16(a))
			if !ok {
				hex.WriteString(" --")
				asc.WriteRune(' ')
				continue
			}

			v, err := d.Read8(uint16(a))
			if err != nil {
				hex.WriteString(" ??")
				asc.WriteRune(' ')
				continue
			}

			mapped = true
			hex.WriteString(fmt.Sprintf(" %02x", v))
			if v >= 0x20 && v < 0x7f {
				asc.WriteByte(v)
			} else {
				asc.WriteRune('.')
			}
		}

		if mapped {
			if _, err := fmt.Fprintf(w, "%04x:%s  |%s|\n", row, hex.String(), asc.String()); err != nil {
				return err
			}
		}
	}

	return nil
}
