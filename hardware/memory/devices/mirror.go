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
	"math/bits"
	"strings"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/hardware/memory"
)

// Mirror makes a part of the address space appear at another location. An
// access to the mirror is redirected to the target range via the memory bus
// so the target may be any device, or several devices.
//
// The size of the target must be a power of two. Addresses in the mirror are
// mapped to the target by masking the offset from the origin of the mirror.
type Mirror struct {
	memory.Area
	bus    memory.Bus
	target memory.Range
	mask   uint16

	// an access is being redirected. a second access to the mirror before
	// the first has completed means the mirror leads back to itself
	busy bool
}

// MirrorCycle is returned when the target of a mirror leads back to the
// mirror, either directly or through other mirrors.
const MirrorCycle = "mirror: %s: target leads back to the mirror (%s)"

// resolver is implemented by buses that can say which device is at an
// address, such as the memory.Controller.
type resolver interface {
	Resolve(address uint16) (memory.Device, bool)
}

// NewMirror is the preferred method of initialisation for the Mirror type.
func NewMirror(label string, origin uint16, size int, bus memory.Bus, target uint16, targetSize int) (*Mirror, error) {
	area, err := memory.NewArea(label, origin, size)
	if err != nil {
		return nil, err
	}

	if targetSize <= 0 || targetSize > 0x8000 || bits.OnesCount(uint(targetSize)) != 1 {
		return nil, curated.Errorf("mirror: %s: target size %#x is not a power of two", label, targetSize)
	}

	tgt, err := memory.NewArea(label, target, targetSize)
	if err != nil {
		return nil, err
	}

	m := &Mirror{
		Area:   area,
		bus:    bus,
		target: memory.Range{Origin: tgt.Origin(), Memtop: tgt.Memtop()},
		mask:   uint16(targetSize - 1),
	}

	if m.target.Overlaps(memory.Range{Origin: m.Origin(), Memtop: m.Memtop()}) {
		return nil, curated.Errorf("mirror: %s: cannot mirror itself", label)
	}

	return m, nil
}

// Target returns the range being mirrored.
func (m *Mirror) Target() memory.Range {
	return m.target
}

func (m *Mirror) translate(address uint16) uint16 {
	return ((address - m.Origin()) & m.mask) + m.target.Origin
}

// Read8 implements the memory.Device interface.
func (m *Mirror) Read8(address uint16) (uint8, error) {
	if m.busy {
		return 0, curated.Errorf(MirrorCycle, m.Label(), "access")
	}
	m.busy = true
	defer func() { m.busy = false }()
	return m.bus.Read8(m.translate(address))
}

// Write8 implements the memory.Device interface.
func (m *Mirror) Write8(address uint16, data uint8) error {
	if m.busy {
		return curated.Errorf(MirrorCycle, m.Label(), "access")
	}
	m.busy = true
	defer func() { m.busy = false }()
	return m.bus.Write8(m.translate(address), data)
}

// Read16 implements the memory.Device interface. The two bytes are read
// separately so the second byte wraps to the start of the target if
// necessary.
func (m *Mirror) Read16(address uint16) (uint16, error) {
	if address == m.Memtop() {
		return 0xffff, outOfRange(m, address)
	}
	return memory.Read16(m, littleEndian, address)
}

// Write16 implements the memory.Device interface.
func (m *Mirror) Write16(address uint16, data uint16) error {
	if address == m.Memtop() {
		return outOfRange(m, address)
	}
	return memory.Write16(m, littleEndian, address, data)
}

// Reset implements the memory.Device interface. The target is reset by it's
// own device.
//
// If the bus can resolve addresses then the target is followed through any
// other mirrors. It is an error for the chain to lead back to this mirror.
func (m *Mirror) Reset() error {
	m.busy = false

	r, ok := m.bus.(resolver)
	if !ok {
		return nil
	}

	visited := make(map[*Mirror]bool)
	chain := []string{m.Label()}

	var follow func(mr *Mirror) error
	follow = func(mr *Mirror) error {
		visited[mr] = true
		a := int(mr.target.Origin)
		for a <= int(mr.target.Memtop) {
			dev, ok := r.Resolve(uint16(a))
			if !ok {
				a++
				continue
			}
			if t, ok := dev.(*Mirror); ok {
				if t == m {
					return curated.Errorf(MirrorCycle, m.Label(), strings.Join(append(chain, m.Label()), " -> "))
				}
				if !visited[t] {
					chain = append(chain, t.Label())
					if err := follow(t); err != nil {
						return err
					}
					chain = chain[:len(chain)-1]
				}
			}
			a = int(dev.Memtop()) + 1
		}
		return nil
	}

	return follow(m)
}
