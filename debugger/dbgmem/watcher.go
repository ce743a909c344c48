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

package dbgmem

import (
	"slices"

	"github.com/emu6502/emu6502/hardware/memory"
)

// Access describes a memory access that triggered a watch.
type Access struct {
	Address uint16
	Data    uint8
	Write   bool
}

func (a Access) String() string {
	if a.Write {
		return "write " + AddressInfo{Address: a.Address, Peeked: true, Data: a.Data}.String()
	}
	return "read " + AddressInfo{Address: a.Address, Peeked: true, Data: a.Data}.String()
}

// Watcher wraps a memory bus and calls a function when a watched address is
// accessed. The Watcher satisfies the cpu.Memory interface.
//
// The Watcher is not safe for concurrent use. Watches should be added and
// removed at an instruction boundary.
type Watcher struct {
	bus     memory.Bus
	watches map[uint16]bool
	hit     func(Access)
}

// NewWatcher is the preferred method of initialisation for the Watcher type.
// The hit function is called whenever a watched address is accessed.
func NewWatcher(bus memory.Bus, hit func(Access)) *Watcher {
	return &Watcher{
		bus:     bus,
		watches: make(map[uint16]bool),
		hit:     hit,
	}
}

// Add a watch for the address. Returns false if the address was already
// being watched.
func (w *Watcher) Add(address uint16) bool {
	if w.watches[address] {
		return false
	}
	w.watches[address] = true
	return true
}

// Remove the watch for the address. Returns false if the address was not
// being watched.
func (w *Watcher) Remove(address uint16) bool {
	if !w.watches[address] {
		return false
	}
	delete(w.watches, address)
	return true
}

// List returns the watched addresses in order.
func (w *Watcher) List() []uint16 {
	l := make([]uint16, 0, len(w.watches))
	for a := range w.watches {
		l = append(l, a)
	}
	slices.Sort(l)
	return l
}

// Read8 implements the memory.Bus interface.
func (w *Watcher) Read8(address uint16) (uint8, error) {
	data, err := w.bus.Read8(address)
	if err == nil && w.watches[address] && w.hit != nil {
		w.hit(Access{Address: address, Data: data})
	}
	return data, err
}

// Write8 implements the memory.Bus interface.
func (w *Watcher) Write8(address uint16, data uint8) error {
	err := w.bus.Write8(address, data)
	if err == nil && w.watches[address] && w.hit != nil {
		w.hit(Access{Address: address, Data: data, Write: true})
	}
	return err
}
