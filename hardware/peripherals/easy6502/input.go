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

package easy6502

import (
	"encoding/binary"

	"github.com/emu6502/emu6502/gui"
	"github.com/emu6502/emu6502/hardware/memory"
	"github.com/emu6502/emu6502/logger"
)

var littleEndian = binary.LittleEndian

// InputOrigin is the address of the Easy6502 keyboard register.
const InputOrigin = 0x00ff

// Input is the Easy6502 keyboard register.
type Input struct {
	memory.Area

	queue  *gui.Queue
	events *gui.Events

	key uint8
}

// NewInput is the preferred method of initialisation for the Input type. The
// events argument may be nil, in which case the register only changes when it
// is written to.
func NewInput(label string, origin uint16, queue *gui.Queue, events *gui.Events) (*Input, error) {
	area, err := memory.NewArea(label, origin, 1)
	if err != nil {
		return nil, err
	}
	return &Input{
		Area:   area,
		queue:  queue,
		events: events,
	}, nil
}

// Reset implements the memory.Device interface. The device subscribes to
// keyboard events from the gui.
func (inp *Input) Reset() error {
	inp.key = 0
	if inp.queue != nil {
		err := inp.queue.Push(gui.Command{Op: gui.OpSubscribeEvent, X: int(gui.EventKeyboard)})
		if err != nil {
			logger.Logf(logger.Allow, "easy6502", "%s: %v", inp.Label(), err)
		}
	}
	return nil
}

// keys that the device responds to.
func wasd(key string) (uint8, bool) {
	switch key {
	case "w", "a", "s", "d":
		return key[0], true
	}
	return 0, false
}

func (inp *Input) drain() {
	if inp.events == nil {
		return
	}
	for {
		ev, ok := inp.events.TryReceive()
		if !ok {
			return
		}
		if ev.ID != gui.EventKeyboard {
			continue
		}
		k, ok := wasd(ev.Key)
		if !ok {
			continue
		}
		if ev.Down {
			inp.key = k
		} else if inp.key == k {
			inp.key = 0
		}
	}
}

// Read8 implements the memory.Device interface.
func (inp *Input) Read8(_ uint16) (uint8, error) {
	inp.drain()
	return inp.key, nil
}

// Write8 implements the memory.Device interface. Programs write to the
// register to clear the key.
func (inp *Input) Write8(_ uint16, data uint8) error {
	inp.key = data
	return nil
}

// Read16 implements the memory.Device interface.
func (inp *Input) Read16(address uint16) (uint16, error) {
	logger.Logf(logger.Allow, "easy6502", "%s: 16 bit read of %#04x not supported", inp.Label(), address)
	return 0, nil
}

// Write16 implements the memory.Device interface.
func (inp *Input) Write16(address uint16, data uint16) error {
	logger.Logf(logger.Allow, "easy6502", "%s: 16 bit write of %#04x to %#04x not supported", inp.Label(), data, address)
	return nil
}
