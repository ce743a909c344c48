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
	"github.com/emu6502/emu6502/gui"
	"github.com/emu6502/emu6502/hardware/memory"
	"github.com/emu6502/emu6502/logger"
)

// Geometry of the display.
const (
	DisplayOrigin = 0x0200
	DisplayWidth  = 32
	DisplayHeight = 32
	DisplaySize   = DisplayWidth * DisplayHeight

	// the size of the window requested on reset. each pixel is scaled by
	// a factor of twenty
	WindowWidth  = 640
	WindowHeight = 640
)

// Display is the Easy6502 memory mapped display.
type Display struct {
	memory.Area

	// the display queue may be nil, in which case the display memory behaves
	// like RAM
	queue *gui.Queue

	data []uint8
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay(label string, origin uint16, queue *gui.Queue) (*Display, error) {
	area, err := memory.NewArea(label, origin, DisplaySize)
	if err != nil {
		return nil, err
	}
	return &Display{
		Area:  area,
		queue: queue,
		data:  make([]uint8, DisplaySize),
	}, nil
}

func (dsp *Display) push(cmd gui.Command) {
	if dsp.queue == nil {
		return
	}
	if err := dsp.queue.Push(cmd); err != nil {
		logger.Logf(logger.Allow, "easy6502", "%s: %v", dsp.Label(), err)
	}
}

// Reset implements the memory.Device interface. Display memory is cleared
// and the gui is told the size of the display.
func (dsp *Display) Reset() error {
	clear(dsp.data)
	dsp.push(gui.Command{Op: gui.OpSetResolution, W: WindowWidth, H: WindowHeight})
	dsp.push(gui.Command{Op: gui.OpSetLogicalSize, W: DisplayWidth, H: DisplayHeight})
	dsp.push(gui.Command{Op: gui.OpClearScreen, Colour: Palette[0]})
	return nil
}

// Read8 implements the memory.Device interface.
func (dsp *Display) Read8(address uint16) (uint8, error) {
	return dsp.data[address-dsp.Origin()], nil
}

// Write8 implements the memory.Device interface.
func (dsp *Display) Write8(address uint16, data uint8) error {
	offset := int(address - dsp.Origin())
	dsp.data[offset] = data
	dsp.push(gui.Command{
		Op:     gui.OpDrawPixel,
		X:      offset % DisplayWidth,
		Y:      offset / DisplayWidth,
		Colour: Palette[data&0x0f],
	})
	return nil
}

// Read16 implements the memory.Device interface.
func (dsp *Display) Read16(address uint16) (uint16, error) {
	if address == dsp.Memtop() {
		logger.Logf(logger.Allow, "easy6502", "%s: 16 bit read crosses end of display", dsp.Label())
		return 0, nil
	}
	return memory.Read16(dsp, littleEndian, address)
}

// Write16 implements the memory.Device interface.
func (dsp *Display) Write16(address uint16, data uint16) error {
	if address == dsp.Memtop() {
		logger.Logf(logger.Allow, "easy6502", "%s: 16 bit write crosses end of display", dsp.Label())
		return nil
	}
	return memory.Write16(dsp, littleEndian, address, data)
}
