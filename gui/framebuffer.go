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

package gui

import "github.com/emu6502/emu6502/logger"

// the number of bytes used per pixel in the framebuffer
const pixelDepth = 4

// Framebuffer applies display commands to an RGBA pixel buffer.
type Framebuffer struct {
	// size of the window in screen pixels
	Width, Height int

	// size of the framebuffer
	LogicalWidth, LogicalHeight int

	Pixels []uint8

	// the framebuffer has changed since the last call to Clean()
	Dirty bool

	// the display has been asked to stop the emulation
	Halted bool

	// events the emulation has asked to receive
	subscriptions map[EventID]bool
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type.
func NewFramebuffer() *Framebuffer {
	fb := &Framebuffer{
		subscriptions: make(map[EventID]bool),
	}
	fb.setLogicalSize(1, 1)
	return fb
}

func (fb *Framebuffer) setLogicalSize(w, h int) {
	fb.LogicalWidth = w
	fb.LogicalHeight = h
	fb.Pixels = make([]uint8, w*h*pixelDepth)
	if fb.Width == 0 || fb.Height == 0 {
		fb.Width = w
		fb.Height = h
	}
	fb.Dirty = true
}

// Pitch returns the number of bytes in a row of the framebuffer.
func (fb *Framebuffer) Pitch() int {
	return fb.LogicalWidth * pixelDepth
}

// IsSubscribed returns true if the emulation has subscribed to the event.
func (fb *Framebuffer) IsSubscribed(id EventID) bool {
	return fb.subscriptions[id]
}

// Clean marks the framebuffer as being unchanged.
func (fb *Framebuffer) Clean() {
	fb.Dirty = false
}

// Apply a command to the framebuffer. Returns true if the window size has
// changed.
func (fb *Framebuffer) Apply(cmd Command) bool {
	switch cmd.Op {
	case OpHaltEmulation:
		fb.Halted = true

	case OpSetResolution:
		if cmd.W <= 0 || cmd.H <= 0 {
			logger.Logf(logger.Allow, "gui", "bad resolution: %dx%d", cmd.W, cmd.H)
			return false
		}
		fb.Width = cmd.W
		fb.Height = cmd.H
		return true

	case OpSetLogicalSize:
		if cmd.W <= 0 || cmd.H <= 0 {
			logger.Logf(logger.Allow, "gui", "bad logical size: %dx%d", cmd.W, cmd.H)
			return false
		}
		fb.setLogicalSize(cmd.W, cmd.H)
		return true

	case OpClearScreen:
		for i := 0; i < len(fb.Pixels); i += pixelDepth {
			fb.Pixels[i] = cmd.Colour.R
			fb.Pixels[i+1] = cmd.Colour.G
			fb.Pixels[i+2] = cmd.Colour.B
			fb.Pixels[i+3] = 0xff
		}
		fb.Dirty = true

	case OpDrawPixel:
		if cmd.X < 0 || cmd.Y < 0 || cmd.X >= fb.LogicalWidth || cmd.Y >= fb.LogicalHeight {
			logger.Logf(logger.Allow, "gui", "pixel out of range: %d,%d", cmd.X, cmd.Y)
			return false
		}
		i := (cmd.Y*fb.LogicalWidth + cmd.X) * pixelDepth
		fb.Pixels[i] = cmd.Colour.R
		fb.Pixels[i+1] = cmd.Colour.G
		fb.Pixels[i+2] = cmd.Colour.B
		fb.Pixels[i+3] = 0xff
		fb.Dirty = true

	case OpSubscribeEvent:
		fb.subscriptions[EventID(cmd.X)] = true
	}

	return false
}

// Drain applies every command waiting in the queue. Returns true if the
// window size has changed.
//
// A closed queue with nothing left in it means the emulation has halted,
// whether or not the halt command itself reached the queue.
func (fb *Framebuffer) Drain(q *Queue) bool {
	var resized bool
	for {
		cmd, ok := q.TryPop()
		if !ok {
			select {
			case <-q.Done():
				fb.Halted = true
			default:
			}
			return resized
		}
		resized = fb.Apply(cmd) || resized
	}
}
