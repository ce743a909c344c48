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

import "fmt"

// Op identifies the operation of a display command.
type Op int

// List of valid display operations.
const (
	OpHaltEmulation Op = iota
	OpSetResolution
	OpSetLogicalSize
	OpClearScreen
	OpDrawPixel
	OpSubscribeEvent
)

func (op Op) String() string {
	switch op {
	case OpHaltEmulation:
		return "HALT_EMULATION"
	case OpSetResolution:
		return "SET_RESOLUTION"
	case OpSetLogicalSize:
		return "SET_LOGICAL_SIZE"
	case OpClearScreen:
		return "CLEAR_SCREEN"
	case OpDrawPixel:
		return "DRAW_PIXEL"
	case OpSubscribeEvent:
		return "SUBSCRIBE_EVENT"
	}
	return "UNKNOWN"
}

// Colour is an RGB value.
type Colour struct {
	R, G, B uint8
}

func (c Colour) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Command is a single instruction for the display. Which fields are
// meaningful depends on the Op:
//
//	SetResolution		W, H (window size in screen pixels)
//	SetLogicalSize		W, H (size of the framebuffer)
//	ClearScreen		Colour
//	DrawPixel		X, Y, Colour
//	SubscribeEvent		X (the EventID)
type Command struct {
	Op     Op
	X, Y   int
	W, H   int
	Colour Colour
}

func (cmd Command) String() string {
	switch cmd.Op {
	case OpSetResolution, OpSetLogicalSize:
		return fmt.Sprintf("%s %dx%d", cmd.Op, cmd.W, cmd.H)
	case OpClearScreen:
		return fmt.Sprintf("%s %s", cmd.Op, cmd.Colour)
	case OpDrawPixel:
		return fmt.Sprintf("%s %d,%d %s", cmd.Op, cmd.X, cmd.Y, cmd.Colour)
	case OpSubscribeEvent:
		return fmt.Sprintf("%s %s", cmd.Op, EventID(cmd.X))
	}
	return cmd.Op.String()
}
