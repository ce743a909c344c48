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

// Package easy6502 implements the display and keyboard devices of the
// Easy6502 virtual machine.
//
// The Display is a 32x32 grid of pixels. Each byte of display memory is the
// colour of one pixel, the lower four bits of which index a sixteen colour
// palette. Writes are forwarded to the gui as DRAW_PIXEL commands.
//
// The Input device is a single byte. Reading it returns the ASCII value of
// the most recent W, A, S or D key that is being held down.
package easy6502
