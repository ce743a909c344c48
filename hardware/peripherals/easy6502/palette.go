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

import "github.com/emu6502/emu6502/gui"

// Palette is indexed by the lower four bits of the value written to
// display memory.
var Palette = [16]gui.Colour{
	{R: 0x00, G: 0x00, B: 0x00}, // black
	{R: 0xff, G: 0xff, B: 0xff}, // white
	{R: 0x88, G: 0x00, B: 0x00}, // red
	{R: 0xaa, G: 0xff, B: 0xee}, // cyan
	{R: 0xcc, G: 0x44, B: 0xcc}, // purple
	{R: 0x00, G: 0xcc, B: 0x55}, // green
	{R: 0x00, G: 0x00, B: 0xaa}, // blue
	{R: 0xee, G: 0xee, B: 0x77}, // yellow
	{R: 0xdd, G: 0x88, B: 0x55}, // orange
	{R: 0x66, G: 0x44, B: 0x00}, // brown
	{R: 0xff, G: 0x77, B: 0x77}, // light red
	{R: 0x33, G: 0x33, B: 0x33}, // dark grey
	{R: 0x77, G: 0x77, B: 0x77}, // grey
	{R: 0xaa, G: 0xff, B: 0x66}, // light green
	{R: 0x00, G: 0x88, B: 0xff}, // light blue
	{R: 0xbb, G: 0xbb, B: 0xbb}, // light grey
}
