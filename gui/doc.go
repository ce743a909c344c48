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

// Package gui is the interface between the emulation and the display. The
// emulation talks to the display by pushing Commands onto a Queue and the
// display talks back to the emulation by sending Events.
//
// Display implementations are found in the sub-packages. The GUI interface
// describes what the main thread of the application requires of a display
// implementation. Most display libraries require that windowing is handled
// by the main thread of the program.
//
// The Framebuffer type applies Commands to an RGBA pixel buffer. It is used by
// all display implementations.
package gui
