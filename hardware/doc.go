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

// Package hardware is the base package for the emulation. The Machine type
// composes the memory controller, the CPU and the devices described by a
// setup.Config and runs the CPU under the control of a govern.Governor.
//
// The sub-packages contain the CPU emulation, the memory controller and the
// devices that can be attached to the address space.
package hardware
