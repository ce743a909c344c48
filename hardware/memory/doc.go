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

// Package memory implements the 6502 address space. The address space is
// sixteen bits wide but it is sparsely populated: each populated region is
// owned by a Device and regions never overlap.
//
// The Controller is the single point of access to memory for the CPU. Every
// access is delegated to the Device whose range contains the address. An
// access to an address that is not owned by any device fails with the
// InvalidAddress error. A failed read returns the sentinel value 0xff.
//
// Devices are registered with the Controller before emulation starts.
// Registration of a device whose range overlaps a device already registered
// is rejected.
//
// The Controller is not safe for concurrent use. Access from outside the
// emulation goroutine should be arranged to happen while the CPU is between
// instructions. See the govern package.
package memory
