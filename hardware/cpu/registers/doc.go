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

// Package registers implements the registers found in the 6502: the general
// purpose registers, the stack pointer, the program counter and the status
// register.
//
// The general purpose registers (A, X and Y) and the stack pointer are
// eight bit registers. The program counter is sixteen bits. The status
// register is a set of named flags that can be packed into and unpacked from
// an eight bit value.
//
// The arithmetic and logic methods of the Register type return the carry and
// overflow states. It is up to the caller to update the status register.
package registers
