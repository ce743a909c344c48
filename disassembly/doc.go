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

// Package disassembly creates human readable listings of 6502 machine code.
//
// Disassembly is linear. Every address is assumed to be the start of an
// instruction and the address of the next instruction is found by adding the
// length of the instruction. Data in the middle of a program will therefore
// be disassembled as though it were code.
//
// Reading memory for disassembly has no effect on the CPU but some devices
// have side effects when read. The RNG device for example will advance its
// random sequence.
package disassembly
