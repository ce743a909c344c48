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

// Package instructions defines the 6502 instruction set. Every one of the
// 256 possible opcodes has a Definition, including the undocumented opcodes of
// the NMOS 6502 and the opcodes that jam the processor.
//
// The table of definitions is created with NewTable(). A Table that has not
// been created with NewTable() cannot be used to look up definitions.
package instructions
