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

package execution

// Operand is the result of resolving the addressing mode of an instruction.
// For immediate mode instructions Value holds the operand. For all other
// modes, except implied, Address holds the effective address.
type Operand struct {
	Value   uint8
	Address uint16

	// whether Address or Value is meaningful
	HasAddress bool

	// the indexing or relative offset moved the address into a different
	// page
	PageCrossed bool

	Bug Bug
}
