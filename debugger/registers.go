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

package debugger

import (
	"fmt"

	"github.com/emu6502/emu6502/hardware/cpu"
	"github.com/emu6502/emu6502/hardware/cpu/registers"
)

// Registers is a copy of the CPU registers at an instruction boundary.
type Registers struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status registers.StatusRegister

	Clocks       uint64
	Instructions uint64
}

func copyRegisters(mc *cpu.CPU) Registers {
	return Registers{
		PC:           mc.PC.Address(),
		A:            mc.A.Value(),
		X:            mc.X.Value(),
		Y:            mc.Y.Value(),
		SP:           mc.SP.Value(),
		Status:       mc.Status,
		Clocks:       mc.Clocks,
		Instructions: mc.Instructions,
	}
}

func (r Registers) String() string {
	return fmt.Sprintf("PC=$%04x A=$%02x X=$%02x Y=$%02x SP=$%02x SR=%s CLK=%d",
		r.PC, r.A, r.X, r.Y, r.SP, r.Status, r.Clocks)
}

// Register returns the value of the named register. Names are PC, A, X, Y, SP
// and SR. Lower case names are also accepted. Returns false if the name is
// not recognised.
func (r Registers) Register(name string) (uint16, bool) {
	switch name {
	case "PC", "pc":
		return r.PC, true
	case "A", "a":
		return uint16(r.A), true
	case "X", "x":
		return uint16(r.X), true
	case "Y", "y":
		return uint16(r.Y), true
	case "SP", "sp":
		return uint16(r.SP), true
	case "SR", "sr", "P", "p":
		return uint16(r.Status.Value()), true
	}
	return 0, false
}
