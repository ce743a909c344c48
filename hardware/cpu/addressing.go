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

package cpu

import (
	"github.com/emu6502/emu6502/hardware/cpu/execution"
	"github.com/emu6502/emu6502/hardware/cpu/instructions"
)

// the value used for any byte that could not be read during address
// resolution
const unresolved = 0xff

// Resolve the effective address or immediate value of an instruction. The pc
// argument is the address of the opcode, b2 and b3 are the bytes following
// the opcode. Memory is only accessed for the indirect modes.
//
// A failed memory read is returned as an error. The part of the operand that
// depended on the read is filled with 0xff.
func Resolve(pc uint16, mode instructions.AddressingMode, b2 uint8, b3 uint8, x uint8, y uint8, mem Memory) (execution.Operand, error) {
	var op execution.Operand

	word := uint16(b2) | uint16(b3)<<8

	switch mode {
	case instructions.Implied:

	case instructions.Immediate:
		op.Value = b2

	case instructions.Relative:
		base := pc + 2
		op.Address = base + uint16(int8(b2))
		op.HasAddress = true
		op.PageCrossed = op.Address&0xff00 != base&0xff00

	case instructions.Absolute:
		op.Address = word
		op.HasAddress = true

	case instructions.ZeroPage:
		op.Address = uint16(b2)
		op.HasAddress = true

	case instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
		idx := x
		if mode == instructions.ZeroPageIndexedY {
			idx = y
		}
		op.Address = uint16(b2 + idx)
		op.HasAddress = true
		if uint16(b2)+uint16(idx) > 0xff {
			op.Bug = execution.ZeroPageIndexBug
		}

	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		idx := x
		if mode == instructions.AbsoluteIndexedY {
			idx = y
		}
		op.Address = word + uint16(idx)
		op.HasAddress = true
		op.PageCrossed = op.Address&0xff00 != word&0xff00

	case instructions.Indirect:
		// the high byte of the pointer is read from the same page as the low
		// byte. this is the behaviour of the NMOS 6502
		op.HasAddress = true
		hiPtr := (word & 0xff00) | uint16(uint8(word+1))
		if word&0x00ff == 0x00ff {
			op.Bug = execution.JmpIndirectAddressingBug
		}
		lo, err := mem.Read8(word)
		if err != nil {
			op.Address = unresolved<<8 | unresolved
			return op, err
		}
		hi, err := mem.Read8(hiPtr)
		if err != nil {
			op.Address = unresolved<<8 | uint16(lo)
			return op, err
		}
		op.Address = uint16(hi)<<8 | uint16(lo)

	case instructions.IndexedIndirect:
		op.HasAddress = true
		ptr := b2 + x
		lo, err := mem.Read8(uint16(ptr))
		if err != nil {
			op.Address = unresolved<<8 | unresolved
			return op, err
		}
		hi, err := mem.Read8(uint16(ptr + 1))
		if err != nil {
			op.Address = unresolved<<8 | uint16(lo)
			return op, err
		}
		op.Address = uint16(hi)<<8 | uint16(lo)

	case instructions.IndirectIndexed:
		op.HasAddress = true
		lo, err := mem.Read8(uint16(b2))
		if err != nil {
			op.Address = unresolved<<8 | unresolved
			return op, err
		}
		hi, err := mem.Read8(uint16(b2 + 1))
		if err != nil {
			op.Address = unresolved<<8 | uint16(lo)
			return op, err
		}
		base := uint16(hi)<<8 | uint16(lo)
		op.Address = base + uint16(y)
		op.PageCrossed = op.Address&0xff00 != base&0xff00
	}

	return op, nil
}
