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

package cpu_test

import (
	"testing"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/hardware/cpu"
	"github.com/emu6502/emu6502/hardware/cpu/execution"
	"github.com/emu6502/emu6502/hardware/cpu/instructions"
	"github.com/emu6502/emu6502/hardware/memory"
	"github.com/emu6502/emu6502/test"
)

func TestResolve(t *testing.T) {
	mem := newMockMem()

	// pointers in zero page
	mem.putInstructions(0x0010, 0x00, 0x04)
	mem.putInstructions(0x00ff, 0x80)
	mem.putInstructions(0x0000, 0x05)
	mem.putInstructions(0x0020, 0xf0, 0x02)

	tests := []struct {
		mode        instructions.AddressingMode
		pc          uint16
		b2, b3      uint8
		x, y        uint8
		address     uint16
		value       uint8
		pageCrossed bool
		bug         execution.Bug
	}{
		{mode: instructions.Immediate, b2: 0x42, value: 0x42},
		{mode: instructions.ZeroPage, b2: 0x42, address: 0x0042},
		{mode: instructions.ZeroPageIndexedX, b2: 0x80, x: 0x10, address: 0x0090},
		{mode: instructions.ZeroPageIndexedX, b2: 0xf0, x: 0x20, address: 0x0010, bug: execution.ZeroPageIndexBug},
		{mode: instructions.ZeroPageIndexedY, b2: 0xff, y: 0x01, address: 0x0000, bug: execution.ZeroPageIndexBug},
		{mode: instructions.Absolute, b2: 0x34, b3: 0x12, address: 0x1234},
		{mode: instructions.AbsoluteIndexedX, b2: 0xf0, b3: 0x12, x: 0x0f, address: 0x12ff},
		{mode: instructions.AbsoluteIndexedX, b2: 0xf0, b3: 0x12, x: 0x10, address: 0x1300, pageCrossed: true},
		{mode: instructions.AbsoluteIndexedY, b2: 0xff, b3: 0xff, y: 0x01, address: 0x0000, pageCrossed: true},
		{mode: instructions.Relative, pc: 0x0600, b2: 0x10, address: 0x0612},
		{mode: instructions.Relative, pc: 0x0600, b2: 0xfc, address: 0x05fe, pageCrossed: true},
		{mode: instructions.IndexedIndirect, b2: 0x08, x: 0x08, address: 0x0400},
		{mode: instructions.IndexedIndirect, b2: 0xfe, x: 0x01, address: 0x0580},
		{mode: instructions.IndirectIndexed, b2: 0x20, y: 0x0f, address: 0x02ff},
		{mode: instructions.IndirectIndexed, b2: 0x20, y: 0x10, address: 0x0300, pageCrossed: true},
		{mode: instructions.IndirectIndexed, b2: 0xff, y: 0x00, address: 0x0580},
	}

	for i, tt := range tests {
		op, err := cpu.Resolve(tt.pc, tt.mode, tt.b2, tt.b3, tt.x, tt.y, mem)
		test.ExpectSuccess(t, err, i, tt.mode)
		if tt.mode == instructions.Immediate {
			test.ExpectEquality(t, op.Value, tt.value, i, tt.mode)
			test.ExpectFailure(t, op.HasAddress, i, tt.mode)
		} else {
			test.ExpectEquality(t, op.Address, tt.address, i, tt.mode)
			test.ExpectSuccess(t, op.HasAddress, i, tt.mode)
		}
		test.ExpectEquality(t, op.PageCrossed, tt.pageCrossed, i, tt.mode)
		test.ExpectEquality(t, op.Bug, tt.bug, i, tt.mode)
	}
}

func TestResolveUnmapped(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x7fff, 0x34)
	mem.putInstructions(0x7f00, 0x12)

	// the high byte of the pointer is read from the start of the page
	op, err := cpu.Resolve(0, instructions.Indirect, 0xff, 0x7f, 0, 0, mem)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, op.Address, 0x1234)
	test.ExpectEquality(t, op.Bug, execution.JmpIndirectAddressingBug)

	op, err = cpu.Resolve(0, instructions.Indirect, 0x00, 0x90, 0, 0, mem)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidAddress))
	test.ExpectEquality(t, op.Address, 0xffff)
}
