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

package instructions_test

import (
	"testing"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/hardware/cpu/instructions"
	"github.com/emu6502/emu6502/test"
)

func TestLookupBeforeConstruction(t *testing.T) {
	var tab instructions.Table
	_, err := tab.Lookup(0xa9)
	test.ExpectSuccess(t, curated.Is(err, instructions.NotBuilt))

	var ptab *instructions.Table
	_, err = ptab.Lookup(0xa9)
	test.ExpectSuccess(t, curated.Is(err, instructions.NotBuilt))

	ptab = instructions.NewTable()
	defn, err := ptab.Lookup(0xa9)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, defn.Mnemonic, "LDA")
}

func TestCompleteness(t *testing.T) {
	tab := instructions.NewTable()

	counts := make(map[instructions.Validity]int)
	for op := range 256 {
		defn, err := tab.Lookup(uint8(op))
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, defn.OpCode, uint8(op))
		test.ExpectEquality(t, defn.Bytes, defn.AddressingMode.Bytes())
		test.ExpectSuccess(t, defn.Cycles >= 2 && defn.Cycles <= 8, defn)
		counts[defn.Validity]++
	}

	test.ExpectEquality(t, counts[instructions.Documented], 151)
	test.ExpectEquality(t, counts[instructions.Unimplemented], 7)
	test.ExpectEquality(t, counts[instructions.Illegal], 12)
	test.ExpectEquality(t, counts[instructions.Undocumented], 256-151-7-12)
}

func TestDefinitions(t *testing.T) {
	tab := instructions.NewTable()

	type expected struct {
		opcode   uint8
		mnemonic string
		bytes    int
		cycles   int
		mode     instructions.AddressingMode
		page     bool
	}

	for _, e := range []expected{
		{0x00, "BRK", 1, 7, instructions.Implied, false},
		{0x6c, "JMP", 3, 5, instructions.Indirect, false},
		{0xb1, "LDA", 2, 5, instructions.IndirectIndexed, true},
		{0x91, "STA", 2, 6, instructions.IndirectIndexed, false},
		{0xbe, "LDX", 3, 4, instructions.AbsoluteIndexedY, true},
		{0x96, "STX", 2, 4, instructions.ZeroPageIndexedY, false},
		{0xfe, "INC", 3, 7, instructions.AbsoluteIndexedX, false},
		{0xd0, "BNE", 2, 2, instructions.Relative, false},
		{0x02, "KIL", 1, 2, instructions.Implied, false},
		{0xeb, "SBC", 2, 2, instructions.Immediate, false},
		{0xa7, "LAX", 2, 3, instructions.ZeroPage, false},
	} {
		defn, err := tab.Lookup(e.opcode)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, defn.Mnemonic, e.mnemonic, e.opcode)
		test.ExpectEquality(t, defn.Bytes, e.bytes, e.opcode)
		test.ExpectEquality(t, defn.Cycles, e.cycles, e.opcode)
		test.ExpectEquality(t, defn.AddressingMode, e.mode, e.opcode)
		test.ExpectEquality(t, defn.PageSensitive, e.page, e.opcode)
	}

	defn, _ := tab.Lookup(0xd0)
	test.ExpectSuccess(t, defn.IsBranch())
	defn, _ = tab.Lookup(0x4c)
	test.ExpectFailure(t, defn.IsBranch())

	for _, op := range []uint8{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xb2, 0xd2, 0xf2} {
		defn, _ := tab.Lookup(op)
		test.ExpectEquality(t, defn.Validity, instructions.Illegal, op)
		test.ExpectFailure(t, defn.IsExecutable(), op)
	}

	for _, op := range []uint8{0x8b, 0x93, 0x9b, 0x9c, 0x9e, 0x9f, 0xab} {
		defn, _ := tab.Lookup(op)
		test.ExpectEquality(t, defn.Validity, instructions.Unimplemented, op)
	}
}
