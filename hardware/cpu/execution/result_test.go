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

package execution_test

import (
	"testing"

	"github.com/emu6502/emu6502/hardware/cpu/execution"
	"github.com/emu6502/emu6502/hardware/cpu/instructions"
	"github.com/emu6502/emu6502/test"
)

func TestResultString(t *testing.T) {
	tab := instructions.NewTable()

	lda, _ := tab.Lookup(0xa9)
	r := execution.Result{
		Address:         0x0600,
		Defn:            lda,
		ByteCount:       2,
		InstructionData: [2]uint8{0x01, 0x00},
		Operand:         execution.Operand{Value: 0x01},
		Cycles:          2,
		Final:           true,
	}
	test.ExpectEquality(t, r.String(), "$0600: a9 01     LDA #$01 [2]")
	test.ExpectSuccess(t, r.IsValid())

	sta, _ := tab.Lookup(0x9d)
	r = execution.Result{
		Address:         0x0602,
		Defn:            sta,
		ByteCount:       3,
		InstructionData: [2]uint8{0x00, 0x02},
		Operand:         execution.Operand{Address: 0x0205, HasAddress: true},
		Cycles:          5,
		Final:           true,
	}
	test.ExpectEquality(t, r.InstructionWord(), 0x0200)
	test.ExpectEquality(t, r.String(), "$0602: 9d 00 02  STA $0205 [5]")
	test.ExpectSuccess(t, r.IsValid())

	var empty execution.Result
	test.ExpectEquality(t, empty.String(), "$0000: undecoded")
	test.ExpectFailure(t, empty.IsValid())
}

func TestValidity(t *testing.T) {
	tab := instructions.NewTable()

	lda, _ := tab.Lookup(0xbd)
	r := execution.Result{Defn: lda, ByteCount: 3, Cycles: 5, PageFault: true, Final: true}
	test.ExpectSuccess(t, r.IsValid())

	r.Cycles = 4
	test.ExpectFailure(t, r.IsValid())

	// a page fault on an instruction that isn't page sensitive
	sta, _ := tab.Lookup(0x9d)
	r = execution.Result{Defn: sta, ByteCount: 3, Cycles: 5, PageFault: true, Final: true}
	test.ExpectFailure(t, r.IsValid())

	bne, _ := tab.Lookup(0xd0)
	r = execution.Result{Defn: bne, ByteCount: 2, Cycles: 4, BranchTaken: true, Final: true}
	test.ExpectSuccess(t, r.IsValid())
	r.Cycles = 5
	test.ExpectFailure(t, r.IsValid())

	r.Cycles = 2
	r.ByteCount = 3
	test.ExpectFailure(t, r.IsValid())
}
