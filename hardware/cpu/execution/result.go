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

import (
	"fmt"
	"strings"

	"github.com/emu6502/emu6502/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition
	Defn *instructions.Definition

	// the number of bytes read during instruction decode
	ByteCount int

	// the operand bytes following the opcode. only the first ByteCount-1
	// bytes are meaningful
	InstructionData [2]uint8

	Operand Operand

	// the actual number of cycles taken by the instruction
	Cycles int

	// whether a page-sensitive instruction crossed a page boundary
	PageFault bool

	// whether a branch instruction took the branch
	BranchTaken bool

	// a known CPU bug triggered by the instruction
	CPUBug Bug

	// the instruction was not executed because of it's validity
	Skipped bool

	// the instruction completed. a result is not final if a memory access
	// failed during execution
	Final bool

	// the memory error that stopped the instruction, if any
	Error error
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// InstructionWord returns the operand bytes as a 16 bit value.
func (r Result) InstructionWord() uint16 {
	return uint16(r.InstructionData[0]) | uint16(r.InstructionData[1])<<8
}

// String returns a single line description of the executed instruction. The
// format is suitable for execution traces.
func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("$%04x: undecoded", r.Address)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("$%04x: %02x", r.Address, r.Defn.OpCode))
	for i := 0; i < 2; i++ {
		if i < r.ByteCount-1 {
			s.WriteString(fmt.Sprintf(" %02x", r.InstructionData[i]))
		} else {
			s.WriteString("   ")
		}
	}
	s.WriteString("  ")
	s.WriteString(r.Defn.Mnemonic)

	switch r.Defn.AddressingMode {
	case instructions.Immediate:
		s.WriteString(fmt.Sprintf(" #$%02x", r.Operand.Value))
	case instructions.Implied:
	default:
		s.WriteString(fmt.Sprintf(" $%04x", r.Operand.Address))
	}

	s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))
	if r.PageFault {
		s.WriteString(" page-fault")
	}
	if r.BranchTaken {
		s.WriteString(" taken")
	}
	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" (%s)", r.CPUBug))
	}
	if r.Skipped {
		s.WriteString(fmt.Sprintf(" (%s)", r.Defn.Validity))
	}
	if r.Error != nil {
		s.WriteString(fmt.Sprintf(" error: %v", r.Error))
	}

	return s.String()
}
