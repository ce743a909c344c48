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

package instructions

import (
	"fmt"
)

// Effect categorises an instruction by the effect it has.
type Effect int

// List of effect categories.
const (
	Read Effect = iota
	Write
	RMW

	// the following three effects have a variable effect on the program
	// counter, depending on the instruction's precise operand.

	// flow consists of the Branch and JMP instructions. Branch instructions
	// specifically can be distinguished by the AddressingMode.
	Flow

	Subroutine
	Interrupt
)

func (e Effect) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case RMW:
		return "RMW"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}

// Validity describes the standing of an opcode in the instruction set.
type Validity int

// List of validity values.
const (
	Documented Validity = iota

	// opcodes that are not part of the published instruction set but which
	// are emulated
	Undocumented

	// opcodes that are not emulated because their behaviour is unstable on
	// real hardware. the instruction is treated as a NOP of the same length
	Unimplemented

	// opcodes that jam the processor
	Illegal
)

func (v Validity) String() string {
	switch v {
	case Documented:
		return "documented"
	case Undocumented:
		return "undocumented"
	case Unimplemented:
		return "unimplemented"
	case Illegal:
		return "illegal"
	}
	return "unknown validity"
}

// Definition defines each instruction in the instruction set; one per
// opcode. Definitions are never altered once created.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Mnemonic       string
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         Effect
	Validity       Validity
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s %s]",
		defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.AddressingMode,
		defn.PageSensitive, defn.Effect, defn.Validity)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// IsExecutable returns false for opcodes that should not be executed. That
// is the Unimplemented and Illegal opcodes.
func (defn Definition) IsExecutable() bool {
	return defn.Validity == Documented || defn.Validity == Undocumented
}
