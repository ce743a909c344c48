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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/emu6502/emu6502/hardware/cpu/instructions"
	"github.com/emu6502/emu6502/hardware/cpu/registers"
)

// Entry is a disassembled instruction.
type Entry struct {
	Address uint16
	Defn    *instructions.Definition

	// the bytes of the instruction, including the opcode. fewer bytes than
	// the definition requires means that the instruction extends into
	// unmapped memory
	Data []uint8

	// string representations of the instruction
	Bytecode string
	Operator string
	Operand  string
}

// IsPartial returns true if not all bytes of the instruction could be read.
func (e Entry) IsPartial() bool {
	return e.Defn == nil || len(e.Data) < e.Defn.Bytes
}

// String returns the entry in the form:
//
//	$0600: a9 01     LDA #$01
func (e Entry) String() string {
	s := fmt.Sprintf("$%04x: %-8s  %s %s", e.Address, e.Bytecode, e.Operator, e.Operand)
	return strings.TrimRight(s, " ")
}

// formatEntry fills in the string fields of the entry.
func formatEntry(e *Entry) {
	bc := strings.Builder{}
	for i, b := range e.Data {
		if i > 0 {
			bc.WriteRune(' ')
		}
		bc.WriteString(fmt.Sprintf("%02x", b))
	}

	if e.Defn == nil {
		e.Bytecode = bc.String()
		e.Operator = "???"
		return
	}

	e.Operator = e.Defn.Mnemonic

	var operand string

	switch e.Defn.Bytes {
	case 3:
		switch len(e.Data) {
		case 3:
			operand = fmt.Sprintf("$%04x", uint16(e.Data[1])|uint16(e.Data[2])<<8)
		case 2:
			operand = fmt.Sprintf("$??%02x", e.Data[1])
			bc.WriteString(" ??")
		default:
			operand = "$????"
			bc.WriteString(" ?? ??")
		}
	case 2:
		switch len(e.Data) {
		case 2:
			if e.Defn.AddressingMode == instructions.Relative {
				operand = fmt.Sprintf("$%04x", absoluteBranchDestination(e.Address, e.Data[1]))
			} else {
				operand = fmt.Sprintf("$%02x", e.Data[1])
			}
		default:
			operand = "$??"
			bc.WriteString(" ??")
		}
	}

	e.Bytecode = bc.String()
	e.Operand = addrModeDecoration(operand, e.Defn.AddressingMode)
}

// addrModeDecoration decorates the operand according to the addressing mode.
func addrModeDecoration(operand string, mode instructions.AddressingMode) string {
	s := operand

	switch mode {
	case instructions.Implied:
	case instructions.Immediate:
		s = fmt.Sprintf("#%s", operand)
	case instructions.Relative:
	case instructions.Absolute:
	case instructions.ZeroPage:
	case instructions.Indirect:
		s = fmt.Sprintf("(%s)", operand)
	case instructions.IndexedIndirect:
		s = fmt.Sprintf("(%s,X)", operand)
	case instructions.IndirectIndexed:
		s = fmt.Sprintf("(%s),Y", operand)
	case instructions.AbsoluteIndexedX:
		s = fmt.Sprintf("%s,X", operand)
	case instructions.AbsoluteIndexedY:
		s = fmt.Sprintf("%s,Y", operand)
	case instructions.ZeroPageIndexedX:
		s = fmt.Sprintf("%s,X", operand)
	case instructions.ZeroPageIndexedY:
		s = fmt.Sprintf("%s,Y", operand)
	}

	return s
}

// absoluteBranchDestination returns the branch operand as the address of the
// branched PC, rather than an offset value.
func absoluteBranchDestination(addr uint16, operand uint8) uint16 {
	// all 6502 branch instructions are 2 bytes in length
	pc := registers.NewProgramCounter(addr)
	pc.Add(2)

	// the sign bit must be propogated to the more-significant bits
	pc.Add(uint16(int8(operand)))

	return pc.Address()
}
