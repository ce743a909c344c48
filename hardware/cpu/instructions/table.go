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
	"github.com/emu6502/emu6502/curated"
)

// NotBuilt is returned by Lookup() when the Table was not created by NewTable().
const NotBuilt = "instructions: table not built"

// Table is the complete list of instruction definitions, indexed by opcode.
type Table struct {
	definitions []*Definition
}

// abbreviations used in the table below.
const (
	imp  = Implied
	imm  = Immediate
	rel  = Relative
	abs  = Absolute
	zp   = ZeroPage
	ind  = Indirect
	indx = IndexedIndirect
	indy = IndirectIndexed
	absx = AbsoluteIndexedX
	absy = AbsoluteIndexedY
	zpx  = ZeroPageIndexedX
	zpy  = ZeroPageIndexedY

	page = true
	flat = false

	doc   = Documented
	und   = Undocumented
	unimp = Unimplemented
)

// NewTable creates the table of all 256 instruction definitions.
func NewTable() *Table {
	t := &Table{
		definitions: make([]*Definition, 256),
	}

	add := func(op uint8, o Operator, m AddressingMode, cycles int, ps bool, e Effect, v Validity) {
		t.definitions[op] = &Definition{
			OpCode:         op,
			Operator:       o,
			Mnemonic:       o.String(),
			Bytes:          m.Bytes(),
			Cycles:         cycles,
			AddressingMode: m,
			PageSensitive:  ps,
			Effect:         e,
			Validity:       v,
		}
	}

	add(0x00, Brk, imp, 7, flat, Interrupt, doc)
	add(0x01, Ora, indx, 6, flat, Read, doc)
	add(0x03, Slo, indx, 8, flat, RMW, und)
	add(0x04, Nop, zp, 3, flat, Read, und)
	add(0x05, Ora, zp, 3, flat, Read, doc)
	add(0x06, Asl, zp, 5, flat, RMW, doc)
	add(0x07, Slo, zp, 5, flat, RMW, und)
	add(0x08, Php, imp, 3, flat, Write, doc)
	add(0x09, Ora, imm, 2, flat, Read, doc)
	add(0x0a, Asl, imp, 2, flat, RMW, doc)
	add(0x0b, Anc, imm, 2, flat, Read, und)
	add(0x0c, Nop, abs, 4, flat, Read, und)
	add(0x0d, Ora, abs, 4, flat, Read, doc)
	add(0x0e, Asl, abs, 6, flat, RMW, doc)
	add(0x0f, Slo, abs, 6, flat, RMW, und)

	add(0x10, Bpl, rel, 2, flat, Flow, doc)
	add(0x11, Ora, indy, 5, page, Read, doc)
	add(0x13, Slo, indy, 8, flat, RMW, und)
	add(0x14, Nop, zpx, 4, flat, Read, und)
	add(0x15, Ora, zpx, 4, flat, Read, doc)
	add(0x16, Asl, zpx, 6, flat, RMW, doc)
	add(0x17, Slo, zpx, 6, flat, RMW, und)
	add(0x18, Clc, imp, 2, flat, Read, doc)
	add(0x19, Ora, absy, 4, page, Read, doc)
	add(0x1a, Nop, imp, 2, flat, Read, und)
	add(0x1b, Slo, absy, 7, flat, RMW, und)
	add(0x1c, Nop, absx, 4, page, Read, und)
	add(0x1d, Ora, absx, 4, page, Read, doc)
	add(0x1e, Asl, absx, 7, flat, RMW, doc)
	add(0x1f, Slo, absx, 7, flat, RMW, und)

	add(0x20, Jsr, abs, 6, flat, Subroutine, doc)
	add(0x21, And, indx, 6, flat, Read, doc)
	add(0x23, Rla, indx, 8, flat, RMW, und)
	add(0x24, Bit, zp, 3, flat, Read, doc)
	add(0x25, And, zp, 3, flat, Read, doc)
	add(0x26, Rol, zp, 5, flat, RMW, doc)
	add(0x27, Rla, zp, 5, flat, RMW, und)
	add(0x28, Plp, imp, 4, flat, Read, doc)
	add(0x29, And, imm, 2, flat, Read, doc)
	add(0x2a, Rol, imp, 2, flat, RMW, doc)
	add(0x2b, Anc, imm, 2, flat, Read, und)
	add(0x2c, Bit, abs, 4, flat, Read, doc)
	add(0x2d, And, abs, 4, flat, Read, doc)
	add(0x2e, Rol, abs, 6, flat, RMW, doc)
	add(0x2f, Rla, abs, 6, flat, RMW, und)

	add(0x30, Bmi, rel, 2, flat, Flow, doc)
	add(0x31, And, indy, 5, page, Read, doc)
	add(0x33, Rla, indy, 8, flat, RMW, und)
	add(0x34, Nop, zpx, 4, flat, Read, und)
	add(0x35, And, zpx, 4, flat, Read, doc)
	add(0x36, Rol, zpx, 6, flat, RMW, doc)
	add(0x37, Rla, zpx, 6, flat, RMW, und)
	add(0x38, Sec, imp, 2, flat, Read, doc)
	add(0x39, And, absy, 4, page, Read, doc)
	add(0x3a, Nop, imp, 2, flat, Read, und)
	add(0x3b, Rla, absy, 7, flat, RMW, und)
	add(0x3c, Nop, absx, 4, page, Read, und)
	add(0x3d, And, absx, 4, page, Read, doc)
	add(0x3e, Rol, absx, 7, flat, RMW, doc)
	add(0x3f, Rla, absx, 7, flat, RMW, und)

	add(0x40, Rti, imp, 6, flat, Interrupt, doc)
	add(0x41, Eor, indx, 6, flat, Read, doc)
	add(0x43, Sre, indx, 8, flat, RMW, und)
	add(0x44, Nop, zp, 3, flat, Read, und)
	add(0x45, Eor, zp, 3, flat, Read, doc)
	add(0x46, Lsr, zp, 5, flat, RMW, doc)
	add(0x47, Sre, zp, 5, flat, RMW, und)
	add(0x48, Pha, imp, 3, flat, Write, doc)
	add(0x49, Eor, imm, 2, flat, Read, doc)
	add(0x4a, Lsr, imp, 2, flat, RMW, doc)
	add(0x4b, Alr, imm, 2, flat, Read, und)
	add(0x4c, Jmp, abs, 3, flat, Flow, doc)
	add(0x4d, Eor, abs, 4, flat, Read, doc)
	add(0x4e, Lsr, abs, 6, flat, RMW, doc)
	add(0x4f, Sre, abs, 6, flat, RMW, und)

	add(0x50, Bvc, rel, 2, flat, Flow, doc)
	add(0x51, Eor, indy, 5, page, Read, doc)
	add(0x53, Sre, indy, 8, flat, RMW, und)
	add(0x54, Nop, zpx, 4, flat, Read, und)
	add(0x55, Eor, zpx, 4, flat, Read, doc)
	add(0x56, Lsr, zpx, 6, flat, RMW, doc)
	add(0x57, Sre, zpx, 6, flat, RMW, und)
	add(0x58, Cli, imp, 2, flat, Read, doc)
	add(0x59, Eor, absy, 4, page, Read, doc)
	add(0x5a, Nop, imp, 2, flat, Read, und)
	add(0x5b, Sre, absy, 7, flat, RMW, und)
	add(0x5c, Nop, absx, 4, page, Read, und)
	add(0x5d, Eor, absx, 4, page, Read, doc)
	add(0x5e, Lsr, absx, 7, flat, RMW, doc)
	add(0x5f, Sre, absx, 7, flat, RMW, und)

	add(0x60, Rts, imp, 6, flat, Subroutine, doc)
	add(0x61, Adc, indx, 6, flat, Read, doc)
	add(0x63, Rra, indx, 8, flat, RMW, und)
	add(0x64, Nop, zp, 3, flat, Read, und)
	add(0x65, Adc, zp, 3, flat, Read, doc)
	add(0x66, Ror, zp, 5, flat, RMW, doc)
	add(0x67, Rra, zp, 5, flat, RMW, und)
	add(0x68, Pla, imp, 4, flat, Read, doc)
	add(0x69, Adc, imm, 2, flat, Read, doc)
	add(0x6a, Ror, imp, 2, flat, RMW, doc)
	add(0x6b, Arr, imm, 2, flat, Read, und)
	add(0x6c, Jmp, ind, 5, flat, Flow, doc)
	add(0x6d, Adc, abs, 4, flat, Read, doc)
	add(0x6e, Ror, abs, 6, flat, RMW, doc)
	add(0x6f, Rra, abs, 6, flat, RMW, und)

	add(0x70, Bvs, rel, 2, flat, Flow, doc)
	add(0x71, Adc, indy, 5, page, Read, doc)
	add(0x73, Rra, indy, 8, flat, RMW, und)
	add(0x74, Nop, zpx, 4, flat, Read, und)
	add(0x75, Adc, zpx, 4, flat, Read, doc)
	add(0x76, Ror, zpx, 6, flat, RMW, doc)
	add(0x77, Rra, zpx, 6, flat, RMW, und)
	add(0x78, Sei, imp, 2, flat, Read, doc)
	add(0x79, Adc, absy, 4, page, Read, doc)
	add(0x7a, Nop, imp, 2, flat, Read, und)
	add(0x7b, Rra, absy, 7, flat, RMW, und)
	add(0x7c, Nop, absx, 4, page, Read, und)
	add(0x7d, Adc, absx, 4, page, Read, doc)
	add(0x7e, Ror, absx, 7, flat, RMW, doc)
	add(0x7f, Rra, absx, 7, flat, RMW, und)

	add(0x80, Nop, imm, 2, flat, Read, und)
	add(0x81, Sta, indx, 6, flat, Write, doc)
	add(0x82, Nop, imm, 2, flat, Read, und)
	add(0x83, Sax, indx, 6, flat, Write, und)
	add(0x84, Sty, zp, 3, flat, Write, doc)
	add(0x85, Sta, zp, 3, flat, Write, doc)
	add(0x86, Stx, zp, 3, flat, Write, doc)
	add(0x87, Sax, zp, 3, flat, Write, und)
	add(0x88, Dey, imp, 2, flat, Read, doc)
	add(0x89, Nop, imm, 2, flat, Read, und)
	add(0x8a, Txa, imp, 2, flat, Read, doc)
	add(0x8b, Xaa, imm, 2, flat, Read, unimp)
	add(0x8c, Sty, abs, 4, flat, Write, doc)
	add(0x8d, Sta, abs, 4, flat, Write, doc)
	add(0x8e, Stx, abs, 4, flat, Write, doc)
	add(0x8f, Sax, abs, 4, flat, Write, und)

	add(0x90, Bcc, rel, 2, flat, Flow, doc)
	add(0x91, Sta, indy, 6, flat, Write, doc)
	add(0x93, Ahx, indy, 6, flat, Write, unimp)
	add(0x94, Sty, zpx, 4, flat, Write, doc)
	add(0x95, Sta, zpx, 4, flat, Write, doc)
	add(0x96, Stx, zpy, 4, flat, Write, doc)
	add(0x97, Sax, zpy, 4, flat, Write, und)
	add(0x98, Tya, imp, 2, flat, Read, doc)
	add(0x99, Sta, absy, 5, flat, Write, doc)
	add(0x9a, Txs, imp, 2, flat, Read, doc)
	add(0x9b, Tas, absy, 5, flat, Write, unimp)
	add(0x9c, Shy, absx, 5, flat, Write, unimp)
	add(0x9d, Sta, absx, 5, flat, Write, doc)
	add(0x9e, Shx, absy, 5, flat, Write, unimp)
	add(0x9f, Ahx, absy, 5, flat, Write, unimp)

	add(0xa0, Ldy, imm, 2, flat, Read, doc)
	add(0xa1, Lda, indx, 6, flat, Read, doc)
	add(0xa2, Ldx, imm, 2, flat, Read, doc)
	add(0xa3, Lax, indx, 6, flat, Read, und)
	add(0xa4, Ldy, zp, 3, flat, Read, doc)
	add(0xa5, Lda, zp, 3, flat, Read, doc)
	add(0xa6, Ldx, zp, 3, flat, Read, doc)
	add(0xa7, Lax, zp, 3, flat, Read, und)
	add(0xa8, Tay, imp, 2, flat, Read, doc)
	add(0xa9, Lda, imm, 2, flat, Read, doc)
	add(0xaa, Tax, imp, 2, flat, Read, doc)
	add(0xab, Lax, imm, 2, flat, Read, unimp)
	add(0xac, Ldy, abs, 4, flat, Read, doc)
	add(0xad, Lda, abs, 4, flat, Read, doc)
	add(0xae, Ldx, abs, 4, flat, Read, doc)
	add(0xaf, Lax, abs, 4, flat, Read, und)

	add(0xb0, Bcs, rel, 2, flat, Flow, doc)
	add(0xb1, Lda, indy, 5, page, Read, doc)
	add(0xb3, Lax, indy, 5, page, Read, und)
	add(0xb4, Ldy, zpx, 4, flat, Read, doc)
	add(0xb5, Lda, zpx, 4, flat, Read, doc)
	add(0xb6, Ldx, zpy, 4, flat, Read, doc)
	add(0xb7, Lax, zpy, 4, flat, Read, und)
	add(0xb8, Clv, imp, 2, flat, Read, doc)
	add(0xb9, Lda, absy, 4, page, Read, doc)
	add(0xba, Tsx, imp, 2, flat, Read, doc)
	add(0xbb, Las, absy, 4, page, Read, und)
	add(0xbc, Ldy, absx, 4, page, Read, doc)
	add(0xbd, Lda, absx, 4, page, Read, doc)
	add(0xbe, Ldx, absy, 4, page, Read, doc)
	add(0xbf, Lax, absy, 4, page, Read, und)

	add(0xc0, Cpy, imm, 2, flat, Read, doc)
	add(0xc1, Cmp, indx, 6, flat, Read, doc)
	add(0xc2, Nop, imm, 2, flat, Read, und)
	add(0xc3, Dcp, indx, 8, flat, RMW, und)
	add(0xc4, Cpy, zp, 3, flat, Read, doc)
	add(0xc5, Cmp, zp, 3, flat, Read, doc)
	add(0xc6, Dec, zp, 5, flat, RMW, doc)
	add(0xc7, Dcp, zp, 5, flat, RMW, und)
	add(0xc8, Iny, imp, 2, flat, Read, doc)
	add(0xc9, Cmp, imm, 2, flat, Read, doc)
	add(0xca, Dex, imp, 2, flat, Read, doc)
	add(0xcb, Axs, imm, 2, flat, Read, und)
	add(0xcc, Cpy, abs, 4, flat, Read, doc)
	add(0xcd, Cmp, abs, 4, flat, Read, doc)
	add(0xce, Dec, abs, 6, flat, RMW, doc)
	add(0xcf, Dcp, abs, 6, flat, RMW, und)

	add(0xd0, Bne, rel, 2, flat, Flow, doc)
	add(0xd1, Cmp, indy, 5, page, Read, doc)
	add(0xd3, Dcp, indy, 8, flat, RMW, und)
	add(0xd4, Nop, zpx, 4, flat, Read, und)
	add(0xd5, Cmp, zpx, 4, flat, Read, doc)
	add(0xd6, Dec, zpx, 6, flat, RMW, doc)
	add(0xd7, Dcp, zpx, 6, flat, RMW, und)
	add(0xd8, Cld, imp, 2, flat, Read, doc)
	add(0xd9, Cmp, absy, 4, page, Read, doc)
	add(0xda, Nop, imp, 2, flat, Read, und)
	add(0xdb, Dcp, absy, 7, flat, RMW, und)
	add(0xdc, Nop, absx, 4, page, Read, und)
	add(0xdd, Cmp, absx, 4, page, Read, doc)
	add(0xde, Dec, absx, 7, flat, RMW, doc)
	add(0xdf, Dcp, absx, 7, flat, RMW, und)

	add(0xe0, Cpx, imm, 2, flat, Read, doc)
	add(0xe1, Sbc, indx, 6, flat, Read, doc)
	add(0xe2, Nop, imm, 2, flat, Read, und)
	add(0xe3, Isc, indx, 8, flat, RMW, und)
	add(0xe4, Cpx, zp, 3, flat, Read, doc)
	add(0xe5, Sbc, zp, 3, flat, Read, doc)
	add(0xe6, Inc, zp, 5, flat, RMW, doc)
	add(0xe7, Isc, zp, 5, flat, RMW, und)
	add(0xe8, Inx, imp, 2, flat, Read, doc)
	add(0xe9, Sbc, imm, 2, flat, Read, doc)
	add(0xea, Nop, imp, 2, flat, Read, doc)
	add(0xeb, Sbc, imm, 2, flat, Read, und)
	add(0xec, Cpx, abs, 4, flat, Read, doc)
	add(0xed, Sbc, abs, 4, flat, Read, doc)
	add(0xee, Inc, abs, 6, flat, RMW, doc)
	add(0xef, Isc, abs, 6, flat, RMW, und)

	add(0xf0, Beq, rel, 2, flat, Flow, doc)
	add(0xf1, Sbc, indy, 5, page, Read, doc)
	add(0xf3, Isc, indy, 8, flat, RMW, und)
	add(0xf4, Nop, zpx, 4, flat, Read, und)
	add(0xf5, Sbc, zpx, 4, flat, Read, doc)
	add(0xf6, Inc, zpx, 6, flat, RMW, doc)
	add(0xf7, Isc, zpx, 6, flat, RMW, und)
	add(0xf8, Sed, imp, 2, flat, Read, doc)
	add(0xf9, Sbc, absy, 4, page, Read, doc)
	add(0xfa, Nop, imp, 2, flat, Read, und)
	add(0xfb, Isc, absy, 7, flat, RMW, und)
	add(0xfc, Nop, absx, 4, page, Read, und)
	add(0xfd, Sbc, absx, 4, page, Read, doc)
	add(0xfe, Inc, absx, 7, flat, RMW, doc)
	add(0xff, Isc, absx, 7, flat, RMW, und)

	// the remaining opcodes jam the processor
	for op := range t.definitions {
		if t.definitions[op] == nil {
			add(uint8(op), Kil, imp, 2, flat, Read, Illegal)
		}
	}

	return t
}

// Lookup returns the definition for the opcode.
func (t *Table) Lookup(opcode uint8) (*Definition, error) {
	if t == nil || len(t.definitions) != 256 {
		return nil, curated.Errorf(NotBuilt)
	}
	return t.definitions[opcode], nil
}

// Definitions returns every definition in opcode order.
func (t *Table) Definitions() []*Definition {
	if t == nil {
		return nil
	}
	return t.definitions
}
