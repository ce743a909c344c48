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

// Operator identifies the operation performed by an instruction. Different
// opcodes share an Operator when they differ only in addressing mode.
type Operator int

// List of operators. The documented operators come first.
const (
	Nop Operator = iota
	Adc
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	// undocumented operators
	Slo
	Rla
	Sre
	Rra
	Sax
	Lax
	Dcp
	Isc
	Anc
	Alr
	Arr
	Axs
	Las

	// undocumented operators that are not emulated
	Xaa
	Ahx
	Tas
	Shy
	Shx

	// jams the processor
	Kil
)

var operatorNames = [...]string{
	Nop: "NOP", Adc: "ADC", And: "AND", Asl: "ASL", Bcc: "BCC", Bcs: "BCS",
	Beq: "BEQ", Bit: "BIT", Bmi: "BMI", Bne: "BNE", Bpl: "BPL", Brk: "BRK",
	Bvc: "BVC", Bvs: "BVS", Clc: "CLC", Cld: "CLD", Cli: "CLI", Clv: "CLV",
	Cmp: "CMP", Cpx: "CPX", Cpy: "CPY", Dec: "DEC", Dex: "DEX", Dey: "DEY",
	Eor: "EOR", Inc: "INC", Inx: "INX", Iny: "INY", Jmp: "JMP", Jsr: "JSR",
	Lda: "LDA", Ldx: "LDX", Ldy: "LDY", Lsr: "LSR", Ora: "ORA", Pha: "PHA",
	Php: "PHP", Pla: "PLA", Plp: "PLP", Rol: "ROL", Ror: "ROR", Rti: "RTI",
	Rts: "RTS", Sbc: "SBC", Sec: "SEC", Sed: "SED", Sei: "SEI", Sta: "STA",
	Stx: "STX", Sty: "STY", Tax: "TAX", Tay: "TAY", Tsx: "TSX", Txa: "TXA",
	Txs: "TXS", Tya: "TYA",
	Slo: "SLO", Rla: "RLA", Sre: "SRE", Rra: "RRA", Sax: "SAX", Lax: "LAX",
	Dcp: "DCP", Isc: "ISC", Anc: "ANC", Alr: "ALR", Arr: "ARR", Axs: "AXS",
	Las: "LAS",
	Xaa: "XAA", Ahx: "AHX", Tas: "TAS", Shy: "SHY", Shx: "SHX",
	Kil: "KIL",
}

func (o Operator) String() string {
	if o < 0 || int(o) >= len(operatorNames) {
		return "???"
	}
	return operatorNames[o]
}

// IsBranch returns true if the operator is one of the conditional branches.
func (o Operator) IsBranch() bool {
	switch o {
	case Bcc, Bcs, Beq, Bmi, Bne, Bpl, Bvc, Bvs:
		return true
	}
	return false
}
