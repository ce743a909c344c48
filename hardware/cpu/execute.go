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
	"github.com/emu6502/emu6502/hardware/cpu/registers"
)

// read the value of the operand. immediate mode values are in the operand
// itself.
func (mc *CPU) operandValue(defn *instructions.Definition, op execution.Operand) (uint8, error) {
	if defn.AddressingMode == instructions.Immediate {
		return op.Value, nil
	}
	return mc.read8(op.Address)
}

// modify applies the function to the accumulator for implied addressing or to
// the memory location for all other modes. returns the value after
// modification.
func (mc *CPU) modify(defn *instructions.Definition, op execution.Operand, f func(r *registers.Register)) (uint8, error) {
	if defn.AddressingMode == instructions.Implied {
		f(&mc.A)
		return mc.A.Value(), nil
	}

	v, err := mc.read8(op.Address)
	if err != nil {
		return 0, err
	}

	r := registers.NewRegister(v, "M")
	f(&r)

	if err := mc.write8(op.Address, r.Value()); err != nil {
		return 0, err
	}

	return r.Value(), nil
}

// branch to the relative address if the condition is true.
func (mc *CPU) branch(defn *instructions.Definition, op execution.Operand, condition bool) {
	if !condition {
		return
	}

	mc.LastResult.BranchTaken = true
	mc.LastResult.Cycles++
	if op.PageCrossed {
		mc.LastResult.Cycles++
	}

	mc.PC.Load(op.Address - uint16(defn.Bytes))
}

func (mc *CPU) adc(v uint8) {
	mc.Status.Carry, mc.Status.Overflow = mc.A.Add(v, mc.Status.Carry)
	mc.Status.SetZN(mc.A.Value())
}

func (mc *CPU) sbc(v uint8) {
	mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(v, mc.Status.Carry)
	mc.Status.SetZN(mc.A.Value())
}

func (mc *CPU) compare(r registers.Register, v uint8) {
	var result uint8
	mc.Status.Carry, result = r.Compare(v)
	mc.Status.SetZN(result)
}

func (mc *CPU) pushAddress(address uint16) error {
	if err := mc.push(uint8(address >> 8)); err != nil {
		return err
	}
	return mc.push(uint8(address))
}

func (mc *CPU) pullAddress() (uint16, error) {
	lo, err := mc.pull()
	if err != nil {
		return 0, err
	}
	hi, err := mc.pull()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// execute the instruction. the program counter still points to the opcode of
// the instruction and is advanced by finalise(). instructions that change
// the flow of the program load the program counter with the target address
// minus the length of the instruction.
func (mc *CPU) execute(defn *instructions.Definition, op execution.Operand) error {
	switch defn.Operator {
	case instructions.Nop:
		// no memory access for NOP, even for the undocumented variants that
		// have an operand

	case instructions.Clc:
		mc.Status.Carry = false
	case instructions.Cld:
		mc.Status.DecimalMode = false
	case instructions.Cli:
		mc.Status.InterruptDisable = false
	case instructions.Clv:
		mc.Status.Overflow = false
	case instructions.Sec:
		mc.Status.Carry = true
	case instructions.Sed:
		mc.Status.DecimalMode = true
	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.SetZN(mc.X.Value())
	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.SetZN(mc.Y.Value())
	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.SetZN(mc.A.Value())
	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.SetZN(mc.A.Value())
	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.SetZN(mc.X.Value())
	case instructions.Txs:
		mc.SP.Load(mc.X.Value())

	case instructions.Lda, instructions.Ldx, instructions.Ldy, instructions.Lax:
		v, err := mc.operandValue(defn, op)
		if err != nil {
			return err
		}
		switch defn.Operator {
		case instructions.Lda:
			mc.A.Load(v)
		case instructions.Ldx:
			mc.X.Load(v)
		case instructions.Ldy:
			mc.Y.Load(v)
		case instructions.Lax:
			mc.A.Load(v)
			mc.X.Load(v)
		}
		mc.Status.SetZN(v)

	case instructions.Sta:
		return mc.write8(op.Address, mc.A.Value())
	case instructions.Stx:
		return mc.write8(op.Address, mc.X.Value())
	case instructions.Sty:
		return mc.write8(op.Address, mc.Y.Value())
	case instructions.Sax:
		return mc.write8(op.Address, mc.A.Value()&mc.X.Value())

	case instructions.And, instructions.Ora, instructions.Eor:
		v, err := mc.operandValue(defn, op)
		if err != nil {
			return err
		}
		switch defn.Operator {
		case instructions.And:
			mc.A.AND(v)
		case instructions.Ora:
			mc.A.ORA(v)
		case instructions.Eor:
			mc.A.EOR(v)
		}
		mc.Status.SetZN(mc.A.Value())

	case instructions.Bit:
		v, err := mc.operandValue(defn, op)
		if err != nil {
			return err
		}
		mc.Status.Zero = mc.A.Value()&v == 0
		mc.Status.Sign = v&0x80 == 0x80
		mc.Status.Overflow = v&0x40 == 0x40

	case instructions.Adc, instructions.Sbc:
		v, err := mc.operandValue(defn, op)
		if err != nil {
			return err
		}
		if defn.Operator == instructions.Adc {
			mc.adc(v)
		} else {
			mc.sbc(v)
		}

	case instructions.Cmp, instructions.Cpx, instructions.Cpy:
		v, err := mc.operandValue(defn, op)
		if err != nil {
			return err
		}
		switch defn.Operator {
		case instructions.Cmp:
			mc.compare(mc.A, v)
		case instructions.Cpx:
			mc.compare(mc.X, v)
		case instructions.Cpy:
			mc.compare(mc.Y, v)
		}

	case instructions.Inx:
		mc.X.Load(mc.X.Value() + 1)
		mc.Status.SetZN(mc.X.Value())
	case instructions.Iny:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.Status.SetZN(mc.Y.Value())
	case instructions.Dex:
		mc.X.Load(mc.X.Value() - 1)
		mc.Status.SetZN(mc.X.Value())
	case instructions.Dey:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Inc, instructions.Dec, instructions.Dcp, instructions.Isc:
		delta := uint8(1)
		if defn.Operator == instructions.Dec || defn.Operator == instructions.Dcp {
			delta = 0xff
		}
		v, err := mc.modify(defn, op, func(r *registers.Register) {
			r.Load(r.Value() + delta)
		})
		if err != nil {
			return err
		}
		switch defn.Operator {
		case instructions.Dcp:
			mc.compare(mc.A, v)
		case instructions.Isc:
			mc.sbc(v)
		default:
			mc.Status.SetZN(v)
		}

	case instructions.Asl, instructions.Slo:
		v, err := mc.modify(defn, op, func(r *registers.Register) {
			mc.Status.Carry = r.ASL()
		})
		if err != nil {
			return err
		}
		if defn.Operator == instructions.Slo {
			mc.A.ORA(v)
			v = mc.A.Value()
		}
		mc.Status.SetZN(v)

	case instructions.Lsr, instructions.Sre:
		v, err := mc.modify(defn, op, func(r *registers.Register) {
			mc.Status.Carry = r.LSR()
		})
		if err != nil {
			return err
		}
		if defn.Operator == instructions.Sre {
			mc.A.EOR(v)
			v = mc.A.Value()
		}
		mc.Status.SetZN(v)

	case instructions.Rol, instructions.Rla:
		v, err := mc.modify(defn, op, func(r *registers.Register) {
			mc.Status.Carry = r.ROL(mc.Status.Carry)
		})
		if err != nil {
			return err
		}
		if defn.Operator == instructions.Rla {
			mc.A.AND(v)
			v = mc.A.Value()
		}
		mc.Status.SetZN(v)

	case instructions.Ror, instructions.Rra:
		v, err := mc.modify(defn, op, func(r *registers.Register) {
			mc.Status.Carry = r.ROR(mc.Status.Carry)
		})
		if err != nil {
			return err
		}
		if defn.Operator == instructions.Rra {
			mc.adc(v)
		} else {
			mc.Status.SetZN(v)
		}

	case instructions.Anc:
		mc.A.AND(op.Value)
		mc.Status.SetZN(mc.A.Value())
		mc.Status.Carry = mc.Status.Sign

	case instructions.Alr:
		mc.A.AND(op.Value)
		mc.Status.Carry = mc.A.LSR()
		mc.Status.SetZN(mc.A.Value())

	case instructions.Arr:
		mc.A.AND(op.Value)
		mc.A.ROR(mc.Status.Carry)
		mc.Status.SetZN(mc.A.Value())
		mc.Status.Carry = mc.A.IsBitV()
		mc.Status.Overflow = mc.A.IsBitV() != (mc.A.Value()&0x20 == 0x20)

	case instructions.Axs:
		ax := registers.NewRegister(mc.A.Value()&mc.X.Value(), "AX")
		var result uint8
		mc.Status.Carry, result = ax.Compare(op.Value)
		mc.X.Load(result)
		mc.Status.SetZN(result)

	case instructions.Las:
		v, err := mc.read8(op.Address)
		if err != nil {
			return err
		}
		v &= mc.SP.Value()
		mc.A.Load(v)
		mc.X.Load(v)
		mc.SP.Load(v)
		mc.Status.SetZN(v)

	case instructions.Pha:
		return mc.push(mc.A.Value())

	case instructions.Php:
		return mc.push(mc.Status.Value() | registers.Break)

	case instructions.Pla:
		v, err := mc.pull()
		if err != nil {
			return err
		}
		mc.A.Load(v)
		mc.Status.SetZN(v)

	case instructions.Plp:
		v, err := mc.pull()
		if err != nil {
			return err
		}
		mc.loadStatus(v)

	case instructions.Jmp:
		mc.PC.Load(op.Address - uint16(defn.Bytes))

	case instructions.Jsr:
		// the address pushed is the address of the last byte of the JSR
		// instruction
		if err := mc.pushAddress(mc.PC.Address() + 2); err != nil {
			return err
		}
		mc.PC.Load(op.Address - uint16(defn.Bytes))

	case instructions.Rts:
		// the pulled address is one less than the return address. finalise()
		// adds the length of the RTS instruction, which is one
		address, err := mc.pullAddress()
		if err != nil {
			return err
		}
		mc.PC.Load(address)

	case instructions.Brk:
		// BRK is followed by a padding byte which is skipped on return
		if err := mc.pushAddress(mc.PC.Address() + 2); err != nil {
			return err
		}
		if err := mc.push(mc.Status.Value() | registers.Break); err != nil {
			return err
		}
		mc.Status.InterruptDisable = true
		lo, err := mc.read8(BrkVector)
		if err != nil {
			return err
		}
		hi, err := mc.read8(BrkVector + 1)
		if err != nil {
			return err
		}
		mc.PC.Load((uint16(hi)<<8 | uint16(lo)) - uint16(defn.Bytes))

	case instructions.Rti:
		v, err := mc.pull()
		if err != nil {
			return err
		}
		mc.loadStatus(v)
		address, err := mc.pullAddress()
		if err != nil {
			return err
		}
		mc.PC.Load(address - uint16(defn.Bytes))

	case instructions.Bcc:
		mc.branch(defn, op, !mc.Status.Carry)
	case instructions.Bcs:
		mc.branch(defn, op, mc.Status.Carry)
	case instructions.Beq:
		mc.branch(defn, op, mc.Status.Zero)
	case instructions.Bne:
		mc.branch(defn, op, !mc.Status.Zero)
	case instructions.Bmi:
		mc.branch(defn, op, mc.Status.Sign)
	case instructions.Bpl:
		mc.branch(defn, op, !mc.Status.Sign)
	case instructions.Bvs:
		mc.branch(defn, op, mc.Status.Overflow)
	case instructions.Bvc:
		mc.branch(defn, op, !mc.Status.Overflow)
	}

	return nil
}

// loadStatus loads the status register from a value pulled from the stack.
// the break flag is not a real flag and so is left unchanged.
func (mc *CPU) loadStatus(v uint8) {
	brk := mc.Status.Break
	mc.Status.Load(v)
	mc.Status.Break = brk
}
