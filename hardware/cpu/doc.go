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

// Package cpu emulates the MOS 6502 microprocessor. Like all 8-bit processors
// of the era, the 6502 executes instructions according to the single byte
// value read from an address pointed to by the program counter. This single
// byte is the opcode and is looked up in the instruction table. The
// instruction definition for that opcode is then used to move execution of
// the program forward.
//
// The CPU type requires an implementation of the Memory interface. Usually
// this will be a memory.Controller.
//
//	mc := cpu.NewCPU(mem)
//	mc.LoadPC(0x0600)
//
//	for {
//		if err := mc.ExecuteInstruction(); err != nil {
//			break
//		}
//	}
//
// The Run() function does the same but calls an Attachment at every
// instruction boundary. The Attachment can suspend the CPU between
// instructions. See the govern package.
//
// The CPU stops and enters the halted state if memory cannot be accessed. The
// halted state can only be left with Reset(). Functions registered with
// AddHaltedCallback() are called when the CPU halts.
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information. Very
// useful for debuggers.
//
// Decimal mode is not emulated. The decimal flag can be set and cleared but
// ADC and SBC always perform binary arithmetic.
package cpu
