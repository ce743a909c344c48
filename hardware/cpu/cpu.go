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
	"context"
	"fmt"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/hardware/cpu/execution"
	"github.com/emu6502/emu6502/hardware/cpu/instructions"
	"github.com/emu6502/emu6502/hardware/cpu/registers"
	"github.com/emu6502/emu6502/logger"
)

// List of errors returned by the CPU.
const (
	Halted        = "cpu: halted"
	NotStarted    = "cpu: no start address"
	IllegalOpcode = "cpu: %s opcode %#02x at %#04x"
)

// Memory is the interface to the address space required by the CPU.
type Memory interface {
	Read8(address uint16) (uint8, error)
	Write8(address uint16, data uint8) error
}

// Attachment is called by Run() at every instruction boundary.
type Attachment interface {
	// Boundary is called before an instruction is fetched. It may block.
	// Returning false causes Run() to return.
	Boundary(mc *CPU) bool

	// Cancel is called when the context passed to Run() is cancelled. A call
	// to Boundary() that is blocked should return false as soon as possible.
	Cancel()
}

// the address of the vector used by BRK
const BrkVector = 0xfffe

// the address of the vector used at reset
const ResetVector = 0xfffc

// CPU implements the 6502 found as found in the Commodore 64, the Apple II,
// the NES and many others.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// cumulative number of cycles and instructions since reset
	Clocks       uint64
	Instructions uint64

	mem   Memory
	table *instructions.Table

	// information about the most recently executed instruction
	LastResult execution.Result

	// HaltOnIllegal causes the CPU to halt on illegal and unimplemented
	// opcodes rather than treating them as a NOP
	HaltOnIllegal bool

	started  bool
	halted   bool
	haltErr  error
	onHalted []func(error)
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem Memory) *CPU {
	mc := &CPU{
		mem:   mem,
		table: instructions.NewTable(),
		A:     registers.NewRegister(0, "A"),
		X:     registers.NewRegister(0, "X"),
		Y:     registers.NewRegister(0, "Y"),
	}
	mc.Reset()
	return mc
}

// Plumb a new memory into the CPU. Must not be called while the CPU is being
// run.
func (mc *CPU) Plumb(mem Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s %s %s %s SR=%s", mc.PC, mc.A, mc.X, mc.Y, mc.SP, mc.Status)
}

// Table returns the instruction table used by the CPU.
func (mc *CPU) Table() *instructions.Table {
	return mc.table
}

// Memory returns the memory the CPU is attached to.
func (mc *CPU) Memory() Memory {
	return mc.mem
}

// Clock returns the number of cycles since reset. Implements the
// random.Clock interface.
func (mc *CPU) Clock() uint64 {
	return mc.Clocks
}

// Reset reinitialises all registers. The halted state is cleared but the CPU
// will not run until a start address is loaded with LoadPC() or
// LoadPCIndirect().
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.PC.Load(0)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.Reset()
	mc.Status.InterruptDisable = true
	mc.Clocks = 0
	mc.Instructions = 0
	mc.started = false
	mc.halted = false
	mc.haltErr = nil
}

// LoadPC sets the program counter and marks the CPU as ready to run.
func (mc *CPU) LoadPC(address uint16) {
	mc.PC.Load(address)
	mc.started = true
}

// LoadPCIndirect loads the program counter from the little endian vector at
// the address.
func (mc *CPU) LoadPCIndirect(vector uint16) error {
	lo, err := mc.mem.Read8(vector)
	if err != nil {
		return err
	}
	hi, err := mc.mem.Read8(vector + 1)
	if err != nil {
		return err
	}
	mc.LoadPC(uint16(lo) | uint16(hi)<<8)
	return nil
}

// IsHalted returns true if the CPU has halted. The error that caused the halt
// is also returned.
func (mc *CPU) IsHalted() (bool, error) {
	return mc.halted, mc.haltErr
}

// AddHaltedCallback registers a function to be called when the CPU halts. The
// function receives the error that caused the halt.
func (mc *CPU) AddHaltedCallback(f func(error)) {
	mc.onHalted = append(mc.onHalted, f)
}

// halt puts the CPU into the halted state. the halted callbacks are called
// only if the CPU was not already halted.
func (mc *CPU) halt(err error) error {
	mc.LastResult.Error = err
	if mc.halted {
		return err
	}
	mc.halted = true
	mc.haltErr = err
	logger.Logf(logger.Allow, "cpu", "halted at %#04x: %v", mc.LastResult.Address, err)
	for _, f := range mc.onHalted {
		f(err)
	}
	return err
}

// Run executes instructions until the CPU halts, the Attachment returns
// false or the context is cancelled. The Attachment can be nil.
func (mc *CPU) Run(ctx context.Context, hook Attachment) error {
	if hook != nil {
		stop := context.AfterFunc(ctx, hook.Cancel)
		defer stop()
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if hook != nil && !hook.Boundary(mc) {
			return nil
		}

		if mc.halted {
			return mc.haltErr
		}

		if err := mc.ExecuteInstruction(); err != nil {
			return err
		}
	}
}

func (mc *CPU) read8(address uint16) (uint8, error) {
	return mc.mem.Read8(address)
}

func (mc *CPU) write8(address uint16, data uint8) error {
	return mc.mem.Write8(address, data)
}

// push a byte onto the stack. a wrap of the stack pointer is logged but is
// otherwise allowed.
func (mc *CPU) push(data uint8) error {
	if err := mc.write8(mc.SP.Address(), data); err != nil {
		return err
	}
	if mc.SP.Decrement() {
		logger.Logf(logger.Allow, "cpu", "stack overflow at %#04x", mc.LastResult.Address)
	}
	return nil
}

// pull a byte from the stack.
func (mc *CPU) pull() (uint8, error) {
	if mc.SP.Increment() {
		logger.Logf(logger.Allow, "cpu", "stack underflow at %#04x", mc.LastResult.Address)
	}
	return mc.read8(mc.SP.Address())
}

// ExecuteInstruction fetches, decodes and executes the instruction at the
// program counter. The details of the instruction are recorded in
// LastResult.
//
// A memory error halts the CPU. The memory error is returned and any
// changes to registers or memory made by the instruction before the error
// remain in place.
func (mc *CPU) ExecuteInstruction() error {
	if mc.halted {
		return curated.Errorf(Halted)
	}
	if !mc.started {
		return curated.Errorf(NotStarted)
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// fetch
	opcode, err := mc.read8(mc.PC.Address())
	if err != nil {
		return mc.halt(err)
	}

	// decode
	defn, err := mc.table.Lookup(opcode)
	if err != nil {
		return mc.halt(err)
	}
	mc.LastResult.Defn = defn
	mc.LastResult.ByteCount = 1
	for i := 1; i < defn.Bytes; i++ {
		v, err := mc.read8(mc.PC.Address() + uint16(i))
		if err != nil {
			return mc.halt(err)
		}
		mc.LastResult.InstructionData[i-1] = v
		mc.LastResult.ByteCount++
	}
	mc.LastResult.Cycles = defn.Cycles

	// illegal and unimplemented opcodes are skipped over
	if !defn.IsExecutable() {
		err := curated.Errorf(IllegalOpcode, defn.Validity, opcode, mc.LastResult.Address)
		logger.Log(logger.Allow, "cpu", err)
		if mc.HaltOnIllegal {
			return mc.halt(err)
		}
		mc.LastResult.Skipped = true
		mc.finalise()
		return nil
	}

	// resolve addressing mode
	op, err := Resolve(mc.PC.Address(), defn.AddressingMode,
		mc.LastResult.InstructionData[0], mc.LastResult.InstructionData[1],
		mc.X.Value(), mc.Y.Value(), mc.mem)
	mc.LastResult.Operand = op
	mc.LastResult.CPUBug = op.Bug
	if err != nil {
		return mc.halt(err)
	}

	// +1 cycle
	if defn.PageSensitive && op.PageCrossed {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}

	if err := mc.execute(defn, op); err != nil {
		return mc.halt(err)
	}

	mc.finalise()
	return nil
}

// finalise accounts for the cycles used by the instruction and moves the
// program counter on to the next instruction.
func (mc *CPU) finalise() {
	mc.Clocks += uint64(mc.LastResult.Cycles)
	mc.Instructions++
	mc.PC.Add(uint16(mc.LastResult.Defn.Bytes))
	mc.LastResult.Final = true
}
