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

package registers

import "fmt"

// StackPointer is the 8 bit register that indexes page one.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("SP=%#02x", sp.value)
}

// Label returns the canonical name for the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

// Value returns the current value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the absolute address the stack pointer is pointing to.
func (sp StackPointer) Address() uint16 {
	return 0x0100 | uint16(sp.value)
}

// Load value into the stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Decrement moves the stack pointer down one position. Returns true if the
// stack pointer wrapped from 0x00 to 0xff.
func (sp *StackPointer) Decrement() bool {
	sp.value--
	return sp.value == 0xff
}

// Increment moves the stack pointer up one position. Returns true if the
// stack pointer wrapped from 0xff to 0x00.
func (sp *StackPointer) Increment() bool {
	sp.value++
	return sp.value == 0x00
}
