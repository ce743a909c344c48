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
	"io"
	"strings"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/hardware/cpu/instructions"
	"github.com/emu6502/emu6502/hardware/memory"
)

// NoInstruction is returned by Write() when the start of an instruction is
// not mapped.
const NoInstruction = "disassembly: no instruction at %#04x"

// Disassembly decodes instructions from memory.
type Disassembly struct {
	mem   memory.Bus
	table *instructions.Table
}

// NewDisassembly is the preferred method of initialisation for the
// Disassembly type.
func NewDisassembly(mem memory.Bus) *Disassembly {
	return &Disassembly{
		mem:   mem,
		table: instructions.NewTable(),
	}
}

// Decode the instruction at the address. The second return value is false if
// the opcode could not be read.
func (dsm *Disassembly) Decode(address uint16) (Entry, bool) {
	e := Entry{Address: address}

	opcode, err := dsm.mem.Read8(address)
	if err != nil {
		return e, false
	}
	e.Data = append(e.Data, opcode)

	// the table is complete so Lookup() can not fail
	e.Defn, _ = dsm.table.Lookup(opcode)

	for i := 1; i < e.Defn.Bytes; i++ {
		v, err := dsm.mem.Read8(address + uint16(i))
		if err != nil {
			break
		}
		e.Data = append(e.Data, v)
	}

	formatEntry(&e)

	return e, true
}

// Disassemble count instructions from the address. The disassembly stops
// early if an instruction cannot be read completely.
func (dsm *Disassembly) Disassemble(address uint16, count int) []Entry {
	var entries []Entry

	for range count {
		e, ok := dsm.Decode(address)
		if !ok {
			break
		}
		entries = append(entries, e)
		if e.IsPartial() {
			break
		}

		next := address + uint16(len(e.Data))
		if next < address {
			break
		}
		address = next
	}

	return entries
}

// Listing returns count instructions from the address, one instruction per
// line.
func (dsm *Disassembly) Listing(address uint16, count int) string {
	s := strings.Builder{}
	for _, e := range dsm.Disassemble(address, count) {
		s.WriteString(e.String())
		s.WriteRune('\n')
	}
	return s.String()
}

// Write disassembles every instruction in the range to the io.Writer.
func (dsm *Disassembly) Write(w io.Writer, from uint16, to uint16) error {
	address := from
	for address <= to {
		e, ok := dsm.Decode(address)
		if !ok {
			return curated.Errorf(NoInstruction, address)
		}

		if _, err := io.WriteString(w, e.String()+"\n"); err != nil {
			return err
		}
		if e.IsPartial() {
			break
		}

		next := address + uint16(len(e.Data))
		if next < address {
			break
		}
		address = next
	}

	return nil
}

// Disassemble is a convenience function that disassembles count instructions
// from the address.
func Disassemble(mem memory.Bus, address uint16, count int) []Entry {
	return NewDisassembly(mem).Disassemble(address, count)
}

// Listing is a convenience function that returns a listing of count
// instructions from the address.
func Listing(mem memory.Bus, address uint16, count int) string {
	return NewDisassembly(mem).Listing(address, count)
}
