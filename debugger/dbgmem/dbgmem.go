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

package dbgmem

import (
	"strconv"
	"strings"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/hardware/memory"
)

// Sentinal errors returned by Peek() and Poke().
const (
	PeekError    = "cannot peek address: %v"
	PokeError    = "cannot poke address: %v"
	AddressError = "invalid address: %v"
)

// DbgMem is a front-end to the memory controller.
type DbgMem struct {
	Mem *memory.Controller
}

// ParseAddress converts a string to an address. The string can be decimal or
// hexadecimal with either the "$" or "0x" prefix.
func ParseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)

	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		s = s[1:]
		base = 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
		base = 16
	}

	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, curated.Errorf(AddressError, s)
	}

	return uint16(v), nil
}

// GetAddressInfo returns the AddressInfo for the address. The address can be
// numeric or a string suitable for ParseAddress(). Returns nil if the address
// is not valid.
func (dbgmem DbgMem) GetAddressInfo(address any) *AddressInfo {
	ai := &AddressInfo{}

	switch address := address.(type) {
	case uint16:
		ai.Address = address
	case int:
		if address < 0 || address > 0xffff {
			return nil
		}
		ai.Address = uint16(address)
	case string:
		a, err := ParseAddress(address)
		if err != nil {
			return nil
		}
		ai.Address = a
	default:
		return nil
	}

	if dev, ok := dbgmem.Mem.Resolve(ai.Address); ok {
		ai.Device = dev.Label()
		ai.Offset = ai.Address - dev.Origin()
	}

	return ai
}

// Peek returns the contents of the memory address. The supplied address can
// be numeric or a string.
func (dbgmem DbgMem) Peek(address any) (*AddressInfo, error) {
	ai := dbgmem.GetAddressInfo(address)
	if ai == nil || !ai.IsMapped() {
		return nil, curated.Errorf(PeekError, address)
	}

	var err error
	ai.Data, err = dbgmem.Mem.Read8(ai.Address)
	if err != nil {
		return nil, curated.Errorf(PeekError, err)
	}

	ai.Peeked = true

	return ai, nil
}

// Poke writes a value at the specified address. The supplied address can be
// numeric or a string.
func (dbgmem DbgMem) Poke(address any, data uint8) (*AddressInfo, error) {
	ai := dbgmem.GetAddressInfo(address)
	if ai == nil || !ai.IsMapped() {
		return nil, curated.Errorf(PokeError, address)
	}

	err := dbgmem.Mem.Write8(ai.Address, data)
	if err != nil {
		return nil, curated.Errorf(PokeError, err)
	}

	ai.Data = data
	ai.Peeked = true

	return ai, nil
}

// PeekRange returns the contents of memory from the address for the length.
// The returned data is truncated at the first unmapped address.
func (dbgmem DbgMem) PeekRange(address uint16, length int) []uint8 {
	data := make([]uint8, 0, length)
	for i := range length {
		a := uint32(address) + uint32(i)
		if a > 0xffff {
			break
		}
		if _, ok := dbgmem.Mem.Resolve(uint16(a)); !ok {
			break
		}
		v, err := dbgmem.Mem.Read8(uint16(a))
		if err != nil {
			break
		}
		data = append(data, v)
	}
	return data
}
