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
	"fmt"
	"strings"
)

// AddressInfo is returned by dbgmem functions. This type contains everything
// you could possibly usefully know about an address.
type AddressInfo struct {
	Address uint16

	// the label of the device the address is mapped to. empty if the address
	// is not mapped
	Device string

	// offset of address from the origin of the device
	Offset uint16

	// the data at the address. if peeked is false then data may not be valid
	Peeked bool
	Data   uint8
}

// IsMapped returns true if the address is mapped to a device.
func (ai AddressInfo) IsMapped() bool {
	return ai.Device != ""
}

func (ai AddressInfo) String() string {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("%#04x", ai.Address))

	if ai.IsMapped() {
		s.WriteString(fmt.Sprintf(" (%s+%#x)", ai.Device, ai.Offset))
	} else {
		s.WriteString(" (unmapped)")
	}

	if ai.Peeked {
		s.WriteString(fmt.Sprintf(" -> %#02x", ai.Data))
	}

	return s.String()
}
