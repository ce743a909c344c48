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

package devices

import (
	"encoding/binary"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/hardware/memory"
)

// OutOfRange is returned by 16 bit accesses when the second byte is beyond
// the end of the device.
const OutOfRange = "%s: 16 bit access at %#04x crosses end of device"

func outOfRange(dev memory.Device, address uint16) error {
	return curated.Errorf(OutOfRange, dev.Label(), address)
}

// mirrors of the 6502 address space are little endian
var littleEndian = binary.LittleEndian
