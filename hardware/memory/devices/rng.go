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
	"github.com/emu6502/emu6502/hardware/memory"
	"github.com/emu6502/emu6502/logger"
	"github.com/emu6502/emu6502/random"
)

// RNG returns a random value for every read. Writes are ignored.
type RNG struct {
	memory.Area
	rnd *random.Random
}

// NewRNG is the preferred method of initialisation for the RNG type.
func NewRNG(label string, origin uint16, size int, rnd *random.Random) (*RNG, error) {
	area, err := memory.NewArea(label, origin, size)
	if err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = random.NewRandom(nil)
	}
	return &RNG{
		Area: area,
		rnd:  rnd,
	}, nil
}

// Read8 implements the memory.Device interface.
func (rng *RNG) Read8(_ uint16) (uint8, error) {
	return rng.rnd.Uint8(), nil
}

// Write8 implements the memory.Device interface.
func (rng *RNG) Write8(address uint16, data uint8) error {
	logger.Logf(logger.Allow, "rng", "%s: ignored write of %#02x to %#04x", rng.Label(), data, address)
	return nil
}

// Read16 implements the memory.Device interface.
func (rng *RNG) Read16(_ uint16) (uint16, error) {
	return uint16(rng.rnd.Uint8()) | uint16(rng.rnd.Uint8())<<8, nil
}

// Write16 implements the memory.Device interface.
func (rng *RNG) Write16(address uint16, data uint16) error {
	logger.Logf(logger.Allow, "rng", "%s: ignored write of %#04x to %#04x", rng.Label(), data, address)
	return nil
}

// Reset implements the memory.Device interface.
func (rng *RNG) Reset() error {
	rng.rnd.Reset()
	return nil
}
