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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed uint64

func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Clock is the source of emulation time. The CPU cycle counter for example.
type Clock interface {
	Clock() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clock Clock

	// the number of values produced. multiple requests at the same emulation
	// time produce different values
	count uint64

	// use zero seed rather than the random base seed. this is only really
	// useful for tests where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type. A
// nil clock is allowed.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

func (rnd *Random) rand() *rand.Rand {
	var t uint64
	if rnd.clock != nil {
		t = rnd.clock.Clock()
	}
	seed := t
	if !rnd.ZeroSeed {
		seed += baseSeed
	}
	rnd.count++
	return rand.New(rand.NewPCG(seed, rnd.count))
}

// Uint8 returns a random byte.
func (rnd *Random) Uint8() uint8 {
	return uint8(rnd.rand().Uint32())
}

// IntN returns a random number in the range [0, n).
func (rnd *Random) IntN(n int) int {
	return rnd.rand().IntN(n)
}

// Reset restarts the sequence of numbers.
func (rnd *Random) Reset() {
	rnd.count = 0
}
