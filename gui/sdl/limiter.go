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

package sdl

import (
	"time"
)

// fpsLimiter regulates how often the screen is updated.
type fpsLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration
	last            time.Time
}

func newFPSLimiter(framesPerSecond int) *fpsLimiter {
	return &fpsLimiter{
		framesPerSecond: framesPerSecond,
		secondsPerFrame: time.Second / time.Duration(framesPerSecond),
	}
}

// wait until the next frame is due.
func (lim *fpsLimiter) wait() {
	d := lim.secondsPerFrame - time.Since(lim.last)
	if d > 0 {
		time.Sleep(d)
	}
	lim.last = time.Now()
}
