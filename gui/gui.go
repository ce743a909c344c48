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

package gui

import "io"

// GUI defines the operations required by the main thread of the application.
type GUI interface {
	// Destroy cleans up resources used by the gui.
	Destroy(io.Writer)

	// Service should not pause or loop longer than necessary (if at all). It
	// must only be called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service()
}

// Runner is implemented by display libraries that take control of the main
// thread. The Run() function returns when the display window has been
// closed.
type Runner interface {
	Run() error
}

// Sentinal errors for the gui package.
const (
	QueueClosed = "gui: queue closed"
	Unavailable = "gui: display unavailable: %v"
)
