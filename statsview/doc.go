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

// Package statsview serves runtime statistics for the emulator process over
// HTTP. The package is only functional when the statsview build tag is
// present. Without the tag Available() returns false and Launch() does
// nothing.
//
// After launch the graphical statistics are viewable at:
//
//	localhost:16502/debug/statsview
//
// and the standard pprof pages at:
//
//	localhost:16502/debug/pprof/
package statsview
