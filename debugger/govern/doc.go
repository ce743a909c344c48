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

// Package govern controls the progress of the emulation. The Governor type
// sits between instructions and decides whether the CPU should continue, wait
// or stop.
//
// The state of the emulation is described by the State type. Paused,
// Stepping and Running are requested by the debugger. Halted and Ending are
// terminal states. The Mode type describes the condition of the emulation
// when it begins.
//
// Whenever the emulation stops running, because of a completed step, a pause
// request, a breakpoint or because the CPU has halted, the Governor raises a
// fresh halt. Subscribers to Halts() are notified and the halt remains fresh
// until AcknowledgeHalt() is called.
//
// The Governor is the only safe way of accessing the emulation from another
// goroutine. The Sync() function runs a function at the next instruction
// boundary. If the CPU is not running then the function is run immediately.
package govern
