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

// Package debugger brings together the parts of the emulation that are
// needed to inspect and control a running program:
//
//   - reading and writing the registers and memory
//   - execution breakpoints
//   - memory watches
//   - stepping, running and pausing
//
// Initialisation of the debugger is done with the NewDebugger() function
//
//	dbg := debugger.NewDebugger(mc, mem, gov)
//
// The CPU must not be running when the debugger is created. The debugger
// plumbs a dbgmem.Watcher between the CPU and the memory controller, and
// installs a check function in the governor for the execution breakpoints.
//
// The CPU is run with the governor in the normal way. All of the functions
// of the debugger are safe to call from any goroutine other than the one
// running the CPU. Functions that access the state of the emulation are
// synchronised with the CPU with govern.Sync().
//
// Interaction with a user is the job of other packages. The server package
// is a remote debugger that uses a binary protocol over TCP. The terminal
// package is an interactive monitor. The script package drives the debugger
// with Lua scripts.
package debugger
