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

// Package script automates the debugger. There are two kinds of script.
//
// Monitor scripts are text files of monitor commands, one per line or
// separated by semi-colons. Lines beginning with # are ignored. The Playback
// type wraps a terminal.Terminal and returns the commands in the script before
// deferring to the wrapped terminal.
//
// Lua scripts are run by the Lua type. The following functions are added to
// the global environment of the script:
//
//	peek(addr)            returns the value at the address
//	poke(addr, value)     writes the value to the address
//	reg(name)             returns the value of a register
//	setreg(name, value)   changes the value of a register
//	step([n])             executes n instructions and waits for the pause
//	run()                 runs the emulation
//	pause()               pauses the emulation
//	wait()                waits for the emulation to halt. returns the reason
//	brk(addr)             adds an execution breakpoint
//	watch(addr)           adds a memory watch
//	clear(addr)           removes breakpoints and watches at the address
//	list(addr, [n])       returns a table of disassembled instructions
//	state()               returns the state of the emulation
//	log(msg)              adds an entry to the log
//	quit()                ends the emulation
//
// Addresses are numbers or strings in the format accepted by the monitor,
// for example "$0600". The Lua print() function writes to the output given
// to NewLua().
package script
