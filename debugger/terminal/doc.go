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

// Package terminal implements the interactive monitor. The monitor reads
// commands from a Terminal and controls the emulation through the debugger
// package.
//
// Terminal interaction happens through the Terminal interface. There are two
// implementations of this interface: the PlainTerminal and the ColorTerminal,
// found respectively in the plainterm and colorterm sub-packages. The
// ColorTerminal requires that the input is a real terminal and puts that
// terminal into cbreak mode. The PlainTerminal works with any io.Reader and
// io.Writer.
//
// The commands understood by the monitor are:
//
//	STEP [n]          execute n instructions (default 1)
//	RUN               run until paused
//	HALT              pause the emulation
//	REGS              show the CPU registers
//	SET reg value     change the value of a register
//	MEM addr [len]    hex dump of memory
//	POKE addr value   write to memory
//	LIST [addr] [n]   disassemble n instructions (default 10)
//	BREAK [addr]      add an execution breakpoint or list breakpoints
//	WATCH [addr]      add a memory watch or list watches
//	CLEAR addr        remove breakpoint and watch at address
//	DEVICES           list the memory devices
//	DUMP [file]       write all mapped memory to a file
//	LOG [n]           show the most recent log entries
//	HELP [command]    show help
//	QUIT              end the emulation
//
// Commands can be abbreviated to any unique prefix. Addresses and values can
// be given in decimal or in hexadecimal with the $ or 0x prefix.
package terminal
