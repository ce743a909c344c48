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

// Package server implements the remote debugger. A single client connects
// over TCP and controls the emulation with a simple binary protocol.
//
// Every request from the client is a frame made up of a four byte header
// followed by a payload:
//
//	length	uint16, big endian. the length of the payload only
//	command	uint16, big endian
//	payload	length bytes
//
// Every response from the server is a uint16 big endian length followed by
// that many bytes. Requests with a malformed payload are answered with a
// text message describing the problem.
//
// The commands are:
//
//	1  VERSION	returns a text string
//	2  QUIT	pause and end the emulation. there is no response
//	3  LIST	flags(1) address(2) count(2). returns a text disassembly
//	4  REGS	returns a register dump
//	5  STEP	count(2). register dump when the step completes
//	6  HALT	register dump when the emulation pauses
//	7  CONTINUE	register dump when the emulation next pauses
//	8  MEMDUMP	address(2) length(2). returns address(2) length(2) data
//	9  ADD BP	address(2). execution breakpoint. returns breakpoint list
//	10 DEL BP	address(2). returns breakpoint list
//	11 LIST BP	returns breakpoint list
//	12 ADD MEM BP	address(2). memory access breakpoint
//	13 DEL MEM BP	address(2)
//
// For the LIST command, if bit 0 of flags is set then the address is used,
// otherwise the listing starts at the program counter. If bit 1 is set the
// count is used and remembered for future LIST commands. The initial count is
// five.
//
// A register dump is sixteen bytes:
//
//	X, Y, A, SP, PC (2 bytes), status, 0, clocks (8 bytes)
//
// All multi-byte values are big endian. At most one register dump is sent
// for each STEP, HALT or CONTINUE command.
//
// The breakpoint list is the number of execution breakpoints (2 bytes), the
// number of memory breakpoints (2 bytes) and then the addresses of the
// execution breakpoints followed by the addresses of the memory breakpoints.
//
// A new connection replaces any existing connection.
package server
