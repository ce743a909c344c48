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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are given to the Modes type with NewArgs() and then parsed with
// Parse(). Flags are added before each call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM")
//	p, err := md.Parse()
//
// The first sub-mode is the default. If the first argument after the flags
// matches one of the sub-modes then that sub-mode is selected and the
// argument is consumed. The selected mode can be retrieved with Mode() and
// the path of all modes selected so far with Path().
//
// Once a mode has been selected, NewMode() begins a new set of flags for
// that mode:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		start := md.AddAddress("start", "start address")
//		monitor := md.AddBool("monitor", false, "interactive monitor")
//		p, err := md.Parse()
//		...
//	}
//
// Alternatively, sub-modes can be added with a handler and a summary for the
// help message. Dispatch() calls the handler of the selected sub-mode:
//
//	md.AddSubMode("DISASM", "disassemble a binary file", disasm)
//	p, err := md.Parse()
//	...
//	err = md.Dispatch()
//
// Arguments that are not flags or sub-modes can be retrieved with
// RemainingArgs() or GetArg().
//
// The -help flag is handled automatically. Parse() prints the flags and
// sub-modes of the current mode to the Output writer and returns ParseHelp.
//
// In addition to the flag types of the standard library, AddAddress() adds a
// flag for 16 bit addresses, in decimal or hexadecimal notation, and
// AddList() adds a flag that can be given more than once.
package modalflag
