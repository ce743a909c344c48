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

// Package dbgmem sits between the debugger and the memory controller. In the
// context of the debugger it is more useful to address memory via this
// package rather than using the memory package directly.
//
// The key type provided by the package is the AddressInfo type. This type
// provides every detail about a memory address that the debugger could want.
// The String() function provides a normalised presentation of that
// information.
//
// Addresses can be given as numbers or as strings. Strings can be in decimal,
// or in hexadecimal with a "$" or "0x" prefix.
//
// The Peek() and Poke() functions return the sentinal errors PeekError and
// PokeError if the address is not mapped to a device.
//
// The Watcher type wraps the memory bus used by the CPU and reports accesses
// to watched addresses.
package dbgmem
