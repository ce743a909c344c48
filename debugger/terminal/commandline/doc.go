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

// Package commandline divides monitor input into tokens and resolves
// abbreviated command keywords.
//
// TokeniseInput() normalises the input as it splits it. Hexadecimal numbers
// written with the $ prefix are rewritten with the 0x prefix, meaning that
// they can be parsed with strconv.ParseUint() with a base of zero.
//
// Keywords resolves abbreviations. Any unique prefix of a keyword is accepted
// and an exact match is always preferred to a prefix match. The TabCompletion
// type satisfies the terminal.TabCompletion interface and cycles through the
// keywords that match the first word of the input.
package commandline
