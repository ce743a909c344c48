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

// Package logger is the central log repository for the emulator. Entries are
// tagged with the name of the subsystem making the entry, for example "cpu"
// or "uart".
//
// Consecutive identical entries are collapsed into one entry with a repeat
// count. The number of entries kept is capped and the oldest entries are
// discarded when the cap is reached.
//
// Whether a log request is acted upon is controlled by the Permission
// argument. The Allow value always permits logging.
package logger
