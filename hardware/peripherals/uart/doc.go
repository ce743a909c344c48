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

// Package uart implements a serial port that is connected to the outside
// world by a TCP socket. The device occupies sixteen addresses. Only two of
// them do anything:
//
//	origin + 1	write: transmit byte to the connected client
//	origin + 4	read: next byte received from the client or zero
//
// The listener is opened on the first call to Reset() and accepts
// connections in the background. A new connection replaces any existing
// connection. Bytes received from the client are buffered until the program
// reads them; if the buffer is full the byte is dropped.
package uart
