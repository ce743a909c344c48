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

package uart

import (
	"fmt"
	"net"
	"sync"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/hardware/memory"
	"github.com/emu6502/emu6502/logger"
)

// Size of the UART window in the address space.
const Size = 0x10

// register offsets.
const (
	txOffset = 0x01
	rxOffset = 0x04
)

// the number of received bytes that can wait to be read.
const rxCapacity = 256

// ListenError is returned by Reset() when the port cannot be opened.
const ListenError = "uart: %s: %v"

// UART is a memory.Device that sends and receives bytes over TCP.
type UART struct {
	memory.Area
	port int

	rx chan uint8

	// crit protects the listener and the client connection. the CPU
	// goroutine writes to the client while the accept loop replaces it
	crit     sync.Mutex
	listener net.Listener
	client   net.Conn
}

// NewUART is the preferred method of initialisation for the UART type. A port
// of zero will choose a free port when the device is reset. Use Addr() to
// discover which port was chosen.
func NewUART(label string, origin uint16, port int) (*UART, error) {
	area, err := memory.NewArea(label, origin, Size)
	if err != nil {
		return nil, err
	}
	if port < 0 || port > 0xffff {
		return nil, curated.Errorf(ListenError, label, fmt.Sprintf("port %d out of range", port))
	}
	return &UART{
		Area: area,
		port: port,
		rx:   make(chan uint8, rxCapacity),
	}, nil
}

// Addr returns the address of the listener. Returns nil if the device has
// not been reset.
func (u *UART) Addr() net.Addr {
	u.crit.Lock()
	defer u.crit.Unlock()
	if u.listener == nil {
		return nil
	}
	return u.listener.Addr()
}

// Connected returns true if a client is currently connected.
func (u *UART) Connected() bool {
	u.crit.Lock()
	defer u.crit.Unlock()
	return u.client != nil
}

// Reset implements the memory.Device interface. Any bytes waiting to be
// read are discarded. The listener is only opened once.
func (u *UART) Reset() error {
drain:
	for {
		select {
		case <-u.rx:
		default:
			break drain
		}
	}

	u.crit.Lock()
	defer u.crit.Unlock()

	if u.listener != nil {
		return nil
	}

	l, err := net.Listen("tcp", fmt.Sprintf(":%d", u.port))
	if err != nil {
		return curated.Errorf(ListenError, u.Label(), err)
	}
	u.listener = l
	logger.Logf(logger.Allow, "uart", "%s: listening on %s", u.Label(), l.Addr())

	go u.accept(l)

	return nil
}

func (u *UART) accept(l net.Listener) {
	for {
		conn, err := l.Accept()
		if err != nil {
			logger.Logf(logger.Allow, "uart", "%s: listener closed: %v", u.Label(), err)
			return
		}

		u.crit.Lock()
		if u.client != nil {
			logger.Logf(logger.Allow, "uart", "%s: replacing client %s", u.Label(), u.client.RemoteAddr())
			u.client.Close()
		}
		u.client = conn
		u.crit.Unlock()

		logger.Logf(logger.Allow, "uart", "%s: client connected from %s", u.Label(), conn.RemoteAddr())

		go u.receive(conn)
	}
}

func (u *UART) receive(conn net.Conn) {
	b := make([]byte, 64)
	for {
		n, err := conn.Read(b)
		for _, v := range b[:n] {
			select {
			case u.rx <- v:
			default:
				logger.Logf(logger.Allow, "uart", "%s: receive buffer full. dropped %#02x", u.Label(), v)
			}
		}
		if err != nil {
			break
		}
	}

	u.crit.Lock()
	defer u.crit.Unlock()
	if u.client == conn {
		u.client = nil
		logger.Logf(logger.Allow, "uart", "%s: client disconnected", u.Label())
	}
	conn.Close()
}

// Close the listener and any client connection.
func (u *UART) Close() error {
	u.crit.Lock()
	defer u.crit.Unlock()

	if u.client != nil {
		u.client.Close()
		u.client = nil
	}

	if u.listener == nil {
		return nil
	}
	err := u.listener.Close()
	u.listener = nil
	return err
}

// Read8 implements the memory.Device interface.
func (u *UART) Read8(address uint16) (uint8, error) {
	offset := address - u.Origin()
	if offset != rxOffset {
		logger.Logf(logger.Allow, "uart", "%s: read of unused register %#02x", u.Label(), offset)
		return 0, nil
	}

	select {
	case v := <-u.rx:
		return v, nil
	default:
		return 0, nil
	}
}

// Write8 implements the memory.Device interface.
func (u *UART) Write8(address uint16, data uint8) error {
	offset := address - u.Origin()
	if offset != txOffset {
		logger.Logf(logger.Allow, "uart", "%s: write of %#02x to unused register %#02x", u.Label(), data, offset)
		return nil
	}

	u.crit.Lock()
	defer u.crit.Unlock()

	if u.client == nil {
		logger.Logf(logger.Allow, "uart", "%s: no client. dropped %#02x", u.Label(), data)
		return nil
	}

	if _, err := u.client.Write([]byte{data}); err != nil {
		logger.Logf(logger.Allow, "uart", "%s: %v", u.Label(), err)
		u.client.Close()
		u.client = nil
	}

	return nil
}

// Read16 implements the memory.Device interface. The UART registers are
// eight bits wide.
func (u *UART) Read16(address uint16) (uint16, error) {
	logger.Logf(logger.Allow, "uart", "%s: 16 bit read of %#04x not supported", u.Label(), address)
	return 0, nil
}

// Write16 implements the memory.Device interface. The UART registers are
// eight bits wide.
func (u *UART) Write16(address uint16, data uint16) error {
	logger.Logf(logger.Allow, "uart", "%s: 16 bit write of %#04x to %#04x not supported", u.Label(), data, address)
	return nil
}
