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

package uart_test

import (
	"net"
	"testing"
	"time"

	"github.com/emu6502/emu6502/hardware/peripherals/uart"
	"github.com/emu6502/emu6502/test"
)

const origin = 0x8000

// waitFor polls the condition until it is true or the test times out.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for condition")
		}
		time.Sleep(time.Millisecond)
	}
}

func newConnectedUART(t *testing.T) (*uart.UART, net.Conn) {
	t.Helper()

	u, err := uart.NewUART("uart", origin, 0)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, u.Reset())
	t.Cleanup(func() { u.Close() })

	addr := u.Addr()
	if addr == nil {
		t.Fatalf("no listener after reset")
	}

	conn, err := net.Dial("tcp", addr.String())
	test.DemandSuccess(t, err)
	t.Cleanup(func() { conn.Close() })

	waitFor(t, u.Connected)
	return u, conn
}

func TestNoClient(t *testing.T) {
	u, err := uart.NewUART("uart", origin, 0)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, u.Addr() == nil)

	// nothing received and nothing to send to. neither is an error
	v, err := u.Read8(origin + 4)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, u.Write8(origin+1, 'a'))

	test.ExpectSuccess(t, u.Close())
}

func TestBadPort(t *testing.T) {
	_, err := uart.NewUART("uart", origin, 0x10000)
	test.ExpectFailure(t, err)
}

func TestTransmit(t *testing.T) {
	u, conn := newConnectedUART(t)

	test.ExpectSuccess(t, u.Write8(origin+1, 'h'))
	test.ExpectSuccess(t, u.Write8(origin+1, 'i'))

	// writes to other registers are ignored
	test.ExpectSuccess(t, u.Write8(origin+2, 'x'))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	b := make([]byte, 2)
	n := 0
	for n < len(b) {
		m, err := conn.Read(b[n:])
		test.DemandSuccess(t, err)
		n += m
	}
	test.ExpectEquality(t, string(b), "hi")
}

func TestReceive(t *testing.T) {
	u, conn := newConnectedUART(t)

	_, err := conn.Write([]byte("ok"))
	test.DemandSuccess(t, err)

	var got []uint8
	waitFor(t, func() bool {
		v, err := u.Read8(origin + 4)
		test.DemandSuccess(t, err)
		if v != 0 {
			got = append(got, v)
		}
		return len(got) == 2
	})
	test.ExpectEquality(t, string(got), "ok")

	// unused register always reads zero
	v, err := u.Read8(origin)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0)
}

func TestReplaceClient(t *testing.T) {
	u, first := newConnectedUART(t)

	second, err := net.Dial("tcp", u.Addr().String())
	test.DemandSuccess(t, err)
	defer second.Close()

	// the first connection is closed by the UART when the second arrives
	first.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, err = first.Read(make([]byte, 1))
	test.ExpectFailure(t, err)

	waitFor(t, u.Connected)
	test.ExpectSuccess(t, u.Write8(origin+1, 'z'))

	second.SetReadDeadline(time.Now().Add(2 * time.Second))
	b := make([]byte, 1)
	_, err = second.Read(b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b[0], 'z')
}

func TestResetKeepsListener(t *testing.T) {
	u, err := uart.NewUART("uart", origin, 0)
	test.DemandSuccess(t, err)
	defer u.Close()

	test.DemandSuccess(t, u.Reset())
	addr := u.Addr().String()
	test.DemandSuccess(t, u.Reset())
	test.ExpectEquality(t, u.Addr().String(), addr)
}
