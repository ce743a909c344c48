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

package server_test

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/emu6502/emu6502/debugger"
	"github.com/emu6502/emu6502/debugger/govern"
	"github.com/emu6502/emu6502/debugger/server"
	"github.com/emu6502/emu6502/hardware/cpu"
	"github.com/emu6502/emu6502/hardware/memory"
	"github.com/emu6502/emu6502/hardware/memory/devices"
	"github.com/emu6502/emu6502/test"
)

// the test program:
//
//	$0600: LDA #$01
//	$0602: STA $20
//	$0604: INX
//	$0605: JMP $0602
var program = []uint8{0xa9, 0x01, 0x85, 0x20, 0xe8, 0x4c, 0x02, 0x06}

type client struct {
	t    *testing.T
	conn net.Conn
}

func (c *client) request(cmd server.Command, payload ...byte) []byte {
	c.t.Helper()
	test.DemandSuccess(c.t, server.WriteFrame(c.conn, cmd, payload))
	return c.response()
}

func (c *client) response() []byte {
	c.t.Helper()
	c.conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	b, err := server.ReadResponse(c.conn)
	test.DemandSuccess(c.t, err)
	return b
}

// check register dump
func (c *client) expectPC(b []byte, pc uint16) {
	c.t.Helper()
	test.DemandEquality(c.t, len(b), server.RegistersLen)
	test.ExpectEquality(c.t, uint16(b[4])<<8|uint16(b[5]), pc)
}

func setup(t *testing.T) (*client, *govern.Governor, chan error, chan error) {
	t.Helper()

	mem := memory.NewController(nil)
	ram, err := devices.NewRAM("ram", 0x0000, 0x8000)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mem.Register(ram))
	for i, b := range program {
		test.DemandSuccess(t, mem.Write8(0x0600+uint16(i), b))
	}

	mc := cpu.NewCPU(mem)
	mc.LoadPC(0x0600)

	gov := govern.NewGovernor(govern.ModeDebugger)
	dbg := debugger.NewDebugger(mc, mem, gov)

	srv, err := server.NewServer(dbg, 0)
	test.DemandSuccess(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	halts := gov.Halts()

	served := make(chan error, 1)
	go func() {
		served <- srv.Serve(ctx)
	}()

	attached := make(chan error, 1)
	go func() {
		attached <- gov.Attach(ctx, mc)
	}()

	// wait for the emulation to announce that it is paused
	<-halts

	conn, err := net.Dial("tcp", srv.Addr().String())
	test.DemandSuccess(t, err)
	t.Cleanup(func() { conn.Close() })

	return &client{t: t, conn: conn}, gov, served, attached
}

func TestSession(t *testing.T) {
	c, gov, served, attached := setup(t)

	// the halt at the start of the emulation is reported as soon as the
	// client connects
	c.expectPC(c.response(), 0x0600)

	test.ExpectEquality(t, string(c.request(server.CmdVersion)), "6502 Emulator Version 0.0 (No System)")

	regs := c.request(server.CmdRegs)
	c.expectPC(regs, 0x0600)
	test.ExpectEquality(t, regs[3], 0xfd)

	// step two instructions
	regs = c.request(server.CmdStep, 0x00, 0x02)
	c.expectPC(regs, 0x0604)
	test.ExpectEquality(t, regs[2], 0x01)
	test.ExpectEquality(t, regs[15], 5)

	// step without a count steps a single instruction
	regs = c.request(server.CmdStep)
	c.expectPC(regs, 0x0605)
	test.ExpectEquality(t, regs[0], 0x01)

	// memory dump
	test.ExpectEquality(t, string(c.request(server.CmdMemDump, 0x06, 0x00, 0x00, 0x04)),
		string([]byte{0x06, 0x00, 0x00, 0x04, 0xa9, 0x01, 0x85, 0x20}))
	test.ExpectEquality(t, string(c.request(server.CmdMemDump, 0x06, 0x00, 0x00)),
		"Malformed MEMDUMP command received from debugger client")

	// memory dump is truncated at the end of RAM
	b := c.request(server.CmdMemDump, 0x7f, 0xfe, 0x00, 0x10)
	test.ExpectEquality(t, len(b), 6)
	test.ExpectEquality(t, b[3], 0x02)

	// breakpoints
	test.ExpectEquality(t, string(c.request(server.CmdAddBreak, 0x06, 0x04)),
		string([]byte{0, 1, 0, 0, 0x06, 0x04}))
	test.ExpectEquality(t, string(c.request(server.CmdAddMemBreak, 0x00, 0x20)),
		string([]byte{0, 1, 0, 1, 0x06, 0x04, 0x00, 0x20}))
	test.ExpectEquality(t, string(c.request(server.CmdListBreaks)),
		string([]byte{0, 1, 0, 1, 0x06, 0x04, 0x00, 0x20}))
	test.ExpectEquality(t, string(c.request(server.CmdDelMemBreak, 0x00, 0x20)),
		string([]byte{0, 1, 0, 0, 0x06, 0x04}))
	test.ExpectEquality(t, string(c.request(server.CmdAddBreak, 0x06)),
		"Malformed ADD BP command received from debugger client")

	// continue until the breakpoint
	regs = c.request(server.CmdContinue)
	c.expectPC(regs, 0x0604)
	test.ExpectEquality(t, regs[0], 0x01)

	// listings
	l := string(c.request(server.CmdList, 0x01, 0x06, 0x00, 0x00, 0x00))
	test.ExpectEquality(t, strings.Count(l, "\n"), 5)
	test.ExpectSuccess(t, strings.HasPrefix(l, "$0600: a9 01     LDA #$01\n"))

	l = string(c.request(server.CmdList, 0x02, 0x00, 0x00, 0x00, 0x02))
	test.ExpectEquality(t, l, "$0604: e8        INX\n$0605: 4c 02 06  JMP $0602\n")

	// the count is remembered
	l = string(c.request(server.CmdList, 0x00, 0x00, 0x00, 0x00, 0x00))
	test.ExpectEquality(t, strings.Count(l, "\n"), 2)

	test.ExpectEquality(t, string(c.request(server.CmdList, 0x00)),
		"Malformed LIST command received from debugger client")

	// halting when already paused sends the registers immediately
	c.expectPC(c.request(server.CmdHalt), 0x0604)

	// quit ends the emulation and the server
	test.DemandSuccess(t, server.WriteFrame(c.conn, server.CmdQuit, nil))
	test.ExpectSuccess(t, <-served)
	test.ExpectSuccess(t, <-attached)
	test.ExpectEquality(t, gov.State(), govern.Ending)
}

func TestRunAndHalt(t *testing.T) {
	c, _, _, _ := setup(t)
	c.expectPC(c.response(), 0x0600)

	// there is no response until the emulation stops
	test.DemandSuccess(t, server.WriteFrame(c.conn, server.CmdContinue, nil))

	// one register dump for the HALT command
	regs := c.request(server.CmdHalt)
	test.DemandEquality(t, len(regs), server.RegistersLen)

	// no more register dumps are waiting
	test.ExpectEquality(t, string(c.request(server.CmdVersion)), "6502 Emulator Version 0.0 (No System)")
}

func TestReplaceClient(t *testing.T) {
	c, _, _, _ := setup(t)
	c.expectPC(c.response(), 0x0600)

	conn, err := net.Dial("tcp", c.conn.RemoteAddr().String())
	test.DemandSuccess(t, err)
	defer conn.Close()

	// the first client is disconnected
	c.conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, err = server.ReadResponse(c.conn)
	test.ExpectFailure(t, err)

	second := &client{t: t, conn: conn}
	test.ExpectEquality(t, string(second.request(server.CmdVersion)), "6502 Emulator Version 0.0 (No System)")
}

func TestUnknownCommand(t *testing.T) {
	c, _, _, _ := setup(t)
	c.expectPC(c.response(), 0x0600)
	test.ExpectEquality(t, string(c.request(server.Command(99))), "Command 99 is not implemented")
	test.ExpectEquality(t, server.CmdMemDump.String(), "MEMDUMP")
}

func TestEncodeRegisters(t *testing.T) {
	b := server.EncodeRegisters(debugger.Registers{
		PC:           0x0604,
		A:            0x01,
		X:            0x02,
		Y:            0x03,
		SP:           0xfd,
		Clocks:       0x0000000112345678,
		Instructions: 2,
	})
	test.DemandEquality(t, len(b), server.RegistersLen)
	test.ExpectEquality(t, string(b[:6]), string([]byte{0x02, 0x03, 0x01, 0xfd, 0x06, 0x04}))

	// the final eight bytes are the clock count, not the instruction count.
	// all 32 bits of the low word are sent
	test.ExpectEquality(t, string(b[8:]), string([]byte{0x00, 0x00, 0x00, 0x01, 0x12, 0x34, 0x56, 0x78}))
}
