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

package server

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/debugger"
	"github.com/emu6502/emu6502/debugger/govern"
	"github.com/emu6502/emu6502/logger"
	"github.com/emu6502/emu6502/version"
)

// ListenError is returned by NewServer() if the port cannot be opened.
const ListenError = "debug server: %v"

// Server is the remote debugger.
type Server struct {
	dbg      *debugger.Debugger
	listener net.Listener

	// crit protects the fields below. the client is written to by the
	// connection goroutine and by the halt hook
	crit   sync.Mutex
	client net.Conn

	// a register dump has been sent since the last STEP, HALT or CONTINUE
	dumpSent bool

	// number of instructions in a LIST response
	listCount int

	// the client has requested that the emulation ends
	quit bool
}

// NewServer opens the port and returns a new Server. Connections are not
// accepted until Serve() is called. Port zero chooses a free port.
func NewServer(dbg *debugger.Debugger, port int) (*Server, error) {
	l, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, curated.Errorf(ListenError, err)
	}
	logger.Logf(logger.Allow, "debug server", "listening on %s", l.Addr())

	return &Server{
		dbg:       dbg,
		listener:  l,
		listCount: defaultListCount,
	}, nil
}

// Addr returns the address the server is listening on.
func (srv *Server) Addr() net.Addr {
	return srv.listener.Addr()
}

// Serve accepts connections until the context is cancelled or the client
// sends the QUIT command.
func (srv *Server) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv.dbg.AddHaltHook(ctx, srv.halted)

	stop := context.AfterFunc(ctx, srv.close)
	defer stop()

	for {
		conn, err := srv.listener.Accept()
		if err != nil {
			srv.crit.Lock()
			quit := srv.quit
			srv.crit.Unlock()
			if quit || ctx.Err() != nil {
				return nil
			}
			return curated.Errorf(ListenError, err)
		}

		srv.crit.Lock()
		if srv.client != nil {
			logger.Logf(logger.Allow, "debug server", "closing connection from %s: new connection", srv.client.RemoteAddr())
			srv.client.Close()
		}
		srv.client = conn
		srv.crit.Unlock()

		logger.Logf(logger.Allow, "debug server", "connection from %s", conn.RemoteAddr())

		// a halt that happened before the client connected is reported
		// straight away
		if srv.dbg.Governor().IsFreshHalt() {
			srv.sendHaltDump(srv.dbg.Registers())
		}

		go srv.handle(conn)
	}
}

// close the listener and any client.
func (srv *Server) close() {
	srv.crit.Lock()
	defer srv.crit.Unlock()
	if srv.client != nil {
		srv.client.Close()
		srv.client = nil
	}
	srv.listener.Close()
}

// disconnect the client if it is still the current client.
func (srv *Server) disconnect(conn net.Conn, reason string) {
	srv.crit.Lock()
	defer srv.crit.Unlock()
	if srv.client == conn {
		logger.Logf(logger.Allow, "debug server", "closing connection from %s: %s", conn.RemoteAddr(), reason)
		srv.client = nil
	}
	conn.Close()
}

func (srv *Server) handle(conn net.Conn) {
	for {
		cmd, payload, err := ReadFrame(conn)
		if err != nil {
			srv.disconnect(conn, err.Error())
			return
		}

		logger.Logf(logger.Allow, "debug server", "command %s (%d bytes)", cmd, len(payload))

		if cmd == CmdQuit {
			srv.crit.Lock()
			srv.quit = true
			srv.crit.Unlock()
			srv.dbg.Pause()
			srv.dbg.Quit()
			srv.close()
			return
		}

		rsp := srv.process(cmd, payload)
		if rsp == nil {
			continue
		}

		srv.crit.Lock()
		if srv.client == conn {
			err = writeResponse(conn, rsp)
		}
		srv.crit.Unlock()

		if err != nil {
			srv.disconnect(conn, err.Error())
			return
		}
	}
}

// process a single command. returns the response or nil if there is no
// immediate response.
func (srv *Server) process(cmd Command, payload []byte) []byte {
	switch cmd {
	case CmdVersion:
		return []byte(version.DebugServer)

	case CmdList:
		return srv.list(payload)

	case CmdRegs:
		return EncodeRegisters(srv.dbg.Registers())

	case CmdStep:
		n := 1
		if len(payload) == 2 {
			n = int(be.Uint16(payload))
		} else {
			logger.Log(logger.Allow, "debug server", "STEP without a count. stepping one instruction")
		}
		srv.expectDump()
		srv.dbg.Step(n)
		return srv.dumpIfStopped()

	case CmdHalt:
		srv.expectDump()
		srv.dbg.Pause()
		return srv.dumpIfStopped()

	case CmdContinue:
		srv.expectDump()
		srv.dbg.Run()
		return srv.dumpIfStopped()

	case CmdMemDump:
		return srv.memDump(payload)

	case CmdAddBreak, CmdAddMemBreak, CmdDelBreak, CmdDelMemBreak:
		if len(payload) != 2 {
			return malformed(cmd)
		}
		addr := be.Uint16(payload)
		switch cmd {
		case CmdAddBreak:
			srv.dbg.AddBreak(addr)
		case CmdAddMemBreak:
			srv.dbg.AddWatch(addr)
		case CmdDelBreak:
			if !srv.dbg.RemoveBreak(addr) {
				logger.Logf(logger.Allow, "debug server", "no breakpoint at $%04x", addr)
			}
		case CmdDelMemBreak:
			if !srv.dbg.RemoveWatch(addr) {
				logger.Logf(logger.Allow, "debug server", "no memory breakpoint at $%04x", addr)
			}
		}
		return encodeBreakpoints(srv.dbg.Breaks(), srv.dbg.Watches())

	case CmdListBreaks:
		return encodeBreakpoints(srv.dbg.Breaks(), srv.dbg.Watches())
	}

	logger.Logf(logger.Allow, "debug server", "command %d is not implemented", uint16(cmd))
	return []byte(fmt.Sprintf("Command %d is not implemented", uint16(cmd)))
}

func malformed(cmd Command) []byte {
	msg := fmt.Sprintf("Malformed %s command received from debugger client", cmd)
	logger.Log(logger.Allow, "debug server", msg)
	return []byte(msg)
}

func (srv *Server) list(payload []byte) []byte {
	if len(payload) != 5 {
		return malformed(CmdList)
	}

	flags := payload[0]

	srv.crit.Lock()
	if flags&listUseCount == listUseCount {
		srv.listCount = int(be.Uint16(payload[3:]))
	}
	count := srv.listCount
	srv.crit.Unlock()

	var addr uint16
	if flags&listUseAddress == listUseAddress {
		addr = be.Uint16(payload[1:])
	} else {
		addr = srv.dbg.Registers().PC
	}

	s := strings.Builder{}
	for _, e := range srv.dbg.Disassemble(addr, count) {
		s.WriteString(e.String())
		s.WriteString("\n")
	}
	return []byte(s.String())
}

// the maximum amount of data in a MEMDUMP response.
const maxMemDump = 0xffff - 4

func (srv *Server) memDump(payload []byte) []byte {
	if len(payload) != 4 {
		return malformed(CmdMemDump)
	}

	addr := be.Uint16(payload)
	length := min(int(be.Uint16(payload[2:])), maxMemDump)

	data := srv.dbg.PeekRange(addr, length)
	if len(data) < length {
		logger.Logf(logger.Allow, "debug server", "memory dump truncated at $%04x", addr+uint16(len(data)))
	}

	b := make([]byte, 4, 4+len(data))
	be.PutUint16(b[0:], addr)
	be.PutUint16(b[2:], uint16(len(data)))
	return append(b, data...)
}

// the client expects a register dump at the end of the current command.
func (srv *Server) expectDump() {
	srv.crit.Lock()
	defer srv.crit.Unlock()
	srv.dumpSent = false
}

// if the emulation will not run in response to a command then the register
// dump is sent immediately. this happens when the emulation has halted, or
// when a HALT command is received while the emulation is already paused.
func (srv *Server) dumpIfStopped() []byte {
	switch srv.dbg.State() {
	case govern.Halted, govern.Ending, govern.Paused:
	default:
		return nil
	}

	srv.crit.Lock()
	defer srv.crit.Unlock()
	if srv.dumpSent {
		return nil
	}
	srv.dumpSent = true
	srv.dbg.Governor().AcknowledgeHalt()
	return EncodeRegisters(srv.dbg.Registers())
}

// halted is called whenever the emulation halts.
func (srv *Server) halted(reason string, regs debugger.Registers) {
	logger.Logf(logger.Allow, "debug server", "emulation halted: %s", reason)
	srv.sendHaltDump(regs)
}

func (srv *Server) sendHaltDump(regs debugger.Registers) {
	srv.crit.Lock()
	defer srv.crit.Unlock()

	if srv.client == nil || srv.dumpSent || !srv.dbg.Governor().IsFreshHalt() {
		return
	}
	srv.dumpSent = true
	srv.dbg.Governor().AcknowledgeHalt()

	if err := writeResponse(srv.client, EncodeRegisters(regs)); err != nil {
		logger.Logf(logger.Allow, "debug server", "%v", err)
	}
}
