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
	"encoding/binary"
	"io"

	"github.com/emu6502/emu6502/debugger"
)

// Command identifies the request made by the client.
type Command uint16

// List of valid commands.
const (
	CmdVersion Command = iota + 1
	CmdQuit
	CmdList
	CmdRegs
	CmdStep
	CmdHalt
	CmdContinue
	CmdMemDump
	CmdAddBreak
	CmdDelBreak
	CmdListBreaks
	CmdAddMemBreak
	CmdDelMemBreak
)

func (cmd Command) String() string {
	switch cmd {
	case CmdVersion:
		return "VERSION"
	case CmdQuit:
		return "QUIT"
	case CmdList:
		return "LIST"
	case CmdRegs:
		return "REGS"
	case CmdStep:
		return "STEP"
	case CmdHalt:
		return "HALT"
	case CmdContinue:
		return "CONTINUE"
	case CmdMemDump:
		return "MEMDUMP"
	case CmdAddBreak:
		return "ADD BP"
	case CmdDelBreak:
		return "DEL BP"
	case CmdListBreaks:
		return "LIST BP"
	case CmdAddMemBreak:
		return "ADD MEM BP"
	case CmdDelMemBreak:
		return "DEL MEM BP"
	}
	return "UNKNOWN"
}

// flags for the LIST command.
const (
	listUseAddress = 0x01
	listUseCount   = 0x02
)

// the number of instructions in a listing until the client says otherwise.
const defaultListCount = 5

// RegistersLen is the length of a register dump.
const RegistersLen = 16

var be = binary.BigEndian

// ReadFrame reads a single request frame.
func ReadFrame(r io.Reader) (Command, []byte, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, nil, err
	}

	payload := make([]byte, be.Uint16(hdr[0:]))
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, err
	}

	return Command(be.Uint16(hdr[2:])), payload, nil
}

// WriteFrame writes a single request frame.
func WriteFrame(w io.Writer, cmd Command, payload []byte) error {
	b := make([]byte, 4, 4+len(payload))
	be.PutUint16(b[0:], uint16(len(payload)))
	be.PutUint16(b[2:], uint16(cmd))
	b = append(b, payload...)
	_, err := w.Write(b)
	return err
}

// ReadResponse reads a single response.
func ReadResponse(r io.Reader) ([]byte, error) {
	var hdr [2]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}
	b := make([]byte, be.Uint16(hdr[:]))
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return b, nil
}

func writeResponse(w io.Writer, b []byte) error {
	r := make([]byte, 2, 2+len(b))
	be.PutUint16(r, uint16(len(b)))
	r = append(r, b...)
	_, err := w.Write(r)
	return err
}

// EncodeRegisters returns the register dump for the registers.
func EncodeRegisters(r debugger.Registers) []byte {
	b := make([]byte, RegistersLen)
	b[0] = r.X
	b[1] = r.Y
	b[2] = r.A
	b[3] = r.SP
	be.PutUint16(b[4:], r.PC)
	b[6] = r.Status.Value()
	b[7] = 0
	be.PutUint32(b[8:], uint32(r.Clocks>>32))
	be.PutUint32(b[12:], uint32(r.Clocks))
	return b
}

// encodeBreakpoints returns the breakpoint list.
func encodeBreakpoints(exec []uint16, mem []uint16) []byte {
	b := make([]byte, 4, 4+2*(len(exec)+len(mem)))
	be.PutUint16(b[0:], uint16(len(exec)))
	be.PutUint16(b[2:], uint16(len(mem)))
	for _, a := range exec {
		b = be.AppendUint16(b, a)
	}
	for _, a := range mem {
		b = be.AppendUint16(b, a)
	}
	return b
}
