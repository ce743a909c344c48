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

package modalflag_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/modalflag"
	"github.com/emu6502/emu6502/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectSuccess(t, md.Parsed())
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-monitor", "prog.bin", "extra"})
	monitor := md.AddBool("monitor", false, "interactive monitor")
	test.ExpectFailure(t, *monitor)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectSuccess(t, *monitor)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "prog.bin")
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"disasm", "-base", "$0600", "prog.bin"})
	md.AddSubModes("RUN", "DISASM")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "DISASM")

	md.NewMode()
	base := md.AddAddress("base", "load address")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, base.Given)
	test.ExpectEquality(t, base.Value, 0x0600)
	test.ExpectEquality(t, base.String(), "$0600")
	test.ExpectEquality(t, md.GetArg(0), "prog.bin")
	test.ExpectEquality(t, md.Path(), "DISASM")
}

func TestDefaultMode(t *testing.T) {
	// flags belonging to the default mode are not recognised at the top
	// level. the default mode is selected and the flags are parsed again
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-start", "0x0700", "-set", "RAM.zp.size=255", "-set", "config.configName=x"})
	md.AddSubModes("RUN", "DISASM")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	start := md.AddAddress("start", "start address")
	set := md.AddList("set", "configuration override")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, start.Value, 0x0700)
	test.ExpectEquality(t, strings.Join(*set, " "), "RAM.zp.size=255 config.configName=x")
}

func TestBadFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-start", "$10000"})
	md.AddAddress("start", "start address")
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)

	md.NewArgs([]string{"-unknown"})
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectSuccess(t, curated.Is(err, modalflag.BadFlags))
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "No help available\n")
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("monitor", true, "interactive monitor")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -monitor\n" +
		"    	interactive monitor (default true)\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("echo", true, "echo log")
	md.AddSubModes("run", "disasm")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -echo\n" +
		"    	echo log (default true)\n" +
		"\n" +
		"  available sub-modes: RUN, DISASM\n" +
		"    default: RUN\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestHelpForMode(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"disasm", "-help"})
	md.AddSubModes("RUN", "DISASM")
	_, err := md.Parse()
	test.DemandSuccess(t, err)

	md.NewMode()
	md.AdditionalHelp("disassembles a binary file")
	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "Usage: for DISASM mode\n\ndisassembles a binary file\n")
}

func TestDispatch(t *testing.T) {
	var got string
	handler := func(md *modalflag.Modes) error {
		md.NewMode()
		count := md.AddInt("count", 0, "number of instructions")
		if _, err := md.Parse(); err != nil {
			return err
		}
		got = fmt.Sprintf("%s %d %s", md.Mode(), *count, md.GetArg(0))
		return nil
	}

	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"DisAsm", "-count", "10", "prog.bin"})
	md.AddSubMode("RUN", "run a machine", handler)
	md.AddSubMode("DISASM", "disassemble a binary file", handler)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, md.Dispatch())
	test.ExpectEquality(t, got, "DISASM 10 prog.bin")

	// the default sub-mode is dispatched when no sub-mode is named
	md.NewArgs([]string{"-count", "3", "other.bin"})
	md.AddSubMode("RUN", "run a machine", handler)
	md.AddSubMode("DISASM", "disassemble a binary file", handler)
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, md.Dispatch())
	test.ExpectEquality(t, got, "RUN 3 other.bin")
	test.ExpectEquality(t, md.Path(), "RUN")
}

func TestDispatchFailures(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{})

	// nothing has been parsed
	test.ExpectSuccess(t, curated.Is(md.Dispatch(), modalflag.NoMode))

	// no sub-modes in the layer
	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, curated.Is(md.Dispatch(), modalflag.NoMode))

	// a sub-mode without a handler
	md.NewArgs([]string{"disasm"})
	md.AddSubModes("RUN", "DISASM")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, curated.Is(md.Dispatch(), modalflag.NoHandler))

	// errors from the handler are returned unchanged
	md.NewArgs([]string{})
	md.AddSubMode("RUN", "", func(_ *modalflag.Modes) error {
		return curated.Errorf("run failed")
	})
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, curated.Is(md.Dispatch(), "run failed"))
}

func TestHelpSummaries(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubMode("RUN", "run a machine", nil)
	md.AddSubMode("DISASM", "disassemble a binary file", nil)

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: RUN, DISASM\n" +
		"    default: RUN\n" +
		"    RUN     run a machine\n" +
		"    DISASM  disassemble a binary file\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}
