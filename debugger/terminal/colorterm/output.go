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

package colorterm

import (
	"fmt"
	"strings"

	"github.com/emu6502/emu6502/debugger/terminal"
	"github.com/emu6502/emu6502/debugger/terminal/easyterm/ansi"
)

var stylePens = map[terminal.Style]string{
	terminal.StyleFeedback: ansi.DimPens["white"],
	terminal.StyleCPUStep:  ansi.Pens["yellow"],
	terminal.StyleHelp:     ansi.DimPens["cyan"],
	terminal.StyleLog:      ansi.DimPens["magenta"],
	terminal.StyleHalt:     ansi.Pens["green"],
	terminal.StyleError:    ansi.Pens["red"],
}

func (ct *ColorTerminal) print(s string) {
	ct.crit.Lock()
	defer ct.crit.Unlock()
	fmt.Fprint(ct.out, s)
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	ct.crit.Lock()
	defer ct.crit.Unlock()

	if ct.silenced && style != terminal.StyleError {
		return
	}

	// carriage returns are required because the terminal is in cbreak mode
	// and output post-processing may be off
	s = strings.ReplaceAll(strings.TrimRight(s, "\n"), "\n", "\r\n")

	// clear the line first in case the output interrupts a prompt
	fmt.Fprintf(ct.out, "\r%s%s", ansi.ClearLine, stylePens[style])
	if style == terminal.StyleError {
		fmt.Fprint(ct.out, "* ")
	}
	fmt.Fprintf(ct.out, "%s%s\r\n", s, ansi.NormalPen)
}
