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
	"unicode"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/debugger/terminal"
	"github.com/emu6502/emu6502/debugger/terminal/easyterm"
	"github.com/emu6502/emu6502/debugger/terminal/easyterm/ansi"
	"github.com/emu6502/emu6502/logger"
)

// maximum number of entries in the command history
const maxHistory = 100

// redraw the prompt and input, leaving the cursor at the correct position
func (ct *ColorTerminal) redraw(prompt string, input []rune, cursor int) {
	ct.print(fmt.Sprintf("\r%s%s%s%s%s", ansi.ClearLine, ansi.PenStyles["bold"], prompt, ansi.NormalPen, string(input)))
	ct.print(ansi.CursorMove(cursor - len(input)))
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	var input []rune
	cursor := 0

	// position in the history. len(history) is the line being edited
	history := len(ct.history)

	// the line being edited is kept while the user moves through the history
	var edit []rune

	if ct.tabCompletion != nil {
		ct.tabCompletion.Reset()
	}

	for {
		ct.redraw(prompt, input, cursor)

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.print("\r\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEndOfFile:
			if len(input) == 0 {
				ct.print("\r\n")
				return "", curated.Errorf(terminal.UserAbort)
			}

		case easyterm.KeySuspend:
			_ = ct.CanonicalMode()
			if err := easyterm.SuspendProcess(); err != nil {
				logger.Log(logger.Allow, "colorterm", err)
			}
			_ = ct.CBreakMode()

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			ct.print("\r\n")
			s := string(input)
			if s != "" && (len(ct.history) == 0 || ct.history[len(ct.history)-1] != s) {
				ct.history = append(ct.history, s)
				if len(ct.history) > maxHistory {
					ct.history = ct.history[1:]
				}
			}
			return s, nil

		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				input = []rune(ct.tabCompletion.Complete(string(input)))
				cursor = len(input)
			}

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				cursor--
			}

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				continue
			}
			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ct.history) {
						edit = input
					}
					history--
					input = []rune(ct.history[history])
					cursor = len(input)
				}
			case easyterm.CursorDown:
				if history < len(ct.history) {
					history++
					if history == len(ct.history) {
						input = edit
					} else {
						input = []rune(ct.history[history])
					}
					cursor = len(input)
				}
			case easyterm.CursorForward:
				if cursor < len(input) {
					cursor++
				}
			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input[:cursor], append([]rune{r}, input[cursor:]...)...)
				cursor++
			}
		}
	}
}
