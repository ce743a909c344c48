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

package commandline

import (
	"strings"
)

// Tokens represents tokenised input. Tokens are consumed in order with Get()
// and can be inspected without being consumed with Peek().
type Tokens struct {
	input  string
	tokens []string
	curr   int
}

// TokeniseInput creates and returns a new Tokens instance.
func TokeniseInput(input string) *Tokens {
	input = strings.TrimSpace(input)

	tk := &Tokens{
		input:  input,
		tokens: strings.Fields(input),
	}

	for i, t := range tk.tokens {
		if t[0] == '$' {
			tk.tokens[i] = "0x" + t[1:]
		}
	}

	return tk
}

func (tk *Tokens) String() string {
	return tk.input
}

// Reset begins the token traversal process from the beginning.
func (tk *Tokens) Reset() {
	tk.curr = 0
}

// IsEnd returns true if we're at the end of the token list.
func (tk *Tokens) IsEnd() bool {
	return tk.curr >= len(tk.tokens)
}

// Remaining returns the count of remaining tokens in the token list.
func (tk *Tokens) Remaining() int {
	return len(tk.tokens) - tk.curr
}

// Remainder returns the remaining tokens as a string.
func (tk *Tokens) Remainder() string {
	return strings.Join(tk.tokens[tk.curr:], " ")
}

// Get returns the next token in the list, and a success boolean - if the end
// of the token list has been reached, the function returns false instead of
// true.
func (tk *Tokens) Get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// Unget walks backwards in the token list.
func (tk *Tokens) Unget() {
	if tk.curr > 0 {
		tk.curr--
	}
}

// Peek returns the next token in the list without advancing.
func (tk *Tokens) Peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}
