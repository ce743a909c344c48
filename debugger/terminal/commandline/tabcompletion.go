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

// TabCompletion completes the first word of the input from a list of
// keywords. Repeated calls to Complete() with the previously completed
// input cycle through the candidates.
type TabCompletion struct {
	keywords Keywords

	matches []string
	match   int

	// the most recent completion. if the input to Complete() is the same as
	// this then the next match is used
	lastCompletion string
}

// NewTabCompletion initialises a new TabCompletion instance.
func NewTabCompletion(keywords Keywords) *TabCompletion {
	return &TabCompletion{keywords: keywords}
}

// Complete the input. Input that already has more than one word, or which
// matches no keyword, is returned unchanged.
func (tc *TabCompletion) Complete(input string) string {
	if len(tc.matches) > 0 && input == tc.lastCompletion {
		tc.match = (tc.match + 1) % len(tc.matches)
		tc.lastCompletion = tc.matches[tc.match] + " "
		return tc.lastCompletion
	}

	tc.Reset()

	if strings.ContainsAny(strings.TrimRight(input, " "), " ") || strings.HasSuffix(input, " ") {
		return input
	}

	tc.matches = tc.keywords.Matches(input)
	if len(tc.matches) == 0 {
		return input
	}

	tc.lastCompletion = tc.matches[0] + " "
	return tc.lastCompletion
}

// Reset forgets the candidates found by the previous call to Complete().
func (tc *TabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.match = 0
	tc.lastCompletion = ""
}
