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

package script

import (
	"io"
	"os"
	"strings"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/debugger/terminal"
)

// Sentinel error returned by Load().
const LoadError = "script: %v"

// Queue normalises input into commands and dishes out those commands one at
// a time.
type Queue struct {
	lines []string
}

// More returns true if there are more commands in the queue.
func (q *Queue) More() bool {
	return len(q.lines) > 0
}

// Next command in the queue.
func (q *Queue) Next() (string, bool) {
	if len(q.lines) == 0 {
		return "", false
	}
	s := q.lines[0]
	q.lines = q.lines[1:]
	return s, true
}

// Push input into the queue. Commands are separated by newlines or
// semi-colons. Empty commands and comments are discarded.
func (q *Queue) Push(input string) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	for ln := range strings.SplitSeq(input, "\n") {
		if strings.HasPrefix(strings.TrimSpace(ln), "#") {
			continue
		}
		for s := range strings.SplitSeq(ln, ";") {
			if s = strings.TrimSpace(s); s != "" {
				q.lines = append(q.lines, s)
			}
		}
	}
}

// Load a script file into the queue.
func (q *Queue) Load(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}
	defer f.Close()

	s, err := io.ReadAll(f)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	q.Push(string(s))

	return nil
}

// Playback is a terminal.Terminal that plays back a monitor script before
// reading from the terminal it wraps.
type Playback struct {
	terminal.Terminal
	queue Queue
}

// NewPlayback loads the script and wraps the terminal.
func NewPlayback(term terminal.Terminal, filename string) (*Playback, error) {
	pb := &Playback{Terminal: term}
	if err := pb.queue.Load(filename); err != nil {
		return nil, err
	}
	return pb, nil
}

// TermRead implements the terminal.Input interface. Commands from the script
// are echoed to the terminal along with the prompt.
func (pb *Playback) TermRead(prompt string) (string, error) {
	if s, ok := pb.queue.Next(); ok {
		pb.TermPrintLine(terminal.StyleFeedback, prompt+s)
		return s, nil
	}
	return pb.Terminal.TermRead(prompt)
}
