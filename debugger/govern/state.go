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

package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// Halted is entered when the CPU can no longer continue. Ending is entered
// when the emulation has been asked to quit. Neither state can be left.
const (
	Paused State = iota
	Stepping
	Running
	Halted
	Ending
)

func (s State) String() string {
	switch s {
	case Paused:
		return "Paused"
	case Stepping:
		return "Stepping"
	case Running:
		return "Running"
	case Halted:
		return "Halted"
	case Ending:
		return "Ending"
	}

	return ""
}

// IsTerminal returns true if the state cannot be left.
func (s State) IsTerminal() bool {
	return s == Halted || s == Ending
}
