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

package ansi_test

import (
	"testing"

	"github.com/emu6502/emu6502/debugger/terminal/easyterm/ansi"
	"github.com/emu6502/emu6502/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "normal", "", true, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91;49m")

	s, err = ansi.ColorBuild("", "", "bold", false, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[1m")

	test.ExpectEquality(t, ansi.NormalPen, "\033[m")

	_, err = ansi.ColorBuild("puce", "", "", false, false)
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, ansi.CursorMove(-3), "\033[3D")
	test.ExpectEquality(t, ansi.CursorMove(0), "")
}
