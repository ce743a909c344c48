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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock)
// should not collide with any existing file. The filename is made from the
// prepend string, the name of the machine and a timestamp. Used for memory
// dumps and execution traces that are requested without a filename.
//
// Note that the returned filename does not include a path. The
// ResourcePath() function can be used to add a path.
func UniqueFilename(prepend string, machineName string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	m := strings.TrimSpace(machineName)
	if len(m) > 0 {
		return fmt.Sprintf("%s_%s_%s", prepend, m, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}
