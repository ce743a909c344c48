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

//go:build !release

package paths

import (
	"os"
)

const emuConfigDir = ".emu6502"

func getBasePath() (string, error) {
	if _, err := os.Stat(emuConfigDir); err == nil {
		return emuConfigDir, nil
	}

	if err := os.MkdirAll(emuConfigDir, 0700); err != nil {
		return "", err
	}

	return emuConfigDir, nil
}
