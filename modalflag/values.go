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

package modalflag

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Address is a flag.Value for 16 bit addresses. Values can be decimal or
// hexadecimal with the $ or 0x prefix.
type Address struct {
	Value uint16

	// whether the flag was given on the command line
	Given bool
}

func (a *Address) String() string {
	if a == nil || !a.Given {
		return ""
	}
	return fmt.Sprintf("$%04x", a.Value)
}

// Set implements the flag.Value interface.
func (a *Address) Set(s string) error {
	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		s = s[1:]
		base = 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
		base = 16
	}
	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return errors.New("not a 16 bit address")
	}
	a.Value = uint16(v)
	a.Given = true
	return nil
}

// List is a flag.Value that collects every use of the flag.
type List []string

func (l *List) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

// Set implements the flag.Value interface.
func (l *List) Set(s string) error {
	*l = append(*l, s)
	return nil
}
