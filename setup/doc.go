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

// Package setup describes the machine that is to be emulated. A machine
// description is a JSON file of the form:
//
//	{
//		"configName": "easy6502",
//		"startAddress": 1536,
//		"displayType": "sdl",
//		"devices": [
//			{ "type": "RAM", "instanceName": "zp", "startAddress": 0, "size": 512 },
//			{ "type": "Easy6502JsDisplay", "instanceName": "display" },
//			{ "type": "ROM", "instanceName": "program", "startAddress": "0x600", "romFilename": "snake.bin" }
//		]
//	}
//
// Every field of a device other than type and instanceName is a parameter of
// that device. Numeric parameters may be given as JSON numbers or as strings
// in decimal, or hexadecimal with a 0x or $ prefix.
//
// Named machine descriptions are found in the "machines" directory of the
// resource path. See the paths package.
//
// Any value in the configuration can be changed with an override of the form:
//
//	type.instance.member=value
//
// The type "config" refers to the top level fields of the description. The
// instance name is ignored in that case. For example:
//
//	config.main.startAddress=0x0600
//	RAM.zp.size=0x400
//	cpu.main.haltOnIllegal=true
//
// An override that names a device instance that does not exist in the
// description will add a new device of that type.
//
// The device types that can be used in a description are registered with the
// Register() function. The built in types are listed by Types().
package setup
