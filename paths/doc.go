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

// Package paths contains functions to prepare paths for emulator resources.
//
// The ResourcePath() function returns the path to a resource. For example:
//
//	d, err := paths.ResourcePath("machines", "easy6502.json")
//
// How the path is formed depends on whether the program has been built with
// the "release" build tag. For development builds, resources are found in
// the .emu6502 directory of the current working directory:
//
//	.emu6502/machines/easy6502.json
//
// For release builds, resources are found in the user's configuration
// directory, as defined by os.UserConfigDir(). On Linux this will be
// something like:
//
//	/home/user/.config/emu6502/machines/easy6502.json
//
// In both cases the base directory is created if it does not exist.
package paths
