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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies a curated error. Packages declare their
// patterns as constants and callers test for them with Is() and Has():
//
//	const InvalidAddress = "memory: invalid address %#04x"
//
//	err := curated.Errorf(InvalidAddress, addr)
//	if curated.Is(err, InvalidAddress) {
//		...
//	}
//
// Is() only matches the outermost error. Has() searches the whole chain,
// including curated errors that have been passed as values to other curated
// errors:
//
//	e := curated.Errorf(InvalidAddress, 0x1000)
//	f := curated.Errorf("cpu: %v", e)
//
//	curated.Is(f, InvalidAddress)  // false
//	curated.Has(f, InvalidAddress) // true
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We think of curated errors as 'expected' and uncurated
// errors as 'unexpected'.
//
// The Error() function normalises the message so that it does not contain
// duplicate adjacent parts. Wrapping "cpu: %v" around an error that already
// starts with "cpu: " does not produce "cpu: cpu: ".
//
// Curated errors also implement Unwrap() so the functions in the standard
// errors package can see non-curated errors that have been wrapped.
package curated
