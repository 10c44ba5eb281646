// This file is part of Axiregs.
//
// Axiregs is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Axiregs is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Axiregs.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package but the pattern string is kept
// with the error so that it can be identified later with Is() and Has().
// Sentinal patterns should be stored as a const string in the package that
// returns them. For example:
//
//	const UnknownSignal = "binder: unknown signal (%s)"
//
//	e := curated.Errorf(UnknownSignal, "packet_count")
//
//	if curated.Is(e, UnknownSignal) {
//		fmt.Println("true")
//	}
//
// Has() checks whether the pattern occurs anywhere in the error chain, where
// the chain is formed by curated errors being passed as placeholder values
// to other curated errors.
//
// The Error() implementation normalises the message so that duplicate
// adjacent parts are removed. Parts are separated by the sub-string ': '.
// This means that wrapping an error with the same prefix more than once does
// not produce stuttering messages:
//
//	script: script: bad argument
//
// becomes
//
//	script: bad argument
//
// Curated errors also satisfy the errors.Unwrap() convention by returning
// any error values used as placeholders, so the standard library errors.Is()
// and errors.As() functions see through them.
package curated
