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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions are the simplest and
// probably the most useful. ExpectSuccess() and ExpectFailure() test for
// success and failure of values of type bool and error.
//
// The Demand*() functions are the same except that the test is halted with
// t.Fatalf() on failure. Use them when the remainder of the test cannot
// continue meaningfully.
//
// All functions accept an optional list of tags which are prefixed to any
// failure message. This is useful when the test is run in a loop.
package test
