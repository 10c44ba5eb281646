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

// Package logger is the central log repository for Axiregs. Log entries are
// made with the Log() and Logf() functions and are stored in a ring of fixed
// length. Output of the log can be echoed to any io.Writer with SetEcho().
//
// Entries are composed of a tag and a detail string. The tag is normally the
// name of the package or component making the entry:
//
//	logger.Logf(env, "axilite", "unmapped write (%#04x)", addr)
//
// Repeated entries are folded into the previous entry and a repeat count is
// shown when the log is written.
//
// The first argument to Log() and Logf() is a Permission. Hardware instances
// implement the Permission interface so that logging can be silenced for
// instances that are not of interest. Use logger.Allow when no instance is
// available.
package logger
