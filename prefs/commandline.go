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

package prefs

import (
	"strings"
)

// the stack of command line overrides. the top of the stack is consulted
// when a Disk is loaded
var commandLineStack []map[string]string

// PushCommandLineStack forwards command line arguments to the prefs system.
// The prefs string is of the form:
//
//	key::value; key::value
//
// Malformed entries are ignored.
func PushCommandLineStack(prefs string) {
	cl := make(map[string]string)
	for _, p := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		if ok {
			cl[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}
	commandLineStack = append(commandLineStack, cl)
}

// PopCommandLineStack removes the most recent group of command line
// overrides. Returns the number of entries that were never consumed.
func PopCommandLineStack() int {
	if len(commandLineStack) == 0 {
		return 0
	}
	n := len(commandLineStack[len(commandLineStack)-1])
	commandLineStack = commandLineStack[:len(commandLineStack)-1]
	return n
}

// GetCommandLinePref returns the command line override for the key, if
// there is one. The override is consumed.
func GetCommandLinePref(key string) (bool, string) {
	if len(commandLineStack) == 0 {
		return false, ""
	}

	cl := commandLineStack[len(commandLineStack)-1]
	if v, ok := cl[key]; ok {
		delete(cl, key)
		return true, v
	}

	return false, ""
}
