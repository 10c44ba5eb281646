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

// Package govern defines the states a running slave can be in. The state is
// returned by the continue check function passed to Slave.Run().
package govern

// State indicates the slave's running state.
type State int

// List of possible states.
//
// Paused allows the continue check to keep the run loop alive without the
// slave being stepped. The check will be called again immediately.
const (
	Running State = iota
	Paused
	Ending
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Ending:
		return "Ending"
	}

	return ""
}
