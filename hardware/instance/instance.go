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

// Package instance defines those parts of the slave that are not part of
// the hardware itself but which affect how the hardware behaves: the
// preferences in force and whether the instance may write to the log.
package instance

import (
	"github.com/jetsetilly/axiregs/hardware/preferences"
)

// Label is used to name an instance. The main instance has an empty label.
type Label string

// List of valid Label values.
const (
	Main      Label = ""
	Testbench Label = "testbench"
)

// Instance is used to differentiate between concurrently running slaves.
type Instance struct {
	Label Label

	// the preferences of the running instance. preferences can be shared
	// between instances
	Prefs *preferences.Preferences

	// the instance may write to the central log
	Logging bool
}

// NewInstance is the preferred method of initialisation for the Instance
// type. If prefs is nil the preferences are loaded from the default
// preferences file.
func NewInstance(label Label, prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{
		Label:   label,
		Logging: true,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	ins.Prefs = prefs

	return ins, nil
}

// Normalise ensures the instance is in a known default state. Useful for
// testing.
func (ins *Instance) Normalise() {
	ins.Prefs.SetDefaults()
}

// AllowLogging implements the logger.Permission interface.
func (ins *Instance) AllowLogging() bool {
	return ins.Logging
}
