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

// Package preferences holds the preferences for the register slave. The
// preferences select the error reporting policy of the slave; the defaults
// give the permissive behaviour where every response is OKAY.
package preferences

import (
	"github.com/jetsetilly/axiregs/curated"
	"github.com/jetsetilly/axiregs/paths"
	"github.com/jetsetilly/axiregs/prefs"
)

// Preferences for the register slave.
type Preferences struct {
	dsk *prefs.Disk

	// unmapped addresses are reported with DECERR. unmapped reads return
	// zero rather than the value of the default slot
	StrictDecode prefs.Bool

	// writes to status slots are reported with SLVERR. the write has no
	// lasting effect whatever the value of this preference
	ReadOnlyFault prefs.Bool

	// the number of steps a testbench transaction may take before it is
	// abandoned
	TransactionLimit prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file if
// it exists.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences() except that the
// preferences file is named explicitly.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.strictdecode", &p.StrictDecode)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.readonlyfault", &p.ReadOnlyFault)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.transactionlimit", &p.TransactionLimit)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.StrictDecode.Set(false)
	p.ReadOnlyFault.Set(false)
	p.TransactionLimit.Set(32)
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
