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

package instance_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/axiregs/hardware/instance"
	"github.com/jetsetilly/axiregs/hardware/preferences"
	"github.com/jetsetilly/axiregs/test"
)

func TestInstance(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	ins, err := instance.NewInstance(instance.Testbench, p)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ins.Label, instance.Testbench)
	test.ExpectEquality(t, ins.AllowLogging(), true)

	ins.Logging = false
	test.ExpectEquality(t, ins.AllowLogging(), false)

	test.DemandSuccess(t, ins.Prefs.StrictDecode.Set(true))
	ins.Normalise()
	test.ExpectEquality(t, ins.Prefs.StrictDecode.Get().(bool), false)
}
