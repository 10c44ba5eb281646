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

package script_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/axiregs/curated"
	"github.com/jetsetilly/axiregs/hardware"
	"github.com/jetsetilly/axiregs/hardware/instance"
	"github.com/jetsetilly/axiregs/hardware/preferences"
	"github.com/jetsetilly/axiregs/hardware/regmap"
	"github.com/jetsetilly/axiregs/script"
	"github.com/jetsetilly/axiregs/test"
	"github.com/jetsetilly/axiregs/testbench"
)

func newTestbench(t *testing.T) *testbench.Testbench {
	t.Helper()

	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	ins, err := instance.NewInstance(instance.Testbench, p)
	test.DemandSuccess(t, err)
	ins.Logging = false

	slv, err := hardware.NewSlave(ins, regmap.Receiver())
	test.DemandSuccess(t, err)

	return testbench.NewTestbench(slv)
}

func TestScript(t *testing.T) {
	tb := newTestbench(t)

	src := `
assert(write(0x00, 0x27) == "OKAY")
assert(output("sync_threshold") == 0x27)
drive("packet_count", 1000)
step()
local v, resp = read(0x40)
print(v, resp)
local w = read(0x00)
print(w)
`
	var out strings.Builder
	err := script.Run(tb, "test", src, &out)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out.String(), "1000\tOKAY\n39\n")
}

func TestScriptStrobe(t *testing.T) {
	tb := newTestbench(t)

	src := `
write(0x10, 0x1234)
write(0x10, 0xff, 1)
print(read(0x10))
reset()
print(read(0x10), cycles() > 0)
`
	var out strings.Builder
	err := script.Run(tb, "strobe", src, &out)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out.String(), "4863\tOKAY\n0\ttrue\n")
}

func TestScriptErrors(t *testing.T) {
	tb := newTestbench(t)

	err := script.Run(tb, "bad signal", `drive("sync_threshold", 1)`, nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	err = script.Run(tb, "bad syntax", `write(`, nil)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	err = script.Run(tb, "bad argument", `read(-1)`, nil)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	err = script.Run(tb, "assertion", `assert(read(0x00) == 0)`, nil)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
}
