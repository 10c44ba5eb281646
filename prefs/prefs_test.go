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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/axiregs/curated"
	"github.com/jetsetilly/axiregs/prefs"
	"github.com/jetsetilly/axiregs/test"
)

func getTmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "axiregs_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	// setting a bool with an unsupported type is an error
	test.ExpectFailure(t, v.Set(1))
}

func TestInt(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
}

func TestString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "foo :: bar\n")
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(getTmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	err = dsk.Add("test", &w)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))
}

func TestLoad(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("hardware.strictdecode", &v))

	// no file yet
	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// a second disk with a different set of keys. saving it must preserve
	// the key added by the first disk
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var w prefs.Int
	test.ExpectSuccess(t, dsk2.Add("other.number", &w))
	test.ExpectSuccess(t, w.Set(3))
	test.DemandSuccess(t, dsk2.Save())
	cmpTmpFile(t, fn, "hardware.strictdecode :: true\nother.number :: 3\n")

	test.ExpectSuccess(t, v.Set(false))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(bool), true)
}

func TestCommandLineOverride(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("hardware.strictdecode", &v))
	test.ExpectSuccess(t, dsk.Add("hardware.number", &w))

	prefs.PushCommandLineStack("hardware.strictdecode::true; hardware.number::5; unused::1")
	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectEquality(t, w.Get().(int), 5)

	// the override for the unknown key remains unconsumed
	test.ExpectEquality(t, prefs.PopCommandLineStack(), 1)
}
