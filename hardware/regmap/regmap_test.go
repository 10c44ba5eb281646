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

package regmap_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/axiregs/curated"
	"github.com/jetsetilly/axiregs/hardware/regmap"
	"github.com/jetsetilly/axiregs/test"
)

func TestReceiver(t *testing.T) {
	cfg := regmap.Receiver()
	test.DemandSuccess(t, cfg.Validate())

	test.ExpectEquality(t, len(cfg.Slots), 15)
	for i, s := range cfg.Slots {
		if i < 9 {
			test.ExpectEquality(t, s.Class, regmap.Control, i)
		} else {
			test.ExpectEquality(t, s.Class, regmap.Status, i)
		}
	}

	test.ExpectEquality(t, cfg.Slots[0].Reset, 39)
	for _, i := range []int{1, 2, 3, 6} {
		test.ExpectEquality(t, cfg.Slots[i].Reset, 1, i)
	}

	i, ok := cfg.SlotOf("packet_count")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, i, 9)

	a, ok := cfg.AddressOf(9)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, 0x40)

	_, ok = cfg.SlotOf("no_such_signal")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, cfg.String(), "15 slots (9 control, 6 status), 15 addresses")
}

func TestSlotMask(t *testing.T) {
	test.ExpectEquality(t, regmap.Slot{Width: 1}.Mask(), 0x01)
	test.ExpectEquality(t, regmap.Slot{Width: 16}.Mask(), 0xffff)
	test.ExpectEquality(t, regmap.Slot{Width: 32}.Mask(), 0xffffffff)
}

func TestValidate(t *testing.T) {
	invalid := func(tag string, f func(cfg *regmap.Config)) {
		t.Helper()
		cfg := regmap.Receiver()
		f(cfg)
		err := cfg.Validate()
		test.ExpectSuccess(t, curated.Is(err, regmap.InvalidConfig), tag)
	}

	invalid("address width", func(cfg *regmap.Config) { cfg.AddressWidth = 2 })
	invalid("no slots", func(cfg *regmap.Config) { cfg.Slots = nil })
	invalid("default slot", func(cfg *regmap.Config) { cfg.DefaultSlot = 15 })
	invalid("width", func(cfg *regmap.Config) { cfg.Slots[4].Width = 33 })
	invalid("no signal", func(cfg *regmap.Config) { cfg.Slots[4].Signal = "" })
	invalid("duplicate signal", func(cfg *regmap.Config) { cfg.Slots[4].Signal = "agc_enable" })
	invalid("offset", func(cfg *regmap.Config) { cfg.Slots[1].Offset = -1 })
	invalid("output beyond word", func(cfg *regmap.Config) { cfg.Slots[0].Offset = 17 })
	invalid("status reset", func(cfg *regmap.Config) { cfg.Slots[9].Reset = 1 })
	invalid("unknown class", func(cfg *regmap.Config) { cfg.Slots[9].Class = regmap.Class(5) })
	invalid("slot range", func(cfg *regmap.Config) { cfg.Addresses[0x60] = 20 })
	invalid("address too wide", func(cfg *regmap.Config) { cfg.Addresses[0x100] = 1 })
	invalid("unaligned", func(cfg *regmap.Config) { cfg.Addresses[0x61] = 1 })

	// control slots store a full word so any reset value and any offset
	// that keeps the output inside the word are allowed
	cfg := regmap.Receiver()
	cfg.Slots[0].Reset = 0xaabbccdd
	cfg.Slots[1].Offset = 31
	test.ExpectSuccess(t, cfg.Validate())
}

func TestWriteTable(t *testing.T) {
	cfg := regmap.Receiver()
	delete(cfg.Addresses, 0x24)

	w := &strings.Builder{}
	cfg.WriteTable(w)

	lines := strings.Split(strings.TrimSpace(w.String()), "\n")

	// header, rule and one line per slot
	test.ExpectEquality(t, len(lines), 17)
	test.ExpectSuccess(t, strings.HasPrefix(lines[2], "0x00"))
	test.ExpectSuccess(t, strings.Contains(lines[2], "sync_threshold"))

	// the unmapped slot is listed last
	test.ExpectSuccess(t, strings.HasPrefix(lines[16], "-"))
	test.ExpectSuccess(t, strings.Contains(lines[16], "packet_count_reset"))
}
