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

package testbench_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/axiregs/curated"
	"github.com/jetsetilly/axiregs/hardware"
	"github.com/jetsetilly/axiregs/hardware/bus"
	"github.com/jetsetilly/axiregs/hardware/instance"
	"github.com/jetsetilly/axiregs/hardware/preferences"
	"github.com/jetsetilly/axiregs/hardware/regmap"
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

func TestWriteRead(t *testing.T) {
	tb := newTestbench(t)

	resp, err := tb.Write(0x00, 0x27, bus.StrobeFull)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, resp, bus.OKAY)

	// accept, handshake, acknowledge
	test.ExpectEquality(t, tb.Slave.Cycles, 3)

	v, resp, err := tb.Read(0x00)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, resp, bus.OKAY)
	test.ExpectEquality(t, v, 0x27)
	test.ExpectEquality(t, tb.Slave.Cycles, 6)

	// the bus is idle after each transaction
	s := tb.Slave.Signals()
	test.ExpectEquality(t, s.BValid, false)
	test.ExpectEquality(t, s.RValid, false)
}

func TestBackToBack(t *testing.T) {
	tb := newTestbench(t)

	for i := uint32(0); i < 8; i++ {
		_, err := tb.Write(0x10, i*0x100, bus.StrobeFull)
		test.ExpectSuccess(t, err, i)
		v, _, err := tb.Read(0x10)
		test.ExpectSuccess(t, err, i)
		test.ExpectEquality(t, v, i*0x100, i)
	}
}

func TestResetIdle(t *testing.T) {
	tb := newTestbench(t)

	_, err := tb.Write(0x00, 0x1234, bus.StrobeFull)
	test.ExpectSuccess(t, err)

	tb.Idle(10)
	v, _, err := tb.Read(0x00)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x1234)

	tb.Reset()
	v, _, err = tb.Read(0x00)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 39)
}

func TestTimeout(t *testing.T) {
	tb := newTestbench(t)
	test.DemandSuccess(t, tb.Slave.Instance.Prefs.TransactionLimit.Set(2))

	_, err := tb.Write(0x00, 0x27, bus.StrobeFull)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, testbench.Timeout))

	tb.Reset()
	_, _, err = tb.Read(0x00)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, testbench.Timeout))

	test.DemandSuccess(t, tb.Slave.Instance.Prefs.TransactionLimit.Set(3))
	tb.Reset()
	_, err = tb.Write(0x00, 0x27, bus.StrobeFull)
	test.ExpectSuccess(t, err)
}

func TestPendingWriteResponse(t *testing.T) {
	tb := newTestbench(t)

	// leave a write response waiting on the bus
	m := bus.Master{
		AWAddr: 0x10, AWValid: true,
		WData: 0x11, WStrb: bus.StrobeFull, WValid: true,
	}
	tb.Slave.Step(m)
	s := tb.Slave.Step(m)
	test.DemandEquality(t, s.BValid, true)

	resp, err := tb.Write(0x10, 0x22, bus.StrobeFull)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, resp, bus.OKAY)
	test.ExpectEquality(t, tb.Slave.Bank.Read(4), 0x22)

	s = tb.Slave.Signals()
	test.ExpectEquality(t, s.BValid, false)
}

func TestPendingReadResponse(t *testing.T) {
	tb := newTestbench(t)

	// leave read data for slot 0 waiting on the bus
	m := bus.Master{ARAddr: 0x00, ARValid: true}
	tb.Slave.Step(m)
	s := tb.Slave.Step(m)
	test.DemandEquality(t, s.RValid, true)

	_, err := tb.Write(0x10, 0x0400, bus.StrobeFull)
	test.ExpectSuccess(t, err)

	v, _, err := tb.Read(0x10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x0400)
}

func TestPendingAcceptance(t *testing.T) {
	tb := newTestbench(t)

	// a write to loopback_enable is accepted but never completed
	tb.Slave.Step(bus.Master{
		AWAddr: 0x14, AWValid: true,
		WData: 1, WStrb: bus.StrobeFull, WValid: true,
	})

	_, err := tb.Write(0x10, 0x33, bus.StrobeFull)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tb.Slave.Bank.Read(4), 0x33)
	test.ExpectEquality(t, tb.Slave.Bank.Read(5), 0)
}
