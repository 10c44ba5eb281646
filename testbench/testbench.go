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

// Package testbench drives complete bus transactions against a Slave. It is
// used by the tests of other packages, by the script package and by the
// command line tool.
//
// Each transaction holds the master's valid signals until the slave has
// taken the request and holds the response ready signal until the response
// has been seen. Only one transaction is in progress at any time.
package testbench

import (
	"github.com/jetsetilly/axiregs/curated"
	"github.com/jetsetilly/axiregs/hardware"
	"github.com/jetsetilly/axiregs/hardware/bus"
	"github.com/jetsetilly/axiregs/logger"
)

// Sentinal error patterns.
const (
	Timeout = "testbench: %s timed out after %d steps"
)

// Testbench wraps a Slave with functions for whole transactions.
type Testbench struct {
	Slave *hardware.Slave
}

// NewTestbench is the preferred method of initialisation for the Testbench
// type.
func NewTestbench(slv *hardware.Slave) *Testbench {
	return &Testbench{Slave: slv}
}

func (tb *Testbench) limit() int {
	return tb.Slave.Instance.Prefs.TransactionLimit.Get().(int)
}

// settle steps the slave until no handshake is part way through and no
// response is waiting. Pending responses are acknowledged and discarded.
// Requests that have been accepted but not completed are abandoned by
// dropping valid.
func (tb *Testbench) settle() error {
	m := bus.Master{BReady: true, RReady: true}

	for n := 0; ; n++ {
		s := tb.Slave.Signals()
		if !s.AWReady && !s.WReady && !s.ARReady && !s.BValid && !s.RValid {
			return nil
		}
		if n >= tb.limit() {
			return curated.Errorf(Timeout, "settle", tb.limit())
		}
		if s.BValid || s.RValid {
			logger.Logf(tb.Slave.Instance, "testbench", "discarding pending response")
		}
		tb.Slave.Step(m)
	}
}

// Write data to the address with the byte lanes selected by the strobe.
// Returns the write response. Any response already waiting on the bus is
// acknowledged and discarded first.
//
// If the transaction does not complete within the transaction limit a
// Timeout error is returned. The slave should be reset before it is used
// again.
func (tb *Testbench) Write(address uint32, data uint32, strobe bus.Strobe) (bus.Response, error) {
	m := bus.Master{
		AWAddr:  address,
		AWValid: true,
		WData:   data,
		WStrb:   strobe,
		WValid:  true,
		BReady:  true,
	}

	err := tb.settle()
	if err != nil {
		return bus.OKAY, err
	}

	prev := tb.Slave.Signals()
	for n := 0; n < tb.limit(); n++ {
		handshake := prev.AWReady && prev.WReady
		response := prev.BValid

		s := tb.Slave.Step(m)

		if handshake {
			m.AWValid = false
			m.WValid = false
		}

		if response {
			if prev.BResp != bus.OKAY {
				logger.Logf(tb.Slave.Instance, "testbench", "write %#08x: %s", address, prev.BResp)
			}
			return prev.BResp, nil
		}

		prev = s
	}

	return bus.OKAY, curated.Errorf(Timeout, "write", tb.limit())
}

// Read the address. Returns the read data and the read response.
//
// Timeouts are handled in the same way as for Write().
func (tb *Testbench) Read(address uint32) (uint32, bus.Response, error) {
	m := bus.Master{
		ARAddr:  address,
		ARValid: true,
		RReady:  true,
	}

	err := tb.settle()
	if err != nil {
		return 0, bus.OKAY, err
	}

	prev := tb.Slave.Signals()
	for n := 0; n < tb.limit(); n++ {
		handshake := prev.ARReady
		response := prev.RValid

		s := tb.Slave.Step(m)

		if handshake {
			m.ARValid = false
		}

		if response {
			if prev.RResp != bus.OKAY {
				logger.Logf(tb.Slave.Instance, "testbench", "read %#08x: %s", address, prev.RResp)
			}
			return prev.RData, prev.RResp, nil
		}

		prev = s
	}

	return 0, bus.OKAY, curated.Errorf(Timeout, "read", tb.limit())
}

// Reset asserts the reset line for one step.
func (tb *Testbench) Reset() {
	tb.Slave.Step(bus.Master{Reset: true})
}

// Idle steps the slave with all master signals low.
func (tb *Testbench) Idle(steps int) {
	tb.Slave.RunForCycles(steps, nil)
}
