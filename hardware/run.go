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

package hardware

import (
	"github.com/jetsetilly/axiregs/curated"
	"github.com/jetsetilly/axiregs/hardware/bus"
	"github.com/jetsetilly/axiregs/hardware/govern"
)

// Sentinal error patterns.
const (
	UnsupportedState = "slave: unsupported state (%v) in Run() function"
)

// Run the slave until the continue check returns govern.Ending or an error.
// The master function is called once per step with the slave signals from
// the end of the previous step and returns the signals for the next step.
//
// The continue check is called after every step. If it is nil the slave runs
// forever.
func (slv *Slave) Run(master func(bus.Slave) bus.Master, continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	s := slv.Signals()
	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running:
			s = slv.Step(master(s))
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForCycles steps the slave for the number of cycles. The master function
// works the same as for Run(). A nil master leaves every master signal low.
func (slv *Slave) RunForCycles(cycles int, master func(bus.Slave) bus.Master) {
	if master == nil {
		master = func(bus.Slave) bus.Master { return bus.Master{} }
	}

	s := slv.Signals()
	for i := 0; i < cycles; i++ {
		s = slv.Step(master(s))
	}
}
