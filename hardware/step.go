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
	"github.com/jetsetilly/axiregs/hardware/bus"
)

// Step the slave forward one clock edge with the signals driven by the bus
// master. The signals driven by the slave after the edge are returned.
func (slv *Slave) Step(m bus.Master) bus.Slave {
	if m.Reset {
		slv.Write.Reset()
		slv.Read.Reset()
		slv.Bank.Reset()
		slv.Cycles++
		return slv.Signals()
	}

	// the read channel must be stepped before the write channel commits
	slv.Read.Step(m)
	slv.Write.Step(m)
	slv.Binder.Capture()

	slv.Cycles++

	return slv.Signals()
}

// Signals returns the signals currently driven by the slave.
func (slv *Slave) Signals() bus.Slave {
	var s bus.Slave
	slv.Write.Signals(&s)
	slv.Read.Signals(&s)
	return s
}
