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
	"github.com/jetsetilly/axiregs/hardware/axilite"
	"github.com/jetsetilly/axiregs/hardware/bank"
	"github.com/jetsetilly/axiregs/hardware/binder"
)

// State stores the slave sub-systems that change as the slave runs. It is
// produced by the Snapshot() function and can be restored with the Plumb()
// function.
//
// The decoder and configuration are not part of the state because they never
// change once the slave has been created.
type State struct {
	Bank   *bank.Bank
	Write  *axilite.WriteChannel
	Read   *axilite.ReadChannel
	Binder *binder.Binder
	Cycles uint64
}

// Snapshot the state of the slave sub-systems.
func (slv *Slave) Snapshot() *State {
	return &State{
		Bank:   slv.Bank.Snapshot(),
		Write:  slv.Write.Snapshot(),
		Read:   slv.Read.Snapshot(),
		Binder: slv.Binder.Snapshot(),
		Cycles: slv.Cycles,
	}
}

// Plumb a previously snapshotted state into the slave.
func (slv *Slave) Plumb(state *State) {
	if state == nil {
		panic("slave: cannot plumb in a nil state")
	}

	// take another snapshot of the state before plumbing. we don't want the
	// slave to change what is stored in the state
	slv.Bank = state.Bank.Snapshot()
	slv.Write = state.Write.Snapshot()
	slv.Read = state.Read.Snapshot()
	slv.Binder = state.Binder.Snapshot()
	slv.Cycles = state.Cycles

	slv.Write.Plumb(slv.Instance, slv.Config, slv.Decoder, slv.Bank)
	slv.Read.Plumb(slv.Instance, slv.Decoder, slv.Bank)
	slv.Binder.Plumb(slv.Bank)
}
