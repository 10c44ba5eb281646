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

package axilite

import (
	"fmt"

	"github.com/jetsetilly/axiregs/hardware/bank"
	"github.com/jetsetilly/axiregs/hardware/bus"
	"github.com/jetsetilly/axiregs/hardware/decoder"
	"github.com/jetsetilly/axiregs/hardware/instance"
	"github.com/jetsetilly/axiregs/logger"
)

// ReadChannel is the state machine for the read address and read data
// channels.
type ReadChannel struct {
	ins *instance.Instance
	dec *decoder.Decoder
	bnk *bank.Bank

	arReady bool

	// latched on acceptance
	arAddr uint32

	rValid bool

	// the value captured from the bank when the read is enabled. presented
	// as RDATA while rValid is true
	rData uint32
	rResp bus.Response
}

// NewReadChannel is the preferred method of initialisation for the
// ReadChannel type.
func NewReadChannel(ins *instance.Instance, dec *decoder.Decoder, bnk *bank.Bank) *ReadChannel {
	ch := &ReadChannel{}
	ch.Plumb(ins, dec, bnk)
	ch.Reset()
	return ch
}

// Snapshot creates a copy of the channel in its current state.
func (ch *ReadChannel) Snapshot() *ReadChannel {
	n := *ch
	return &n
}

// Plumb a new decoder and bank into the channel.
func (ch *ReadChannel) Plumb(ins *instance.Instance, dec *decoder.Decoder, bnk *bank.Bank) {
	ch.ins = ins
	ch.dec = dec
	ch.bnk = bnk
}

func (ch *ReadChannel) String() string {
	return fmt.Sprintf("araddr=%#08x rvalid=%v rdata=%#08x", ch.arAddr, ch.rValid, ch.rData)
}

// Reset the channel. Any pending read response is lost.
func (ch *ReadChannel) Reset() {
	ch.arReady = false
	ch.arAddr = 0
	ch.rValid = false
	ch.rData = 0
	ch.rResp = bus.OKAY
}

// Step the channel forward one step. The bank is read as it was at the
// start of the step so Step() must be called before any bank writes for the
// same step.
func (ch *ReadChannel) Step(m bus.Master) {
	enable := ch.arReady && m.ARValid && !ch.rValid
	accept := !ch.arReady && m.ARValid && !ch.rValid
	acknowledge := ch.rValid && m.RReady

	if enable {
		ch.rData, ch.rResp = ch.fetch()
		ch.rValid = true
	} else if acknowledge {
		ch.rValid = false
	}

	if accept {
		ch.arAddr = m.ARAddr
	}
	ch.arReady = accept
}

// fetch the value for the latched address.
func (ch *ReadChannel) fetch() (uint32, bus.Response) {
	slot, ok := ch.dec.Decode(ch.arAddr)
	if !ok {
		logger.Logf(ch.ins, "axilite", "unmapped read (%#08x)", ch.arAddr)
		if ch.ins.Prefs.StrictDecode.Get().(bool) {
			return 0, bus.DECERR
		}
	}
	return ch.bnk.Read(slot), bus.OKAY
}

// Signals sets the read channel signals driven by the slave.
func (ch *ReadChannel) Signals(s *bus.Slave) {
	s.ARReady = ch.arReady
	s.RValid = ch.rValid
	s.RData = ch.rData
	s.RResp = ch.rResp
}

// Pending returns true if read data is waiting to be acknowledged.
func (ch *ReadChannel) Pending() bool {
	return ch.rValid
}
