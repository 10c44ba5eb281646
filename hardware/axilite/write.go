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
	"github.com/jetsetilly/axiregs/hardware/regmap"
	"github.com/jetsetilly/axiregs/logger"
)

// WriteChannel is the state machine for the write address, write data and
// write response channels.
type WriteChannel struct {
	ins *instance.Instance
	cfg *regmap.Config
	dec *decoder.Decoder
	bnk *bank.Bank

	awReady bool
	wReady  bool

	// armed is cleared when a write is accepted and set again when the
	// response is acknowledged. no write is accepted while it is clear
	armed bool

	// latched on acceptance
	awAddr uint32
	wData  uint32
	wStrb  bus.Strobe

	bValid bool
	bResp  bus.Response
}

// NewWriteChannel is the preferred method of initialisation for the
// WriteChannel type.
func NewWriteChannel(ins *instance.Instance, cfg *regmap.Config, dec *decoder.Decoder, bnk *bank.Bank) *WriteChannel {
	ch := &WriteChannel{}
	ch.Plumb(ins, cfg, dec, bnk)
	ch.Reset()
	return ch
}

// Snapshot creates a copy of the channel in its current state.
func (ch *WriteChannel) Snapshot() *WriteChannel {
	n := *ch
	return &n
}

// Plumb a new decoder and bank into the channel.
func (ch *WriteChannel) Plumb(ins *instance.Instance, cfg *regmap.Config, dec *decoder.Decoder, bnk *bank.Bank) {
	ch.ins = ins
	ch.cfg = cfg
	ch.dec = dec
	ch.bnk = bnk
}

func (ch *WriteChannel) String() string {
	return fmt.Sprintf("awaddr=%#08x armed=%v bvalid=%v", ch.awAddr, ch.armed, ch.bValid)
}

// Reset the channel. Any accepted but uncommitted write is lost.
func (ch *WriteChannel) Reset() {
	ch.awReady = false
	ch.wReady = false
	ch.armed = true
	ch.awAddr = 0
	ch.wData = 0
	ch.wStrb = 0
	ch.bValid = false
	ch.bResp = bus.OKAY
}

// Step the channel forward one step.
func (ch *WriteChannel) Step(m bus.Master) {
	acceptAddress := !ch.awReady && m.AWValid && m.WValid && ch.armed
	acceptData := !ch.wReady && m.WValid && m.AWValid && ch.armed
	enable := ch.awReady && m.AWValid && ch.wReady && m.WValid
	acknowledge := ch.bValid && m.BReady

	if enable && !ch.bValid {
		ch.bResp = ch.commit()
		ch.bValid = true
	} else if acknowledge {
		ch.bValid = false
	}

	if acceptAddress || acceptData {
		ch.armed = false
	} else if acknowledge {
		ch.armed = true
	} else if ch.awReady && !enable {
		// the master withdrew valid during the handshake. nothing was
		// committed so there is no response to wait for
		ch.armed = true
	}

	if acceptAddress {
		ch.awAddr = m.AWAddr
	}
	if acceptData {
		ch.wData = m.WData
		ch.wStrb = m.WStrb
	}

	ch.awReady = acceptAddress
	ch.wReady = acceptData
}

// commit the latched write to the bank and return the response code.
func (ch *WriteChannel) commit() bus.Response {
	slot, ok := ch.dec.Decode(ch.awAddr)
	if !ok {
		logger.Logf(ch.ins, "axilite", "unmapped write (%#08x) dropped", ch.awAddr)
		if ch.ins.Prefs.StrictDecode.Get().(bool) {
			return bus.DECERR
		}
		return bus.OKAY
	}

	ch.bnk.Write(slot, ch.wData, ch.wStrb)

	if ch.cfg.Slots[slot].Class == regmap.Status {
		logger.Logf(ch.ins, "axilite", "write to status slot %d (%s) has no effect", slot, ch.cfg.Slots[slot].Signal)
		if ch.ins.Prefs.ReadOnlyFault.Get().(bool) {
			return bus.SLVERR
		}
	}

	return bus.OKAY
}

// Signals sets the write channel signals driven by the slave.
func (ch *WriteChannel) Signals(s *bus.Slave) {
	s.AWReady = ch.awReady
	s.WReady = ch.wReady
	s.BValid = ch.bValid
	s.BResp = ch.bResp
}

// Pending returns true if a write response is waiting to be acknowledged.
func (ch *WriteChannel) Pending() bool {
	return ch.bValid
}
