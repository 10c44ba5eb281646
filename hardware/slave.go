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
	"fmt"
	"strings"

	"github.com/jetsetilly/axiregs/hardware/axilite"
	"github.com/jetsetilly/axiregs/hardware/bank"
	"github.com/jetsetilly/axiregs/hardware/binder"
	"github.com/jetsetilly/axiregs/hardware/decoder"
	"github.com/jetsetilly/axiregs/hardware/instance"
	"github.com/jetsetilly/axiregs/hardware/regmap"
)

// Slave is the main container for the components of the register slave.
type Slave struct {
	Instance *instance.Instance
	Config   *regmap.Config

	Decoder *decoder.Decoder
	Bank    *bank.Bank
	Write   *axilite.WriteChannel
	Read    *axilite.ReadChannel
	Binder  *binder.Binder

	// the number of steps since creation or the last reset
	Cycles uint64
}

// NewSlave creates a new slave and everything associated with it. The
// configuration is validated before anything else is created.
func NewSlave(ins *instance.Instance, cfg *regmap.Config) (*Slave, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	slv := &Slave{
		Instance: ins,
		Config:   cfg,
	}

	slv.Decoder = decoder.NewDecoder(cfg)
	slv.Bank = bank.NewBank(cfg)
	slv.Write = axilite.NewWriteChannel(ins, cfg, slv.Decoder, slv.Bank)
	slv.Read = axilite.NewReadChannel(ins, slv.Decoder, slv.Bank)
	slv.Binder = binder.NewBinder(cfg, slv.Bank)

	return slv, nil
}

func (slv *Slave) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("cycle %d\n", slv.Cycles))
	s.WriteString(fmt.Sprintf("write: %s\n", slv.Write.String()))
	s.WriteString(fmt.Sprintf("read:  %s\n", slv.Read.String()))
	s.WriteString(slv.Bank.String())
	return s.String()
}

// Reset the slave as though the reset line had been asserted for one step.
// The cycle count is also reset.
func (slv *Slave) Reset() {
	slv.Write.Reset()
	slv.Read.Reset()
	slv.Bank.Reset()
	slv.Cycles = 0
}

// Normalise the slave so that it is in a known default state. The instance
// preferences are set to their defaults and the slave is reset. Useful for
// testing.
func (slv *Slave) Normalise() {
	slv.Instance.Normalise()
	slv.Reset()
}
