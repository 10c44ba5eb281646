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

// Package regmap describes the register slots of the slave, their
// classification and reset values, the address map and the binding of
// slots to external signals. A Config is fixed at construction time and
// shared, read-only, by the decoder, bank and binder packages.
//
// The Receiver() function returns the reference configuration, which
// exposes the control and status registers of a receiver datapath.
package regmap

import (
	"fmt"

	"github.com/jetsetilly/axiregs/curated"
	"github.com/jetsetilly/axiregs/hardware/bus"
)

// Class of a register slot.
type Class int

// List of valid Class values.
const (
	// Control slots are read-write from the bus and drive an output signal.
	Control Class = iota

	// Status slots are read-only from the bus and mirror an input signal.
	Status
)

func (c Class) String() string {
	switch c {
	case Control:
		return "control"
	case Status:
		return "status"
	}
	return "unknown"
}

// Slot describes one register slot in the bank.
type Slot struct {
	Class Class

	// the name of the external signal bound to the slot
	Signal string

	// the width of the external signal in bits. control slots always
	// store a full bus word and the output signal is taken from Offset
	// upwards. status slots store only this many bits
	Width int

	// bit offset of the output signal within the slot. Control slots only
	Offset int

	// the value loaded into the slot on reset. Control slots only
	Reset uint32
}

// Mask returns the bit mask covering the signal width.
func (s Slot) Mask() uint32 {
	if s.Width >= bus.DataWidth {
		return 0xffffffff
	}
	return (1 << s.Width) - 1
}

// Config is the complete description of a register slave.
type Config struct {
	// number of significant bits in a bus address. bits above this width
	// are ignored by the decoder
	AddressWidth int

	// slot descriptions. the index in the slice is the slot index
	Slots []Slot

	// byte address to slot index
	Addresses map[uint32]int

	// the slot returned by the decoder for unmapped addresses
	DefaultSlot int
}

// AddressMask returns the mask to apply to bus addresses.
func (cfg *Config) AddressMask() uint32 {
	if cfg.AddressWidth >= 32 {
		return 0xffffffff
	}
	return (1 << cfg.AddressWidth) - 1
}

// Sentinal error patterns returned by Validate().
const (
	InvalidConfig = "regmap: %v"
)

// Validate checks the configuration for consistency.
func (cfg *Config) Validate() error {
	if cfg.AddressWidth < 3 || cfg.AddressWidth > 32 {
		return curated.Errorf(InvalidConfig, fmt.Sprintf("address width out of range (%d)", cfg.AddressWidth))
	}

	if len(cfg.Slots) == 0 {
		return curated.Errorf(InvalidConfig, "no slots")
	}

	if cfg.DefaultSlot < 0 || cfg.DefaultSlot >= len(cfg.Slots) {
		return curated.Errorf(InvalidConfig, fmt.Sprintf("default slot out of range (%d)", cfg.DefaultSlot))
	}

	signals := make(map[string]int)
	for i, s := range cfg.Slots {
		if s.Width < 1 || s.Width > bus.DataWidth {
			return curated.Errorf(InvalidConfig, fmt.Sprintf("slot %d: width out of range (%d)", i, s.Width))
		}
		if s.Signal == "" {
			return curated.Errorf(InvalidConfig, fmt.Sprintf("slot %d: no signal name", i))
		}
		if j, ok := signals[s.Signal]; ok {
			return curated.Errorf(InvalidConfig, fmt.Sprintf("slot %d: signal %s already bound to slot %d", i, s.Signal, j))
		}
		signals[s.Signal] = i

		switch s.Class {
		case Control:
			if s.Offset < 0 || s.Offset+s.Width > bus.DataWidth {
				return curated.Errorf(InvalidConfig, fmt.Sprintf("slot %d: offset out of range (%d)", i, s.Offset))
			}
		case Status:
			if s.Offset != 0 || s.Reset != 0 {
				return curated.Errorf(InvalidConfig, fmt.Sprintf("slot %d: status slots have no offset or reset value", i))
			}
		default:
			return curated.Errorf(InvalidConfig, fmt.Sprintf("slot %d: unknown class", i))
		}
	}

	// keys are compared after masking and word alignment so that two
	// addresses that decode identically are caught
	keys := make(map[uint32]uint32)
	for a, i := range cfg.Addresses {
		if i < 0 || i >= len(cfg.Slots) {
			return curated.Errorf(InvalidConfig, fmt.Sprintf("address %#04x: slot out of range (%d)", a, i))
		}
		if a&^cfg.AddressMask() != 0 {
			return curated.Errorf(InvalidConfig, fmt.Sprintf("address %#04x: wider than address width", a))
		}
		if a&0x03 != 0 {
			return curated.Errorf(InvalidConfig, fmt.Sprintf("address %#04x: not word aligned", a))
		}
		k := a >> 2
		if b, ok := keys[k]; ok {
			return curated.Errorf(InvalidConfig, fmt.Sprintf("address %#04x: decodes the same as %#04x", a, b))
		}
		keys[k] = a
	}

	return nil
}

// AddressOf returns the byte address mapped to the slot. Returns false if the
// slot has no address.
func (cfg *Config) AddressOf(slot int) (uint32, bool) {
	for a, i := range cfg.Addresses {
		if i == slot {
			return a, true
		}
	}
	return 0, false
}

// SlotOf returns the index of the slot bound to the named signal. Returns
// false if there is no such signal.
func (cfg *Config) SlotOf(signal string) (int, bool) {
	for i, s := range cfg.Slots {
		if s.Signal == signal {
			return i, true
		}
	}
	return 0, false
}
