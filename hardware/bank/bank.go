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

// Package bank implements the register bank. The bank is a plain store of
// slot values with byte-granular masked writes. It does not enforce the
// read-only nature of status slots; that is a consequence of the binder
// package reloading status slots on every step.
//
// Control slots hold a full bus word. Status slots are held truncated to the
// slot width so Read() always returns a zero-extended value.
package bank

import (
	"fmt"

	"github.com/jetsetilly/axiregs/curated"
	"github.com/jetsetilly/axiregs/hardware/bus"
	"github.com/jetsetilly/axiregs/hardware/regmap"
)

// Sentinal error patterns.
const (
	SlotOutOfRange = "bank: slot out of range (%d)"
)

// Bank is the register storage.
type Bank struct {
	cfg   *regmap.Config
	slots []uint32

	// the storage mask of each slot. all bits for control slots and the
	// width mask for status slots
	masks []uint32
}

// NewBank is the preferred method of initialisation for the Bank type. The
// bank is returned in its reset state.
func NewBank(cfg *regmap.Config) *Bank {
	bnk := &Bank{
		cfg:   cfg,
		slots: make([]uint32, len(cfg.Slots)),
		masks: make([]uint32, len(cfg.Slots)),
	}
	for i, s := range cfg.Slots {
		if s.Class == regmap.Control {
			bnk.masks[i] = 0xffffffff
		} else {
			bnk.masks[i] = s.Mask()
		}
	}
	bnk.Reset()
	return bnk
}

// Snapshot creates a copy of the bank in its current state.
func (bnk *Bank) Snapshot() *Bank {
	// masks are shared with the original. they never change after NewBank()
	n := *bnk
	n.slots = make([]uint32, len(bnk.slots))
	copy(n.slots, bnk.slots)
	return &n
}

func (bnk *Bank) String() string {
	return fmt.Sprintf("%08x", bnk.slots)
}

// Reset loads control slots with their reset values and clears status
// slots.
func (bnk *Bank) Reset() {
	for i, s := range bnk.cfg.Slots {
		if s.Class == regmap.Control {
			bnk.slots[i] = s.Reset
		} else {
			bnk.slots[i] = 0
		}
	}
}

// Len returns the number of slots in the bank.
func (bnk *Bank) Len() int {
	return len(bnk.slots)
}

// Write data into the slot. Only the byte lanes enabled by the strobe are
// changed. Bits beyond the width of a status slot are discarded. The slot
// must be in range.
func (bnk *Bank) Write(slot int, data uint32, strobe bus.Strobe) {
	m := strobe.Mask()
	bnk.slots[slot] = ((bnk.slots[slot] &^ m) | (data & m)) & bnk.masks[slot]
}

// Read the current value of the slot. The slot must be in range.
func (bnk *Bank) Read(slot int) uint32 {
	return bnk.slots[slot]
}

// Load sets the slot to the value, truncated as for Write(). Used by the
// binder to reload status slots. The slot must be in range.
func (bnk *Bank) Load(slot int, value uint32) {
	bnk.slots[slot] = value & bnk.masks[slot]
}

// Peek returns the value of the slot. Unlike Read() the slot is checked and
// an error returned if it is out of range. Intended for debuggers and
// scripts.
func (bnk *Bank) Peek(slot int) (uint32, error) {
	if slot < 0 || slot >= len(bnk.slots) {
		return 0, curated.Errorf(SlotOutOfRange, slot)
	}
	return bnk.slots[slot], nil
}

// Poke sets the value of the slot, truncated as for Write(). Status slots
// can be poked but the value will be lost on the next step.
func (bnk *Bank) Poke(slot int, value uint32) error {
	if slot < 0 || slot >= len(bnk.slots) {
		return curated.Errorf(SlotOutOfRange, slot)
	}
	bnk.Load(slot, value)
	return nil
}
