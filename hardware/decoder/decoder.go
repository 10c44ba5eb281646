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

// Package decoder resolves bus byte addresses to register slot indexes.
//
// The decode table is built once, when the Decoder is created, from the
// address map in the register configuration. Addresses are masked to the
// configured address width and the two low bits (the byte offset within a
// word) are discarded before lookup.
//
// Decode() is total. Addresses that are not in the map resolve to the
// default slot and the mapped flag is false; the caller decides what an
// unmapped access means.
package decoder

import (
	"github.com/jetsetilly/axiregs/hardware/regmap"
)

// the widest address space for which a sparse array is used for the decode
// table. wider address spaces use a map
const sparseLimit = 16

// Decoder maps byte addresses to slot indexes.
type Decoder struct {
	mask        uint32
	defaultSlot int

	// one of these will be used depending on the address width. entries in
	// the sparse array are slot+1 so that the zero value means unmapped
	sparse []int
	dense  map[uint32]int
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
// The configuration should have been validated.
func NewDecoder(cfg *regmap.Config) *Decoder {
	dec := &Decoder{
		mask:        cfg.AddressMask(),
		defaultSlot: cfg.DefaultSlot,
	}

	if cfg.AddressWidth <= sparseLimit {
		dec.sparse = make([]int, (dec.mask>>2)+1)
		for a, i := range cfg.Addresses {
			dec.sparse[dec.key(a)] = i + 1
		}
	} else {
		dec.dense = make(map[uint32]int, len(cfg.Addresses))
		for a, i := range cfg.Addresses {
			dec.dense[dec.key(a)] = i
		}
	}

	return dec
}

func (dec *Decoder) key(address uint32) uint32 {
	return (address & dec.mask) >> 2
}

// Decode returns the slot index for the address. If the address is not
// mapped the default slot is returned along with false.
func (dec *Decoder) Decode(address uint32) (int, bool) {
	k := dec.key(address)

	if dec.sparse != nil {
		if i := dec.sparse[k]; i > 0 {
			return i - 1, true
		}
		return dec.defaultSlot, false
	}

	if i, ok := dec.dense[k]; ok {
		return i, true
	}
	return dec.defaultSlot, false
}
