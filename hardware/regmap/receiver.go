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

package regmap

// Receiver returns the reference configuration: nine control slots and six
// status slots for a receiver datapath. The address map is sparse with a gap
// between the two groups and a hole at 0x1c.
//
// A new instance is returned on every call so callers are free to modify it
// before use.
func Receiver() *Config {
	return &Config{
		AddressWidth: 8,
		Slots: []Slot{
			{Class: Control, Signal: "sync_threshold", Width: 16, Reset: 39},
			{Class: Control, Signal: "cfo_correction_enable", Width: 1, Reset: 1},
			{Class: Control, Signal: "timing_sync_enable", Width: 1, Reset: 1},
			{Class: Control, Signal: "phase_sync_enable", Width: 1, Reset: 1},
			{Class: Control, Signal: "frame_size", Width: 16},
			{Class: Control, Signal: "loopback_enable", Width: 1},
			{Class: Control, Signal: "agc_enable", Width: 1, Reset: 1},
			{Class: Control, Signal: "inspector_select", Width: 2},
			{Class: Control, Signal: "packet_count_reset", Width: 1},
			{Class: Status, Signal: "packet_count", Width: 32},
			{Class: Status, Signal: "frame_sync_count", Width: 32},
			{Class: Status, Signal: "crc_error_count", Width: 32},
			{Class: Status, Signal: "cfo_estimate", Width: 16},
			{Class: Status, Signal: "agc_gain", Width: 8},
			{Class: Status, Signal: "rx_locked", Width: 1},
		},
		Addresses: map[uint32]int{
			0x00: 0,
			0x04: 1,
			0x08: 2,
			0x0c: 3,
			0x10: 4,
			0x14: 5,
			0x18: 6,
			0x20: 7,
			0x24: 8,
			0x40: 9,
			0x44: 10,
			0x48: 11,
			0x50: 12,
			0x54: 13,
			0x58: 14,
		},
		DefaultSlot: 0,
	}
}
