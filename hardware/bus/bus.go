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

// Package bus defines the signals that pass between a bus master and the
// register slave. The signals are named after the AXI4-Lite channels they
// model. The master drives the Master type and the slave drives the Slave
// type. Neither type has any behaviour of its own; the valid/ready protocol
// is implemented by the axilite package.
//
// A handshake on a channel takes place on any step where the master's valid
// signal and the slave's ready signal are both high at the start of the
// step.
package bus

import "fmt"

// DataWidth is the width of the data bus in bits.
const DataWidth = 32

// Lanes is the number of byte lanes on the data bus.
const Lanes = DataWidth / 8

// Strobe is the per-byte-lane write enable that accompanies write data. Bit
// N of the strobe enables byte lane N (bits 8N to 8N+7) of the data.
type Strobe uint8

// StrobeFull enables every byte lane.
const StrobeFull Strobe = (1 << Lanes) - 1

// Lane returns true if the byte lane is enabled.
func (s Strobe) Lane(lane int) bool {
	return s&(1<<lane) != 0
}

// Mask expands the strobe into a bit mask over the data bus.
func (s Strobe) Mask() uint32 {
	var m uint32
	for l := 0; l < Lanes; l++ {
		if s.Lane(l) {
			m |= 0xff << (l * 8)
		}
	}
	return m
}

func (s Strobe) String() string {
	return fmt.Sprintf("%04b", uint8(s&StrobeFull))
}

// Response is the status code returned with a write response or with read
// data.
type Response uint8

// List of valid Response values.
const (
	OKAY Response = iota
	EXOKAY
	SLVERR
	DECERR
)

func (r Response) String() string {
	switch r {
	case OKAY:
		return "OKAY"
	case EXOKAY:
		return "EXOKAY"
	case SLVERR:
		return "SLVERR"
	case DECERR:
		return "DECERR"
	}
	return fmt.Sprintf("RESP(%d)", uint8(r))
}

// Master is the set of signals driven by the bus master.
type Master struct {
	// Reset is active high. it is the equivalent of ARESETN being held low
	Reset bool

	// write address channel
	AWAddr  uint32
	AWValid bool

	// write data channel
	WData  uint32
	WStrb  Strobe
	WValid bool

	// write response channel
	BReady bool

	// read address channel
	ARAddr  uint32
	ARValid bool

	// read data channel
	RReady bool
}

// Slave is the set of signals driven by the register slave.
type Slave struct {
	// write address and data channels
	AWReady bool
	WReady  bool

	// write response channel
	BValid bool
	BResp  Response

	// read address channel
	ARReady bool

	// read data channel
	RValid bool
	RData  uint32
	RResp  Response
}

func (s Slave) String() string {
	b := func(v bool) int {
		if v {
			return 1
		}
		return 0
	}
	return fmt.Sprintf("AW:%d W:%d B:%d(%s) AR:%d R:%d(%s) %#08x",
		b(s.AWReady), b(s.WReady), b(s.BValid), s.BResp,
		b(s.ARReady), b(s.RValid), s.RResp, s.RData)
}
