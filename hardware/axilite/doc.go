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

// Package axilite implements the write and read channels of the register
// slave. Each channel is a small state machine advanced once per step by
// the Step() function. All decisions in a step are taken from the state at
// the start of the step and the master signals presented for that step.
//
// A write is accepted when the master presents a valid address and valid
// data together. The address and data ready flags are separate state bits
// but they are set from the same condition, so they always pulse together:
//
//	step       0     1     2     3
//	AWVALID    1     1     0     0
//	WVALID     1     1     0     0
//	AWREADY    0     1     0     0
//	WREADY     0     1     0     0
//	BVALID     0     0     1     0
//	BREADY     x     x     1     x
//
// The write is committed to the bank on step 1, when both handshakes take
// place. The response is presented from step 2 until the master
// acknowledges it. No new write is accepted until then.
//
// A read is accepted when the master presents a valid address and no read
// response is pending. The value is captured from the bank when the address
// handshake takes place and presented on the following step:
//
//	step       0     1     2     3
//	ARVALID    1     1     0     0
//	ARREADY    0     1     0     0
//	RVALID     0     0     1     0
//	RREADY     x     x     1     x
//
// Responses are always OKAY unless the strict decode or read-only fault
// preferences are set. See the hardware/preferences package.
package axilite
