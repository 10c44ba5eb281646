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

// Package hardware is the base package for the register slave. It and its
// sub-packages contain everything required to model the slave.
//
// The Slave type is the root of the model and contains references to all the
// sub-systems: the address decoder, the register bank, the write and read
// channels and the signal binder. From here the slave can either be stepped
// one clock edge at a time with Step(), or run continuously with Run() and a
// function that supplies the bus master's signals for every step.
//
// The order of evaluation inside a step is fixed:
//
//  1. reset, which pre-empts everything else
//  2. the read channel, which sees the bank as it was at the start of the step
//  3. the write channel, which commits to the bank
//  4. the binder, which reloads the status slots from their input signals
//
// A write to a status slot is therefore overwritten in the same step and
// can never be observed by a read.
package hardware
