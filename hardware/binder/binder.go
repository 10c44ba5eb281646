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

// Package binder connects the register bank to the signals of the
// downstream functional block. Status slots are reloaded from their input
// signals by Capture(), which is called once per step after bus activity.
// Control slots are projected onto their output signals whenever Output()
// or Outputs() is called; there is no stored copy of an output.
//
// Bindings are one slot per signal and are fixed when the Binder is created.
package binder

import (
	"sort"

	"github.com/jetsetilly/axiregs/curated"
	"github.com/jetsetilly/axiregs/hardware/bank"
	"github.com/jetsetilly/axiregs/hardware/regmap"
)

// Sentinal error patterns.
const (
	UnknownSignal = "binder: unknown signal (%s)"
	NotAnInput    = "binder: not an input signal (%s)"
	NotAnOutput   = "binder: not an output signal (%s)"
)

// binding of one signal to one slot
type binding struct {
	slot   int
	mask   uint32
	offset int
}

// Binder maps slots onto external signals.
type Binder struct {
	bnk *bank.Bank

	inputs  []binding
	outputs []binding

	// signal name to index in inputs or outputs slice
	inputIdx  map[string]int
	outputIdx map[string]int

	// the current value of each input signal. values are masked when
	// they are driven
	drive []uint32
}

// Signal is a named signal value.
type Signal struct {
	Name  string
	Value uint32
}

// NewBinder is the preferred method of initialisation for the Binder type.
// The configuration should have been validated.
func NewBinder(cfg *regmap.Config, bnk *bank.Bank) *Binder {
	bnd := &Binder{
		bnk:       bnk,
		inputIdx:  make(map[string]int),
		outputIdx: make(map[string]int),
	}

	for i, s := range cfg.Slots {
		b := binding{slot: i, mask: s.Mask(), offset: s.Offset}
		switch s.Class {
		case regmap.Status:
			bnd.inputIdx[s.Signal] = len(bnd.inputs)
			bnd.inputs = append(bnd.inputs, b)
		case regmap.Control:
			bnd.outputIdx[s.Signal] = len(bnd.outputs)
			bnd.outputs = append(bnd.outputs, b)
		}
	}

	bnd.drive = make([]uint32, len(bnd.inputs))

	return bnd
}

// Snapshot creates a copy of the binder in its current state. The bank is
// shared with the original until Plumb() is called.
func (bnd *Binder) Snapshot() *Binder {
	n := *bnd
	n.drive = make([]uint32, len(bnd.drive))
	copy(n.drive, bnd.drive)
	return &n
}

// Plumb a new bank into the binder.
func (bnd *Binder) Plumb(bnk *bank.Bank) {
	bnd.bnk = bnk
}

func (bnd *Binder) checkName(name string) error {
	if _, ok := bnd.inputIdx[name]; ok {
		return curated.Errorf(NotAnOutput, name)
	}
	if _, ok := bnd.outputIdx[name]; ok {
		return curated.Errorf(NotAnInput, name)
	}
	return curated.Errorf(UnknownSignal, name)
}

// Drive sets the value of the named input signal. The value is zero-extended
// (or truncated) to the signal width. It will be loaded into the status slot
// on the next call to Capture().
func (bnd *Binder) Drive(name string, value uint32) error {
	i, ok := bnd.inputIdx[name]
	if !ok {
		return bnd.checkName(name)
	}
	bnd.drive[i] = value & bnd.inputs[i].mask
	return nil
}

// Input returns the current value of the named input signal.
func (bnd *Binder) Input(name string) (uint32, error) {
	i, ok := bnd.inputIdx[name]
	if !ok {
		return 0, bnd.checkName(name)
	}
	return bnd.drive[i], nil
}

// Capture loads every status slot from its input signal.
func (bnd *Binder) Capture() {
	for i, b := range bnd.inputs {
		bnd.bnk.Load(b.slot, bnd.drive[i])
	}
}

// Output returns the value of the named output signal, derived from the
// current contents of the bank.
func (bnd *Binder) Output(name string) (uint32, error) {
	i, ok := bnd.outputIdx[name]
	if !ok {
		return 0, bnd.checkName(name)
	}
	return bnd.project(bnd.outputs[i]), nil
}

// project the output signal from the slot. the slot holds a full bus word and
// the output is the signal width starting at the offset.
func (bnd *Binder) project(b binding) uint32 {
	return (bnd.bnk.Read(b.slot) >> b.offset) & b.mask
}

// Outputs returns the value of every output signal, sorted by name.
func (bnd *Binder) Outputs() []Signal {
	sigs := make([]Signal, 0, len(bnd.outputs))
	for name, i := range bnd.outputIdx {
		sigs = append(sigs, Signal{Name: name, Value: bnd.project(bnd.outputs[i])})
	}
	sort.Slice(sigs, func(i, j int) bool { return sigs[i].Name < sigs[j].Name })
	return sigs
}

// Inputs returns the value of every input signal, sorted by name.
func (bnd *Binder) Inputs() []Signal {
	sigs := make([]Signal, 0, len(bnd.inputs))
	for name, i := range bnd.inputIdx {
		sigs = append(sigs, Signal{Name: name, Value: bnd.drive[i]})
	}
	sort.Slice(sigs, func(i, j int) bool { return sigs[i].Name < sigs[j].Name })
	return sigs
}
