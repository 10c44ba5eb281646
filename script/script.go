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

// Package script runs Lua scripts against a testbench. A script has access
// to the following functions, in addition to the standard Lua libraries:
//
//	write(address, data [, strobe])   returns the response as a string
//	read(address)                     returns the data and the response
//	drive(signal, value)              sets an input signal
//	output(signal)                    returns the value of an output signal
//	step([n])                         idles the bus for n steps (default 1)
//	reset()                           asserts the reset line for one step
//	cycles()                          returns the number of steps taken
//
// The print() function writes to the output given to Run() rather than to
// stdout.
//
// An example script:
//
//	write(0x00, 0x27)
//	assert(output("sync_threshold") == 0x27)
//	drive("packet_count", 1000)
//	step()
//	local v, resp = read(0x40)
//	print(v, resp)
package script

import (
	"io"
	"strings"

	"github.com/jetsetilly/axiregs/curated"
	"github.com/jetsetilly/axiregs/hardware/bus"
	"github.com/jetsetilly/axiregs/testbench"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal error patterns.
const (
	ScriptError = "script: %s: %v"
)

type session struct {
	tb     *testbench.Testbench
	output io.Writer
}

// Run the Lua source against the testbench. The name is used in error
// messages only.
func Run(tb *testbench.Testbench, name string, source string, output io.Writer) error {
	if output == nil {
		output = io.Discard
	}

	sess := &session{tb: tb, output: output}

	L := lua.NewState()
	defer L.Close()

	L.SetGlobal("write", L.NewFunction(sess.write))
	L.SetGlobal("read", L.NewFunction(sess.read))
	L.SetGlobal("drive", L.NewFunction(sess.drive))
	L.SetGlobal("output", L.NewFunction(sess.outputSignal))
	L.SetGlobal("step", L.NewFunction(sess.step))
	L.SetGlobal("reset", L.NewFunction(sess.reset))
	L.SetGlobal("cycles", L.NewFunction(sess.cycles))
	L.SetGlobal("print", L.NewFunction(sess.print))

	err := L.DoString(source)
	if err != nil {
		return curated.Errorf(ScriptError, name, err)
	}

	return nil
}

func checkUint32(L *lua.LState, n int) uint32 {
	v := L.CheckNumber(n)
	if v < 0 || v > 0xffffffff {
		L.ArgError(n, "value out of range")
	}
	return uint32(v)
}

func (sess *session) write(L *lua.LState) int {
	address := checkUint32(L, 1)
	data := checkUint32(L, 2)
	strobe := bus.StrobeFull
	if L.GetTop() >= 3 {
		v := L.CheckInt(3)
		if v < 0 || v > int(bus.StrobeFull) {
			L.ArgError(3, "strobe out of range")
		}
		strobe = bus.Strobe(v)
	}

	resp, err := sess.tb.Write(address, data, strobe)
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}

	L.Push(lua.LString(resp.String()))
	return 1
}

func (sess *session) read(L *lua.LState) int {
	address := checkUint32(L, 1)

	data, resp, err := sess.tb.Read(address)
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}

	L.Push(lua.LNumber(data))
	L.Push(lua.LString(resp.String()))
	return 2
}

func (sess *session) drive(L *lua.LState) int {
	name := L.CheckString(1)
	value := checkUint32(L, 2)

	err := sess.tb.Slave.Binder.Drive(name, value)
	if err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (sess *session) outputSignal(L *lua.LState) int {
	name := L.CheckString(1)

	v, err := sess.tb.Slave.Binder.Output(name)
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}

	L.Push(lua.LNumber(v))
	return 1
}

func (sess *session) step(L *lua.LState) int {
	n := L.OptInt(1, 1)
	if n < 0 {
		L.ArgError(1, "negative step count")
	}
	sess.tb.Idle(n)
	return 0
}

func (sess *session) reset(L *lua.LState) int {
	sess.tb.Reset()
	return 0
}

func (sess *session) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(sess.tb.Slave.Cycles))
	return 1
}

func (sess *session) print(L *lua.LState) int {
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.Get(i + 1).String()
	}
	io.WriteString(sess.output, strings.Join(s, "\t"))
	io.WriteString(sess.output, "\n")
	return 0
}
