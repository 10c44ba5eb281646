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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/axiregs/hardware"
	"github.com/jetsetilly/axiregs/hardware/instance"
	"github.com/jetsetilly/axiregs/hardware/preferences"
	"github.com/jetsetilly/axiregs/hardware/regmap"
	"github.com/jetsetilly/axiregs/logger"
	"github.com/jetsetilly/axiregs/modalflag"
	"github.com/jetsetilly/axiregs/prefs"
	"github.com/jetsetilly/axiregs/script"
	"github.com/jetsetilly/axiregs/statsview"
	"github.com/jetsetilly/axiregs/testbench"
	"github.com/jetsetilly/axiregs/version"
	"golang.org/x/term"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "MAP", "DUMP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "MAP":
		err = regmap.Receiver().Validate()
		if err == nil {
			regmap.Receiver().WriteTable(md.Output)
		}

	case "DUMP":
		err = dump(md)

	case "VERSION":
		v, r, _ := version.Version()
		fmt.Fprintf(md.Output, "%s %s (%s)\n", version.ApplicationName, v, r)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// echoLog sets the central logger to echo new entries to stdout. the tag of
// each entry is dimmed if stdout is a terminal.
func echoLog() {
	var w io.Writer = os.Stdout
	if term.IsTerminal(int(os.Stdout.Fd())) {
		w = logger.NewColorizer(os.Stdout)
	}
	logger.SetEcho(w, false)
}

// newTestbench creates a slave with the reference configuration and wraps it
// in a testbench. the command line preference overrides are applied when the
// preferences are loaded.
func newTestbench(md *modalflag.Modes, overrides []string) (*testbench.Testbench, error) {
	prefs.PushCommandLineStack(strings.Join(overrides, "; "))

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	if n := prefs.PopCommandLineStack(); n > 0 {
		fmt.Fprintf(md.Output, "* %d preference overrides were not recognised\n", n)
	}

	ins, err := instance.NewInstance(instance.Main, p)
	if err != nil {
		return nil, err
	}

	slv, err := hardware.NewSlave(ins, regmap.Receiver())
	if err != nil {
		return nil, err
	}

	return testbench.NewTestbench(slv), nil
}

// runScripts runs each named script file against the testbench in order.
func runScripts(md *modalflag.Modes, tb *testbench.Testbench, output io.Writer) error {
	for _, fn := range md.RemainingArgs() {
		src, err := os.ReadFile(fn)
		if err != nil {
			return err
		}
		err = script.Run(tb, fn, string(src), output)
		if err != nil {
			return err
		}
	}
	return nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Lua scripts are run in the order given on the command line.")

	strict := md.AddBool("strict", false, "report unmapped addresses with DECERR")
	roFault := md.AddBool("rofault", false, "report writes to status registers with SLVERR")
	echo := md.AddBool("echo", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, "run stats server")
	prefsOverride := md.AddString("prefs", "", "preference overrides: key::value; key::value")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("script file required for %s mode", md)
	}

	if *echo {
		echoLog()
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	var overrides []string
	if *prefsOverride != "" {
		overrides = append(overrides, *prefsOverride)
	}
	if *strict {
		overrides = append(overrides, "hardware.strictdecode::true")
	}
	if *roFault {
		overrides = append(overrides, "hardware.readonlyfault::true")
	}

	tb, err := newTestbench(md, overrides)
	if err != nil {
		return err
	}

	err = runScripts(md, tb, md.Output)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%d cycles\n", tb.Slave.Cycles)

	return nil
}

func dump(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Lua scripts are run before the slave state is written as a Graphviz graph.")

	prefsOverride := md.AddString("prefs", "", "preference overrides: key::value; key::value")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var overrides []string
	if *prefsOverride != "" {
		overrides = append(overrides, *prefsOverride)
	}

	tb, err := newTestbench(md, overrides)
	if err != nil {
		return err
	}

	// script output is discarded so that only the graph is written
	err = runScripts(md, tb, io.Discard)
	if err != nil {
		return err
	}

	memviz.Map(md.Output, tb.Slave.Snapshot())

	return nil
}
