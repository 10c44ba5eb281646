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

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// String returns a summary of the configuration.
func (cfg *Config) String() string {
	var c, s int
	for _, sl := range cfg.Slots {
		if sl.Class == Control {
			c++
		} else {
			s++
		}
	}
	return fmt.Sprintf("%d slots (%d control, %d status), %d addresses", len(cfg.Slots), c, s, len(cfg.Addresses))
}

// WriteTable writes the address map as a table, ordered by address.
// Unmapped slots are listed at the end.
func (cfg *Config) WriteTable(output io.Writer) {
	addrs := make([]uint32, 0, len(cfg.Addresses))
	for a := range cfg.Addresses {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	row := func(addr string, i int) {
		s := cfg.Slots[i]
		reset := "-"
		if s.Class == Control {
			reset = fmt.Sprintf("%#x", s.Reset)
		}
		fmt.Fprintf(output, "%-6s %4d  %-7s %-24s %2d  %s\n", addr, i, s.Class, s.Signal, s.Width, reset)
	}

	fmt.Fprintf(output, "%-6s %4s  %-7s %-24s %2s  %s\n", "addr", "slot", "class", "signal", "w", "reset")
	fmt.Fprintln(output, strings.Repeat("-", 56))

	mapped := make(map[int]bool)
	for _, a := range addrs {
		i := cfg.Addresses[a]
		mapped[i] = true
		row(fmt.Sprintf("%#04x", a), i)
	}
	for i := range cfg.Slots {
		if !mapped[i] {
			row("-", i)
		}
	}
}
