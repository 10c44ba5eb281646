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

package logger

import (
	"bytes"
	"io"
)

const (
	dimPen    = "\033[2m"
	normalPen = "\033[0m"
)

// Colorizer wraps an io.Writer and dims the tag portion of each log entry.
// Intended to be used with SetEcho() when the output is a terminal.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	tag, detail, found := bytes.Cut(p, []byte(": "))
	if !found {
		return c.out.Write(p)
	}

	var b bytes.Buffer
	b.WriteString(dimPen)
	b.Write(tag)
	b.WriteString(":")
	b.WriteString(normalPen)
	b.WriteString(" ")
	b.Write(detail)

	if _, err := c.out.Write(b.Bytes()); err != nil {
		return 0, err
	}

	return len(p), nil
}
