// This file is part of Gopher8051.
//
// Gopher8051 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8051 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8051.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"io"
	"strings"

	"github.com/gopher8051/gopher8051/debugger/terminal/easyterm/ansi"
)

// Colorizer applies basic coloring rules to logging output. The first line of
// each write is left alone and any following lines are dimmed. Used when the
// log is written to a terminal on exit.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	l := strings.Split(strings.TrimSpace(string(p)), "\n")

	var n int
	for i, s := range l {
		if tag, detail, ok := strings.Cut(s, ": "); ok {
			s = ansi.DimPens["cyan"] + tag + ansi.NormalPen + ": " + detail
		}
		if i > 0 {
			s = ansi.DimPens["red"] + s + ansi.NormalPen
		}
		m, err := io.WriteString(c.out, s+"\n")
		n += m
		if err != nil {
			return n, err
		}
	}

	return len(p), nil
}
