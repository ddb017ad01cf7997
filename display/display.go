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

package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/gopher8051/gopher8051/debugger/govern"
	"github.com/gopher8051/gopher8051/debugger/halt"
	"github.com/gopher8051/gopher8051/debugger/scheduler"
	"github.com/gopher8051/gopher8051/debugger/terminal/easyterm/ansi"
	"github.com/gopher8051/gopher8051/hardware/engine"
	"github.com/gopher8051/gopher8051/hardware/ports"
	"github.com/gopher8051/gopher8051/rewind"
	"github.com/gopher8051/gopher8051/version"
)

// Screen is the output for the views. The terminal.Operator interface
// satisfies this interface.
type Screen interface {
	Writer() io.Writer
	Geometry() (int, int)
}

// Context is the emulation state shown by the views.
type Context struct {
	State      *engine.State
	Config     *govern.RunConfig
	History    *rewind.Ring
	Breakpoint *halt.Breakpoint
	Ports      *ports.Ports
	Scheduler  *scheduler.Scheduler
}

// canvas draws lines of text at fixed positions on a Screen.
type canvas struct {
	scr  Screen
	cols int
	rows int
}

// measure the screen. should be called at the start of every Build() and
// Update()
func (c *canvas) measure() {
	c.cols, c.rows = c.scr.Geometry()
}

func (c *canvas) clear() {
	io.WriteString(c.scr.Writer(), ansi.NormalPen+ansi.ClearScreen)
}

// print the string at the position. the string is truncated at the right
// edge of the screen and is not printed at all if the row is off screen
func (c *canvas) print(row, col int, pen string, s string) {
	if row < 0 || row >= c.rows || col >= c.cols {
		return
	}
	if r := []rune(s); len(r) > c.cols-col {
		s = string(r[:c.cols-col])
	}

	w := c.scr.Writer()
	io.WriteString(w, ansi.CursorPosition(row, col))
	if pen != "" {
		io.WriteString(w, pen+s+ansi.NormalPen)
	} else {
		io.WriteString(w, s)
	}
}

// line prints a whole line, clearing anything to the right of the string
func (c *canvas) line(row int, format string, a ...any) {
	c.print(row, 0, "", fmt.Sprintf(format, a...))
	if row >= 0 && row < c.rows {
		io.WriteString(c.scr.Writer(), ansi.ClearToEOL)
	}
}

// titleBar is the first line of every view
func (c *canvas) titleBar(title string, ctx *Context) {
	mode := ctx.Config.Mode.String()
	if ctx.Config.StepInstruction {
		mode = mode + " (instruction)"
	}
	s := fmt.Sprintf(" %s | %s | speed %s | %s", version.ApplicationName, title, ctx.Config.Speed, mode)
	if pad := c.cols - len(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	c.print(0, 0, ansi.PenStyles["inverse"], s)
}

// keyBar is the last line of every view
func (c *canvas) keyBar() {
	c.line(c.rows-1, " F1 main  F2 logic  F3 memory  F4 options  h)elp  l)oad  spc=step  r)un  home=rst  Q)uit")
}

func bits(v uint8) string {
	s := strings.Builder{}
	for b := 7; b >= 0; b-- {
		if v&(1<<b) != 0 {
			s.WriteString("1 ")
		} else {
			s.WriteString("0 ")
		}
	}
	return strings.TrimSpace(s.String())
}
