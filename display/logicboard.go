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
	"strings"

	"github.com/gopher8051/gopher8051/debugger/terminal"
	"github.com/gopher8051/gopher8051/debugger/terminal/easyterm/ansi"
	"github.com/gopher8051/gopher8051/hardware/ports"
)

// LogicBoard shows the pins of the four I/O ports. While the view is active
// port reads return the input latches set by the operator in this view.
//
// LogicBoard also implements the scheduler.Observer interface so that pin
// activity can be shown.
type LogicBoard struct {
	canvas
	ctx *Context

	// the selected pin
	port ports.Port
	bit  int

	// output latches at the previous tick
	prev [ports.NumPorts]uint8

	// pins that have changed since the last update
	activity [ports.NumPorts]uint8
}

// NewLogicBoard is the preferred method of initialisation for the LogicBoard
// type.
func NewLogicBoard(scr Screen, ctx *Context) *LogicBoard {
	return &LogicBoard{
		canvas: canvas{scr: scr},
		ctx:    ctx,
	}
}

// Tick implements the scheduler.Observer interface.
func (v *LogicBoard) Tick(_ bool) {
	for p := ports.P0; p < ports.NumPorts; p++ {
		o := v.ctx.Ports.OutputLatch(p)
		v.activity[p] |= o ^ v.prev[p]
		v.prev[p] = o
	}
}

// Activity returns the pins of the port that have changed since the last
// update.
func (v *LogicBoard) Activity(p ports.Port) uint8 {
	return v.activity[p]
}

// Selected returns the selected pin.
func (v *LogicBoard) Selected() (ports.Port, int) {
	return v.port, v.bit
}

// Build implements the views.View interface.
func (v *LogicBoard) Build() {
	v.measure()
	v.clear()
	v.line(2, " port        7 6 5 4 3 2 1 0")
	v.line(v.rows-3, " cursor keys select pin, enter toggles input")
	v.Update()
}

// Wipe implements the views.View interface.
func (v *LogicBoard) Wipe() {
	v.clear()
}

// Update implements the views.View interface.
func (v *LogicBoard) Update() {
	v.measure()
	v.titleBar("logic board", v.ctx)

	for p := ports.P0; p < ports.NumPorts; p++ {
		row := 3 + int(p)*4
		out := v.ctx.Ports.OutputLatch(p)
		in := v.ctx.Ports.Latch(p)

		v.line(row, " %s out      %s  (%02x)", p, bits(out), out)
		v.line(row+2, "    activity %s", activityString(v.activity[p]))

		// input pins with the selected pin highlighted
		v.line(row+1, "    in       %s  (%02x)", bits(in), in)
		if p == v.port {
			col := 13 + (7-v.bit)*2
			v.print(row+1, col, ansi.PenStyles["inverse"], fmt.Sprintf("%d", (in>>v.bit)&0x01))
		}
	}

	v.activity = [ports.NumPorts]uint8{}
	v.keyBar()
}

func activityString(a uint8) string {
	s := strings.Builder{}
	for b := 7; b >= 0; b-- {
		if a&(1<<b) != 0 {
			s.WriteString("* ")
		} else {
			s.WriteString(". ")
		}
	}
	return strings.TrimSpace(s.String())
}

// HandleKey implements the views.View interface.
func (v *LogicBoard) HandleKey(key terminal.Key) bool {
	switch key {
	case terminal.KeyUp:
		if v.port > ports.P0 {
			v.port--
		}
	case terminal.KeyDown:
		if v.port < ports.NumPorts-1 {
			v.port++
		}
	case terminal.KeyLeft:
		if v.bit < 7 {
			v.bit++
		}
	case terminal.KeyRight:
		if v.bit > 0 {
			v.bit--
		}
	case terminal.KeyEnter, 't':
		v.ctx.Ports.SetLatch(v.port, v.ctx.Ports.Latch(v.port)^(1<<v.bit))
	default:
		return false
	}

	v.Update()
	return true
}
