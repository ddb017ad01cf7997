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
	"github.com/gopher8051/gopher8051/hardware/clocks"
	"github.com/gopher8051/gopher8051/hardware/engine"
	"github.com/gopher8051/gopher8051/rewind"
)

// number of code bytes shown after the program counter
const codeBytes = 4

// first row of the history list
const historyTop = 9

// Main is the main view. It shows the registers, the code at the program
// counter and the history of retired instructions.
type Main struct {
	canvas
	ctx *Context
}

// NewMain is the preferred method of initialisation for the Main type.
func NewMain(scr Screen, ctx *Context) *Main {
	return &Main{
		canvas: canvas{scr: scr},
		ctx:    ctx,
	}
}

// Build implements the views.View interface.
func (v *Main) Build() {
	v.measure()
	v.clear()
	v.line(historyTop-1, " history   PC   ACC PSW SP  DPTR  R0 R1 R2 R3 R4 R5 R6 R7")
	v.Update()
}

// Wipe implements the views.View interface.
func (v *Main) Wipe() {
	v.clear()
}

// Update implements the views.View interface.
func (v *Main) Update() {
	v.measure()
	v.titleBar("main", v.ctx)

	st := v.ctx.State

	code := make([]string, codeBytes)
	for i := range code {
		code[i] = fmt.Sprintf("%02x", st.Code[st.PC+uint16(i)])
	}

	pen := ""
	if bp, ok := v.ctx.Breakpoint.Armed(); ok && bp == st.PC {
		pen = ansi.Pens["red"]
	}
	v.print(2, 0, pen, fmt.Sprintf(" PC   %04x  %s", st.PC, strings.Join(code, " ")))

	v.line(3, " A    %02x    B    %02x    PSW  %02x    SP   %02x",
		st.ReadSFR(engine.ACC), st.ReadSFR(engine.B), st.ReadSFR(engine.PSW), st.ReadSFR(engine.SP))
	v.line(4, " DPTR %02x%02x  bank %d", st.ReadSFR(engine.DPH), st.ReadSFR(engine.DPL), st.Bank())

	r := make([]string, 8)
	for i := range r {
		r[i] = fmt.Sprintf("%02x", st.R(i))
	}
	v.line(5, " R0-7 %s", strings.Join(r, " "))
	v.line(6, " P0   %02x    P1   %02x    P2   %02x    P3   %02x",
		st.ReadSFR(engine.P0), st.ReadSFR(engine.P1), st.ReadSFR(engine.P2), st.ReadSFR(engine.P3))

	v.updateHistory()
	v.updateStatus()
	v.keyBar()
}

func (v *Main) updateHistory() {
	rows := max(0, v.rows-historyTop-2)
	entries := v.ctx.History.Entries()

	for i := 0; i < rows; i++ {
		row := historyTop + i
		if i >= len(entries) {
			v.line(row, "")
			continue // for loop
		}
		v.line(row, " %s", historyLine(i, entries[i]))
	}
}

func historyLine(i int, e rewind.Entry) string {
	sfr := func(register uint8) uint8 {
		return e.SFR[engine.SFRIndex(register)]
	}
	bank := int(sfr(engine.PSW)>>3) & 0x03

	r := make([]string, 8)
	for n := range r {
		r[n] = fmt.Sprintf("%02x", e.Lower[bank*8+n])
	}

	return fmt.Sprintf("%-7d   %04x %02x  %02x  %02x  %02x%02x  %s", -i, e.PC,
		sfr(engine.ACC), sfr(engine.PSW), sfr(engine.SP),
		sfr(engine.DPH), sfr(engine.DPL), strings.Join(r, " "))
}

func (v *Main) updateStatus() {
	sch := v.ctx.Scheduler
	us := clocks.Microseconds(sch.Clocks(), sch.ClockHz())

	v.line(v.rows-2, " %s | clocks %d (%dus) | instructions %d | %dHz",
		v.ctx.Breakpoint, sch.Clocks(), us, sch.Instructions(), sch.ClockHz())
}

// HandleKey implements the views.View interface.
func (v *Main) HandleKey(_ terminal.Key) bool {
	return false
}
