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
	"github.com/gopher8051/gopher8051/hardware/engine"
)

// Area is a region of memory that can be edited by the MemEditor.
type Area int

// List of memory areas.
const (
	AreaLower Area = iota
	AreaUpper
	AreaSFR
	numAreas
)

func (a Area) String() string {
	switch a {
	case AreaLower:
		return "lower data"
	case AreaUpper:
		return "upper data"
	case AreaSFR:
		return "sfr"
	}
	return ""
}

// base address of each area as seen by the program
var areaBase = [numAreas]int{0x00, 0x80, 0x80}

// every area is the same size
const areaSize = 128

const bytesPerRow = 16

// MemEditor is a hex editor for internal data memory and the special
// function registers.
type MemEditor struct {
	canvas
	ctx *Context

	area   Area
	cursor int

	// the high nibble has been entered and the next hex digit completes the
	// byte under the cursor
	nibble bool
}

// NewMemEditor is the preferred method of initialisation for the MemEditor
// type.
func NewMemEditor(scr Screen, ctx *Context) *MemEditor {
	return &MemEditor{
		canvas: canvas{scr: scr},
		ctx:    ctx,
	}
}

// Cursor returns the area and the address under the cursor.
func (v *MemEditor) Cursor() (Area, int) {
	return v.area, areaBase[v.area] + v.cursor
}

func (v *MemEditor) memory() []uint8 {
	switch v.area {
	case AreaUpper:
		return v.ctx.State.Upper[:]
	case AreaSFR:
		return v.ctx.State.SFR[:]
	}
	return v.ctx.State.Lower[:]
}

// Build implements the views.View interface.
func (v *MemEditor) Build() {
	v.measure()
	v.clear()
	v.line(v.rows-3, " cursor keys move, tab changes area, hex digits edit")
	v.Update()
}

// Wipe implements the views.View interface.
func (v *MemEditor) Wipe() {
	v.clear()
}

// Update implements the views.View interface.
func (v *MemEditor) Update() {
	v.measure()
	v.titleBar("memory editor", v.ctx)
	v.line(2, " %s", v.area)

	hdr := strings.Builder{}
	for i := 0; i < bytesPerRow; i++ {
		fmt.Fprintf(&hdr, " %x ", i)
	}
	v.line(3, "      %s", hdr.String())

	mem := v.memory()
	for r := 0; r < areaSize/bytesPerRow; r++ {
		row := 4 + r

		s := strings.Builder{}
		for i := 0; i < bytesPerRow; i++ {
			fmt.Fprintf(&s, " %02x", mem[r*bytesPerRow+i])
		}
		v.line(row, " %02x:  %s", areaBase[v.area]+r*bytesPerRow, s.String())

		if v.cursor/bytesPerRow == r {
			col := 7 + (v.cursor%bytesPerRow)*3
			v.print(row, col, ansi.PenStyles["inverse"], fmt.Sprintf("%02x", mem[v.cursor]))
		}
	}

	if v.area == AreaSFR {
		name := engine.SFRName(uint8(areaBase[v.area] + v.cursor))
		v.line(5+areaSize/bytesPerRow, " %s", name)
	} else {
		v.line(5+areaSize/bytesPerRow, "")
	}

	v.keyBar()
}

func hexDigit(key terminal.Key) (uint8, bool) {
	switch {
	case key >= '0' && key <= '9':
		return uint8(key - '0'), true
	case key >= 'a' && key <= 'f':
		return uint8(key-'a') + 10, true
	case key >= 'A' && key <= 'F':
		return uint8(key-'A') + 10, true
	}
	return 0, false
}

// HandleKey implements the views.View interface.
func (v *MemEditor) HandleKey(key terminal.Key) bool {
	if d, ok := hexDigit(key); ok {
		mem := v.memory()
		if v.nibble {
			mem[v.cursor] = mem[v.cursor]&0xf0 | d
			v.nibble = false
			v.move(1)
		} else {
			mem[v.cursor] = mem[v.cursor]&0x0f | d<<4
			v.nibble = true
		}
		v.Update()
		return true
	}

	switch key {
	case terminal.KeyUp:
		v.move(-bytesPerRow)
	case terminal.KeyDown:
		v.move(bytesPerRow)
	case terminal.KeyLeft:
		v.move(-1)
	case terminal.KeyRight:
		v.move(1)
	case terminal.KeyTab:
		v.area = (v.area + 1) % numAreas
		v.nibble = false
	default:
		return false
	}

	v.Update()
	return true
}

// move the cursor, wrapping around the area
func (v *MemEditor) move(n int) {
	v.cursor = (v.cursor + n + areaSize) % areaSize
	v.nibble = false
}
