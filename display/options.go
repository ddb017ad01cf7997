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

	"github.com/gopher8051/gopher8051/debugger/terminal"
	"github.com/gopher8051/gopher8051/debugger/terminal/easyterm/ansi"
	"github.com/gopher8051/gopher8051/logger"
)

// Option is a single setting on the options screen.
type Option struct {
	Label string

	// the current value of the setting
	Value func() string

	// change the setting. forward is false if the setting should change in
	// the opposite direction
	Change func(forward bool) error
}

// Options is the options screen.
type Options struct {
	canvas
	ctx *Context

	options  []Option
	selected int
}

// NewOptions is the preferred method of initialisation for the Options type.
func NewOptions(scr Screen, ctx *Context, options []Option) *Options {
	return &Options{
		canvas:  canvas{scr: scr},
		ctx:     ctx,
		options: options,
	}
}

// Selected returns the index of the selected option.
func (v *Options) Selected() int {
	return v.selected
}

// Build implements the views.View interface.
func (v *Options) Build() {
	v.measure()
	v.clear()
	v.line(v.rows-3, " up/down selects, enter/right/left changes")
	v.Update()
}

// Wipe implements the views.View interface.
func (v *Options) Wipe() {
	v.clear()
}

// Update implements the views.View interface.
func (v *Options) Update() {
	v.measure()
	v.titleBar("options", v.ctx)

	w := 0
	for _, o := range v.options {
		w = max(w, len(o.Label))
	}

	for i, o := range v.options {
		row := 2 + i
		s := fmt.Sprintf(" %-*s  %s", w, o.Label, o.Value())
		if i == v.selected {
			v.line(row, "")
			v.print(row, 0, ansi.PenStyles["inverse"], s)
		} else {
			v.line(row, "%s", s)
		}
	}

	v.keyBar()
}

// HandleKey implements the views.View interface.
func (v *Options) HandleKey(key terminal.Key) bool {
	if len(v.options) == 0 {
		return false
	}

	switch key {
	case terminal.KeyUp:
		v.selected = (v.selected + len(v.options) - 1) % len(v.options)
	case terminal.KeyDown:
		v.selected = (v.selected + 1) % len(v.options)
	case terminal.KeyEnter, terminal.KeyRight:
		v.change(true)
	case terminal.KeyLeft:
		v.change(false)
	default:
		return false
	}

	v.Update()
	return true
}

func (v *Options) change(forward bool) {
	o := v.options[v.selected]
	if err := o.Change(forward); err != nil {
		logger.Logf(logger.Allow, "options", "%s: %v", o.Label, err)
	}
}
