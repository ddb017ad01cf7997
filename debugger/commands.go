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

package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gopher8051/gopher8051/debugger/govern"
	"github.com/gopher8051/gopher8051/debugger/terminal"
	"github.com/gopher8051/gopher8051/debugger/views"
	"github.com/gopher8051/gopher8051/loader"
	"github.com/gopher8051/gopher8051/logger"
)

// the single key commands
const (
	cmdBreakpoint = terminal.Key('k')
	cmdGoto       = terminal.Key('g')
	cmdHelp       = terminal.Key('h')
	cmdLoad       = terminal.Key('l')
	cmdStep       = terminal.Key(' ')
	cmdRun        = terminal.Key('r')
	cmdFaster     = terminal.Key('+')
	cmdSlower     = terminal.Key('-')
	cmdNextView   = terminal.Key('v')
	cmdQuit       = terminal.Key('Q')
	cmdReset      = terminal.KeyHome
	cmdClearClock = terminal.KeyEnd
)

// the view selected by each function key
var viewKeys = map[terminal.Key]views.ID{
	terminal.KeyF1: views.Main,
	terminal.KeyF2: views.LogicBoard,
	terminal.KeyF3: views.MemEditor,
	terminal.KeyF4: views.Options,
}

// command handles a single key press. returns true if the key is a request to
// step the emulation.
func (d *Debugger) command(key terminal.Key) bool {
	if id, ok := viewKeys[key]; ok {
		_ = d.Views.Change(id)
		return false
	}

	switch key {
	case terminal.KeyNone:

	case terminal.KeyInterrupt:
		// an interrupt stops a running emulation. if the emulation is
		// already stopped then the interrupt quits the debugger
		if d.Config.Mode == govern.Running {
			d.Config.Stop()
		} else {
			d.quit = true
		}

	case cmdNextView:
		d.Views.Next()

	case cmdBreakpoint:
		d.toggleBreakpoint()

	case cmdGoto:
		pc := d.eng.State().PC
		if s, ok := d.op.Prompt("Set PC", fmt.Sprintf("%04x", pc)); ok {
			if v, err := parseAddress(s); err != nil {
				logger.Logf(logger.Allow, "debugger", "set pc: %v", err)
			} else {
				d.eng.State().PC = v
			}
		}
		d.Views.Refresh()

	case cmdHelp:
		d.op.Popup("Help", help())
		d.Views.Refresh()

	case cmdLoad:
		if s, ok := d.op.Prompt("Load file", d.loader.Filename); ok && s != "" {
			if err := d.Load(loader.NewLoader(s, d.loader.Format == loader.FormatRaw)); err != nil {
				d.op.Popup("Load", err.Error())
			}
		}
		d.Views.Refresh()

	case cmdStep:
		d.Config.Stop()
		return true

	case cmdRun:
		d.Config.ToggleRun()

	case cmdFaster, '=':
		d.Config.Faster()

	case cmdSlower:
		d.Config.Slower()

	case cmdReset:
		if s, ok := d.op.Prompt("Reset? (y/n)", "n"); ok && strings.ToLower(s) == "y" {
			d.reset()
		}
		d.Views.Refresh()

	case cmdClearClock:
		d.Scheduler.ClearClocks()

	case cmdQuit:
		d.quit = true

	default:
		d.Views.HandleKey(key)
	}

	return false
}

// toggleBreakpoint clears the breakpoint if it is armed, otherwise the
// operator is asked for the breakpoint address
func (d *Debugger) toggleBreakpoint() {
	if _, ok := d.Breakpoint.Armed(); ok {
		d.Breakpoint.Clear()
		d.op.Popup("Breakpoint", "Breakpoint cleared.")
		d.Views.Refresh()
		return
	}

	pc := d.eng.State().PC
	if s, ok := d.op.Prompt("Breakpoint address", fmt.Sprintf("%04x", pc)); ok {
		if v, err := parseAddress(s); err != nil {
			logger.Logf(logger.Allow, "debugger", "breakpoint: %v", err)
		} else {
			d.Breakpoint.Arm(v)
		}
	}
	d.Views.Refresh()
}

// parseAddress parses a 16 bit hexadecimal address. a leading 0x is optional
func parseAddress(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("not a valid address (%s)", s)
	}
	return uint16(v), nil
}
