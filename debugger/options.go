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

	"github.com/gopher8051/gopher8051/display"
	"github.com/gopher8051/gopher8051/hardware/engine"
	"github.com/gopher8051/gopher8051/hardware/ports"
)

// number of ports.Fidelity values
const numFidelity = ports.OutputRandom + 1

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// options returns the settings shown in the options view. every change is
// saved to the preferences file
func (d *Debugger) options() []display.Option {
	save := func(err error) error {
		if err != nil {
			return err
		}
		return d.Prefs.Save()
	}

	opts := []display.Option{
		{
			Label: "port fidelity",
			Value: func() string {
				return d.Ports.Fidelity().Description()
			},
			Change: func(forward bool) error {
				f := d.Ports.Fidelity()
				if forward {
					f = (f + 1) % numFidelity
				} else {
					f = (f + numFidelity - 1) % numFidelity
				}
				return save(d.Prefs.Fidelity.Set(f.String()))
			},
		},
		{
			Label: "step instruction",
			Value: func() string {
				return onOff(d.Config.StepInstruction)
			},
			Change: func(_ bool) error {
				return save(d.Prefs.StepInstruction.Set(!d.Config.StepInstruction))
			},
		},
		{
			Label: "speed",
			Value: func() string {
				return d.Config.Speed.String()
			},
			Change: func(forward bool) error {
				if forward {
					d.Config.Faster()
				} else {
					d.Config.Slower()
				}
				return save(nil)
			},
		},
		{
			Label: "clock",
			Value: func() string {
				return fmt.Sprintf("%dHz", d.Scheduler.ClockHz())
			},
			Change: func(_ bool) error {
				s, ok := d.op.Prompt("Clock (Hz)", strconv.Itoa(d.Scheduler.ClockHz()))
				d.Views.Refresh()
				if !ok {
					return nil
				}
				return save(d.Prefs.Clock.Set(s))
			},
		},
		{
			Label: "history lines",
			Value: func() string {
				return fmt.Sprintf("%d (%d on restart)", d.History.Capacity(), d.Prefs.HistoryLines.Get())
			},
			Change: func(forward bool) error {
				n := d.Prefs.HistoryLines.Get().(int)
				if forward {
					n++
				} else {
					n--
				}
				return save(d.Prefs.HistoryLines.Set(n))
			},
		},
	}

	for _, c := range engine.Causes {
		e := d.Prefs.Exceptions[c]
		opts = append(opts, display.Option{
			Label: fmt.Sprintf("exception %s", c.Key()),
			Value: func() string {
				return onOff(e.Get().(bool))
			},
			Change: func(_ bool) error {
				return save(e.Set(!e.Get().(bool)))
			},
		})
	}

	return opts
}
