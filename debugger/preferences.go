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

	"github.com/gopher8051/gopher8051/curated"
	"github.com/gopher8051/gopher8051/debugger/govern"
	"github.com/gopher8051/gopher8051/hardware/clocks"
	"github.com/gopher8051/gopher8051/hardware/engine"
	"github.com/gopher8051/gopher8051/hardware/ports"
	"github.com/gopher8051/gopher8051/paths"
	"github.com/gopher8051/gopher8051/prefs"
	"github.com/gopher8051/gopher8051/rewind"
)

// DefaultPrefsFile is the name of the preferences file in the gopher8051
// config directory.
const DefaultPrefsFile = "preferences"

// Preferences defines and collates all the preference values used by the
// debugger.
type Preferences struct {
	dbg *Debugger
	dsk *prefs.Disk

	// oscillator frequency in Hz
	Clock prefs.Int

	// initial speed
	Speed *prefs.Generic

	// a single unit of execution is a whole instruction
	StepInstruction prefs.Bool

	// port fidelity model
	Fidelity *prefs.Generic

	// number of entries in the history. only read when the debugger is
	// created
	HistoryLines prefs.Int

	// one entry for each of engine.Causes. a disabled exception is logged and
	// otherwise ignored
	Exceptions map[engine.Cause]*prefs.Bool
}

func (p *Preferences) String() string {
	return fmt.Sprintf("clock=%s speed=%s si=%s fidelity=%s history=%s",
		p.Clock.String(), p.Speed.String(), p.StepInstruction.String(),
		p.Fidelity.String(), p.HistoryLines.String())
}

// newPreferences is the preferred method of initialisation for the
// Preferences type.
func newPreferences(dbg *Debugger, path string) (*Preferences, error) {
	p := &Preferences{
		dbg:        dbg,
		Exceptions: make(map[engine.Cause]*prefs.Bool),
	}

	// default values
	_ = p.Clock.Set(clocks.DefaultHz)
	_ = p.HistoryLines.Set(rewind.DefaultCapacity)
	for _, c := range engine.Causes {
		p.Exceptions[c] = &prefs.Bool{}
		_ = p.Exceptions[c].Set(true)
	}

	p.Clock.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf("prefs: clock frequency must be positive (%d)", v)
		}
		return nil
	})
	p.Clock.SetHookPost(func(v prefs.Value) error {
		if p.dbg.Scheduler != nil {
			p.dbg.Scheduler.SetClockHz(v.(int))
		}
		return nil
	})

	p.HistoryLines.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf("prefs: history must have at least one line (%d)", v)
		}
		return nil
	})

	p.StepInstruction.SetHookPost(func(v prefs.Value) error {
		p.dbg.Config.StepInstruction = v.(bool)
		return nil
	})

	p.Speed = prefs.NewGeneric(
		func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil {
				return curated.Errorf("prefs: speed: %v", err)
			}
			p.dbg.Config.Speed = govern.ClampSpeed(n)
			return nil
		},
		func() string {
			return strconv.Itoa(int(p.dbg.Config.Speed))
		},
	)

	p.Fidelity = prefs.NewGeneric(
		func(s string) error {
			f, err := ports.ParseFidelity(s)
			if err != nil {
				return err
			}
			p.dbg.Ports.SetFidelity(f)
			return nil
		},
		func() string {
			return p.dbg.Ports.Fidelity().String()
		},
	)

	if path == "" {
		var err error
		path, err = paths.ResourcePath("", DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("emulation.clock", &p.Clock); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("emulation.speed", p.Speed); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("emulation.stepInstruction", &p.StepInstruction); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("ports.fidelity", p.Fidelity); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("history.lines", &p.HistoryLines); err != nil {
		return nil, err
	}
	for _, c := range engine.Causes {
		if err := p.dsk.Add(fmt.Sprintf("exceptions.%s", c.Key()), p.Exceptions[c]); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// Save the current preference values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// exceptionEnabled returns false if the operator has disabled the exception
func (p *Preferences) exceptionEnabled(cause engine.Cause) bool {
	e, ok := p.Exceptions[cause]
	if !ok {
		return true
	}
	return e.Get().(bool)
}
