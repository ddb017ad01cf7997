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
	"os"
	"os/signal"

	"github.com/gopher8051/gopher8051/curated"
	"github.com/gopher8051/gopher8051/debugger/govern"
	"github.com/gopher8051/gopher8051/debugger/halt"
	"github.com/gopher8051/gopher8051/debugger/scheduler"
	"github.com/gopher8051/gopher8051/debugger/terminal"
	"github.com/gopher8051/gopher8051/debugger/views"
	"github.com/gopher8051/gopher8051/display"
	"github.com/gopher8051/gopher8051/environment"
	"github.com/gopher8051/gopher8051/hardware/engine"
	"github.com/gopher8051/gopher8051/hardware/ports"
	"github.com/gopher8051/gopher8051/loader"
	"github.com/gopher8051/gopher8051/logger"
	"github.com/gopher8051/gopher8051/notifications"
	"github.com/gopher8051/gopher8051/performance/limiter"
	"github.com/gopher8051/gopher8051/rewind"
)

// Debugger is the frontend for the emulation.
type Debugger struct {
	op  terminal.Operator
	eng engine.Engine
	env *environment.Environment

	// notices raised during a frame. shown to the operator at the end of the
	// frame
	notices notifications.Queue

	// state of the frame loop
	state govern.State

	Config     govern.RunConfig
	Breakpoint halt.Breakpoint
	History    *rewind.Ring
	Ports      *ports.Ports
	Scheduler  *scheduler.Scheduler
	Views      *views.Selector
	Prefs      *Preferences

	// the logic board view is also a scheduler observer
	logicBoard *display.LogicBoard

	// the most recently loaded program
	loader loader.Loader

	// set by the quit command
	quit bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The prefsFile argument is the location of the preferences file. An
// empty string means the default location in the gopher8051 config
// directory.
func NewDebugger(op terminal.Operator, eng engine.Engine, clk limiter.Clock, prefsFile string) (*Debugger, error) {
	d := &Debugger{
		op:     op,
		eng:    eng,
		Config: govern.NewRunConfig(),
	}

	d.env = environment.NewEnvironment(environment.MainEmulation, d, &d.notices)
	d.Ports = ports.NewPorts(eng.State(), d.env.Random)

	var err error
	d.Prefs, err = newPreferences(d, prefsFile)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	// the size of the history is fixed for the lifetime of the debugger
	d.History = rewind.NewRing(d.Prefs.HistoryLines.Get().(int))

	d.Scheduler = scheduler.NewScheduler(eng, clk, &d.Config, d.History, &d.Breakpoint)
	d.Scheduler.SetClockHz(d.Prefs.Clock.Get().(int))

	ctx := &display.Context{
		State:      eng.State(),
		Config:     &d.Config,
		History:    d.History,
		Breakpoint: &d.Breakpoint,
		Ports:      d.Ports,
		Scheduler:  d.Scheduler,
	}

	d.logicBoard = display.NewLogicBoard(op, ctx)
	d.Scheduler.AddObserver(d.logicBoard)

	d.Views = views.NewSelector(
		display.NewMain(op, ctx),
		d.logicBoard,
		display.NewMemEditor(op, ctx),
		display.NewOptions(op, ctx, d.options()),
	)

	d.Ports.AttachStimulus(&stimulus{op: op})
	d.Ports.SetLogicBoard(func() bool {
		return d.Views.Is(views.LogicBoard)
	})

	eng.SetHooks(engine.Hooks{
		Exception: d.exception,
		SFRRead:   d.Ports.Read,
	})

	d.state = govern.Initialising

	return d, nil
}

// Instructions implements the random.Clock interface.
func (d *Debugger) Instructions() uint64 {
	if d.Scheduler == nil {
		return 0
	}
	return d.Scheduler.Instructions()
}

// Normalise the random number generator so that random port values are the
// same on every run.
func (d *Debugger) Normalise() {
	d.env.Normalise()
}

// State returns the state of the frame loop.
func (d *Debugger) State() govern.State {
	return d.state
}

// Load the program into code memory and reset the machine.
func (d *Debugger) Load(ld loader.Loader) error {
	if _, err := ld.Attach(d.eng.State().Code[:]); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	d.loader = ld
	d.reset()
	return d.env.Notify.Notify(notifications.NotifyLoad, ld.ShortName())
}

// reset the machine and all the emulation state held by the debugger. the
// breakpoint survives the reset
func (d *Debugger) reset() {
	d.eng.Reset(true)
	d.Scheduler.Reset()
	d.Ports.Reset()
	logger.Log(logger.Allow, "debugger", "machine reset")
}

// exception is the engine's exception hook.
func (d *Debugger) exception(cause engine.Cause) {
	if cause == engine.CauseBreakpoint {
		_ = d.env.Notify.Notify(notifications.NotifyBreakpoint, fmt.Sprintf("%s at 0x%04x", cause, d.eng.State().PC))
	} else {
		if !d.Prefs.exceptionEnabled(cause) {
			logger.Logf(logger.Allow, "debugger", "ignored: %s", cause)
			return
		}
		_ = d.env.Notify.Notify(notifications.NotifyException, cause.String())
	}

	d.Config.Stop()
	d.Scheduler.Halt()
}

// Start the frame loop. Returns when the operator quits.
func (d *Debugger) Start() error {
	if err := d.op.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer d.op.CleanUp()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	// a signal is taken by whichever of the loop or the operator sees it
	// first. either way it becomes a single KeyInterrupt
	if op, ok := d.op.(terminal.Interruptible); ok {
		op.SetInterrupt(intChan)
		defer op.SetInterrupt(nil)
	}

	d.state = govern.Active
	defer func() {
		d.state = govern.Ending
	}()

	d.Views.Refresh()
	d.showNotices()

	key := terminal.KeyNone
	for {
		select {
		case <-intChan:
			key = terminal.KeyInterrupt
		default:
		}

		if d.op.Resized() {
			d.Views.Refresh()
		}

		step := d.command(key)
		if d.quit {
			return nil
		}

		d.Scheduler.Frame(step)
		d.showNotices()
		d.Views.Update()

		var err error
		key, err = d.op.ReadKey(d.Config.InputDelay())
		if err != nil {
			if curated.Has(err, terminal.UserQuit) {
				logger.Log(logger.Allow, "debugger", err)
				return nil
			}
			if curated.IsAny(err) {
				return err
			}
			return curated.Errorf("debugger: %v", err)
		}
	}
}

// showNotices shows any pending notices in a popup. the active view is
// rebuilt if any notices were shown
func (d *Debugger) showNotices() {
	if d.notices.Len() == 0 {
		return
	}
	d.notices.Drain(func(p notifications.Pending) {
		logger.Log(logger.Allow, "debugger", p)
		d.op.Popup(p.Notice.Title(), p.Detail)
	})
	d.Views.Refresh()
}
