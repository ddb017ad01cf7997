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

package scheduler

import (
	"github.com/gopher8051/gopher8051/debugger/govern"
	"github.com/gopher8051/gopher8051/debugger/halt"
	"github.com/gopher8051/gopher8051/hardware/clocks"
	"github.com/gopher8051/gopher8051/hardware/engine"
	"github.com/gopher8051/gopher8051/logger"
	"github.com/gopher8051/gopher8051/performance/limiter"
	"github.com/gopher8051/gopher8051/rewind"
)

// Observer implementations are notified after every machine cycle.
type Observer interface {
	// Tick is called after every engine tick. The retired argument is true
	// if the tick retired an instruction.
	Tick(retired bool)
}

// Result summarises the execution of a single frame.
type Result struct {
	// number of machine cycles executed
	Cycles int

	// number of instructions retired
	Retired int

	// the frame was ended early by a call to Halt()
	Halted bool

	// number of one millisecond sleeps at the end of the frame
	Slept int
}

// Scheduler drives the execution engine.
type Scheduler struct {
	eng        engine.Engine
	clk        limiter.Clock
	config     *govern.RunConfig
	history    *rewind.Ring
	breakpoint *halt.Breakpoint

	// oscillator frequency
	hz int

	// oscillator clocks and retired instructions since the last reset. the
	// clock counter can also be cleared independently by the operator
	clocks       uint64
	instructions uint64

	// set by Halt() and checked after every unit of execution
	halted bool

	observers []Observer
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type. The run configuration, history and breakpoint are owned by the caller
// and can be changed between frames.
func NewScheduler(eng engine.Engine, clk limiter.Clock, config *govern.RunConfig,
	history *rewind.Ring, breakpoint *halt.Breakpoint) *Scheduler {
	return &Scheduler{
		eng:        eng,
		clk:        clk,
		config:     config,
		history:    history,
		breakpoint: breakpoint,
		hz:         clocks.DefaultHz,
	}
}

// AddObserver adds an observer to the list of observers.
func (s *Scheduler) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// SetClockHz changes the oscillator frequency. Values of zero or less are
// ignored.
func (s *Scheduler) SetClockHz(hz int) {
	if hz <= 0 {
		return
	}
	if hz != s.hz {
		logger.Logf(logger.Allow, "scheduler", "clock set to %dHz", hz)
	}
	s.hz = hz
}

// ClockHz returns the oscillator frequency.
func (s *Scheduler) ClockHz() int {
	return s.hz
}

// Clocks returns the number of oscillator clocks since the last reset or
// call to ClearClocks().
func (s *Scheduler) Clocks() uint64 {
	return s.clocks
}

// Instructions returns the number of instructions retired since the last
// reset.
func (s *Scheduler) Instructions() uint64 {
	return s.instructions
}

// ClearClocks sets the clock counter to zero.
func (s *Scheduler) ClearClocks() {
	s.clocks = 0
}

// Reset the counters and history. The engine is not reset.
func (s *Scheduler) Reset() {
	s.clocks = 0
	s.instructions = 0
	s.history.Reset()
	logger.Log(logger.Allow, "scheduler", "reset")
}

// Halt ends the current frame once the unit of execution in progress has
// completed. It has no effect outside of a frame.
func (s *Scheduler) Halt() {
	s.halted = true
}

// Frame runs the emulation for a single operator frame. The step argument
// indicates that the operator has asked for a single instruction.
func (s *Scheduler) Frame(step bool) Result {
	var r Result

	if !step && s.config.Mode != govern.Running {
		return r
	}

	s.halted = false

	budget := govern.Budget{Cycles: 1}
	if !step {
		budget = s.config.Budget(s.hz)
	}
	wholeInstruction := step || s.config.StepInstruction

	deadline := s.clk.Ticks() + budget.Window
	remaining := budget.Cycles

	for {
		for {
			remaining--
			if s.tick(&r) || !wholeInstruction {
				break // for loop
			}
		}

		if s.halted || remaining <= 0 || limiter.Reached(s.clk.Ticks(), deadline) {
			break // for loop
		}
	}

	r.Halted = s.halted

	for !s.halted && !limiter.Reached(s.clk.Ticks(), deadline) {
		s.clk.Sleep(1)
		r.Slept++
	}

	return r
}

// tick the engine once. returns true if an instruction was retired.
func (s *Scheduler) tick(r *Result) bool {
	state := s.eng.State()
	pc := state.PC

	s.clocks += clocks.PerMachineCycle
	retired := s.eng.Tick()
	r.Cycles++

	if retired {
		s.instructions++
		r.Retired++
		s.history.Record(pc, state)
	}

	// only an instruction that lands on the breakpoint triggers it. cycles
	// spent executing the instruction at the breakpoint address do not
	hit := s.breakpoint.Check(state.PC)
	if retired && hit {
		s.eng.Exception(engine.CauseBreakpoint)
	}

	for _, o := range s.observers {
		o.Tick(retired)
	}

	return retired
}
