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

package scheduler_test

import (
	"math"
	"testing"

	"github.com/gopher8051/gopher8051/debugger/govern"
	"github.com/gopher8051/gopher8051/debugger/halt"
	"github.com/gopher8051/gopher8051/debugger/scheduler"
	"github.com/gopher8051/gopher8051/hardware/engine"
	"github.com/gopher8051/gopher8051/rewind"
	"github.com/gopher8051/gopher8051/test"
)

// mockEngine retires an instruction every cpi ticks. the PC advances by one
// for every retired instruction
type mockEngine struct {
	state       engine.State
	cpi         int
	cycle       int
	exceptions  []engine.Cause
	onException func(engine.Cause)
}

func (e *mockEngine) Reset(hard bool) {
	e.state.PC = 0
	e.cycle = 0
}

func (e *mockEngine) Tick() bool {
	e.cycle++
	if e.cycle < e.cpi {
		return false
	}
	e.cycle = 0
	e.state.PC++
	return true
}

func (e *mockEngine) Exception(cause engine.Cause) {
	e.exceptions = append(e.exceptions, cause)
	if e.onException != nil {
		e.onException(cause)
	}
}

func (e *mockEngine) State() *engine.State {
	return &e.state
}

func (e *mockEngine) SetHooks(_ engine.Hooks) {
}

// mockClock advances by step milliseconds every time it is read. Sleep()
// advances the clock by the requested amount
type mockClock struct {
	now  uint32
	step uint32
}

func (c *mockClock) Ticks() uint32 {
	n := c.now
	c.now += c.step
	return n
}

func (c *mockClock) Sleep(ms uint32) {
	c.now += ms
}

type observer struct {
	ticks   int
	retired int
}

func (o *observer) Tick(retired bool) {
	o.ticks++
	if retired {
		o.retired++
	}
}

type fixture struct {
	eng     *mockEngine
	clk     *mockClock
	config  govern.RunConfig
	history *rewind.Ring
	bp      halt.Breakpoint
	sch     *scheduler.Scheduler
}

func newFixture(cpi int) *fixture {
	f := &fixture{
		eng:     &mockEngine{cpi: cpi},
		clk:     &mockClock{},
		config:  govern.NewRunConfig(),
		history: rewind.NewRing(rewind.DefaultCapacity),
	}
	f.sch = scheduler.NewScheduler(f.eng, f.clk, &f.config, f.history, &f.bp)
	return f
}

func TestStoppedFrame(t *testing.T) {
	f := newFixture(1)
	r := f.sch.Frame(false)
	test.ExpectEquality(t, r, scheduler.Result{})
	test.ExpectEquality(t, f.sch.Clocks(), uint64(0))
}

func TestStep(t *testing.T) {
	f := newFixture(3)

	// a step is a full instruction regardless of the step instruction
	// setting and regardless of speed
	for _, s := range []govern.Speed{0, 3, 7} {
		f.config.Speed = s
		r := f.sch.Frame(true)
		test.ExpectEquality(t, r.Cycles, 3, s)
		test.ExpectEquality(t, r.Retired, 1, s)
		test.ExpectEquality(t, r.Slept, 0, s)
	}

	test.ExpectEquality(t, f.sch.Instructions(), uint64(3))
	test.ExpectEquality(t, f.sch.Clocks(), uint64(3*3*12))
	test.ExpectEquality(t, f.eng.state.PC, 3)
}

func TestSlowSpeeds(t *testing.T) {
	f := newFixture(2)
	f.config.Mode = govern.Running

	for s := govern.Speed(3); s <= govern.SpeedSlowest; s++ {
		f.config.Speed = s

		// one machine cycle per frame
		f.config.StepInstruction = false
		r := f.sch.Frame(false)
		test.ExpectEquality(t, r.Cycles, 1, s)

		// one instruction per frame
		f.config.StepInstruction = true
		r = f.sch.Frame(false)
		test.ExpectEquality(t, r.Retired, 1, s)
		test.ExpectEquality(t, r.Slept, 0, s)
	}
}

func TestRealTime(t *testing.T) {
	f := newFixture(1)
	f.config.Mode = govern.Running
	f.config.Speed = 0
	f.sch.SetClockHz(1200000)

	// the clock doesn't move during execution so the frame is limited by the
	// cycle budget. the remainder of the ten millisecond window is slept
	r := f.sch.Frame(false)
	test.ExpectEquality(t, r.Cycles, 1000)
	test.ExpectEquality(t, r.Retired, 1000)
	test.ExpectEquality(t, r.Slept, 10)
	test.ExpectEquality(t, f.sch.Instructions(), uint64(1000))

	f.config.Speed = 2
	r = f.sch.Frame(false)
	test.ExpectEquality(t, r.Cycles, 100)
	test.ExpectEquality(t, r.Slept, 1)
}

func TestDeadline(t *testing.T) {
	f := newFixture(1)
	f.config.Mode = govern.Running
	f.config.Speed = 1

	// every reading of the clock advances it by one millisecond. the frame
	// is limited by the window rather than the budget
	f.clk.step = 1
	r := f.sch.Frame(false)
	test.ExpectEquality(t, r.Cycles, 10)
	test.ExpectEquality(t, r.Slept, 0)
}

func TestClockWrap(t *testing.T) {
	f := newFixture(1)
	f.config.Mode = govern.Running
	f.config.Speed = 0
	f.sch.SetClockHz(120000)

	f.clk.now = math.MaxUint32 - 3
	r := f.sch.Frame(false)
	test.ExpectEquality(t, r.Cycles, 100)
	test.ExpectEquality(t, r.Slept, 10)
	test.ExpectEquality(t, f.clk.now, uint32(6))
}

func TestHistory(t *testing.T) {
	f := newFixture(2)
	f.config.Mode = govern.Running
	f.config.Speed = 0
	f.sch.SetClockHz(1200 * 50)

	r := f.sch.Frame(false)
	test.ExpectEquality(t, r.Retired, 25)
	test.ExpectEquality(t, f.history.Total(), uint64(25))
	test.ExpectEquality(t, f.history.Len(), rewind.DefaultCapacity)

	// history holds the PC from before the instruction
	e, ok := f.history.Recent(0)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.PC, 24)
	test.ExpectEquality(t, f.eng.state.PC, 25)
}

func TestBreakpoint(t *testing.T) {
	f := newFixture(2)
	f.config.Mode = govern.Running
	f.config.Speed = 0
	f.sch.SetClockHz(12000)
	f.bp.Arm(2)

	// ten cycles is five instructions. the instruction at address 2 takes
	// two cycles but only the landing on the address triggers the exception
	r := f.sch.Frame(false)
	test.ExpectEquality(t, r.Retired, 5)
	test.DemandEquality(t, len(f.eng.exceptions), 1)
	test.ExpectEquality(t, f.eng.exceptions[0], engine.CauseBreakpoint)

	// unarmed breakpoint never triggers
	f.bp.Clear()
	f.eng.Reset(true)
	f.sch.Frame(false)
	test.ExpectEquality(t, len(f.eng.exceptions), 1)
}

func TestHalt(t *testing.T) {
	f := newFixture(1)
	f.config.Mode = govern.Running
	f.config.Speed = 0
	f.bp.Arm(3)

	f.eng.onException = func(_ engine.Cause) {
		f.config.Stop()
		f.sch.Halt()
	}

	r := f.sch.Frame(false)
	test.ExpectSuccess(t, r.Halted)
	test.ExpectEquality(t, r.Retired, 3)
	test.ExpectEquality(t, r.Slept, 0)
	test.ExpectEquality(t, f.config.Mode, govern.Stepping)

	// stepping mode so next frame does nothing
	r = f.sch.Frame(false)
	test.ExpectEquality(t, r.Cycles, 0)
	test.ExpectFailure(t, r.Halted)
}

func TestObserver(t *testing.T) {
	f := newFixture(4)
	o := &observer{}
	f.sch.AddObserver(o)

	f.sch.Frame(true)
	f.sch.Frame(true)
	test.ExpectEquality(t, o.ticks, 8)
	test.ExpectEquality(t, o.retired, 2)
}

func TestCounters(t *testing.T) {
	f := newFixture(1)
	f.sch.Frame(true)
	f.sch.Frame(true)
	test.ExpectEquality(t, f.sch.Clocks(), uint64(24))

	f.sch.ClearClocks()
	test.ExpectEquality(t, f.sch.Clocks(), uint64(0))
	test.ExpectEquality(t, f.sch.Instructions(), uint64(2))

	f.sch.Reset()
	test.ExpectEquality(t, f.sch.Instructions(), uint64(0))
	test.ExpectEquality(t, f.history.Len(), 0)

	// frequencies of zero or less are ignored
	f.sch.SetClockHz(0)
	test.ExpectEquality(t, f.sch.ClockHz(), 12000000)
}
