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

package script_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopher8051/gopher8051/curated"
	"github.com/gopher8051/gopher8051/debugger/govern"
	"github.com/gopher8051/gopher8051/debugger/halt"
	"github.com/gopher8051/gopher8051/debugger/scheduler"
	"github.com/gopher8051/gopher8051/debugger/script"
	"github.com/gopher8051/gopher8051/hardware/engine"
	"github.com/gopher8051/gopher8051/hardware/engine/freerun"
	"github.com/gopher8051/gopher8051/hardware/ports"
	"github.com/gopher8051/gopher8051/notifications"
	"github.com/gopher8051/gopher8051/performance/limiter"
	"github.com/gopher8051/gopher8051/rewind"
	"github.com/gopher8051/gopher8051/test"
)

type zeroRandom struct{}

func (zeroRandom) Uint8(_ uint8) uint8 {
	return 0
}

func newScript(t *testing.T, code ...uint8) (*script.Script, script.Machine, *test.CompareWriter) {
	t.Helper()

	eng := freerun.NewFreerun()
	copy(eng.State().Code[:], code)

	cfg := govern.NewRunConfig()

	m := script.Machine{
		Engine:     eng,
		Config:     &cfg,
		Breakpoint: &halt.Breakpoint{},
		History:    rewind.NewRing(rewind.DefaultCapacity),
		Ports:      ports.NewPorts(eng.State(), zeroRandom{}),
		Notices:    &notifications.Queue{},
	}
	m.Scheduler = scheduler.NewScheduler(eng, limiter.NewMonotonic(), m.Config, m.History, m.Breakpoint)
	m.Reset = func() {
		eng.Reset(true)
		m.Scheduler.Reset()
		m.Ports.Reset()
	}

	eng.SetHooks(engine.Hooks{
		Exception: func(cause engine.Cause) {
			notice := notifications.NotifyException
			if cause == engine.CauseBreakpoint {
				notice = notifications.NotifyBreakpoint
			}
			_ = m.Notices.Notify(notice, cause.String())
			m.Config.Stop()
			m.Scheduler.Halt()
		},
		SFRRead: m.Ports.Read,
	})

	out := &test.CompareWriter{}
	scr := script.NewScript(m, out)
	t.Cleanup(scr.Close)

	m.Ports.AttachStimulus(scr)

	return scr, m, out
}

func TestStep(t *testing.T) {
	scr, m, _ := newScript(t)

	test.ExpectSuccess(t, scr.RunString(`assert(step() == 1)`))
	test.ExpectSuccess(t, scr.RunString(`assert(step(3) == 4)`))
	test.ExpectEquality(t, m.Scheduler.Instructions(), 4)
	test.ExpectEquality(t, m.Config.Mode, govern.Stepping)
}

func TestRun(t *testing.T) {
	scr, m, out := newScript(t)

	test.ExpectSuccess(t, scr.RunString(`
		local n, halted = run(10)
		assert(n == 10)
		assert(not halted)
	`))
	test.ExpectEquality(t, m.Config.Mode, govern.Stepping)
	test.ExpectEquality(t, out.String(), "")
}

func TestRunToBreakpoint(t *testing.T) {
	scr, m, out := newScript(t)

	test.ExpectSuccess(t, scr.RunString(`
		assert(breakpoint() == nil)
		assert(breakpoint(5) == 5)
		local n, halted = run(100)
		assert(halted)
		assert(n == 5)
		assert(pc() == 5)
	`))
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "* Breakpoint: "))

	// the breakpoint survives the run until it is cleared
	_, ok := m.Breakpoint.Armed()
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, scr.RunString(`clear_breakpoint()`))
	_, ok = m.Breakpoint.Armed()
	test.ExpectFailure(t, ok)
}

func TestException(t *testing.T) {
	scr, _, out := newScript(t, 0x00, 0xa5, 0x00)

	test.ExpectSuccess(t, scr.RunString(`
		local n, halted = run(100)
		assert(halted)
		assert(pc() == 2)
	`))
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "* Exception: "))
}

func TestPortRead(t *testing.T) {
	// MOV A,P1 twice
	scr, m, _ := newScript(t, 0xe5, 0x90, 0xe5, 0x90)

	test.ExpectSuccess(t, scr.RunString(`
		function port_read(port, stored)
			assert(port == 1)
			return 0x3c
		end
		step()
		assert(sfr(0xe0) == 0x3c)
		assert(latch(1) == 0x3c)

		-- output low fidelity masks the driven value with the output latch
		fidelity("low")
		sfr(0x90, 0x0f)
		step()
		assert(sfr(0xe0) == 0x0c)
	`))
	test.ExpectEquality(t, m.Ports.Fidelity(), ports.OutputLow)
}

func TestPortReadNoValue(t *testing.T) {
	scr, m, _ := newScript(t, 0xe5, 0x90)

	// a nil return means no value is driven and the output latch is read
	test.ExpectSuccess(t, scr.RunString(`
		function port_read(port, stored)
			return nil
		end
		step()
	`))
	test.ExpectEquality(t, m.Engine.State().ReadSFR(engine.ACC), 0xff)
}

func TestPortReadInvalid(t *testing.T) {
	for _, v := range []string{"300", "-1", "3.7", "0/0"} {
		scr, m, _ := newScript(t, 0xe5, 0x90)

		// values that are not bytes are not driven and the output latch is
		// read as if no value was given
		test.ExpectSuccess(t, scr.RunString(`
			function port_read(port, stored)
				return `+v+`
			end
			step()
		`), v)
		test.ExpectEquality(t, m.Engine.State().ReadSFR(engine.ACC), 0xff, v)
		test.ExpectEquality(t, m.Ports.Latch(ports.P1), 0x00, v)
	}
}

func TestMemory(t *testing.T) {
	scr, m, _ := newScript(t, 0x12)

	test.ExpectSuccess(t, scr.RunString(`
		ram(0x10, 0x55)
		ram(0x90, 0xaa)
		assert(ram(0x10) == 0x55)
		assert(code(0) == 0x12)
		assert(pc(0x100) == 0x100)
	`))

	state := m.Engine.State()
	test.ExpectEquality(t, state.Lower[0x10], 0x55)
	test.ExpectEquality(t, state.Upper[0x10], 0xaa)
	test.ExpectEquality(t, state.PC, 0x100)
}

func TestHistory(t *testing.T) {
	scr, _, _ := newScript(t)

	test.ExpectSuccess(t, scr.RunString(`
		assert(history(0) == nil)
		step(2)
		assert(history(0) == 1)
		assert(history(1) == 0)
		assert(history(2) == nil)
		assert(instructions() == 2)
		assert(clocks() == 24)
	`))
}

func TestReset(t *testing.T) {
	scr, _, _ := newScript(t)

	test.ExpectSuccess(t, scr.RunString(`
		step(3)
		reset()
		assert(pc() == 0)
		assert(instructions() == 0)
		assert(history(0) == nil)
	`))
}

func TestSpeed(t *testing.T) {
	scr, m, _ := newScript(t)

	test.ExpectSuccess(t, scr.RunString(`assert(speed(99) == 7)`))
	test.ExpectSuccess(t, scr.RunString(`assert(speed(-1) == 0)`))
	test.ExpectEquality(t, m.Config.Speed, govern.SpeedFastest)
}

func TestPrint(t *testing.T) {
	scr, _, out := newScript(t)

	test.ExpectSuccess(t, scr.RunString(`print("pc", pc())`))
	test.ExpectEquality(t, out.String(), "pc\t0\n")
}

func TestErrors(t *testing.T) {
	scr, _, _ := newScript(t)

	for _, src := range []string{
		`ram(0x100)`,
		`sfr(0x10)`,
		`latch(4)`,
		`fidelity("sideways")`,
		`breakpoint(0x10000)`,
		`assert(false)`,
		`this is not lua`,
	} {
		err := scr.RunString(src)
		test.ExpectFailure(t, err, src)
		test.ExpectSuccess(t, curated.Is(err, script.ScriptError), src)
	}
}

func TestRunFile(t *testing.T) {
	scr, m, _ := newScript(t)

	fn := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("step(2)\n"), 0644))

	test.ExpectSuccess(t, scr.RunFile(fn))
	test.ExpectEquality(t, m.Engine.State().PC, 2)

	test.ExpectFailure(t, scr.RunFile(filepath.Join(t.TempDir(), "missing.lua")))
}

func TestLongOutput(t *testing.T) {
	_, m, _ := newScript(t)

	// a second script on the same machine writing to a small ring. only the
	// tail of the output is kept
	ring, err := test.NewRingWriter(8)
	test.DemandSuccess(t, err)
	scr := script.NewScript(m, ring)
	t.Cleanup(scr.Close)

	test.ExpectSuccess(t, scr.RunString(`for i = 1, 1000 do print(i) end`))
	test.ExpectEquality(t, ring.String(), "99\n1000\n")

	ring.Reset()
	test.ExpectSuccess(t, scr.RunString(`print("pc", pc())`))
	test.ExpectEquality(t, ring.String(), "pc\t0\n")
}
