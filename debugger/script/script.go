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

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/gopher8051/gopher8051/curated"
	"github.com/gopher8051/gopher8051/debugger/govern"
	"github.com/gopher8051/gopher8051/debugger/halt"
	"github.com/gopher8051/gopher8051/debugger/scheduler"
	"github.com/gopher8051/gopher8051/hardware/engine"
	"github.com/gopher8051/gopher8051/hardware/ports"
	"github.com/gopher8051/gopher8051/logger"
	"github.com/gopher8051/gopher8051/notifications"
	"github.com/gopher8051/gopher8051/rewind"
	lua "github.com/yuin/gopher-lua"
)

// ScriptError is the pattern for all errors returned by the package.
const ScriptError = "script: %v"

// DefaultFrames is the number of frames executed by run() if no number is
// given.
const DefaultFrames = 10000

// the name of the optional port stimulus function
const portRead = "port_read"

// Machine is the emulation as seen by a script.
type Machine struct {
	Engine     engine.Engine
	Config     *govern.RunConfig
	Scheduler  *scheduler.Scheduler
	Breakpoint *halt.Breakpoint
	History    *rewind.Ring
	Ports      *ports.Ports

	// notices raised by the emulation are drained and printed to the output
	// after every frame
	Notices *notifications.Queue

	// hard reset of the machine
	Reset func()
}

// Script is a Lua interpreter bound to a Machine.
type Script struct {
	m      Machine
	output io.Writer
	ls     *lua.LState
}

// NewScript is the preferred method of initialisation for the Script type.
// The Close() function should be called when the script is no longer
// required.
func NewScript(m Machine, output io.Writer) *Script {
	scr := &Script{
		m:      m,
		output: output,
		ls:     lua.NewState(),
	}

	funcs := map[string]lua.LGFunction{
		"print":            scr.print,
		"step":             scr.step,
		"run":              scr.run,
		"pc":               scr.pc,
		"sfr":              scr.sfr,
		"ram":              scr.ram,
		"code":             scr.code,
		"latch":            scr.latch,
		"breakpoint":       scr.breakpoint,
		"clear_breakpoint": scr.clearBreakpoint,
		"speed":            scr.speed,
		"fidelity":         scr.fidelity,
		"history":          scr.history,
		"instructions":     scr.instructions,
		"clocks":           scr.clocks,
		"reset":            scr.reset,
	}
	for name, f := range funcs {
		scr.ls.SetGlobal(name, scr.ls.NewFunction(f))
	}

	return scr
}

// Close the Lua interpreter.
func (scr *Script) Close() {
	scr.ls.Close()
}

// RunFile runs the Lua script in the named file.
func (scr *Script) RunFile(filename string) error {
	logger.Logf(logger.Allow, "script", "running %s", filename)
	if err := scr.ls.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunString runs the Lua source.
func (scr *Script) RunString(source string) error {
	if err := scr.ls.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// Drive implements the ports.Stimulus interface by calling the port_read
// function of the script, if it has one.
func (scr *Script) Drive(port ports.Port, stored uint8) (uint8, bool) {
	fn, ok := scr.ls.GetGlobal(portRead).(*lua.LFunction)
	if !ok {
		return 0, false
	}

	err := scr.ls.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, lua.LNumber(port), lua.LNumber(stored))
	if err != nil {
		logger.Logf(logger.Allow, "script", "%s: %v", portRead, err)
		return 0, false
	}

	ret := scr.ls.Get(-1)
	scr.ls.Pop(1)

	n, ok := ret.(lua.LNumber)
	if !ok {
		return 0, false
	}

	// only whole numbers that fit in a byte are driven onto the port
	if n < 0 || n > 0xff || n != lua.LNumber(int(n)) {
		logger.Logf(logger.Allow, "script", "%s: %s port read: not a valid byte (%v)", portRead, port, n)
		return 0, false
	}

	return uint8(n), true
}

// frame runs a single scheduler frame and prints any notices raised during
// it.
func (scr *Script) frame(step bool) scheduler.Result {
	r := scr.m.Scheduler.Frame(step)
	scr.m.Notices.Drain(func(p notifications.Pending) {
		logger.Log(logger.Allow, "script", p)
		fmt.Fprintf(scr.output, "* %s\n", p)
	})
	return r
}

// checkByte returns the argument n as a byte. raises an error if the argument
// is out of range.
func checkByte(ls *lua.LState, n int) uint8 {
	v := ls.CheckInt(n)
	if v < 0 || v > 0xff {
		ls.ArgError(n, "value out of range")
	}
	return uint8(v)
}

func (scr *Script) print(ls *lua.LState) int {
	s := make([]string, ls.GetTop())
	for i := range s {
		s[i] = ls.ToStringMeta(ls.Get(i + 1)).String()
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}

func (scr *Script) step(ls *lua.LState) int {
	n := ls.OptInt(1, 1)
	for i := 0; i < n; i++ {
		if r := scr.frame(true); r.Halted {
			break // for loop
		}
	}
	ls.Push(lua.LNumber(scr.m.Engine.State().PC))
	return 1
}

func (scr *Script) run(ls *lua.LState) int {
	frames := ls.OptInt(1, DefaultFrames)

	scr.m.Config.Mode = govern.Running

	var retired int
	var halted bool
	for i := 0; i < frames && !halted; i++ {
		r := scr.frame(false)
		retired += r.Retired
		halted = r.Halted
	}

	scr.m.Config.Stop()

	ls.Push(lua.LNumber(retired))
	ls.Push(lua.LBool(halted))
	return 2
}

func (scr *Script) pc(ls *lua.LState) int {
	state := scr.m.Engine.State()
	if ls.GetTop() >= 1 {
		v := ls.CheckInt(1)
		if v < 0 || v > 0xffff {
			ls.ArgError(1, "address out of range")
		}
		state.PC = uint16(v)
	}
	ls.Push(lua.LNumber(state.PC))
	return 1
}

func (scr *Script) sfr(ls *lua.LState) int {
	reg := checkByte(ls, 1)
	if reg < engine.SFRBase {
		ls.ArgError(1, "not a special function register")
	}
	state := scr.m.Engine.State()
	if ls.GetTop() >= 2 {
		state.WriteSFR(reg, checkByte(ls, 2))
	}
	ls.Push(lua.LNumber(state.ReadSFR(reg)))
	return 1
}

func (scr *Script) ram(ls *lua.LState) int {
	addr := checkByte(ls, 1)
	state := scr.m.Engine.State()

	mem := state.Lower[:]
	if addr >= engine.LowerSize {
		mem = state.Upper[:]
		addr -= engine.LowerSize
	}

	if ls.GetTop() >= 2 {
		mem[addr] = checkByte(ls, 2)
	}
	ls.Push(lua.LNumber(mem[addr]))
	return 1
}

func (scr *Script) code(ls *lua.LState) int {
	addr := ls.CheckInt(1)
	if addr < 0 || addr >= engine.CodeSize {
		ls.ArgError(1, "address out of range")
	}
	ls.Push(lua.LNumber(scr.m.Engine.State().Code[addr]))
	return 1
}

func (scr *Script) latch(ls *lua.LState) int {
	n := ls.CheckInt(1)
	if n < 0 || n >= ports.NumPorts {
		ls.ArgError(1, "no such port")
	}
	port := ports.Port(n)
	if ls.GetTop() >= 2 {
		scr.m.Ports.SetLatch(port, checkByte(ls, 2))
	}
	ls.Push(lua.LNumber(scr.m.Ports.Latch(port)))
	return 1
}

func (scr *Script) breakpoint(ls *lua.LState) int {
	if ls.GetTop() >= 1 {
		v := ls.CheckInt(1)
		if v < 0 || v > 0xffff {
			ls.ArgError(1, "address out of range")
		}
		scr.m.Breakpoint.Arm(uint16(v))
	}
	if addr, ok := scr.m.Breakpoint.Armed(); ok {
		ls.Push(lua.LNumber(addr))
	} else {
		ls.Push(lua.LNil)
	}
	return 1
}

func (scr *Script) clearBreakpoint(ls *lua.LState) int {
	scr.m.Breakpoint.Clear()
	return 0
}

func (scr *Script) speed(ls *lua.LState) int {
	if ls.GetTop() >= 1 {
		scr.m.Config.Speed = govern.ClampSpeed(ls.CheckInt(1))
	}
	ls.Push(lua.LNumber(scr.m.Config.Speed))
	return 1
}

func (scr *Script) fidelity(ls *lua.LState) int {
	if ls.GetTop() >= 1 {
		f, err := ports.ParseFidelity(ls.CheckString(1))
		if err != nil {
			ls.ArgError(1, err.Error())
		}
		scr.m.Ports.SetFidelity(f)
	}
	ls.Push(lua.LString(scr.m.Ports.Fidelity().String()))
	return 1
}

func (scr *Script) history(ls *lua.LState) int {
	e, ok := scr.m.History.Recent(ls.CheckInt(1))
	if !ok {
		ls.Push(lua.LNil)
		return 1
	}
	ls.Push(lua.LNumber(e.PC))
	return 1
}

func (scr *Script) instructions(ls *lua.LState) int {
	ls.Push(lua.LNumber(scr.m.Scheduler.Instructions()))
	return 1
}

func (scr *Script) clocks(ls *lua.LState) int {
	ls.Push(lua.LNumber(scr.m.Scheduler.Clocks()))
	return 1
}

func (scr *Script) reset(ls *lua.LState) int {
	scr.m.Reset()
	return 0
}
