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

// Package freerun is a stand-in instruction execution engine. It recognises
// just enough of the 8051 instruction set to move data through the ports and
// to loop:
//
//	00          NOP              1 cycle
//	02 hh ll    LJMP addr16      2 cycles
//	80 rr       SJMP rel         2 cycles
//	A5          (reserved)       raises CauseIllegalOpcode
//	E5 dd       MOV A,direct     1 cycle
//	F5 dd       MOV direct,A     1 cycle
//
// Any other byte is treated as a one cycle, one byte instruction with no
// effect. Reads of a special function register go through the SFRRead hook.
package freerun

import (
	"github.com/gopher8051/gopher8051/hardware/engine"
)

const (
	opNOP      = 0x00
	opLJMP     = 0x02
	opSJMP     = 0x80
	opReserved = 0xa5
	opMovADir  = 0xe5
	opMovDirA  = 0xf5
)

// Freerun implements the engine.Engine interface.
type Freerun struct {
	state engine.State
	hooks engine.Hooks

	// machine cycles remaining before the current instruction retires. zero
	// means that an instruction has yet to be started
	remaining int
}

// NewFreerun is the preferred method of initialisation for the Freerun type.
func NewFreerun() *Freerun {
	f := &Freerun{}
	f.Reset(true)
	return f
}

// Reset implements the engine.Engine interface.
func (f *Freerun) Reset(hard bool) {
	f.state.PC = 0
	f.state.ResetSFR()
	if hard {
		f.state.Lower = [engine.LowerSize]uint8{}
		f.state.Upper = [engine.UpperSize]uint8{}
		f.state.ExtData = [engine.ExtDataSize]uint8{}
	}
	f.remaining = 0
}

// State implements the engine.Engine interface.
func (f *Freerun) State() *engine.State {
	return &f.state
}

// SetHooks implements the engine.Engine interface.
func (f *Freerun) SetHooks(hooks engine.Hooks) {
	f.hooks = hooks
}

// Exception implements the engine.Engine interface.
func (f *Freerun) Exception(cause engine.Cause) {
	if f.hooks.Exception != nil {
		f.hooks.Exception(cause)
	}
}

// Tick implements the engine.Engine interface.
func (f *Freerun) Tick() bool {
	if f.remaining == 0 {
		f.remaining = cycles(f.state.Code[f.state.PC])
	}

	f.remaining--
	if f.remaining > 0 {
		return false
	}

	f.execute()
	return true
}

func cycles(op uint8) int {
	switch op {
	case opLJMP, opSJMP:
		return 2
	}
	return 1
}

func (f *Freerun) operand(n uint16) uint8 {
	return f.state.Code[f.state.PC+n]
}

func (f *Freerun) readDirect(d uint8) uint8 {
	if d < engine.SFRBase {
		return f.state.Lower[d]
	}
	if f.hooks.SFRRead != nil {
		return f.hooks.SFRRead(d)
	}
	return f.state.ReadSFR(d)
}

func (f *Freerun) writeDirect(d uint8, v uint8) {
	if d < engine.SFRBase {
		f.state.Lower[d] = v
		return
	}
	f.state.WriteSFR(d, v)
}

func (f *Freerun) execute() {
	switch f.state.Code[f.state.PC] {
	case opLJMP:
		f.state.PC = uint16(f.operand(1))<<8 | uint16(f.operand(2))
	case opSJMP:
		f.state.PC += 2 + uint16(int8(f.operand(1)))
	case opMovADir:
		f.state.WriteSFR(engine.ACC, f.readDirect(f.operand(1)))
		f.state.PC += 2
	case opMovDirA:
		f.writeDirect(f.operand(1), f.state.ReadSFR(engine.ACC))
		f.state.PC += 2
	case opReserved:
		f.state.PC++
		f.Exception(engine.CauseIllegalOpcode)
	default:
		f.state.PC++
	}
}
