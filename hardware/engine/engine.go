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

// Package engine defines the interface to an 8051 instruction execution
// engine.
//
// The engine is ticked one machine cycle at a time. Tick() returns true on
// the tick that retires an instruction. Everything the front end knows about
// the machine it learns through State(), and everything the engine needs
// from the front end it asks for through the Hooks.
//
// The hooks are called synchronously from within Tick(). In particular, the
// SFRRead hook may block while the value of an input port is requested from
// the operator.
package engine

// Engine is implemented by instruction execution engines.
type Engine interface {
	// Reset the machine. A hard reset also clears data memory. Code memory
	// is never cleared.
	Reset(hard bool)

	// Tick advances the machine by one machine cycle. Returns true if an
	// instruction was retired during the cycle.
	Tick() bool

	// Exception raises an exception. The engine will forward the exception
	// to the Exception hook.
	Exception(cause Cause)

	// State returns the live machine state. The front end may change the
	// state between ticks, for example to set the program counter.
	State() *State

	// SetHooks replaces the current hooks.
	SetHooks(hooks Hooks)
}

// Hooks are the functions an engine calls to interact with the front end.
// Either field can be nil.
type Hooks struct {
	// Exception is called when the engine raises an exception or when
	// Exception() is called on the engine.
	Exception func(cause Cause)

	// SFRRead is called whenever the engine reads a special function
	// register. The register argument is the direct address (0x80 to 0xff).
	// The returned value is the value seen by the instruction.
	SFRRead func(register uint8) uint8
}
