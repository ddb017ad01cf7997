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

// Package debugger is the operator's interface to the emulation. It ties
// together the execution engine, the scheduler, the port model and the
// views, and runs the frame loop.
//
// Initialisation of the debugger is done with the NewDebugger() function
//
//	dbg, _ := debugger.NewDebugger(op, eng, limiter.NewMonotonic(), "")
//
// The op argument is an implementation of the terminal.Operator interface.
// The easyterm and plainterm packages provide the two implementations used by
// gopher8051. The eng argument is an implementation of the engine.Engine
// interface.
//
// Once initialised, a program can be loaded with the Load() function and the
// debugger can be started with the Start() function.
//
//	dbg.Load(loader.NewLoader("program.hex", false))
//	dbg.Start()
//
// Interaction is with single key commands. The help command (h) lists them
// all. Keys that are not recognised as commands are passed to the active
// view.
package debugger
