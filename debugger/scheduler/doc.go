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

// Package scheduler paces emulated execution against wall-clock time.
//
// The scheduler is driven once per operator frame by the Frame() function.
// The amount of execution in a frame depends on the run configuration:
//
//	stepping, no step command   nothing
//	step command                one full instruction
//	running, speeds 3 to 7      one unit
//	running, speeds 0 to 2      units until the cycle budget is spent or the
//	                            window has elapsed
//
// A unit is a single machine cycle, or a full instruction if the
// StepInstruction field of the run configuration is set. After the units have
// been executed, the scheduler sleeps in one millisecond increments until the
// end of the window.
//
// Every machine cycle advances the clock counter by twelve. Every retired
// instruction advances the instruction counter and is recorded in the
// history. The breakpoint is checked after every machine cycle.
package scheduler
