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

// Package script runs Lua scripts against the emulation. Scripts drive the
// scheduler directly, without an operator, and so can be used to test
// programs in batch.
//
// The following functions are available to a script. Functions that take an
// optional value change the machine when the value is given and always return
// the current value.
//
//	step([n])                 execute n whole instructions. returns the PC
//	run([frames])             run until halted or the number of frames has
//	                          elapsed. returns instructions retired and
//	                          whether the run was halted
//	pc([addr])                program counter
//	sfr(register, [v])        special function register (0x80 to 0xff)
//	ram(addr, [v])            internal data memory (0x00 to 0xff)
//	code(addr)                code memory
//	latch(port, [v])          stored input latch of port 0 to 3
//	breakpoint([addr])        arm the breakpoint. returns the address or nil
//	clear_breakpoint()        clear the breakpoint
//	speed([n])                run speed 0 (fastest) to 7 (slowest)
//	fidelity([name])          port fidelity: low, high or random
//	history(i)                PC of the i'th most recent history entry
//	instructions()            instructions retired since reset
//	clocks()                  oscillator clocks since reset
//	reset()                   hard reset of the machine
//
// The print function writes to the output of the script rather than to
// stdout.
//
// If the script defines a global function called port_read, it is called for
// every emulated port read with the port number and the stored latch. The
// function should return the value driven onto the port or nil if no value
// is driven.
package script
