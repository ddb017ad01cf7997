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

// Package rewind keeps a rolling history of machine state, one entry for
// every retired instruction.
//
// The history is a fixed size ring. Recording never fails and never blocks;
// once the ring is full the oldest entry is overwritten. Entries are read
// back most recent first, which is the order the debugger displays them in.
//
// Each entry holds the special function registers, the low half of internal
// data memory and the program counter from before the instruction was
// executed. That's enough to show what an instruction did to the registers
// and to the register banks.
package rewind
