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

// Package ports models the four 8051 I/O ports as seen by a program reading
// them.
//
// An 8051 port pin is quasi-bidirectional. Writing a 1 to the output latch
// lets the pin float high so that an external device can pull it low.
// Writing a 0 drives the pin low regardless of what is connected to it. The
// value read back by a program depends on how faithfully the emulation models
// this. The Fidelity type selects one of three models:
//
//	OutputHigh    the externally driven value is returned unmodified
//	OutputLow     bits with a 0 in the output latch read as 0
//	OutputRandom  bits with a 0 in the output latch read as random values
//
// The externally driven value comes from a Stimulus, usually the operator.
// The most recent driven value for each port is kept in a stored latch. When
// the logic board view is active the stored latch is returned without
// consulting the stimulus, so that the program can run without interruption.
package ports
