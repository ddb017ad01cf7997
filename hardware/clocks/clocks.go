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

// Package clocks defines the constant values that relate the 8051 oscillator
// frequency to emulated machine cycles.
//
// The 8051 divides the oscillator by twelve to give one machine cycle. The
// oscillator frequency is configurable, 12MHz being the usual choice because
// it gives exactly one machine cycle per microsecond.
package clocks

// DefaultHz is the oscillator frequency used when none is specified.
const DefaultHz = 12000000

// PerMachineCycle is the number of oscillator clocks in one machine cycle. The
// clock counter is advanced by this amount on every engine tick.
const PerMachineCycle = 12

// Microseconds returns the emulated time, in microseconds, represented by the
// number of oscillator clocks at frequency hz.
func Microseconds(clocks uint64, hz int) uint64 {
	if hz <= 0 {
		return 0
	}
	return clocks * 1000000 / uint64(hz)
}
