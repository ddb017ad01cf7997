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

// Package hardware is the base package for the emulated 8051
// microcontroller.
//
// The engine package defines the contract between the front end and an
// instruction execution engine: the machine state, a single clock tick and
// the hooks by which the engine reports exceptions and asks for the value of
// special function registers.
//
// The ports package models the four I/O ports as seen from outside the chip.
// The clocks package relates oscillator frequency to machine cycles.
package hardware
