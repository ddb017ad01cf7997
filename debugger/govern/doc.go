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

// Package govern defines the types that describe how the emulation is being
// run: the run mode, the execution speed and the state of the debugger.
//
// The Speed type also defines the pacing of execution at each speed. Speeds
// are numbered zero to seven with lower numbers being faster. At speeds zero
// to two the emulation runs in real time, in windows of ten or one
// milliseconds. At speeds three to seven a single machine cycle is executed
// for every operator frame and the pacing comes from the input timeout.
package govern
