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

// Package porttrace records the output latches of the four I/O ports as a
// WAV file. Each port is a separate 8-bit channel and there is one sample for
// every retired instruction, so the file can be inspected in any audio
// editor as if it were the output of a logic analyser.
//
// Note that samples are buffered in memory in their entirity, and written to
// disk when End() is called.
package porttrace
