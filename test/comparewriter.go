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


package test

// CompareWriter collects everything written to it. Operators, scripts and the
// command line launcher are given one in place of the terminal so that a test
// can check exactly what the user would have seen.
type CompareWriter struct {
	buffer []byte
}

func (cw *CompareWriter) Write(p []byte) (int, error) {
	cw.buffer = append(cw.buffer, p...)
	return len(p), nil
}

// Clear discards the collected output. The next Compare() or String() sees
// only what is written after the call.
func (cw *CompareWriter) Clear() {
	cw.buffer = cw.buffer[:0]
}

// Compare returns true if the collected output is exactly s.
func (cw *CompareWriter) Compare(s string) bool {
	return s == string(cw.buffer)
}

func (cw *CompareWriter) String() string {
	return string(cw.buffer)
}
