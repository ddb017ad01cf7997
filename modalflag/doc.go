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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows a different set of flags for each mode.
//
// Arguments are given to a Modes instance with NewArgs() and then parsed with
// Parse(), which takes no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PERFORMANCE")
//	_, _ = md.Parse()
//
// After Parse(), the first non-flag argument is compared against the list of
// sub-modes (case insensitive). If it matches it is consumed and becomes the
// current Mode(). If it doesn't then the first sub-mode in the list is used.
//
// Once a mode has been found, NewMode() prepares the Modes instance for the
// next layer of flags:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		raw := md.AddBool("raw", false, "load raw binary image")
//		md.Parse()
//	}
//
// Flags can have aliases. An alias sets the same variable as the flag it
// belongs to.
//
//	si := md.AddBool("step_instruction", false, "step whole instructions", "si")
package modalflag
