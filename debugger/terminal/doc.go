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

// Package terminal defines the operations required for interaction between
// the operator and the debugger.
//
// The debugger is driven by single key presses and draws its views directly
// to the screen. Interaction happens through the Operator interface. There
// are two reference implementations of this interface: the easyterm
// Terminal, which puts a posix terminal into cbreak mode, and the
// PlainTerminal, found in the plainterm sub-package, which works with any
// reader and writer.
//
// Key presses are decoded by DecodeKey(), which is shared by both
// implementations.
package terminal
