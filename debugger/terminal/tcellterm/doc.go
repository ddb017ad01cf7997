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

// Package tcellterm implements the terminal.Operator interface with the tcell
// package. It is an alternative to the easyterm package for terminals that
// are not served well by termios, including the Windows console.
//
// The views draw with ANSI sequences. The Writer() of the tcellterm Terminal
// interprets the subset of sequences produced by the ansi package and
// translates them into tcell cells.
package tcellterm
