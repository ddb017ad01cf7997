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

// Package display implements the debugger's four views: the main view, the
// logic board, the memory editor and the options screen. Each type satisfies
// the views.View interface.
//
// Views draw to a Screen with ANSI control sequences. Build() draws the whole
// view, Update() redraws only the parts that change as the emulation runs and
// Wipe() clears the screen.
package display
