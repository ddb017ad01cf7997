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

package govern

// RunMode indicates whether the emulation advances without operator input.
type RunMode int

// List of valid RunMode values.
const (
	Stepping RunMode = iota
	Running
)

func (m RunMode) String() string {
	switch m {
	case Stepping:
		return "Stepping"
	case Running:
		return "Running"
	}
	return ""
}

// State indicates the state of the debugger loop.
type State int

// List of possible debugger states. EmulatorStart is the default state and is
// never re-entered.
const (
	EmulatorStart State = iota
	Initialising
	Active
	Ending
)

func (s State) String() string {
	switch s {
	case EmulatorStart:
		return "EmulatorStart"
	case Initialising:
		return "Initialising"
	case Active:
		return "Active"
	case Ending:
		return "Ending"
	}
	return ""
}
