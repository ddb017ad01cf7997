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

package engine

import "fmt"

// Cause is the reason for an exception.
type Cause int

// List of valid Cause values. Breakpoint is raised by the front end rather
// than by the engine.
const (
	CauseBreakpoint    Cause = -1
	CauseStack         Cause = 0
	CauseAccToA        Cause = 1
	CauseIretPSW       Cause = 2
	CauseIretSP        Cause = 3
	CauseIretACC       Cause = 4
	CauseIllegalOpcode Cause = 5
)

// Causes lists all the causes that can be raised by an engine, in order.
var Causes = []Cause{
	CauseStack,
	CauseAccToA,
	CauseIretPSW,
	CauseIretSP,
	CauseIretACC,
	CauseIllegalOpcode,
}

func (c Cause) String() string {
	switch c {
	case CauseBreakpoint:
		return "Breakpoint reached"
	case CauseStack:
		return "SP exception: stack address > 127 with no upper memory, or SP roll over"
	case CauseAccToA:
		return "Invalid operation: acc-to-a move operation"
	case CauseIretPSW:
		return "PSW not preserved over interrupt call"
	case CauseIretSP:
		return "SP not preserved over interrupt call"
	case CauseIretACC:
		return "ACC not preserved over interrupt call"
	case CauseIllegalOpcode:
		return "Invalid opcode: 0xA5 encountered"
	}
	return fmt.Sprintf("Unknown exception (%d)", int(c))
}

// Key returns a short name for the cause, suitable for use as a preferences
// key.
func (c Cause) Key() string {
	switch c {
	case CauseBreakpoint:
		return "breakpoint"
	case CauseStack:
		return "stack"
	case CauseAccToA:
		return "accToA"
	case CauseIretPSW:
		return "iretPSW"
	case CauseIretSP:
		return "iretSP"
	case CauseIretACC:
		return "iretACC"
	case CauseIllegalOpcode:
		return "illegalOpcode"
	}
	return fmt.Sprintf("cause%d", int(c))
}
