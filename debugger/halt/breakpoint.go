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

// Package halt implements the breakpoint. There is at most one breakpoint and
// it is either armed with a program address or cleared.
//
// The breakpoint doesn't stop anything by itself. The scheduler asks it
// whether the current program counter matches and raises an exception if it
// does.
package halt

import (
	"fmt"
)

// Breakpoint is a single program address at which execution should halt.
type Breakpoint struct {
	address uint16
	armed   bool
}

func (bp Breakpoint) String() string {
	if !bp.armed {
		return "no breakpoint"
	}
	return fmt.Sprintf("breakpoint at 0x%04x", bp.address)
}

// Arm the breakpoint at the address. Replaces any existing address.
func (bp *Breakpoint) Arm(address uint16) {
	bp.address = address
	bp.armed = true
}

// Clear the breakpoint.
func (bp *Breakpoint) Clear() {
	bp.armed = false
}

// Armed returns the breakpoint address and whether it is armed.
func (bp Breakpoint) Armed() (uint16, bool) {
	return bp.address, bp.armed
}

// Check returns true if the breakpoint is armed and pc matches.
func (bp Breakpoint) Check(pc uint16) bool {
	return bp.armed && bp.address == pc
}
