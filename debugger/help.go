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

package debugger

import (
	"fmt"
	"strings"
)

// help text for each command, in the order they are shown
var helps = []struct {
	key  string
	help string
}{
	{"F1..F4", "Select the main, logic board, memory editor or options view"},
	{"v", "Select the next view"},
	{"space", "Step one instruction and stop running"},
	{"r", "Toggle running"},
	{"+ -", "Change speed"},
	{"k", "Set or clear the breakpoint"},
	{"g", "Set the program counter"},
	{"l", "Load a program (Intel HEX or raw binary)"},
	{"home", "Reset the machine"},
	{"end", "Clear the clock counter"},
	{"h", "This help"},
	{"Q", "Quit"},
}

func help() string {
	s := strings.Builder{}
	for _, h := range helps {
		s.WriteString(fmt.Sprintf("%-7s %s\n", h.key, h.help))
	}
	return strings.TrimSuffix(s.String(), "\n")
}
