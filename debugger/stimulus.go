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
	"strconv"
	"strings"

	"github.com/gopher8051/gopher8051/debugger/terminal"
	"github.com/gopher8051/gopher8051/hardware/ports"
	"github.com/gopher8051/gopher8051/logger"
)

// stimulus implements the ports.Stimulus interface by asking the operator for
// the value driven onto a port.
type stimulus struct {
	op terminal.Operator
}

// Drive implements the ports.Stimulus interface.
func (s *stimulus) Drive(port ports.Port, stored uint8) (uint8, bool) {
	v, ok := s.op.Prompt(fmt.Sprintf("%s port read", port), fmt.Sprintf("%02x", stored))
	if !ok {
		return 0, false
	}

	v = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(v)), "0x")
	n, err := strconv.ParseUint(v, 16, 8)
	if err != nil {
		logger.Logf(logger.Allow, "debugger", "%s port read: not a valid byte (%s)", port, v)
		return 0, false
	}

	return uint8(n), true
}
