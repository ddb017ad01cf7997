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

import (
	"fmt"
)

// Speed is the execution speed. Lower values are faster.
type Speed int

// Range of valid speeds.
const (
	SpeedFastest Speed = 0
	SpeedSlowest Speed = 7
	DefaultSpeed Speed = 6
)

// ClampSpeed converts n to a Speed, clamping it to the valid range. Speeds
// never wrap.
func ClampSpeed(n int) Speed {
	if n < int(SpeedFastest) {
		return SpeedFastest
	}
	if n > int(SpeedSlowest) {
		return SpeedSlowest
	}
	return Speed(n)
}

// Faster returns the next fastest speed.
func (s Speed) Faster() Speed {
	return ClampSpeed(int(s) - 1)
}

// Slower returns the next slowest speed.
func (s Speed) Slower() Speed {
	return ClampSpeed(int(s) + 1)
}

var speedLabels = [...]string{"f*", "f++", "f+", "fast", "10Hz", "2Hz", "1Hz", ".5Hz"}

// Label returns a short description of the speed.
func (s Speed) Label() string {
	return speedLabels[ClampSpeed(int(s))]
}

func (s Speed) String() string {
	return fmt.Sprintf("%d (%s)", int(s), s.Label())
}

// Budget is the amount of execution in a single frame.
type Budget struct {
	// length of the frame in milliseconds. a value of zero means that the
	// frame is not paced and ends as soon as a single unit of execution has
	// completed
	Window uint32

	// maximum number of machine cycles to execute in the window
	Cycles int
}

// Budget returns the execution budget for the speed when running at the
// oscillator frequency hz. When not running the budget is a single machine
// cycle with no window.
func (s Speed) Budget(mode RunMode, hz int) Budget {
	if mode != Running {
		return Budget{Cycles: 1}
	}

	switch {
	case s == 2:
		return Budget{Window: 1, Cycles: max(1, hz/12000)}
	case s < 2:
		return Budget{Window: 10, Cycles: max(1, hz/1200)}
	}

	return Budget{Cycles: 1}
}

// Delay is the input timeout for a speed.
type Delay struct {
	// block until input is available. takes priority over Tenths
	Block bool

	// wait at most this many tenths of a second. zero means return
	// immediately
	Tenths int
}

func (d Delay) String() string {
	if d.Block {
		return "block"
	}
	if d.Tenths == 0 {
		return "poll"
	}
	return fmt.Sprintf("%d/10s", d.Tenths)
}

// InputDelay returns the input timeout for the speed. The emulation is paced
// at speeds four to seven by this timeout.
func (s Speed) InputDelay(mode RunMode) Delay {
	if mode != Running {
		return Delay{Block: true}
	}

	switch s {
	case 7:
		return Delay{Tenths: 20}
	case 6:
		return Delay{Tenths: 10}
	case 5:
		return Delay{Tenths: 5}
	case 4:
		return Delay{Tenths: 1}
	}

	return Delay{}
}
