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

// Package limiter provides the wall clock used to pace emulation.
//
// Time is measured in milliseconds by a 32 bit counter. The counter wraps
// after about 49 days so deadlines must be compared with Reached() rather
// than with the < operator:
//
//	deadline := clk.Ticks() + 10
//	for !limiter.Reached(clk.Ticks(), deadline) {
//		clk.Sleep(1)
//	}
package limiter

import (
	"time"
)

// Clock is a source of millisecond ticks.
type Clock interface {
	// Ticks returns the number of milliseconds since an arbitrary epoch.
	Ticks() uint32

	// Sleep for the number of milliseconds.
	Sleep(ms uint32)
}

// Monotonic implements the Clock interface using the monotonic clock of the
// host.
type Monotonic struct {
	epoch time.Time
}

// NewMonotonic is the preferred method of initialisation for the Monotonic
// type.
func NewMonotonic() *Monotonic {
	return &Monotonic{epoch: time.Now()}
}

// Ticks implements the Clock interface.
func (m *Monotonic) Ticks() uint32 {
	return uint32(time.Since(m.epoch).Milliseconds())
}

// Sleep implements the Clock interface.
func (m *Monotonic) Sleep(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// Reached returns true if the deadline is now or has passed. The comparison
// is correct across wraparound of the tick counter, provided the deadline is
// less than about 24 days away.
func Reached(now uint32, deadline uint32) bool {
	return int32(deadline-now) <= 0
}
