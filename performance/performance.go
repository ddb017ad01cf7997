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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gopher8051/gopher8051/curated"
	"github.com/gopher8051/gopher8051/debugger/govern"
	"github.com/gopher8051/gopher8051/debugger/halt"
	"github.com/gopher8051/gopher8051/debugger/scheduler"
	"github.com/gopher8051/gopher8051/hardware/engine"
	"github.com/gopher8051/gopher8051/logger"
	"github.com/gopher8051/gopher8051/performance/limiter"
	"github.com/gopher8051/gopher8051/rewind"
)

// sentinal error returned by the run loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulation by running the engine for the
// specified duration at the specified speed. The engine should already have
// a program loaded.
//
// Emulation will create a cpu or memory profile (or both) as defined by the
// Profile argument.
func Check(output io.Writer, profile Profile, eng engine.Engine, speed govern.Speed, hz int, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	config := govern.NewRunConfig()
	config.Speed = speed
	config.Mode = govern.Running

	history := rewind.NewRing(rewind.DefaultCapacity)
	var breakpoint halt.Breakpoint

	sch := scheduler.NewScheduler(eng, limiter.NewMonotonic(), &config, history, &breakpoint)
	sch.SetClockHz(hz)

	// exceptions stop the check early
	var exception error
	eng.SetHooks(engine.Hooks{
		Exception: func(cause engine.Cause) {
			exception = curated.Errorf("performance: %s exception at %#04x", cause, eng.State().PC)
			sch.Halt()
		},
	})

	logger.Logf(logger.Allow, "performance", "running at speed %s for %s", speed, dur)

	runner := func() error {
		timesUp := make(chan bool, 1)
		time.AfterFunc(dur, func() {
			timesUp <- true
		})

		for {
			select {
			case <-timesUp:
				return timedOut
			default:
			}

			r := sch.Frame(false)
			if r.Halted {
				return exception
			}
		}
	}

	startTime := time.Now()

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	elapsed := time.Since(startTime).Seconds()
	rate, accuracy := CalcRate(sch.Instructions(), elapsed, hz)

	if speed.Budget(govern.Running, hz).Window > 0 {
		fmt.Fprintf(output, "%.0f instructions/s (%d instructions in %.2f seconds) %.1f%%\n",
			rate, sch.Instructions(), elapsed, accuracy)
	} else {
		fmt.Fprintf(output, "%.0f instructions/s (%d instructions in %.2f seconds) unpaced\n",
			rate, sch.Instructions(), elapsed)
	}

	if profile&ProfileMemviz == ProfileMemviz {
		return Memviz("performance_memviz.dot", &config, history)
	}

	return nil
}

// CalcRate takes the number of retired instructions and the duration (in
// seconds) and returns the instructions-per-second and the accuracy of that
// value as a percentage of the oscillator frequency.
//
// The accuracy assumes single cycle instructions.
func CalcRate(instructions uint64, duration float64, hz int) (rate float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	rate = float64(instructions) / duration
	target := float64(hz) / 12
	if target > 0 {
		accuracy = 100 * rate / target
	}
	return rate, accuracy
}
