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

// RunConfig is the operator's choice of how the emulation should be run.
type RunConfig struct {
	Speed Speed
	Mode  RunMode

	// if StepInstruction is true then a single unit of execution is a full
	// instruction rather than a single machine cycle
	StepInstruction bool
}

// NewRunConfig is the preferred method of initialisation for the RunConfig
// type.
func NewRunConfig() RunConfig {
	return RunConfig{
		Speed: DefaultSpeed,
		Mode:  Stepping,
	}
}

// ToggleRun switches between Running and Stepping.
func (rc *RunConfig) ToggleRun() {
	if rc.Mode == Running {
		rc.Mode = Stepping
	} else {
		rc.Mode = Running
	}
}

// Stop puts the emulation into Stepping mode.
func (rc *RunConfig) Stop() {
	rc.Mode = Stepping
}

// Faster increases the speed, if possible.
func (rc *RunConfig) Faster() {
	rc.Speed = rc.Speed.Faster()
}

// Slower decreases the speed, if possible.
func (rc *RunConfig) Slower() {
	rc.Speed = rc.Speed.Slower()
}

// Budget returns the execution budget for the current configuration.
func (rc RunConfig) Budget(hz int) Budget {
	return rc.Speed.Budget(rc.Mode, hz)
}

// InputDelay returns the input timeout for the current configuration.
func (rc RunConfig) InputDelay() Delay {
	return rc.Speed.InputDelay(rc.Mode)
}
