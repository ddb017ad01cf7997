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

// Package environment bundles the context shared by the parts of a single
// emulation.
package environment

import (
	"github.com/gopher8051/gopher8051/notifications"
	"github.com/gopher8051/gopher8051/random"
)

// Label is used to name the environment
type Label string

// MainEmulation is the label used for the operator's emulation.
const MainEmulation = Label("")

// Environment is used to provide context for an emulation.
type Environment struct {
	Label Label

	// any randomisation required by the emulation should be retreived through
	// this structure
	Random *random.Random

	// notices from the emulation to the presentation layer
	Notify notifications.Notify
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type. The clock is used to differentiate random numbers.
func NewEnvironment(label Label, clock random.Clock, notify notifications.Notify) *Environment {
	return &Environment{
		Label:  label,
		Random: random.NewRandom(clock),
		Notify: notify,
	}
}

// Normalise ensures the environment is in an known default state. Useful for
// testing where random numbers must be the same for every run.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
}
