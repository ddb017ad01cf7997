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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is the source of emulation time used to differentiate random
// numbers. Usually the number of retired instructions.
type Clock interface {
	Instructions() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clock Clock

	// count of generators created. repeated draws within the same instruction
	// and with the same salt do not repeat the same value
	draws uint64

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

// new RNG from the standard library. the salt value allows different random
// numbers to be generated for the same moment in emulation time
func (rnd *Random) rand(salt int64) *rand.Rand {
	rnd.draws++
	seed := int64(rnd.clock.Instructions())<<8 + salt + int64(rnd.draws*0x9e3779b97f4a7c15)
	if !rnd.ZeroSeed {
		seed += baseSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Intn returns a random number in the range [0,n).
func (rnd *Random) Intn(n int) int {
	return rnd.rand(0).Intn(n)
}

// Uint8 returns a random byte. The salt should be different for every use
// within the same instruction, for example the SFR register being read.
func (rnd *Random) Uint8(salt uint8) uint8 {
	return uint8(rnd.rand(int64(salt)).Intn(256))
}
