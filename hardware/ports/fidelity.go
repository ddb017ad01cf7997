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

package ports

import (
	"fmt"
	"strings"

	"github.com/gopher8051/gopher8051/curated"
	"github.com/gopher8051/gopher8051/hardware/engine"
)

// Fidelity is the model used to combine the externally driven value of a port
// with its output latch.
type Fidelity int

// List of valid Fidelity values.
const (
	OutputLow Fidelity = iota
	OutputHigh
	OutputRandom
)

// DefaultFidelity is the fidelity used when none is specified.
const DefaultFidelity = OutputHigh

// UnknownFidelity is returned by ParseFidelity().
const UnknownFidelity = "ports: unknown fidelity (%s)"

func (f Fidelity) String() string {
	switch f {
	case OutputLow:
		return "low"
	case OutputHigh:
		return "high"
	case OutputRandom:
		return "random"
	}
	return fmt.Sprintf("fidelity(%d)", int(f))
}

// Description returns a longer form of the fidelity name, suitable for the
// options view.
func (f Fidelity) Description() string {
	switch f {
	case OutputLow:
		return "output low: latch 0 reads as 0"
	case OutputHigh:
		return "output high: read driven value"
	case OutputRandom:
		return "output random: latch 0 reads as random"
	}
	return f.String()
}

// ParseFidelity converts a string to a Fidelity value. The comparison is
// case insensitive.
func ParseFidelity(s string) (Fidelity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return OutputLow, nil
	case "high":
		return OutputHigh, nil
	case "random":
		return OutputRandom, nil
	}
	return DefaultFidelity, curated.Errorf(UnknownFidelity, s)
}

// Combine the value driven onto the port pins with the output latch according
// to the fidelity model. The rnd function is only called in the OutputRandom
// model.
func Combine(fidelity Fidelity, driven uint8, outputLatch uint8, rnd func() uint8) uint8 {
	switch fidelity {
	case OutputLow:
		return driven & outputLatch
	case OutputRandom:
		return (driven & outputLatch) | (rnd() & ^outputLatch)
	}
	return driven
}

// Port identifies one of the four I/O ports.
type Port int

// List of valid Port values.
const (
	P0 Port = iota
	P1
	P2
	P3
)

// NumPorts is the number of I/O ports.
const NumPorts = 4

var registers = [NumPorts]uint8{engine.P0, engine.P1, engine.P2, engine.P3}

func (p Port) String() string {
	return fmt.Sprintf("P%d", int(p))
}

// Register returns the SFR direct address of the port.
func (p Port) Register() uint8 {
	return registers[p]
}

// PortFromRegister returns the port at the SFR direct address. The boolean
// value is false if the address is not a port.
func PortFromRegister(register uint8) (Port, bool) {
	for i, r := range registers {
		if r == register {
			return Port(i), true
		}
	}
	return 0, false
}
