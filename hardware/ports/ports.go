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
	"github.com/gopher8051/gopher8051/hardware/engine"
	"github.com/gopher8051/gopher8051/logger"
)

// Stimulus is the source of externally driven port values.
type Stimulus interface {
	// Drive returns the value driven onto the pins of the port. The stored
	// argument is the value most recently driven and is a sensible default.
	// The boolean return value is false if no value is available.
	Drive(port Port, stored uint8) (uint8, bool)
}

// Random is the source of random values for the OutputRandom model. The salt
// differentiates values for different ports read in the same instruction.
type Random interface {
	Uint8(salt uint8) uint8
}

// Ports implements the SFR read behaviour of the four I/O ports.
type Ports struct {
	state *engine.State
	rnd   Random

	fidelity Fidelity

	// the most recent externally driven value of each port. zero on reset
	// and updated only by Read()
	latches [NumPorts]uint8

	stimulus Stimulus

	// returns true if the logic board view is active
	logicBoard func() bool
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts(state *engine.State, rnd Random) *Ports {
	return &Ports{
		state:    state,
		rnd:      rnd,
		fidelity: DefaultFidelity,
	}
}

// Reset the stored latches.
func (p *Ports) Reset() {
	p.latches = [NumPorts]uint8{}
}

// SetFidelity changes the fidelity model.
func (p *Ports) SetFidelity(f Fidelity) {
	if f != p.fidelity {
		logger.Logf(logger.Allow, "ports", "fidelity set to %s", f)
	}
	p.fidelity = f
}

// Fidelity returns the current fidelity model.
func (p *Ports) Fidelity() Fidelity {
	return p.fidelity
}

// AttachStimulus sets the source of externally driven values. A nil value
// means that SFRs are returned unmodified.
func (p *Ports) AttachStimulus(s Stimulus) {
	p.stimulus = s
}

// SetLogicBoard sets the function used to query whether the logic board view
// is active.
func (p *Ports) SetLogicBoard(active func() bool) {
	p.logicBoard = active
}

// Latch returns the stored latch of the port.
func (p *Ports) Latch(port Port) uint8 {
	return p.latches[port]
}

// SetLatch changes the stored latch of the port. Used by the logic board view
// to toggle input pins.
func (p *Ports) SetLatch(port Port, v uint8) {
	p.latches[port] = v
}

// OutputLatch returns the value written to the port by the program.
func (p *Ports) OutputLatch(port Port) uint8 {
	return p.state.ReadSFR(port.Register())
}

// Read is the SFR read hook. It returns the value of the register at the
// direct address as seen by the program.
func (p *Ports) Read(register uint8) uint8 {
	v := p.state.ReadSFR(register)

	port, ok := PortFromRegister(register)
	if !ok {
		return v
	}

	if p.logicBoard != nil && p.logicBoard() {
		return p.latches[port]
	}

	if p.stimulus == nil {
		return v
	}

	driven, ok := p.stimulus.Drive(port, p.latches[port])
	if !ok {
		return v
	}
	p.latches[port] = driven

	return Combine(p.fidelity, driven, v, func() uint8 {
		return p.rnd.Uint8(register)
	})
}
