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

package engine

// Size of each memory area.
const (
	SFRSize     = 128
	LowerSize   = 128
	UpperSize   = 128
	ExtDataSize = 0x10000
	CodeSize    = 0x10000
)

// State is the machine state as seen by the front end.
type State struct {
	PC uint16

	// special function registers. indexed by register address minus 0x80.
	// use the ReadSFR() and WriteSFR() functions for access by register address
	SFR [SFRSize]uint8

	// internal data memory. lower is directly and indirectly addressable.
	// upper is only indirectly addressable (and only present on 8052 parts)
	Lower [LowerSize]uint8
	Upper [UpperSize]uint8

	// external data memory and code memory
	ExtData [ExtDataSize]uint8
	Code    [CodeSize]uint8
}

// ReadSFR returns the value of the special function register at the direct
// address. The value is read without calling any hook.
func (s *State) ReadSFR(register uint8) uint8 {
	return s.SFR[SFRIndex(register)]
}

// WriteSFR sets the value of the special function register at the direct
// address.
func (s *State) WriteSFR(register uint8, v uint8) {
	s.SFR[SFRIndex(register)] = v
}

// ResetSFR sets the special function registers to their power-on values.
func (s *State) ResetSFR() {
	s.SFR = [SFRSize]uint8{}
	s.WriteSFR(SP, 0x07)
	s.WriteSFR(P0, 0xff)
	s.WriteSFR(P1, 0xff)
	s.WriteSFR(P2, 0xff)
	s.WriteSFR(P3, 0xff)
}

// Bank returns the register bank selected by the PSW.
func (s *State) Bank() int {
	return int(s.ReadSFR(PSW)>>3) & 0x03
}

// R returns register Rn of the current register bank.
func (s *State) R(n int) uint8 {
	return s.Lower[s.Bank()*8+(n&0x07)]
}
