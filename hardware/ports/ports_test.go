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

package ports_test

import (
	"testing"

	"github.com/gopher8051/gopher8051/curated"
	"github.com/gopher8051/gopher8051/hardware/engine"
	"github.com/gopher8051/gopher8051/hardware/ports"
	prng "github.com/gopher8051/gopher8051/random"
	"github.com/gopher8051/gopher8051/test"
)

func rndConst(v uint8) func() uint8 {
	return func() uint8 { return v }
}

func TestCombine(t *testing.T) {
	// output high returns driven value regardless of latch
	test.ExpectEquality(t, ports.Combine(ports.OutputHigh, 0x5a, 0x00, nil), 0x5a)
	test.ExpectEquality(t, ports.Combine(ports.OutputHigh, 0x5a, 0xff, nil), 0x5a)

	// output low masks with latch
	test.ExpectEquality(t, ports.Combine(ports.OutputLow, 0xff, 0x0f, nil), 0x0f)
	test.ExpectEquality(t, ports.Combine(ports.OutputLow, 0x5a, 0xf0, nil), 0x50)

	// output random. bits with a 1 in the latch take the driven value, bits
	// with a 0 take the random value
	test.ExpectEquality(t, ports.Combine(ports.OutputRandom, 0xff, 0x0f, rndConst(0x00)), 0x0f)
	test.ExpectEquality(t, ports.Combine(ports.OutputRandom, 0x00, 0x0f, rndConst(0xff)), 0xf0)
	test.ExpectEquality(t, ports.Combine(ports.OutputRandom, 0x5a, 0xff, rndConst(0xa5)), 0x5a)
	test.ExpectEquality(t, ports.Combine(ports.OutputRandom, 0x5a, 0x00, rndConst(0xa5)), 0xa5)
}

func TestParseFidelity(t *testing.T) {
	f, err := ports.ParseFidelity("Random")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, ports.OutputRandom)

	for _, f := range []ports.Fidelity{ports.OutputLow, ports.OutputHigh, ports.OutputRandom} {
		g, err := ports.ParseFidelity(f.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, g, f)
	}

	f, err = ports.ParseFidelity("medium")
	test.ExpectSuccess(t, curated.Is(err, ports.UnknownFidelity))
	test.ExpectEquality(t, f, ports.DefaultFidelity)
}

func TestPortRegisters(t *testing.T) {
	p, ok := ports.PortFromRegister(engine.P2)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, ports.P2)
	test.ExpectEquality(t, p.Register(), engine.P2)
	test.ExpectEquality(t, p.String(), "P2")

	_, ok = ports.PortFromRegister(engine.ACC)
	test.ExpectFailure(t, ok)
}

// stimulus drives a fixed value, or nothing at all
type stimulus struct {
	value  uint8
	ok     bool
	calls  int
	stored []uint8
}

func (s *stimulus) Drive(port ports.Port, stored uint8) (uint8, bool) {
	s.calls++
	s.stored = append(s.stored, stored)
	return s.value, s.ok
}

type random struct {
	v uint8
}

func (r random) Uint8(_ uint8) uint8 {
	return r.v
}

func TestReadNonPort(t *testing.T) {
	var st engine.State
	st.WriteSFR(engine.ACC, 0x12)

	p := ports.NewPorts(&st, random{})
	stm := &stimulus{value: 0xff, ok: true}
	p.AttachStimulus(stm)

	test.ExpectEquality(t, p.Read(engine.ACC), 0x12)
	test.ExpectEquality(t, stm.calls, 0)
}

func TestReadNoStimulus(t *testing.T) {
	var st engine.State
	st.WriteSFR(engine.P1, 0x3c)
	p := ports.NewPorts(&st, random{})

	// no stimulus attached
	test.ExpectEquality(t, p.Read(engine.P1), 0x3c)

	// stimulus attached but with nothing to drive
	stm := &stimulus{ok: false}
	p.AttachStimulus(stm)
	test.ExpectEquality(t, p.Read(engine.P1), 0x3c)
	test.ExpectEquality(t, stm.calls, 1)
	test.ExpectEquality(t, p.Latch(ports.P1), 0x00)
}

func TestReadStimulus(t *testing.T) {
	var st engine.State
	st.WriteSFR(engine.P1, 0x0f)
	p := ports.NewPorts(&st, random{v: 0xff})
	stm := &stimulus{value: 0xaa, ok: true}
	p.AttachStimulus(stm)

	// default fidelity is output high
	test.ExpectEquality(t, p.Fidelity(), ports.OutputHigh)
	test.ExpectEquality(t, p.Read(engine.P1), 0xaa)
	test.ExpectEquality(t, p.Latch(ports.P1), 0xaa)

	p.SetFidelity(ports.OutputLow)
	test.ExpectEquality(t, p.Read(engine.P1), 0x0a)

	p.SetFidelity(ports.OutputRandom)
	test.ExpectEquality(t, p.Read(engine.P1), 0xfa)

	// stimulus is given the stored latch as a default. first read had nothing
	// stored
	test.DemandEquality(t, len(stm.stored), 3)
	test.ExpectEquality(t, stm.stored[0], 0x00)
	test.ExpectEquality(t, stm.stored[1], 0xaa)

	// other ports are unaffected
	test.ExpectEquality(t, p.Latch(ports.P0), 0x00)

	p.Reset()
	test.ExpectEquality(t, p.Latch(ports.P1), 0x00)
}

func TestReadLogicBoard(t *testing.T) {
	var st engine.State
	st.WriteSFR(engine.P3, 0x00)
	p := ports.NewPorts(&st, random{})
	stm := &stimulus{value: 0x11, ok: true}
	p.AttachStimulus(stm)

	active := true
	p.SetLogicBoard(func() bool { return active })

	// the stored latch is returned without any masking, even in output low
	// mode with an all-zero output latch
	p.SetFidelity(ports.OutputLow)
	p.SetLatch(ports.P3, 0xc3)
	test.ExpectEquality(t, p.Read(engine.P3), 0xc3)
	test.ExpectEquality(t, stm.calls, 0)

	active = false
	test.ExpectEquality(t, p.Read(engine.P3), 0x00)
	test.ExpectEquality(t, stm.calls, 1)
	test.ExpectEquality(t, p.Latch(ports.P3), 0x11)
}

func TestOutputLatch(t *testing.T) {
	var st engine.State
	st.ResetSFR()
	p := ports.NewPorts(&st, random{})
	test.ExpectEquality(t, p.OutputLatch(ports.P0), 0xff)
	st.WriteSFR(engine.P0, 0x7e)
	test.ExpectEquality(t, p.OutputLatch(ports.P0), 0x7e)
}

// instructions is a clock that never moves
type instructions uint64

func (i instructions) Instructions() uint64 {
	return uint64(i)
}

func TestReadRandomFidelity(t *testing.T) {
	var st engine.State
	st.WriteSFR(engine.P1, 0xf0)

	rnd := prng.NewRandom(instructions(100))
	rnd.ZeroSeed = true
	p := ports.NewPorts(&st, rnd)
	p.AttachStimulus(&stimulus{value: 0x5a, ok: true})
	p.SetFidelity(ports.OutputRandom)

	// repeated reads in the same instruction. the high nibble follows the
	// driven value and the low nibble floats
	floating := make(map[uint8]bool)
	for i := 0; i < 32; i++ {
		v := p.Read(engine.P1)
		test.ExpectEquality(t, v&0xf0, 0x50, i)
		floating[v&0x0f] = true
	}
	test.ExpectSuccess(t, len(floating) > 1)
}
