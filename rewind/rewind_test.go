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

package rewind_test

import (
	"testing"

	"github.com/gopher8051/gopher8051/hardware/engine"
	"github.com/gopher8051/gopher8051/rewind"
	"github.com/gopher8051/gopher8051/test"
)

func TestEmpty(t *testing.T) {
	r := rewind.NewRing(0)
	test.ExpectEquality(t, r.Capacity(), rewind.DefaultCapacity)
	test.ExpectEquality(t, r.Len(), 0)

	_, ok := r.Recent(0)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, len(r.Entries()), 0)
}

func TestRecord(t *testing.T) {
	var st engine.State
	r := rewind.NewRing(4)

	for pc := uint16(1); pc <= 3; pc++ {
		st.WriteSFR(engine.ACC, uint8(pc*0x10))
		st.Lower[0] = uint8(pc)
		r.Record(pc, &st)
	}

	test.ExpectEquality(t, r.Len(), 3)
	test.ExpectEquality(t, r.Cursor(), 3)

	e, ok := r.Recent(0)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.PC, 3)
	test.ExpectEquality(t, e.SFR[engine.SFRIndex(engine.ACC)], 0x30)
	test.ExpectEquality(t, e.Lower[0], 3)

	e, _ = r.Recent(2)
	test.ExpectEquality(t, e.PC, 1)
	test.ExpectEquality(t, e.SFR[engine.SFRIndex(engine.ACC)], 0x10)

	// entries are copies, not references to the live state
	st.Lower[0] = 0xff
	e, _ = r.Recent(0)
	test.ExpectEquality(t, e.Lower[0], 3)
}

func TestWrap(t *testing.T) {
	var st engine.State
	r := rewind.NewRing(3)

	for pc := uint16(100); pc < 107; pc++ {
		r.Record(pc, &st)
	}

	test.ExpectEquality(t, r.Len(), 3)
	test.ExpectEquality(t, r.Total(), uint64(7))
	test.ExpectEquality(t, r.Cursor(), 7%3)

	// most recent first
	l := r.Entries()
	test.DemandEquality(t, len(l), 3)
	test.ExpectEquality(t, l[0].PC, 106)
	test.ExpectEquality(t, l[1].PC, 105)
	test.ExpectEquality(t, l[2].PC, 104)

	_, ok := r.Recent(3)
	test.ExpectFailure(t, ok)

	r.Reset()
	test.ExpectEquality(t, r.Len(), 0)
	test.ExpectEquality(t, r.Total(), uint64(0))
}
