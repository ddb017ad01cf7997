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

package rewind

import (
	"github.com/gopher8051/gopher8051/hardware/engine"
)

// DefaultCapacity is the number of entries in a ring created with a
// capacity of zero or less.
const DefaultCapacity = 20

// LowerSnapshot is the number of bytes of lower data memory kept in each
// entry. This covers the four register banks and the bit addressable area.
const LowerSnapshot = 64

// Entry is a single snapshot of machine state. Entries are never modified
// once recorded.
type Entry struct {
	// program counter before the instruction was executed
	PC uint16

	SFR   [engine.SFRSize]uint8
	Lower [LowerSnapshot]uint8
}

// Ring contains a history of machine states.
type Ring struct {
	entries []Entry

	// index of the slot to be written by the next call to Record()
	cursor int

	// number of entries recorded since the last Reset(). may be more than the
	// capacity of the ring
	total uint64
}

// NewRing is the preferred method of initialisation for the Ring type.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{
		entries: make([]Entry, capacity),
	}
}

// Reset forgets all entries.
func (r *Ring) Reset() {
	r.cursor = 0
	r.total = 0
}

// Record a new entry. The pc argument is the program counter before the
// instruction was executed. The SFRs and data memory are copied from state.
func (r *Ring) Record(pc uint16, state *engine.State) {
	e := &r.entries[r.cursor]
	e.PC = pc
	e.SFR = state.SFR
	copy(e.Lower[:], state.Lower[:LowerSnapshot])

	r.cursor = (r.cursor + 1) % len(r.entries)
	r.total++
}

// Capacity returns the maximum number of entries.
func (r *Ring) Capacity() int {
	return len(r.entries)
}

// Len returns the number of entries available.
func (r *Ring) Len() int {
	if r.total < uint64(len(r.entries)) {
		return int(r.total)
	}
	return len(r.entries)
}

// Total returns the number of entries recorded since the last reset,
// including those that have been overwritten.
func (r *Ring) Total() uint64 {
	return r.total
}

// Cursor returns the index of the slot that will be written next.
func (r *Ring) Cursor() int {
	return r.cursor
}

// Recent returns the entry recorded i entries ago. Recent(0) is the most
// recent entry. The boolean is false if there is no such entry.
func (r *Ring) Recent(i int) (Entry, bool) {
	if i < 0 || i >= r.Len() {
		return Entry{}, false
	}
	n := len(r.entries)
	return r.entries[(r.cursor-1-i+n)%n], true
}

// Entries returns a copy of all available entries, most recent first.
func (r *Ring) Entries() []Entry {
	l := make([]Entry, r.Len())
	for i := range l {
		l[i], _ = r.Recent(i)
	}
	return l
}
