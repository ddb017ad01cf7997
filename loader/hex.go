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


package loader

import (
	"fmt"
	"io"

	"github.com/gopher8051/gopher8051/curated"
	"github.com/marcinbor85/gohex"
)

// Hex reads an Intel HEX object file and places data records in code
// memory. Returns the number of bytes placed in code memory.
//
// Extended address records are accepted if they leave the data inside
// code memory. Start address records are ignored.
func Hex(r io.Reader, code []uint8) (int, error) {
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(r); err != nil {
		return 0, curated.Errorf(LoadError, err)
	}

	// check every segment before touching code memory so that a failed
	// load leaves the previous program intact
	segs := mem.GetDataSegments()
	for _, seg := range segs {
		if int(seg.Address)+len(seg.Data) > len(code) {
			return 0, curated.Errorf(LoadError, fmt.Sprintf("address out of range (%#x)", seg.Address))
		}
	}

	var n int
	for _, seg := range segs {
		n += copy(code[seg.Address:], seg.Data)
	}

	return n, nil
}
