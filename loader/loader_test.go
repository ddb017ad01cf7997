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

package loader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopher8051/gopher8051/curated"
	"github.com/gopher8051/gopher8051/loader"
	"github.com/gopher8051/gopher8051/test"
)

const program = `:03000000020100FA
:04010000E590F5A0F1
:00000001FF
`

func TestHex(t *testing.T) {
	code := make([]uint8, 0x10000)
	n, err := loader.Hex(strings.NewReader(program), code)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 7)
	test.ExpectEquality(t, code[0], 0x02)
	test.ExpectEquality(t, code[1], 0x01)
	test.ExpectEquality(t, code[2], 0x00)
	test.ExpectEquality(t, code[0x100], 0xe5)
	test.ExpectEquality(t, code[0x103], 0xa0)
}

func TestHexErrors(t *testing.T) {
	code := make([]uint8, 0x10000)

	cases := []string{
		// checksum
		":03000000020100FB\n:00000001FF\n",

		// missing start code
		"03000000020100FA\n",

		// length doesn't match
		":0400000002010079\n",

		// not hex
		":03000000020100ZZ\n",

		// no end of file record
		":03000000020100FA\n",

		// out of range with extended linear address
		":020000040001F9\n:03000000020100FA\n:00000001FF\n",

		// unknown record type and no end of file record
		":00000007F9\n",

		// malformed end of file record
		":01000001FFFF\n",
	}

	for i, c := range cases {
		_, err := loader.Hex(strings.NewReader(c), code)
		test.ExpectFailure(t, err, i)
		test.ExpectSuccess(t, curated.Is(err, loader.LoadError), i)
	}
}

func TestHexAddressing(t *testing.T) {
	code := make([]uint8, 0x10000)

	// extended segment address and a start segment address record
	const segmented = `:020000020100FB
:0400000300000100F8
:0100000055AA
:00000001FF
`
	n, err := loader.Hex(strings.NewReader(segmented), code)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 1)
	test.ExpectEquality(t, code[0x1000], 0x55)
	test.ExpectEquality(t, code[0], 0x00)
}

func TestHexRange(t *testing.T) {
	// the second data record falls outside of a small code memory. nothing
	// is copied, not even the record that would fit
	code := make([]uint8, 0x10)
	n, err := loader.Hex(strings.NewReader(program), code)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, loader.LoadError))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "out of range"))
	test.ExpectEquality(t, n, 0)
	test.ExpectEquality(t, code[0], 0x00)
}

func TestRaw(t *testing.T) {
	code := make([]uint8, 16)
	n, err := loader.Raw([]byte{1, 2, 3}, code)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 3)
	test.ExpectEquality(t, code[2], 3)

	_, err = loader.Raw(make([]byte, 17), code)
	test.ExpectFailure(t, err)
}

func TestLoader(t *testing.T) {
	dir := t.TempDir()

	fn := filepath.Join(dir, "prog.hex")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(program), 0o644))

	ld := loader.NewLoader(fn, false)
	test.ExpectEquality(t, ld.Format, loader.FormatHex)
	test.ExpectEquality(t, ld.ShortName(), "prog")
	test.ExpectFailure(t, ld.HasLoaded())

	code := make([]uint8, 0x10000)
	n, err := ld.Attach(code)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 7)
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, len(ld.Hash), 40)

	// raw format is forced by the argument or chosen by extension
	ld = loader.NewLoader(fn, true)
	test.ExpectEquality(t, ld.Format, loader.FormatRaw)
	ld = loader.NewLoader(filepath.Join(dir, "prog.bin"), false)
	test.ExpectEquality(t, ld.Format, loader.FormatRaw)

	// missing file
	_, err = ld.Attach(code)
	test.ExpectFailure(t, err)

	// wrong hash
	ld = loader.NewLoader(fn, false)
	ld.Hash = "0000"
	_, err = ld.Attach(code)
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, ld.HasLoaded())
}
