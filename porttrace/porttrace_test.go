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

package porttrace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/gopher8051/gopher8051/hardware/ports"
	"github.com/gopher8051/gopher8051/porttrace"
	"github.com/gopher8051/gopher8051/test"
)

type latches [ports.NumPorts]uint8

func (l *latches) OutputLatch(p ports.Port) uint8 {
	return l[p]
}

func TestRecorder(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "trace.wav")

	var l latches
	rec, err := porttrace.NewRecorder(fn, &l, 12000000)
	test.DemandSuccess(t, err)

	// cycles that don't retire an instruction are not recorded
	l = latches{0xff, 0x00, 0x55, 0xaa}
	rec.Tick(false)
	rec.Tick(true)
	l = latches{0x01, 0x02, 0x03, 0x04}
	rec.Tick(true)
	test.ExpectEquality(t, rec.Samples(), 2)

	test.DemandSuccess(t, rec.End())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, int(dec.NumChans), ports.NumPorts)
	test.ExpectEquality(t, int(dec.BitDepth), 8)
	test.ExpectEquality(t, int(dec.SampleRate), 1000000)

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(buf.Data), 8)

	exp := []int{0xff, 0x00, 0x55, 0xaa, 0x01, 0x02, 0x03, 0x04}
	for i := range exp {
		test.ExpectEquality(t, buf.Data[i], exp[i], i)
	}
}

func TestRecorderErrors(t *testing.T) {
	var l latches
	_, err := porttrace.NewRecorder("", &l, 12000000)
	test.ExpectFailure(t, err)
	_, err = porttrace.NewRecorder("trace.wav", &l, 0)
	test.ExpectFailure(t, err)
}
