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

package performance_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopher8051/gopher8051/debugger/govern"
	"github.com/gopher8051/gopher8051/hardware/engine/freerun"
	"github.com/gopher8051/gopher8051/performance"
	"github.com/gopher8051/gopher8051/rewind"
	"github.com/gopher8051/gopher8051/test"
)

func TestCalcRate(t *testing.T) {
	rate, accuracy := performance.CalcRate(500000, 0.5, 12000000)
	test.ExpectApproximate(t, rate, 1000000, 0.001)
	test.ExpectApproximate(t, accuracy, 100, 0.001)

	rate, accuracy = performance.CalcRate(100, 0, 12000000)
	test.ExpectEquality(t, rate, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfileString("cpu,mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p&performance.ProfileMemviz, performance.ProfileMemviz)

	_, err = performance.ParseProfileString("cpu,gpu")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	out := &strings.Builder{}
	err := performance.Check(out, performance.ProfileNone, freerun.NewFreerun(), govern.SpeedFastest, 1200000, "50ms")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "instructions/s"))
	test.ExpectSuccess(t, strings.HasSuffix(out.String(), "%\n"))

	out.Reset()
	err = performance.Check(out, performance.ProfileNone, freerun.NewFreerun(), 3, 1200000, "20ms")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.HasSuffix(out.String(), "unpaced\n"))

	err = performance.Check(out, performance.ProfileNone, freerun.NewFreerun(), 3, 1200000, "soon")
	test.ExpectFailure(t, err)
}

func TestCheckException(t *testing.T) {
	eng := freerun.NewFreerun()

	// reserved opcode at the reset address
	eng.State().Code[0] = 0xa5

	err := performance.Check(&strings.Builder{}, performance.ProfileNone, eng, govern.SpeedFastest, 1200000, "1s")
	test.ExpectFailure(t, err)
}

func TestMemviz(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "memviz.dot")
	config := govern.NewRunConfig()
	err := performance.Memviz(fn, &config, rewind.NewRing(2))
	test.ExpectSuccess(t, err)

	d, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(d), "digraph"))
}
