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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopher8051/gopher8051/test"
)

func TestPerformanceMode(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"PERFORMANCE", "-duration", "50ms", "-speed", "3"}, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "instructions/s"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "unpaced"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"PERFORMANCE", "-duration", "50ms", "-speed", "1"}, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "%"))
}

func TestPerformanceErrors(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"PERFORMANCE", "-clock", "0"}, w), 20)
	test.ExpectSuccess(t, strings.Contains(w.String(), "invalid clock frequency"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"PERFORMANCE", "-profile", "sideways"}, w), 20)

	w.Clear()
	test.ExpectEquality(t, launch([]string{"PERFORMANCE", "a.hex", "b.hex"}, w), 20)
	test.ExpectSuccess(t, strings.Contains(w.String(), "too many arguments"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"PERFORMANCE", "-duration", "50ms", "missing.hex"}, w), 20)
	test.ExpectSuccess(t, strings.Contains(w.String(), "loader"))
}

func TestVersionMode(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"VERSION"}, w), 0)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "Gopher8051 "))
}

func BenchmarkPerformance(b *testing.B) {
	w := &test.CompareWriter{}
	for i := 0; i < b.N; i++ {
		launch([]string{"PERFORMANCE", "-duration", "100ms"}, w)
	}
}

func TestScriptMode(t *testing.T) {
	dir := t.TempDir()

	prg := filepath.Join(dir, "prg.hex")
	test.DemandSuccess(t, os.WriteFile(prg, []byte(":03000000020100FA\n:00000001FF\n"), 0644))

	scr := filepath.Join(dir, "test.lua")
	test.DemandSuccess(t, os.WriteFile(scr, []byte("step()\nprint(string.format('%04x', pc()))\n"), 0644))

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"SCRIPT", "-prefsfile", filepath.Join(dir, "preferences"), scr, prg}, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "* Load: prg\n"))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "0100\n"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"SCRIPT", "-prefsfile", filepath.Join(dir, "preferences")}, w), 20)
	test.ExpectSuccess(t, strings.Contains(w.String(), "requires a script"))
}
