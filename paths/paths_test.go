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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/gopher8051/gopher8051/paths"
	"github.com/gopher8051/gopher8051/test"
)

func TestLocalResourcePath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)

	tmp := t.TempDir()
	test.DemandSuccess(t, os.Chdir(tmp))
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Mkdir(".gopher8051", 0700))

	pth, err := paths.ResourcePath("traces", "port.wav")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopher8051", "traces", "port.wav"))

	// sub-directory has been created
	fi, err := os.Stat(filepath.Join(".gopher8051", "traces"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())

	pth, err = paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopher8051", "preferences"))
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("trace", "/tmp/blinky.hex")
	test.ExpectSuccess(t, regexp.MustCompile(`^trace_blinky_\d{8}_\d{6}$`).MatchString(fn), fn)

	fn = paths.UniqueFilename("trace", "")
	test.ExpectSuccess(t, regexp.MustCompile(`^trace_\d{8}_\d{6}$`).MatchString(fn), fn)
}
