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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/gopher8051/gopher8051/curated"
	"github.com/gopher8051/gopher8051/logger"
)

// Profile specifies which profiling (if any) should be performed.
type Profile int

// Valid profile values. Values can be combined.
const (
	ProfileNone   Profile = 0b0000
	ProfileCPU    Profile = 0b0001
	ProfileMem    Profile = 0b0010
	ProfileMemviz Profile = 0b0100
)

// ParseProfileString converts a string to a Profile value. The string is a
// comma separated list of profile names. "none" and the empty string are
// valid and mean no profiling.
func ParseProfileString(profile string) (Profile, error) {
	var p Profile

	for _, s := range strings.Split(profile, ",") {
		switch strings.ToUpper(strings.TrimSpace(s)) {
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		case "MEMVIZ":
			p |= ProfileMemviz
		case "ALL":
			p = ProfileCPU | ProfileMem | ProfileMemviz
		case "NONE", "":
		default:
			return ProfileNone, curated.Errorf("performance: unknown profile (%s)", s)
		}
	}

	return p, nil
}

// RunProfiler runs the supplied function "through" the requested Profile
// types. The filename tag is used to name the profile files.
func RunProfiler(profile Profile, filenameTag string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		fn := fmt.Sprintf("%s_cpu.profile", filenameTag)
		f, err := os.Create(fn)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				rerr = curated.Errorf("performance: %v", err)
			}
		}()

		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer pprof.StopCPUProfile()
		logger.Logf(logger.Allow, "performance", "cpu profile: %s", fn)
	}

	err := run()

	if profile&ProfileMem == ProfileMem {
		fn := fmt.Sprintf("%s_mem.profile", filenameTag)
		f, ferr := os.Create(fn)
		if ferr != nil {
			return curated.Errorf("performance: %v", ferr)
		}
		defer f.Close()

		runtime.GC()
		if ferr := pprof.WriteHeapProfile(f); ferr != nil {
			return curated.Errorf("performance: %v", ferr)
		}
		logger.Logf(logger.Allow, "performance", "mem profile: %s", fn)
	}

	return err
}

// Memviz writes a graphviz representation of the supplied values to the named
// file.
func Memviz(filename string, values ...any) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer f.Close()

	memviz.Map(f, values...)
	logger.Logf(logger.Allow, "performance", "memviz: %s", filename)

	return nil
}
