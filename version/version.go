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

// Package version reports the version of the program. The version number is
// set by the linker when building a release:
//
//	go build -ldflags "-X github.com/gopher8051/gopher8051/version.number=v0.1.0"
//
// Otherwise the version is taken from the build information embedded by the
// Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher8051"

// set by the linker
var number string

// Version returns the version string and the VCS revision. The version string
// is "unreleased" if the program was built from a VCS checkout without a
// version number and "local" if there is no VCS information at all.
func Version() (string, string) {
	var vcs bool
	var revision string
	var modified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
	}

	if revision == "" {
		revision = "no revision information"
	} else if modified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	switch {
	case number != "":
		return number, revision
	case vcs:
		return "unreleased", revision
	}
	return "local", revision
}

// String returns the application name and version as a single string.
func String() string {
	v, _ := Version()
	return fmt.Sprintf("%s %s", ApplicationName, v)
}
