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

// Package paths contains functions to prepare paths to gopher8051 resources.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory. For example, the path to the preferences
// file:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// If the directory ".gopher8051" is present in the current directory then it
// is used as the base path. Otherwise the base path is "gopher8051" in the
// user's config directory, as reported by os.UserConfigDir(). On a modern
// Linux system the example above returns:
//
//	/home/user/.config/gopher8051/preferences
//
// The base directory and any sub-directories are created if necessary. The
// resource itself is not created.
package paths
