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

// Package prefs facilitates the storage and retrieval of user preferences.
//
// Preference values are typed (Bool, Int, String, Generic) and are safe to
// read from more than one goroutine. Each type can have a hook function that
// runs before a new value is accepted (and which can reject it) and a hook
// that runs after the value has been stored.
//
// Values are associated with a key and a Disk instance. The Disk type saves
// and loads values to a plain text file, one "key :: value" entry per line.
// Many Disk instances can share a file; entries unknown to a Disk are
// preserved when it saves.
//
// The command line stack allows preference values to be specified for the
// duration of a single run, without being written to disk. The format of the
// string is:
//
//	key::value; key::value
//
// Values in the stack override values loaded from disk.
package prefs
