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

// Package loader reads 8051 program images from disk (or over HTTP) and
// places them in code memory.
//
// Two formats are supported. Raw images are copied to code memory starting
// at address zero. Intel HEX object files place each data record at the
// address in the record. The format is chosen from the file extension unless
// the raw format is forced.
package loader
