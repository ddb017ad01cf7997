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

// Package test contains helper functions that remove the boilerplate from
// package tests.
//
// The Expect functions report a failure and allow the test to continue. The
// Demand functions stop the test immediately. Demand is useful when a value
// is used by later parts of the same test and so must be correct.
//
// Success and failure are judged according to the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The CompareWriter and RingWriter types implement io.Writer and should be
// used to capture output for comparison with expected strings.
package test
