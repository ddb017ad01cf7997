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


// Package statsview serves live Go runtime charts for a running emulation.
// Heap size, goroutine count and GC pauses are the figures to watch when the
// scheduler is run at full speed or when a long port trace is being recorded.
//
// The package is only built with the statsview build tag. The charts are
// served by "github.com/go-echarts/statsview" at:
//
//	localhost:12651/debug/statsview
//
// with the standard pprof handlers under /debug/pprof/ on the same address.
//
// In a normal build Available() returns false and Launch() only reports
// that the server is missing.
package statsview
