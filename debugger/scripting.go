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

package debugger

import (
	"io"

	"github.com/gopher8051/gopher8051/debugger/script"
)

// RunScript runs the Lua script in the named file. Port reads are driven by
// the script for the duration and the operator is never consulted.
func (d *Debugger) RunScript(filename string, output io.Writer) error {
	scr := script.NewScript(script.Machine{
		Engine:     d.eng,
		Config:     &d.Config,
		Scheduler:  d.Scheduler,
		Breakpoint: &d.Breakpoint,
		History:    d.History,
		Ports:      d.Ports,
		Notices:    &d.notices,
		Reset:      d.reset,
	}, output)
	defer scr.Close()

	d.Ports.AttachStimulus(scr)
	defer d.Ports.AttachStimulus(&stimulus{op: d.op})

	return scr.RunFile(filename)
}
