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


//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/gopher8051/gopher8051/logger"
)

// Address the charts are served on.
const Address = "localhost:12651"

const path = "/debug/statsview"

// Launch starts the chart server in the background and tells the user where
// to find it. The emulation does not wait for the server and a failure to
// start it is only logged.
func Launch(output io.Writer) {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	go func() {
		if err := statsview.New().Start(); err != nil {
			logger.Logf(logger.Allow, "statsview", "chart server: %v", err)
		}
	}()

	fmt.Fprintf(output, "emulation runtime charts at http://%s%s\n", Address, path)
}

// Available is true in builds with the statsview tag.
func Available() bool {
	return true
}
