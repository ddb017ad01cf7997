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

package notifications_test

import (
	"testing"

	"github.com/gopher8051/gopher8051/notifications"
	"github.com/gopher8051/gopher8051/test"
)

func TestQueue(t *testing.T) {
	var q notifications.Queue
	var n notifications.Notify = &q

	test.ExpectSuccess(t, n.Notify(notifications.NotifyBreakpoint, "0x0010"))
	test.ExpectSuccess(t, n.Notify(notifications.NotifyException, "stack"))
	test.ExpectEquality(t, q.Len(), 2)

	var s []string
	q.Drain(func(p notifications.Pending) {
		s = append(s, p.String())
	})
	test.ExpectEquality(t, q.Len(), 0)
	test.DemandEquality(t, len(s), 2)
	test.ExpectEquality(t, s[0], "Breakpoint: 0x0010")
	test.ExpectEquality(t, s[1], "Exception: stack")

	// notices raised while draining are kept for the next drain
	test.ExpectSuccess(t, q.Notify(notifications.NotifyLoad, "a.hex"))
	q.Drain(func(p notifications.Pending) {
		_ = q.Notify(notifications.NotifyLoad, "b.hex")
	})
	test.ExpectEquality(t, q.Len(), 1)
}
