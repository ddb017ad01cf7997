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

package notifications

import "fmt"

// Notice describes events that interrupt the operator's view of the
// emulation.
type Notice string

// List of defined notifications.
const (
	// an armed breakpoint has been reached
	NotifyBreakpoint Notice = "NotifyBreakpoint"

	// the engine has raised an exception
	NotifyException Notice = "NotifyException"

	// a program has been loaded into code memory
	NotifyLoad Notice = "NotifyLoad"
)

// Title returns a short description of the notice suitable for a popup.
func (n Notice) Title() string {
	switch n {
	case NotifyBreakpoint:
		return "Breakpoint"
	case NotifyException:
		return "Exception"
	case NotifyLoad:
		return "Load"
	}
	return string(n)
}

// Notify is used for communication between the emulation and the debugger.
type Notify interface {
	Notify(notice Notice, detail string) error
}

// Pending is a notice waiting to be shown.
type Pending struct {
	Notice Notice
	Detail string
}

func (p Pending) String() string {
	return fmt.Sprintf("%s: %s", p.Notice.Title(), p.Detail)
}

// Queue implements the Notify interface. Notices are held in the order they
// were raised.
type Queue struct {
	pending []Pending
}

// Notify implements the Notify interface.
func (q *Queue) Notify(notice Notice, detail string) error {
	q.pending = append(q.pending, Pending{Notice: notice, Detail: detail})
	return nil
}

// Len returns the number of pending notices.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Drain calls f for every pending notice, oldest first, and empties the queue.
func (q *Queue) Drain(f func(Pending)) {
	p := q.pending
	q.pending = nil
	for _, n := range p {
		f(n)
	}
}
