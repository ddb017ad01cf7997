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

package terminal

import (
	"io"
	"os"

	"github.com/gopher8051/gopher8051/debugger/govern"
)

// Operator defines the operations required by the debugger's interface with
// the operator.
type Operator interface {
	// Initialise the terminal. not all implementations will need to do
	// anything.
	Initialise() error

	// Restore the terminal to it's original state, if possible.
	CleanUp()

	// ReadKey waits for a key press for no longer than the delay. KeyNone is
	// returned if the delay expires without a key being pressed.
	ReadKey(delay govern.Delay) (Key, error)

	// Prompt asks the operator for a line of text. The default value is
	// returned if the operator enters an empty line. The boolean return value
	// is false if the operator cancelled the prompt.
	Prompt(title string, def string) (string, bool)

	// Popup shows a message and waits for the operator to acknowledge it.
	Popup(title string, message string)

	// Geometry returns the number of columns and rows in the terminal.
	Geometry() (int, int)

	// Resized returns true if the terminal has changed size since the last
	// call to Resized().
	Resized() bool

	// Writer returns the output stream for the views.
	Writer() io.Writer
}

// Interruptible is implemented by operators that can be woken from a
// blocking ReadKey() by a signal. A signal arriving on the channel while
// ReadKey() waits is returned as KeyInterrupt. A nil channel detaches it.
type Interruptible interface {
	SetInterrupt(sig <-chan os.Signal)
}

// Sentinal errors returned by ReadKey().
const (
	UserInterrupt = "user interrupt"
	UserQuit      = "user quit: %v"
)
