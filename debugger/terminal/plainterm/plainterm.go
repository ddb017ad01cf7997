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

// Package plainterm implements the Operator interface for the gopher8051
// debugger. It's a simple as simple can be and offers no special features.
// Views are drawn to the output stream one after the other and the terminal
// is left in whatever mode it started.
package plainterm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gopher8051/gopher8051/curated"
	"github.com/gopher8051/gopher8051/debugger/govern"
	"github.com/gopher8051/gopher8051/debugger/terminal"
	"golang.org/x/term"
)

// the geometry reported by the PlainTerminal
const (
	Columns = 80
	Rows    = 24
)

// the remainder of an escape sequence should arrive in this time
const escTimeout = 50 * time.Millisecond

type read struct {
	r   rune
	err error
}

// PlainTerminal is the most basic implementation of the terminal.Operator
// interface. Input is read in a separate goroutine so that reads can time out
// for any type of reader.
type PlainTerminal struct {
	input     io.Reader
	output    io.Writer
	realInput bool

	reads chan read

	// signals that end a wait in ReadKey() or Prompt()
	interrupt <-chan os.Signal

	// the first error from the input is sticky
	err error
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	pt := &PlainTerminal{
		input:  input,
		output: output,
	}
	if f, ok := input.(*os.File); ok {
		pt.realInput = term.IsTerminal(int(f.Fd()))
	}
	return pt
}

// Initialise implements the terminal.Operator interface.
func (pt *PlainTerminal) Initialise() error {
	pt.reads = make(chan read)

	go func() {
		rd := bufio.NewReader(pt.input)
		for {
			r, _, err := rd.ReadRune()
			pt.reads <- read{r: r, err: err}
			if err != nil {
				return
			}
		}
	}()

	return nil
}

// CleanUp implements the terminal.Operator interface.
func (pt *PlainTerminal) CleanUp() {
}

// SetInterrupt implements the terminal.Interruptible interface.
func (pt *PlainTerminal) SetInterrupt(sig <-chan os.Signal) {
	pt.interrupt = sig
}

// returned by next() when a signal arrives on the interrupt channel
var errInterrupted = errors.New("interrupted")

// next returns the next rune, waiting no longer than the timeout. a negative
// timeout means wait indefinitely. returns io.EOF on timeout.
func (pt *PlainTerminal) next(timeout time.Duration) (rune, error) {
	if pt.err != nil {
		return 0, pt.err
	}

	var rd read

	if timeout == 0 {
		select {
		case rd = <-pt.reads:
		case <-pt.interrupt:
			return 0, errInterrupted
		default:
			return 0, io.EOF
		}
	} else {
		var expire <-chan time.Time
		if timeout > 0 {
			t := time.NewTimer(timeout)
			defer t.Stop()
			expire = t.C
		}
		select {
		case rd = <-pt.reads:
		case <-pt.interrupt:
			return 0, errInterrupted
		case <-expire:
			return 0, io.EOF
		}
	}

	if rd.err != nil {
		pt.err = rd.err
		return 0, rd.err
	}

	return rd.r, nil
}

// ReadKey implements the terminal.Operator interface. End of input is
// reported as a terminal.UserQuit error.
func (pt *PlainTerminal) ReadKey(delay govern.Delay) (terminal.Key, error) {
	timeout := time.Duration(delay.Tenths) * 100 * time.Millisecond
	if delay.Block {
		timeout = -1
	}

	for {
		r, err := pt.next(timeout)
		if err == errInterrupted {
			return terminal.KeyInterrupt, nil
		}
		if err == io.EOF && pt.err == nil {
			return terminal.KeyNone, nil
		}
		if err != nil {
			return terminal.KeyNone, curated.Errorf(terminal.UserQuit, err)
		}

		// line endings are a feature of cooked input and not key presses
		if r == '\n' || r == '\r' {
			continue // for loop
		}

		return terminal.DecodeKey(r, func() (rune, error) {
			return pt.next(escTimeout)
		})
	}
}

// Prompt implements the terminal.Operator interface.
func (pt *PlainTerminal) Prompt(title string, def string) (string, bool) {
	if def != "" {
		fmt.Fprintf(pt.output, "%s [%s]: ", title, def)
	} else {
		fmt.Fprintf(pt.output, "%s: ", title)
	}

	var input []rune
	for {
		r, err := pt.next(-1)
		if err != nil {
			fmt.Fprintln(pt.output)
			return "", false
		}

		switch r {
		case '\r':
		case '\n':
			if len(input) == 0 {
				return def, true
			}
			return string(input), true
		case rune(terminal.KeyEsc):
			return "", false
		default:
			input = append(input, r)
		}
	}
}

// Popup implements the terminal.Operator interface. The operator is only
// asked to acknowledge the popup if the input is a real terminal.
func (pt *PlainTerminal) Popup(title string, message string) {
	fmt.Fprintf(pt.output, "* %s: %s\n", title, message)
	if pt.realInput {
		_, _ = pt.Prompt("press enter", "")
	}
}

// Geometry implements the terminal.Operator interface.
func (pt *PlainTerminal) Geometry() (int, int) {
	return Columns, Rows
}

// Resized implements the terminal.Operator interface.
func (pt *PlainTerminal) Resized() bool {
	return false
}

// Writer implements the terminal.Operator interface.
func (pt *PlainTerminal) Writer() io.Writer {
	return pt.output
}
