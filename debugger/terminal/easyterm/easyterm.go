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

package easyterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"unicode/utf8"

	"github.com/gopher8051/gopher8051/curated"
	"github.com/gopher8051/gopher8051/debugger/govern"
	"github.com/gopher8051/gopher8051/debugger/terminal/easyterm/ansi"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// NotATerminal is returned by NewTerminal() if either file is not a terminal.
const NotATerminal = "easyterm: %s is not a terminal"

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File

	// output is buffered and flushed whenever the terminal waits for input
	buf *bufio.Writer

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// the delay currently set in the terminal attributes
	delay    govern.Delay
	delaySet bool

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// fields below are accessed by the signal handler
	mu      sync.Mutex
	cols    int
	rows    int
	resized bool
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type.
func NewTerminal(input, output *os.File) (*Terminal, error) {
	if !term.IsTerminal(int(input.Fd())) {
		return nil, curated.Errorf(NotATerminal, input.Name())
	}
	if !term.IsTerminal(int(output.Fd())) {
		return nil, curated.Errorf(NotATerminal, output.Name())
	}

	return &Terminal{
		input:  input,
		output: output,
		buf:    bufio.NewWriter(output),
	}, nil
}

// Initialise implements the terminal.Operator interface.
func (pt *Terminal) Initialise() error {
	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}

	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	// ctrl-c is read as a key rather than raised as a signal. a blocking
	// read would otherwise never see it
	pt.cbreakAttr.Lflag &^= unix.ISIG

	if err := pt.setDelay(govern.Delay{Block: true}); err != nil {
		return err
	}

	_ = pt.UpdateGeometry()
	pt.resized = false

	pt.terminateHandlerSig = make(chan bool)
	pt.terminateHandlerAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, unix.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			pt.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = pt.UpdateGeometry()
			case <-pt.terminateHandlerSig:
				return
			}
		}
	}()

	pt.Print(ansi.AltScreen + ansi.CursorHide + ansi.ClearScreen)
	return pt.Flush()
}

// CleanUp implements the terminal.Operator interface.
func (pt *Terminal) CleanUp() {
	pt.terminateHandlerSig <- true
	<-pt.terminateHandlerAck

	pt.Print(ansi.NormalPen + ansi.CursorShow + ansi.MainScreen)
	_ = pt.Flush()
	pt.CanonicalMode()
}

// Print writes the formatted string to the output buffer.
func (pt *Terminal) Print(s string, a ...any) {
	if len(a) == 0 {
		pt.buf.WriteString(s)
		return
	}
	fmt.Fprintf(pt.buf, s, a...)
}

// Flush the output buffer to the terminal.
func (pt *Terminal) Flush() error {
	if err := pt.buf.Flush(); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	return nil
}

// Writer implements the terminal.Operator interface.
func (pt *Terminal) Writer() io.Writer {
	return pt.buf
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (pt *Terminal) UpdateGeometry() error {
	cols, rows, err := term.GetSize(int(pt.output.Fd()))
	if err != nil {
		return curated.Errorf("easyterm: error updating terminal geometry: %v", err)
	}

	pt.mu.Lock()
	defer pt.mu.Unlock()

	if cols != pt.cols || rows != pt.rows {
		pt.resized = true
	}
	pt.cols = cols
	pt.rows = rows

	return nil
}

// Geometry implements the terminal.Operator interface.
func (pt *Terminal) Geometry() (int, int) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.cols, pt.rows
}

// Resized implements the terminal.Operator interface.
func (pt *Terminal) Resized() bool {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	r := pt.resized
	pt.resized = false
	return r
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr)
	pt.delaySet = false
}

// FlushInput discards any input that has not yet been read.
func (pt *Terminal) FlushInput() error {
	return termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH)
}

// setDelay changes the cbreak attributes so that reads return after the
// delay.
func (pt *Terminal) setDelay(delay govern.Delay) error {
	if pt.delaySet && pt.delay == delay {
		return nil
	}

	attr := pt.cbreakAttr
	if delay.Block {
		attr.Cc[unix.VMIN] = 1
		attr.Cc[unix.VTIME] = 0
	} else {
		attr.Cc[unix.VMIN] = 0
		attr.Cc[unix.VTIME] = uint8(min(delay.Tenths, 255))
	}

	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &attr); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}

	pt.delay = delay
	pt.delaySet = true

	return nil
}

// readRune reads a single UTF-8 encoded rune. returns io.EOF if the read
// timed out.
func (pt *Terminal) readRune() (rune, error) {
	var b [utf8.UTFMax]byte
	var n int

	for n < len(b) {
		m, err := pt.input.Read(b[n : n+1])
		if m == 0 || err == io.EOF {
			if n == 0 {
				return 0, io.EOF
			}
			break // for loop
		}
		if err != nil {
			return 0, err
		}
		n += m
		if utf8.FullRune(b[:n]) {
			break // for loop
		}
	}

	r, _ := utf8.DecodeRune(b[:n])
	return r, nil
}
