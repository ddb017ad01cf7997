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

package tcellterm_test

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/gdamore/tcell"
	"github.com/gopher8051/gopher8051/curated"
	"github.com/gopher8051/gopher8051/debugger/govern"
	"github.com/gopher8051/gopher8051/debugger/terminal"
	"github.com/gopher8051/gopher8051/debugger/terminal/easyterm/ansi"
	"github.com/gopher8051/gopher8051/debugger/terminal/tcellterm"
	"github.com/gopher8051/gopher8051/test"
)

var block = govern.Delay{Block: true}

func newTerminal(t *testing.T) (*tcellterm.Terminal, tcell.SimulationScreen) {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	tt := tcellterm.NewTerminalWithScreen(scr)
	test.DemandSuccess(t, tt.Initialise())
	return tt, scr
}

// row returns the visible text of a screen row
func row(scr tcell.SimulationScreen, y int) string {
	cells, w, _ := scr.GetContents()
	var s strings.Builder
	for x := 0; x < w; x++ {
		b := cells[y*w+x].Bytes
		if len(b) == 0 {
			s.WriteRune(' ')
		} else {
			s.Write(b)
		}
	}
	return strings.TrimRight(s.String(), " ")
}

func style(scr tcell.SimulationScreen, x, y int) tcell.AttrMask {
	cells, w, _ := scr.GetContents()
	_, _, attr := cells[y*w+x].Style.Decompose()
	return attr
}

func TestWriter(t *testing.T) {
	tt, scr := newTerminal(t)
	defer tt.CleanUp()

	w := tt.Writer()
	fmt.Fprint(w, ansi.ClearScreen+"hello")
	fmt.Fprint(w, ansi.CursorPosition(2, 4)+"x")
	fmt.Fprint(w, ansi.CursorPosition(3, 0)+ansi.PenStyles["inverse"]+"inv"+ansi.NormalPen+"norm")

	// escape sequences and runes split across writes
	fmt.Fprint(w, "\033[")
	fmt.Fprint(w, "5;1Hab")
	_, _ = w.Write([]byte{0xc3})
	_, _ = w.Write([]byte{0xa9})

	// the screen is updated when the terminal waits for input
	_, err := tt.ReadKey(govern.Delay{})
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, row(scr, 0), "hello")
	test.ExpectEquality(t, row(scr, 2), "    x")
	test.ExpectEquality(t, row(scr, 3), "invnorm")
	test.ExpectEquality(t, row(scr, 4), "abé")

	test.ExpectSuccess(t, style(scr, 0, 3)&tcell.AttrReverse == tcell.AttrReverse)
	test.ExpectSuccess(t, style(scr, 3, 3)&tcell.AttrReverse == 0)

	// clear to end of line from the middle of a row
	fmt.Fprint(w, ansi.CursorPosition(0, 2)+ansi.ClearToEOL)
	fmt.Fprint(w, ansi.CursorPosition(3, 0)+ansi.ClearLine)
	_, _ = tt.ReadKey(govern.Delay{})
	test.ExpectEquality(t, row(scr, 0), "he")
	test.ExpectEquality(t, row(scr, 3), "")
}

func TestReadKeyInterrupt(t *testing.T) {
	tt, _ := newTerminal(t)
	defer tt.CleanUp()

	sig := make(chan os.Signal, 1)
	tt.SetInterrupt(sig)
	sig <- os.Interrupt

	k, err := tt.ReadKey(block)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, terminal.KeyInterrupt)

	tt.SetInterrupt(nil)
	k, err = tt.ReadKey(govern.Delay{Tenths: 1})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, terminal.KeyNone)
}

func TestReadKey(t *testing.T) {
	tt, scr := newTerminal(t)
	defer tt.CleanUp()

	scr.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
	scr.InjectKey(tcell.KeyF2, 0, tcell.ModNone)
	scr.InjectKey(tcell.KeyHome, 0, tcell.ModNone)
	scr.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	scr.InjectKey(tcell.KeyCtrlC, 0, tcell.ModNone)

	for _, exp := range []terminal.Key{'r', terminal.KeyF2, terminal.KeyHome, terminal.KeyEnter, terminal.KeyInterrupt} {
		k, err := tt.ReadKey(block)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, k, exp)
	}

	k, err := tt.ReadKey(govern.Delay{Tenths: 1})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, terminal.KeyNone)
}

func TestPrompt(t *testing.T) {
	tt, scr := newTerminal(t)
	defer tt.CleanUp()

	for _, r := range "123" {
		scr.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	scr.InjectKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	scr.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	s, ok := tt.Prompt("PC", "0000")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "12")

	// empty input returns the default
	scr.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	s, ok = tt.Prompt("PC", "0000")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "0000")

	scr.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	scr.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	_, ok = tt.Prompt("file", "")
	test.ExpectFailure(t, ok)

	// the prompt line is removed
	_, rows := tt.Geometry()
	test.ExpectEquality(t, row(scr, rows-1), "")
}

func TestPopup(t *testing.T) {
	tt, scr := newTerminal(t)
	defer tt.CleanUp()

	scr.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	tt.Popup("Breakpoint", "Breakpoint cleared.")

	// the acknowledging key is not passed on
	k, err := tt.ReadKey(govern.Delay{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, terminal.KeyNone)
}

func TestResize(t *testing.T) {
	tt, scr := newTerminal(t)
	defer tt.CleanUp()

	test.ExpectFailure(t, tt.Resized())

	scr.SetSize(100, 40)
	test.DemandSuccess(t, scr.PostEvent(tcell.NewEventResize(100, 40)))
	scr.InjectKey(tcell.KeyRune, 'v', tcell.ModNone)

	k, err := tt.ReadKey(block)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, terminal.Key('v'))

	test.ExpectSuccess(t, tt.Resized())
	test.ExpectFailure(t, tt.Resized())

	cols, rows := tt.Geometry()
	test.ExpectEquality(t, cols, 100)
	test.ExpectEquality(t, rows, 40)
}

func TestCleanUp(t *testing.T) {
	tt, _ := newTerminal(t)
	tt.CleanUp()

	_, err := tt.ReadKey(block)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, terminal.UserQuit))
}
