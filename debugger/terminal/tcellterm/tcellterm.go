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

package tcellterm

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell"
	"github.com/gopher8051/gopher8051/curated"
	"github.com/gopher8051/gopher8051/debugger/govern"
	"github.com/gopher8051/gopher8051/debugger/terminal"
)

// Terminal implements the terminal.Operator interface with a tcell.Screen.
type Terminal struct {
	scr    tcell.Screen
	writer *screenWriter

	// events are read from the screen in a separate goroutine. the channel
	// is closed when the screen is finalised
	events chan tcell.Event

	mu      sync.Mutex
	resized bool

	// signals delivered while waiting for a key are seen as ctrl-c
	interrupt <-chan os.Signal
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type.
func NewTerminal() (*Terminal, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, curated.Errorf("tcellterm: %v", err)
	}
	return NewTerminalWithScreen(scr), nil
}

// NewTerminalWithScreen creates a Terminal for an existing tcell.Screen. The
// screen should not have been initialised.
func NewTerminalWithScreen(scr tcell.Screen) *Terminal {
	return &Terminal{
		scr:    scr,
		writer: &screenWriter{scr: scr, style: tcell.StyleDefault},
	}
}

// Initialise implements the terminal.Operator interface.
func (tt *Terminal) Initialise() error {
	if err := tt.scr.Init(); err != nil {
		return curated.Errorf("tcellterm: %v", err)
	}
	tt.scr.HideCursor()
	tt.scr.Clear()

	tt.events = make(chan tcell.Event)
	go func() {
		defer close(tt.events)
		for {
			ev := tt.scr.PollEvent()
			if ev == nil {
				return
			}
			tt.events <- ev
		}
	}()

	return nil
}

// CleanUp implements the terminal.Operator interface.
func (tt *Terminal) CleanUp() {
	tt.scr.Fini()
}

// Writer implements the terminal.Operator interface.
func (tt *Terminal) Writer() io.Writer {
	return tt.writer
}

// Geometry implements the terminal.Operator interface.
func (tt *Terminal) Geometry() (int, int) {
	return tt.scr.Size()
}

// Resized implements the terminal.Operator interface.
func (tt *Terminal) Resized() bool {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	r := tt.resized
	tt.resized = false
	return r
}

// nextKey returns the next key event. a negative timeout means wait
// indefinitely. returns false if the timeout expired.
func (tt *Terminal) nextKey(timeout time.Duration) (*tcell.EventKey, bool, error) {
	var expire <-chan time.Time
	if timeout >= 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		expire = t.C
	}

	for {
		select {
		case ev, ok := <-tt.events:
			if !ok {
				return nil, false, curated.Errorf(terminal.UserQuit, io.EOF)
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				return ev, true, nil
			case *tcell.EventResize:
				tt.mu.Lock()
				tt.resized = true
				tt.mu.Unlock()
				tt.scr.Sync()
			}
		case <-tt.interrupt:
			return tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), true, nil
		case <-expire:
			return nil, false, nil
		}
	}
}

// SetInterrupt implements the terminal.Interruptible interface.
func (tt *Terminal) SetInterrupt(sig <-chan os.Signal) {
	tt.interrupt = sig
}

// ReadKey implements the terminal.Operator interface. The screen is updated
// before waiting for input.
func (tt *Terminal) ReadKey(delay govern.Delay) (terminal.Key, error) {
	tt.scr.Show()

	timeout := time.Duration(delay.Tenths) * 100 * time.Millisecond
	if delay.Block {
		timeout = -1
	}

	ev, ok, err := tt.nextKey(timeout)
	if err != nil {
		return terminal.KeyNone, err
	}
	if !ok {
		return terminal.KeyNone, nil
	}

	return translate(ev), nil
}

var keys = map[tcell.Key]terminal.Key{
	tcell.KeyCtrlC:      terminal.KeyInterrupt,
	tcell.KeyEscape:     terminal.KeyEsc,
	tcell.KeyEnter:      terminal.KeyEnter,
	tcell.KeyTab:        terminal.KeyTab,
	tcell.KeyBackspace:  terminal.KeyBackspace,
	tcell.KeyBackspace2: terminal.KeyBackspace,
	tcell.KeyF1:         terminal.KeyF1,
	tcell.KeyF2:         terminal.KeyF2,
	tcell.KeyF3:         terminal.KeyF3,
	tcell.KeyF4:         terminal.KeyF4,
	tcell.KeyHome:       terminal.KeyHome,
	tcell.KeyEnd:        terminal.KeyEnd,
	tcell.KeyUp:         terminal.KeyUp,
	tcell.KeyDown:       terminal.KeyDown,
	tcell.KeyLeft:       terminal.KeyLeft,
	tcell.KeyRight:      terminal.KeyRight,
	tcell.KeyDelete:     terminal.KeyDelete,
}

func translate(ev *tcell.EventKey) terminal.Key {
	if ev.Key() == tcell.KeyRune {
		return terminal.Key(ev.Rune())
	}
	return keys[ev.Key()]
}

// the style used for prompts and popups
var boxStyle = tcell.StyleDefault.Reverse(true)

func (tt *Terminal) print(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		tt.scr.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// Prompt implements the terminal.Operator interface. The prompt is drawn on
// the bottom line of the screen.
func (tt *Terminal) Prompt(title string, def string) (string, bool) {
	cols, rows := tt.scr.Size()
	y := rows - 1

	var input []rune

	draw := func() {
		for x := 0; x < cols; x++ {
			tt.scr.SetContent(x, y, ' ', nil, boxStyle)
		}
		label := title
		if def != "" {
			label = title + " [" + def + "]"
		}
		x := tt.print(0, y, label+": ", boxStyle)
		x = tt.print(x, y, string(input), boxStyle)
		tt.scr.ShowCursor(x, y)
		tt.scr.Show()
	}

	defer func() {
		tt.scr.HideCursor()
		for x := 0; x < cols; x++ {
			tt.scr.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
		tt.scr.Show()
	}()

	for {
		draw()

		ev, _, err := tt.nextKey(-1)
		if err != nil {
			return "", false
		}

		switch k := translate(ev); k {
		case terminal.KeyEnter:
			if len(input) == 0 {
				return def, true
			}
			return string(input), true
		case terminal.KeyEsc, terminal.KeyInterrupt:
			return "", false
		case terminal.KeyBackspace, terminal.KeyDelete:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		default:
			if k.IsPrint() {
				input = append(input, rune(k))
			}
		}
	}
}

// Popup implements the terminal.Operator interface. The message is drawn in
// a box in the centre of the screen and remains until a key is pressed.
func (tt *Terminal) Popup(title string, message string) {
	cols, rows := tt.scr.Size()

	lines := strings.Split(strings.TrimRight(message, "\n"), "\n")
	lines = append(lines, "", "press any key")
	width := len(title) + 2
	for _, l := range lines {
		width = max(width, len(l))
	}
	width += 4
	height := len(lines) + 2

	left := max(0, (cols-width)/2)
	top := max(0, (rows-height)/2)
	right := left + width - 1
	bottom := top + height - 1

	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			tt.scr.SetContent(x, y, ' ', nil, boxStyle)
		}
	}
	for x := left + 1; x < right; x++ {
		tt.scr.SetContent(x, top, tcell.RuneHLine, nil, boxStyle)
		tt.scr.SetContent(x, bottom, tcell.RuneHLine, nil, boxStyle)
	}
	for y := top + 1; y < bottom; y++ {
		tt.scr.SetContent(left, y, tcell.RuneVLine, nil, boxStyle)
		tt.scr.SetContent(right, y, tcell.RuneVLine, nil, boxStyle)
	}
	tt.scr.SetContent(left, top, tcell.RuneULCorner, nil, boxStyle)
	tt.scr.SetContent(right, top, tcell.RuneURCorner, nil, boxStyle)
	tt.scr.SetContent(left, bottom, tcell.RuneLLCorner, nil, boxStyle)
	tt.scr.SetContent(right, bottom, tcell.RuneLRCorner, nil, boxStyle)

	tt.print(left+2, top, " "+title+" ", boxStyle.Bold(true))
	for i, l := range lines {
		tt.print(left+2, top+1+i, l, boxStyle)
	}

	tt.scr.Show()

	// the next key acknowledges the popup and is otherwise discarded
	_, _, _ = tt.nextKey(-1)

	tt.scr.Clear()
	tt.scr.Show()
}
