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
	"io"
	"strings"

	"github.com/gopher8051/gopher8051/debugger/govern"
	"github.com/gopher8051/gopher8051/debugger/terminal"
	"github.com/gopher8051/gopher8051/debugger/terminal/easyterm/ansi"
)

// the remainder of an escape sequence should arrive in this time
var escDelay = govern.Delay{Tenths: 1}

// ReadKey implements the terminal.Operator interface.
func (pt *Terminal) ReadKey(delay govern.Delay) (terminal.Key, error) {
	if err := pt.Flush(); err != nil {
		return terminal.KeyNone, err
	}

	if err := pt.setDelay(delay); err != nil {
		return terminal.KeyNone, err
	}

	r, err := pt.readRune()
	if err == io.EOF {
		return terminal.KeyNone, nil
	}
	if err != nil {
		return terminal.KeyNone, err
	}

	if r != rune(terminal.KeyEsc) {
		return terminal.DecodeKey(r, nil)
	}

	if err := pt.setDelay(escDelay); err != nil {
		return terminal.KeyNone, err
	}

	return terminal.DecodeKey(r, pt.readRune)
}

// Prompt implements the terminal.Operator interface. The prompt is drawn on
// the bottom line of the terminal.
func (pt *Terminal) Prompt(title string, def string) (string, bool) {
	_, rows := pt.Geometry()

	prompt := title
	if def != "" {
		prompt = prompt + " [" + def + "]"
	}
	prompt = ansi.PenStyles["inverse"] + prompt + ":" + ansi.NormalPen + " "

	var input []rune

	defer func() {
		pt.Print(ansi.CursorHide + ansi.CursorPosition(rows-1, 0) + ansi.ClearLine)
		_ = pt.Flush()
	}()

	for {
		pt.Print(ansi.CursorPosition(rows-1, 0) + ansi.ClearLine + prompt + string(input) + ansi.CursorShow)

		k, err := pt.ReadKey(govern.Delay{Block: true})
		if err != nil {
			return "", false
		}

		switch k {
		case terminal.KeyEnter:
			if len(input) == 0 {
				return def, true
			}
			return string(input), true
		case terminal.KeyEsc:
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
// a box in the centre of the terminal.
func (pt *Terminal) Popup(title string, message string) {
	cols, rows := pt.Geometry()

	lines := strings.Split(strings.TrimRight(message, "\n"), "\n")
	lines = append(lines, "", "press any key")

	w := len(title)
	for _, l := range lines {
		w = max(w, len(l))
	}
	w += 4

	row := max(0, (rows-len(lines)-2)/2)
	col := max(0, (cols-w)/2)
	pen := ansi.PenStyles["inverse"]

	pt.Print(ansi.CursorPosition(row, col) + pen + " " + title + strings.Repeat(" ", w-len(title)-1) + ansi.NormalPen)
	for i, l := range lines {
		pt.Print(ansi.CursorPosition(row+1+i, col) + pen + " " + ansi.NormalPen)
		pt.Print(" " + l + strings.Repeat(" ", w-len(l)-3))
		pt.Print(pen + " " + ansi.NormalPen)
	}
	pt.Print(ansi.CursorPosition(row+1+len(lines), col) + pen + strings.Repeat(" ", w) + ansi.NormalPen)

	// discard anything typed before the popup appeared
	_ = pt.Flush()
	_ = pt.FlushInput()

	_, _ = pt.ReadKey(govern.Delay{Block: true})
}
