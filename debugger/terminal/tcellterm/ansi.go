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
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell"
)

// screenWriter interprets ANSI output and draws it on a tcell.Screen.
type screenWriter struct {
	scr tcell.Screen

	row   int
	col   int
	style tcell.Style

	// position saved by the CursorStore sequence
	savedRow int
	savedCol int

	// an incomplete escape sequence or rune from the end of the previous
	// write
	pending []byte
}

func (w *screenWriter) Write(p []byte) (int, error) {
	b := append(w.pending, p...)
	w.pending = nil

	for i := 0; i < len(b); {
		if b[i] == 0x1b {
			n, ok := w.escape(b[i:])
			if !ok {
				w.pending = append([]byte{}, b[i:]...)
				break // for loop
			}
			i += n
			continue // for loop
		}

		if !utf8.FullRune(b[i:]) {
			w.pending = append([]byte{}, b[i:]...)
			break // for loop
		}

		r, n := utf8.DecodeRune(b[i:])
		i += n

		switch r {
		case '\n':
			w.row++
			w.col = 0
		case '\r':
			w.col = 0
		default:
			w.scr.SetContent(w.col, w.row, r, nil, w.style)
			w.col++
		}
	}

	return len(p), nil
}

// escape handles the escape sequence at the start of b. returns the length of
// the sequence or false if the sequence is incomplete. unrecognised sequences
// are consumed and ignored
func (w *screenWriter) escape(b []byte) (int, bool) {
	if len(b) < 2 {
		return 0, false
	}
	if b[1] != '[' {
		return 2, true
	}

	// find the final byte of the control sequence
	end := -1
	for i := 2; i < len(b); i++ {
		if b[i] >= 0x40 && b[i] <= 0x7e {
			end = i
			break // for loop
		}
	}
	if end == -1 {
		return 0, false
	}

	params := string(b[2:end])
	private := strings.HasPrefix(params, "?")
	if private {
		params = params[1:]
	}

	var args []int
	if params != "" {
		for _, s := range strings.Split(params, ";") {
			n, _ := strconv.Atoi(s)
			args = append(args, n)
		}
	}

	arg := func(i int, def int) int {
		if i < len(args) && args[i] != 0 {
			return args[i]
		}
		return def
	}

	switch b[end] {
	case 'H', 'f':
		w.row = arg(0, 1) - 1
		w.col = arg(1, 1) - 1
	case 'A':
		w.row = max(0, w.row-arg(0, 1))
	case 'B':
		w.row += arg(0, 1)
	case 'C':
		w.col += arg(0, 1)
	case 'D':
		w.col = max(0, w.col-arg(0, 1))
	case 'J':
		if arg(0, 0) == 2 {
			w.scr.Clear()
		} else {
			w.clearFrom(w.row, w.col)
		}
	case 'K':
		switch arg(0, 0) {
		case 2:
			w.clearLine(w.row, 0)
		default:
			w.clearLine(w.row, w.col)
		}
	case 'm':
		w.sgr(args)
	case 's':
		w.savedRow, w.savedCol = w.row, w.col
	case 'u':
		w.row, w.col = w.savedRow, w.savedCol
	case 'h', 'l':
		// cursor visibility and the alternate screen are managed by tcell
	}

	return end + 1, true
}

func (w *screenWriter) clearLine(row, col int) {
	cols, _ := w.scr.Size()
	for x := col; x < cols; x++ {
		w.scr.SetContent(x, row, ' ', nil, w.style)
	}
}

func (w *screenWriter) clearFrom(row, col int) {
	_, rows := w.scr.Size()
	w.clearLine(row, col)
	for y := row + 1; y < rows; y++ {
		w.clearLine(y, 0)
	}
}

// sgr applies the select graphic rendition parameters to the current style
func (w *screenWriter) sgr(args []int) {
	if len(args) == 0 {
		args = []int{0}
	}

	for _, a := range args {
		switch {
		case a == 0:
			w.style = tcell.StyleDefault
		case a == 1:
			w.style = w.style.Bold(true)
		case a == 2:
			w.style = w.style.Dim(true)
		case a == 4:
			w.style = w.style.Underline(true)
		case a == 7:
			w.style = w.style.Reverse(true)
		case a == 22:
			w.style = w.style.Bold(false).Dim(false)
		case a == 24:
			w.style = w.style.Underline(false)
		case a == 27:
			w.style = w.style.Reverse(false)
		case a >= 30 && a <= 37:
			w.style = w.style.Foreground(tcell.ColorBlack + tcell.Color(a-30))
		case a == 39:
			w.style = w.style.Foreground(tcell.ColorDefault)
		case a >= 40 && a <= 47:
			w.style = w.style.Background(tcell.ColorBlack + tcell.Color(a-40))
		case a == 49:
			w.style = w.style.Background(tcell.ColorDefault)
		case a >= 90 && a <= 97:
			w.style = w.style.Foreground(tcell.ColorBlack + tcell.Color(a-90+8))
		case a >= 100 && a <= 107:
			w.style = w.style.Background(tcell.ColorBlack + tcell.Color(a-100+8))
		}
	}
}
