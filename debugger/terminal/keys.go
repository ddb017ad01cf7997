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
	"fmt"
	"io"
	"unicode"
)

// Key is a single key press. Printable keys are represented by their rune.
// Special keys have values outside of the unicode range.
type Key rune

// List of keys with ASCII values.
const (
	KeyNone      Key = 0
	KeyInterrupt Key = 3
	KeyTab       Key = '\t'
	KeyEnter     Key = '\r'
	KeyEsc       Key = 27
	KeyBackspace Key = 127
)

// List of special keys.
const (
	KeyF1 Key = unicode.MaxRune + 1 + iota
	KeyF2
	KeyF3
	KeyF4
	KeyHome
	KeyEnd
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyDelete
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyInterrupt: "ctrl-c",
	KeyTab:       "tab",
	KeyEnter:     "enter",
	KeyEsc:       "esc",
	KeyBackspace: "backspace",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyDelete:    "delete",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	if unicode.IsPrint(rune(k)) {
		return string(rune(k))
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// IsPrint returns true if the key is a printable character.
func (k Key) IsPrint() bool {
	return k > 0 && k <= unicode.MaxRune && unicode.IsPrint(rune(k))
}

// list of characters that can follow KeyEsc
const (
	escCursor = '['
	escSS3    = 'O'
)

// the final byte of an escape sequence
var finals = map[rune]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
}

// the numeric parameter of a "CSI n ~" sequence
var tildes = map[int]Key{
	1:  KeyHome,
	3:  KeyDelete,
	4:  KeyEnd,
	7:  KeyHome,
	8:  KeyEnd,
	11: KeyF1,
	12: KeyF2,
	13: KeyF3,
	14: KeyF4,
}

// DecodeKey converts the first rune of a key press into a Key. If the first
// rune begins an escape sequence, the rest of the sequence is read with the
// next function. The next function should return io.EOF if no more input is
// immediately available, in which case the escape key itself was pressed.
//
// Unrecognised escape sequences are consumed and reported as KeyNone.
func DecodeKey(first rune, next func() (rune, error)) (Key, error) {
	switch first {
	case '\n':
		return KeyEnter, nil
	case 8:
		return KeyBackspace, nil
	case rune(KeyEsc):
	default:
		return Key(first), nil
	}

	r, err := next()
	if err == io.EOF {
		return KeyEsc, nil
	}
	if err != nil {
		return KeyNone, err
	}

	switch r {
	case escSS3:
		r, err = next()
		if err != nil {
			return KeyNone, ignoreEOF(err)
		}
		return finals[r], nil

	case escCursor:
		n := 0
		for {
			r, err = next()
			if err != nil {
				return KeyNone, ignoreEOF(err)
			}
			if r >= '0' && r <= '9' {
				n = n*10 + int(r-'0')
				continue
			}
			if r == ';' {
				// modifiers are ignored
				n = 0
				continue
			}
			break // for loop
		}
		if r == '~' {
			return tildes[n], nil
		}
		return finals[r], nil
	}

	// alt key combinations are treated as the key itself
	return Key(r), nil
}

func ignoreEOF(err error) error {
	if err == io.EOF {
		return nil
	}
	return err
}
