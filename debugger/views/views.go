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

package views

import (
	"fmt"

	"github.com/gopher8051/gopher8051/curated"
	"github.com/gopher8051/gopher8051/debugger/terminal"
	"github.com/gopher8051/gopher8051/logger"
)

// ID identifies one of the debugger's views.
type ID int

// List of valid view IDs.
const (
	Main ID = iota
	LogicBoard
	MemEditor
	Options

	// NumViews is the number of valid view IDs
	NumViews
)

func (id ID) String() string {
	switch id {
	case Main:
		return "main"
	case LogicBoard:
		return "logic board"
	case MemEditor:
		return "memory editor"
	case Options:
		return "options"
	}
	return fmt.Sprintf("view(%d)", int(id))
}

// View defines the operations required by each of the debugger's views.
type View interface {
	// Build draws the static parts of the view.
	Build()

	// Wipe tears down the view. It is always called before a different view
	// is built.
	Wipe()

	// Update redraws the dynamic parts of the view.
	Update()

	// HandleKey is given the key presses that the debugger does not handle
	// itself. Returns true if the key was used by the view.
	HandleKey(key terminal.Key) bool
}

// UnknownView is returned by Change() for an invalid view ID.
const UnknownView = "views: unknown view (%v)"

// Selector holds the active view.
type Selector struct {
	views   [NumViews]View
	current ID
}

// NewSelector is the preferred method of initialisation for the Selector
// type. The Main view is the initial view but it is not built until the
// first call to Refresh().
func NewSelector(main, logicBoard, memEditor, options View) *Selector {
	return &Selector{
		views: [NumViews]View{
			Main:       main,
			LogicBoard: logicBoard,
			MemEditor:  memEditor,
			Options:    options,
		},
		current: Main,
	}
}

// Current returns the ID of the active view.
func (sel *Selector) Current() ID {
	return sel.current
}

// Is returns true if the view is active.
func (sel *Selector) Is(id ID) bool {
	return sel.current == id
}

// Change the active view.
func (sel *Selector) Change(id ID) error {
	if id < 0 || id >= NumViews {
		return curated.Errorf(UnknownView, id)
	}

	sel.views[sel.current].Wipe()
	if id != sel.current {
		logger.Logf(logger.Allow, "views", "%s -> %s", sel.current, id)
	}
	sel.current = id
	sel.views[sel.current].Build()

	return nil
}

// Next makes the next view active, returning to the Main view after the last
// view.
func (sel *Selector) Next() {
	_ = sel.Change((sel.current + 1) % NumViews)
}

// Refresh tears down and rebuilds the active view.
func (sel *Selector) Refresh() {
	_ = sel.Change(sel.current)
}

// Update redraws the active view.
func (sel *Selector) Update() {
	sel.views[sel.current].Update()
}

// HandleKey passes the key to the active view.
func (sel *Selector) HandleKey(key terminal.Key) bool {
	return sel.views[sel.current].HandleKey(key)
}
