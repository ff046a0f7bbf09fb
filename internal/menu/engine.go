package menu

// Engine owns the navigation state for one display: the active table, the
// cursor, the visible window, and the edit-mode flag. All input enters
// through the handle methods below; each call runs to completion, including
// any callbacks it fires, before the next is accepted. The engine is not
// safe for concurrent use — callers with multiple input sources must
// serialize events before dispatch.
type Engine struct {
	rows int
	cols int

	table  *Table
	cursor int
	top    int
	bottom int

	editing bool
	enabled bool
	redraw  func()
}

// NewEngine returns an engine showing the root table with the cursor on the
// first visible entry. rows and cols describe the attached display.
func NewEngine(root *Table, rows, cols int) *Engine {
	if rows < 1 {
		rows = 1
	}
	e := &Engine{
		rows:    rows,
		cols:    cols,
		table:   root,
		cursor:  1,
		top:     1,
		bottom:  rows,
		enabled: true,
	}
	e.normalizeCursor()
	return e
}

// SetRedraw registers the hook invoked after every state-changing
// transition. The engine decides what changed; drawing is collaborator work.
func (e *Engine) SetRedraw(fn func()) { e.redraw = fn }

// Rows returns the display row count.
func (e *Engine) Rows() int { return e.rows }

// Cols returns the display column count.
func (e *Engine) Cols() int { return e.cols }

// Table returns the currently active table.
func (e *Engine) Table() *Table { return e.table }

// CursorPosition returns the cursor index into the active table.
func (e *Engine) CursorPosition() int { return e.cursor }

// Window returns the inclusive visible bounds.
func (e *Engine) Window() (top, bottom int) { return e.top, e.bottom }

// IsEditing reports whether edit mode is active.
func (e *Engine) IsEditing() bool { return e.editing }

// AtRoot reports whether the active table is the root table.
func (e *Engine) AtRoot() bool { return !e.table.IsSubMenu() }

// Current returns the item under the cursor.
func (e *Engine) Current() *Item { return e.table.At(e.cursor) }

// ItemAt returns the item at pos in the active table, or nil.
func (e *Engine) ItemAt(pos int) *Item { return e.table.At(pos) }

// Hide suppresses redraw notifications so a collaborator can take over the
// display. Navigation state is untouched.
func (e *Engine) Hide() { e.enabled = false }

// Show re-enables redraw notifications and repaints from the exact state the
// menu was left in.
func (e *Engine) Show() {
	e.enabled = true
	e.notify()
}

// Hidden reports whether redraw notifications are suppressed.
func (e *Engine) Hidden() bool { return !e.enabled }

func (e *Engine) notify() {
	if e.enabled && e.redraw != nil {
		e.redraw()
	}
}

// cursorLine returns the display row the cursor occupies.
func (e *Engine) cursorLine() int {
	line := clamp(e.cursor-e.top, 0, e.rows-1)
	if e.table.AllHiddenAbove(e.cursor) {
		line = 0
	}
	return line
}

// normalizeCursor moves the cursor off a hidden or structural entry onto the
// first visible one. Tables whose entries are all hidden keep the cursor at
// index 1; nothing is drawn selectable in that case.
func (e *Engine) normalizeCursor() {
	if e.table.validCursor(e.cursor) {
		return
	}
	if pos, ok := e.table.firstVisible(); ok {
		e.cursor = pos
		return
	}
	e.cursor = e.table.firstEntry()
}

// HandleUp moves the cursor to the previous visible entry. It reports false
// while editing or when no visible entry exists above.
func (e *Engine) HandleUp() bool {
	if e.editing {
		return false
	}
	next, ok := e.table.prevVisible(e.cursor)
	if !ok {
		return false
	}
	e.cursor = next
	if e.cursor < e.top {
		// Crossing the top edge slides both bounds up by the number of
		// hidden entries skipped plus one, which is exactly what it takes
		// to keep the cursor inside the window. Moves inside the window
		// leave it untouched.
		e.top = e.cursor
		e.bottom = e.top + e.rows - 1
	}
	e.notify()
	return true
}

// HandleDown moves the cursor to the next visible entry. It reports false
// while editing or when no visible entry exists below.
func (e *Engine) HandleDown() bool {
	if e.editing {
		return false
	}
	next, ok := e.table.nextVisible(e.cursor)
	if !ok {
		return false
	}
	e.cursor = next
	if e.cursor > e.bottom {
		// Mirror of the up rule.
		e.bottom = e.cursor
		e.top = e.bottom - e.rows + 1
	}
	e.notify()
	return true
}

// HandleSelect performs the enter action for the item under the cursor:
// commands fire, toggles flip, list/progress/text items enter edit mode, and
// sub-menu links descend.
func (e *Engine) HandleSelect() bool {
	// The cursor parks on a hidden entry when every entry is hidden; such
	// an entry never activates.
	if !e.table.validCursor(e.cursor) {
		return false
	}
	it := e.Current()
	if it == nil {
		return false
	}
	switch it.kind {
	case KindCommand:
		it.fireAction()
		e.notify()
		return true
	case KindToggle:
		it.on = !it.on
		it.fireToggle()
		e.notify()
		return true
	case KindList, KindProgress:
		if e.editing {
			return false
		}
		it.saveSnapshot()
		e.editing = true
		e.notify()
		return true
	case KindText:
		if e.editing {
			return false
		}
		e.editing = true
		e.notify()
		return true
	case KindSubMenu:
		if it.child == nil {
			return false
		}
		e.descend(it.child)
		return true
	case KindHeader, KindEnd:
		return false
	}
	return false
}

// HandleLeft performs the cycle-left gesture: lists wrap backwards, progress
// values decrement while editing. Text caret movement belongs to the editing
// collaborator, so text items report false here.
func (e *Engine) HandleLeft() bool {
	return e.cycle(-1)
}

// HandleRight performs the cycle-right gesture: lists wrap forwards,
// progress values increment while editing.
func (e *Engine) HandleRight() bool {
	return e.cycle(1)
}

func (e *Engine) cycle(direction int) bool {
	if !e.table.validCursor(e.cursor) {
		return false
	}
	it := e.Current()
	if it == nil {
		return false
	}
	switch it.kind {
	case KindList:
		n := len(it.options)
		if n == 0 {
			return false
		}
		// Wrap in both directions; the saturating SetIndex path is bypassed
		// on purpose.
		next := (it.index + direction + n) % n
		if next == it.index {
			return false
		}
		it.index = next
		if it.onChange != nil {
			it.onChange(it.index)
		}
		e.notify()
		return true
	case KindProgress:
		if !e.editing {
			return false
		}
		if direction > 0 {
			it.Increment()
		} else {
			it.Decrement()
		}
		// Redraw even when saturated so the edit glyph keeps blinking in
		// place on displays that repaint per input.
		e.notify()
		return true
	case KindCommand, KindToggle, KindText, KindSubMenu, KindHeader, KindEnd:
		return false
	}
	return false
}

// HandleBack leaves edit mode when editing, otherwise ascends out of a
// sub-menu. cancelled selects between committing the edited value and
// restoring the snapshot taken when editing began. Leaving edit mode on a
// list or progress item always fires the commit callback — cancel only
// changes the value it carries. Downstream consumers rely on receiving a
// notification after every edit, so a cancelled edit is not silent.
func (e *Engine) HandleBack(cancelled bool) bool {
	if e.editing {
		it := e.Current()
		switch it.kind {
		case KindList, KindProgress:
			e.editing = false
			if cancelled {
				it.restoreSnapshot()
			}
			it.fireCommit()
			e.notify()
			return true
		case KindText:
			e.editing = false
			it.fireText()
			e.notify()
			return true
		case KindCommand, KindToggle, KindSubMenu, KindHeader, KindEnd:
			// Edit mode is only ever entered on the three variants above;
			// clear the flag if state was corrupted externally.
			e.editing = false
			e.notify()
			return true
		}
	}
	if e.table.IsSubMenu() {
		e.ascend()
		return true
	}
	return false
}

// SetCursorPosition jumps the cursor to pos, recentring the window around
// it. Structural, hidden, and out-of-range targets are rejected.
func (e *Engine) SetCursorPosition(pos int) bool {
	if e.editing || !e.table.validCursor(pos) {
		return false
	}
	e.cursor = pos
	if e.cursor < e.top {
		e.top = e.cursor
		e.bottom = e.top + e.rows - 1
	} else if e.cursor > e.bottom {
		e.bottom = e.cursor
		e.top = e.bottom - e.rows + 1
	}
	e.notify()
	return true
}

// descend activates child, stashing this level's scroll state in its own
// header first so ascend can restore it verbatim.
func (e *Engine) descend(child *Table) {
	e.table.saveMemento(Memento{Top: e.top, Bottom: e.bottom, Cursor: e.cursor})
	e.table = child
	e.top = 1
	e.bottom = e.rows
	e.cursor = 1
	e.normalizeCursor()
	e.notify()
}

// ascend returns to the parent table and restores the scroll state saved
// when it was last left.
func (e *Engine) ascend() {
	parent := e.table.Parent()
	if parent == nil {
		return
	}
	e.table = parent
	m := e.table.loadMemento()
	e.top = m.Top
	e.bottom = m.Bottom
	e.cursor = m.Cursor
	e.notify()
}
