package menu

// FrameRow is one display line of a frame.
type FrameRow struct {
	Index int    // index into the active table
	Kind  Kind   //
	Label string //
	Value string // display value, "" for label-only variants
}

// Frame is everything a renderer needs to repaint the display: the visible
// rows with hidden entries already skipped, where the cursor sits, whether
// the edit glyph should be shown, and the scroll indicator decisions.
type Frame struct {
	Rows      []FrameRow
	CursorRow int
	Editing   bool
	ShowUp    bool
	ShowDown  bool
}

// Frame computes the current frame from the engine state. It never mutates
// the engine; calling it is always safe, including while hidden.
func (e *Engine) Frame() Frame {
	f := Frame{
		Rows:    make([]FrameRow, 0, e.rows),
		Editing: e.editing,
	}

	t := e.top
	firstDrawn := -1
	lastDrawn := -1
	for row := 0; row < e.rows; row++ {
		it := e.table.At(t)
		for it != nil && it.hidden {
			t++
			it = e.table.At(t)
		}
		if it == nil || it.kind == KindEnd {
			break
		}
		if firstDrawn < 0 {
			firstDrawn = t
		}
		lastDrawn = t
		f.Rows = append(f.Rows, FrameRow{Index: t, Kind: it.kind, Label: it.label, Value: it.Value()})
		t++
	}

	// The cursor row is wherever the cursor's entry actually landed after
	// hidden entries were skipped; fall back to the raw offset when the
	// entry is outside the drawn window.
	f.CursorRow = e.cursorLine()
	for row, r := range f.Rows {
		if r.Index == e.cursor {
			f.CursorRow = row
			break
		}
	}

	if e.editing || firstDrawn < 0 {
		return f
	}
	if e.table.VisibleCount() <= e.rows {
		return f
	}

	if f.CursorRow == 0 {
		f.ShowUp = !e.table.AllHiddenAbove(firstDrawn) && e.cursor > e.table.firstEntry()
	} else {
		f.ShowUp = e.table.VisibleAbove(firstDrawn) > 0
	}
	f.ShowDown = e.table.VisibleBelow(lastDrawn) > 0
	return f
}
