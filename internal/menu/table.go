package menu

// Table is one menu level: a header at index 0, the user entries, and an end
// marker at the last index. The cursor only ever rests on indices in
// [1, Len()-2]. Each table owns its items; a sub-menu link does not own the
// child table it points to.
type Table struct {
	items []*Item
	title string
}

// NewTable builds a table from the given entries, synthesizing the header and
// end marker. Sub-menu entries get their child table's header linked back to
// the table under construction, which is what makes ascent work without an
// explicit call stack.
func NewTable(title string, entries ...*Item) *Table {
	t := &Table{title: title}
	t.items = make([]*Item, 0, len(entries)+2)
	t.items = append(t.items, &Item{kind: KindHeader, label: title})
	for _, it := range entries {
		if it == nil || it.kind.Structural() {
			continue
		}
		t.items = append(t.items, it)
		if it.kind == KindSubMenu && it.child != nil {
			it.child.header().parent = t
		}
	}
	t.items = append(t.items, &Item{kind: KindEnd})
	return t
}

// Title returns the display title of the level.
func (t *Table) Title() string { return t.title }

// Len returns the total item count, header and end marker included.
func (t *Table) Len() int { return len(t.items) }

// At returns the item at index i, or nil when out of range.
func (t *Table) At(i int) *Item {
	if i < 0 || i >= len(t.items) {
		return nil
	}
	return t.items[i]
}

// EntryCount returns the number of user entries (structural nodes excluded).
func (t *Table) EntryCount() int { return len(t.items) - 2 }

func (t *Table) header() *Item { return t.items[0] }

func (t *Table) firstEntry() int { return 1 }

func (t *Table) lastEntry() int { return len(t.items) - 2 }

// IsSubMenu reports whether the table has a parent to return to.
func (t *Table) IsSubMenu() bool { return t.header().parent != nil }

// Parent returns the table this one was linked under, or nil for the root.
func (t *Table) Parent() *Table { return t.header().parent }

// VisibleCount returns the number of non-hidden user entries.
func (t *Table) VisibleCount() int {
	count := 0
	for i := t.firstEntry(); i <= t.lastEntry(); i++ {
		if !t.items[i].hidden {
			count++
		}
	}
	return count
}

// VisibleAbove counts non-hidden entries strictly above pos.
func (t *Table) VisibleAbove(pos int) int {
	count := 0
	for i := pos - 1; i >= t.firstEntry(); i-- {
		if !t.items[i].hidden {
			count++
		}
	}
	return count
}

// VisibleBelow counts non-hidden entries strictly below pos.
func (t *Table) VisibleBelow(pos int) int {
	count := 0
	for i := pos + 1; i <= t.lastEntry(); i++ {
		if !t.items[i].hidden {
			count++
		}
	}
	return count
}

// AllHiddenAbove reports whether every entry strictly above pos is hidden.
func (t *Table) AllHiddenAbove(pos int) bool { return t.VisibleAbove(pos) == 0 }

// AllHiddenBelow reports whether every entry strictly below pos is hidden.
func (t *Table) AllHiddenBelow(pos int) bool { return t.VisibleBelow(pos) == 0 }

// prevVisible returns the nearest non-hidden entry above pos.
func (t *Table) prevVisible(pos int) (int, bool) {
	for i := pos - 1; i >= t.firstEntry(); i-- {
		if !t.items[i].hidden {
			return i, true
		}
	}
	return pos, false
}

// nextVisible returns the nearest non-hidden entry below pos.
func (t *Table) nextVisible(pos int) (int, bool) {
	for i := pos + 1; i <= t.lastEntry(); i++ {
		if !t.items[i].hidden {
			return i, true
		}
	}
	return pos, false
}

// firstVisible returns the first non-hidden entry, or 0 when every entry is
// hidden.
func (t *Table) firstVisible() (int, bool) {
	for i := t.firstEntry(); i <= t.lastEntry(); i++ {
		if !t.items[i].hidden {
			return i, true
		}
	}
	return 0, false
}

// validCursor reports whether pos is a legal cursor target: in entry range,
// not structural, not hidden.
func (t *Table) validCursor(pos int) bool {
	if pos < t.firstEntry() || pos > t.lastEntry() {
		return false
	}
	it := t.items[pos]
	return !it.kind.Structural() && !it.hidden
}

func (t *Table) saveMemento(m Memento) { t.header().memento = m }

func (t *Table) loadMemento() Memento { return t.header().memento }
