package menu

import "strconv"

// Kind identifies the variant of a menu item. The set is closed: every
// dispatch site switches exhaustively over these values.
type Kind uint8

const (
	KindCommand Kind = iota
	KindToggle
	KindList
	KindProgress
	KindText
	KindSubMenu
	KindHeader
	KindEnd
)

func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindToggle:
		return "toggle"
	case KindList:
		return "list"
	case KindProgress:
		return "progress"
	case KindText:
		return "text"
	case KindSubMenu:
		return "submenu"
	case KindHeader:
		return "header"
	case KindEnd:
		return "end"
	}
	return "unknown"
}

// Structural reports whether the kind is a header or end marker. Structural
// items never receive the cursor and are excluded from hidden-item counts.
func (k Kind) Structural() bool {
	return k == KindHeader || k == KindEnd
}

// Default progress bounds, matching classic character-display firmware.
const (
	MinProgress = 0
	MaxProgress = 1000
)

// Memento is the scroll snapshot a table's header keeps while one of its
// sub-menus is active. Written on descent, read on ascent.
type Memento struct {
	Top    int
	Bottom int
	Cursor int
}

// Item is one menu entry. The kind is fixed at construction; only the
// variant payload it implies is meaningful.
type Item struct {
	kind   Kind
	label  string
	hidden bool

	// KindCommand
	action func()

	// KindToggle
	on       bool
	textOn   string
	textOff  string
	onToggle func(bool)

	// KindList / KindProgress share the index/snapshot fields.
	options    []string
	index      int
	savedIndex int
	minValue   int
	maxValue   int
	step       int
	format     func(int) string
	onChange   func(int)
	onCommit   func(int)

	// KindText
	value  string
	onText func(string)

	// KindSubMenu links to the child table. KindHeader links back to the
	// parent table and stores the parent's scroll memento; the two roles
	// are deliberately separate fields.
	child   *Table
	parent  *Table
	memento Memento
}

// NewCommand returns an item that fires action immediately on selection.
func NewCommand(label string, action func()) *Item {
	return &Item{kind: KindCommand, label: label, action: action}
}

// NewToggle returns an on/off item. Empty textOn/textOff fall back to
// "ON"/"OFF". onToggle receives the new state each time it flips.
func NewToggle(label, textOn, textOff string, onToggle func(bool)) *Item {
	if textOn == "" {
		textOn = "ON"
	}
	if textOff == "" {
		textOff = "OFF"
	}
	return &Item{kind: KindToggle, label: label, textOn: textOn, textOff: textOff, onToggle: onToggle}
}

// NewList returns an item cycling through options. onCommit fires when edit
// mode ends, with the index current at that moment.
func NewList(label string, options []string, onCommit func(int)) *Item {
	return &Item{
		kind:     KindList,
		label:    label,
		options:  append([]string(nil), options...),
		maxValue: maxListIndex(options),
		step:     1,
		onCommit: onCommit,
	}
}

func maxListIndex(options []string) int {
	if len(options) == 0 {
		return 0
	}
	return len(options) - 1
}

// NewProgress returns a numeric item stepped by step within the default
// bounds. Use WithBounds and WithFormat to adjust.
func NewProgress(label string, start, step int, onCommit func(int)) *Item {
	if step <= 0 {
		step = 1
	}
	it := &Item{
		kind:     KindProgress,
		label:    label,
		minValue: MinProgress,
		maxValue: MaxProgress,
		step:     step,
		onCommit: onCommit,
	}
	it.index = clamp(start, it.minValue, it.maxValue)
	it.savedIndex = it.index
	return it
}

// NewText returns a free-text item. Character-level editing belongs to the
// display collaborator; onText fires with the final text when edit mode ends.
func NewText(label, value string, onText func(string)) *Item {
	return &Item{kind: KindText, label: label, value: value, onText: onText}
}

// NewSubMenu returns an item that descends into child when selected. The
// child's header is linked back to the enclosing table by NewTable.
func NewSubMenu(label string, child *Table) *Item {
	return &Item{kind: KindSubMenu, label: label, child: child}
}

// WithBounds sets the progress range. The current value is re-clamped.
func (it *Item) WithBounds(min, max int) *Item {
	if it.kind != KindProgress || min > max {
		return it
	}
	it.minValue = min
	it.maxValue = max
	it.index = clamp(it.index, min, max)
	it.savedIndex = it.index
	return it
}

// WithFormat sets the display mapping for a progress value.
func (it *Item) WithFormat(format func(int) string) *Item {
	if it.kind == KindProgress {
		it.format = format
	}
	return it
}

// WithChange registers a callback fired whenever SetIndex changes the value.
func (it *Item) WithChange(onChange func(int)) *Item {
	if it.kind == KindList || it.kind == KindProgress {
		it.onChange = onChange
	}
	return it
}

// WithHidden sets the initial visibility.
func (it *Item) WithHidden(hidden bool) *Item {
	it.hidden = hidden
	return it
}

// Kind returns the variant tag.
func (it *Item) Kind() Kind { return it.kind }

// Label returns the display text.
func (it *Item) Label() string { return it.label }

// Hidden reports whether the item is excluded from display and cursor
// placement.
func (it *Item) Hidden() bool { return it.hidden }

// SetHidden toggles visibility. The caller owns triggering a redraw.
func (it *Item) SetHidden(hidden bool) { it.hidden = hidden }

// Index returns the current list index or progress value.
func (it *Item) Index() int { return it.index }

// SetIndex sets the list index or progress value, clamped to the valid
// range. It reports whether the value changed and fires the change callback
// when it did.
func (it *Item) SetIndex(i int) bool {
	switch it.kind {
	case KindList:
		i = clamp(i, 0, maxListIndex(it.options))
	case KindProgress:
		i = clamp(i, it.minValue, it.maxValue)
	default:
		return false
	}
	if i == it.index {
		return false
	}
	it.index = i
	if it.onChange != nil {
		it.onChange(it.index)
	}
	return true
}

// Increment steps a progress value up, saturating at the maximum.
func (it *Item) Increment() bool {
	if it.kind != KindProgress || it.index >= it.maxValue {
		return false
	}
	return it.SetIndex(it.index + it.step)
}

// Decrement steps a progress value down, saturating at the minimum.
func (it *Item) Decrement() bool {
	if it.kind != KindProgress || it.index <= it.minValue {
		return false
	}
	return it.SetIndex(it.index - it.step)
}

// Options returns the list options.
func (it *Item) Options() []string { return it.options }

// OptionCount returns the number of list options.
func (it *Item) OptionCount() int { return len(it.options) }

// On reports the toggle state.
func (it *Item) On() bool { return it.on }

// SetOn sets the toggle state without firing the toggle callback; Select on
// the engine flips and notifies.
func (it *Item) SetOn(on bool) { it.on = on }

// Text returns the current text of a text item.
func (it *Item) Text() string { return it.value }

// SetText replaces the text of a text item. The editing collaborator calls
// this while edit mode is active.
func (it *Item) SetText(value string) {
	if it.kind == KindText {
		it.value = value
	}
}

// SubMenu returns the child table of a sub-menu link, or nil.
func (it *Item) SubMenu() *Table { return it.child }

// Parent returns the parent table recorded on a header, or nil for the root
// header.
func (it *Item) Parent() *Table { return it.parent }

// Value returns the display value appended after the label, or "" when the
// variant has none.
func (it *Item) Value() string {
	switch it.kind {
	case KindToggle:
		if it.on {
			return it.textOn
		}
		return it.textOff
	case KindList:
		if len(it.options) == 0 {
			return ""
		}
		return it.options[it.index]
	case KindProgress:
		if it.format != nil {
			return it.format(it.index)
		}
		return strconv.Itoa(it.index)
	case KindText:
		return it.value
	case KindCommand, KindSubMenu, KindHeader, KindEnd:
		return ""
	}
	return ""
}

// saveSnapshot records the value to fall back to when an edit is cancelled.
func (it *Item) saveSnapshot() { it.savedIndex = it.index }

// restoreSnapshot reverts to the value saved when edit mode began.
func (it *Item) restoreSnapshot() { it.index = it.savedIndex }

func (it *Item) fireToggle() {
	if it.onToggle != nil {
		it.onToggle(it.on)
	}
}

func (it *Item) fireCommit() {
	if it.onCommit != nil {
		it.onCommit(it.index)
	}
}

func (it *Item) fireText() {
	if it.onText != nil {
		it.onText(it.value)
	}
}

func (it *Item) fireAction() {
	if it.action != nil {
		it.action()
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
