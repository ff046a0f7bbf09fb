package ui

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/lcdnav/lcdnav/internal/input"
	"github.com/lcdnav/lcdnav/internal/logging/events"
	"github.com/lcdnav/lcdnav/internal/menu"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	events.UI.Key(keyMsg.String())
	if m.editingText() {
		return m.handleEditKey(keyMsg)
	}
	if m.jumping {
		return m.handleJumpKey(keyMsg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "up", "k":
		m.dispatch(input.Up)
	case "down", "j":
		m.dispatch(input.Down)
	case "left", "h":
		m.dispatch(input.Left)
	case "right", "l":
		m.dispatch(input.Right)
	case "enter", " ":
		return m.dispatch(input.Select)
	case "esc":
		m.dispatch(input.Back)
	case "backspace":
		m.commitBack()
	case "/":
		return m.startJump()
	}
	return nil
}

// dispatch routes one debounced logical button press into the engine.
func (m *Model) dispatch(ev input.Event) tea.Cmd {
	if !m.debounce.Allow() {
		return nil
	}
	table := m.engine.Table().Title()
	switch ev {
	case input.Up:
		if m.engine.HandleUp() {
			events.Menu.Cursor(table, m.engine.CursorPosition())
		}
	case input.Down:
		if m.engine.HandleDown() {
			events.Menu.Cursor(table, m.engine.CursorPosition())
		}
	case input.Left:
		m.engine.HandleLeft()
	case input.Right:
		m.engine.HandleRight()
	case input.Select:
		return m.handleSelect()
	case input.Back:
		m.handleBack(true)
	}
	return nil
}

func (m *Model) handleSelect() tea.Cmd {
	current := m.engine.Current()
	if current == nil {
		return nil
	}
	if m.engine.IsEditing() {
		// Enter commits an in-progress list/progress edit.
		switch current.Kind() {
		case menu.KindList, menu.KindProgress:
			m.engine.HandleBack(false)
			events.Menu.EditEnd(current.Label(), false)
		}
		return nil
	}
	before := m.engine.Table()
	events.Menu.Select(before.Title(), current.Label())
	if !m.engine.HandleSelect() {
		return nil
	}
	if m.engine.Table() != before {
		events.Menu.Enter(m.engine.Table().Title())
		return nil
	}
	if m.engine.IsEditing() {
		events.Menu.EditStart(current.Label())
		if current.Kind() == menu.KindText {
			m.editInput.SetValue(current.Text())
			m.editInput.CursorEnd()
			return m.editInput.Focus()
		}
	}
	return nil
}

// handleBack runs the back gesture; cancelled picks between restoring the
// edit snapshot and keeping the edited value.
func (m *Model) handleBack(cancelled bool) {
	current := m.engine.Current()
	wasEditing := m.engine.IsEditing()
	before := m.engine.Table()
	if !m.engine.HandleBack(cancelled) {
		return
	}
	if wasEditing && current != nil {
		events.Menu.EditEnd(current.Label(), cancelled)
		return
	}
	if m.engine.Table() != before {
		events.Menu.Leave(before.Title())
	}
}

// commitBack is the back gesture that keeps the edited value.
func (m *Model) commitBack() {
	if !m.debounce.Allow() {
		return
	}
	m.handleBack(false)
}

func (m *Model) editingText() bool {
	if !m.engine.IsEditing() {
		return false
	}
	current := m.engine.Current()
	return current != nil && current.Kind() == menu.KindText
}

// handleEditKey routes keys into the text-edit collaborator while a text
// item is being edited. Enter copies the buffer into the item and commits;
// escape leaves the item untouched, so the commit callback carries the
// original text.
func (m *Model) handleEditKey(keyMsg tea.KeyMsg) tea.Cmd {
	current := m.engine.Current()
	switch keyMsg.String() {
	case "enter":
		current.SetText(m.editInput.Value())
		m.engine.HandleBack(false)
		events.Menu.EditEnd(current.Label(), false)
		m.editInput.Blur()
		return nil
	case "esc":
		m.engine.HandleBack(true)
		events.Menu.EditEnd(current.Label(), true)
		m.editInput.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(keyMsg)
	return cmd
}

func (m *Model) startJump() tea.Cmd {
	m.jumping = true
	m.jumpInput.SetValue("")
	return m.jumpInput.Focus()
}

func (m *Model) handleJumpKey(keyMsg tea.KeyMsg) tea.Cmd {
	switch keyMsg.String() {
	case "enter":
		query := m.jumpInput.Value()
		m.stopJump()
		if target := m.matchEntry(query); target > 0 {
			if m.engine.SetCursorPosition(target) {
				events.UI.Jump(query, target)
			}
		} else {
			m.status = "No match for " + query
		}
		return nil
	case "esc":
		m.stopJump()
		return nil
	}
	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(keyMsg)
	return cmd
}

func (m *Model) stopJump() {
	m.jumping = false
	m.jumpInput.Blur()
}

// matchEntry fuzzy-matches query against the visible entries of the active
// table and returns the best entry index, or 0 when nothing matches.
func (m *Model) matchEntry(query string) int {
	if query == "" {
		return 0
	}
	table := m.engine.Table()
	labels := make([]string, 0, table.Len())
	positions := make([]int, 0, table.Len())
	for i := 1; i < table.Len()-1; i++ {
		it := table.At(i)
		if it.Hidden() {
			continue
		}
		labels = append(labels, it.Label())
		positions = append(positions, i)
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	if len(ranks) == 0 {
		return 0
	}
	sort.Sort(ranks)
	return positions[ranks[0].OriginalIndex]
}
