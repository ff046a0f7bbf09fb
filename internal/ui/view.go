package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const footerHints = "↑/↓ move  ←/→ cycle  enter select  esc back/cancel  backspace commit  / jump  q quit"

// View implements tea.Model: breadcrumb header, the simulated display, and
// the prompt/status chrome.
func (m *Model) View() string {
	sections := make([]string, 0, 5)
	if header := m.header(); header != "" {
		sections = append(sections, render(styles.Header, header))
	}
	sections = append(sections, m.viewScreen())
	if line := m.bottomLine(); line != "" {
		sections = append(sections, line)
	}
	if m.showFooter {
		sections = append(sections, render(styles.Footer, footerHints))
	}
	out := strings.Join(sections, "\n")
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, out)
	}
	return out
}

// header is the breadcrumb from the root table down to the active one.
func (m *Model) header() string {
	titles := []string{}
	for t := m.engine.Table(); t != nil; t = t.Parent() {
		titles = append([]string{t.Title()}, titles...)
	}
	header := strings.Join(titles, " → ")
	if m.width > 0 {
		header = truncate.StringWithTail(header, uint(m.width), "…")
	}
	return header
}

// viewScreen draws the character grid inside a bezel border.
func (m *Model) viewScreen() string {
	rows := m.screen.Lines()
	for i, row := range rows {
		rows[i] = render(styles.ScreenText, " "+row+" ")
	}
	content := strings.Join(rows, "\n")
	bezel := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	if styles.Bezel != nil {
		bezel = bezel.BorderForeground(styles.Bezel.GetForeground())
	}
	return bezel.Render(content)
}

func (m *Model) bottomLine() string {
	if m.editingText() {
		return m.editInput.View()
	}
	if m.jumping {
		return m.jumpInput.View()
	}
	if m.status != "" {
		return render(styles.Info, m.status)
	}
	return ""
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}
