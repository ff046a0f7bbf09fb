package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header     *lipgloss.Style
	ScreenText *lipgloss.Style
	Bezel      *lipgloss.Style
	Info       *lipgloss.Style
	Error      *lipgloss.Style
	Footer     *lipgloss.Style
	Prompt     *lipgloss.Style
	PromptText *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	// Dark text on the yellow-green backlight of a classic character LCD.
	ScreenText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("22")).Background(lipgloss.Color("154")),
	),
	Bezel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	PromptText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
