package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Text          *lipgloss.Style
	Button        *lipgloss.Style
	ButtonFocused *lipgloss.Style
	Input         *lipgloss.Style
	InputFocused  *lipgloss.Style
	Header        *lipgloss.Style
	Footer        *lipgloss.Style
	JumpPrompt    *lipgloss.Style
	JumpMatch     *lipgloss.Style
	JumpMiss      *lipgloss.Style
}

var defaultStyles = Styles{
	Text: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Padding(0, 1),
	),
	ButtonFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true).Padding(0, 1),
	),
	Input: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
	),
	InputFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 1),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	JumpPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	JumpMatch: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	JumpMiss: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default returns the default style set.
func Default() Styles {
	return defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
