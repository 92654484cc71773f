package ui

import (
	"fmt"
	"strings"
)

const footerHint = "tab: next focus · /: jump · q: quit"

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	if m.title != "" {
		b.WriteString(styles.Header.Render(m.title))
		b.WriteString("\n\n")
	}
	b.WriteString(m.renderer.Render(m.root, m.tracker.Current()))
	if m.jumpActive() {
		b.WriteString("\n\n")
		b.WriteString(m.jumpLine())
	}
	if m.showFooter {
		b.WriteString("\n\n")
		b.WriteString(styles.Footer.Render(footerHint))
	}
	return b.String()
}

func (m *Model) jumpLine() string {
	line := styles.JumpPrompt.Render("jump ") + m.jumpInput.View()
	if m.jump.Query == "" {
		return line
	}
	if best, ok := m.jump.Best(); ok {
		return line + " " + styles.JumpMatch.Render(fmt.Sprintf("→ %s (%d)", best.Label, len(m.jump.Matches)))
	}
	return line + " " + styles.JumpMiss.Render("no match")
}
