package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/weftkit/weft/internal/element"
	"github.com/weftkit/weft/internal/focus"
	"github.com/weftkit/weft/internal/logging/events"
	"github.com/weftkit/weft/internal/ui/state"
)

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.jumpActive() {
		return m.handleJumpKey(msg)
	}
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		events.App.Quit()
		return m, tea.Quit
	case "tab":
		m.advanceFocus()
		return m, nil
	case "/":
		return m, m.openJump()
	}
	return m, nil
}

func (m *Model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.closeJump()
		events.Jump.Cancel()
		return m, nil
	case "enter":
		if best, ok := m.jump.Best(); ok {
			m.tracker.Focus(best)
			events.Jump.Commit(m.jump.Query, best.Label)
		} else {
			events.Jump.Cancel()
		}
		m.closeJump()
		return m, nil
	}
	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(msg)
	if query := m.jumpInput.Value(); query != m.jump.Query {
		m.jump.SetQuery(query)
		events.Jump.Query(query, len(m.jump.Matches))
	}
	return m, cmd
}

// advanceFocus runs one Tab step and traces the outcome.
func (m *Model) advanceFocus() {
	before := m.tracker.Current()
	m.tracker.Advance(m.root)
	after := m.tracker.Current()
	switch {
	case after == nil:
		events.Focus.None()
	case after == before:
		events.Focus.Hold(labelOf(after))
	default:
		events.Focus.Advance(labelOf(before), labelOf(after), len(m.tracker.Path()))
	}
}

func (m *Model) openJump() tea.Cmd {
	candidates := focus.Candidates(m.root)
	m.jump = state.NewJump(candidates)
	m.jumpInput.SetValue("")
	events.Jump.Open(len(candidates))
	return m.jumpInput.Focus()
}

func (m *Model) closeJump() {
	m.jump = nil
	m.jumpInput.Blur()
	m.jumpInput.SetValue("")
}

func labelOf(e *element.Element) string {
	if e == nil {
		return ""
	}
	return e.Label()
}
