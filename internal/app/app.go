package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/weftkit/weft/internal/element"
	"github.com/weftkit/weft/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Title      string
}

// Run bootstraps and executes the Bubble Tea program over the demo form.
func Run(cfg Config) error {
	model := ui.NewModel(demoForm(), cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Title)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// demoForm builds the element tree the demo binary displays: a small form
// with labelled inputs and a row of buttons.
func demoForm() *element.Element {
	return element.Col(
		element.Text("account details"),
		element.Row(element.Text("name:"), element.Input("name")),
		element.Row(element.Text("email:"), element.Input("email")),
		element.Row(
			element.Button(element.Text("save")),
			element.Button(element.Text("cancel")),
		),
		element.Text("press tab to move between fields"),
	)
}
