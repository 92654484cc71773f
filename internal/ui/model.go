package ui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/weftkit/weft/internal/element"
	"github.com/weftkit/weft/internal/focus"
	"github.com/weftkit/weft/internal/render"
	"github.com/weftkit/weft/internal/theme"
	"github.com/weftkit/weft/internal/ui/state"
)

var styles = theme.Default()

// Model implements the Bubble Tea model over an element tree.
type Model struct {
	root     *element.Element
	tracker  *focus.Tracker
	renderer *render.Renderer

	jump      *state.Jump
	jumpInput textinput.Model

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	title       string
}

// NewModel constructs the model for the given tree. Width and height of
// zero track the terminal size via resize messages.
func NewModel(root *element.Element, width, height int, showFooter bool, title string) *Model {
	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "element"
	input.CharLimit = 64
	input.Cursor.SetMode(cursor.CursorBlink)
	return &Model{
		root:        root,
		tracker:     focus.New(),
		renderer:    render.New(width),
		jumpInput:   input,
		width:       width,
		height:      height,
		fixedWidth:  width > 0,
		fixedHeight: height > 0,
		showFooter:  showFooter,
		title:       title,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.fixedWidth {
			m.width = msg.Width
			m.renderer.SetWidth(msg.Width)
		}
		if !m.fixedHeight {
			m.height = msg.Height
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.jumpActive() {
		var cmd tea.Cmd
		m.jumpInput, cmd = m.jumpInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Focused exposes the currently focused element for rendering and tests.
func (m *Model) Focused() *element.Element {
	return m.tracker.Current()
}

func (m *Model) jumpActive() bool {
	return m.jump != nil
}
