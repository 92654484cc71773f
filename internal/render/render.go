// Package render turns an element tree into styled terminal output. It
// walks the tree in document order, styling each leaf and composing
// containers with Lip Gloss joins, and highlights whichever element the
// caller says currently holds focus.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/weftkit/weft/internal/element"
	"github.com/weftkit/weft/internal/theme"
)

const truncationTail = "…"

// Renderer draws element trees. It keeps no reference to any tree between
// calls; the tree and the focused element are supplied per render.
type Renderer struct {
	styles theme.Styles
	width  int
}

// New returns a renderer constrained to the given width in cells. A width
// of zero or less disables truncation.
func New(width int) *Renderer {
	return &Renderer{styles: theme.Default(), width: width}
}

// SetWidth updates the truncation width, e.g. after a terminal resize.
func (r *Renderer) SetWidth(width int) {
	r.width = width
}

// Render draws the tree rooted at root. The focused element, when non-nil,
// is drawn with its highlighted style; focus identity is pointer identity,
// matching how the focus tracker refers to elements.
func (r *Renderer) Render(root, focused *element.Element) string {
	out := r.render(root, focused)
	if r.width <= 0 {
		return out
	}
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if ansi.StringWidth(line) > r.width {
			lines[i] = truncate.StringWithTail(line, uint(r.width), truncationTail)
		}
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) render(e, focused *element.Element) string {
	switch e.Kind() {
	case element.KindText:
		return r.styles.Text.Render(e.Label())
	case element.KindButton:
		// The indicator marks focus structurally so it survives terminals
		// where the color profile strips styling.
		if e == focused {
			return r.styles.ButtonFocused.Render("[▸ " + e.Label() + " ]")
		}
		return r.styles.Button.Render("[ " + e.Label() + " ]")
	case element.KindInput:
		if e == focused {
			return r.styles.InputFocused.Render("▸ " + e.Label())
		}
		return r.styles.Input.Render(e.Label())
	case element.KindRow:
		parts := make([]string, 0, len(e.Children()))
		for _, child := range e.Children() {
			parts = append(parts, r.render(child, focused))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, join(parts, " ")...)
	case element.KindCol:
		parts := make([]string, 0, len(e.Children()))
		for _, child := range e.Children() {
			parts = append(parts, r.render(child, focused))
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return ""
}

// join interleaves sep between parts so JoinHorizontal keeps a gap between
// row children without padding the children themselves.
func join(parts []string, sep string) []string {
	if len(parts) <= 1 {
		return parts
	}
	out := make([]string, 0, len(parts)*2-1)
	for i, part := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, part)
	}
	return out
}
