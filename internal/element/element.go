// Package element defines the renderable element tree that the rest of the
// toolkit operates on. Elements form a tagged union over a small set of
// kinds: leaf kinds (text, button, input) and container kinds (row, col).
// Whether an element can receive keyboard focus is a static property of its
// kind, not runtime state.
//
// The tree is plain data. Construction happens up front (or on rebuild) in
// the application layer; packages such as focus and render hold references
// into the tree but never own or mutate it.
package element

// Kind identifies the shape of an Element.
type Kind int

const (
	// KindText is a non-focusable leaf holding a run of text.
	KindText Kind = iota
	// KindButton is a focusable leaf. Its label content is carried as a
	// single child element, but the child is presentation only: traversal
	// treats a button as a leaf and never descends into it.
	KindButton
	// KindInput is a focusable leaf representing a single-line text entry.
	KindInput
	// KindRow lays children out horizontally. Containers are never
	// focusable themselves.
	KindRow
	// KindCol lays children out vertically.
	KindCol
)

// String returns the lowercase kind name used in trace payloads.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindButton:
		return "button"
	case KindInput:
		return "input"
	case KindRow:
		return "row"
	case KindCol:
		return "col"
	}
	return "unknown"
}

// Element is one node of the tree. The zero value is not useful; use the
// constructors below.
type Element struct {
	kind     Kind
	text     string
	children []*Element
}

// Text constructs a non-focusable text leaf.
func Text(s string) *Element {
	return &Element{kind: KindText, text: s}
}

// Button constructs a focusable button whose label content is the given
// child element.
func Button(child *Element) *Element {
	return &Element{kind: KindButton, children: []*Element{child}}
}

// Input constructs a focusable text-entry leaf with the given placeholder.
func Input(placeholder string) *Element {
	return &Element{kind: KindInput, text: placeholder}
}

// Row constructs a horizontal container over the given children, in order.
func Row(children ...*Element) *Element {
	return &Element{kind: KindRow, children: children}
}

// Col constructs a vertical container over the given children, in order.
func Col(children ...*Element) *Element {
	return &Element{kind: KindCol, children: children}
}

// Kind returns the element's kind tag.
func (e *Element) Kind() Kind { return e.kind }

// Focusable reports whether this element's kind can receive keyboard focus.
func (e *Element) Focusable() bool {
	return e.kind == KindButton || e.kind == KindInput
}

// Container reports whether this element holds an ordered child sequence
// that traversal should descend into. A button carries a child but is not a
// container: its content is opaque to traversal.
func (e *Element) Container() bool {
	return e.kind == KindRow || e.kind == KindCol
}

// Children returns the ordered child slice for containers, or nil for
// leaves. Callers must not mutate the returned slice.
func (e *Element) Children() []*Element {
	if !e.Container() {
		return nil
	}
	return e.children
}

// Content returns a button's label element, or nil for any other kind.
func (e *Element) Content() *Element {
	if e.kind != KindButton || len(e.children) == 0 {
		return nil
	}
	return e.children[0]
}

// Label returns the human-readable text for an element: the text of a text
// leaf, an input's placeholder, or the label text of a button. Containers
// have no label.
func (e *Element) Label() string {
	switch e.kind {
	case KindText, KindInput:
		return e.text
	case KindButton:
		if content := e.Content(); content != nil {
			return content.Label()
		}
	}
	return ""
}

// Walk visits every element reachable from root in document order
// (pre-order, children left to right), calling fn with the element and the
// child-index path from the root down to it. Returning false from fn stops
// the walk. The path slice is reused between calls; visitors that retain it
// must copy it first.
func Walk(root *Element, fn func(e *Element, path []int) bool) {
	walk(root, nil, fn)
}

func walk(e *Element, path []int, fn func(e *Element, path []int) bool) bool {
	if !fn(e, path) {
		return false
	}
	for i, child := range e.Children() {
		if !walk(child, append(path, i), fn) {
			return false
		}
	}
	return true
}
