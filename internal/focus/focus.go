// Package focus tracks which element in a tree currently holds keyboard
// focus and advances it in document order, e.g. when the user presses Tab.
//
// The tracker stores bare pointers into a tree it does not own. Those
// pointers stay meaningful only while the caller keeps the same tree alive;
// whenever the tree is rebuilt or discarded the caller must Reset the
// tracker (or Focus a candidate from the new tree) before advancing again.
// The tracker performs no staleness detection of its own.
package focus

import "github.com/weftkit/weft/internal/element"

// Ancestor is one step on the path from the root to the focused element:
// a container and the index of the child the path descends through.
type Ancestor struct {
	Node  *element.Element
	Index int
}

// Tracker holds the current focus and the ancestor chain leading to it.
// The chain is ordered from the root inward, so the innermost ancestor sits
// at the tail. The zero value is ready to use and has no focus.
//
// A Tracker is not safe for concurrent use. The expected owner is the
// single goroutine that also owns the element tree and the event loop.
type Tracker struct {
	focused   *element.Element
	ancestors []Ancestor
}

// New returns an empty tracker with nothing focused.
func New() *Tracker { return &Tracker{} }

// Current returns the element holding focus, or nil when nothing does.
func (t *Tracker) Current() *element.Element { return t.focused }

// Path returns a copy of the ancestor chain from the root down to the
// focused element. Empty when nothing is focused or the root itself holds
// focus.
func (t *Tracker) Path() []Ancestor {
	if len(t.ancestors) == 0 {
		return nil
	}
	out := make([]Ancestor, len(t.ancestors))
	copy(out, t.ancestors)
	return out
}

// Reset drops the current focus and ancestor chain. Callers invoke this
// whenever the element tree the tracker was advanced over goes away.
func (t *Tracker) Reset() {
	t.focused = nil
	t.ancestors = nil
}

// Advance moves focus to the next focusable element in document order.
// When nothing is focused yet, the root itself is considered first, then
// its descendants. When the current focus is the last focusable element in
// the tree, focus stays where it is: traversal does not wrap around to the
// beginning.
func (t *Tracker) Advance(root *element.Element) {
	if t.focused == nil {
		if root.Focusable() {
			t.focused = root
			t.ancestors = nil
			return
		}
		if found, chain := nextFocusableSibling(root, -1); found != nil {
			t.focus(found, chain)
		}
		return
	}

	// Walk outward from the innermost ancestor, resuming the search after
	// the child index the current focus hangs off. Iterating indices
	// instead of popping keeps the chain intact when nothing further is
	// focusable, so the stored path stays valid for the next call.
	for i := len(t.ancestors) - 1; i >= 0; i-- {
		anc := t.ancestors[i]
		found, chain := nextFocusableSibling(anc.Node, anc.Index)
		if found == nil {
			continue
		}
		// The chain returned for a match always starts at the ancestor we
		// searched, replacing the entries from i inward.
		t.focused = found
		t.ancestors = append(t.ancestors[:i], chain...)
		return
	}
}

// Focus sets the tracker directly to the given candidate, bypassing
// document-order traversal. Used for programmatic focus such as
// jump-to-element.
func (t *Tracker) Focus(c Candidate) {
	t.focus(c.Elem, c.Path)
}

func (t *Tracker) focus(elem *element.Element, chain []Ancestor) {
	if elem == nil {
		panic("focus: match carried a nil element")
	}
	t.focused = elem
	t.ancestors = append(t.ancestors[:0], chain...)
}

// nextFocusableSibling returns the first focusable element among elem's
// children in document order, together with the ancestor chain from elem
// down to it. When index is non-negative only children after that index are
// considered; descendants of those children are searched without
// restriction. Leaves never match: a focusable child is detected here
// before recursing, so recursion only ever enters containers.
func nextFocusableSibling(elem *element.Element, index int) (*element.Element, []Ancestor) {
	if !elem.Container() {
		return nil, nil
	}
	children := elem.Children()
	start := 0
	if index >= 0 {
		start = index + 1
	}
	for i := start; i < len(children); i++ {
		child := children[i]
		if child.Focusable() {
			return child, []Ancestor{{Node: elem, Index: i}}
		}
		if found, chain := nextFocusableSibling(child, -1); found != nil {
			return found, append([]Ancestor{{Node: elem, Index: i}}, chain...)
		}
	}
	return nil, nil
}
