package focus

import "github.com/weftkit/weft/internal/element"

// Candidate pairs a focusable element with the ancestor chain leading to it
// from the root it was collected under. Candidates are what programmatic
// focus (Tracker.Focus) consumes.
type Candidate struct {
	Elem  *element.Element
	Path  []Ancestor
	Label string
}

// Candidates lists every focusable element reachable from root in document
// order, the root itself included when focusable. The returned paths are
// freshly allocated and safe to retain across calls.
func Candidates(root *element.Element) []Candidate {
	var out []Candidate
	element.Walk(root, func(e *element.Element, path []int) bool {
		if !e.Focusable() {
			return true
		}
		chain := make([]Ancestor, len(path))
		node := root
		for i, idx := range path {
			chain[i] = Ancestor{Node: node, Index: idx}
			node = node.Children()[idx]
		}
		out = append(out, Candidate{Elem: e, Path: chain, Label: e.Label()})
		return true
	})
	return out
}
