// Package ui contains the Bubble Tea program that drives the element tree.
// The Model owns a focus.Tracker and the tree root handed to it at
// construction; pressing Tab advances focus in document order, and "/"
// opens a jump prompt that fuzzy-matches focusable elements by label.
//
// State ownership:
//   - The element tree is built by the caller (internal/app for the demo
//     binary) and never mutated here. The Model only reads it and feeds it
//     to the renderer and the tracker.
//   - Focus state lives in focus.Tracker. The Model is the single writer:
//     key handling runs on the Bubble Tea goroutine, which satisfies the
//     tracker's single-threaded contract.
//   - Jump prompt state lives in internal/ui/state.Jump so the
//     ranking logic is testable without a running program; the text entry
//     itself is a bubbles textinput.
package ui
