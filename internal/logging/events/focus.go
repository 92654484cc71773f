package events

import "github.com/weftkit/weft/internal/logging"

type FocusTracer struct{}

var Focus = FocusTracer{}

func (FocusTracer) Advance(from, to string, depth int) {
	logging.Trace("focus.advance", map[string]interface{}{
		"from":  from,
		"to":    to,
		"depth": depth,
	})
}

func (FocusTracer) Hold(current string) {
	logging.Trace("focus.hold", map[string]interface{}{"current": current})
}

func (FocusTracer) None() {
	logging.Trace("focus.none", nil)
}

func (FocusTracer) Reset() {
	logging.Trace("focus.reset", nil)
}
