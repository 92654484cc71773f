package events

import "github.com/weftkit/weft/internal/logging"

type JumpTracer struct{}

var Jump = JumpTracer{}

func (JumpTracer) Open(candidates int) {
	logging.Trace("jump.open", map[string]interface{}{"candidates": candidates})
}

func (JumpTracer) Query(query string, matches int) {
	logging.Trace("jump.query", map[string]interface{}{
		"query":   query,
		"matches": matches,
	})
}

func (JumpTracer) Commit(query, target string) {
	logging.Trace("jump.commit", map[string]interface{}{
		"query":  query,
		"target": target,
	})
}

func (JumpTracer) Cancel() {
	logging.Trace("jump.cancel", nil)
}
