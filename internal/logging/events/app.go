package events

import "github.com/weftkit/weft/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Quit() {
	logging.Trace("app.quit", nil)
}
