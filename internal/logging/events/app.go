package events

import "github.com/atomicstack/swap-form/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(err error) {
	if err != nil {
		logging.Trace("app.exit", map[string]interface{}{"error": err.Error()})
		return
	}
	logging.Trace("app.exit", nil)
}
