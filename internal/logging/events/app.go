package events

import "github.com/atomicstack/grid-menu/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Layout(source string, pages int, numbering string) {
	logging.Trace("app.layout", map[string]interface{}{"source": source, "pages": pages, "numbering": numbering})
}
