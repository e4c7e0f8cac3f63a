package events

import "github.com/atomicstack/wirecalc/internal/logging"

type FilterTracer struct{}

type CommandTracer struct{}

var (
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (FilterTracer) Open() {
	logging.Trace("filter.open", nil)
}

func (FilterTracer) Update(query string, matches int) {
	logging.Trace("filter.update", map[string]interface{}{"query": query, "matches": matches})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (CommandTracer) Queue(id, source string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "source": source})
}

func (CommandTracer) Skip(id, source string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "source": source})
}

func (CommandTracer) Result(id, source, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "source": source, "msg": msgType})
}
