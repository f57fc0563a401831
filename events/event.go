package events

import (
	"github.com/iyioio/named-events/config"
)

// EventSource is an argument-less event.
type EventSource struct {
	source[func()]
}

func invoke(listener func()) {
	listener()
}

// NewEvent returns an argument-less event source with no listeners.
func NewEvent(opts ...config.SourceOptionsInterface) *EventSource {
	return &EventSource{source: newSource[func()](opts)}
}

// Trigger calls every listener in registration order.
func (e *EventSource) Trigger() {
	e.emit(invoke)
}
