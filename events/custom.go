package events

import (
	"github.com/iyioio/named-events/config"
)

type (
	// CustomEventSource is an event with an arbitrary listener type L,
	// usually a func type with several parameters.
	CustomEventSource[L any] struct {
		source[L]
	}

	// Event2Source is an event carrying two values.
	Event2Source[A, B any] struct {
		source[func(A, B)]
	}

	// Event3Source is an event carrying three values.
	Event3Source[A, B, C any] struct {
		source[func(A, B, C)]
	}
)

// NewCustomEvent returns a source for listeners of type L.
func NewCustomEvent[L any](opts ...config.SourceOptionsInterface) *CustomEventSource[L] {
	return &CustomEventSource[L]{source: newSource[L](opts)}
}

// Trigger calls call once per listener, in registration order. call passes
// the event arguments to the listener:
//
//	moved.Trigger(func(l func(x, y int)) { l(x, y) })
func (e *CustomEventSource[L]) Trigger(call func(listener L)) {
	e.emit(call)
}

// NewEvent2 returns a two value event source with no listeners.
func NewEvent2[A, B any](opts ...config.SourceOptionsInterface) *Event2Source[A, B] {
	return &Event2Source[A, B]{source: newSource[func(A, B)](opts)}
}

// Trigger calls every listener with a and b.
func (e *Event2Source[A, B]) Trigger(a A, b B) {
	e.emit(func(listener func(A, B)) {
		listener(a, b)
	})
}

// NewEvent3 returns a three value event source with no listeners.
func NewEvent3[A, B, C any](opts ...config.SourceOptionsInterface) *Event3Source[A, B, C] {
	return &Event3Source[A, B, C]{source: newSource[func(A, B, C)](opts)}
}

// Trigger calls every listener with a, b and c.
func (e *Event3Source[A, B, C]) Trigger(a A, b B, c C) {
	e.emit(func(listener func(A, B, C)) {
		listener(a, b, c)
	})
}
