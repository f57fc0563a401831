package events

import (
	"sync"

	"github.com/iyioio/named-events/config"
)

type (
	// ValueEventSource is an event carrying one value of type T.
	ValueEventSource[T any] struct {
		source[func(T)]
	}

	// ValueHandle lets consumers subscribe to a value-backed source and read
	// its current value, without being able to change it.
	ValueHandle[T comparable] struct {
		*Handle[func(T)]

		mu    sync.RWMutex
		value T
	}

	// ValueBackedEventSource retains the last triggered value and skips
	// dispatch when a new value == the current one.
	ValueBackedEventSource[T comparable] struct {
		*ValueHandle[T]
	}

	// ValueSubscribable is the consumer side of a value-backed source.
	ValueSubscribable[T comparable] interface {
		Subscribable[func(T)]

		GetValue() T
	}
)

// NewValueEvent returns a value event source with no listeners.
func NewValueEvent[T any](opts ...config.SourceOptionsInterface) *ValueEventSource[T] {
	return &ValueEventSource[T]{source: newSource[func(T)](opts)}
}

// Trigger calls every listener with value.
func (e *ValueEventSource[T]) Trigger(value T) {
	e.emit(func(listener func(T)) {
		listener(value)
	})
}

// NewValueBackedEvent returns a source whose current value starts at initial.
// Equality is Go ==: pointers compare by identity, structs field by field.
func NewValueBackedEvent[T comparable](initial T, opts ...config.SourceOptionsInterface) *ValueBackedEventSource[T] {
	return &ValueBackedEventSource[T]{
		ValueHandle: &ValueHandle[T]{
			Handle: newHandle[func(T)](opts),
			value:  initial,
		},
	}
}

func (v *ValueHandle[T]) GetValue() T {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.value
}

// Evt returns the subscribe-and-read handle to hand out to consumers.
func (e *ValueBackedEventSource[T]) Evt() *ValueHandle[T] {
	return e.ValueHandle
}

func (v *ValueHandle[T]) swap(next func(current T) T) (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	current := v.value
	candidate := next(current)
	if candidate == current {
		return current, false
	}
	v.value = candidate
	return candidate, true
}

// set stores next and dispatches it unless it equals the current value.
// It returns the value held afterwards.
func (e *ValueBackedEventSource[T]) set(next func(current T) T) T {
	value, changed := e.swap(next)
	if changed {
		e.emit(func(listener func(T)) {
			listener(value)
		})
	}
	return value
}

// SetValue replaces the current value and notifies listeners if it changed.
func (e *ValueBackedEventSource[T]) SetValue(value T) T {
	return e.set(func(T) T {
		return value
	})
}

// UpdateValue computes the new value from the current one. fn runs with the
// value locked and must not touch the source.
func (e *ValueBackedEventSource[T]) UpdateValue(fn func(current T) T) T {
	return e.set(fn)
}

// Trigger is SetValue without the result.
func (e *ValueBackedEventSource[T]) Trigger(value T) {
	e.SetValue(value)
}

// RemoveAllListeners drops every registration of the source.
func (e *ValueBackedEventSource[T]) RemoveAllListeners() {
	e.removeAll()
}
