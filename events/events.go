// Package events provides strongly typed, synchronous event sources.
//
// A source pairs a trigger capability, kept by its owner, with a handle that
// consumers use to subscribe. Four flavors exist: argument-less events
// (NewEvent), single value events (NewValueEvent), value-backed events that
// retain and de-duplicate their current value (NewValueBackedEvent), and
// events with an arbitrary listener signature (NewCustomEvent).
//
// Listeners run inline on the goroutine calling Trigger, in registration
// order. A listener that panics aborts the remaining dispatch and the panic
// reaches the caller, unless the source was created with
// SourceOptions.SetRecoverPanics(true).
//
// Sources never drop listeners on their own: a listener that is never
// removed lives as long as its source.
package events

import (
	"sync/atomic"

	"github.com/iyioio/named-events/config"
	"github.com/iyioio/named-events/errors"
	"github.com/iyioio/named-events/log"
)

var events_log = log.NewLog("events")

type (
	// Remover cancels one registration. Calling it again is a no-op.
	Remover func()

	// Subscribable is the consumer side of a source.
	Subscribable[L any] interface {
		// Subscribe registers listener and returns a Remover for that
		// registration.
		Subscribe(L) Remover
		// AddListener registers listener without allocating a Remover.
		AddListener(L)
		// RemoveListener removes the first registration of listener, if any.
		RemoveListener(L)
		// ListenerCount returns the number of live registrations.
		ListenerCount() int
	}

	// Handle is the subscribe capability of a source. It can not trigger.
	Handle[L any] struct {
		registry registry[L]
		options  *config.SourceOptions
		log      *log.Log

		warned atomic.Bool
	}

	source[L any] struct {
		*Handle[L]
	}
)

func noop() {}

func newHandle[L any](opts []config.SourceOptionsInterface) *Handle[L] {
	options := config.DefaultSourceOptions()
	for _, opt := range opts {
		options.Assign(opt)
	}

	h := &Handle[L]{options: options, log: events_log}
	name := options.Name()
	if name == "" && options.Debug() {
		name = "anonymous"
	}
	if name != "" {
		h.log = events_log.Extend(name)
		h.log.DEBUG = options.Debug()
	}
	return h
}

func newSource[L any](opts []config.SourceOptionsInterface) source[L] {
	return source[L]{Handle: newHandle[L](opts)}
}

func (h *Handle[L]) subscribe(build func(id uint64) L, ptr uintptr) Remover {
	id, count := h.registry.addFunc(build, ptr)

	if limit := h.options.MaxListeners(); limit > 0 && count > int(limit) && h.warned.CompareAndSwap(false, true) {
		h.log.Warning("%s", errors.NewMaxListenersExceeded(count, limit).Error())
	}
	h.log.Debug("listener %d added, %d registered", id, count)

	return func() {
		h.remove(id)
	}
}

func (h *Handle[L]) remove(id uint64) {
	if h.registry.removeID(id) {
		h.log.Debug("listener %d removed", id)
	}
}

func (h *Handle[L]) Subscribe(listener L) Remover {
	ptr, valid := identity(listener)
	if !valid {
		return noop
	}
	return h.subscribe(func(uint64) L { return listener }, ptr)
}

// AddListener is [Handle.Subscribe] without the Remover.
func (h *Handle[L]) AddListener(listener L) {
	h.Subscribe(listener)
}

func (h *Handle[L]) RemoveListener(listener L) {
	ptr, valid := identity(listener)
	if !valid {
		return
	}
	if h.registry.removeFunc(ptr) {
		h.log.Debug("listener removed by identity")
	}
}

func (h *Handle[L]) ListenerCount() int {
	return h.registry.len()
}

// subscribeOnce registers the listener built by wrap under the identity of
// listener, so RemoveListener(listener) cancels it.
func (h *Handle[L]) subscribeOnce(listener L, wrap func(fired func() bool) L) Remover {
	ptr, valid := identity(listener)
	if !valid {
		return noop
	}

	return h.subscribe(func(id uint64) L {
		var done atomic.Bool
		return wrap(func() bool {
			if !done.CompareAndSwap(false, true) {
				return false
			}
			h.remove(id)
			return true
		})
	}, ptr)
}

func (h *Handle[L]) removeAll() {
	n := h.registry.len()
	h.registry.clear()
	h.log.Info("%d listeners removed", n)
}

func (h *Handle[L]) emit(call func(L)) {
	if h.log.DebugEnabled() {
		h.log.Debug("dispatching to %d listeners", h.registry.len())
	}

	if !h.options.RecoverPanics() {
		h.registry.dispatch(call)
		return
	}

	h.registry.dispatch(func(listener L) {
		defer h.catch()
		call(listener)
	})
}

// catch must be deferred directly.
func (h *Handle[L]) catch() {
	if r := recover(); r != nil {
		err := errors.NewListenerPanic(r)
		if handler := h.options.PanicHandler(); handler != nil {
			handler(err)
			return
		}
		h.log.Error("%s", err.Error())
	}
}

// Evt returns the subscribe-only handle to hand out to consumers.
func (s source[L]) Evt() *Handle[L] {
	return s.Handle
}

// RemoveAllListeners drops every registration of the source.
func (s source[L]) RemoveAllListeners() {
	s.removeAll()
}

type onceSubscriber[L any] interface {
	subscribeOnce(L, func(func() bool) L) Remover
}

// Once registers listener on evt for a single call. The registration is
// removed right before listener runs.
func Once(evt onceSubscriber[func()], listener func()) Remover {
	return evt.subscribeOnce(listener, func(fired func() bool) func() {
		return func() {
			if fired() {
				listener()
			}
		}
	})
}

// OnceValue is [Once] for value events.
func OnceValue[T any](evt onceSubscriber[func(T)], listener func(T)) Remover {
	return evt.subscribeOnce(listener, func(fired func() bool) func(T) {
		return func(value T) {
			if fired() {
				listener(value)
			}
		}
	})
}

// JoinRemoveListeners returns a Remover calling every remover in order. A
// panicking remover does not stop the others; the first panic is re-raised
// once all of them ran.
func JoinRemoveListeners(removers ...Remover) Remover {
	return func() {
		var (
			first    any
			panicked bool
		)
		for _, remove := range removers {
			if remove == nil {
				continue
			}
			func() {
				defer func() {
					if r := recover(); r != nil && !panicked {
						first, panicked = r, true
					}
				}()
				remove()
			}()
		}
		if panicked {
			panic(first)
		}
	}
}
