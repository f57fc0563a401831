package errors

import (
	"fmt"
)

const (
	// TypeListenerPanic marks a value recovered from a panicking listener.
	TypeListenerPanic = "ListenerPanic"
	// TypeMaxListenersExceeded marks a possible listener leak on a source.
	TypeMaxListenersExceeded = "MaxListenersExceeded"
)

type Error struct {
	Message     string
	Type        string
	Description string
	Cause       error
}

func New(message string) *Error {
	return &Error{Message: message}
}

// NewListenerPanic wraps the value returned by recover() inside a listener.
func NewListenerPanic(recovered any) *Error {
	e := &Error{
		Type:        TypeListenerPanic,
		Description: fmt.Sprint(recovered),
	}
	if err, ok := recovered.(error); ok {
		e.Cause = err
	}
	e.Message = "(events) listener panicked: " + e.Description
	return e
}

func NewMaxListenersExceeded(count int, limit uint) *Error {
	return &Error{
		Message:     fmt.Sprintf("(events) warning: possible event source memory leak detected. %d listeners added. Use SourceOptions.SetMaxListeners(n uint) to increase limit.", count),
		Type:        TypeMaxListenersExceeded,
		Description: fmt.Sprintf("max listeners: %d", limit),
	}
}

func (e *Error) Err() error {
	return e
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same Type.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Type == "" {
		return false
	}
	return e.Type == t.Type
}
