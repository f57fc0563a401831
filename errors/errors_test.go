package errors

import (
	_errors "errors"
	"io"
	"testing"
)

func TestNewListenerPanic(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		err := NewListenerPanic("boom")
		if err.Type != TypeListenerPanic {
			t.Fatalf(`NewListenerPanic("boom").Type = %q, want match for %q`, err.Type, TypeListenerPanic)
		}
		if err.Description != "boom" {
			t.Fatalf(`NewListenerPanic("boom").Description = %q, want match for %q`, err.Description, "boom")
		}
		if err.Unwrap() != nil {
			t.Fatalf(`NewListenerPanic("boom").Unwrap() = %v, want match for nil`, err.Unwrap())
		}
	})

	t.Run("error", func(t *testing.T) {
		err := NewListenerPanic(io.EOF)
		if !_errors.Is(err, io.EOF) {
			t.Fatalf(`errors.Is(NewListenerPanic(io.EOF), io.EOF) = false, want match for true`)
		}
		if !_errors.Is(err, &Error{Type: TypeListenerPanic}) {
			t.Fatalf(`errors.Is(err, &Error{Type: %q}) = false, want match for true`, TypeListenerPanic)
		}
		if _errors.Is(err, &Error{Type: TypeMaxListenersExceeded}) {
			t.Fatalf(`errors.Is(err, &Error{Type: %q}) = true, want match for false`, TypeMaxListenersExceeded)
		}
	})
}

func TestNewMaxListenersExceeded(t *testing.T) {
	err := NewMaxListenersExceeded(3, 2)
	if err.Err().Error() != err.Message {
		t.Fatalf(`Err().Error() = %q, want match for %q`, err.Err().Error(), err.Message)
	}
	if err.Description != "max listeners: 2" {
		t.Fatalf(`Description = %q, want match for %q`, err.Description, "max listeners: 2")
	}
}
