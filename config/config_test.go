package config

import (
	"testing"
)

func TestSourceOptionsDefauleValue(t *testing.T) {
	opts := &SourceOptions{}

	t.Run("name", func(t *testing.T) {
		if name := opts.Name(); opts.name == nil && name != "" {
			t.Fatalf(`SourceOptions.Name() = %q, want match for %q`, name, "")
		}
	})

	t.Run("maxListeners", func(t *testing.T) {
		if maxListeners := opts.MaxListeners(); opts.maxListeners == nil && maxListeners != 0 {
			t.Fatalf(`SourceOptions.MaxListeners() = %d, want match for %d`, maxListeners, 0)
		}
	})

	t.Run("recoverPanics", func(t *testing.T) {
		if recoverPanics := opts.RecoverPanics(); opts.recoverPanics == nil && recoverPanics != false {
			t.Fatalf(`SourceOptions.RecoverPanics() = %t, want match for %t`, recoverPanics, false)
		}
	})

	t.Run("panicHandler", func(t *testing.T) {
		if panicHandler := opts.PanicHandler(); panicHandler != nil {
			t.Fatalf(`SourceOptions.PanicHandler() = %p, want match for nil`, panicHandler)
		}
	})

	t.Run("debug", func(t *testing.T) {
		if debug := opts.Debug(); opts.debug == nil && debug != false {
			t.Fatalf(`SourceOptions.Debug() = %t, want match for %t`, debug, false)
		}
	})
}

func TestSourceOptionsAssign(t *testing.T) {
	base := DefaultSourceOptions()
	base.SetName("base")
	base.SetMaxListeners(10)
	base.SetRecoverPanics(true)

	opts := DefaultSourceOptions()
	opts.SetName("clicked")
	opts.Assign(base)

	if name := opts.Name(); name != "clicked" {
		t.Fatalf(`SourceOptions.Name() = %q, want match for %q`, name, "clicked")
	}
	if maxListeners := opts.MaxListeners(); maxListeners != 10 {
		t.Fatalf(`SourceOptions.MaxListeners() = %d, want match for %d`, maxListeners, 10)
	}
	if recoverPanics := opts.RecoverPanics(); recoverPanics != true {
		t.Fatalf(`SourceOptions.RecoverPanics() = %t, want match for %t`, recoverPanics, true)
	}

	if opts.GetRawDebug() != nil {
		t.Fatal(`SourceOptions.Assign() should leave fields unset in data unset`)
	}

	if opts.Assign(nil) != opts {
		t.Fatal(`SourceOptions.Assign(nil) should return the receiver`)
	}
}

func TestSourceOptionsAssignChain(t *testing.T) {
	named := DefaultSourceOptions()
	named.SetName("x")
	limited := DefaultSourceOptions()
	limited.SetMaxListeners(1)
	limited.SetName("ignored")

	opts := DefaultSourceOptions()
	opts.Assign(named)
	opts.Assign(limited)

	if name := opts.Name(); name != "x" {
		t.Fatalf(`SourceOptions.Name() = %q, want match for %q`, name, "x")
	}
	if maxListeners := opts.MaxListeners(); maxListeners != 1 {
		t.Fatalf(`SourceOptions.MaxListeners() = %d, want match for %d`, maxListeners, 1)
	}
}
