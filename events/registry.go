package events

import (
	"reflect"
	"sync"
	"sync/atomic"
	"unsafe"
)

type (
	slot[L any] struct {
		id  uint64
		fn  L
		ptr uintptr

		// epoch stamp of the removal, zero while the slot is live
		removedAt atomic.Uint64
	}

	// registry is an ordered list of registrations shared by every source
	// flavor. Removal tombstones a slot instead of shifting the slice, so a
	// running dispatch can iterate the slice it grabbed without copying it.
	// Tombstones are compacted once no dispatch is running.
	registry[L any] struct {
		mu          sync.Mutex
		slots       []*slot[L]
		nextID      uint64
		epoch       uint64
		live        int
		tombstones  int
		dispatching int
	}
)

// identity returns the value RemoveListener matches on. A func listener is
// identified by its closure pointer: each capturing closure is distinct, and
// only plain funcs without captures share one. Method values are new
// closures every time they are evaluated. valid is false for nil listeners.
func identity[L any](listener L) (ptr uintptr, valid bool) {
	v := reflect.ValueOf(listener)
	switch v.Kind() {
	case reflect.Invalid:
		return 0, false
	case reflect.Func:
		if v.IsNil() {
			return 0, false
		}
		if reflect.TypeFor[L]().Kind() == reflect.Func {
			return uintptr(*(*unsafe.Pointer)(unsafe.Pointer(&listener))), true
		}
		// a func behind an interface type, only the code pointer is reachable
		return v.Pointer(), true
	case reflect.Pointer, reflect.Chan, reflect.Map, reflect.UnsafePointer:
		if v.IsNil() {
			return 0, false
		}
		return v.Pointer(), true
	}
	// values without a pointer can be registered but never matched
	return 0, true
}

// add appends a registration and returns its slot id and the live count.
func (r *registry[L]) add(fn L, ptr uintptr) (uint64, int) {
	return r.addFunc(func(uint64) L { return fn }, ptr)
}

// addFunc is add for listeners that need their own slot id. build runs
// with r.mu held, before the slot is visible to a dispatch.
func (r *registry[L]) addFunc(build func(id uint64) L, ptr uintptr) (uint64, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	r.slots = append(r.slots, &slot[L]{id: r.nextID, fn: build(r.nextID), ptr: ptr})
	r.live++
	return r.nextID, r.live
}

func (r *registry[L]) removeID(id uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.slots {
		if s.id == id && s.removedAt.Load() == 0 {
			r.tombstone(i)
			return true
		}
	}
	return false
}

// removeFunc removes the first live registration with the given identity.
func (r *registry[L]) removeFunc(ptr uintptr) bool {
	if ptr == 0 {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.slots {
		if s.ptr == ptr && s.removedAt.Load() == 0 {
			r.tombstone(i)
			return true
		}
	}
	return false
}

// the caller holds r.mu
func (r *registry[L]) tombstone(i int) {
	r.slots[i].removedAt.Store(r.epoch + 1)
	r.live--
	if r.dispatching == 0 {
		last := len(r.slots) - 1
		copy(r.slots[i:], r.slots[i+1:])
		r.slots[last] = nil
		r.slots = r.slots[:last]
		return
	}
	r.tombstones++
}

func (r *registry[L]) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.slots {
		if s.removedAt.Load() == 0 {
			s.removedAt.Store(r.epoch + 1)
		}
	}
	r.live = 0
	if r.dispatching == 0 {
		r.slots = nil
		r.tombstones = 0
		return
	}
	r.tombstones = len(r.slots)
}

func (r *registry[L]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.live
}

// dispatch calls call once for every registration live when dispatch
// started, in insertion order. Registrations added while it runs are not
// visited; registrations removed while it runs are still visited. r.mu is
// not held while call runs, and the bookkeeping is released even if call
// panics.
func (r *registry[L]) dispatch(call func(L)) {
	r.mu.Lock()
	if r.live == 0 {
		r.mu.Unlock()
		return
	}
	r.epoch++
	epoch := r.epoch
	snapshot := r.slots[:len(r.slots):len(r.slots)]
	r.dispatching++
	r.mu.Unlock()

	defer r.release()

	for _, s := range snapshot {
		if stamp := s.removedAt.Load(); stamp != 0 && stamp <= epoch {
			continue
		}
		call(s.fn)
	}
}

func (r *registry[L]) release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.dispatching--
	if r.dispatching == 0 && r.tombstones > 0 {
		r.compact()
	}
}

// the caller holds r.mu and no dispatch is running
func (r *registry[L]) compact() {
	n := 0
	for _, s := range r.slots {
		if s.removedAt.Load() == 0 {
			r.slots[n] = s
			n++
		}
	}
	clear(r.slots[n:])
	r.slots = r.slots[:n]
	r.tombstones = 0
}
