// Package objects bridges the interpreter's live object graph onto GUI
// widgets: one widget per interpreter object, with bidirectional value
// synchronization between the UI thread and the interpreter context.
package objects

import "sync"

// Ref is a generation-checked weak reference into a widget arena. Deferred
// callbacks capture a Ref instead of a widget pointer; dereferencing after
// the widget is gone yields absent, which the callback treats as
// cancellation.
type Ref struct {
	index uint32
	gen   uint32
}

type slot struct {
	gen uint32
	w   Widget
}

// Arena holds the live widgets of one editor view.
type Arena struct {
	mu    sync.Mutex
	slots []slot
	free  []uint32
}

func NewArena() *Arena { return &Arena{} }

// Add registers w and returns its weak reference.
func (a *Arena) Add(w Widget) Ref {
	a.mu.Lock()
	defer a.mu.Unlock()
	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[i].w = w
		return Ref{index: i, gen: a.slots[i].gen}
	}
	a.slots = append(a.slots, slot{w: w})
	return Ref{index: uint32(len(a.slots) - 1)}
}

// Get dereferences ref. The second result is false once the widget has been
// removed, or when the slot was reused for a newer widget.
func (a *Arena) Get(ref Ref) (Widget, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if int(ref.index) >= len(a.slots) {
		return nil, false
	}
	s := a.slots[ref.index]
	if s.gen != ref.gen || s.w == nil {
		return nil, false
	}
	return s.w, true
}

// Alive reports whether ref still points at a live widget.
func (a *Arena) Alive(ref Ref) bool {
	_, ok := a.Get(ref)
	return ok
}

// Remove frees ref's slot and bumps its generation so stale references can
// never resolve to a later occupant.
func (a *Arena) Remove(ref Ref) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if int(ref.index) >= len(a.slots) {
		return
	}
	s := &a.slots[ref.index]
	if s.gen != ref.gen || s.w == nil {
		return
	}
	s.w = nil
	s.gen++
	a.free = append(a.free, ref.index)
}
