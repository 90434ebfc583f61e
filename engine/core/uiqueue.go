package core

import "sync"

// UIQueue marshals closures onto the UI thread. Producers (the interpreter
// context) push from any goroutine; the run loop drains once per tick.
type UIQueue struct {
	mu  sync.Mutex
	fns []func()
}

func NewUIQueue() *UIQueue { return &UIQueue{} }

// Push schedules f for the next drain. Safe from any goroutine.
func (q *UIQueue) Push(f func()) {
	q.mu.Lock()
	q.fns = append(q.fns, f)
	q.mu.Unlock()
}

// Drain runs every queued closure in push order on the calling thread.
// Closures pushed while draining run on the next drain.
func (q *UIQueue) Drain() {
	q.mu.Lock()
	fns := q.fns
	q.fns = nil
	q.mu.Unlock()
	for _, f := range fns {
		f()
	}
}

// Len reports the number of pending closures.
func (q *UIQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.fns)
}
