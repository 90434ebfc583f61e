package pd

import (
	"fmt"
	"log"
	"sync"
)

// MessageListener receives interpreter-side messages addressed to one
// object. At most one listener may be registered per object at a time; this
// is how the one-wrapper-per-object invariant is enforced.
type MessageListener interface {
	ReceiveMessage(selector string, args []float32)
}

// Message is an outbound message from the GUI toward the interpreter.
type Message struct {
	Name     string
	Selector string
	Args     []float32
}

// MessageSink consumes outbound messages on the interpreter context.
type MessageSink interface {
	HandleMessage(m Message)
}

// Instance is the serialized interpreter execution context. All object
// graph state is owned by a single goroutine draining a function queue;
// the structural mutex covers the few synchronous queries the UI thread is
// allowed to make (class lookups, display-list reordering).
type Instance struct {
	mu sync.Mutex

	// pending is unbounded so enqueueing never blocks the UI thread; the
	// wake channel just nudges the drain goroutine.
	queueMu sync.Mutex
	pending []func()
	wake    chan struct{}
	done    chan struct{}

	listenMu  sync.Mutex
	listeners map[*Object]MessageListener

	sink MessageSink

	// runOnUI marshals a closure back to the UI thread. Installed by the
	// application shell before any widget is created.
	runOnUI func(func())
}

func NewInstance() *Instance {
	in := &Instance{
		wake:      make(chan struct{}, 1),
		done:      make(chan struct{}),
		listeners: make(map[*Object]MessageListener),
	}
	go in.run()
	return in
}

func (in *Instance) run() {
	for {
		select {
		case <-in.wake:
			for {
				in.queueMu.Lock()
				fns := in.pending
				in.pending = nil
				in.queueMu.Unlock()
				if len(fns) == 0 {
					break
				}
				for _, f := range fns {
					select {
					case <-in.done:
						return
					default:
					}
					f()
				}
			}
		case <-in.done:
			return
		}
	}
}

// Close stops the interpreter context. Queued work that has not run yet is
// dropped.
func (in *Instance) Close() {
	close(in.done)
}

// Lock acquires the structural lock. Critical sections must stay bounded:
// a query or a display-list mutation, never a hand-off.
func (in *Instance) Lock()   { in.mu.Lock() }
func (in *Instance) Unlock() { in.mu.Unlock() }

// EnqueueFunction schedules f on the interpreter context and returns
// immediately, however deep the backlog. Enqueued work is expected to run
// before the next redraw tick; there is no timeout.
func (in *Instance) EnqueueFunction(f func()) {
	select {
	case <-in.done:
		return
	default:
	}
	in.queueMu.Lock()
	in.pending = append(in.pending, f)
	in.queueMu.Unlock()
	select {
	case in.wake <- struct{}{}:
	default:
	}
}

// SetUIMarshal installs the hook used to hand values back to the UI thread.
func (in *Instance) SetUIMarshal(f func(func())) { in.runOnUI = f }

// RunOnUI marshals f for asynchronous execution on the UI thread. Before a
// marshal hook is installed the closure runs inline, which only happens in
// tests and during bootstrap.
func (in *Instance) RunOnUI(f func()) {
	if in.runOnUI != nil {
		in.runOnUI(f)
		return
	}
	f()
}

// SetMessageSink installs the consumer for outbound messages.
func (in *Instance) SetMessageSink(s MessageSink) { in.sink = s }

// EnqueueMessages sends a named message (selector plus float payload)
// toward the interpreter, e.g. the transient "gui mouse 1" edition signal.
func (in *Instance) EnqueueMessages(name, selector string, args ...float32) {
	m := Message{Name: name, Selector: selector, Args: args}
	in.EnqueueFunction(func() {
		if in.sink != nil {
			in.sink.HandleMessage(m)
		}
	})
}

// EnqueueDirectValue writes a widget's value to its object on the
// interpreter context.
func (in *Instance) EnqueueDirectValue(obj *Object, v float32) {
	in.EnqueueFunction(func() {
		if obj != nil {
			obj.SetValue(v)
		}
	})
}

// RegisterMessageListener binds l as the single listener for obj. A second
// registration for the same object is rejected, not silently stacked.
func (in *Instance) RegisterMessageListener(obj *Object, l MessageListener) error {
	in.listenMu.Lock()
	defer in.listenMu.Unlock()
	if _, taken := in.listeners[obj]; taken {
		return fmt.Errorf("pd: listener already registered for object %q", obj.Class)
	}
	in.listeners[obj] = l
	return nil
}

// UnregisterMessageListener removes the listener for obj if l still owns
// the slot.
func (in *Instance) UnregisterMessageListener(obj *Object, l MessageListener) {
	in.listenMu.Lock()
	defer in.listenMu.Unlock()
	if cur, ok := in.listeners[obj]; ok && cur == l {
		delete(in.listeners, obj)
	}
}

// DispatchMessage delivers an interpreter-side message to the registered
// listener, if any. Interpreter context only.
func (in *Instance) DispatchMessage(obj *Object, selector string, args []float32) {
	in.listenMu.Lock()
	l := in.listeners[obj]
	in.listenMu.Unlock()
	if l != nil {
		l.ReceiveMessage(selector, args)
	}
}

// ObjectClassName looks up the class of obj under the structural lock.
// Stale handles yield "".
func (in *Instance) ObjectClassName(obj *Object) string {
	in.mu.Lock()
	defer in.mu.Unlock()
	if obj == nil {
		return ""
	}
	return obj.Class
}

// LogError reports a non-fatal interpreter error to the console.
func (in *Instance) LogError(msg string) {
	log.Printf("pd: %s", msg)
}
