package core

import "time"

// App defines the editor application hooks.
type App interface {
	OnStart(e *Engine)            // called once after window init
	OnTick(e *Engine, dt float64) // called at a fixed tick (60Hz)
	OnEvent(e *Engine, ev Event)  // input/window events
	OnShutdown(e *Engine)         // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window Window
	start  time.Time
	ui     *UIQueue
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// UI returns the marshal queue drained on the UI thread every tick. The
// interpreter bridge posts its callbacks here.
func (e *Engine) UI() *UIQueue { return e.ui }

// Window abstraction.
type Window interface {
	PollEvents()
	ShouldClose() bool
	FramebufferSize() (int, int)
	ContentScale() float32 // device pixel ratio
	SetTitle(title string)
	SetEventCallback(func(Event))
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventScaleChanged struct{ Scale float32 }

func (EventScaleChanged) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventMouseButton struct {
	Button int // 0 left, 1 right, 2 middle
	Down   bool
	X, Y   float64
	Mods   Mod
}

func (EventMouseButton) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventScroll struct {
	DX, DY float64
	X, Y   float64
	Mods   Mod
}

func (EventScroll) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyDelete
	KeyEqual // zoom in with Ctrl
	KeyMinus // zoom out with Ctrl
	Key0     // zoom reset with Ctrl
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

// Config for the editor run.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}
