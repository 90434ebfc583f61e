package core

import (
	"log"
	"runtime"
	"time"
)

// Run wires the platform window and executes the main loop. The App owns
// the render surface and composites during OnTick; a clean surface costs
// nothing, so ticking at a fixed rate is cheap.
func Run(app App, cfg Config, newWindow func(Config) (Window, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	eng := &Engine{Window: win, start: time.Now(), ui: NewUIQueue()}
	win.SetEventCallback(func(ev Event) {
		app.OnEvent(eng, ev)
	})

	app.OnStart(eng)

	const tick = time.Second / 60
	prev := time.Now()

	for !win.ShouldClose() {
		win.PollEvents()

		// Interpreter callbacks land between input and the tick so a value
		// change repaints in the same frame.
		eng.ui.Drain()

		now := time.Now()
		app.OnTick(eng, now.Sub(prev).Seconds())
		prev = now

		if wait := tick - time.Since(now); wait > 0 {
			time.Sleep(wait)
		}
	}

	app.OnShutdown(eng)
	log.Println("editor exit")
	return nil
}
