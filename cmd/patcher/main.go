package main

import (
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/weftworks/weft/engine/colors"
	"github.com/weftworks/weft/engine/config"
	"github.com/weftworks/weft/engine/core"
	"github.com/weftworks/weft/engine/gfx/glnvg"
	"github.com/weftworks/weft/engine/gfx/nvg"
	"github.com/weftworks/weft/engine/objects"
	"github.com/weftworks/weft/engine/pd"
	"github.com/weftworks/weft/engine/platform"
	"github.com/weftworks/weft/engine/ui"
)

const zoomSettleDelay = 250 * time.Millisecond

type App struct {
	win      *platform.GLFWWindow
	settings config.Settings
	confPath string

	renderer *glnvg.Renderer
	surface  *nvg.Surface
	canvas   *ui.Canvas

	inst    *pd.Instance
	patch   *pd.Patch
	arena   *objects.Arena
	watcher *config.Watcher

	scope *objects.Scope
	phase float64

	dragging bool
	dragBtn  ui.MouseButton
	panning  bool
	lastX    float64
	lastY    float64

	// pending zoom gesture; cache reset waits until it settles
	zoomSettle time.Time
}

// consoleSink logs outbound interpreter messages. A real deployment routes
// these into libpd; the editor core only needs a consumer.
type consoleSink struct{}

func (consoleSink) HandleMessage(m pd.Message) {
	log.Printf("pd: -> %s %s %v", m.Name, m.Selector, m.Args)
}

func (a *App) OnStart(e *core.Engine) {
	r, err := glnvg.NewRenderer(a.win)
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}
	a.renderer = r

	fontPath := filepath.Join("assets", "fonts", "DejaVuSans.ttf")
	if err := r.LoadFont("sans", fontPath); err != nil {
		log.Printf("warn: %v (text will not draw)", err)
	}

	a.surface = nvg.NewSurface(r)
	w, h := a.win.FramebufferSize()
	a.surface.UpdateBounds(w, h)
	a.surface.SetRenderScale(a.win.ContentScale())
	a.surface.Initialise()

	a.canvas = ui.NewCanvas(a.surface, themeFromSettings(a.settings))
	if a.settings.Zoom != 1 {
		a.canvas.SetZoom(a.settings.Zoom, float32(w)/2, float32(h)/2)
	}

	a.inst = pd.NewInstance()
	a.inst.SetUIMarshal(e.UI().Push)
	a.inst.SetMessageSink(consoleSink{})
	a.patch = pd.NewPatch(a.inst)
	a.patch.SetTitle("untitled")
	a.arena = objects.NewArena()

	a.buildDemoPatch()

	// Settings changes land on the fsnotify goroutine; repaint on the UI one.
	a.watcher, err = config.Watch(a.confPath, func(s config.Settings) {
		e.UI().Push(func() { a.applySettings(s) })
	})
	if err != nil {
		log.Printf("warn: settings watch: %v", err)
	}

	a.win.SetTitle("weft - " + a.patch.Title())
}

// buildDemoPatch populates the canvas with one of each stock widget until
// patch files load. TODO: replace with the .pd file parser.
func (a *App) buildDemoPatch() {
	mk := func(class string, x, y int) *pd.Object {
		return a.patch.CreateObject(class, x, y)
	}
	for _, obj := range []*pd.Object{
		mk("bng", 30, 30),
		mk("tgl", 80, 30),
		mk("hsl", 30, 80),
		mk("vsl", 180, 30),
		mk("hradio", 30, 120),
		mk("nbx", 30, 160),
		mk("cnv", 230, 120),
		mk("vu", 360, 30),
		mk("floatatom", 120, 160),
		mk("scope~", 230, 200),
	} {
		w := objects.CreateGUI(a.patch, obj, a.canvas, a.arena)
		if s, ok := w.(*objects.Scope); ok {
			a.scope = s
		}
	}

	msg := a.patch.AddObject(&pd.Object{
		Class: "message", Type: pd.TextMessage, SendText: "bang",
		Patchable: true, X: 120, Y: 30, Width: 50, Height: 22,
	})
	objects.CreateGUI(a.patch, msg, a.canvas, a.arena)

	note := a.patch.AddObject(&pd.Object{
		Class: "text", Type: pd.TextComment, SendText: "scroll pans, ctrl+scroll zooms",
		Patchable: true, X: 30, Y: 220, Width: 200, Height: 20,
	})
	objects.CreateGUI(a.patch, note, a.canvas, a.arena)

	log.Printf("demo patch: %d objects", a.patch.Count())
}

func (a *App) applySettings(s config.Settings) {
	a.settings = s
	a.canvas.SetTheme(themeFromSettings(s))
	if s.Zoom != a.canvas.Zoom() {
		w, h := a.surface.Size()
		a.canvas.SetZoom(s.Zoom, float32(w)/2, float32(h)/2)
		a.canvas.ZoomSettled()
	}
}

func (a *App) OnTick(e *core.Engine, dt float64) {
	if !a.zoomSettle.IsZero() && time.Now().After(a.zoomSettle) {
		a.zoomSettle = time.Time{}
		a.canvas.ZoomSettled()
	}

	// Fake signal feed for the scope until DSP is wired up.
	if a.scope != nil {
		a.phase += dt
		samples := make([]float32, 128)
		for i := range samples {
			samples[i] = float32(math.Sin(a.phase*4 + float64(i)*0.1))
		}
		scope := a.scope
		a.inst.EnqueueFunction(func() { scope.PushSamples(samples) })
	}

	a.surface.Render()
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	switch ev := ev.(type) {
	case core.EventResize:
		a.canvas.UpdateBounds(ev.W, ev.H)

	case core.EventScaleChanged:
		a.surface.SetRenderScale(ev.Scale)

	case core.EventMouseButton:
		x, y := a.surfacePos(ev.X, ev.Y)
		btn := ui.MouseButton(ev.Button)
		switch {
		case ev.Down && btn == ui.MouseMiddle:
			a.panning = true
			a.lastX, a.lastY = ev.X, ev.Y
		case ev.Down:
			a.dragging = true
			a.dragBtn = btn
			a.lastX, a.lastY = ev.X, ev.Y
			a.canvas.DispatchMouseDown(x, y, btn,
				ev.Mods&core.ModShift != 0, ev.Mods&core.ModCtrl != 0)
		default:
			if a.panning && btn == ui.MouseMiddle {
				a.panning = false
			} else if a.dragging {
				a.dragging = false
				a.canvas.DispatchMouseUp(x, y, btn)
			}
		}

	case core.EventMouseMove:
		switch {
		case a.panning:
			s := a.win.ContentScale()
			a.canvas.Pan(float32(ev.X-a.lastX)*s, float32(ev.Y-a.lastY)*s)
			a.lastX, a.lastY = ev.X, ev.Y
		case a.dragging:
			x, y := a.surfacePos(ev.X, ev.Y)
			a.canvas.DispatchMouseDrag(x, y, a.dragBtn)
		}

	case core.EventScroll:
		if ev.Mods&core.ModCtrl != 0 {
			x, y := a.surfacePos(ev.X, ev.Y)
			a.canvas.SetZoom(a.canvas.Zoom()*(1+0.1*float32(ev.DY)), x, y)
			a.zoomSettle = time.Now().Add(zoomSettleDelay)
		} else {
			s := a.win.ContentScale()
			a.canvas.Pan(float32(ev.DX)*20*s, float32(ev.DY)*20*s)
		}

	case core.EventKey:
		if !ev.Down || ev.Mods&core.ModCtrl == 0 {
			return
		}
		w, h := a.surface.Size()
		cx, cy := float32(w)/2, float32(h)/2
		switch ev.Key {
		case core.KeyEqual:
			a.canvas.SetZoom(a.canvas.Zoom()*1.25, cx, cy)
			a.canvas.ZoomSettled()
		case core.KeyMinus:
			a.canvas.SetZoom(a.canvas.Zoom()/1.25, cx, cy)
			a.canvas.ZoomSettled()
		case core.Key0:
			a.canvas.SetZoom(1, cx, cy)
			a.canvas.ZoomSettled()
		}
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	if a.watcher != nil {
		a.watcher.Close()
	}

	a.settings.Zoom = a.canvas.Zoom()
	if err := config.Save(a.confPath, a.settings); err != nil {
		log.Printf("warn: %v", err)
	}

	a.inst.Close()
	a.surface.DetachContext()
	a.renderer.Close()
}

// surfacePos maps window cursor coordinates into framebuffer pixels.
func (a *App) surfacePos(x, y float64) (float32, float32) {
	s := a.win.ContentScale()
	return float32(x) * s, float32(y) * s
}

func themeFromSettings(s config.Settings) colors.Theme {
	th := colors.ByName(s.Theme)
	for _, o := range []struct {
		hex string
		dst *colors.Color
	}{
		{s.Colors.Canvas, &th.Canvas},
		{s.Colors.ObjectBackground, &th.ObjectBackground},
		{s.Colors.ObjectOutline, &th.ObjectOutline},
		{s.Colors.SelectedOutline, &th.ObjectSelectedOutline},
	} {
		if c, ok := colors.ParseHex(o.hex); ok {
			*o.dst = c
		}
	}
	return th
}

func settingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "weft.toml"
	}
	return filepath.Join(dir, "weft", "settings.toml")
}

func main() {
	path := settingsPath()
	settings, err := config.Load(path)
	if err != nil {
		log.Printf("warn: %v", err)
	}

	app := &App{settings: settings, confPath: path}
	cfg := core.Config{
		Title:  "weft",
		Width:  settings.Window.Width,
		Height: settings.Window.Height,
		VSync:  settings.Window.VSync,
	}

	err = core.Run(app, cfg, func(c core.Config) (core.Window, error) {
		win, err := platform.NewGLFWWindow(c)
		app.win = win
		return win, err
	})
	if err != nil {
		log.Fatalf("run: %v", err)
	}
}
