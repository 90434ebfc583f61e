package platform

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/weftworks/weft/engine/core"
)

// GLFWWindow implements core.Window and pushes events to the app via a handler.
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(core.Event)
}

// Must be called on main thread before any GL calls.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	// GL 3.2+ core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	// nanovg wants a stencil buffer for its fill rule
	glfw.WindowHint(glfw.StencilBits, 8)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return nil, err
	}
	log.Printf("GL: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))

	gw := &GLFWWindow{w: win}

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetContentScaleCallback(func(_ *glfw.Window, x, y float32) {
		gw.emit(core.EventScaleChanged{Scale: x})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.emit(core.EventMouseMove{X: x, Y: y})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		x, y := gw.w.GetCursorPos()
		gw.emit(core.EventMouseButton{
			Button: translateButton(button),
			Down:   action == glfw.Press,
			X:      x,
			Y:      y,
			Mods:   translateMods(mods),
		})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		gw.emit(core.EventKey{Key: k, Down: action != glfw.Release, Mods: translateMods(mods)})
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		x, y := gw.w.GetCursorPos()
		// GLFW scroll callbacks carry no modifier state; poll the keys.
		gw.emit(core.EventScroll{DX: xoff, DY: yoff, X: x, Y: y, Mods: gw.keyMods()})
	})

	return gw, nil
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// MakeContextCurrent binds the GL context to the calling thread.
func (g *GLFWWindow) MakeContextCurrent() { g.w.MakeContextCurrent() }

// SwapBuffers presents the window surface.
func (g *GLFWWindow) SwapBuffers() { g.w.SwapBuffers() }

// core.Window impl
func (g *GLFWWindow) PollEvents()                 { glfw.PollEvents() }
func (g *GLFWWindow) ShouldClose() bool           { return g.w.ShouldClose() }
func (g *GLFWWindow) FramebufferSize() (int, int) { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)           { g.w.SetTitle(t) }

func (g *GLFWWindow) ContentScale() float32 {
	x, _ := g.w.GetContentScale()
	return x
}

func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

// keyMods reads the live modifier state for callbacks that do not carry it.
func (g *GLFWWindow) keyMods() core.Mod {
	return modsFromKeys(
		g.pressed(glfw.KeyLeftShift) || g.pressed(glfw.KeyRightShift),
		g.pressed(glfw.KeyLeftControl) || g.pressed(glfw.KeyRightControl),
		g.pressed(glfw.KeyLeftAlt) || g.pressed(glfw.KeyRightAlt),
		g.pressed(glfw.KeyLeftSuper) || g.pressed(glfw.KeyRightSuper),
	)
}

func (g *GLFWWindow) pressed(k glfw.Key) bool { return g.w.GetKey(k) == glfw.Press }

func modsFromKeys(shift, ctrl, alt, super bool) core.Mod {
	var out core.Mod
	if shift {
		out |= core.ModShift
	}
	if ctrl {
		out |= core.ModCtrl
	}
	if alt {
		out |= core.ModAlt
	}
	if super {
		out |= core.ModSuper
	}
	return out
}

func translateButton(b glfw.MouseButton) int {
	switch b {
	case glfw.MouseButtonRight:
		return 1
	case glfw.MouseButtonMiddle:
		return 2
	default:
		return 0
	}
}

func translateKey(k glfw.Key) core.Key {
	switch k {
	case glfw.KeyEscape:
		return core.KeyEscape
	case glfw.KeySpace:
		return core.KeySpace
	case glfw.KeyDelete, glfw.KeyBackspace:
		return core.KeyDelete
	case glfw.KeyEqual:
		return core.KeyEqual
	case glfw.KeyMinus:
		return core.KeyMinus
	case glfw.Key0:
		return core.Key0
	default:
		return core.KeyUnknown
	}
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
