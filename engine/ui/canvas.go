package ui

import (
	"github.com/chewxy/math32"

	"github.com/weftworks/weft/engine/colors"
	"github.com/weftworks/weft/engine/geom"
	"github.com/weftworks/weft/engine/gfx/nvg"
)

// Zoom stays inside these bounds; outside them dot grids alias and hit
// targets degenerate.
const (
	MinZoom = 0.25
	MaxZoom = 3.0
)

const dotSpacing = 25

// Canvas is the root of the component tree for one editor view. It owns the
// zoom/pan transform and feeds the surface's per-frame dirty-region walk.
type Canvas struct {
	Component

	surface *nvg.Surface
	view    geom.Transform
	theme   colors.Theme

	ShowDots bool

	captured Element
}

func NewCanvas(s *nvg.Surface, theme colors.Theme) *Canvas {
	cv := &Canvas{surface: s, view: geom.Identity(), theme: theme, ShowDots: true}
	cv.Init(cv)
	cv.canvas = cv
	cv.listener = nvg.NewInvalidationListener(s, cv, false)
	w, h := s.Size()
	cv.bounds = geom.NewRect(0, 0, w, h)
	s.SetDrawFunc(cv.render)
	return cv
}

func (cv *Canvas) Surface() *nvg.Surface { return cv.surface }
func (cv *Canvas) Theme() colors.Theme   { return cv.theme }

func (cv *Canvas) SetTheme(theme colors.Theme) {
	cv.theme = theme
	cv.surface.InvalidateAll()
}

func (cv *Canvas) View() geom.Transform { return cv.view }

// Zoom returns the current scale factor.
func (cv *Canvas) Zoom() float32 { return cv.view.Scale }

// SetZoom rescales around the given surface-space pivot so the point under
// the cursor stays put. The factor is clamped to the legal range.
func (cv *Canvas) SetZoom(scale, pivotX, pivotY float32) {
	scale = math32.Max(MinZoom, math32.Min(MaxZoom, scale))
	if scale == cv.view.Scale {
		return
	}
	// keep pivot fixed: solve for the translation that maps the same canvas
	// point back to the pivot at the new scale
	inv := cv.view.Inverse()
	cx, cy := inv.Apply(pivotX, pivotY)
	cv.view.Scale = scale
	cv.view.Tx = pivotX - cx*scale
	cv.view.Ty = pivotY - cy*scale
	cv.surface.InvalidateAll()
}

// Pan shifts the viewport by a surface-space delta.
func (cv *Canvas) Pan(dx, dy float32) {
	if dx == 0 && dy == 0 {
		return
	}
	cv.view.Tx += dx
	cv.view.Ty += dy
	cv.surface.InvalidateAll()
}

// ZoomSettled is called when a zoom gesture ends. Cached outlines were
// tessellated for the old scale, so all of them are dropped at once.
func (cv *Canvas) ZoomSettled() {
	cv.surface.Registry().ResetPaths()
	cv.surface.InvalidateAll()
}

// ScreenToCanvas maps a surface-space point into canvas coordinates.
func (cv *Canvas) ScreenToCanvas(x, y float32) (float32, float32) {
	return cv.view.Inverse().Apply(x, y)
}

// CanvasToScreen maps a canvas point into surface coordinates.
func (cv *Canvas) CanvasToScreen(x, y float32) (float32, float32) {
	return cv.view.Apply(x, y)
}

// UpdateBounds follows a window resize.
func (cv *Canvas) UpdateBounds(w, h int) {
	cv.bounds = geom.NewRect(0, 0, w, h)
	cv.surface.UpdateBounds(w, h)
}

// --- painting ---

// render is the surface draw callback: area is the dirty region in surface
// space, already scissored.
func (cv *Canvas) render(g nvg.Graphics, area geom.Rect) {
	g.SetFillColor(cv.theme.Canvas)
	g.BeginPath()
	g.Rect(float32(area.X), float32(area.Y), float32(area.W), float32(area.H))
	g.Fill()

	g.Save()
	defer g.Restore()
	g.Translate(cv.view.Tx, cv.view.Ty)
	g.Scale(cv.view.Scale, cv.view.Scale)

	local := cv.view.Inverse().ApplyRect(area.ToFloat()).SmallestIntegerContainer()
	if cv.ShowDots {
		cv.paintDots(g, local)
	}
	for _, child := range cv.children {
		child.Base().paintTree(g, local)
	}
}

// paintDots draws the alignment grid, only inside the dirty region.
func (cv *Canvas) paintDots(g nvg.Graphics, area geom.Rect) {
	g.SetFillColor(cv.theme.CanvasDots)
	g.BeginPath()
	x0 := (area.X / dotSpacing) * dotSpacing
	y0 := (area.Y / dotSpacing) * dotSpacing
	for x := x0; x <= area.Right(); x += dotSpacing {
		for y := y0; y <= area.Bottom(); y += dotSpacing {
			g.Circle(float32(x), float32(y), 1)
		}
	}
	g.Fill()
}

// --- mouse routing ---

// MouseButton identifies which button an event carries.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// MouseEvent carries a pointer event in canvas coordinates.
type MouseEvent struct {
	X, Y   float32
	Button MouseButton
	Shift  bool
	Ctrl   bool
}

// MouseHandler is implemented by elements that react to the pointer.
type MouseHandler interface {
	MouseDown(ev MouseEvent)
	MouseDrag(ev MouseEvent)
	MouseUp(ev MouseEvent)
}

// DispatchMouseDown routes a press (surface coordinates) to the topmost
// element under it and captures that element for the rest of the gesture.
func (cv *Canvas) DispatchMouseDown(x, y float32, button MouseButton, shift, ctrl bool) Element {
	lx, ly := cv.ScreenToCanvas(x, y)
	hit := cv.hitChildren(int(lx), int(ly))
	cv.captured = hit
	if h, ok := hit.(MouseHandler); ok {
		h.MouseDown(MouseEvent{X: lx, Y: ly, Button: button, Shift: shift, Ctrl: ctrl})
	}
	return hit
}

// DispatchMouseDrag routes movement to the captured element.
func (cv *Canvas) DispatchMouseDrag(x, y float32, button MouseButton) {
	if h, ok := cv.captured.(MouseHandler); ok {
		lx, ly := cv.ScreenToCanvas(x, y)
		h.MouseDrag(MouseEvent{X: lx, Y: ly, Button: button})
	}
}

// DispatchMouseUp ends the gesture and releases capture.
func (cv *Canvas) DispatchMouseUp(x, y float32, button MouseButton) {
	if h, ok := cv.captured.(MouseHandler); ok {
		lx, ly := cv.ScreenToCanvas(x, y)
		h.MouseUp(MouseEvent{X: lx, Y: ly, Button: button})
	}
	cv.captured = nil
}

// hitChildren skips the canvas itself so empty space returns nil.
func (cv *Canvas) hitChildren(x, y int) Element {
	for i := len(cv.children) - 1; i >= 0; i-- {
		if hit := cv.children[i].Base().HitTest(x, y); hit != nil {
			return hit
		}
	}
	return nil
}
