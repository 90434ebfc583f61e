package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/engine/colors"
	"github.com/weftworks/weft/engine/geom"
	"github.com/weftworks/weft/engine/gfx/nvg"
	"github.com/weftworks/weft/engine/gfx/nvg/nvgtest"
	"github.com/weftworks/weft/engine/ui"
)

// box is a minimal paintable element for tree tests.
type box struct {
	ui.Component
	painted int

	downs, drags, ups int
	lastEvent         ui.MouseEvent
}

func newBox(b geom.Rect) *box {
	e := &box{}
	e.Init(e)
	e.SetBounds(b)
	return e
}

func (e *box) Paint(g nvg.Graphics) { e.painted++ }

func (e *box) MouseDown(ev ui.MouseEvent) { e.downs++; e.lastEvent = ev }
func (e *box) MouseDrag(ev ui.MouseEvent) { e.drags++; e.lastEvent = ev }
func (e *box) MouseUp(ev ui.MouseEvent)   { e.ups++; e.lastEvent = ev }

func newTestCanvas(t *testing.T) (*nvgtest.Renderer, *nvg.Surface, *ui.Canvas) {
	t.Helper()
	r := nvgtest.NewRenderer()
	s := nvg.NewSurface(r)
	s.UpdateBounds(640, 480)
	s.Initialise()
	cv := ui.NewCanvas(s, colors.DefaultTheme())
	require.True(t, s.Render())
	return r, s, cv
}

func TestAddChildMarksItsAreaDirty(t *testing.T) {
	_, s, cv := newTestCanvas(t)

	cv.AddChild(newBox(geom.NewRect(100, 100, 50, 20)))
	area := s.InvalidArea()
	assert.True(t, area.Contains(geom.NewRect(100, 100, 50, 20)))
}

func TestSetBoundsRepaintsOldAndNewArea(t *testing.T) {
	_, s, cv := newTestCanvas(t)
	b := newBox(geom.NewRect(10, 10, 30, 30))
	cv.AddChild(b)
	require.True(t, s.Render())

	b.SetBounds(geom.NewRect(200, 200, 30, 30))
	area := s.InvalidArea()
	assert.True(t, area.Contains(geom.NewRect(10, 10, 30, 30)), "vacated area repaints")
	assert.True(t, area.Contains(geom.NewRect(200, 200, 30, 30)), "new area repaints")
}

func TestHiddenChildNeitherPaintsNorInvalidates(t *testing.T) {
	_, s, cv := newTestCanvas(t)
	b := newBox(geom.NewRect(10, 10, 30, 30))
	cv.AddChild(b)
	require.True(t, s.Render())
	painted := b.painted

	b.SetVisible(false)
	require.True(t, s.Render(), "hiding repaints the vacated area")
	assert.Equal(t, painted, b.painted)

	b.Repaint()
	assert.True(t, s.InvalidArea().Empty(), "hidden elements do not invalidate")
}

func TestRenderWalksOnlyIntersectingChildren(t *testing.T) {
	_, s, cv := newTestCanvas(t)
	near := newBox(geom.NewRect(0, 0, 20, 20))
	far := newBox(geom.NewRect(400, 400, 20, 20))
	cv.AddChild(near)
	cv.AddChild(far)
	require.True(t, s.Render())
	near.painted, far.painted = 0, 0

	near.Repaint()
	require.True(t, s.Render())
	assert.Equal(t, 1, near.painted)
	assert.Zero(t, far.painted, "clean far child stays out of the walk")
}

func TestHitTestPrefersFrontmost(t *testing.T) {
	_, _, cv := newTestCanvas(t)
	back := newBox(geom.NewRect(10, 10, 100, 100))
	front := newBox(geom.NewRect(50, 50, 100, 100))
	cv.AddChild(back)
	cv.AddChild(front) // later child paints on top

	assert.Equal(t, ui.Element(front), cv.DispatchMouseDown(60, 60, ui.MouseLeft, false, false))
	cv.DispatchMouseUp(60, 60, ui.MouseLeft)
	assert.Equal(t, ui.Element(back), cv.DispatchMouseDown(20, 20, ui.MouseLeft, false, false))
	cv.DispatchMouseUp(20, 20, ui.MouseLeft)
	assert.Nil(t, cv.DispatchMouseDown(600, 400, ui.MouseLeft, false, false))
}

func TestMouseCaptureFollowsGesture(t *testing.T) {
	_, _, cv := newTestCanvas(t)
	b := newBox(geom.NewRect(10, 10, 40, 40))
	cv.AddChild(b)

	cv.DispatchMouseDown(20, 20, ui.MouseLeft, false, false)
	cv.DispatchMouseDrag(500, 500, ui.MouseLeft) // far outside, still captured
	cv.DispatchMouseUp(500, 500, ui.MouseLeft)
	assert.Equal(t, 1, b.downs)
	assert.Equal(t, 1, b.drags)
	assert.Equal(t, 1, b.ups)

	cv.DispatchMouseDrag(20, 20, ui.MouseLeft)
	assert.Equal(t, 1, b.drags, "no capture outside a gesture")
}

func TestZoomClampsAndKeepsPivotFixed(t *testing.T) {
	_, s, cv := newTestCanvas(t)

	cv.SetZoom(10, 0, 0)
	assert.InDelta(t, ui.MaxZoom, cv.Zoom(), 1e-6)
	cv.SetZoom(0.01, 0, 0)
	assert.InDelta(t, ui.MinZoom, cv.Zoom(), 1e-6)

	cv.SetZoom(1, 0, 0)
	s.Render()

	// the canvas point under the pivot must map back to the pivot
	px, py := float32(320), float32(240)
	cx, cy := cv.ScreenToCanvas(px, py)
	cv.SetZoom(2, px, py)
	gotX, gotY := cv.CanvasToScreen(cx, cy)
	assert.InDelta(t, px, gotX, 1e-3)
	assert.InDelta(t, py, gotY, 1e-3)

	assert.False(t, s.InvalidArea().Empty(), "zoom invalidates everything")
}

func TestZoomSettledDropsCachedPaths(t *testing.T) {
	r, s, cv := newTestCanvas(t)

	cp := nvg.NewCachedPath(s.Registry())
	defer cp.Close()
	p := &nvg.Path{}
	p.MoveTo(0, 0)
	p.LineTo(5, 5)
	cp.Save(r, p)

	cv.SetZoom(2, 0, 0)
	require.True(t, cp.Valid(), "caches survive while the gesture is live")
	cv.ZoomSettled()
	assert.False(t, cp.Valid())
}

func TestScreenCanvasRoundTripUnderPan(t *testing.T) {
	_, _, cv := newTestCanvas(t)
	cv.SetZoom(1.5, 100, 80)
	cv.Pan(-30, 42)

	x, y := cv.ScreenToCanvas(222, 111)
	gx, gy := cv.CanvasToScreen(x, y)
	assert.InDelta(t, float32(222), gx, 1e-3)
	assert.InDelta(t, float32(111), gy, 1e-3)
}

func TestMouseEventsArriveInCanvasCoordinates(t *testing.T) {
	_, _, cv := newTestCanvas(t)
	b := newBox(geom.NewRect(0, 0, 400, 400))
	cv.AddChild(b)

	cv.SetZoom(2, 0, 0)
	cv.DispatchMouseDown(100, 60, ui.MouseLeft, true, false)
	assert.InDelta(t, float32(50), b.lastEvent.X, 1e-3)
	assert.InDelta(t, float32(30), b.lastEvent.Y, 1e-3)
	assert.True(t, b.lastEvent.Shift)
	cv.DispatchMouseUp(100, 60, ui.MouseLeft)
}
