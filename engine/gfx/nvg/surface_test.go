package nvg_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/engine/geom"
	"github.com/weftworks/weft/engine/gfx/nvg"
	"github.com/weftworks/weft/engine/gfx/nvg/nvgtest"
)

func newTestSurface(r *nvgtest.Renderer) *nvg.Surface {
	s := nvg.NewSurface(r)
	s.UpdateBounds(800, 600)
	s.Initialise()
	s.Render() // consume the initial forced redraw
	return s
}

func TestDirtyAccumulationIsUnionOfInvalidations(t *testing.T) {
	r := nvgtest.NewRenderer()
	s := newTestSurface(r)

	s.InvalidateArea(geom.NewRect(10, 10, 20, 20))
	s.InvalidateArea(geom.NewRect(100, 50, 10, 10))
	s.InvalidateArea(geom.NewRect(0, 0, 5, 5))

	assert.Equal(t, geom.NewRect(0, 0, 110, 60), s.InvalidArea())
}

func TestRenderSkipsWhenClean(t *testing.T) {
	r := nvgtest.NewRenderer()
	s := newTestSurface(r)

	frames := r.Frames
	assert.False(t, s.Render(), "clean surface must issue no GPU work")
	assert.Equal(t, frames, r.Frames)
}

func TestRenderCompositesDirtyRegionAndClears(t *testing.T) {
	r := nvgtest.NewRenderer()
	s := newTestSurface(r)

	var gotArea geom.Rect
	s.SetDrawFunc(func(g nvg.Graphics, area geom.Rect) { gotArea = area })

	s.InvalidateArea(geom.NewRect(100, 100, 50, 50))
	require.True(t, s.Render())

	// dirty rect expanded by the canvas margin, clipped to the surface
	assert.Equal(t, geom.NewRect(100-nvg.CanvasMargin, 100-nvg.CanvasMargin,
		50+2*nvg.CanvasMargin, 50+2*nvg.CanvasMargin), gotArea)

	// cleared exactly once per composited frame
	assert.True(t, s.InvalidArea().Empty())
	assert.False(t, s.Render())
}

func TestRenderBlitsAndSwapsInDirectMode(t *testing.T) {
	r := nvgtest.NewRenderer()
	s := newTestSurface(r)

	swaps := r.Swaps
	s.InvalidateAll()
	require.True(t, s.Render())
	assert.Equal(t, swaps+1, r.Swaps)
	assert.NotEmpty(t, r.Blits)
}

func TestRenderThroughImageDeliversSnapshot(t *testing.T) {
	r := nvgtest.NewRenderer()
	s := newTestSurface(r)
	s.SetRenderThroughImage(true)
	assert.Equal(t, nvg.ActiveImage, s.State())

	delivered := false
	s.OnFrameImage = func(img *image.RGBA) {
		delivered = true
		assert.Equal(t, 800, img.Bounds().Dx())
	}

	swaps := r.Swaps
	s.InvalidateAll()
	require.True(t, s.Render())
	assert.True(t, delivered)
	assert.Equal(t, swaps, r.Swaps, "image mode never touches the window surface")
}

func TestRenderNoOpWhenContextGone(t *testing.T) {
	r := nvgtest.NewRenderer()
	s := newTestSurface(r)

	r.Current = false
	s.InvalidateAll()
	assert.False(t, s.Render())
	// dirty area survives for the next attempt
	assert.False(t, s.InvalidArea().Empty())
}

func TestDetachAndReinitialise(t *testing.T) {
	r := nvgtest.NewRenderer()
	s := newTestSurface(r)

	reg := s.Registry()
	img := nvg.NewImage(reg)
	defer img.Close()
	img.Load(r, 4, 4, nvg.ImageARGB, 0, make([]byte, 64))

	s.DetachContext()
	assert.Equal(t, nvg.Detached, s.State())
	assert.False(t, img.Valid(), "detach sweeps the context's resources")

	s.InvalidateAll()
	assert.False(t, s.Render(), "detached surface renders nothing")

	s.Initialise()
	assert.Equal(t, nvg.ActiveDirect, s.State())
	assert.True(t, s.Render(), "reinitialise forces a full redraw")
}

func TestRenderScaleChangeInvalidatesCaches(t *testing.T) {
	r := nvgtest.NewRenderer()
	s := newTestSurface(r)

	img := nvg.NewImage(s.Registry())
	defer img.Close()
	img.Load(r, 4, 4, nvg.ImageARGB, 0, make([]byte, 64))

	s.SetRenderScale(2)
	s.InvalidateArea(geom.NewRect(0, 0, 1, 1))
	require.True(t, s.Render())

	assert.False(t, img.Valid(), "scale change drops pre-rendered caches")
}
