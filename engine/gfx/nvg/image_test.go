package nvg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/engine/geom"
	"github.com/weftworks/weft/engine/gfx/nvg"
	"github.com/weftworks/weft/engine/gfx/nvg/nvgtest"
)

func pixels(w, h int) []byte { return make([]byte, w*h*4) }

func TestImageNeedsUpdateLifecycle(t *testing.T) {
	r := nvgtest.NewRenderer()
	reg := nvg.NewRegistry()
	img := nvg.NewImage(reg)
	defer img.Close()

	// first use
	assert.True(t, img.NeedsUpdate(16, 16))

	img.Load(r, 16, 16, nvg.ImageARGB, 0, pixels(16, 16))
	assert.False(t, img.NeedsUpdate(16, 16))

	// size change
	assert.True(t, img.NeedsUpdate(32, 16))

	// explicit dirty mark
	img.SetDirty()
	assert.True(t, img.NeedsUpdate(16, 16))
}

func TestImageSameSizeReloadUpdatesInPlace(t *testing.T) {
	r := nvgtest.NewRenderer()
	reg := nvg.NewRegistry()
	img := nvg.NewImage(reg)
	defer img.Close()

	img.Load(r, 8, 8, nvg.ImageARGB, 0, pixels(8, 8))
	id := img.ImageID()
	require.NotZero(t, id)

	img.Load(r, 8, 8, nvg.ImageARGB, 0, pixels(8, 8))
	assert.Equal(t, id, img.ImageID(), "same-size reload must not reallocate")
	assert.Equal(t, 1, r.ImageUpdates)

	img.Load(r, 8, 16, nvg.ImageARGB, 0, pixels(8, 16))
	assert.NotEqual(t, id, img.ImageID(), "size change reallocates")
}

func TestDirtyImageSameSizeReloadUpdatesInPlace(t *testing.T) {
	r := nvgtest.NewRenderer()
	reg := nvg.NewRegistry()
	img := nvg.NewImage(reg)
	defer img.Close()

	img.Load(r, 8, 8, nvg.ImageARGB, 0, pixels(8, 8))
	id := img.ImageID()
	require.NotZero(t, id)

	img.SetDirty()
	img.Load(r, 8, 8, nvg.ImageARGB, 0, pixels(8, 8))
	assert.Equal(t, id, img.ImageID(), "dirty same-size reload must not reallocate")
	assert.Equal(t, 1, r.ImageUpdates)
	assert.False(t, img.NeedsUpdate(8, 8), "reload clears the dirty mark")
}

func TestOversizedImageIsTiled(t *testing.T) {
	r := nvgtest.NewRenderer()
	r.TextureSize = 64
	reg := nvg.NewRegistry()
	img := nvg.NewImage(reg)
	defer img.Close()

	img.Load(r, 150, 70, nvg.ImageARGB, 0, pixels(150, 70))
	// 150x70 against a 64px limit: 3 columns x 2 rows
	assert.Len(t, r.LiveImages, 6)
	assert.True(t, img.Valid())
	assert.Zero(t, img.ImageID(), "multi-tile image has no single id")

	// composition touches every tile
	g := &nvgtest.Graphics{}
	img.Render(g, geom.NewRect(0, 0, 150, 70))
	assert.Equal(t, 6, g.Count("fillImage"))
}

func TestImageRenderScalesToDestination(t *testing.T) {
	r := nvgtest.NewRenderer()
	reg := nvg.NewRegistry()
	img := nvg.NewImage(reg)
	defer img.Close()
	img.Load(r, 10, 10, nvg.ImageARGB, 0, pixels(10, 10))

	g := &nvgtest.Graphics{}
	img.Render(g, geom.NewRect(5, 5, 20, 40))
	assert.Contains(t, g.Ops, "fillImage 1 5.0 5.0 20.0 40.0")
}

func TestUnrealizedImageRenderIsNoOp(t *testing.T) {
	reg := nvg.NewRegistry()
	img := nvg.NewImage(reg)
	defer img.Close()

	g := &nvgtest.Graphics{}
	img.Render(g, geom.NewRect(0, 0, 10, 10))
	assert.Empty(t, g.Ops)
}

func TestRegistryClearImagesInvalidatesPerContext(t *testing.T) {
	r1 := nvgtest.NewRenderer()
	r2 := nvgtest.NewRenderer()
	reg := nvg.NewRegistry()

	a := nvg.NewImage(reg)
	b := nvg.NewImage(reg)
	defer a.Close()
	defer b.Close()
	a.Load(r1, 4, 4, nvg.ImageARGB, 0, pixels(4, 4))
	b.Load(r2, 4, 4, nvg.ImageARGB, 0, pixels(4, 4))

	invalidated := false
	a.OnInvalidate = func() { invalidated = true }

	reg.ClearImages(r1)
	assert.False(t, a.Valid(), "resource on the torn-down context is gone")
	assert.True(t, b.Valid(), "other context untouched")
	assert.True(t, invalidated)
	assert.Empty(t, r1.LiveImages)

	// lazily recreated on next use
	assert.True(t, a.NeedsUpdate(4, 4))
}

func TestFramebufferLifecycle(t *testing.T) {
	r := nvgtest.NewRenderer()
	reg := nvg.NewRegistry()
	fb := nvg.NewFramebuffer(reg)
	defer fb.Close()

	assert.True(t, fb.NeedsUpdate(100, 100))

	fb.Bind(r, 100, 100)
	fb.Unbind(r)
	assert.False(t, fb.NeedsUpdate(100, 100))
	assert.True(t, fb.NeedsUpdate(200, 100))
	assert.Len(t, r.LiveFramebuffers, 1)

	// rebinding at the same size must not reallocate
	fb.Bind(r, 100, 100)
	fb.Unbind(r)
	assert.Len(t, r.LiveFramebuffers, 1)

	// size change replaces the backend buffer
	fb.Bind(r, 200, 100)
	fb.Unbind(r)
	assert.Len(t, r.LiveFramebuffers, 1)
	assert.False(t, fb.NeedsUpdate(200, 100))

	fb.SetDirty()
	assert.True(t, fb.NeedsUpdate(200, 100))
	fb.RenderTo(r, 200, 100, 1, func(nvg.Graphics) {})
	assert.False(t, fb.NeedsUpdate(200, 100))
}

func TestUnrealizedFramebufferOpsAreNoOps(t *testing.T) {
	r := nvgtest.NewRenderer()
	reg := nvg.NewRegistry()
	fb := nvg.NewFramebuffer(reg)
	defer fb.Close()

	fb.Blit(r, geom.NewRect(0, 0, 1, 1), geom.NewRect(0, 0, 1, 1))
	assert.Empty(t, r.Blits)
	assert.Nil(t, fb.ReadPixels(r, geom.NewRect(0, 0, 1, 1)))
}
