package nvg

import "github.com/weftworks/weft/engine/geom"

// Framebuffer wraps an offscreen render target. Allocation is lazy and
// sticky: the backend buffer is (re)created on first bind or a size change,
// never per frame.
type Framebuffer struct {
	reg *Registry
	r   Renderer

	id         int
	fbW, fbH   int
	dirty      bool
}

func NewFramebuffer(reg *Registry) *Framebuffer {
	fb := &Framebuffer{reg: reg}
	reg.addFB(fb)
	return fb
}

func (fb *Framebuffer) Valid() bool { return fb.id != 0 }

func (fb *Framebuffer) NeedsUpdate(w, h int) bool {
	return fb.id == 0 || w != fb.fbW || h != fb.fbH || fb.dirty
}

func (fb *Framebuffer) SetDirty() { fb.dirty = true }

// Bind allocates (or reallocates on size change) and binds the buffer.
func (fb *Framebuffer) Bind(r Renderer, w, h int) {
	if fb.id == 0 || fb.fbW != w || fb.fbH != h || fb.r != r {
		if fb.id != 0 && fb.r == r {
			r.DeleteFramebuffer(fb.id)
		}
		fb.r = r
		fb.id = r.CreateFramebuffer(w, h)
		fb.fbW, fb.fbH = w, h
	}
	r.BindFramebuffer(fb.id)
}

func (fb *Framebuffer) Unbind(r Renderer) { r.BindFramebuffer(0) }

// RenderTo runs draw into the buffer as its own frame and clears the dirty
// mark.
func (fb *Framebuffer) RenderTo(r Renderer, w, h int, scale float32, draw func(Graphics)) {
	fb.Bind(r, w, h)
	r.BeginFrame(w, h, scale)
	draw(r.Graphics())
	r.EndFrame()
	fb.Unbind(r)
	fb.dirty = false
}

// Blit copies src of the buffer into dst of the window surface. No-op for
// an unrealized buffer.
func (fb *Framebuffer) Blit(r Renderer, src, dst geom.Rect) {
	if fb.id == 0 {
		return
	}
	r.BlitFramebuffer(fb.id, src, dst)
}

// ReadPixels returns the RGBA content of area, nil for an unrealized
// buffer.
func (fb *Framebuffer) ReadPixels(r Renderer, area geom.Rect) []byte {
	if fb.id == 0 {
		return nil
	}
	return r.ReadPixels(fb.id, area)
}

func (fb *Framebuffer) clearFor(r Renderer) {
	if fb.r != r || fb.id == 0 {
		return
	}
	r.DeleteFramebuffer(fb.id)
	fb.id = 0
}

// Close releases the backend buffer (if its context is still current) and
// drops it from the registry.
func (fb *Framebuffer) Close() {
	if fb.id != 0 && fb.r != nil && fb.r.MakeCurrent() {
		fb.r.DeleteFramebuffer(fb.id)
	}
	fb.id = 0
	fb.reg.removeFB(fb)
}
