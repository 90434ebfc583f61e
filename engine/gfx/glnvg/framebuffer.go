package glnvg

import (
	"log"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/weftworks/weft/engine/geom"
)

// framebuffer is an offscreen render target: RGBA8 color plus a combined
// depth-stencil attachment (nanovg's fill rule needs stencil).
type framebuffer struct {
	fbo     uint32
	color   uint32
	stencil uint32
	w, h    int
}

func newGLFramebuffer(w, h int) *framebuffer {
	fb := &framebuffer{w: w, h: h}

	gl.GenRenderbuffers(1, &fb.color)
	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.color)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.RGBA8, int32(w), int32(h))

	gl.GenRenderbuffers(1, &fb.stencil)
	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.stencil)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, int32(w), int32(h))

	gl.GenFramebuffers(1, &fb.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, fb.color)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, fb.stencil)

	if st := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); st != gl.FRAMEBUFFER_COMPLETE {
		log.Printf("glnvg: framebuffer incomplete: 0x%x", st)
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		fb.delete()
		return nil
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return fb
}

func (fb *framebuffer) delete() {
	if fb.fbo != 0 {
		gl.DeleteFramebuffers(1, &fb.fbo)
	}
	if fb.color != 0 {
		gl.DeleteRenderbuffers(1, &fb.color)
	}
	if fb.stencil != 0 {
		gl.DeleteRenderbuffers(1, &fb.stencil)
	}
	*fb = framebuffer{}
}

func (r *Renderer) CreateFramebuffer(w, h int) int {
	fb := newGLFramebuffer(w, h)
	if fb == nil {
		return 0
	}
	r.nextFBO++
	r.fbos[r.nextFBO] = fb
	return r.nextFBO
}

func (r *Renderer) DeleteFramebuffer(id int) {
	fb, ok := r.fbos[id]
	if !ok {
		return
	}
	if r.boundFB == id {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		r.boundFB = 0
	}
	fb.delete()
	delete(r.fbos, id)
}

func (r *Renderer) BindFramebuffer(id int) {
	if id == 0 {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		r.boundFB = 0
		return
	}
	fb, ok := r.fbos[id]
	if !ok {
		return
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	r.boundFB = id
}

// BlitFramebuffer copies src from fb id onto the window surface at dst.
// Both rectangles are top-left based; GL counts rows from the bottom, so
// each side flips against its own buffer height, which keeps orientation.
func (r *Renderer) BlitFramebuffer(id int, src, dst geom.Rect) {
	fb, ok := r.fbos[id]
	if !ok {
		return
	}
	_, winH := r.win.FramebufferSize()

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fb.fbo)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.BlitFramebuffer(
		int32(src.X), int32(fb.h-src.Y-src.H), int32(src.X+src.W), int32(fb.h-src.Y),
		int32(dst.X), int32(winH-dst.Y-dst.H), int32(dst.X+dst.W), int32(winH-dst.Y),
		gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	r.boundFB = 0
}

// ReadPixels returns tightly packed RGBA for rect, top row first.
func (r *Renderer) ReadPixels(id int, rect geom.Rect) []byte {
	fb, ok := r.fbos[id]
	if !ok || rect.W <= 0 || rect.H <= 0 {
		return nil
	}
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fb.fbo)
	buf := make([]byte, rect.W*rect.H*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(int32(rect.X), int32(fb.h-rect.Y-rect.H), int32(rect.W), int32(rect.H),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(buf))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	// GL hands rows back bottom-up.
	stride := rect.W * 4
	tmp := make([]byte, stride)
	for top, bot := 0, rect.H-1; top < bot; top, bot = top+1, bot-1 {
		copy(tmp, buf[top*stride:(top+1)*stride])
		copy(buf[top*stride:(top+1)*stride], buf[bot*stride:(bot+1)*stride])
		copy(buf[bot*stride:(bot+1)*stride], tmp)
	}
	return buf
}
