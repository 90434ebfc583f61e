// Package glnvg implements the nvg.Renderer contract on OpenGL 3.3 core
// with nanovgo as the vector rasterizer. One Renderer wraps one window
// context; the surface drives it through MakeCurrent/BeginFrame/EndFrame.
package glnvg

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/shibukawa/nanovgo"

	"github.com/weftworks/weft/engine/gfx/nvg"
)

// ContextWindow is the subset of the platform window the renderer needs.
type ContextWindow interface {
	MakeContextCurrent()
	SwapBuffers()
	FramebufferSize() (int, int)
}

type texture struct {
	format nvg.ImageFormat
	w, h   int
	// mask holds the one-byte-per-pixel source of an alpha texture so the
	// tint can be baked into the texels on demand; nanovgo image paints
	// have no color modulation.
	mask []byte
	tint [4]float32
}

// Renderer owns the nanovgo context and the GL-side resources (textures,
// framebuffers) handed out to the nvg caches. Not safe for concurrent use;
// everything runs on the UI thread.
type Renderer struct {
	win  ContextWindow
	ctx  *nanovgo.Context
	g    *graphics
	lost bool

	maxTex   int
	fontName string

	images  map[int]*texture
	fbos    map[int]*framebuffer
	nextFBO int
	boundFB int
}

// NewRenderer creates the nanovgo context on the window's GL context. The
// context must already be current on the calling thread.
func NewRenderer(win ContextWindow) (*Renderer, error) {
	ctx, err := nanovgo.NewContext(nanovgo.AntiAlias | nanovgo.StencilStrokes)
	if err != nil {
		return nil, fmt.Errorf("glnvg: create context: %w", err)
	}

	var maxTex int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &maxTex)
	log.Printf("glnvg: context ready (max texture %d)", maxTex)

	r := &Renderer{
		win:    win,
		ctx:    ctx,
		maxTex: int(maxTex),
		images: map[int]*texture{},
		fbos:   map[int]*framebuffer{},
	}
	r.g = &graphics{ctx: ctx, r: r}
	return r, nil
}

// LoadFont registers a TTF file under name and makes it the face used by
// text drawing.
func (r *Renderer) LoadFont(name, path string) error {
	if id := r.ctx.CreateFont(name, path); id == -1 {
		return fmt.Errorf("glnvg: load font %q from %s", name, path)
	}
	r.fontName = name
	return nil
}

// LoadFontFromMemory registers an in-memory TTF under name.
func (r *Renderer) LoadFontFromMemory(name string, data []byte) error {
	if id := r.ctx.CreateFontFromMemory(name, data, 0); id == -1 {
		return fmt.Errorf("glnvg: load font %q from memory", name)
	}
	r.fontName = name
	return nil
}

// Close tears down the nanovgo context and every GL resource still alive.
// MakeCurrent reports false afterwards.
func (r *Renderer) Close() {
	if r.lost {
		return
	}
	r.win.MakeContextCurrent()
	for id := range r.images {
		r.ctx.DeleteImage(id)
	}
	r.images = map[int]*texture{}
	for id, fb := range r.fbos {
		fb.delete()
		delete(r.fbos, id)
	}
	r.ctx.Delete()
	r.lost = true
}

// --- nvg.Renderer ---

func (r *Renderer) MakeCurrent() bool {
	if r.lost {
		return false
	}
	r.win.MakeContextCurrent()
	return true
}

func (r *Renderer) SwapBuffers()        { r.win.SwapBuffers() }
func (r *Renderer) MaxTextureSize() int { return r.maxTex }

func (r *Renderer) Graphics() nvg.Graphics { return r.g }

func (r *Renderer) BeginFrame(width, height int, pixelRatio float32) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.ctx.BeginFrame(width, height, pixelRatio)
	// nanovgo resets its state stack between frames.
	if r.fontName != "" {
		r.ctx.SetFontFace(r.fontName)
	}
	r.ctx.SetTextAlign(nanovgo.AlignLeft | nanovgo.AlignBaseline)
}

func (r *Renderer) EndFrame() {
	r.ctx.EndFrame()
}

func (r *Renderer) CreateImage(w, h int, format nvg.ImageFormat, flags nvg.ImageFlags, pixels []byte) int {
	var nf nanovgo.ImageFlags
	if flags&nvg.RepeatImage != 0 {
		nf |= nanovgo.ImageRepeatX | nanovgo.ImageRepeatY
	}
	if flags&nvg.MipMapImage != 0 {
		nf |= nanovgo.ImageGenerateMipmaps
	}

	tex := &texture{format: format, w: w, h: h, tint: [4]float32{1, 1, 1, 1}}
	var rgba []byte
	if format == nvg.ImageAlpha {
		tex.mask = append([]byte(nil), pixels...)
		rgba = expandAlpha(tex.mask, tex.tint)
	} else {
		rgba = pixels
	}

	id := r.ctx.CreateImageRGBA(w, h, nf, rgba)
	if id == 0 {
		return 0
	}
	r.images[id] = tex
	return id
}

func (r *Renderer) UpdateImage(id int, pixels []byte) {
	tex, ok := r.images[id]
	if !ok {
		return
	}
	if tex.format == nvg.ImageAlpha {
		tex.mask = append(tex.mask[:0], pixels...)
		pixels = expandAlpha(tex.mask, tex.tint)
	}
	if err := r.ctx.UpdateImage(id, pixels); err != nil {
		log.Printf("glnvg: update image %d: %v", id, err)
	}
}

func (r *Renderer) DeleteImage(id int) {
	if _, ok := r.images[id]; !ok {
		return
	}
	r.ctx.DeleteImage(id)
	delete(r.images, id)
}

// retint rebakes an alpha texture's texels with c if the tint changed.
func (r *Renderer) retint(id int, c [4]float32) {
	tex, ok := r.images[id]
	if !ok || tex.format != nvg.ImageAlpha || tex.tint == c {
		return
	}
	tex.tint = c
	if err := r.ctx.UpdateImage(id, expandAlpha(tex.mask, c)); err != nil {
		log.Printf("glnvg: retint image %d: %v", id, err)
	}
}

func expandAlpha(mask []byte, tint [4]float32) []byte {
	out := make([]byte, len(mask)*4)
	cr := uint8(tint[0] * 255)
	cg := uint8(tint[1] * 255)
	cb := uint8(tint[2] * 255)
	for i, a := range mask {
		out[i*4+0] = cr
		out[i*4+1] = cg
		out[i*4+2] = cb
		out[i*4+3] = uint8(float32(a) * tint[3])
	}
	return out
}
