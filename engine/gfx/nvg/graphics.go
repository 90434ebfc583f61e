// Package nvg bridges the retained-mode component tree to an immediate-mode
// vector renderer: dirty-region accumulation, GPU resource caches with bulk
// context-loss invalidation, and per-frame composition.
package nvg

import (
	"github.com/weftworks/weft/engine/colors"
	"github.com/weftworks/weft/engine/geom"
)

// Graphics is the vector drawing interface widgets render with. The real
// implementation sits in gfx/glnvg; tests use a recording fake.
type Graphics interface {
	Save()
	Restore()

	Translate(x, y float32)
	Scale(x, y float32)
	Scissor(x, y, w, h float32)
	IntersectScissor(x, y, w, h float32)
	ResetScissor()
	SetGlobalAlpha(a float32)

	BeginPath()
	MoveTo(x, y float32)
	LineTo(x, y float32)
	BezierTo(c1x, c1y, c2x, c2y, x, y float32)
	ClosePath()
	Rect(x, y, w, h float32)
	RoundedRect(x, y, w, h, r float32)
	Circle(cx, cy, r float32)

	SetFillColor(c colors.Color)
	SetStrokeColor(c colors.Color)
	SetStrokeWidth(w float32)
	Fill()
	Stroke()

	// FillImage fills dst with the texture behind id; FillImageAlpha does
	// the same for an alpha-only texture tinted with c.
	FillImage(id int, dst geom.FRect, alpha float32)
	FillImageAlpha(id int, dst geom.FRect, c colors.Color)

	SetFontSize(size float32)
	Text(x, y float32, s string) float32
	TextBounds(s string) (w, h float32)
}

// ImageFormat selects backend texture storage.
type ImageFormat int

const (
	ImageARGB ImageFormat = iota
	ImageAlpha
)

// ImageFlags modify texture behaviour.
type ImageFlags int

const (
	RepeatImage ImageFlags = 1 << iota
	MipMapImage
)

// Renderer is the GPU backend collaborator: a context handle plus resource
// create/update/delete and frame control. Resource ids are backend handles;
// id zero is the never-realized resource and all operations on it are
// silent no-ops.
type Renderer interface {
	// MakeCurrent makes the context current on the calling thread; it must
	// precede any resource operation or draw call. Reports false when the
	// context is gone.
	MakeCurrent() bool
	SwapBuffers()
	MaxTextureSize() int

	Graphics() Graphics
	BeginFrame(width, height int, pixelRatio float32)
	EndFrame()

	CreateImage(w, h int, format ImageFormat, flags ImageFlags, pixels []byte) int
	UpdateImage(id int, pixels []byte)
	DeleteImage(id int)

	CreateFramebuffer(w, h int) int
	DeleteFramebuffer(id int)
	// BindFramebuffer directs subsequent frames into fb id; id zero means
	// the window surface.
	BindFramebuffer(id int)
	// BlitFramebuffer copies src from fb id into dst of the window surface,
	// scaling if the rectangles differ. Runs between frames, never inside
	// one.
	BlitFramebuffer(id int, src, dst geom.Rect)
	// ReadPixels returns tightly packed RGBA pixels of r from fb id.
	ReadPixels(id int, r geom.Rect) []byte
}
