// Package nvgtest provides recording fakes for the nvg interfaces so cache
// and widget behaviour can be tested without a GPU context.
package nvgtest

import (
	"fmt"

	"github.com/weftworks/weft/engine/colors"
	"github.com/weftworks/weft/engine/geom"
	"github.com/weftworks/weft/engine/gfx/nvg"
)

// Graphics records every drawing call as a readable op string.
type Graphics struct {
	Ops []string
}

func (g *Graphics) op(format string, args ...any) {
	g.Ops = append(g.Ops, fmt.Sprintf(format, args...))
}

func (g *Graphics) Reset() { g.Ops = nil }

// Count reports how many recorded ops start with name.
func (g *Graphics) Count(name string) int {
	n := 0
	for _, op := range g.Ops {
		if len(op) >= len(name) && op[:len(name)] == name {
			n++
		}
	}
	return n
}

func (g *Graphics) Save()    { g.op("save") }
func (g *Graphics) Restore() { g.op("restore") }

func (g *Graphics) Translate(x, y float32) { g.op("translate %.1f %.1f", x, y) }
func (g *Graphics) Scale(x, y float32)     { g.op("scale %.2f %.2f", x, y) }
func (g *Graphics) Scissor(x, y, w, h float32) {
	g.op("scissor %.1f %.1f %.1f %.1f", x, y, w, h)
}
func (g *Graphics) IntersectScissor(x, y, w, h float32) {
	g.op("intersectScissor %.1f %.1f %.1f %.1f", x, y, w, h)
}
func (g *Graphics) ResetScissor()            { g.op("resetScissor") }
func (g *Graphics) SetGlobalAlpha(a float32) { g.op("globalAlpha %.2f", a) }

func (g *Graphics) BeginPath()          { g.op("beginPath") }
func (g *Graphics) MoveTo(x, y float32) { g.op("moveTo %.1f %.1f", x, y) }
func (g *Graphics) LineTo(x, y float32) { g.op("lineTo %.1f %.1f", x, y) }
func (g *Graphics) BezierTo(c1x, c1y, c2x, c2y, x, y float32) {
	g.op("bezierTo %.1f %.1f %.1f %.1f %.1f %.1f", c1x, c1y, c2x, c2y, x, y)
}
func (g *Graphics) ClosePath()                 { g.op("closePath") }
func (g *Graphics) Rect(x, y, w, h float32)    { g.op("rect %.1f %.1f %.1f %.1f", x, y, w, h) }
func (g *Graphics) RoundedRect(x, y, w, h, r float32) {
	g.op("roundedRect %.1f %.1f %.1f %.1f %.1f", x, y, w, h, r)
}
func (g *Graphics) Circle(cx, cy, r float32) { g.op("circle %.1f %.1f %.1f", cx, cy, r) }

func (g *Graphics) SetFillColor(c colors.Color)   { g.op("fillColor %.2f %.2f %.2f %.2f", c[0], c[1], c[2], c[3]) }
func (g *Graphics) SetStrokeColor(c colors.Color) { g.op("strokeColor %.2f %.2f %.2f %.2f", c[0], c[1], c[2], c[3]) }
func (g *Graphics) SetStrokeWidth(w float32)      { g.op("strokeWidth %.1f", w) }
func (g *Graphics) Fill()                         { g.op("fill") }
func (g *Graphics) Stroke()                       { g.op("stroke") }

func (g *Graphics) FillImage(id int, dst geom.FRect, alpha float32) {
	g.op("fillImage %d %.1f %.1f %.1f %.1f", id, dst.X, dst.Y, dst.W, dst.H)
}
func (g *Graphics) FillImageAlpha(id int, dst geom.FRect, c colors.Color) {
	g.op("fillImageAlpha %d %.1f %.1f %.1f %.1f", id, dst.X, dst.Y, dst.W, dst.H)
}

func (g *Graphics) SetFontSize(size float32) { g.op("fontSize %.1f", size) }
func (g *Graphics) Text(x, y float32, s string) float32 {
	g.op("text %.1f %.1f %q", x, y, s)
	return x + float32(len(s))*7
}
func (g *Graphics) TextBounds(s string) (float32, float32) {
	return float32(len(s)) * 7, 14
}

// Renderer is an in-memory nvg.Renderer. It hands out sequential resource
// ids and keeps counters the tests assert on.
type Renderer struct {
	G Graphics

	Current     bool // MakeCurrent result
	TextureSize int  // MaxTextureSize result; 0 means the 8192 default

	nextID int

	LiveImages       map[int][]byte
	LiveFramebuffers map[int][2]int
	ImageUpdates     int
	Frames           int
	Blits            []string
	Swaps            int
	BoundFB          int
}

func NewRenderer() *Renderer {
	return &Renderer{
		Current:          true,
		nextID:           1,
		LiveImages:       map[int][]byte{},
		LiveFramebuffers: map[int][2]int{},
	}
}

func (r *Renderer) MakeCurrent() bool { return r.Current }
func (r *Renderer) SwapBuffers()      { r.Swaps++ }

func (r *Renderer) MaxTextureSize() int { return r.TextureSize }

func (r *Renderer) Graphics() nvg.Graphics { return &r.G }

func (r *Renderer) BeginFrame(w, h int, pixelRatio float32) { r.Frames++ }
func (r *Renderer) EndFrame()                               {}

func (r *Renderer) CreateImage(w, h int, format nvg.ImageFormat, flags nvg.ImageFlags, pixels []byte) int {
	id := r.nextID
	r.nextID++
	r.LiveImages[id] = pixels
	return id
}

func (r *Renderer) UpdateImage(id int, pixels []byte) {
	if id == 0 {
		return
	}
	if _, ok := r.LiveImages[id]; ok {
		r.LiveImages[id] = pixels
		r.ImageUpdates++
	}
}

func (r *Renderer) DeleteImage(id int) {
	if id == 0 {
		return
	}
	delete(r.LiveImages, id)
}

func (r *Renderer) CreateFramebuffer(w, h int) int {
	id := r.nextID
	r.nextID++
	r.LiveFramebuffers[id] = [2]int{w, h}
	return id
}

func (r *Renderer) DeleteFramebuffer(id int) {
	if id == 0 {
		return
	}
	delete(r.LiveFramebuffers, id)
}

func (r *Renderer) BindFramebuffer(id int) { r.BoundFB = id }

func (r *Renderer) BlitFramebuffer(id int, src, dst geom.Rect) {
	if id == 0 {
		return
	}
	r.Blits = append(r.Blits, fmt.Sprintf("blit %d %v -> %v", id, src, dst))
}

func (r *Renderer) ReadPixels(id int, area geom.Rect) []byte {
	return make([]byte, area.W*area.H*4)
}
