package nvg

import (
	"image"
	"log"

	"github.com/weftworks/weft/engine/geom"
)

// CanvasMargin absorbs anti-aliasing and stroke-width overdraw at the
// edges of an invalidated region.
const CanvasMargin = 32

// SurfaceState tracks the surface lifecycle.
type SurfaceState int

const (
	Uninitialized SurfaceState = iota
	ActiveDirect               // composites straight into the window
	ActiveImage                // composites into an offscreen snapshot
	Detached                   // context released, configuration kept
)

// Surface owns the GPU context for one editor view: it accumulates dirty
// rectangles between frames and composites only the invalidated region.
// One surface exists per top-level editor view; its context may be torn
// down and recreated independently (fullscreen transitions, monitor
// changes) while the surface object persists.
type Surface struct {
	r   Renderer
	reg *Registry

	state        SurfaceState
	throughImage bool
	invalidArea  geom.Rect
	forceRedraw  bool

	fbW, fbH    int
	renderScale float32
	lastScale   float32

	accumFBO *Framebuffer

	draw func(Graphics, geom.Rect)

	// OnFrameImage receives the composited frame in ActiveImage mode, for
	// hosts that cannot embed a persistent GPU-backed child view.
	OnFrameImage func(*image.RGBA)

	timer FrameTimer
}

func NewSurface(r Renderer) *Surface {
	reg := NewRegistry()
	return &Surface{
		r:           r,
		reg:         reg,
		renderScale: 1,
		accumFBO:    NewFramebuffer(reg),
	}
}

func (s *Surface) Renderer() Renderer  { return s.r }
func (s *Surface) Size() (int, int)    { return s.fbW, s.fbH }
func (s *Surface) Registry() *Registry { return s.reg }
func (s *Surface) State() SurfaceState { return s.state }

// SetDrawFunc installs the widget-tree walk invoked for the dirty region
// each composited frame.
func (s *Surface) SetDrawFunc(draw func(Graphics, geom.Rect)) { s.draw = draw }

// Initialise moves the surface into its active state.
func (s *Surface) Initialise() {
	if s.state == ActiveDirect || s.state == ActiveImage {
		return
	}
	s.state = ActiveDirect
	if s.throughImage {
		s.state = ActiveImage
	}
	s.forceRedraw = true
	log.Printf("nvg: surface initialised (%dx%d, scale %.2f)", s.fbW, s.fbH, s.renderScale)
}

// DetachContext releases the GPU context but keeps the surface
// configuration so Initialise can bring it back.
func (s *Surface) DetachContext() {
	if s.state == Uninitialized || s.state == Detached {
		return
	}
	if s.r.MakeCurrent() {
		s.reg.ClearContext(s.r)
	}
	s.state = Detached
}

// SetRenderThroughImage switches between direct and snapshot composition.
// Hosts that cannot keep a GPU-backed child view alive set this. The
// choice survives a detach and is picked up again by Initialise.
func (s *Surface) SetRenderThroughImage(through bool) {
	s.throughImage = through
	switch {
	case through && s.state == ActiveDirect:
		s.state = ActiveImage
	case !through && s.state == ActiveImage:
		s.state = ActiveDirect
	}
	s.forceRedraw = true
}

// RenderingThroughImage reports whether composition goes through an
// offscreen snapshot; invalidation listeners use this to decide whether
// their component still needs a software repaint.
func (s *Surface) RenderingThroughImage() bool { return s.throughImage }

// InvalidateArea unions area into the dirty-region accumulator.
func (s *Surface) InvalidateArea(area geom.Rect) {
	s.invalidArea = s.invalidArea.Union(area)
}

// InvalidateAll marks the whole surface dirty.
func (s *Surface) InvalidateAll() {
	s.InvalidateArea(geom.NewRect(0, 0, s.fbW, s.fbH))
}

// InvalidArea reports the accumulated dirty rectangle since the last
// composited frame.
func (s *Surface) InvalidArea() geom.Rect { return s.invalidArea }

// UpdateBounds resizes the surface backing store and recomputes nothing by
// itself: the caller feeds the fresh device pixel ratio via SetRenderScale.
func (s *Surface) UpdateBounds(w, h int) {
	if w == s.fbW && h == s.fbH {
		return
	}
	s.fbW, s.fbH = w, h
	s.forceRedraw = true
}

// SetRenderScale tracks the platform's device pixel ratio. A change makes
// every pre-rendered cache geometrically wrong, so all of them are
// invalidated on the next frame.
func (s *Surface) SetRenderScale(scale float32) {
	if scale > 0 {
		s.renderScale = scale
	}
}

func (s *Surface) RenderScale() float32 { return s.renderScale }

// FPS reports the moving-average frame rate.
func (s *Surface) FPS() float32 { return s.timer.FPS() }

// Render runs the per-frame algorithm. It reports whether a frame was
// composited; a clean surface issues no GPU work at all.
func (s *Surface) Render() bool {
	if s.state != ActiveDirect && s.state != ActiveImage {
		return false
	}
	area := s.invalidArea.Expanded(CanvasMargin).Intersect(geom.NewRect(0, 0, s.fbW, s.fbH))
	if s.forceRedraw {
		area = geom.NewRect(0, 0, s.fbW, s.fbH)
	}
	if area.Empty() {
		return false
	}
	if !s.r.MakeCurrent() {
		return false
	}

	if s.renderScale != s.lastScale {
		if s.lastScale != 0 {
			s.reg.ClearContext(s.r)
			area = geom.NewRect(0, 0, s.fbW, s.fbH)
		}
		s.lastScale = s.renderScale
	}

	// Compose into the accumulation buffer so pixels outside the dirty
	// region survive from the previous frame.
	s.accumFBO.Bind(s.r, s.fbW, s.fbH)
	s.r.BeginFrame(s.fbW, s.fbH, s.renderScale)
	g := s.r.Graphics()
	g.Scissor(float32(area.X), float32(area.Y), float32(area.W), float32(area.H))
	if s.draw != nil {
		s.draw(g, area)
	}
	s.r.EndFrame()
	s.accumFBO.Unbind(s.r)

	full := geom.NewRect(0, 0, s.fbW, s.fbH)
	if s.state == ActiveImage {
		if s.OnFrameImage != nil {
			s.OnFrameImage(s.frameImage(full))
		}
	} else {
		s.accumFBO.Blit(s.r, full, full)
		s.r.SwapBuffers()
	}

	s.invalidArea = geom.Rect{}
	s.forceRedraw = false
	s.timer.MarkFrame()
	return true
}

// PixelAt reads one pixel back from the composited frame.
func (s *Surface) PixelAt(x, y int) (r, g, b, a uint8) {
	if !s.accumFBO.Valid() || !s.r.MakeCurrent() {
		return 0, 0, 0, 0
	}
	px := s.accumFBO.ReadPixels(s.r, geom.NewRect(x, y, 1, 1))
	if len(px) < 4 {
		return 0, 0, 0, 0
	}
	return px[0], px[1], px[2], px[3]
}

// RenderFrameToImage snapshots area of the last composited frame.
func (s *Surface) RenderFrameToImage(area geom.Rect) *image.RGBA {
	if !s.accumFBO.Valid() || !s.r.MakeCurrent() {
		return nil
	}
	return s.frameImage(area)
}

func (s *Surface) frameImage(area geom.Rect) *image.RGBA {
	px := s.accumFBO.ReadPixels(s.r, area)
	img := image.NewRGBA(image.Rect(0, 0, area.W, area.H))
	copy(img.Pix, px)
	return img
}
