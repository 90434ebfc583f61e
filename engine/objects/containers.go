package objects

import (
	"image"

	"github.com/weftworks/weft/engine/gfx/nvg"
	"github.com/weftworks/weft/engine/pd"
)

// --- subpatch ---

// Subpatch is a closed "canvas" node. Opening it spawns another editor
// view; this widget only tracks the bookkeeping.
type Subpatch struct {
	ObjectBase
	open bool
}

func newSubpatch(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &Subpatch{}
	w.initBase(w, patch, obj, arena)
	return w
}

func (w *Subpatch) Kind() Kind { return KindSubpatch }

func (w *Subpatch) IsOpen() bool { return w.open }

func (w *Subpatch) SetOpen(open bool) {
	if w.open != open {
		w.open = open
		w.Repaint()
	}
}

func (w *Subpatch) Paint(g nvg.Graphics) {
	th := w.theme()
	bg := th.ObjectBackground
	if w.open {
		bg = bg.Brighter(0.1)
	}
	w.paintBox(g, bg, th.ObjectOutline)
	b := w.LocalBounds()
	g.SetFontSize(14)
	g.SetFillColor(th.CanvasText)
	g.Text(4, float32(b.H)*0.72, w.Text())
}

// --- graph-on-parent ---

// GraphOnParent shows a subpatch's own GUI area embedded in the parent
// canvas.
type GraphOnParent struct {
	ObjectBase
}

func newGraphOnParent(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &GraphOnParent{}
	w.initBase(w, patch, obj, arena)
	return w
}

func (w *GraphOnParent) Kind() Kind { return KindGraphOnParent }

func (w *GraphOnParent) Paint(g nvg.Graphics) {
	th := w.theme()
	b := w.LocalBounds()
	g.BeginPath()
	g.Rect(0.5, 0.5, float32(b.W)-1, float32(b.H)-1)
	g.SetStrokeColor(th.ObjectOutline)
	g.SetStrokeWidth(1)
	g.Stroke()
	g.SetFontSize(11)
	g.SetFillColor(th.CanvasText)
	g.Text(3, 11, w.Text())
}

// --- plotted widgets ---

// plotCache shares the cached-outline plumbing between array, scope and
// function widgets: the plot is recorded once and replayed until the data
// or the zoom changes.
type plotCache struct {
	path *nvg.CachedPath
}

func (pc *plotCache) invalidate() {
	if pc.path != nil {
		pc.path.Clear()
	}
}

func (pc *plotCache) close() {
	if pc.path != nil {
		pc.path.Close()
		pc.path = nil
	}
}

// stroke replays the cache, rebuilding it through build() on a miss.
func (pc *plotCache) stroke(b *ObjectBase, g nvg.Graphics, build func(*nvg.Path)) {
	cv := b.Canvas()
	if cv == nil {
		p := &nvg.Path{}
		build(p)
		p.Replay(g)
		g.Stroke()
		return
	}
	if pc.path == nil {
		pc.path = nvg.NewCachedPath(cv.Surface().Registry())
	}
	if pc.path.Stroke(g) {
		return
	}
	p := &nvg.Path{}
	build(p)
	pc.path.Save(cv.Surface().Renderer(), p)
	pc.path.Stroke(g)
}

// ArrayWidget plots a garray's contents.
type ArrayWidget struct {
	ObjectBase
	plotCache
	samples []float32
}

func newArrayWidget(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &ArrayWidget{}
	w.initBase(w, patch, obj, arena)
	return w
}

func (w *ArrayWidget) Kind() Kind { return KindArray }

// SetSamples replaces the plotted data.
func (w *ArrayWidget) SetSamples(samples []float32) {
	w.samples = samples
	w.invalidate()
	w.Repaint()
}

func (w *ArrayWidget) Paint(g nvg.Graphics) {
	th := w.theme()
	b := w.LocalBounds()
	g.BeginPath()
	g.Rect(0.5, 0.5, float32(b.W)-1, float32(b.H)-1)
	g.SetFillColor(th.GUIBackground)
	g.Fill()
	g.SetStrokeColor(th.ObjectOutline)
	g.SetStrokeWidth(1)
	g.Stroke()

	if len(w.samples) < 2 {
		return
	}
	g.SetStrokeColor(th.GUIForeground)
	g.SetStrokeWidth(1)
	w.stroke(&w.ObjectBase, g, func(p *nvg.Path) {
		buildPlot(p, w.samples, float32(b.W), float32(b.H), -1, 1)
	})
}

func (w *ArrayWidget) Close() {
	w.close()
	w.ObjectBase.Close()
}

// Scope plots a rolling signal snapshot.
type Scope struct {
	ObjectBase
	plotCache
	samples []float32
}

func newScope(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &Scope{}
	w.initBase(w, patch, obj, arena)
	return w
}

func (w *Scope) Kind() Kind { return KindScope }

// PushSamples installs the next snapshot from the interpreter side.
func (w *Scope) PushSamples(samples []float32) {
	ref := w.ref
	arena := w.arena
	w.inst.RunOnUI(func() {
		if _, ok := arena.Get(ref); !ok {
			return
		}
		w.samples = samples
		w.invalidate()
		w.Repaint()
	})
}

func (w *Scope) Paint(g nvg.Graphics) {
	th := w.theme()
	b := w.LocalBounds()
	g.BeginPath()
	g.Rect(0.5, 0.5, float32(b.W)-1, float32(b.H)-1)
	g.SetFillColor(th.GUIBackground)
	g.Fill()
	g.SetStrokeColor(th.ObjectOutline)
	g.SetStrokeWidth(1)
	g.Stroke()

	if len(w.samples) < 2 {
		return
	}
	g.SetStrokeColor(th.Signal)
	g.SetStrokeWidth(1)
	w.stroke(&w.ObjectBase, g, func(p *nvg.Path) {
		buildPlot(p, w.samples, float32(b.W), float32(b.H), -1, 1)
	})
}

func (w *Scope) Close() {
	w.close()
	w.ObjectBase.Close()
}

// buildPlot records samples as a polyline across the widget, mapping
// [lo,hi] onto the height.
func buildPlot(p *nvg.Path, samples []float32, w, h, lo, hi float32) {
	dx := w / float32(len(samples)-1)
	for i, s := range samples {
		t := (s - lo) / (hi - lo)
		y := (1 - t) * h
		if i == 0 {
			p.MoveTo(0, y)
		} else {
			p.LineTo(float32(i)*dx, y)
		}
	}
}

// FunctionWidget is a breakpoint envelope editor: a set of (x, y) points
// in normalized coordinates joined by lines.
type FunctionWidget struct {
	ObjectBase
	plotCache
	points [][2]float32
}

func newFunctionWidget(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &FunctionWidget{points: [][2]float32{{0, 0}, {1, 0}}}
	w.initBase(w, patch, obj, arena)
	return w
}

func (w *FunctionWidget) Kind() Kind { return KindFunction }

func (w *FunctionWidget) Points() [][2]float32 { return w.points }

func (w *FunctionWidget) SetPoints(points [][2]float32) {
	if len(points) < 2 {
		return
	}
	w.points = points
	w.invalidate()
	w.Repaint()
}

func (w *FunctionWidget) Paint(g nvg.Graphics) {
	th := w.theme()
	b := w.LocalBounds()
	fw, fh := float32(b.W), float32(b.H)
	g.BeginPath()
	g.Rect(0.5, 0.5, fw-1, fh-1)
	g.SetFillColor(th.GUIBackground)
	g.Fill()
	g.SetStrokeColor(th.ObjectOutline)
	g.SetStrokeWidth(1)
	g.Stroke()

	g.SetStrokeColor(th.GUIForeground)
	g.SetStrokeWidth(1.5)
	w.stroke(&w.ObjectBase, g, func(p *nvg.Path) {
		for i, pt := range w.points {
			x, y := pt[0]*fw, (1-pt[1])*fh
			if i == 0 {
				p.MoveTo(x, y)
			} else {
				p.LineTo(x, y)
			}
		}
	})
	for _, pt := range w.points {
		g.BeginPath()
		g.Circle(pt[0]*fw, (1-pt[1])*fh, 2.5)
		g.SetFillColor(th.GUIForeground)
		g.Fill()
	}
}

func (w *FunctionWidget) Close() {
	w.close()
	w.ObjectBase.Close()
}

// --- picture ---

// Picture shows a decoded raster image through the tiled texture cache.
type Picture struct {
	ObjectBase
	img    *nvg.Image
	pixels *image.RGBA
}

func newPicture(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &Picture{}
	w.initBase(w, patch, obj, arena)
	return w
}

func (w *Picture) Kind() Kind { return KindPicture }

// SetImage installs decoded pixels; the texture uploads lazily on the next
// paint.
func (w *Picture) SetImage(img *image.RGBA) {
	w.pixels = img
	if w.img != nil {
		w.img.SetDirty()
	}
	w.Repaint()
}

func (w *Picture) Paint(g nvg.Graphics) {
	cv := w.Canvas()
	if cv == nil || w.pixels == nil {
		return
	}
	if w.img == nil {
		w.img = nvg.NewImage(cv.Surface().Registry())
		w.img.OnInvalidate = func() { w.Repaint() }
	}
	pw, ph := w.pixels.Bounds().Dx(), w.pixels.Bounds().Dy()
	if w.img.NeedsUpdate(pw, ph) {
		w.img.Load(cv.Surface().Renderer(), pw, ph, nvg.ImageARGB, 0, w.pixels.Pix)
	}
	w.img.Render(g, w.LocalBounds())
}

func (w *Picture) Close() {
	if w.img != nil {
		w.img.Close()
		w.img = nil
	}
	w.ObjectBase.Close()
}

// --- non-patchable ---

// NonPatchable is the invisible placeholder for objects that cannot sit on
// a canvas at all.
type NonPatchable struct {
	ObjectBase
}

func newNonPatchable(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &NonPatchable{}
	w.initBase(w, patch, obj, arena)
	w.SetVisible(false)
	return w
}

func (w *NonPatchable) Kind() Kind { return KindNonPatchable }

func (w *NonPatchable) Paint(g nvg.Graphics) {}
