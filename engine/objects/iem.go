package objects

import (
	"strconv"

	"github.com/chewxy/math32"

	"github.com/weftworks/weft/engine/gfx/nvg"
	"github.com/weftworks/weft/engine/pd"
	"github.com/weftworks/weft/engine/ui"
)

// --- bang ---

type Bang struct {
	GUIObject
}

func newBang(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &Bang{}
	w.initGUI(w, patch, obj, arena)
	return w
}

func (w *Bang) Kind() Kind { return KindBang }

func (w *Bang) Paint(g nvg.Graphics) {
	th := w.theme()
	w.paintBox(g, th.GUIBackground, th.ObjectOutline)
	b := w.LocalBounds()
	cx, cy := float32(b.W)/2, float32(b.H)/2
	r := math32.Min(cx, cy) - 3
	g.BeginPath()
	g.Circle(cx, cy, r)
	if w.GetValueOriginal() != 0 {
		g.SetFillColor(th.GUIForeground)
		g.Fill()
	}
	g.SetStrokeColor(th.GUIForeground)
	g.SetStrokeWidth(1)
	g.Stroke()
}

func (w *Bang) MouseDown(ev ui.MouseEvent) {
	w.StartEdition()
	w.SetValueOriginal(1)
}

func (w *Bang) MouseDrag(ev ui.MouseEvent) {}

func (w *Bang) MouseUp(ev ui.MouseEvent) {
	w.SetValueOriginal(0)
	w.StopEdition()
}

// --- button ---

type Button struct {
	GUIObject
}

func newButton(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &Button{}
	w.initGUI(w, patch, obj, arena)
	return w
}

func (w *Button) Kind() Kind { return KindButton }

func (w *Button) Paint(g nvg.Graphics) {
	th := w.theme()
	bg := th.GUIBackground
	if w.GetValueOriginal() != 0 {
		bg = th.GUIForeground
	}
	w.paintBox(g, bg, th.ObjectOutline)
}

func (w *Button) MouseDown(ev ui.MouseEvent) {
	w.StartEdition()
	w.SetValueOriginal(1)
}

func (w *Button) MouseDrag(ev ui.MouseEvent) {}

func (w *Button) MouseUp(ev ui.MouseEvent) {
	w.SetValueOriginal(0)
	w.StopEdition()
}

// --- toggle ---

type Toggle struct {
	GUIObject
}

func newToggle(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &Toggle{}
	w.initGUI(w, patch, obj, arena)
	return w
}

func (w *Toggle) Kind() Kind { return KindToggle }

func (w *Toggle) Paint(g nvg.Graphics) {
	th := w.theme()
	w.paintBox(g, th.GUIBackground, th.ObjectOutline)
	if w.GetValueOriginal() == 0 {
		return
	}
	b := w.LocalBounds()
	inset := float32(b.W) * 0.25
	g.BeginPath()
	g.MoveTo(inset, inset)
	g.LineTo(float32(b.W)-inset, float32(b.H)-inset)
	g.MoveTo(float32(b.W)-inset, inset)
	g.LineTo(inset, float32(b.H)-inset)
	g.SetStrokeColor(th.GUIForeground)
	g.SetStrokeWidth(2)
	g.Stroke()
}

func (w *Toggle) MouseDown(ev ui.MouseEvent) {
	w.StartEdition()
	if w.GetValueOriginal() != 0 {
		w.SetValueOriginal(0)
	} else {
		w.SetValueOriginal(1)
	}
}

func (w *Toggle) MouseDrag(ev ui.MouseEvent) {}
func (w *Toggle) MouseUp(ev ui.MouseEvent)   { w.StopEdition() }

// --- slider ---

type Slider struct {
	GUIObject
	vertical bool
}

func newSliderH(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &Slider{}
	w.initGUI(w, patch, obj, arena)
	return w
}

func newSliderV(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &Slider{vertical: true}
	w.initGUI(w, patch, obj, arena)
	return w
}

// newSlider resolves the bare "slider" class by aspect ratio.
func newSlider(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	if obj.Height > obj.Width {
		return newSliderV(patch, obj, arena)
	}
	return newSliderH(patch, obj, arena)
}

func (w *Slider) Kind() Kind {
	if w.vertical {
		return KindSliderV
	}
	return KindSliderH
}

func (w *Slider) Paint(g nvg.Graphics) {
	th := w.theme()
	w.paintBox(g, th.GUIBackground, th.ObjectOutline)
	b := w.LocalBounds()
	t := math32.Max(0, math32.Min(1, w.GetValueScaled()))
	g.BeginPath()
	if w.vertical {
		// scaled position 0 sits at the bottom
		y := (1 - t) * float32(b.H-4)
		g.Rect(2, 2+y, float32(b.W)-4, 2)
	} else {
		x := t * float32(b.W-4)
		g.Rect(2+x, 2, 2, float32(b.H)-4)
	}
	g.SetFillColor(th.GUIForeground)
	g.Fill()
}

func (w *Slider) positionToScaled(ev ui.MouseEvent) float32 {
	b := w.Bounds()
	var t float32
	if w.vertical {
		t = 1 - (ev.Y-float32(b.Y))/float32(b.H)
	} else {
		t = (ev.X - float32(b.X)) / float32(b.W)
	}
	return math32.Max(0, math32.Min(1, t))
}

func (w *Slider) MouseDown(ev ui.MouseEvent) {
	w.StartEdition()
	w.SetValueScaled(w.positionToScaled(ev))
}

func (w *Slider) MouseDrag(ev ui.MouseEvent) {
	w.SetValueScaled(w.positionToScaled(ev))
}

func (w *Slider) MouseUp(ev ui.MouseEvent) { w.StopEdition() }

// --- radio ---

type Radio struct {
	GUIObject
	vertical bool
	cells    int
}

func newRadioH(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &Radio{cells: radioCells(obj, false)}
	w.initGUI(w, patch, obj, arena)
	return w
}

func newRadioV(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &Radio{vertical: true, cells: radioCells(obj, true)}
	w.initGUI(w, patch, obj, arena)
	return w
}

// radioCells derives the cell count from the aspect ratio: each cell is
// square.
func radioCells(obj *pd.Object, vertical bool) int {
	n := 8
	if vertical && obj.Width > 0 {
		n = obj.Height / obj.Width
	} else if !vertical && obj.Height > 0 {
		n = obj.Width / obj.Height
	}
	return max(n, 1)
}

func (w *Radio) Kind() Kind {
	if w.vertical {
		return KindRadioV
	}
	return KindRadioH
}

func (w *Radio) Cells() int { return w.cells }

func (w *Radio) Paint(g nvg.Graphics) {
	th := w.theme()
	w.paintBox(g, th.GUIBackground, th.ObjectOutline)
	b := w.LocalBounds()
	sel := int(w.GetValueOriginal())
	for i := 0; i < w.cells; i++ {
		var cx, cy, cw, ch float32
		if w.vertical {
			ch = float32(b.H) / float32(w.cells)
			cx, cy, cw = 0, float32(i)*ch, float32(b.W)
		} else {
			cw = float32(b.W) / float32(w.cells)
			cx, cy, ch = float32(i)*cw, 0, float32(b.H)
		}
		g.BeginPath()
		g.Rect(cx, cy, cw, ch)
		g.SetStrokeColor(th.ObjectOutline)
		g.SetStrokeWidth(1)
		g.Stroke()
		if i == sel {
			g.BeginPath()
			g.Rect(cx+3, cy+3, cw-6, ch-6)
			g.SetFillColor(th.GUIForeground)
			g.Fill()
		}
	}
}

func (w *Radio) MouseDown(ev ui.MouseEvent) {
	w.StartEdition()
	b := w.Bounds()
	var i int
	if w.vertical {
		i = int((ev.Y - float32(b.Y)) / float32(b.H) * float32(w.cells))
	} else {
		i = int((ev.X - float32(b.X)) / float32(b.W) * float32(w.cells))
	}
	w.SetValueOriginal(float32(min(max(i, 0), w.cells-1)))
}

func (w *Radio) MouseDrag(ev ui.MouseEvent) {}
func (w *Radio) MouseUp(ev ui.MouseEvent)   { w.StopEdition() }

// --- number boxes ---

type NumberBox struct {
	GUIObject
	signal bool

	dragStart float32
	dragValue float32
}

func newNumberBox(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &NumberBox{}
	w.initGUI(w, patch, obj, arena)
	return w
}

func newSignalNumberBox(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &NumberBox{signal: true}
	w.initGUI(w, patch, obj, arena)
	return w
}

func (w *NumberBox) Kind() Kind {
	if w.signal {
		return KindSignalNumber
	}
	return KindNumber
}

func (w *NumberBox) Paint(g nvg.Graphics) {
	th := w.theme()
	w.paintBox(g, th.GUIBackground, th.ObjectOutline)
	b := w.LocalBounds()
	fg := th.GUIForeground
	if w.signal {
		fg = th.Signal
	}
	// flag-shaped left marker
	g.BeginPath()
	g.MoveTo(2, 3)
	g.LineTo(7, float32(b.H)/2)
	g.LineTo(2, float32(b.H)-3)
	g.SetStrokeColor(fg)
	g.SetStrokeWidth(1)
	g.Stroke()
	g.SetFontSize(float32(b.H) * 0.6)
	g.SetFillColor(th.CanvasText)
	g.Text(10, float32(b.H)*0.72, strconv.FormatFloat(float64(w.GetValueOriginal()), 'g', 5, 32))
}

func (w *NumberBox) MouseDown(ev ui.MouseEvent) {
	w.StartEdition()
	w.dragStart = ev.Y
	w.dragValue = w.GetValueOriginal()
}

// MouseDrag adjusts the value by vertical distance, one unit per pixel.
func (w *NumberBox) MouseDrag(ev ui.MouseEvent) {
	w.SetValueOriginal(w.dragValue + (w.dragStart - ev.Y))
}

func (w *NumberBox) MouseUp(ev ui.MouseEvent) { w.StopEdition() }

// --- cnv ---

// CanvasWidget is the IEM background panel ("cnv"). It carries no value.
type CanvasWidget struct {
	ObjectBase
}

func newCanvasWidget(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &CanvasWidget{}
	w.initBase(w, patch, obj, arena)
	return w
}

func (w *CanvasWidget) Kind() Kind { return KindCanvas }

func (w *CanvasWidget) Paint(g nvg.Graphics) {
	th := w.theme()
	b := w.LocalBounds()
	g.BeginPath()
	g.Rect(0, 0, float32(b.W), float32(b.H))
	g.SetFillColor(th.GUIBackground)
	g.Fill()
}

// --- vu ---

type VUMeter struct {
	GUIObject
}

func newVUMeter(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &VUMeter{}
	w.initGUI(w, patch, obj, arena)
	return w
}

func (w *VUMeter) Kind() Kind { return KindVU }

const vuFloor = -100 // dB at the bottom of the scale

func (w *VUMeter) Paint(g nvg.Graphics) {
	th := w.theme()
	w.paintBox(g, th.GUIBackground, th.ObjectOutline)
	b := w.LocalBounds()
	level := math32.Max(0, math32.Min(1, (w.GetValueOriginal()-vuFloor)/-vuFloor))
	h := level * float32(b.H-4)
	g.BeginPath()
	g.Rect(2, float32(b.H-2)-h, float32(b.W)-4, h)
	g.SetFillColor(th.Signal)
	g.Fill()
}
