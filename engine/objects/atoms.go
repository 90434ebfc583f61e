package objects

import (
	"strconv"

	"github.com/weftworks/weft/engine/colors"
	"github.com/weftworks/weft/engine/geom"
	"github.com/weftworks/weft/engine/gfx/nvg"
	"github.com/weftworks/weft/engine/pd"
	"github.com/weftworks/weft/engine/ui"
)

// --- comment ---

// Comment is free-standing canvas text: no box, no value.
type Comment struct {
	ObjectBase
}

func newComment(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &Comment{}
	w.initBase(w, patch, obj, arena)
	return w
}

func (w *Comment) Kind() Kind { return KindComment }

func (w *Comment) Paint(g nvg.Graphics) {
	th := w.theme()
	b := w.LocalBounds()
	g.SetFontSize(14)
	g.SetFillColor(th.CanvasText)
	g.Text(2, float32(b.H)*0.72, w.Text())
}

// --- text object ---

// TextObject renders any patchable object without a dedicated widget: the
// plain box with its creation text. It is also the fallback for classes the
// factory does not know.
type TextObject struct {
	ObjectBase
}

func newTextObject(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &TextObject{}
	w.initBase(w, patch, obj, arena)
	return w
}

func (w *TextObject) Kind() Kind { return KindTextObject }

func (w *TextObject) Paint(g nvg.Graphics) {
	th := w.theme()
	w.paintBox(g, th.ObjectBackground, th.ObjectOutline)
	b := w.LocalBounds()
	g.SetFontSize(14)
	g.SetFillColor(th.CanvasText)
	g.Text(4, float32(b.H)*0.72, w.Text())
}

// --- message ---

type MessageBox struct {
	ObjectBase
	flashed bool
}

func newMessageBox(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &MessageBox{}
	w.initBase(w, patch, obj, arena)
	return w
}

func (w *MessageBox) Kind() Kind { return KindMessage }

func (w *MessageBox) Paint(g nvg.Graphics) {
	th := w.theme()
	b := w.LocalBounds()
	fw, fh := float32(b.W), float32(b.H)
	bg := th.ObjectBackground
	if w.flashed {
		bg = th.ObjectBackground.Brighter(0.2)
	}
	// message boxes carry the notched right edge
	g.BeginPath()
	g.MoveTo(0.5, 0.5)
	g.LineTo(fw-0.5, 0.5)
	g.LineTo(fw-4.5, fh/2)
	g.LineTo(fw-0.5, fh-0.5)
	g.LineTo(0.5, fh-0.5)
	g.ClosePath()
	g.SetFillColor(bg)
	g.Fill()
	g.SetStrokeColor(th.ObjectOutline)
	g.SetStrokeWidth(1)
	g.Stroke()
	g.SetFontSize(14)
	g.SetFillColor(th.CanvasText)
	g.Text(4, fh*0.72, w.Text())
}

// MouseDown fires the message: the whole creation text is sent as a bang
// toward the interpreter.
func (w *MessageBox) MouseDown(ev ui.MouseEvent) {
	w.flashed = true
	w.Repaint()
	w.inst.EnqueueMessages(w.Text(), "bang")
}

func (w *MessageBox) MouseDrag(ev ui.MouseEvent) {}

func (w *MessageBox) MouseUp(ev ui.MouseEvent) {
	w.flashed = false
	w.Repaint()
}

// --- atoms ---

// FloatAtom is the numeric flavor of "gatom".
type FloatAtom struct {
	GUIObject

	dragStart float32
	dragValue float32
}

func newFloatAtom(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &FloatAtom{}
	w.initGUI(w, patch, obj, arena)
	return w
}

func (w *FloatAtom) Kind() Kind { return KindFloatAtom }

func (w *FloatAtom) Paint(g nvg.Graphics) {
	th := w.theme()
	paintAtomBox(g, w.LocalBounds().ToFloat(), th)
	b := w.LocalBounds()
	g.SetFontSize(float32(b.H) * 0.6)
	g.SetFillColor(th.CanvasText)
	g.Text(4, float32(b.H)*0.72, strconv.FormatFloat(float64(w.GetValueOriginal()), 'g', 5, 32))
}

func (w *FloatAtom) MouseDown(ev ui.MouseEvent) {
	w.StartEdition()
	w.dragStart = ev.Y
	w.dragValue = w.GetValueOriginal()
}

func (w *FloatAtom) MouseDrag(ev ui.MouseEvent) {
	w.SetValueOriginal(w.dragValue + (w.dragStart - ev.Y))
}

func (w *FloatAtom) MouseUp(ev ui.MouseEvent) { w.StopEdition() }

// SymbolAtom is the symbol flavor of "gatom".
type SymbolAtom struct {
	ObjectBase
	symbol string
}

func newSymbolAtom(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &SymbolAtom{}
	w.initBase(w, patch, obj, arena)
	return w
}

func (w *SymbolAtom) Kind() Kind { return KindSymbolAtom }

func (w *SymbolAtom) Symbol() string { return w.symbol }

func (w *SymbolAtom) Paint(g nvg.Graphics) {
	th := w.theme()
	paintAtomBox(g, w.LocalBounds().ToFloat(), th)
	b := w.LocalBounds()
	g.SetFontSize(float32(b.H) * 0.6)
	g.SetFillColor(th.CanvasText)
	g.Text(4, float32(b.H)*0.72, w.symbol)
}

// ReceiveMessage tracks symbol pushes from the interpreter.
func (w *SymbolAtom) ReceiveMessage(selector string, args []float32) {
	if selector == "symbol" {
		ref := w.ref
		arena := w.arena
		w.inst.RunOnUI(func() {
			if _, ok := arena.Get(ref); ok {
				w.Repaint()
			}
		})
	}
}

// ListAtom is the list flavor of "gatom" (a null-flavored atom box).
type ListAtom struct {
	ObjectBase
}

func newListAtom(patch *pd.Patch, obj *pd.Object, arena *Arena) Widget {
	w := &ListAtom{}
	w.initBase(w, patch, obj, arena)
	return w
}

func (w *ListAtom) Kind() Kind { return KindListAtom }

func (w *ListAtom) Paint(g nvg.Graphics) {
	th := w.theme()
	paintAtomBox(g, w.LocalBounds().ToFloat(), th)
	b := w.LocalBounds()
	g.SetFontSize(float32(b.H) * 0.6)
	g.SetFillColor(th.CanvasText)
	g.Text(4, float32(b.H)*0.72, w.Text())
}

// paintAtomBox draws the atom frame with its folded top-right corner.
func paintAtomBox(g nvg.Graphics, b geom.FRect, th colors.Theme) {
	const fold = 5
	g.BeginPath()
	g.MoveTo(0.5, 0.5)
	g.LineTo(b.W-fold, 0.5)
	g.LineTo(b.W-0.5, fold)
	g.LineTo(b.W-0.5, b.H-0.5)
	g.LineTo(0.5, b.H-0.5)
	g.ClosePath()
	g.SetFillColor(th.ObjectBackground)
	g.Fill()
	g.SetStrokeColor(th.ObjectOutline)
	g.SetStrokeWidth(1)
	g.Stroke()
}
