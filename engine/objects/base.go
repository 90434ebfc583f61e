package objects

import (
	"github.com/weftworks/weft/engine/colors"
	"github.com/weftworks/weft/engine/geom"
	"github.com/weftworks/weft/engine/gfx/nvg"
	"github.com/weftworks/weft/engine/pd"
	"github.com/weftworks/weft/engine/ui"
)

// Kind identifies the concrete widget variant a class name resolved to.
type Kind int

const (
	KindBang Kind = iota
	KindButton
	KindToggle
	KindSliderH
	KindSliderV
	KindRadioH
	KindRadioV
	KindNumber
	KindSignalNumber
	KindCanvas
	KindVU
	KindComment
	KindTextObject
	KindMessage
	KindFloatAtom
	KindSymbolAtom
	KindListAtom
	KindSubpatch
	KindGraphOnParent
	KindArray
	KindScope
	KindFunction
	KindPicture
	KindNonPatchable
)

// Widget is one GUI object variant on a patch canvas.
type Widget interface {
	ui.Element
	pd.MessageListener
	Kind() Kind
	Object() *pd.Object
	Close()
}

// ObjectBase wraps one interpreter handle. It registers itself as the
// single message listener for the handle, so a second wrapper for the same
// object is rejected at construction.
type ObjectBase struct {
	ui.Component

	patch *pd.Patch
	inst  *pd.Instance
	obj   *pd.Object

	arena *Arena
	ref   Ref
}

// initBase wires the wrapper to its interpreter object. owner must be the
// concrete widget embedding this base.
func (b *ObjectBase) initBase(owner Widget, patch *pd.Patch, obj *pd.Object, arena *Arena) {
	b.Init(owner)
	b.patch = patch
	b.inst = patch.Instance()
	b.obj = obj
	b.arena = arena
	b.ref = arena.Add(owner)
	if err := b.inst.RegisterMessageListener(obj, owner); err != nil {
		b.inst.LogError(err.Error())
	}
	b.SetBounds(geom.NewRect(obj.X, obj.Y, obj.Width, obj.Height))
}

func (b *ObjectBase) Object() *pd.Object { return b.obj }
func (b *ObjectBase) Patch() *pd.Patch   { return b.patch }
func (b *ObjectBase) WeakRef() Ref       { return b.ref }

// Alive reports whether the interpreter handle is still part of the patch.
func (b *ObjectBase) Alive() bool { return b.patch.CheckObject(b.obj) }

// Text returns the object's creation text, "" for a stale handle.
func (b *ObjectBase) Text() string { return b.patch.ObjectText(b.obj) }

// ClassName looks up the class under the structural lock, "" when stale.
func (b *ObjectBase) ClassName() string {
	if !b.Alive() {
		return ""
	}
	return b.inst.ObjectClassName(b.obj)
}

// ReceiveMessage is the default interpreter-side handler; value widgets
// override it. Runs on the interpreter context.
func (b *ObjectBase) ReceiveMessage(selector string, args []float32) {}

// MoveToFront raises the backing node to the top of the display list. The
// index check makes it a no-op for a sole (or absent) object.
func (b *ObjectBase) MoveToFront() {
	if b.patch.Index(b.obj) < 0 {
		return
	}
	b.patch.Reorder(b.obj, b.patch.Count()-1)
}

// MoveToBack lowers the node to the first position behind all regular
// objects; reserved interpreter entries stay behind it.
func (b *ObjectBase) MoveToBack() {
	if b.patch.Index(b.obj) < 0 {
		return
	}
	b.patch.Reorder(b.obj, b.patch.FirstUnreservedIndex())
}

// Close unregisters the listener and frees the arena slot. In-flight
// deferred callbacks holding the weak ref resolve to absent from now on.
func (b *ObjectBase) Close() {
	if owner, ok := b.arena.Get(b.ref); ok {
		b.inst.UnregisterMessageListener(b.obj, owner)
	}
	b.arena.Remove(b.ref)
}

// theme resolves the colour table; widgets paint with it.
func (b *ObjectBase) theme() colors.Theme {
	if cv := b.Canvas(); cv != nil {
		return cv.Theme()
	}
	return colors.DefaultTheme()
}

// paintBox draws the standard object frame.
func (b *ObjectBase) paintBox(g nvg.Graphics, bg, outline colors.Color) {
	bounds := b.LocalBounds()
	g.BeginPath()
	g.RoundedRect(0.5, 0.5, float32(bounds.W)-1, float32(bounds.H)-1, 2)
	g.SetFillColor(bg)
	g.Fill()
	g.SetStrokeColor(outline)
	g.SetStrokeWidth(1)
	g.Stroke()
}
