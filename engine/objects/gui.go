package objects

import (
	"github.com/chewxy/math32"

	"github.com/weftworks/weft/engine/pd"
)

// GUIObject is the value-carrying widget base. It keeps a cached copy of
// the interpreter's scalar and runs the bidirectional sync protocol:
// outbound writes go through the interpreter queue, inbound updates hop
// interpreter context → UI thread and are gated by the edited flag so a
// live drag is never overwritten.
type GUIObject struct {
	ObjectBase

	value    float32
	min, max float32
	edited   bool
}

// initGUI wires the base and schedules the initial parameter pull on the
// next UI tick. Deferred because the subclass is not fully constructed yet
// when the base runs.
func (g *GUIObject) initGUI(owner Widget, patch *pd.Patch, obj *pd.Object, arena *Arena) {
	g.initBase(owner, patch, obj, arena)
	g.min, g.max = obj.Range()
	ref := g.ref
	g.inst.RunOnUI(func() {
		if _, ok := arena.Get(ref); ok {
			g.UpdateValue()
		}
	})
}

func (g *GUIObject) Range() (min, max float32) { return g.min, g.max }

func (g *GUIObject) SetRange(min, max float32) {
	g.min, g.max = min, max
	obj := g.obj
	g.inst.EnqueueFunction(func() { obj.SetRange(min, max) })
}

// Edited reports whether a gesture is in progress.
func (g *GUIObject) Edited() bool { return g.edited }

// StartEdition marks the widget as being edited and signals mouse-down to
// the interpreter. While set, inbound updates are suppressed.
func (g *GUIObject) StartEdition() {
	g.edited = true
	g.inst.EnqueueMessages("gui", "mouse", 1)
}

// StopEdition ends the gesture with a mouse-up signal.
func (g *GUIObject) StopEdition() {
	g.edited = false
	g.inst.EnqueueMessages("gui", "mouse", 0)
}

// clampValue applies the configured range. A {0,0} range means "not
// configured" and passes values through. Inverted ranges (min > max) clamp
// against the reordered bounds.
func (g *GUIObject) clampValue(v float32) float32 {
	if g.min == 0 && g.max == 0 {
		return v
	}
	lo := math32.Min(g.min, g.max)
	hi := math32.Max(g.min, g.max)
	return math32.Max(lo, math32.Min(hi, v))
}

// SetValueOriginal stores v (clamped) and writes it out to the
// interpreter.
func (g *GUIObject) SetValueOriginal(v float32) {
	v = g.clampValue(v)
	g.value = v
	g.inst.EnqueueDirectValue(g.obj, v)
	g.Repaint()
}

func (g *GUIObject) GetValueOriginal() float32 { return g.value }

// SetValueScaled maps a normalized position in [0,1] onto the configured
// range. With min > max the mapping inverts, which is how top-to-bottom
// sliders work.
func (g *GUIObject) SetValueScaled(t float32) {
	if g.min == g.max {
		g.SetValueOriginal(t)
		return
	}
	g.SetValueOriginal(g.min + t*(g.max-g.min))
}

// GetValueScaled is the inverse mapping back to [0,1].
func (g *GUIObject) GetValueScaled() float32 {
	if g.min == g.max {
		return g.value
	}
	return (g.value - g.min) / (g.max - g.min)
}

// UpdateValue pulls the interpreter's authoritative value. No-op while a
// gesture is live. The read happens on the interpreter context; the result
// is marshalled back to the UI thread, where a weak-ref liveness check
// drops the callback if the widget died in between.
func (g *GUIObject) UpdateValue() {
	if g.edited {
		return
	}
	obj := g.obj
	ref := g.ref
	arena := g.arena
	g.inst.EnqueueFunction(func() {
		v := obj.Value()
		g.inst.RunOnUI(func() {
			if _, ok := arena.Get(ref); !ok {
				return
			}
			g.applyValue(v)
		})
	})
}

// applyValue installs an inbound value on the UI thread.
func (g *GUIObject) applyValue(v float32) {
	if g.edited || g.value == v {
		return
	}
	g.value = v
	g.Repaint()
}

// ReceiveMessage handles interpreter-side value pushes. Interpreter
// context: the payload hops to the UI thread like UpdateValue's read.
func (g *GUIObject) ReceiveMessage(selector string, args []float32) {
	switch selector {
	case "float", "set":
		if len(args) == 0 {
			return
		}
		v := args[0]
		ref := g.ref
		arena := g.arena
		g.inst.RunOnUI(func() {
			if _, ok := arena.Get(ref); !ok {
				return
			}
			g.applyValue(v)
		})
	}
}
