// Package ui is the retained widget tree a patch canvas is built from.
// Components keep their bounds in canvas coordinates; repaints flow into
// the surface's dirty-region accumulator rather than drawing eagerly.
package ui

import (
	"slices"

	"github.com/weftworks/weft/engine/geom"
	"github.com/weftworks/weft/engine/gfx/nvg"
)

// Element is anything that lives in the component tree.
type Element interface {
	Base() *Component
	// Paint draws the element in its own local coordinates; the canvas has
	// already applied the zoom/pan transform and the element's offset.
	Paint(g nvg.Graphics)
}

// Component is the embeddable base for tree elements. The zero value is
// hidden and unparented; AttachTo wires it into a canvas.
type Component struct {
	owner    Element
	parent   Element
	children []Element
	canvas   *Canvas

	bounds  geom.Rect // position within the parent, size in canvas units
	visible bool

	listener *nvg.InvalidationListener
}

// Init ties the base to the element embedding it. Every concrete element
// calls this once before attaching.
func (c *Component) Init(owner Element) {
	c.owner = owner
	c.visible = true
}

func (c *Component) Base() *Component { return c }

// Paint is a no-op so pure containers don't have to implement it.
func (c *Component) Paint(g nvg.Graphics) {}

func (c *Component) Parent() Element     { return c.parent }
func (c *Component) Children() []Element { return c.children }
func (c *Component) Canvas() *Canvas     { return c.canvas }

// AddChild parents el under c and repaints it into view.
func (c *Component) AddChild(el Element) {
	b := el.Base()
	b.parent = c.owner
	b.attach(c.canvas)
	c.children = append(c.children, el)
	b.Repaint()
}

// RemoveChild unparents el; its last on-screen area is repainted away.
func (c *Component) RemoveChild(el Element) {
	i := slices.Index(c.children, el)
	if i < 0 {
		return
	}
	el.Base().Repaint()
	c.children = slices.Delete(c.children, i, i+1)
	el.Base().parent = nil
	el.Base().attach(nil)
}

func (c *Component) attach(cv *Canvas) {
	c.canvas = cv
	if cv != nil {
		c.listener = nvg.NewInvalidationListener(cv.surface, c, false)
	} else {
		c.listener = nil
	}
	for _, child := range c.children {
		child.Base().attach(cv)
	}
}

func (c *Component) Visible() bool { return c.visible }

// SetVisible toggles the element; both edges of the transition repaint.
func (c *Component) SetVisible(v bool) {
	if c.visible == v {
		return
	}
	if c.visible {
		c.Repaint()
	}
	c.visible = v
	if v {
		c.Repaint()
	}
}

func (c *Component) Bounds() geom.Rect      { return c.bounds }
func (c *Component) LocalBounds() geom.Rect { return c.bounds.WithZeroOrigin() }

// SetBounds moves or resizes the element, repainting the vacated and the
// newly covered areas.
func (c *Component) SetBounds(b geom.Rect) {
	if c.bounds == b {
		return
	}
	c.Repaint()
	c.bounds = b
	c.Repaint()
}

func (c *Component) SetPosition(x, y int) {
	c.SetBounds(geom.Rect{X: x, Y: y, W: c.bounds.W, H: c.bounds.H})
}

// canvasOffset sums ancestor origins, giving the element's position in
// canvas space.
func (c *Component) canvasOffset() (float32, float32) {
	x, y := float32(c.bounds.X), float32(c.bounds.Y)
	if c.parent != nil {
		px, py := c.parent.Base().canvasOffset()
		x += px
		y += py
	}
	return x, y
}

// ToSurfaceSpace maps a rectangle in the element's local coordinates
// through the ancestor offsets and the canvas zoom/pan into surface space.
func (c *Component) ToSurfaceSpace(r geom.FRect) geom.FRect {
	x, y := c.canvasOffset()
	r = r.Translated(x, y)
	if c.canvas == nil {
		return r
	}
	return c.canvas.view.ApplyRect(r)
}

// Repaint marks the whole element dirty.
func (c *Component) Repaint() {
	if c.listener != nil {
		c.listener.InvalidateAll()
	}
}

// RepaintArea marks part of the element dirty, in local coordinates.
func (c *Component) RepaintArea(r geom.Rect) {
	if c.listener != nil {
		c.listener.Invalidate(r)
	}
}

// HitTest finds the topmost visible element containing the point, given in
// the parent's coordinate space. Children are tested front to back; the
// slice is ordered back to front like the paint walk.
func (c *Component) HitTest(x, y int) Element {
	if !c.visible || !c.bounds.ContainsPoint(x, y) {
		return nil
	}
	lx, ly := x-c.bounds.X, y-c.bounds.Y
	for i := len(c.children) - 1; i >= 0; i-- {
		if hit := c.children[i].Base().HitTest(lx, ly); hit != nil {
			return hit
		}
	}
	return c.owner
}

// paintTree draws the element and its children, clipped to area (parent
// coordinates). Used by the canvas walk.
func (c *Component) paintTree(g nvg.Graphics, area geom.Rect) {
	if !c.visible || !c.bounds.Overlaps(area) {
		return
	}
	g.Save()
	g.Translate(float32(c.bounds.X), float32(c.bounds.Y))
	c.owner.Paint(g)
	local := area.Translated(-c.bounds.X, -c.bounds.Y)
	for _, child := range c.children {
		child.Base().paintTree(g, local)
	}
	g.Restore()
}
