package nvg

import "github.com/weftworks/weft/engine/geom"

// Origin is the component an invalidation listener is attached to. It
// lives in the retained tree; the listener only needs visibility, local
// bounds, and the mapping into surface space (which carries the canvas
// zoom/pan transform).
type Origin interface {
	Visible() bool
	LocalBounds() geom.Rect
	ToSurfaceSpace(geom.FRect) geom.FRect
}

// InvalidationListener adapts a retained-mode component's repaint requests
// into the surface's dirty-rect accumulator.
type InvalidationListener struct {
	surface    *Surface
	origin     Origin
	passEvents bool
}

// NewInvalidationListener attaches a listener for origin. With passEvents
// set, repaint events keep flowing to the component's own software paint
// path as well.
func NewInvalidationListener(s *Surface, origin Origin, passEvents bool) *InvalidationListener {
	return &InvalidationListener{surface: s, origin: origin, passEvents: passEvents}
}

// Invalidate reports a repaint request scoped to the origin's local
// coordinates. The rectangle is clipped to the origin's bounds, expanded a
// touch against rounding, mapped into surface space and unioned into the
// accumulator. The return value tells the caller whether it must still do
// its own software repaint.
func (l *InvalidationListener) Invalidate(rect geom.Rect) bool {
	b := rect.Intersect(l.origin.LocalBounds())
	if l.origin.Visible() && !b.Empty() {
		// Transform as float so rounding happens once, after the zoom/pan
		// mapping.
		area := l.origin.ToSurfaceSpace(b.ToFloat().Expanded(2))
		l.surface.InvalidateArea(area.SmallestIntegerContainer())
	}
	return l.surface.RenderingThroughImage() || l.passEvents
}

// InvalidateAll is the coarse fallback when no incremental diff exists:
// the origin's whole visible bounds become dirty.
func (l *InvalidationListener) InvalidateAll() bool {
	if l.origin.Visible() {
		area := l.origin.ToSurfaceSpace(l.origin.LocalBounds().ToFloat())
		l.surface.InvalidateArea(area.SmallestIntegerContainer())
	}
	return l.surface.RenderingThroughImage() || l.passEvents
}
