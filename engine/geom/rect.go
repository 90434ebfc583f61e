package geom

import "github.com/chewxy/math32"

// Rect is an integer rectangle in screen units. The zero value is empty.
type Rect struct {
	X, Y, W, H int
}

func NewRect(x, y, w, h int) Rect { return Rect{x, y, w, h} }

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Union returns the bounding rectangle of r and o. An empty side contributes
// nothing, so accumulating into a zero Rect starts from the first real area.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x := min(r.X, o.X)
	y := min(r.Y, o.Y)
	return Rect{x, y, max(r.Right(), o.Right()) - x, max(r.Bottom(), o.Bottom()) - y}
}

func (r Rect) Intersect(o Rect) Rect {
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	w := min(r.Right(), o.Right()) - x
	h := min(r.Bottom(), o.Bottom()) - y
	if w <= 0 || h <= 0 {
		return Rect{}
	}
	return Rect{x, y, w, h}
}

func (r Rect) Overlaps(o Rect) bool { return !r.Intersect(o).Empty() }

func (r Rect) Expanded(n int) Rect { return Rect{r.X - n, r.Y - n, r.W + 2*n, r.H + 2*n} }

func (r Rect) Translated(dx, dy int) Rect { return Rect{r.X + dx, r.Y + dy, r.W, r.H} }

func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

func (r Rect) ContainsPoint(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.Right() && y < r.Bottom()
}

// WithZeroOrigin keeps the size but drops the position (local bounds).
func (r Rect) WithZeroOrigin() Rect { return Rect{0, 0, r.W, r.H} }

func (r Rect) ToFloat() FRect {
	return FRect{float32(r.X), float32(r.Y), float32(r.W), float32(r.H)}
}

// FRect is a float32 rectangle, used while transforming between coordinate
// spaces so rounding happens once at the end.
type FRect struct {
	X, Y, W, H float32
}

func (r FRect) Empty() bool { return r.W <= 0 || r.H <= 0 }

func (r FRect) Expanded(n float32) FRect {
	return FRect{r.X - n, r.Y - n, r.W + 2*n, r.H + 2*n}
}

func (r FRect) Translated(dx, dy float32) FRect { return FRect{r.X + dx, r.Y + dy, r.W, r.H} }

// SmallestIntegerContainer returns the smallest integer Rect covering r.
func (r FRect) SmallestIntegerContainer() Rect {
	x := int(math32.Floor(r.X))
	y := int(math32.Floor(r.Y))
	return Rect{x, y, int(math32.Ceil(r.X+r.W)) - x, int(math32.Ceil(r.Y+r.H)) - y}
}
