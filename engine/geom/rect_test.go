package geom

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 5, 10, 10)
	u := a.Union(b)
	assert.Equal(t, NewRect(0, 0, 30, 15), u)

	// union with empty is identity, both ways
	assert.Equal(t, a, a.Union(Rect{}))
	assert.Equal(t, a, Rect{}.Union(a))
}

func TestRectUnionOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rects := make([]Rect, 20)
	for i := range rects {
		rects[i] = NewRect(rng.Intn(100)-50, rng.Intn(100)-50, rng.Intn(40)+1, rng.Intn(40)+1)
	}

	var fwd, rev Rect
	for _, r := range rects {
		fwd = fwd.Union(r)
	}
	for i := len(rects) - 1; i >= 0; i-- {
		rev = rev.Union(rects[i])
	}
	assert.Equal(t, fwd, rev)

	// the union contains every input
	for _, r := range rects {
		assert.True(t, fwd.Contains(r))
	}
}

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	assert.Equal(t, NewRect(5, 5, 5, 5), a.Intersect(NewRect(5, 5, 20, 20)))
	assert.True(t, a.Intersect(NewRect(20, 20, 5, 5)).Empty())
	assert.True(t, a.Intersect(Rect{}).Empty())
}

func TestRectExpandTranslate(t *testing.T) {
	r := NewRect(10, 10, 20, 20)
	assert.Equal(t, NewRect(8, 8, 24, 24), r.Expanded(2))
	assert.Equal(t, NewRect(15, 5, 20, 20), r.Translated(5, -5))
	assert.Equal(t, NewRect(0, 0, 20, 20), r.WithZeroOrigin())
}

func TestSmallestIntegerContainer(t *testing.T) {
	f := FRect{0.4, 0.6, 9.2, 9.0}
	assert.Equal(t, NewRect(0, 0, 10, 10), f.SmallestIntegerContainer())

	f = FRect{-1.5, -1.5, 3.0, 3.0}
	assert.Equal(t, NewRect(-2, -2, 4, 4), f.SmallestIntegerContainer())
}

func TestTransformRoundTrip(t *testing.T) {
	tr := Identity().Scaled(1.5).Translated(10, -20)
	x, y := tr.Apply(4, 4)
	bx, by := tr.Inverse().Apply(x, y)
	assert.InDelta(t, 4, bx, 1e-4)
	assert.InDelta(t, 4, by, 1e-4)

	r := tr.ApplyRect(FRect{0, 0, 10, 10})
	assert.InDelta(t, 15, r.W, 1e-4)
	assert.InDelta(t, 15, r.H, 1e-4)
}
