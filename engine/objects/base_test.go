package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/engine/pd"
)

func TestMoveToFrontAndBack(t *testing.T) {
	f := newFixture(t)

	// reserved bookkeeping entries pinned at the head
	r1 := f.patch.AddObject(&pd.Object{Class: "__r", Reserved: true})
	r2 := f.patch.AddObject(&pd.Object{Class: "__r", Reserved: true})
	a := f.patch.CreateObject("tgl", 0, 0)
	b := f.patch.CreateObject("bng", 0, 0)
	c := f.patch.CreateObject("nbx", 0, 0)

	wa := CreateGUI(f.patch, a, nil, f.arena)
	defer wa.Close()

	wa.(*Toggle).MoveToFront()
	assert.Equal(t, []*pd.Object{r1, r2, b, c, a}, f.patch.Objects())

	wa.(*Toggle).MoveToBack()
	assert.Equal(t, []*pd.Object{r1, r2, a, b, c}, f.patch.Objects(),
		"move-to-back lands at the first non-reserved index")
}

func TestMoveToFrontSoleObjectIsNoOp(t *testing.T) {
	f := newFixture(t)
	obj := f.patch.CreateObject("tgl", 0, 0)
	w := CreateGUI(f.patch, obj, nil, f.arena)
	defer w.Close()

	w.(*Toggle).MoveToFront()
	w.(*Toggle).MoveToBack()
	assert.Equal(t, []*pd.Object{obj}, f.patch.Objects())
}

func TestMoveOnRemovedObjectIsNoOp(t *testing.T) {
	f := newFixture(t)
	a := f.patch.CreateObject("tgl", 0, 0)
	b := f.patch.CreateObject("bng", 0, 0)
	w := CreateGUI(f.patch, a, nil, f.arena)
	defer w.Close()

	f.patch.RemoveObject(a)
	w.(*Toggle).MoveToFront()
	assert.Equal(t, []*pd.Object{b}, f.patch.Objects())
}

func TestStaleHandleQueriesReturnEmpty(t *testing.T) {
	f := newFixture(t)
	obj := f.patch.CreateObject("tgl", 0, 0)
	w := CreateGUI(f.patch, obj, nil, f.arena).(*Toggle)
	defer w.Close()

	require.Equal(t, "tgl", w.ClassName())
	require.NotEmpty(t, w.Text())

	f.patch.RemoveObject(obj)
	assert.False(t, w.Alive())
	assert.Empty(t, w.Text(), "stale handle reads as nothing to display")
	assert.Empty(t, w.ClassName())
}

func TestArenaGenerationsInvalidateStaleRefs(t *testing.T) {
	a := NewArena()
	f := newFixture(t)
	obj := f.patch.CreateObject("tgl", 0, 0)
	w := CreateGUI(f.patch, obj, nil, a).(*Toggle)

	ref := w.WeakRef()
	got, ok := a.Get(ref)
	require.True(t, ok)
	require.Same(t, any(w), any(got))

	w.Close()
	_, ok = a.Get(ref)
	assert.False(t, ok, "removed widget dereferences as absent")

	// the freed slot is reused with a new generation
	obj2 := f.patch.CreateObject("bng", 0, 0)
	w2 := CreateGUI(f.patch, obj2, nil, a)
	defer w2.Close()
	_, ok = a.Get(ref)
	assert.False(t, ok, "old ref never resolves to the new occupant")
	_, ok = a.Get(w2.(*Bang).WeakRef())
	assert.True(t, ok)
}

func TestArenaRemoveTwiceIsSafe(t *testing.T) {
	a := NewArena()
	f := newFixture(t)
	w := CreateGUI(f.patch, f.patch.CreateObject("tgl", 0, 0), nil, a)

	ref := w.(*Toggle).WeakRef()
	a.Remove(ref)
	a.Remove(ref)
	assert.False(t, a.Alive(ref))
}
