package pd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPatch(t *testing.T) *Patch {
	t.Helper()
	inst := NewInstance()
	t.Cleanup(inst.Close)
	return NewPatch(inst)
}

func TestReorderMovesWithinDisplayList(t *testing.T) {
	p := newTestPatch(t)
	a := p.CreateObject("tgl", 0, 0)
	b := p.CreateObject("bng", 0, 0)
	c := p.CreateObject("hsl", 0, 0)

	p.Reorder(a, 2)
	assert.Equal(t, []*Object{b, c, a}, p.Objects())

	p.Reorder(a, 0)
	assert.Equal(t, []*Object{a, b, c}, p.Objects())
}

func TestReorderNoOps(t *testing.T) {
	p := newTestPatch(t)
	a := p.CreateObject("tgl", 0, 0)

	// single entry: front index == current index
	p.Reorder(a, 0)
	assert.Equal(t, []*Object{a}, p.Objects())

	// out-of-range and unknown handles do nothing
	p.Reorder(a, 5)
	p.Reorder(&Object{Class: "bng"}, 0)
	assert.Equal(t, []*Object{a}, p.Objects())
}

func TestFirstUnreservedIndexSkipsSentinels(t *testing.T) {
	p := newTestPatch(t)
	p.AddObject(&Object{Class: "info", Reserved: true})
	p.AddObject(&Object{Class: "info", Reserved: true})
	a := p.CreateObject("tgl", 0, 0)

	assert.Equal(t, 2, p.FirstUnreservedIndex())
	assert.Equal(t, 2, p.Index(a))

	// all-reserved list targets the end
	q := newTestPatch(t)
	q.AddObject(&Object{Reserved: true})
	assert.Equal(t, 1, q.FirstUnreservedIndex())
}

func TestCheckObjectAndTextGoStale(t *testing.T) {
	p := newTestPatch(t)
	a := p.CreateObject("osc~", 10, 20)
	assert.True(t, p.CheckObject(a))
	assert.Equal(t, "osc~", p.ObjectText(a))

	p.RemoveObject(a)
	assert.False(t, p.CheckObject(a))
	assert.Equal(t, "", p.ObjectText(a))
	assert.False(t, p.CheckObject(nil))
}

func TestConnections(t *testing.T) {
	p := newTestPatch(t)
	a := p.CreateObject("osc~", 0, 0)
	b := p.CreateObject("dac~", 0, 50)

	require.True(t, p.Connect(a, 0, b, 0))
	assert.True(t, p.HasConnection(a, 0, b, 0))

	// duplicates and self-loops are rejected
	assert.False(t, p.Connect(a, 0, b, 0))
	assert.False(t, p.Connect(a, 0, a, 0))

	// removing an endpoint drops its connections
	p.RemoveObject(b)
	assert.Empty(t, p.Connections())
}

func TestCreateObjectResolvesAtomFlavors(t *testing.T) {
	p := newTestPatch(t)
	assert.Equal(t, FlavorFloat, p.CreateObject("floatatom", 0, 0).Flavor)
	assert.Equal(t, FlavorSymbol, p.CreateObject("symbolatom", 0, 0).Flavor)
	assert.Equal(t, FlavorNull, p.CreateObject("listbox", 0, 0).Flavor)
	assert.Equal(t, "gatom", p.CreateObject("floatatom", 0, 0).Class)
}
