package nvg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/engine/gfx/nvg"
	"github.com/weftworks/weft/engine/gfx/nvg/nvgtest"
)

func recordTriangle() *nvg.Path {
	p := &nvg.Path{}
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.BezierTo(10, 5, 7, 10, 5, 10)
	p.Close()
	return p
}

func TestCachedPathReplaysRecording(t *testing.T) {
	r := nvgtest.NewRenderer()
	reg := nvg.NewRegistry()
	cp := nvg.NewCachedPath(reg)
	defer cp.Close()

	cp.Save(r, recordTriangle())
	require.True(t, cp.Valid())

	g := &nvgtest.Graphics{}
	assert.True(t, cp.Fill(g))
	assert.Equal(t, []string{
		"beginPath",
		"moveTo 0.0 0.0",
		"lineTo 10.0 0.0",
		"bezierTo 10.0 5.0 7.0 10.0 5.0 10.0",
		"closePath",
		"fill",
	}, g.Ops)

	g.Reset()
	assert.True(t, cp.Stroke(g))
	assert.Equal(t, 1, g.Count("stroke"))
}

func TestCachedPathReportsMissWhenEmpty(t *testing.T) {
	reg := nvg.NewRegistry()
	cp := nvg.NewCachedPath(reg)
	defer cp.Close()

	g := &nvgtest.Graphics{}
	assert.False(t, cp.Fill(g), "miss tells the caller to rebuild")
	assert.False(t, cp.Stroke(g))
	assert.Empty(t, g.Ops)
}

func TestCachedPathSaveCopiesRecording(t *testing.T) {
	r := nvgtest.NewRenderer()
	reg := nvg.NewRegistry()
	cp := nvg.NewCachedPath(reg)
	defer cp.Close()

	p := recordTriangle()
	cp.Save(r, p)
	p.Reset()
	p.MoveTo(99, 99)

	g := &nvgtest.Graphics{}
	require.True(t, cp.Fill(g))
	assert.Contains(t, g.Ops, "moveTo 0.0 0.0", "cache owns its copy of the recording")
	assert.NotContains(t, g.Ops, "moveTo 99.0 99.0")
}

func TestResetPathsDropsEveryCache(t *testing.T) {
	r1 := nvgtest.NewRenderer()
	r2 := nvgtest.NewRenderer()
	reg := nvg.NewRegistry()

	a := nvg.NewCachedPath(reg)
	b := nvg.NewCachedPath(reg)
	defer a.Close()
	defer b.Close()
	a.Save(r1, recordTriangle())
	b.Save(r2, recordTriangle())

	reg.ResetPaths()
	assert.False(t, a.Valid())
	assert.False(t, b.Valid())
}

func TestClearPathsIsPerContext(t *testing.T) {
	r1 := nvgtest.NewRenderer()
	r2 := nvgtest.NewRenderer()
	reg := nvg.NewRegistry()

	a := nvg.NewCachedPath(reg)
	b := nvg.NewCachedPath(reg)
	defer a.Close()
	defer b.Close()
	a.Save(r1, recordTriangle())
	b.Save(r2, recordTriangle())

	reg.ClearPaths(r1)
	assert.False(t, a.Valid())
	assert.True(t, b.Valid())
}
