package nvg

type pathOp uint8

const (
	opMoveTo pathOp = iota
	opLineTo
	opBezierTo
	opClose
)

type pathCmd struct {
	op   pathOp
	args [6]float32
}

// Path records a vector outline once so it can be replayed without the
// owner recomputing its geometry. Widgets build connection cables and
// object outlines into a Path and hand it to a CachedPath.
type Path struct {
	cmds []pathCmd
}

func (p *Path) MoveTo(x, y float32) {
	p.cmds = append(p.cmds, pathCmd{op: opMoveTo, args: [6]float32{x, y}})
}

func (p *Path) LineTo(x, y float32) {
	p.cmds = append(p.cmds, pathCmd{op: opLineTo, args: [6]float32{x, y}})
}

func (p *Path) BezierTo(c1x, c1y, c2x, c2y, x, y float32) {
	p.cmds = append(p.cmds, pathCmd{op: opBezierTo, args: [6]float32{c1x, c1y, c2x, c2y, x, y}})
}

func (p *Path) Close() {
	p.cmds = append(p.cmds, pathCmd{op: opClose})
}

func (p *Path) Empty() bool { return len(p.cmds) == 0 }

func (p *Path) Reset() { p.cmds = p.cmds[:0] }

// Replay issues the recorded outline into g as a fresh path.
func (p *Path) Replay(g Graphics) {
	g.BeginPath()
	for _, c := range p.cmds {
		switch c.op {
		case opMoveTo:
			g.MoveTo(c.args[0], c.args[1])
		case opLineTo:
			g.LineTo(c.args[0], c.args[1])
		case opBezierTo:
			g.BezierTo(c.args[0], c.args[1], c.args[2], c.args[3], c.args[4], c.args[5])
		case opClose:
			g.ClosePath()
		}
	}
}

// CachedPath holds a saved Path tied to the context it was recorded for.
// The caches are registry-tracked so they can be dropped in bulk: per
// context on teardown, or globally when a zoom gesture settles (stroke
// geometry recorded at one scale renders thicker or thinner at another).
type CachedPath struct {
	reg   *Registry
	r     Renderer
	path  Path
	valid bool
}

func NewCachedPath(reg *Registry) *CachedPath {
	cp := &CachedPath{reg: reg}
	reg.addPath(cp)
	return cp
}

// Save freezes p as the cached outline for context r, replacing any
// previous recording.
func (cp *CachedPath) Save(r Renderer, p *Path) {
	cp.r = r
	cp.path.cmds = append(cp.path.cmds[:0], p.cmds...)
	cp.valid = true
}

func (cp *CachedPath) Valid() bool { return cp.valid }

func (cp *CachedPath) Clear() {
	cp.valid = false
	cp.path.Reset()
	cp.r = nil
}

// Fill replays and fills the cached outline. Reports false when there is
// nothing cached, so the caller rebuilds.
func (cp *CachedPath) Fill(g Graphics) bool {
	if !cp.valid {
		return false
	}
	cp.path.Replay(g)
	g.Fill()
	return true
}

// Stroke replays and strokes the cached outline. Reports false when there
// is nothing cached.
func (cp *CachedPath) Stroke(g Graphics) bool {
	if !cp.valid {
		return false
	}
	cp.path.Replay(g)
	g.Stroke()
	return true
}

// Close drops the cache from its registry.
func (cp *CachedPath) Close() {
	cp.Clear()
	cp.reg.removePath(cp)
}
