package pd

import (
	"slices"
	"strings"
)

// Connection links outlet nout of Src to inlet nin of Dst.
type Connection struct {
	Src    *Object
	Outlet int
	Dst    *Object
	Inlet  int
}

// Patch wraps one canvas of the live object graph. The lifetime of the
// graph is not guaranteed by this type: handles can go stale while a Patch
// still refers to them, which is why every query validates first.
//
// The display list is index-stable: index 0 is the back of the z-order,
// the last index is the front. Any reserved interpreter bookkeeping entries
// sit at the head and are never crossed by z-order moves.
type Patch struct {
	inst    *Instance
	objects []*Object
	conns   []Connection

	title string
	file  string
	dirty bool
}

func NewPatch(inst *Instance) *Patch {
	return &Patch{inst: inst, title: "Untitled"}
}

func (p *Patch) Instance() *Instance { return p.inst }
func (p *Patch) Title() string       { return p.title }
func (p *Patch) SetTitle(t string)   { p.title = t }
func (p *Patch) File() string        { return p.file }
func (p *Patch) SetFile(f string)    { p.file = f }
func (p *Patch) IsDirty() bool       { return p.dirty }

// Objects returns a snapshot of the display list, back to front.
func (p *Patch) Objects() []*Object {
	p.inst.Lock()
	defer p.inst.Unlock()
	return slices.Clone(p.objects)
}

// Count reports the display-list length.
func (p *Patch) Count() int {
	p.inst.Lock()
	defer p.inst.Unlock()
	return len(p.objects)
}

// CheckObject validates a handle before it is dereferenced: the object must
// still be part of this patch. Deleted-concurrently is normal, not an error.
func (p *Patch) CheckObject(obj *Object) bool {
	if obj == nil {
		return false
	}
	p.inst.Lock()
	defer p.inst.Unlock()
	return slices.Contains(p.objects, obj)
}

// ObjectText returns the display text for obj, or "" for a stale handle.
func (p *Patch) ObjectText(obj *Object) string {
	if !p.CheckObject(obj) {
		return ""
	}
	p.inst.Lock()
	defer p.inst.Unlock()
	return obj.SendText
}

// Index reports obj's position in the display list, -1 if absent.
func (p *Patch) Index(obj *Object) int {
	p.inst.Lock()
	defer p.inst.Unlock()
	return slices.Index(p.objects, obj)
}

// FirstUnreservedIndex is the index move-to-back targets: reserved sentinel
// entries stay behind everything.
func (p *Patch) FirstUnreservedIndex() int {
	p.inst.Lock()
	defer p.inst.Unlock()
	return p.firstUnreservedLocked()
}

func (p *Patch) firstUnreservedLocked() int {
	for i, o := range p.objects {
		if !o.Reserved {
			return i
		}
	}
	return len(p.objects)
}

// Reorder moves obj to target index in the display list. Unknown objects
// and in-place moves are no-ops. Holds the structural lock for the whole
// mutation.
func (p *Patch) Reorder(obj *Object, target int) {
	p.inst.Lock()
	defer p.inst.Unlock()

	cur := slices.Index(p.objects, obj)
	if cur < 0 || cur == target || target < 0 || target >= len(p.objects) {
		return
	}
	p.objects = slices.Delete(p.objects, cur, cur+1)
	p.objects = slices.Insert(p.objects, target, obj)
	p.dirty = true
}

// CreateObject adds a new object of the given class at (x, y) and returns
// its handle. Known GUI classes pick up their stock creation arguments.
func (p *Patch) CreateObject(class string, x, y int) *Object {
	obj := &Object{
		Class:     class,
		SendText:  strings.TrimSpace(class + " " + guiDefaults[class]),
		Patchable: true,
		Type:      TextObject,
		X:         x,
		Y:         y,
		Width:     dimensionOr(class, 0, 60),
		Height:    dimensionOr(class, 1, 22),
	}
	switch class {
	case "floatatom":
		obj.Class, obj.Flavor = "gatom", FlavorFloat
	case "symbolatom":
		obj.Class, obj.Flavor = "gatom", FlavorSymbol
	case "listbox":
		obj.Class, obj.Flavor = "gatom", FlavorNull
	}

	p.inst.Lock()
	p.objects = append(p.objects, obj)
	p.dirty = true
	p.inst.Unlock()
	return obj
}

// AddObject appends a pre-built object (used when loading a patch file and
// by tests that need precise sub-kind control).
func (p *Patch) AddObject(obj *Object) *Object {
	p.inst.Lock()
	p.objects = append(p.objects, obj)
	p.dirty = true
	p.inst.Unlock()
	return obj
}

// RemoveObject drops obj and every connection touching it. Removing an
// unknown handle is a no-op.
func (p *Patch) RemoveObject(obj *Object) {
	p.inst.Lock()
	defer p.inst.Unlock()

	i := slices.Index(p.objects, obj)
	if i < 0 {
		return
	}
	p.objects = slices.Delete(p.objects, i, i+1)
	p.conns = slices.DeleteFunc(p.conns, func(c Connection) bool {
		return c.Src == obj || c.Dst == obj
	})
	p.dirty = true
}

// HasConnection reports whether the exact connection exists.
func (p *Patch) HasConnection(src *Object, nout int, dst *Object, nin int) bool {
	p.inst.Lock()
	defer p.inst.Unlock()
	return slices.Contains(p.conns, Connection{src, nout, dst, nin})
}

// CanConnect rejects self-loops, stale endpoints and duplicates.
func (p *Patch) CanConnect(src *Object, nout int, dst *Object, nin int) bool {
	if src == nil || dst == nil || src == dst || nout < 0 || nin < 0 {
		return false
	}
	p.inst.Lock()
	defer p.inst.Unlock()
	if !slices.Contains(p.objects, src) || !slices.Contains(p.objects, dst) {
		return false
	}
	return !slices.Contains(p.conns, Connection{src, nout, dst, nin})
}

// Connect creates the connection if it is valid, reporting success.
func (p *Patch) Connect(src *Object, nout int, dst *Object, nin int) bool {
	if !p.CanConnect(src, nout, dst, nin) {
		return false
	}
	p.inst.Lock()
	defer p.inst.Unlock()
	p.conns = append(p.conns, Connection{src, nout, dst, nin})
	p.dirty = true
	return true
}

// Disconnect removes the connection if present.
func (p *Patch) Disconnect(src *Object, nout int, dst *Object, nin int) {
	p.inst.Lock()
	defer p.inst.Unlock()
	n := len(p.conns)
	p.conns = slices.DeleteFunc(p.conns, func(c Connection) bool {
		return c == Connection{src, nout, dst, nin}
	})
	if len(p.conns) != n {
		p.dirty = true
	}
}

// Connections returns a snapshot of all connections.
func (p *Patch) Connections() []Connection {
	p.inst.Lock()
	defer p.inst.Unlock()
	return slices.Clone(p.conns)
}

func dimensionOr(class string, axis, def int) int {
	if d, ok := guiSizes[class]; ok {
		return d[axis]
	}
	return def
}
