package nvg

import "sync"

// Registry tracks every live image, framebuffer and cached path created
// against a context, so a context teardown (window close, fullscreen
// transition, monitor change) can invalidate all of them in one sweep.
// Wrapper objects outlive their backend resources; without this sweep they
// would keep referencing freed handles.
//
// One registry is owned by each render surface, not kept as global state.
type Registry struct {
	mu           sync.Mutex
	images       map[*Image]struct{}
	framebuffers map[*Framebuffer]struct{}
	paths        map[*CachedPath]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		images:       make(map[*Image]struct{}),
		framebuffers: make(map[*Framebuffer]struct{}),
		paths:        make(map[*CachedPath]struct{}),
	}
}

func (reg *Registry) addImage(i *Image)      { reg.mu.Lock(); reg.images[i] = struct{}{}; reg.mu.Unlock() }
func (reg *Registry) removeImage(i *Image)   { reg.mu.Lock(); delete(reg.images, i); reg.mu.Unlock() }
func (reg *Registry) addFB(f *Framebuffer)   { reg.mu.Lock(); reg.framebuffers[f] = struct{}{}; reg.mu.Unlock() }
func (reg *Registry) removeFB(f *Framebuffer) { reg.mu.Lock(); delete(reg.framebuffers, f); reg.mu.Unlock() }
func (reg *Registry) addPath(p *CachedPath)  { reg.mu.Lock(); reg.paths[p] = struct{}{}; reg.mu.Unlock() }
func (reg *Registry) removePath(p *CachedPath) { reg.mu.Lock(); delete(reg.paths, p); reg.mu.Unlock() }

// ClearImages releases every image created against r.
func (reg *Registry) ClearImages(r Renderer) {
	for _, img := range reg.snapshotImages() {
		img.clearFor(r)
	}
}

// ClearFramebuffers releases every framebuffer created against r.
func (reg *Registry) ClearFramebuffers(r Renderer) {
	for _, fb := range reg.snapshotFBs() {
		fb.clearFor(r)
	}
}

// ClearPaths drops every cached path recorded against r.
func (reg *Registry) ClearPaths(r Renderer) {
	for _, p := range reg.snapshotPaths() {
		if p.r == r {
			p.Clear()
		}
	}
}

// ResetPaths drops every cached path regardless of context. Called when a
// zoom gesture settles: cached geometry is tessellated for one scale and
// looks wrong at another.
func (reg *Registry) ResetPaths() {
	for _, p := range reg.snapshotPaths() {
		p.Clear()
	}
}

// ClearContext bulk-invalidates everything tied to r. Context loss is not
// an error; the next frame recreates resources lazily.
func (reg *Registry) ClearContext(r Renderer) {
	reg.ClearImages(r)
	reg.ClearFramebuffers(r)
	reg.ClearPaths(r)
}

func (reg *Registry) snapshotImages() []*Image {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	out := make([]*Image, 0, len(reg.images))
	for i := range reg.images {
		out = append(out, i)
	}
	return out
}

func (reg *Registry) snapshotFBs() []*Framebuffer {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	out := make([]*Framebuffer, 0, len(reg.framebuffers))
	for f := range reg.framebuffers {
		out = append(out, f)
	}
	return out
}

func (reg *Registry) snapshotPaths() []*CachedPath {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	out := make([]*CachedPath, 0, len(reg.paths))
	for p := range reg.paths {
		out = append(out, p)
	}
	return out
}
