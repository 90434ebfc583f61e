package nvg

import (
	"github.com/weftworks/weft/engine/colors"
	"github.com/weftworks/weft/engine/geom"
)

// SubImage is one tile of a (possibly oversized) image.
type SubImage struct {
	ID     int
	Bounds geom.Rect
}

// Image caches pixels in one or more backend textures. An image wider or
// taller than the backend's texture limit is transparently split into a
// grid of tiles; composition iterates all of them. The wrapper is valid
// only while bound to the context that loaded it.
type Image struct {
	reg *Registry
	r   Renderer

	subImages    []SubImage
	totalW, totalH int
	dirty        bool

	// OnInvalidate runs after a bulk context-loss sweep drops the backend
	// textures, so owners can re-render on the next frame.
	OnInvalidate func()
}

func NewImage(reg *Registry) *Image {
	img := &Image{reg: reg}
	reg.addImage(img)
	return img
}

func (img *Image) Valid() bool { return len(img.subImages) > 0 }

// NeedsUpdate is the re-render predicate: absent texture, size change, or
// an explicit dirty mark. False means the cache can be reused as-is.
func (img *Image) NeedsUpdate(w, h int) bool {
	return len(img.subImages) == 0 || w != img.totalW || h != img.totalH || img.dirty
}

func (img *Image) SetDirty() { img.dirty = true }

func (img *Image) Size() (int, int) { return img.totalW, img.totalH }

// ImageID returns the backend id of a single-tile image, zero otherwise.
func (img *Image) ImageID() int {
	if len(img.subImages) == 1 {
		return img.subImages[0].ID
	}
	return 0
}

// Load uploads tightly packed pixels (RGBA for ImageARGB, one byte per
// pixel for ImageAlpha). Texture allocation only happens on first use or a
// size change; a same-sized reload against the same context updates the
// existing allocation in place.
func (img *Image) Load(r Renderer, w, h int, format ImageFormat, flags ImageFlags, pixels []byte) {
	limit := r.MaxTextureSize()
	if limit <= 0 {
		limit = 8192
	}

	// Common case first: fits in one texture. A dirty mark requests fresh
	// pixels, not a new allocation, so it rides the in-place path too.
	if w <= limit && h <= limit {
		if len(img.subImages) == 1 && img.r == r && img.totalW == w && img.totalH == h {
			r.UpdateImage(img.subImages[0].ID, pixels)
			img.dirty = false
			return
		}
		img.release()
		img.r = r
		img.totalW, img.totalH = w, h
		id := r.CreateImage(w, h, format, flags, pixels)
		img.subImages = []SubImage{{ID: id, Bounds: geom.NewRect(0, 0, w, h)}}
		img.dirty = false
		return
	}

	img.release()
	img.r = r
	img.totalW, img.totalH = w, h
	bpp := 4
	if format == ImageAlpha {
		bpp = 1
	}
	for x := 0; x < w; x += limit {
		tw := min(limit, w-x)
		for y := 0; y < h; y += limit {
			th := min(limit, h-y)
			tile := make([]byte, tw*th*bpp)
			for row := 0; row < th; row++ {
				src := ((y+row)*w + x) * bpp
				copy(tile[row*tw*bpp:(row+1)*tw*bpp], pixels[src:src+tw*bpp])
			}
			id := r.CreateImage(tw, th, format, flags, tile)
			img.subImages = append(img.subImages, SubImage{ID: id, Bounds: geom.NewRect(x, y, tw, th)})
		}
	}
	img.dirty = false
}

// Render composites the cached image into dst, scaling proportionally when
// the destination size differs. A not-yet-realized image is a no-op.
func (img *Image) Render(g Graphics, dst geom.Rect) {
	if !img.Valid() {
		return
	}
	g.Save()
	defer g.Restore()
	sx := float32(dst.W) / float32(img.totalW)
	sy := float32(dst.H) / float32(img.totalH)
	for _, sub := range img.subImages {
		tile := geom.FRect{
			X: float32(dst.X) + float32(sub.Bounds.X)*sx,
			Y: float32(dst.Y) + float32(sub.Bounds.Y)*sy,
			W: float32(sub.Bounds.W) * sx,
			H: float32(sub.Bounds.H) * sy,
		}
		g.FillImage(sub.ID, tile, 1)
	}
}

// RenderAlpha composites an alpha-only image tinted with c.
func (img *Image) RenderAlpha(g Graphics, dst geom.Rect, c colors.Color) {
	if !img.Valid() {
		return
	}
	g.Save()
	defer g.Restore()
	sx := float32(dst.W) / float32(img.totalW)
	sy := float32(dst.H) / float32(img.totalH)
	for _, sub := range img.subImages {
		tile := geom.FRect{
			X: float32(dst.X) + float32(sub.Bounds.X)*sx,
			Y: float32(dst.Y) + float32(sub.Bounds.Y)*sy,
			W: float32(sub.Bounds.W) * sx,
			H: float32(sub.Bounds.H) * sy,
		}
		g.FillImageAlpha(sub.ID, tile, c)
	}
}

// clearFor drops the backend textures if they belong to r, then notifies
// the owner. Used by the registry's context-loss sweep, which has already
// made the context current.
func (img *Image) clearFor(r Renderer) {
	if img.r != r || !img.Valid() {
		return
	}
	for _, sub := range img.subImages {
		r.DeleteImage(sub.ID)
	}
	img.subImages = nil
	if img.OnInvalidate != nil {
		img.OnInvalidate()
	}
}

func (img *Image) release() {
	if img.r != nil && img.Valid() && img.r.MakeCurrent() {
		for _, sub := range img.subImages {
			img.r.DeleteImage(sub.ID)
		}
	}
	img.subImages = nil
}

// Close releases the backend textures (if their context is still current)
// and drops the image from its registry.
func (img *Image) Close() {
	img.release()
	img.reg.removeImage(img)
}
