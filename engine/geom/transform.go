package geom

// Transform is a zoom+pan mapping from one 2D space to another: scale first,
// then translate. This is all a patch canvas ever needs, so no full affine.
type Transform struct {
	Scale  float32
	Tx, Ty float32
}

// Identity leaves coordinates unchanged.
func Identity() Transform { return Transform{Scale: 1} }

func (t Transform) IsIdentity() bool { return t.Scale == 1 && t.Tx == 0 && t.Ty == 0 }

// Translated composes an extra translation in the source space.
func (t Transform) Translated(dx, dy float32) Transform {
	t.Tx += dx * t.Scale
	t.Ty += dy * t.Scale
	return t
}

// Scaled composes an extra zoom around the source origin.
func (t Transform) Scaled(s float32) Transform {
	t.Scale *= s
	return t
}

func (t Transform) Apply(x, y float32) (float32, float32) {
	return x*t.Scale + t.Tx, y*t.Scale + t.Ty
}

func (t Transform) ApplyRect(r FRect) FRect {
	x, y := t.Apply(r.X, r.Y)
	return FRect{x, y, r.W * t.Scale, r.H * t.Scale}
}

// Inverse undoes the transform. A zero scale would be degenerate; callers
// keep Scale clamped well away from it.
func (t Transform) Inverse() Transform {
	inv := 1 / t.Scale
	return Transform{Scale: inv, Tx: -t.Tx * inv, Ty: -t.Ty * inv}
}
