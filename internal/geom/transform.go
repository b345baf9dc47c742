package geom

// Transform maps points from one frame to another: Rotation·p + Translation.
type Transform struct {
	Rotation    Matrix `json:"rotation"`
	Translation Point  `json:"translation"`
}

// IdentityTransform leaves every point unchanged.
func IdentityTransform() Transform {
	return Transform{Rotation: Identity()}
}

func (t Transform) Apply(p Point) Point {
	return t.Rotation.Apply(p).Add(t.Translation)
}

// ApplyAll maps every point of pts, preserving order.
func (t Transform) ApplyAll(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = t.Apply(p)
	}
	return out
}

// Inverse returns the transform undoing t. Only valid for orthogonal rotations.
func (t Transform) Inverse() Transform {
	rt := t.Rotation.Transpose()
	return Transform{Rotation: rt, Translation: rt.Apply(t.Translation).Neg()}
}

// Then returns the transform applying t first and u second.
func (t Transform) Then(u Transform) Transform {
	return Transform{
		Rotation:    u.Rotation.Mul(t.Rotation),
		Translation: u.Apply(t.Translation),
	}
}
