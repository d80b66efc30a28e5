package geom

// segmentEpsilon tolerates floating-point drift in the parametric
// intersection test, matching the reference engine's closed-form tolerance.
const segmentEpsilon = 1e-9

// SegmentsIntersect reports whether segments (a, a+u) and (b, b+v) cross,
// using the explicit parametric determinant test: p = a + t*u, q = b + s*v,
// intersecting iff t and s both lie in [0,1] (closed, with a small epsilon
// tolerance on the boundary). Parallel (zero-determinant) segments report
// no intersection, matching the reference engine's handling of degenerate
// denominators.
func SegmentsIntersect(a, u, b, v Point) bool {
	t, s, ok := segmentParams(a, u, b, v)
	if !ok {
		return false
	}

	return t >= -segmentEpsilon && t <= 1+segmentEpsilon && s >= -segmentEpsilon && s <= 1+segmentEpsilon
}

// SegmentsIntersectOpen is the strict-inequality variant used by the
// printability checker, which must tolerate edges that touch at a shared
// vertex (collinear-touching) without declaring that a collision.
func SegmentsIntersectOpen(a, u, b, v Point) bool {
	t, s, ok := segmentParams(a, u, b, v)
	if !ok {
		return false
	}

	return t > segmentEpsilon && t < 1-segmentEpsilon && s > segmentEpsilon && s < 1-segmentEpsilon
}

// segmentParams solves for (t, s) in a + t*u = b + s*v. ok is false when the
// determinant is (numerically) zero, i.e. u and v are parallel.
func segmentParams(a, u, b, v Point) (t, s float64, ok bool) {
	det := float64(u.X)*float64(v.Y) - float64(u.Y)*float64(v.X)
	if det > -segmentEpsilon && det < segmentEpsilon {
		return 0, 0, false
	}

	wx := float64(b.X - a.X)
	wy := float64(b.Y - a.Y)

	t = (wx*float64(v.Y) - wy*float64(v.X)) / det
	s = (wx*float64(u.Y) - wy*float64(u.X)) / det

	return t, s, true
}
