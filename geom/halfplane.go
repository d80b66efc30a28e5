package geom

// HalfPlaneOutside reports whether p lies in the exterior half-plane of the
// oriented edge e: the side normal(e)*(p - e.A) > 0, where normal(e) is the
// outward normal of a counter-clockwise-wound polygon edge (rotate the edge
// vector -90 degrees: normal = (e.B.Y - e.A.Y, -(e.B.X - e.A.X))).
func HalfPlaneOutside(e Segment, p Point) bool {
	v := e.Vector()
	nx, ny := v.Y, -v.X
	dx, dy := p.X-e.A.X, p.Y-e.A.Y

	return int64(nx)*int64(dx)+int64(ny)*int64(dy) > 0
}

// PointOutsidePolygon reports whether p lies strictly outside poly, defined
// as lying in the exterior half-plane of at least one of poly's edges
// (valid for convex, counter-clockwise polygons - exactly the shape the
// constraint builder emits this disjunction over).
func PointOutsidePolygon(poly Polygon, p Point) bool {
	if len(poly) < 3 {
		// Degenerate polygons contribute no containment constraint: every
		// point is vacuously "outside".
		return true
	}
	for _, e := range poly.Edges() {
		if HalfPlaneOutside(e, p) {
			return true
		}
	}

	return false
}
