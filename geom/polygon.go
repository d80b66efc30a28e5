package geom

// Edges returns the polygon's oriented edges, including the closing edge
// from the last vertex back to the first. A polygon with fewer than 2
// points has no edges.
func (p Polygon) Edges() []Segment {
	n := len(p)
	if n < 2 {
		return nil
	}
	edges := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, Segment{A: p[i], B: p[(i+1)%n]})
	}

	return edges
}

// Translate returns a copy of p shifted by (dx, dy).
func (p Polygon) Translate(dx, dy int) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = v.Add(dx, dy)
	}

	return out
}

// AABB computes the axis-aligned bounding box of a non-empty polygon. The
// zero BoundingBox is returned for an empty polygon.
func AABB(p Polygon) BoundingBox {
	if len(p) == 0 {
		return BoundingBox{}
	}
	bb := BoundingBox{MinX: p[0].X, MaxX: p[0].X, MinY: p[0].Y, MaxY: p[0].Y}
	for _, v := range p[1:] {
		if v.X < bb.MinX {
			bb.MinX = v.X
		}
		if v.X > bb.MaxX {
			bb.MaxX = v.X
		}
		if v.Y < bb.MinY {
			bb.MinY = v.Y
		}
		if v.Y > bb.MaxY {
			bb.MaxY = v.Y
		}
	}

	return bb
}

// SignedArea returns twice the signed area of the polygon (shoelace
// formula, undivided so the result stays an exact integer). Positive
// indicates counter-clockwise winding.
func SignedArea(p Polygon) int64 {
	n := len(p)
	if n < 3 {
		return 0
	}
	var sum int64
	for i := 0; i < n; i++ {
		a := p[i]
		b := p[(i+1)%n]
		sum += int64(a.X)*int64(b.Y) - int64(b.X)*int64(a.Y)
	}

	return sum
}

// Area returns the unsigned area of the polygon.
func Area(p Polygon) float64 {
	area := SignedArea(p)
	if area < 0 {
		area = -area
	}

	return float64(area) / 2
}

// IsCounterClockwise reports whether p winds counter-clockwise. Degenerate
// polygons (fewer than 3 points, or zero area) report false.
func IsCounterClockwise(p Polygon) bool {
	return SignedArea(p) > 0
}

// Reverse returns a copy of p with vertex order reversed.
func Reverse(p Polygon) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}

	return out
}

// Normalize returns p re-wound counter-clockwise if it is currently
// clockwise; polygons that are already CCW (or degenerate) are returned
// unchanged (as a copy).
func Normalize(p Polygon) Polygon {
	if SignedArea(p) < 0 {
		return Reverse(p)
	}
	out := make(Polygon, len(p))
	copy(out, p)

	return out
}
