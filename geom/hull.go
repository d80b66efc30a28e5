package geom

import "sort"

// ConvexHull computes the convex hull of points using Andrew's monotone
// chain algorithm, returning vertices in counter-clockwise order with no
// repeated closing point. Collinear points on a hull edge are dropped.
// Fewer than 3 distinct points yield those distinct points, sorted by X
// then Y.
func ConvexHull(points []Point) Polygon {
	pts := dedupeSorted(points)
	n := len(pts)
	if n < 3 {
		out := make(Polygon, n)
		copy(out, pts)

		return out
	}

	hull := make([]Point, 0, 2*n)

	// Lower chain.
	for _, p := range pts {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// Upper chain.
	lower := len(hull) + 1
	for i := n - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// The last point duplicates the first; drop it.
	return Polygon(hull[:len(hull)-1])
}

func dedupeSorted(points []Point) []Point {
	cp := make([]Point, len(points))
	copy(cp, points)
	sort.Slice(cp, func(i, j int) bool {
		if cp[i].X != cp[j].X {
			return cp[i].X < cp[j].X
		}

		return cp[i].Y < cp[j].Y
	})
	out := cp[:0]
	for i, p := range cp {
		if i == 0 || p != cp[i-1] {
			out = append(out, p)
		}
	}

	return out
}

// cross returns the z-component of (b-a) x (c-a); positive for a
// counter-clockwise turn at b.
func cross(a, b, c Point) int64 {
	return int64(b.X-a.X)*int64(c.Y-a.Y) - int64(b.Y-a.Y)*int64(c.X-a.X)
}
