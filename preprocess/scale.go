package preprocess

import "github.com/gosequential/seqarrange/geom"

// ScaleDown converts a polygon from slicer units to solver units by integer
// division. Coordinates produced by the slicer are always multiples of
// seq.SolverScaleFactor, so this is exact.
func ScaleDown(p geom.Polygon, factor int) geom.Polygon {
	out := make(geom.Polygon, len(p))
	for i, pt := range p {
		out[i] = geom.Point{X: pt.X / factor, Y: pt.Y / factor}
	}
	return out
}

// ScaleUp converts a polygon from solver units back to slicer units.
// ScaleUp(ScaleDown(p, f), f) reproduces p exactly when every coordinate of
// p is already a multiple of f.
func ScaleUp(p geom.Polygon, factor int) geom.Polygon {
	out := make(geom.Polygon, len(p))
	for i, pt := range p {
		out[i] = geom.Point{X: pt.X * factor, Y: pt.Y * factor}
	}
	return out
}

// ScalePointUp converts a single point from solver units to slicer units.
func ScalePointUp(p geom.Point, factor int) geom.Point {
	return geom.Point{X: p.X * factor, Y: p.Y * factor}
}
