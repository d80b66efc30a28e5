package preprocess

import (
	"math"

	"github.com/gosequential/seqarrange/geom"
	"github.com/gosequential/seqarrange/seq"
)

// ToleranceFor maps a seq.DecimationPrecision to the Douglas-Peucker
// tolerance, in slicer units, Decimate should simplify with.
//
// The mapping looks inverted at first glance: DecimationHigh gets the
// smaller tolerance (150000) and DecimationLow the larger one (450000).
// That is deliberate - a smaller tolerance keeps more detail (higher
// precision), a larger one discards more (lower precision) - and matches
// the original solver's constant tables.
func ToleranceFor(precision seq.DecimationPrecision) float64 {
	switch precision {
	case seq.DecimationLow:
		return 450000
	case seq.DecimationHigh:
		return 150000
	default:
		return 0
	}
}

// Decimate simplifies p with a Douglas-Peucker pass at the given tolerance
// (same units as p's coordinates), then normalises the result to
// counter-clockwise winding. A tolerance of 0 or a polygon with fewer than
// 4 points is returned unchanged (after normalisation).
//
// Since p is a closed ring rather than an open polyline, DP is run on the
// two chains obtained by splitting the ring at its most distant pair of
// vertices, then the simplified chains are rejoined.
func Decimate(p geom.Polygon, tolerance float64) geom.Polygon {
	if tolerance <= 0 || len(p) < 4 {
		return geom.Normalize(p)
	}

	i, j := farthestPair(p)
	if i > j {
		i, j = j, i
	}

	chainA := append(geom.Polygon{}, p[i:j+1]...)
	chainB := append(append(geom.Polygon{}, p[j:]...), p[:i+1]...)

	simplifiedA := douglasPeucker(chainA, tolerance)
	simplifiedB := douglasPeucker(chainB, tolerance)

	kept := append(simplifiedA[:len(simplifiedA)-1:len(simplifiedA)-1], simplifiedB...)
	kept = kept[:len(kept)-1]

	if len(kept) < 3 {
		return geom.Normalize(p)
	}
	return geom.Normalize(kept)
}

func farthestPair(p geom.Polygon) (int, int) {
	best := -1.0
	bi, bj := 0, 1
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			dx := float64(p[i].X - p[j].X)
			dy := float64(p[i].Y - p[j].Y)
			d := dx*dx + dy*dy
			if d > best {
				best = d
				bi, bj = i, j
			}
		}
	}
	return bi, bj
}

func douglasPeucker(pts geom.Polygon, tolerance float64) geom.Polygon {
	if len(pts) < 3 {
		return append(geom.Polygon{}, pts...)
	}

	first, last := pts[0], pts[len(pts)-1]
	maxDist := -1.0
	maxIdx := -1
	for i := 1; i < len(pts)-1; i++ {
		d := perpendicularDistance(pts[i], first, last)
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxDist <= tolerance {
		return geom.Polygon{first, last}
	}

	left := douglasPeucker(pts[:maxIdx+1], tolerance)
	right := douglasPeucker(pts[maxIdx:], tolerance)
	return append(left[:len(left)-1], right...)
}

func perpendicularDistance(p, a, b geom.Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	if dx == 0 && dy == 0 {
		ex := float64(p.X - a.X)
		ey := float64(p.Y - a.Y)
		return math.Hypot(ex, ey)
	}
	num := math.Abs(dy*float64(p.X-a.X) - dx*float64(p.Y-a.Y))
	den := math.Hypot(dx, dy)
	return num / den
}
