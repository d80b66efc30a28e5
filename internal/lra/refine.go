package lra

import (
	"context"
	"time"

	"github.com/gosequential/seqarrange/geom"
)

// Participant is one object's placement variables and geometry, as needed
// by the refinement loop to test for concrete edge crossings under a
// candidate assignment.
type Participant struct {
	X, Y, T   VarID
	Footprint geom.Polygon
	Zones     []geom.Polygon
}

// Refine runs the lazy refinement loop described by the builder's
// constraint model: solve, and for every ordered pair of objects whose
// relative print order the model has determined, test the earlier
// object's footprint edges against the later object's unreachable-zone
// edges for an actual crossing under the current offsets. Any crossing
// found gets a fresh LineNonIntersection clause (monotone: clauses are
// only ever added), and the loop re-solves. Termination relies on there
// being only finitely many (edge, edge) pairs; in practice timeout fires
// first and that attempt is treated as UNSAT for the caller.
func Refine(ctx context.Context, b *Builder, timeout time.Duration, participants []Participant, guard PointOutsideGuard) (Status, Model) {
	for {
		status, model := b.Solve(ctx, timeout)
		if status != Sat {
			return status, model
		}

		if !addCrossingConstraints(b, model, participants, guard) {
			return Sat, model
		}
	}
}

func addCrossingConstraints(b *Builder, model Model, participants []Participant, guard PointOutsideGuard) bool {
	added := false
	for i := range participants {
		for j := range participants {
			if i == j {
				continue
			}
			pi, pj := participants[i], participants[j]
			if model[pi.T] >= model[pj.T] {
				continue // only the earlier-printing object's footprint is tested
			}
			if addCrossingsForPair(b, model, pi, pj, guard) {
				added = true
			}
		}
	}
	return added
}

func addCrossingsForPair(b *Builder, model Model, earlier, later Participant, guard PointOutsideGuard) bool {
	added := false
	oxi, oyi := model[earlier.X], model[earlier.Y]
	oxj, oyj := model[later.X], model[later.Y]

	for _, e1 := range earlier.Footprint.Edges() {
		a := geom.Point{X: e1.A.X + round(oxi), Y: e1.A.Y + round(oyi)}
		u := geom.Point{X: e1.B.X + round(oxi), Y: e1.B.Y + round(oyi)}

		for _, zone := range later.Zones {
			for _, e2 := range zone.Edges() {
				p := geom.Point{X: e2.A.X + round(oxj), Y: e2.A.Y + round(oyj)}
				q := geom.Point{X: e2.B.X + round(oxj), Y: e2.B.Y + round(oyj)}

				if !geom.SegmentsIntersect(a, u.Sub(a), p, q.Sub(p)) {
					continue
				}
				if LineNonIntersection(b, earlier.X, earlier.Y, later.X, later.Y, e1.A, e1.B, e2.A, e2.B, earlier.T, later.T, guard) {
					added = true
				}
			}
		}
	}
	return added
}

func round(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}
