package lra

import "github.com/gosequential/seqarrange/geom"

// BedBounding asserts, as four named (hence retractable) assumptions, that
// object i's polygon bounding box bb stays within [plateMinX,plateMaxX] x
// [plateMinY,plateMaxY] once translated by (xi,yi). namePrefix should be
// unique per object so the group optimiser can retract exactly these four
// assumptions when it tries a new plate size.
func BedBounding(b *Builder, namePrefix string, xi, yi VarID, bb geom.BoundingBox, plateMinX, plateMaxX, plateMinY, plateMaxY float64) {
	b.AssertAssumption(namePrefix+":xlo", Lit(AtomGeq(Var(xi).Plus(float64(bb.MinX)), Const(plateMinX))))
	b.AssertAssumption(namePrefix+":xhi", Lit(AtomLeq(Var(xi).Plus(float64(bb.MaxX)), Const(plateMaxX))))
	b.AssertAssumption(namePrefix+":ylo", Lit(AtomGeq(Var(yi).Plus(float64(bb.MinY)), Const(plateMinY))))
	b.AssertAssumption(namePrefix+":yhi", Lit(AtomLeq(Var(yi).Plus(float64(bb.MaxY)), Const(plateMaxY))))
}

// TemporalOrderingUndecided asserts that two undecided objects' temporal
// values are separated by more than spread, in either order.
func TemporalOrderingUndecided(b *Builder, ti, tj VarID, spread float64) {
	b.AssertHard(
		Lit(AtomGt(Var(ti).Sub(Var(tj)), Const(spread))),
		Lit(AtomGt(Var(tj).Sub(Var(ti)), Const(spread))),
	)
}

// TemporalOrderingFixed asserts the same separation between an undecided
// object's Ti and an already-decided object's known temporal value.
func TemporalOrderingFixed(b *Builder, ti VarID, fixedT, spread float64) {
	b.AssertHard(
		Lit(AtomGt(Var(ti).Plus(-fixedT), Const(spread))),
		Lit(AtomGt(Const(fixedT).Sub(Var(ti)), Const(spread))),
	)
}

// ConsequentialLepoxWindow asserts a lepox-linked pair's ordering and gap:
// object j (the successor) prints strictly after object i, with their
// temporal values separated by between spread and spread*upperFactor. This
// replaces the plain bidirectional TemporalOrderingUndecided separation for
// a pair the caller already knows must stay glued adjacent.
func ConsequentialLepoxWindow(b *Builder, ti, tj VarID, spread, upperFactor float64) {
	b.AssertHard(Lit(AtomGeq(Var(tj).Sub(Var(ti)), Const(spread))))
	b.AssertHard(Lit(AtomLeq(Var(tj).Sub(Var(ti)), Const(spread*upperFactor))))
}

// PointOutsideGuard selects which temporal guard literals, if any,
// accompany a point-outside-polygon or line-non-intersection clause.
type PointOutsideGuard int

const (
	// GuardNone is the plain modality: no temporal guard.
	GuardNone PointOutsideGuard = iota
	// GuardSequential adds "Ti < Tj": vacuous once i is known to print
	// before j.
	GuardSequential
	// GuardConsequential adds GuardSequential's literal plus "Ti < 0 OR Tj
	// < 0": additionally vacuous whenever either object is marked absent.
	GuardConsequential
)

func guardLiterals(guard PointOutsideGuard, ti, tj VarID) []Literal {
	switch guard {
	case GuardSequential:
		return []Literal{Lit(AtomLt(Var(ti).Sub(Var(tj)), Const(0)))}
	case GuardConsequential:
		return []Literal{
			Lit(AtomLt(Var(ti).Sub(Var(tj)), Const(0))),
			Lit(AtomLt(Var(ti), Const(0))),
			Lit(AtomLt(Var(tj), Const(0))),
		}
	default:
		return nil
	}
}

// pointOutsideLiterals builds the disjunction "point lies in the exterior
// half-plane of at least one of poly's edges", for the point (xi+px,
// yi+py) against poly translated by (xj,yj).
func pointOutsideLiterals(px, py float64, xi, yi, xj, yj VarID, poly geom.Polygon) []Literal {
	if len(poly) < 3 {
		return nil // vacuously outside; the caller should not assert a clause at all
	}
	lits := make([]Literal, 0, len(poly))
	for _, e := range poly.Edges() {
		nx := float64(e.B.Y - e.A.Y)
		ny := float64(-(e.B.X - e.A.X))

		expr := NewExpr()
		expr.Coeffs[xi] += nx
		expr.Coeffs[xj] -= nx
		expr.Coeffs[yi] += ny
		expr.Coeffs[yj] -= ny
		expr.Const = nx*(px-float64(e.A.X)) + ny*(py-float64(e.A.Y))

		lits = append(lits, Lit(AtomGt(expr, Const(0))))
	}
	return lits
}

// PointOutsidePolygon asserts that the point (xi+px, yi+py) - owned by
// object i - lies outside poly - owned by object j, translated by
// (xj,yj) - under the given guard. A polygon with fewer than 3 points
// contributes no clause.
func PointOutsidePolygon(b *Builder, px, py float64, xi, yi, xj, yj VarID, poly geom.Polygon, ti, tj VarID, guard PointOutsideGuard) {
	lits := pointOutsideLiterals(px, py, xi, yi, xj, yj, poly)
	if lits == nil {
		return
	}
	lits = append(lits, guardLiterals(guard, ti, tj)...)
	b.AssertHard(lits...)
}

// PolygonOutsidePolygon asserts separation between object i's polygon pi
// (e.g. its footprint) and object j's polygon pj (e.g. an unreachable
// zone), by testing each vertex of one against the other as a polygon
// edge-disjunction, in both directions.
func PolygonOutsidePolygon(b *Builder, xi, yi, xj, yj VarID, pi, pj geom.Polygon, ti, tj VarID, guard PointOutsideGuard) {
	for _, v := range pi {
		PointOutsidePolygon(b, float64(v.X), float64(v.Y), xi, yi, xj, yj, pj, ti, tj, guard)
	}
	for _, v := range pj {
		PointOutsidePolygon(b, float64(v.X), float64(v.Y), xj, yj, xi, yi, pi, tj, ti, guard)
	}
}

// PolygonExternalPolygon is PolygonOutsidePolygon's size-gated
// optimisation, valid only in GuardConsequential mode: it only emits the
// point-vs-zone direction whose zone polygon is larger in area than the
// opposing footprint, which is sufficient for separation and avoids
// redundant clauses the other direction would otherwise contribute. In
// any other guard mode this shortcut does not apply (spec's "consequential
// only" note) and PolygonExternalPolygon falls back to the full
// PolygonOutsidePolygon test with the caller's guard.
func PolygonExternalPolygon(b *Builder, xi, yi, xj, yj VarID, footprintI, zoneJ geom.Polygon, ti, tj VarID, guard PointOutsideGuard) {
	if guard != GuardConsequential {
		PolygonOutsidePolygon(b, xi, yi, xj, yj, footprintI, zoneJ, ti, tj, guard)
		return
	}
	if geom.Area(zoneJ) >= geom.Area(footprintI) {
		for _, v := range footprintI {
			PointOutsidePolygon(b, float64(v.X), float64(v.Y), xi, yi, xj, yj, zoneJ, ti, tj, guard)
		}
		return
	}
	for _, v := range zoneJ {
		PointOutsidePolygon(b, float64(v.X), float64(v.Y), xj, yj, xi, yi, footprintI, tj, ti, guard)
	}
}

// LineNonIntersection asserts that directed edge (p1,q1) on object i and
// directed edge (p2,q2) on object j, once translated by their respective
// offsets, do not cross: it introduces two fresh line-parameter variables
// on b and asserts the matching-point equalities plus the separation
// disjunction. Returns false without asserting anything for a zero-length
// edge on either side.
func LineNonIntersection(b *Builder, xi, yi, xj, yj VarID, p1, q1, p2, q2 geom.Point, ti, tj VarID, guard PointOutsideGuard) bool {
	if p1 == q1 || p2 == q2 {
		return false
	}

	t1 := b.NewVar("line_t1")
	t2 := b.NewVar("line_t2")

	dx1, dy1 := float64(q1.X-p1.X), float64(q1.Y-p1.Y)
	dx2, dy2 := float64(q2.X-p2.X), float64(q2.Y-p2.Y)

	xExpr := NewExpr()
	xExpr.Coeffs[xi] += 1
	xExpr.Coeffs[t1] += dx1
	xExpr.Coeffs[xj] -= 1
	xExpr.Coeffs[t2] -= dx2
	xExpr.Const = float64(p1.X - p2.X)
	b.AssertHard(Lit(AtomEq(xExpr, Const(0))))

	yExpr := NewExpr()
	yExpr.Coeffs[yi] += 1
	yExpr.Coeffs[t1] += dy1
	yExpr.Coeffs[yj] -= 1
	yExpr.Coeffs[t2] -= dy2
	yExpr.Const = float64(p1.Y - p2.Y)
	b.AssertHard(Lit(AtomEq(yExpr, Const(0))))

	lits := []Literal{
		Lit(AtomLt(Var(t1), Const(seqIntersectionRepulsionMin))),
		Lit(AtomGt(Var(t1), Const(seqIntersectionRepulsionMax))),
		Lit(AtomLt(Var(t2), Const(seqIntersectionRepulsionMin))),
		Lit(AtomGt(Var(t2), Const(seqIntersectionRepulsionMax))),
	}
	lits = append(lits, guardLiterals(guard, ti, tj)...)
	b.AssertHard(lits...)
	return true
}

const (
	seqIntersectionRepulsionMin = -0.01
	seqIntersectionRepulsionMax = 1.01
)

// ConsequentialPresence pins an object's temporal value as an assumption:
// present objects get Ti > threshold, missing objects get Ti < -threshold.
// Registered as an assumption (not a hard clause) so the same formula can
// be reused with a different present/missing split.
func ConsequentialPresence(b *Builder, namePrefix string, ti VarID, present bool, threshold float64) {
	if present {
		b.AssertAssumption(namePrefix+":present", Lit(AtomGt(Var(ti), Const(threshold))))
		return
	}
	b.AssertAssumption(namePrefix+":missing", Lit(AtomLt(Var(ti), Const(-threshold))))
}
