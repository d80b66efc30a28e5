package optimizer

import (
	"context"
	"strconv"

	"github.com/gosequential/seqarrange/geom"
	"github.com/gosequential/seqarrange/internal/lra"
	"github.com/gosequential/seqarrange/preprocess"
	"github.com/gosequential/seqarrange/seq"
)

// participantVars tracks the variables allocated for one object (fixed or
// undecided) in a single Optimize call's Builder.
type participantVars struct {
	x, y, t lra.VarID
}

// Optimize runs the binary-centred search described by the package doc:
// it tries successively tighter half-width insets from the full
// plateSizeX x plateSizeY bed, asking the solver (through internal/lra's
// refinement loop) whether the undecided objects fit alongside the fixed
// ones, and returns the tightest feasible assignment found.
//
// absent is only meaningful under lra.GuardConsequential: it lists group
// peers of undecided that are being tried as not-present this round. They
// get no bed placement, but their temporal value is pinned "missing" via
// lra.ConsequentialPresence and they still take part in weakSeparation
// against every undecided object (not against fixed ones), so the guard's
// "Ti<0 OR Tj<0" escape is
// actually exercised rather than the pair simply never being asserted.
func Optimize(ctx context.Context, cfg seq.SolverConfiguration, fixed []FixedObject, undecided, absent []preprocess.PreparedObject, plateSizeX, plateSizeY int, guard lra.PointOutsideGuard) Result {
	haloX := searchHalf{min: 0, max: plateSizeX / 2}
	haloY := searchHalf{min: 0, max: plateSizeY / 2}

	var best *Result

	for {
		midX := haloX.mid()
		midY := haloY.mid()

		result, feasible := tryCandidate(ctx, cfg, fixed, undecided, absent, plateSizeX, plateSizeY, midX, midY, guard)
		if feasible {
			best = &result
			haloX.advanceLower(midX)
			haloY.advanceLower(midY)
		} else {
			haloX.advanceUpper(midX)
			haloY.advanceUpper(midY)
		}

		if haloX.done() && haloY.done() {
			break
		}
	}

	if best == nil {
		return Result{Status: lra.Unsat}
	}
	return *best
}

type searchHalf struct {
	min, max int
}

func (s searchHalf) mid() int { return (s.min + s.max) / 2 }

func (s searchHalf) done() bool { return s.max-s.min <= 1 }

func (s *searchHalf) advanceLower(mid int) { s.min = mid }

func (s *searchHalf) advanceUpper(mid int) { s.max = mid }

func tryCandidate(ctx context.Context, cfg seq.SolverConfiguration, fixed []FixedObject, undecided, absent []preprocess.PreparedObject, plateSizeX, plateSizeY, halfX, halfY int, guard lra.PointOutsideGuard) (Result, bool) {
	plateWidth := plateSizeX - 2*halfX
	plateHeight := plateSizeY - 2*halfY

	if areaExceedsPlate(fixed, undecided, plateWidth, plateHeight) {
		return Result{}, false
	}
	if fixedOutsideCandidate(fixed, halfX, halfY, plateSizeX, plateSizeY) {
		return Result{}, false
	}

	b := lra.NewBuilder()
	vars := make(map[int]participantVars, len(fixed)+len(undecided))
	var participants []lra.Participant

	for _, f := range fixed {
		x := b.NewVar("fixed_x")
		y := b.NewVar("fixed_y")
		tv := b.NewVar("fixed_t")
		b.AssertHard(lra.Lit(lra.AtomEq(lra.Var(x), lra.Const(float64(f.X)))))
		b.AssertHard(lra.Lit(lra.AtomEq(lra.Var(y), lra.Const(float64(f.Y)))))
		b.AssertHard(lra.Lit(lra.AtomEq(lra.Var(tv), lra.Const(f.T))))
		vars[f.Object.ID] = participantVars{x: x, y: y, t: tv}
		participants = append(participants, lra.Participant{X: x, Y: y, T: tv, Footprint: f.Object.Footprint, Zones: zonesOf(f.Object)})
	}
	for _, u := range undecided {
		x := b.NewVar("x")
		y := b.NewVar("y")
		tv := b.NewVar("t")
		vars[u.ID] = participantVars{x: x, y: y, t: tv}
		participants = append(participants, lra.Participant{X: x, Y: y, T: tv, Footprint: u.Footprint, Zones: zonesOf(u)})
		if guard == lra.GuardConsequential {
			lra.ConsequentialPresence(b, namePrefix(u.ID), tv, true, seq.TemporalPresenceThreshold)
		}
	}
	for _, a := range absent {
		x := b.NewVar("absent_x")
		y := b.NewVar("absent_y")
		tv := b.NewVar("absent_t")
		vars[a.ID] = participantVars{x: x, y: y, t: tv}
		lra.ConsequentialPresence(b, namePrefix(a.ID), tv, false, seq.TemporalPresenceThreshold)
	}

	for _, u := range undecided {
		bb := geom.AABB(u.Footprint)
		lra.BedBounding(b, namePrefix(u.ID), vars[u.ID].x, vars[u.ID].y, bb, float64(halfX), float64(plateSizeX-halfX), float64(halfY), float64(plateSizeY-halfY))
	}

	for i := 0; i < len(undecided); i++ {
		for j := i + 1; j < len(undecided); j++ {
			if cfg.EnableConsequentialLepox && j == i+1 && undecided[i].LepoxToNext {
				lra.ConsequentialLepoxWindow(b, vars[undecided[i].ID].t, vars[undecided[j].ID].t, float64(cfg.TemporalSpread), cfg.LepoxUpperSpreadFactor)
			} else {
				lra.TemporalOrderingUndecided(b, vars[undecided[i].ID].t, vars[undecided[j].ID].t, float64(cfg.TemporalSpread))
			}
			weakSeparation(b, vars[undecided[i].ID], undecided[i], vars[undecided[j].ID], undecided[j], guard)
		}
		for _, f := range fixed {
			lra.TemporalOrderingFixed(b, vars[undecided[i].ID].t, f.T, float64(cfg.TemporalSpread))
			weakSeparation(b, vars[undecided[i].ID], undecided[i], vars[f.Object.ID], f.Object, guard)
		}
		for _, a := range absent {
			weakSeparation(b, vars[undecided[i].ID], undecided[i], vars[a.ID], a, guard)
		}
	}

	status, model := lra.Refine(ctx, b, cfg.OptimizationTimeout, participants, guard)
	if status != lra.Sat {
		return Result{}, false
	}

	placements := make([]Placement, 0, len(undecided))
	for _, u := range undecided {
		pv := vars[u.ID]
		placements = append(placements, Placement{
			ID: u.ID,
			X:  roundTo(model[pv.x]),
			Y:  roundTo(model[pv.y]),
			T:  model[pv.t],
		})
	}

	return Result{Status: lra.Sat, Placements: placements, HalfX: halfX, HalfY: halfY}, true
}

func weakSeparation(b *lra.Builder, pi participantVars, oi preprocess.PreparedObject, pj participantVars, oj preprocess.PreparedObject, guard lra.PointOutsideGuard) {
	lra.PolygonOutsidePolygon(b, pi.x, pi.y, pj.x, pj.y, oi.Footprint, oj.Footprint, pi.t, pj.t, guard)
	for _, z := range oj.Zones {
		if !z.AppliesTo(oi.TotalHeight) {
			continue
		}
		lra.PolygonExternalPolygon(b, pi.x, pi.y, pj.x, pj.y, oi.Footprint, z.Zone, pi.t, pj.t, guard)
	}
	for _, z := range oi.Zones {
		if !z.AppliesTo(oj.TotalHeight) {
			continue
		}
		lra.PolygonExternalPolygon(b, pj.x, pj.y, pi.x, pi.y, oj.Footprint, z.Zone, pj.t, pi.t, guard)
	}
}

func zonesOf(o preprocess.PreparedObject) []geom.Polygon {
	out := make([]geom.Polygon, 0, len(o.Zones))
	for _, z := range o.Zones {
		out = append(out, z.Zone)
	}
	return out
}

func namePrefix(id int) string {
	return "bed:" + strconv.Itoa(id)
}

func roundTo(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}
