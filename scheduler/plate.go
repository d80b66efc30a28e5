package scheduler

import (
	"context"

	"github.com/samber/lo"

	"github.com/gosequential/seqarrange/internal/lra"
	"github.com/gosequential/seqarrange/optimizer"
	"github.com/gosequential/seqarrange/preprocess"
	"github.com/gosequential/seqarrange/seq"
)

// PlateResult is one plate's outcome: the decided objects in print order
// (T ascending, already renumbered and scaled to slicer units) plus
// whatever undecided objects spilled to the next plate.
type PlateResult struct {
	Decided   []seq.ScheduledObject
	Remaining []preprocess.PreparedObject
}

// SchedulePlate runs the sub-global scheduler's outer loop over one
// plate's undecided object list: it repeatedly takes the next group of up
// to cfg.ObjectGroupSize objects, shrinking the group on failure, until
// the list is exhausted. Objects that fail even alone are pushed to
// Remaining for the caller to retry on a fresh plate.
//
// Returns seq.ErrCompleteSchedulingFailure if not even one object could be
// placed on an otherwise-empty plate.
func SchedulePlate(ctx context.Context, cfg seq.SolverConfiguration, plateSizeX, plateSizeY int, undecided []preprocess.PreparedObject, guard lra.PointOutsideGuard) (PlateResult, error) {
	var decided []decidedEntry
	var remainder []preprocess.PreparedObject

	fixed := func() []optimizer.FixedObject {
		return lo.Map(decided, func(d decidedEntry, _ int) optimizer.FixedObject {
			return optimizer.FixedObject{Object: d.object, X: d.x, Y: d.y, T: d.t}
		})
	}

	cursor := 0
	for cursor < len(undecided) {
		groupEnd := cursor + cfg.ObjectGroupSize
		if groupEnd > len(undecided) {
			groupEnd = len(undecided)
		}
		group := undecided[cursor:groupEnd]

		placed := false
		for size := len(group); size >= 1; size-- {
			attempt := group[:size]

			var absent []preprocess.PreparedObject
			if guard == lra.GuardConsequential {
				absent = group[size:]
			}

			result := optimizer.Optimize(ctx, cfg, fixed(), attempt, absent, plateSizeX, plateSizeY, guard)
			if result.Status != lra.Sat {
				continue
			}

			byID := make(map[int]optimizer.Placement, len(result.Placements))
			for _, p := range result.Placements {
				byID[p.ID] = p
			}
			for k, obj := range attempt {
				p := byID[obj.ID]
				decided = append(decided, decidedEntry{
					object:     obj,
					x:          p.X,
					y:          p.Y,
					t:          p.T,
					inputIndex: cursor + k,
				})
			}
			cursor += size
			placed = true
			break
		}

		if !placed {
			remainder = append(remainder, group[0])
			cursor++
		}
	}

	if len(decided) == 0 && len(remainder) == len(undecided) {
		return PlateResult{}, seq.ErrCompleteSchedulingFailure
	}

	decided = renumber(decided, cfg)

	out := lo.Map(decided, func(d decidedEntry, _ int) seq.ScheduledObject {
		return seq.ScheduledObject{
			ID: d.object.ID,
			X:  d.x * seq.SolverScaleFactor,
			Y:  d.y * seq.SolverScaleFactor,
		}
	})

	return PlateResult{Decided: out, Remaining: remainder}, nil
}
