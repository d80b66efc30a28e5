package checker

import (
	"fmt"

	"github.com/gosequential/seqarrange/geom"
	"github.com/gosequential/seqarrange/preprocess"
	"github.com/gosequential/seqarrange/seq"
)

// Violation describes one detected collision between two scheduled
// objects on the same plate.
type Violation struct {
	PlateIndex int
	EarlierID  int
	LaterID    int
	Reason     string
}

func (v Violation) String() string {
	return fmt.Sprintf("plate %d: object %d collides with object %d printed earlier (%s)", v.PlateIndex, v.LaterID, v.EarlierID, v.Reason)
}

// Check re-verifies every plate in plates against the prepared objects
// they reference (looked up by ID), returning every collision found. A
// nil/empty result means the arrangement is printable as far as this
// checker can tell.
func Check(printer seq.PrinterGeometry, prepared []preprocess.PreparedObject, plates []seq.ScheduledPlate) []Violation {
	byID := make(map[int]preprocess.PreparedObject, len(prepared))
	for _, p := range prepared {
		byID[p.ID] = p
	}

	var violations []Violation
	for plateIdx, plate := range plates {
		for i := 0; i < len(plate.ScheduledObjects); i++ {
			for j := 0; j < len(plate.ScheduledObjects); j++ {
				if i == j {
					continue
				}
				earlier := plate.ScheduledObjects[i]
				later := plate.ScheduledObjects[j]

				eo, ok1 := byID[earlier.ID]
				lo, ok2 := byID[later.ID]
				if !ok1 || !ok2 {
					continue
				}

				if reason, collides := collides(eo, earlier, lo, later); collides {
					violations = append(violations, Violation{
						PlateIndex: plateIdx,
						EarlierID:  earlier.ID,
						LaterID:    later.ID,
						Reason:     reason,
					})
				}
			}
		}
	}
	return violations
}

// collides tests whether the two objects' scheduled placements violate
// either direction's unreachable-zone constraint: first a vertex-in-
// polygon test of later's footprint against earlier's zones, then an open
// segment-intersection test of earlier's footprint edges against later's
// zone edges (open so collinear-touching edges, which are allowed, are
// not flagged). Box-height zones only apply against a neighbor tall
// enough to reach them; see preprocess.ZoneHeight.AppliesTo.
func collides(earlierObj preprocess.PreparedObject, earlier seq.ScheduledObject, laterObj preprocess.PreparedObject, later seq.ScheduledObject) (string, bool) {
	dx := later.X/seq.SolverScaleFactor - earlier.X/seq.SolverScaleFactor
	dy := later.Y/seq.SolverScaleFactor - earlier.Y/seq.SolverScaleFactor

	laterFootprint := laterObj.Footprint.Translate(dx, dy)

	for _, zone := range earlierObj.Zones {
		if !zone.AppliesTo(laterObj.TotalHeight) {
			continue
		}
		for _, v := range laterFootprint {
			if !geom.PointOutsidePolygon(zone.Zone, v) {
				return fmt.Sprintf("vertex in unreachable zone at height %d", zone.Height), true
			}
		}
	}

	earlierEdges := earlierObj.Footprint.Edges()
	for _, zone := range laterObj.Zones {
		if !zone.AppliesTo(earlierObj.TotalHeight) {
			continue
		}
		for _, e1 := range earlierEdges {
			for _, e2 := range zone.Zone.Translate(dx, dy).Edges() {
				if geom.SegmentsIntersectOpen(e1.A, e1.Vector(), e2.A, e2.Vector()) {
					return fmt.Sprintf("footprint edge crosses unreachable zone at height %d", zone.Height), true
				}
			}
		}
	}

	return "", false
}
